package trace

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxd309/vds-engine/internal/dynamics"
	"github.com/cxd309/vds-engine/internal/engine"
)

func sampleLog() engine.SimulationLog {
	return engine.SimulationLog{
		Meta: engine.SimulationMeta{SimulationID: "sample", RunTime: 1, TimeStep: 0.5},
		Output: []engine.SimulationLogRow{
			{Timestamp: 0, State: dynamics.State{X: 0, V: 5}},
			{Timestamp: 0.5, State: dynamics.State{X: 1.25, V: 5.5}},
			{Timestamp: 1, State: dynamics.State{X: 2.5, V: 6}},
		},
	}
}

func TestWritePositionsFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePositions(&buf, sampleLog()))

	// Two columns, comma-space separated, no header. Consumers parse this
	// exact format.
	assert.Equal(t, "0, 0\n0.5, 1.25\n1, 2.5\n", buf.String())
}

func TestSavePositions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "positions.txt")
	require.NoError(t, SavePositions(path, sampleLog()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0, 0\n0.5, 1.25\n1, 2.5\n", string(data))
}

func TestRenderPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trajectory.png")
	require.NoError(t, RenderPlot(path, sampleLog()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
