// Package trace persists simulation logs: a delimited text trace of the
// position trajectory, and rendered trajectory plots.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cxd309/vds-engine/internal/engine"
)

// WritePositions writes the (time, position) trajectory to w, one row per
// sample: two columns, comma-space separated, no header. Downstream consumers
// parse this exact format; do not change it.
func WritePositions(w io.Writer, simLog engine.SimulationLog) error {
	bw := bufio.NewWriter(w)
	for _, row := range simLog.Output {
		if _, err := fmt.Fprintf(bw, "%v, %v\n", row.Timestamp, row.State.X); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SavePositions writes the position trajectory to the file at path,
// creating or truncating it.
func SavePositions(path string, simLog engine.SimulationLog) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	if err := WritePositions(f, simLog); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
