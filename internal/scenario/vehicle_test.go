package scenario

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxd309/vds-engine/internal/dynamics"
)

func TestVehicleUnmarshalLongitudinal(t *testing.T) {
	data := `{
		"name": "test-car",
		"dynamics": {"model": "longitudinal", "mass": 1800, "gear_ratio": 0.12}
	}`

	var v Vehicle
	require.NoError(t, json.Unmarshal([]byte(data), &v))
	assert.Equal(t, "test-car", v.Name)

	m, ok := v.Model.(dynamics.Longitudinal)
	require.True(t, ok)
	assert.Equal(t, 1800.0, m.M)
	assert.Equal(t, 0.12, m.GR)
	assert.Equal(t, 200.0, m.A0, "unlisted parameters keep their defaults")
}

func TestVehicleUnmarshalDefaultsWhenAbsent(t *testing.T) {
	var v Vehicle
	require.NoError(t, json.Unmarshal([]byte(`{"name": "bare"}`), &v))

	assert.Equal(t, dynamics.DefaultLongitudinal(), v.Model)
}

func TestVehicleUnmarshalUnknownModel(t *testing.T) {
	var v Vehicle
	err := json.Unmarshal([]byte(`{"name": "x", "dynamics": {"model": "warp-drive"}}`), &v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown dynamics model "warp-drive"`)
}
