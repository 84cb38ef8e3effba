package scenario

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrottleScheduleAt(t *testing.T) {
	ts := HillClimb().Throttle

	assert.InDelta(t, 0.2, ts.At(0), 1e-12)
	assert.InDelta(t, 0.2, ts.At(-1), 1e-12, "holds the first value before the schedule")
	assert.InDelta(t, 0.35, ts.At(1.5), 1e-12, "linear interpolation on the ramp")
	assert.InDelta(t, 0.5, ts.At(3), 1e-12)
	assert.InDelta(t, 0.5, ts.At(8), 1e-12, "hold phase")
	assert.InDelta(t, 0.25, ts.At(15.5), 1e-12, "ramp down")
	assert.InDelta(t, 0.0, ts.At(18), 1e-12)
	assert.InDelta(t, 0.0, ts.At(25), 1e-12, "holds the last value after the schedule")
}

func TestThrottleScheduleEmpty(t *testing.T) {
	assert.Equal(t, 0.0, ThrottleSchedule{}.At(5))
}

func TestInclineProfileAt(t *testing.T) {
	ip := HillClimb().Incline

	first := math.Atan2(3, 60)
	second := math.Atan(0.1)
	assert.Equal(t, first, ip.At(0))
	assert.Equal(t, first, ip.At(59.999))
	assert.Equal(t, second, ip.At(60))
	assert.Equal(t, second, ip.At(149.9))
	assert.Equal(t, 0.0, ip.At(150), "flat beyond the last segment")
	assert.Equal(t, 0.0, ip.At(1e6))
}

func TestProfileValidate(t *testing.T) {
	require.NoError(t, HillClimb().Validate())

	bad := DriveProfile{
		Throttle: ThrottleSchedule{{T: 3, Value: 0.5}, {T: 1, Value: 0.2}},
	}
	assert.Error(t, bad.Validate())

	bad = DriveProfile{
		Incline: InclineProfile{{Until: 100, Angle: 0.1}, {Until: 100, Angle: 0.2}},
	}
	assert.Error(t, bad.Validate())
}
