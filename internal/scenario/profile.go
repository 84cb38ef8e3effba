// Package scenario defines the vehicle and drive-profile types used to script
// a simulation run: a time-keyed throttle schedule and a position-keyed road
// incline profile.
package scenario

import (
	"fmt"
	"math"
)

// ThrottleSetpoint is a breakpoint on the throttle schedule.
type ThrottleSetpoint struct {
	T     float64 `json:"t"`     // seconds from simulation start
	Value float64 `json:"value"` // throttle command, nominally in [0,1]
}

// ThrottleSchedule is a piecewise-linear throttle command over time.
// Between breakpoints the command is interpolated linearly; before the first
// and after the last breakpoint it holds the end value.
type ThrottleSchedule []ThrottleSetpoint

// At returns the throttle command at time t.
func (ts ThrottleSchedule) At(t float64) float64 {
	if len(ts) == 0 {
		return 0
	}
	if t <= ts[0].T {
		return ts[0].Value
	}
	for i := 1; i < len(ts); i++ {
		if t <= ts[i].T {
			prev, next := ts[i-1], ts[i]
			span := next.T - prev.T
			if span <= 0 {
				return next.Value
			}
			return prev.Value + (next.Value-prev.Value)*(t-prev.T)/span
		}
	}
	return ts[len(ts)-1].Value
}

// Validate checks that breakpoint times are strictly increasing.
func (ts ThrottleSchedule) Validate() error {
	for i := 1; i < len(ts); i++ {
		if ts[i].T <= ts[i-1].T {
			return fmt.Errorf("throttle schedule: setpoint %d at t=%g is not after t=%g", i, ts[i].T, ts[i-1].T)
		}
	}
	return nil
}

// GradeSegment is a stretch of road with a constant incline angle.
type GradeSegment struct {
	Until float64 `json:"until"` // segment covers positions up to this many metres
	Angle float64 `json:"angle"` // incline angle, radians, positive uphill
}

// InclineProfile is the road grade as a function of position: the angle of
// the first segment whose Until exceeds the position, and flat road beyond
// the last segment.
type InclineProfile []GradeSegment

// At returns the incline angle at position x.
func (ip InclineProfile) At(x float64) float64 {
	for _, seg := range ip {
		if x < seg.Until {
			return seg.Angle
		}
	}
	return 0
}

// Validate checks that segment boundaries are strictly increasing.
func (ip InclineProfile) Validate() error {
	for i := 1; i < len(ip); i++ {
		if ip[i].Until <= ip[i-1].Until {
			return fmt.Errorf("incline profile: segment %d ends at %gm, not after %gm", i, ip[i].Until, ip[i-1].Until)
		}
	}
	return nil
}

// DriveProfile scripts one simulation run: what the driver does over time and
// what road the vehicle is on.
type DriveProfile struct {
	Throttle ThrottleSchedule `json:"throttle"`
	Incline  InclineProfile   `json:"incline"`
}

// Validate checks both schedules.
func (p DriveProfile) Validate() error {
	if err := p.Throttle.Validate(); err != nil {
		return err
	}
	return p.Incline.Validate()
}

// HillClimb returns the reference test scenario: a trapezoidal throttle ramp
// (0.2 to 0.5 over 3 s, hold for 10 s, down to 0 over 5 s) over two uphill
// sections, a 5% ramp for the first 60 m and a 10% ramp up to 150 m.
func HillClimb() DriveProfile {
	return DriveProfile{
		Throttle: ThrottleSchedule{
			{T: 0, Value: 0.2},
			{T: 3, Value: 0.5},
			{T: 13, Value: 0.5},
			{T: 18, Value: 0},
		},
		Incline: InclineProfile{
			{Until: 60, Angle: math.Atan2(3, 60)},
			{Until: 150, Angle: math.Atan(0.1)},
		},
	}
}
