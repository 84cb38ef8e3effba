package dynamics

import (
	"encoding/json"
	"math"
)

// LongitudinalModelName is the JSON discriminator string for the Longitudinal model.
const LongitudinalModelName = "longitudinal"

// slipVelFloor is the lower bound applied to the slip-ratio denominator.
// The slip ratio divides by vehicle velocity and is undefined at v = 0; below
// this floor the denominator is held constant, so a stationary vehicle with a
// spinning engine sees a saturated slip ratio and launches on FMax tire force.
// For v ≥ slipVelFloor the tire force is unchanged.
const slipVelFloor = 1e-3 // m/s

// Longitudinal implements Model with a forward longitudinal vehicle dynamics
// formulation: a quadratic engine torque curve scaled by throttle, load forces
// from aerodynamic drag, rolling resistance and road grade, and a tire force
// with a slip-ratio saturation nonlinearity. Integration is explicit Euler at
// a fixed timestep.
//
// Known limitations, kept deliberately: the rolling-resistance term is the
// forward-motion linear approximation (no sign handling for v < 0), and the
// tire force clamps to +FMax for |slip| ≥ 1 regardless of the sign of the
// slip. Both are valid for the forward, mild-slip operation this model targets.
//
// JSON discriminator: "model": "longitudinal"
type Longitudinal struct {
	A0 float64 `json:"a_0"` // torque curve constant term, N·m
	A1 float64 `json:"a_1"` // torque curve linear coefficient, N·m·s/rad
	A2 float64 `json:"a_2"` // torque curve quadratic coefficient, N·m·s²/rad²

	GR float64 `json:"gear_ratio"`     // combined transmission ratio, wheel speed = GR · engine speed
	Re float64 `json:"tire_radius"`    // effective tire radius, m
	Je float64 `json:"engine_inertia"` // lumped engine/driveline inertia, kg·m²
	M  float64 `json:"mass"`           // vehicle mass, kg
	G  float64 `json:"gravity"`        // gravitational acceleration, m/s²

	Ca   float64 `json:"c_a"`            // aerodynamic drag coefficient, kg/m
	Cr1  float64 `json:"c_r1"`           // rolling resistance coefficient, kg/s
	C    float64 `json:"tire_stiffness"` // linear tire force per unit slip, N
	FMax float64 `json:"f_max"`          // tire force saturation limit, N

	Dt float64 `json:"dt"` // integration timestep, s

	Init State `json:"initial_state"` // state restored by reset
}

// DefaultLongitudinal returns the reference vehicle parameter set.
func DefaultLongitudinal() Longitudinal {
	return Longitudinal{
		A0: 200, A1: 0.1, A2: -0.0002,
		GR: 0.1, Re: 0.3, Je: 10, M: 2000, G: 9.81,
		Ca: 1.36, Cr1: 0.01, C: 10000, FMax: 10000,
		Dt: 0.01,
		Init: State{X: 0, V: 5, A: 0, We: 100, WeDot: 0},
	}
}

func (l Longitudinal) InitialState() State { return l.Init }

func (l Longitudinal) Timestep() float64 { return l.Dt }

func (l Longitudinal) WithTimestep(dt float64) Model {
	l.Dt = dt
	return l
}

// Step advances s by one timestep. Every term is evaluated on the incoming
// state; the position update uses the pre-update velocity together with a
// half-step correction, matching the reference formulation exactly.
//
// Throttle is not clamped: values outside [0,1] evaluate the torque polynomial
// regardless and yield an unphysical but deterministic torque. Non-finite
// inputs propagate through the state as data, never as a fault.
func (l Longitudinal) Step(s State, throttle, incline float64) State {
	// Load force decomposition.
	fAero := l.Ca * s.V * s.V
	rx := l.Cr1 * s.V
	fGrade := l.M * l.G * math.Sin(incline)
	fLoad := fAero + rx + fGrade

	// Engine torque and angular acceleration, with the load reflected back
	// through the gear ratio and wheel radius onto the lumped inertia.
	tEngine := throttle * (l.A0 + l.A1*s.We + l.A2*s.We*s.We)
	weDot := (tEngine - l.GR*l.Re*fLoad) / l.Je

	// Tire force from wheel slip, saturating at FMax beyond unit slip.
	wWheel := l.GR * s.We
	slip := (wWheel*l.Re - s.V) / math.Max(s.V, slipVelFloor)
	var fTire float64
	if math.Abs(slip) < 1 {
		fTire = l.C * slip
	} else {
		fTire = l.FMax
	}

	a := (fTire - fLoad) / l.M

	return State{
		X:     s.X + s.V*l.Dt - 0.5*a*l.Dt*l.Dt,
		V:     s.V + a*l.Dt,
		A:     a,
		We:    s.We + weDot*l.Dt,
		WeDot: weDot,
	}
}

// UnmarshalJSON fills the model from JSON on top of the default parameter set,
// so scenario files only need to list the parameters they override.
func (l *Longitudinal) UnmarshalJSON(data []byte) error {
	type plain Longitudinal
	p := plain(DefaultLongitudinal())
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*l = Longitudinal(p)
	return nil
}
