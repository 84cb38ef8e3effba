// Package dynamics defines the Model interface for vehicle powertrain and
// chassis physics, along with built-in implementations.
//
// Adding a new physics model requires only implementing Model and registering it
// in the JSON discriminator in the scenario package — the simulation engine itself
// never needs to change.
package dynamics

// State is the vehicle state vector at a single instant.
// Position is in metres, velocities in m/s and rad/s, accelerations in
// m/s² and rad/s².
type State struct {
	X     float64 `json:"x"`       // position along the road
	V     float64 `json:"v"`       // longitudinal velocity
	A     float64 `json:"a"`       // longitudinal acceleration (derived each step)
	We    float64 `json:"w_e"`     // engine angular velocity
	WeDot float64 `json:"w_e_dot"` // engine angular acceleration (derived each step)
}

// Model is the physics contract every vehicle dynamics implementation must satisfy.
// Implementations are immutable parameter sets; all mutable simulation state
// lives in the State value passed through Step.
type Model interface {
	// InitialState returns the state a vehicle of this model starts from.
	InitialState() State

	// Step advances s by one fixed timestep given a throttle command
	// (fraction of maximum engine torque demand, nominally in [0,1]) and a
	// road incline angle in radians, positive uphill. All derivatives are
	// evaluated on the incoming state; Step never reads the partially
	// updated state.
	Step(s State, throttle, incline float64) State

	// Timestep returns the fixed integration timestep in seconds.
	Timestep() float64

	// WithTimestep returns a copy of the model using dt as its integration
	// timestep. The receiver is unchanged.
	WithTimestep(dt float64) Model
}
