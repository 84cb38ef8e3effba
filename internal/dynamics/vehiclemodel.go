package dynamics

// VehicleModel binds a Model to a live state vector for callers that prefer
// the mutate-in-place driving pattern over the pure transition function.
// It is not safe for concurrent use; each simulated vehicle must own its
// own instance.
type VehicleModel struct {
	model Model
	state State
}

// NewVehicleModel creates a VehicleModel at m's initial state.
func NewVehicleModel(m Model) *VehicleModel {
	return &VehicleModel{model: m, state: m.InitialState()}
}

// NewDefaultVehicleModel creates a VehicleModel with the reference
// Longitudinal parameter set.
func NewDefaultVehicleModel() *VehicleModel {
	return NewVehicleModel(DefaultLongitudinal())
}

// Reset restores the state to the model's initial condition. Parameters are
// untouched. Idempotent.
func (vm *VehicleModel) Reset() {
	vm.state = vm.model.InitialState()
}

// Step advances simulated time by one timestep given a throttle command and
// an incline angle in radians.
func (vm *VehicleModel) Step(throttle, incline float64) {
	vm.state = vm.model.Step(vm.state, throttle, incline)
}

// State returns the current state vector.
func (vm *VehicleModel) State() State { return vm.state }

// Model returns the immutable parameter set backing this vehicle.
func (vm *VehicleModel) Model() Model { return vm.model }
