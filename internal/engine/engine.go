// Package engine implements the vehicle simulation loop.
//
// The simulation advances in fixed timesteps. Each step samples the vehicle
// state, evaluates the scripted throttle command at the current time and the
// road incline at the current position, and hands both to the vehicle model's
// single-step integrator. Simulated time is decoupled from wall-clock time:
// every step advances exactly one timestep regardless of how long it takes.
package engine

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/cxd309/vds-engine/internal/dynamics"
	"github.com/cxd309/vds-engine/internal/scenario"
)

// Sim is the simulation engine state: one scripted vehicle on one road.
// A Sim is single-use; construct a new one for each run.
type Sim struct {
	meta    SimulationMeta
	vehicle *dynamics.VehicleModel
	profile scenario.DriveProfile
	curTime float64

	logger    zerolog.Logger
	warnedNaN bool
}

// New constructs a Sim from a SimulationInput, resolving the vehicle model and
// reconciling the meta timestep with the model's own.
func New(input SimulationInput) (*Sim, error) {
	if err := input.Profile.Validate(); err != nil {
		return nil, fmt.Errorf("drive profile: %w", err)
	}

	model := input.Vehicle.Model
	if model == nil {
		model = dynamics.DefaultLongitudinal()
	}
	if input.Meta.TimeStep != 0 {
		model = model.WithTimestep(input.Meta.TimeStep)
	} else {
		input.Meta.TimeStep = model.Timestep()
	}
	if input.Meta.TimeStep <= 0 {
		return nil, fmt.Errorf("time step must be positive, got %g", input.Meta.TimeStep)
	}
	if input.Meta.RunTime < 0 {
		return nil, fmt.Errorf("run time must not be negative, got %g", input.Meta.RunTime)
	}

	return &Sim{
		meta:    input.Meta,
		vehicle: dynamics.NewVehicleModel(model),
		profile: input.Profile,
		curTime: 0,
		logger:  zerolog.Nop(),
	}, nil
}

// SetLogger routes engine diagnostics to l. The default logger discards them.
func (s *Sim) SetLogger(l zerolog.Logger) { s.logger = l }

// Run executes the full simulation and returns the log. The first row is the
// initial state at t=0; each later row is the state that the previous row's
// inputs produced.
func (s *Sim) Run() SimulationLog {
	simLog := SimulationLog{Meta: s.meta}
	// Half-step tolerance so RunTime itself is always sampled despite float
	// accumulation in curTime.
	for s.curTime <= s.meta.RunTime+s.meta.TimeStep/2 {
		simLog.Output = append(simLog.Output, s.step())
		s.curTime += s.meta.TimeStep
	}
	return simLog
}

// step samples the current state, applies the scripted inputs for this instant,
// and advances the vehicle by one timestep.
func (s *Sim) step() SimulationLogRow {
	st := s.vehicle.State()
	throttle := s.profile.Throttle.At(s.curTime)
	incline := s.profile.Incline.At(st.X)

	row := SimulationLogRow{
		Timestamp: s.curTime,
		Throttle:  throttle,
		Incline:   incline,
		State:     st,
	}

	s.vehicle.Step(throttle, incline)

	// Non-finite state is data, not a fault: keep integrating, but say so once.
	if !s.warnedNaN && !finite(s.vehicle.State()) {
		s.warnedNaN = true
		s.logger.Warn().
			Float64("t", s.curTime).
			Str("simulation_id", s.meta.SimulationID).
			Msg("vehicle state became non-finite")
	}

	return row
}

func finite(st dynamics.State) bool {
	for _, f := range []float64{st.X, st.V, st.A, st.We, st.WeDot} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// RunJSON is the primary entry point for both compilation targets (CLI, WASM).
// It accepts a JSON-encoded SimulationInput, runs the simulation, and returns
// a JSON-encoded SimulationLog.
func RunJSON(jsonInput string) (string, error) {
	var input SimulationInput
	if err := json.Unmarshal([]byte(jsonInput), &input); err != nil {
		return "", fmt.Errorf("invalid input JSON: %w", err)
	}

	sim, err := New(input)
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(sim.Run())
	if err != nil {
		return "", fmt.Errorf("marshaling output: %w", err)
	}
	return string(out), nil
}
