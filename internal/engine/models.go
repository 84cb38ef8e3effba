package engine

import (
	"github.com/cxd309/vds-engine/internal/dynamics"
	"github.com/cxd309/vds-engine/internal/scenario"
)

// SimulationMeta holds the identity and timing parameters for a simulation run.
type SimulationMeta struct {
	SimulationID string  `json:"simulation_id"`
	RunTime      float64 `json:"run_time"`  // seconds
	TimeStep     float64 `json:"time_step"` // seconds; 0 means use the vehicle model's own timestep
}

// SimulationInput is the JSON-serialisable input to the engine.
type SimulationInput struct {
	Meta    SimulationMeta        `json:"simulation_meta"`
	Vehicle scenario.Vehicle      `json:"vehicle"`
	Profile scenario.DriveProfile `json:"drive_profile"`
}

// SimulationLogRow is the sampled vehicle state at a single simulation timestep,
// together with the inputs applied over the step that follows it.
type SimulationLogRow struct {
	Timestamp float64        `json:"timestamp"` // seconds
	Throttle  float64        `json:"throttle"`
	Incline   float64        `json:"incline"` // radians
	State     dynamics.State `json:"state"`
}

// SimulationLog is the complete output of a simulation run.
type SimulationLog struct {
	Meta   SimulationMeta     `json:"simulation_meta"`
	Output []SimulationLogRow `json:"output"`
}

// DefaultInput returns a ready-to-run input: the reference vehicle on the
// hill-climb scenario for 20 simulated seconds.
func DefaultInput() SimulationInput {
	return SimulationInput{
		Meta: SimulationMeta{
			SimulationID: "hill-climb",
			RunTime:      20,
			TimeStep:     0.01,
		},
		Vehicle: scenario.Vehicle{
			Name:  "reference",
			Model: dynamics.DefaultLongitudinal(),
		},
		Profile: scenario.HillClimb(),
	}
}
