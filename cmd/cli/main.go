// Command vds-engine runs a longitudinal vehicle dynamics simulation and
// writes the SimulationLog JSON to stdout.
//
// With no -scenario flag it runs the built-in hill-climb scenario; otherwise
// it reads a SimulationInput JSON from the given file, or from stdin when the
// flag value is "-". A position trace file and a trajectory plot can be
// written alongside via -trace and -plot (or the matching config keys).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/cxd309/vds-engine/internal/config"
	"github.com/cxd309/vds-engine/internal/engine"
	"github.com/cxd309/vds-engine/internal/trace"
)

func main() {
	var (
		scenarioPath = flag.String("scenario", "", "SimulationInput JSON file, \"-\" for stdin (default: built-in hill climb)")
		tracePath    = flag.String("trace", "", "write a (time, position) trace file to this path")
		plotPath     = flag.String("plot", "", "render a trajectory plot to this path")
		configDir    = flag.String("config", ".", "directory containing vds.cfg.json")
	)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := config.Load(*configDir); err != nil {
		logger.Fatal().Err(err).Msg("loading config")
	}
	if lvl, err := zerolog.ParseLevel(config.GetString("logLevel")); err == nil {
		logger = logger.Level(lvl)
	}
	if *tracePath == "" {
		*tracePath = config.GetString("output.trace")
	}
	if *plotPath == "" {
		*plotPath = config.GetString("output.plot")
	}

	input, err := readInput(*scenarioPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("reading scenario")
	}

	sim, err := engine.New(input)
	if err != nil {
		logger.Fatal().Err(err).Msg("building simulation")
	}
	sim.SetLogger(logger)

	simLog := sim.Run()
	logger.Info().
		Str("simulation_id", simLog.Meta.SimulationID).
		Int("rows", len(simLog.Output)).
		Msg("simulation complete")

	out, err := json.Marshal(simLog)
	if err != nil {
		logger.Fatal().Err(err).Msg("marshaling output")
	}
	fmt.Println(string(out))

	if *tracePath != "" {
		if err := trace.SavePositions(*tracePath, simLog); err != nil {
			logger.Fatal().Err(err).Msg("writing trace")
		}
		logger.Info().Str("path", *tracePath).Msg("trace written")
	}
	if *plotPath != "" {
		if err := trace.RenderPlot(*plotPath, simLog); err != nil {
			logger.Fatal().Err(err).Msg("rendering plot")
		}
		logger.Info().Str("path", *plotPath).Msg("plot written")
	}
}

// readInput resolves the scenario source: built-in default, stdin, or a file.
func readInput(path string) (engine.SimulationInput, error) {
	if path == "" {
		input := engine.DefaultInput()
		input.Meta.RunTime = config.GetFloat64("sim.runTime")
		input.Meta.TimeStep = config.GetFloat64("sim.timeStep")
		return input, nil
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return engine.SimulationInput{}, err
	}

	var input engine.SimulationInput
	if err := json.Unmarshal(data, &input); err != nil {
		return engine.SimulationInput{}, fmt.Errorf("parsing scenario JSON: %w", err)
	}
	return input, nil
}
