package trace

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cxd309/vds-engine/internal/engine"
)

// RenderPlot renders the position and velocity trajectories of simLog to an
// image file at path. The format is chosen from the file extension (.png,
// .svg, .pdf, ...).
func RenderPlot(path string, simLog engine.SimulationLog) error {
	pos := make(plotter.XYs, len(simLog.Output))
	vel := make(plotter.XYs, len(simLog.Output))
	for i, row := range simLog.Output {
		pos[i] = plotter.XY{X: row.Timestamp, Y: row.State.X}
		vel[i] = plotter.XY{X: row.Timestamp, Y: row.State.V}
	}

	p := plot.New()
	p.Title.Text = simLog.Meta.SimulationID
	p.X.Label.Text = "t (s)"
	p.Y.Label.Text = "x (m), v (m/s)"
	p.Add(plotter.NewGrid())

	posLine, err := plotter.NewLine(pos)
	if err != nil {
		return fmt.Errorf("building position line: %w", err)
	}
	velLine, err := plotter.NewLine(vel)
	if err != nil {
		return fmt.Errorf("building velocity line: %w", err)
	}
	velLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(posLine, velLine)
	p.Legend.Add("position", posLine)
	p.Legend.Add("velocity", velLine)
	p.Legend.Top = true

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}
