package main

import (
	"errors"

	"gonum.org/v1/plot/vg"

	"github.com/tcc-tools/fftplot"
	"github.com/tcc-tools/fftplot/chart"
	"github.com/tcc-tools/fftplot/graphic"
)

// config holds the parsed command line
type config struct {
	// dataDir is the directory with the input and output csv files
	dataDir string
	// savePlot is where the figure is written. Empty shows it in the terminal
	savePlot string
	// quiet hides the data file listing
	quiet bool
	// width of the saved figure, in inches
	width float64
	// height of the saved figure, in inches
	height float64
}

// newZeroConfig returns the defaults, a 20x10 inch figure
func newZeroConfig() config {
	return config{
		width:  float64(chart.DefaultWidth / vg.Inch),
		height: float64(chart.DefaultHeight / vg.Inch),
	}
}

// Sanitize cleans things up
func (cfg *config) Sanitize() error {
	if cfg.dataDir == "" {
		return errors.New("data directory required")
	}

	if cfg.width <= 0 || cfg.height <= 0 {
		return errors.New("figure size must be positive")
	}

	return nil
}

// plotConfig converts the command line into the run config
func (cfg *config) plotConfig() fftplot.Config {
	pc := fftplot.NewZeroConfig()
	pc.DataDir = cfg.dataDir
	pc.SavePlot = cfg.savePlot
	pc.Quiet = cfg.quiet
	pc.Width = vg.Length(cfg.width) * vg.Inch
	pc.Height = vg.Length(cfg.height) * vg.Inch

	if cfg.savePlot == "" {
		pc.Viewer = graphic.New()
	}

	return pc
}
