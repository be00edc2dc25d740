package fftplot

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"

	"github.com/tcc-tools/fftplot/chart"
)

// Viewer shows a figure interactively.
type Viewer interface {
	Show(chart.Figure) error
}

type Config struct {
	// Directory holding the four test files
	DataDir string
	// Path the figure is written to. Empty shows the figure on the Viewer
	SavePlot string
	// Do not list the data files found
	Quiet bool
	// Figure size, only used when saving
	Width  vg.Length
	Height vg.Length

	// Where to show the figure when SavePlot is empty
	Viewer Viewer
	// Where progress messages go
	Writer io.Writer
}

func NewZeroConfig() Config {
	return Config{
		Width:  chart.DefaultWidth,
		Height: chart.DefaultHeight,
		Writer: os.Stdout,
	}
}

func (cfg *Config) Validate() error {
	if cfg.DataDir == "" {
		return errors.New("no data directory given")
	}

	if cfg.SavePlot != "" {
		if cfg.Width <= 0 || cfg.Height <= 0 {
			return errors.Errorf("invalid figure size %vx%v", cfg.Width, cfg.Height)
		}

		if _, err := chart.Format(cfg.SavePlot); err != nil {
			return err
		}
	} else if cfg.Viewer == nil {
		return errors.New("no viewer to show the plot")
	}

	if cfg.Writer == nil {
		cfg.Writer = io.Discard
	}

	return nil
}
