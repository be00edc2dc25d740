// Package fftplot plots the input and output of the FFT filter test.
package fftplot

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/tcc-tools/fftplot/chart"
	"github.com/tcc-tools/fftplot/dataset"
)

// Run validates the data directory, loads the four series and either saves
// the figure to cfg.SavePlot or hands it to cfg.Viewer.
func Run(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	// the listing comes first so a wrong file count shows what was counted
	names, err := dataset.Scan(cfg.DataDir)
	if !cfg.Quiet && len(names) > 0 {
		fmt.Fprintf(cfg.Writer, "data files in %s:\n", cfg.DataDir)
		for _, name := range names {
			fmt.Fprintf(cfg.Writer, "- %s\n", name)
		}
	}

	if err != nil {
		return err
	}

	set, err := dataset.Load(cfg.DataDir)
	if err != nil {
		return errors.Wrap(err, "failed to load data")
	}

	fig := chart.NewFigure(set)

	if cfg.SavePlot == "" {
		return errors.Wrap(cfg.Viewer.Show(fig), "failed to show plot")
	}

	if err = fig.Save(cfg.SavePlot, cfg.Width, cfg.Height); err != nil {
		return errors.Wrap(err, "failed to save plot")
	}

	fmt.Fprintf(cfg.Writer, "Saved plot to %s\n", cfg.SavePlot)

	return nil
}
