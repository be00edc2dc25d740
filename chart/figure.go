// Package chart lays out and renders the input/output comparison figure.
package chart

import (
	"github.com/tcc-tools/fftplot/dataset"

	"gonum.org/v1/gonum/floats"
)

// Figure grid size.
const (
	Rows = 2
	Cols = 2
)

// Axis labels.
const (
	LabelChannels  = "Channels"
	LabelFrequency = "Frequency"
)

// Trace names, shown in the legend of the first panel.
const (
	TraceReal = "real"
	TraceImag = "imaginary"
)

// Panel is one chart of the figure.
type Panel struct {
	Title  string
	XLabel string
	Series dataset.Series
	// Legend marks the panel that names the traces
	Legend bool
}

// Index returns the sample index shared by both traces of the panel.
func (p Panel) Index() []float64 {
	return Index(p.Series.Len())
}

// Figure is a Rows x Cols grid of panels.
type Figure struct {
	Panels [Rows][Cols]Panel
}

// NewFigure places the inputs on the top row and the outputs below, X
// polarization on the left.
func NewFigure(set *dataset.Set) Figure {
	return Figure{
		Panels: [Rows][Cols]Panel{
			{
				{Title: "Input POL_X", XLabel: LabelChannels, Series: set.InputX, Legend: true},
				{Title: "Input POL_Y", XLabel: LabelChannels, Series: set.InputY},
			},
			{
				{Title: "Output POL_X", XLabel: LabelFrequency, Series: set.OutputX},
				{Title: "Output POL_Y", XLabel: LabelFrequency, Series: set.OutputY},
			},
		},
	}
}

// Index returns 1, 2, ..., n.
func Index(n int) []float64 {
	switch {
	case n < 1:
		return nil
	case n == 1:
		return []float64{1}
	}

	return floats.Span(make([]float64, n), 1, float64(n))
}
