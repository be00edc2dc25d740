package chart

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Default figure size.
const (
	DefaultWidth  = 20 * vg.Inch
	DefaultHeight = 10 * vg.Inch
)

// DefaultFormat is used when the output path has no extension.
const DefaultFormat = "png"

// ErrFormat is returned for an output extension no canvas can write.
var ErrFormat = errors.New("unsupported image format")

var formats = map[string]bool{
	"eps":  true,
	"jpg":  true,
	"jpeg": true,
	"pdf":  true,
	"png":  true,
	"svg":  true,
	"tif":  true,
	"tiff": true,
}

// Format returns the image format for path, taken from its extension.
func Format(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return DefaultFormat, nil
	}

	if !formats[ext] {
		return "", errors.Wrapf(ErrFormat, "%q", ext)
	}

	return ext, nil
}

// Plot builds the gonum plot of a single panel.
func (p Panel) Plot() (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = p.Title
	pl.X.Label.Text = p.XLabel
	pl.Add(plotter.NewGrid())

	index := p.Index()

	re, err := newLines(index, p.Series.Real(), plotutil.Color(0))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to plot real part of %s", p.Series.Name)
	}

	im, err := newLines(index, p.Series.Imag(), plotutil.Color(1))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to plot imaginary part of %s", p.Series.Name)
	}

	for _, line := range append(re, im...) {
		pl.Add(line)
	}

	if p.Legend {
		if err = addLegend(pl, TraceReal, re, plotutil.Color(0)); err != nil {
			return nil, err
		}

		if err = addLegend(pl, TraceImag, im, plotutil.Color(1)); err != nil {
			return nil, err
		}

		pl.Legend.Top = true
		pl.Legend.Left = true
	}

	return pl, nil
}

// newLines returns one line per run of finite values. NaN and infinite
// samples leave a gap.
func newLines(x, y []float64, c color.Color) ([]*plotter.Line, error) {
	var (
		lines []*plotter.Line
		pts   plotter.XYs
	)

	flush := func() error {
		if len(pts) == 0 {
			return nil
		}

		line, err := newLine(pts, c)
		if err != nil {
			return err
		}

		lines = append(lines, line)
		pts = nil

		return nil
	}

	for i := range x {
		if math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		pts = append(pts, plotter.XY{X: x[i], Y: y[i]})
	}

	if err := flush(); err != nil {
		return nil, err
	}

	return lines, nil
}

func newLine(pts plotter.XYs, c color.Color) (*plotter.Line, error) {
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}

	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Color = c

	return line, nil
}

// addLegend names a trace. A trace without a single finite sample still
// gets an entry.
func addLegend(pl *plot.Plot, name string, lines []*plotter.Line, c color.Color) error {
	if len(lines) > 0 {
		pl.Legend.Add(name, lines[0])
		return nil
	}

	thumb, err := newLine(plotter.XYs{}, c)
	if err != nil {
		return err
	}

	pl.Legend.Add(name, thumb)

	return nil
}

// Draw renders every panel onto dc, one tile each.
func (f Figure) Draw(dc draw.Canvas) error {
	plots := make([][]*plot.Plot, Rows)

	for row := range f.Panels {
		plots[row] = make([]*plot.Plot, Cols)

		for col, panel := range f.Panels[row] {
			pl, err := panel.Plot()
			if err != nil {
				return err
			}

			plots[row][col] = pl
		}
	}

	tiles := draw.Tiles{
		Rows:      Rows,
		Cols:      Cols,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	canvases := plot.Align(plots, tiles, dc)

	for row := range plots {
		for col := range plots[row] {
			plots[row][col].Draw(canvases[row][col])
		}
	}

	return nil
}

// Save renders the figure to path. The image format follows the extension of
// path.
func (f Figure) Save(path string, width, height vg.Length) error {
	format, err := Format(path)
	if err != nil {
		return err
	}

	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return errors.Wrap(err, "failed to create canvas")
	}

	if err = f.Draw(draw.New(c)); err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create plot file")
	}

	if _, err = c.WriteTo(out); err != nil {
		out.Close()
		return errors.Wrapf(err, "failed to write %s", path)
	}

	return errors.Wrapf(out.Close(), "failed to close %s", path)
}
