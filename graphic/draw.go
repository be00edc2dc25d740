package graphic

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/nsf/termbox-go"
	"gonum.org/v1/gonum/floats"

	"github.com/tcc-tools/fftplot/chart"
)

// setCellFunc matches termbox.SetCell.
type setCellFunc func(x, y int, ch rune, fg, bg termbox.Attribute)

type rect struct {
	x, y, w, h int
}

// inner returns r without its border.
func (r rect) inner() rect {
	return rect{r.x + 1, r.y + 1, r.w - 2, r.h - 2}
}

type tile struct {
	row, col int
	rect
}

// minimum tile size that still leaves room for a trace
const (
	minTileWidth  = 12
	minTileHeight = 6
)

// layout splits the screen into chart.Rows x chart.Cols tiles.
func layout(width, height int) []tile {
	tiles := make([]tile, 0, chart.Rows*chart.Cols)

	for row := 0; row < chart.Rows; row++ {
		y0 := row * height / chart.Rows
		y1 := (row + 1) * height / chart.Rows

		for col := 0; col < chart.Cols; col++ {
			x0 := col * width / chart.Cols
			x1 := (col + 1) * width / chart.Cols

			tiles = append(tiles, tile{row, col, rect{x0, y0, x1 - x0, y1 - y0}})
		}
	}

	return tiles
}

func drawPanel(set setCellFunc, p chart.Panel, r rect) {
	if r.w < minTileWidth || r.h < minTileHeight {
		return
	}

	drawBorder(set, r)
	drawText(set, r.x+(r.w-len(p.Title)-2)/2, r.y, r.x+r.w-1, " "+p.Title+" ", StyleDefault|termbox.AttrBold)
	drawText(set, r.x+(r.w-len(p.XLabel)-2)/2, r.y+r.h-1, r.x+r.w-1, " "+p.XLabel+" ", StyleDefault)

	area := r.inner()
	traces := [2][]float64{p.Series.Real(), p.Series.Imag()}
	lo, hi := bounds(traces[0], traces[1])

	if lo < 0 && hi > 0 {
		zero := scaleRow(0, lo, hi, area)
		for x := area.x; x < area.x+area.w; x++ {
			set(x, zero, '─', StyleAxis, StyleDefaultBack)
		}
	}

	for idx, values := range traces {
		drawTrace(set, values, lo, hi, area, StyleTraces[idx])
	}

	maxX := area.x + area.w
	drawText(set, area.x, area.y, maxX, formatValue(hi), StyleDefault)
	drawText(set, area.x, area.y+area.h-1, maxX, formatValue(lo), StyleDefault)

	if p.Legend {
		legend := [2]string{"━ " + chart.TraceReal, "━ " + chart.TraceImag}

		x := maxX - utf8.RuneCountInString(legend[1])
		if x < area.x {
			x = area.x
		}

		for idx, text := range legend {
			drawText(set, x, area.y+idx, maxX, text, StyleTraces[idx])
		}
	}
}

func drawBorder(set setCellFunc, r rect) {
	right, bottom := r.x+r.w-1, r.y+r.h-1

	for x := r.x + 1; x < right; x++ {
		set(x, r.y, '─', StyleDefault, StyleDefaultBack)
		set(x, bottom, '─', StyleDefault, StyleDefaultBack)
	}

	for y := r.y + 1; y < bottom; y++ {
		set(r.x, y, '│', StyleDefault, StyleDefaultBack)
		set(right, y, '│', StyleDefault, StyleDefaultBack)
	}

	set(r.x, r.y, '┌', StyleDefault, StyleDefaultBack)
	set(right, r.y, '┐', StyleDefault, StyleDefaultBack)
	set(r.x, bottom, '└', StyleDefault, StyleDefaultBack)
	set(right, bottom, '┘', StyleDefault, StyleDefaultBack)
}

// drawText writes s from (x, y), stopping before maxX.
func drawText(set setCellFunc, x, y, maxX int, s string, fg termbox.Attribute) {
	for _, ch := range s {
		if x >= maxX {
			return
		}

		set(x, y, ch, fg, StyleDefaultBack)
		x++
	}
}

func drawTrace(set setCellFunc, values []float64, lo, hi float64, area rect, fg termbox.Attribute) {
	lastX, lastY := -1, -1

	for idx, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			lastX = -1
			continue
		}

		x := scaleCol(idx, len(values), area)
		y := scaleRow(v, lo, hi, area)

		if lastX >= 0 {
			drawLine(set, lastX, lastY, x, y, fg)
		}

		set(x, y, PointRune, fg, StyleDefaultBack)
		lastX, lastY = x, y
	}
}

// drawLine fills the cells between two points, endpoints excluded.
func drawLine(set setCellFunc, x0, y0, x1, y1 int, fg termbox.Attribute) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy

	x, y := x0, y0
	for {
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}

		if e2 <= dx {
			e += dx
			y += sy
		}

		if x == x1 && y == y1 {
			return
		}

		set(x, y, LineRune, fg, StyleDefaultBack)
	}
}

// bounds returns the range of the finite values over all traces, widened
// when flat.
func bounds(traces ...[]float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)

	for _, values := range traces {
		values = finite(values)
		if len(values) == 0 {
			continue
		}

		lo = math.Min(lo, floats.Min(values))
		hi = math.Max(hi, floats.Max(values))
	}

	switch {
	case math.IsInf(lo, 1):
		return -1, 1
	case lo == hi:
		return lo - 1, hi + 1
	}

	return lo, hi
}

func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

func scaleCol(idx, count int, area rect) int {
	if count < 2 {
		return area.x
	}

	return area.x + int(math.Round(float64(idx*(area.w-1))/float64(count-1)))
}

func scaleRow(v, lo, hi float64, area rect) int {
	frac := (hi - v) / (hi - lo)
	return area.y + int(math.Round(frac*float64(area.h-1)))
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
