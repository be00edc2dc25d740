// Package graphic shows a chart.Figure in the terminal.
package graphic

import (
	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"

	"github.com/tcc-tools/fftplot/chart"
)

const (
	// PointRune marks a sample
	PointRune rune = '•'

	// LineRune fills the gap between two samples
	LineRune rune = '·'
)

var (
	// StyleDefault is used for text and borders
	StyleDefault = termbox.ColorDefault
	// StyleDefaultBack is the background of every cell
	StyleDefaultBack = termbox.ColorDefault
	// StyleAxis is used for the zero line
	StyleAxis = termbox.ColorBlack | termbox.AttrBold

	// StyleTraces colors the real and imaginary traces, in that order
	StyleTraces = [2]termbox.Attribute{
		termbox.ColorBlue,
		termbox.ColorYellow,
	}
)

// Display draws figures on the termbox screen.
type Display struct {
	restore func()
}

// New returns a display. The terminal is only taken over by Show.
func New() *Display {
	return &Display{}
}

// Init takes over the terminal.
func (d *Display) Init() error {
	restore, err := normalizeTerminal()
	if err != nil {
		return errors.Wrap(err, "failed to normalize terminal")
	}

	if err = termbox.Init(); err != nil {
		restore()
		return errors.Wrap(err, "failed to init termbox")
	}

	termbox.HideCursor()
	termbox.SetInputMode(termbox.InputEsc)

	d.restore = restore

	return nil
}

// Close gives the terminal back.
func (d *Display) Close() error {
	termbox.Close()

	if d.restore != nil {
		d.restore()
		d.restore = nil
	}

	return nil
}

// Show draws fig and blocks until the user quits with q, Esc or Ctrl+C.
func (d *Display) Show(fig chart.Figure) error {
	if err := d.Init(); err != nil {
		return err
	}
	defer d.Close()

	if err := d.Draw(fig); err != nil {
		return err
	}

	for {
		switch ev := termbox.PollEvent(); ev.Type {
		case termbox.EventKey:
			if quitKey(ev) {
				return nil
			}

		case termbox.EventResize:
			if err := d.Draw(fig); err != nil {
				return err
			}

		case termbox.EventError:
			return errors.Wrap(ev.Err, "terminal event")

		case termbox.EventInterrupt:
			return nil
		}
	}
}

func quitKey(ev termbox.Event) bool {
	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return true
	}

	return ev.Ch == 'q' || ev.Ch == 'Q'
}

// Draw renders every panel of fig into its tile of the screen.
func (d *Display) Draw(fig chart.Figure) error {
	if err := termbox.Clear(StyleDefault, StyleDefaultBack); err != nil {
		return err
	}

	width, height := termbox.Size()

	for _, t := range layout(width, height) {
		drawPanel(termbox.SetCell, fig.Panels[t.row][t.col], t.rect)
	}

	return termbox.Flush()
}
