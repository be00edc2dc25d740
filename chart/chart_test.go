package chart

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"

	"github.com/tcc-tools/fftplot/dataset"
)

func testSet(n int) *dataset.Set {
	series := func(name string, scale float64) dataset.Series {
		samples := make([]complex128, n)
		for i := range samples {
			samples[i] = complex(scale*float64(i), -scale*float64(n-i))
		}
		return dataset.Series{Name: name, Samples: samples}
	}

	return &dataset.Set{
		InputX:  series(dataset.InputXFile, 1),
		InputY:  series(dataset.InputYFile, 2),
		OutputX: series(dataset.OutputXFile, 3),
		OutputY: series(dataset.OutputYFile, 4),
	}
}

func TestIndex(t *testing.T) {
	assert.Nil(t, Index(0))
	assert.Equal(t, []float64{1}, Index(1))
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, Index(5))
}

func TestNewFigure(t *testing.T) {
	set := testSet(8)
	fig := NewFigure(set)

	want := [Rows][Cols]struct {
		title, label, series string
	}{
		{
			{"Input POL_X", LabelChannels, dataset.InputXFile},
			{"Input POL_Y", LabelChannels, dataset.InputYFile},
		},
		{
			{"Output POL_X", LabelFrequency, dataset.OutputXFile},
			{"Output POL_Y", LabelFrequency, dataset.OutputYFile},
		},
	}

	for row := range want {
		for col, w := range want[row] {
			panel := fig.Panels[row][col]
			assert.Equal(t, w.title, panel.Title)
			assert.Equal(t, w.label, panel.XLabel)
			assert.Equal(t, w.series, panel.Series.Name)
			assert.Equal(t, row == 0 && col == 0, panel.Legend, panel.Title)
			assert.Len(t, panel.Index(), 8)
		}
	}
}

func TestPanelPlot(t *testing.T) {
	fig := NewFigure(testSet(16))

	pl, err := fig.Panels[0][0].Plot()
	require.NoError(t, err)
	assert.Equal(t, "Input POL_X", pl.Title.Text)
	assert.Equal(t, LabelChannels, pl.X.Label.Text)
	assert.True(t, pl.Legend.Top)
	assert.True(t, pl.Legend.Left)

	pl, err = fig.Panels[1][1].Plot()
	require.NoError(t, err)
	assert.Equal(t, LabelFrequency, pl.X.Label.Text)
}

func TestFormat(t *testing.T) {
	for path, want := range map[string]string{
		"out.png":          "png",
		"dir/out.SVG":      "svg",
		"out.pdf":          "pdf",
		"out.jpeg":         "jpeg",
		"no_extension":     DefaultFormat,
		"/tmp/a.b/figure":  DefaultFormat,
		"figure.final.eps": "eps",
	} {
		got, err := Format(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := Format("out.bmp")
	assert.True(t, errors.Is(err, ErrFormat), "got %v", err)
}

func TestSave(t *testing.T) {
	fig := NewFigure(testSet(64))
	dir := t.TempDir()

	t.Run("png", func(t *testing.T) {
		path := filepath.Join(dir, "out.png")
		require.NoError(t, fig.Save(path, 8*DefaultWidth/20, 4*DefaultHeight/10))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")))
	})

	t.Run("svg", func(t *testing.T) {
		path := filepath.Join(dir, "out.svg")
		require.NoError(t, fig.Save(path, DefaultWidth, DefaultHeight))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<svg")
	})

	t.Run("pdf", func(t *testing.T) {
		path := filepath.Join(dir, "out.pdf")
		require.NoError(t, fig.Save(path, DefaultWidth, DefaultHeight))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})

	t.Run("unsupported", func(t *testing.T) {
		path := filepath.Join(dir, "out.bmp")
		err := fig.Save(path, DefaultWidth, DefaultHeight)
		assert.True(t, errors.Is(err, ErrFormat), "got %v", err)

		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestNewLinesGaps(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)

	lines, err := newLines(Index(8), []float64{1, 2, nan, 3, inf, nan, 4, 5}, plotutil.Color(0))
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Len(t, lines[0].XYs, 2)
	assert.Len(t, lines[1].XYs, 1)
	assert.Equal(t, plotter.XYs{{X: 7, Y: 4}, {X: 8, Y: 5}}, lines[2].XYs)

	lines, err = newLines(Index(2), []float64{nan, nan}, plotutil.Color(0))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestSaveNonFinite(t *testing.T) {
	set := testSet(16)
	set.InputX.Samples[3] = complex(math.NaN(), 1)
	set.OutputY.Samples[7] = complex(2, math.Inf(-1))
	for i := range set.InputY.Samples {
		set.InputY.Samples[i] = complex(1, math.NaN())
	}

	path := filepath.Join(t.TempDir(), "gaps.png")
	require.NoError(t, NewFigure(set).Save(path, DefaultWidth/2, DefaultHeight/2))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
