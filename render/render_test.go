// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"encoding/json"
	"image/color"
	"strings"
	"testing"

	"github.com/aclements/chart2d/engine"
	"github.com/aclements/chart2d/opt"
	"github.com/aclements/chart2d/style"
	"github.com/aclements/go-gg/table"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineChart(t *testing.T) *engine.GenericChart {
	t.Helper()
	c, err := engine.Default().Line([]int{0, 1, 2}, []float64{1, 4, 9}, engine.LineParams{
		ShowMarkers: opt.Some(true),
		TraceParams: engine.TraceParams{Name: opt.Some("squares")},
	})
	require.NoError(t, err)
	return c.WithTitle("growth")
}

func TestParseFormat(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Format
	}{
		{"svg", FormatSVG},
		{"HTML", FormatHTML},
		{".json", FormatJSON},
	} {
		got, err := ParseFormat(test.in)
		if assert.NoError(t, err, test.in) {
			assert.Equal(t, test.want, got)
		}
	}
	_, err := ParseFormat("png")
	assert.True(t, errors.IsNotValid(err))

	assert.Equal(t, FormatHTML, FormatOf("out/chart.html", FormatSVG))
	assert.Equal(t, FormatSVG, FormatOf("chart", FormatSVG))
	assert.Equal(t, FormatJSON, FormatOf("chart.tar", FormatJSON))
	assert.Equal(t, ".svg", FormatSVG.Ext())
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, lineChart(t), FormatJSON, 0, 0))

	var fig struct {
		Data []struct {
			Type string
			Mode string
			Name string
			X    []float64
		}
		Layout struct {
			Title struct{ Text string }
		}
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fig))
	require.Len(t, fig.Data, 1)
	assert.Equal(t, "scatter", fig.Data[0].Type)
	assert.Equal(t, "lines+markers", fig.Data[0].Mode)
	assert.Equal(t, "squares", fig.Data[0].Name)
	assert.Equal(t, []float64{0, 1, 2}, fig.Data[0].X)
	assert.Equal(t, "growth", fig.Layout.Title.Text)
}

func TestHTML(t *testing.T) {
	c := lineChart(t)
	bars, err := engine.Default().Column([]int{3, 1, 2}, engine.BarParams{
		Keys:        opt.Some[table.Slice]([]string{"a", "b", "c"}),
		TraceParams: engine.TraceParams{Name: opt.Some("counts")},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, engine.Combine(bars, c), 400, 300))
	out := buf.String()
	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, "growth")
	assert.Contains(t, out, "counts")
	assert.Contains(t, out, "squares")
	assert.Contains(t, out, "width:600px", "layout size wins")
}

func TestHTMLEmpty(t *testing.T) {
	err := HTML(new(bytes.Buffer), new(engine.GenericChart), 100, 100)
	assert.True(t, errors.IsNotValid(err))
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, lineChart(t).WithSize(320, 240), FormatSVG, 0, 0))
	out := buf.String()
	assert.True(t, strings.Contains(out, "<svg"), "not an SVG image")
	assert.Contains(t, out, `width="320"`)
	assert.Contains(t, out, "growth")
}

func TestSVGBars(t *testing.T) {
	c, err := engine.Default().Bar([]float64{2, 5}, engine.BarParams{
		Keys: opt.Some[table.Slice]([]string{"x", "y"}),
	})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, c, 200, 200))
	assert.Contains(t, buf.String(), "<path")

	// Bars can't share a category axis with categorical data.
	pts, err := engine.Default().Point([]string{"p", "q"}, []int{1, 2}, engine.PointParams{})
	require.NoError(t, err)
	col, err := engine.Default().Column([]int{1, 2}, engine.BarParams{})
	require.NoError(t, err)
	err = SVG(new(bytes.Buffer), engine.Combine(pts, col), 200, 200)
	assert.True(t, errors.IsNotSupported(err), "%v", err)
}

func TestStackTraces(t *testing.T) {
	mk := func(ys []float64, norm style.GroupNorm) *plotTrace {
		tr := &engine.Trace{
			Type:       engine.TypeScatter,
			X:          []int{0, 1},
			Y:          ys,
			StackGroup: opt.Some("g"),
			GroupNorm:  opt.Some(norm),
		}
		pt, err := newPlotTrace(tr, "#000000")
		require.NoError(t, err)
		return pt
	}

	ts := []*plotTrace{mk([]float64{1, 2}, style.NoNorm), mk([]float64{3, 4}, style.NoNorm)}
	require.NoError(t, stackTraces(ts))
	assert.Equal(t, []float64{1, 2}, ts[0].xy[1])
	assert.Equal(t, []float64{4, 6}, ts[1].xy[1])
	assert.Equal(t, style.ToNextY, ts[1].fill)

	ts = []*plotTrace{mk([]float64{1, 1}, style.Percent), mk([]float64{3, 1}, style.Percent)}
	require.NoError(t, stackTraces(ts))
	assert.Equal(t, []float64{25, 50}, ts[0].xy[1])
	assert.Equal(t, []float64{100, 100}, ts[1].xy[1])

	// A column that sums to zero normalizes to zero.
	ts = []*plotTrace{mk([]float64{0, 1}, style.Percent), mk([]float64{0, 3}, style.Percent)}
	require.NoError(t, stackTraces(ts))
	assert.Equal(t, []float64{0, 25}, ts[0].xy[1])
	assert.Equal(t, []float64{0, 100}, ts[1].xy[1])

	ts = []*plotTrace{mk([]float64{1, 1}, style.NoNorm), mk([]float64{3}, style.NoNorm)}
	assert.True(t, errors.IsNotValid(stackTraces(ts)))
}

func TestMarkerColors(t *testing.T) {
	tr := &engine.Trace{
		Opacity: opt.Some(0.5),
		Marker: opt.Some(style.Marker{
			Color:        opt.Some(style.ColorFromStrings([]string{"#ff0000", "#0000ff"})),
			MultiOpacity: opt.Some([]float64{1, 0}),
		}),
	}
	cs := markerColors(tr, color.Black, 2)
	assert.Equal(t, color.NRGBA{0xff, 0, 0, 0x80}, cs[0])
	assert.Equal(t, color.NRGBA{0, 0, 0xff, 0}, cs[1])
}

func TestMarkerColorScale(t *testing.T) {
	mk := func(scale style.Colorscale) []color.Color {
		tr := &engine.Trace{
			Marker: opt.Some(style.Marker{
				Color:      opt.Some(style.ColorFromValues([]float64{10, 0, 5})),
				ColorScale: opt.Some(scale),
			}),
		}
		return markerColors(tr, color.Black, 3)
	}

	cs := mk(style.Greys)
	pal := style.Greys.Palette()
	assert.Equal(t, color.NRGBAModel.Convert(pal.Map(1)), cs[0], "max value maps to the top of the scale")
	assert.Equal(t, color.NRGBAModel.Convert(pal.Map(0)), cs[1], "min value maps to the bottom of the scale")
	assert.Equal(t, color.NRGBAModel.Convert(pal.Map(0.5)), cs[2])
	assert.NotEqual(t, cs[0], cs[1])

	assert.NotEqual(t, cs[0], mk(style.Viridis)[0], "colorscale selects the palette")
}

func TestFillPolygon(t *testing.T) {
	mk := func(x, y []float64, fill style.Fill) *plotTrace {
		return &plotTrace{xy: [2]table.Slice{x, y}, fill: fill}
	}
	x, y := []float64{1, 2, 3}, []float64{4, 5, 6}
	prev := mk([]float64{1, 2, 3}, []float64{1, 1, 1}, style.NoFill)

	for _, test := range []struct {
		name   string
		fill   style.Fill
		prev   *plotTrace
		xs, ys []float64
		ok     bool
	}{
		{"none", style.NoFill, nil, nil, nil, false},
		{"tozeroy", style.ToZeroY, nil, []float64{1, 2, 3, 3, 1}, []float64{4, 5, 6, 0, 0}, true},
		{"tozerox", style.ToZeroX, nil, []float64{1, 2, 3, 0, 0}, []float64{4, 5, 6, 6, 4}, true},
		{"toself", style.ToSelf, nil, x, y, true},
		{"tonexty", style.ToNextY, prev, []float64{1, 2, 3, 3, 2, 1}, []float64{4, 5, 6, 1, 1, 1}, true},
		{"tonexty first", style.ToNextY, nil, []float64{1, 2, 3, 3, 1}, []float64{4, 5, 6, 0, 0}, true},
		{"tonextx first", style.ToNextX, nil, []float64{1, 2, 3, 0, 0}, []float64{4, 5, 6, 6, 4}, true},
		{"tonext first", style.ToNext, nil, x, y, true},
		{"tonexty after bars", style.ToNextY, &plotTrace{bar: true}, []float64{1, 2, 3, 3, 1}, []float64{4, 5, 6, 0, 0}, true},
	} {
		xs, ys, ok := mk(x, y, test.fill).fillPolygon(test.prev)
		assert.Equal(t, test.ok, ok, test.name)
		assert.Equal(t, test.xs, xs, test.name)
		assert.Equal(t, test.ys, ys, test.name)
	}

	// Categorical or single-point traces don't fill.
	_, _, ok := mk(x, y, style.ToSelf).fillPolygon(nil)
	assert.True(t, ok)
	_, _, ok = (&plotTrace{xy: [2]table.Slice{[]string{"a", "b"}, y[:2]}, fill: style.ToSelf}).fillPolygon(nil)
	assert.False(t, ok)
	_, _, ok = mk(x[:1], y[:1], style.ToZeroY).fillPolygon(nil)
	assert.False(t, ok)
}

func TestEChartsHorizontalBars(t *testing.T) {
	c, err := engine.Default().Bar([]int{3, 1, 2}, engine.BarParams{
		Keys: opt.Some[table.Slice]([]string{"a", "b", "c"}),
	})
	require.NoError(t, err)
	ec, err := ECharts(c, 400, 300)
	require.NoError(t, err)
	bar, ok := ec.(*charts.Bar)
	require.True(t, ok, "%T", ec)
	require.NotEmpty(t, bar.YAxisList)
	require.NotEmpty(t, bar.XAxisList)
	assert.Equal(t, "category", bar.YAxisList[0].Type)
	assert.Equal(t, []string{"a", "b", "c"}, bar.YAxisList[0].Data)
	assert.Equal(t, "value", bar.XAxisList[0].Type)
}

func TestEChartsMarkerModes(t *testing.T) {
	for _, test := range []struct {
		mode   style.Mode
		symbol string
	}{
		{style.ModeMarkers, "circle"},
		{style.ModeNone, "none"},
		{style.ModeText, "none"},
	} {
		c, err := engine.Default().Scatter([]int{1, 2}, []int{3, 4}, test.mode, engine.ScatterParams{})
		require.NoError(t, err)
		ec, err := ECharts(c, 400, 300)
		require.NoError(t, err)
		sc, ok := ec.(*charts.Scatter)
		require.True(t, ok, "%T", ec)
		require.Len(t, sc.MultiSeries, 1)
		assert.Equal(t, test.symbol, sc.MultiSeries[0].Symbol, "mode %v", test.mode)
	}
}

func TestMinGap(t *testing.T) {
	assert.Equal(t, 1.0, minGap(nil))
	assert.Equal(t, 1.0, minGap([]float64{5, 5}))
	assert.Equal(t, 0.5, minGap([]float64{3, 1, 1.5, 3}))
}
