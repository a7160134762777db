// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/aclements/chart2d/opt"
	"github.com/aclements/chart2d/style"
	"github.com/aclements/go-gg/table"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScatter(t *testing.T) {
	e := Default()
	x, y := []int{1, 2, 3}, []float64{4, 5, 6}
	c, err := e.Scatter(x, y, style.ModeLinesMarkers, ScatterParams{
		TraceParams: TraceParams{Name: opt.Some("s")},
		MarkerParams: MarkerParams{
			MarkerSymbol: opt.Some(style.Square),
			Marker:       opt.Some(style.Marker{Symbol: opt.Some(style.Circle), Size: opt.Some(3.0)}),
		},
		LineStyleParams: LineStyleParams{LineWidth: opt.Some(1.5)},
	})
	require.NoError(t, err)
	require.Len(t, c.Traces, 1)

	tr := c.Traces[0]
	assert.Equal(t, TypeScatter, tr.Type)
	assert.Equal(t, opt.Some(style.ModeLinesMarkers), tr.Mode)
	assert.Equal(t, opt.Some("s"), tr.Name)
	assert.Equal(t, 3, tr.Len())

	m, ok := tr.Marker.Get()
	require.True(t, ok)
	assert.Equal(t, opt.Some(style.Square), m.Symbol, "MarkerSymbol overrides Marker")
	assert.Equal(t, opt.Some(3.0), m.Size, "Marker fields are kept")

	l, ok := tr.Line.Get()
	require.True(t, ok)
	assert.Equal(t, opt.Some(1.5), l.Width)
	assert.True(t, l.Dash.IsNone())

	// The data are not copied.
	assert.Equal(t, table.Slice(x), tr.X)
	x[0] = 100
	assert.Equal(t, 100, tr.X.([]int)[0])
}

func TestScatterWebGL(t *testing.T) {
	c, err := Default().Scatter([]int{1}, []int{1}, style.ModeMarkers, ScatterParams{UseWebGL: opt.Some(true)})
	require.NoError(t, err)
	assert.Equal(t, TypeScatterGL, c.Traces[0].Type)
}

func TestPointMode(t *testing.T) {
	e := Default()
	for _, test := range []struct {
		p    PointParams
		want style.Mode
	}{
		{PointParams{}, style.ModeMarkers},
		{PointParams{TraceParams: TraceParams{TextPosition: opt.Some(style.TopCenter)}}, style.ModeMarkersText},
		{PointParams{TraceParams: TraceParams{MultiTextPosition: opt.Some([]style.TextPosition{style.Inside, style.Auto})}}, style.ModeMarkersText},
		{PointParams{TraceParams: TraceParams{Text: opt.Some("t")}}, style.ModeMarkers},
	} {
		c, err := e.Point([]int{1, 2}, []int{3, 4}, test.p)
		if assert.NoError(t, err) {
			assert.Equal(t, opt.Some(test.want), c.Traces[0].Mode)
		}
	}
}

func TestLineMode(t *testing.T) {
	e := Default()
	for _, test := range []struct {
		p    LineParams
		want style.Mode
	}{
		{LineParams{}, style.ModeLines},
		{LineParams{ShowMarkers: opt.Some(false)}, style.ModeLines},
		{LineParams{ShowMarkers: opt.Some(true)}, style.ModeLinesMarkers},
		{LineParams{ShowMarkers: opt.Some(true), TraceParams: TraceParams{TextPosition: opt.Some(style.TopLeft)}}, style.ModeLinesMarkersText},
	} {
		c, err := e.Line([]int{0, 1}, []int{0, 1}, test.p)
		if assert.NoError(t, err) {
			assert.Equal(t, opt.Some(test.want), c.Traces[0].Mode)
		}
	}
}

func TestBarColumn(t *testing.T) {
	e := Default()
	values := []float64{3, 1, 2}

	c, err := e.Column(values, BarParams{})
	require.NoError(t, err)
	tr := c.Traces[0]
	assert.Equal(t, TypeBar, tr.Type)
	assert.Equal(t, opt.Some(style.Vertical), tr.Orientation)
	assert.Equal(t, table.Slice([]float64{0, 1, 2}), tr.X)
	assert.Equal(t, table.Slice(values), tr.Y)

	keys := []string{"a", "b", "c"}
	c, err = e.Bar(values, BarParams{
		Keys: opt.Some[table.Slice](keys),
		BarMarkerParams: BarMarkerParams{
			MarkerPatternShape: opt.Some(style.DiagonalChecked),
		},
		Width: opt.Some[any](0.5),
	})
	require.NoError(t, err)
	tr = c.Traces[0]
	assert.Equal(t, opt.Some(style.Horizontal), tr.Orientation)
	assert.Equal(t, table.Slice(values), tr.X)
	assert.Equal(t, table.Slice(keys), tr.Y)
	m, _ := tr.Marker.Get()
	p, ok := m.Pattern.Get()
	require.True(t, ok)
	assert.Equal(t, opt.Some(style.DiagonalChecked), p.Shape)

	c, err = e.Column([]int{}, BarParams{})
	require.NoError(t, err)
	assert.Equal(t, 0, c.Traces[0].Len())
}

func TestDefaults(t *testing.T) {
	d := BuiltinDefaults()
	e := New(d)

	c, err := e.Point([]int{1}, []int{1}, PointParams{})
	require.NoError(t, err)
	assert.Equal(t, opt.Some(600), c.Layout.Width)
	assert.Equal(t, opt.Some(d.Template), c.Layout.Template)

	c, err = e.Point([]int{1}, []int{1}, PointParams{TraceParams: TraceParams{UseDefaults: opt.Some(false)}})
	require.NoError(t, err)
	assert.Equal(t, Layout{}, c.Layout)

	// A zero engine sets no size.
	c, err = new(Engine).Point([]int{1}, []int{1}, PointParams{})
	require.NoError(t, err)
	assert.True(t, c.Layout.Width.IsNone())
	assert.True(t, c.Layout.Template.IsSome())
}

func TestErrors(t *testing.T) {
	e := Default()
	x2 := []int{1, 2}
	for _, test := range []struct {
		name     string
		build    func() (*GenericChart, error)
		notValid bool
	}{
		{"length mismatch", func() (*GenericChart, error) {
			return e.Point(x2, []int{1}, PointParams{})
		}, true},
		{"nil x", func() (*GenericChart, error) {
			return e.Line(nil, x2, LineParams{})
		}, true},
		{"non-slice", func() (*GenericChart, error) {
			return e.Column(42, BarParams{})
		}, true},
		{"element type", func() (*GenericChart, error) {
			return e.Column([]struct{}{{}}, BarParams{})
		}, false},
		{"bad mode", func() (*GenericChart, error) {
			return e.Scatter(x2, x2, style.Mode(64), ScatterParams{})
		}, true},
		{"opacity", func() (*GenericChart, error) {
			return e.Point(x2, x2, PointParams{TraceParams: TraceParams{Opacity: opt.Some(1.5)}})
		}, true},
		{"multi opacity", func() (*GenericChart, error) {
			return e.Point(x2, x2, PointParams{TraceParams: TraceParams{MultiOpacity: opt.Some([]float64{0.5, -1})}})
		}, true},
		{"multi text length", func() (*GenericChart, error) {
			return e.Point(x2, x2, PointParams{TraceParams: TraceParams{MultiText: opt.Some([]string{"a"})}})
		}, true},
		{"text position", func() (*GenericChart, error) {
			return e.Point(x2, x2, PointParams{TraceParams: TraceParams{TextPosition: opt.Some(style.TextPosition("upstairs"))}})
		}, true},
		{"symbols length", func() (*GenericChart, error) {
			return e.Point(x2, x2, PointParams{MarkerParams: MarkerParams{MultiMarkerSymbol: opt.Some([]style.MarkerSymbol{style.Circle})}})
		}, true},
		{"multi color length", func() (*GenericChart, error) {
			return e.Point(x2, x2, PointParams{MarkerParams: MarkerParams{MarkerColor: opt.Some(style.ColorFromStrings([]string{"red"}))}})
		}, true},
		{"line width", func() (*GenericChart, error) {
			return e.Line(x2, x2, LineParams{LineStyleParams: LineStyleParams{LineWidth: opt.Some(-1.0)}})
		}, true},
		{"dash", func() (*GenericChart, error) {
			return e.Line(x2, x2, LineParams{LineStyleParams: LineStyleParams{LineDash: opt.Some(style.DrawingStyle("wavy"))}})
		}, true},
		{"keys length", func() (*GenericChart, error) {
			return e.Bar(x2, BarParams{Keys: opt.Some[table.Slice]([]string{"a"})})
		}, true},
		{"bar width", func() (*GenericChart, error) {
			return e.Bar(x2, BarParams{Width: opt.Some[any](-2)})
		}, true},
		{"bar widths", func() (*GenericChart, error) {
			return e.Bar(x2, BarParams{MultiWidth: opt.Some[table.Slice]([]string{"a", "b"})})
		}, true},
		{"base", func() (*GenericChart, error) {
			return e.Bar(x2, BarParams{Base: opt.Some[any]("zero")})
		}, true},
		{"NaN bar width", func() (*GenericChart, error) {
			return e.Bar(x2, BarParams{Width: opt.Some[any](math.NaN())})
		}, true},
		{"NaN bar widths", func() (*GenericChart, error) {
			return e.Column(x2, BarParams{MultiWidth: opt.Some[table.Slice]([]float64{0.5, math.NaN()})})
		}, true},
		{"NaN base", func() (*GenericChart, error) {
			return e.Column(x2, BarParams{Base: opt.Some[any](math.NaN())})
		}, true},
		{"pattern shapes", func() (*GenericChart, error) {
			return e.Column(x2, BarParams{BarMarkerParams: BarMarkerParams{MultiMarkerPatternShape: opt.Some([]style.PatternShape{"?", "/"})}})
		}, true},
	} {
		c, err := test.build()
		assert.Nil(t, c, test.name)
		if assert.Error(t, err, test.name) {
			assert.Equal(t, test.notValid, errors.IsNotValid(err), "%s: %v", test.name, err)
			assert.Equal(t, !test.notValid, errors.IsNotSupported(err), "%s: %v", test.name, err)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := Default().Point([]int{1, 2}, []int{1}, PointParams{})
	assert.EqualError(t, err, "point: y of length 1 for x of length 2 not valid")
}

func TestChartValue(t *testing.T) {
	c, err := New(Defaults{}).Point([]int{1}, []int{2}, PointParams{TraceParams: TraceParams{UseDefaults: opt.Some(false)}})
	require.NoError(t, err)

	c2 := c.WithTitle("t").WithSize(100, 200).WithLegend(false)
	assert.True(t, c.Layout.Title.IsNone(), "receiver unchanged")
	assert.Equal(t, opt.Some("t"), c2.Layout.Title)
	w, h := c2.Size(1, 1)
	assert.Equal(t, []int{100, 200}, []int{w, h})
	w, h = c.Size(1, 2)
	assert.Equal(t, []int{1, 2}, []int{w, h})

	d := c.WithXAxisTitle("x").WithYAxisTitle("y")
	all := Combine(c2, d, c)
	assert.Len(t, all.Traces, 3)
	assert.Equal(t, opt.Some("t"), all.Layout.Title)
	assert.Equal(t, opt.Some("x"), all.Layout.XAxisTitle)
	assert.Equal(t, opt.Some(100), all.Layout.Width)
}

func TestMarshalJSON(t *testing.T) {
	c, err := New(Defaults{}).Line([]int{0, 1}, []string{"a", "b"}, LineParams{
		ShowMarkers: opt.Some(true),
		TraceParams: TraceParams{
			Name:      opt.Some("l"),
			MultiText: opt.Some([]string{"p", "q"}),
		},
		LineStyleParams: LineStyleParams{
			LineColor: opt.Some(style.ColorFromString("red")),
			LineDash:  opt.Some(style.Dot),
		},
		FillParams: FillParams{Fill: opt.Some(style.ToZeroY)},
	})
	require.NoError(t, err)
	c = c.WithTitle("T")

	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"data": [{
			"type": "scatter",
			"x": [0, 1],
			"y": ["a", "b"],
			"mode": "lines+markers",
			"name": "l",
			"text": ["p", "q"],
			"line": {"color": "red", "dash": "dot"},
			"fill": "tozeroy"
		}],
		"layout": {
			"title": {"text": "T"}
		}
	}`, string(b))
}

func TestMarshalJSONTemplate(t *testing.T) {
	c, err := Default().Column([]int{5}, BarParams{})
	require.NoError(t, err)
	b, err := json.Marshal(c)
	require.NoError(t, err)

	var fig struct {
		Data   []map[string]any
		Layout struct {
			Width, Height int
			Template      struct {
				Layout struct {
					Colorway    []string
					PlotBGColor string `json:"plot_bgcolor"`
				}
			}
		}
	}
	require.NoError(t, json.Unmarshal(b, &fig))
	assert.Equal(t, 600, fig.Layout.Width)
	assert.Equal(t, DefaultColorway, fig.Layout.Template.Layout.Colorway)
	assert.Equal(t, "#e5ecf6", fig.Layout.Template.Layout.PlotBGColor)
	require.Len(t, fig.Data, 1)
	assert.Equal(t, "v", fig.Data[0]["orientation"])
	assert.NotContains(t, fig.Data[0], "marker", "empty marker is omitted")
}
