// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/aclements/chart2d/engine"
	"github.com/aclements/chart2d/style"
	"github.com/aclements/go-moremath/stats"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"
	"github.com/juju/errors"
)

// HTML renders c as a standalone HTML page that draws the chart with
// ECharts. width and height are used unless c's layout sets a size.
//
// Traces that draw lines become line series, marker and text traces
// become scatter series, and bars become bar series, all overlapped on
// one pair of axes.
func HTML(w io.Writer, c *engine.GenericChart, width, height int) error {
	ec, err := ECharts(c, width, height)
	if err != nil {
		return err
	}
	return errors.Annotate(ec.Render(w), "rendering HTML")
}

// An EChart is a go-echarts chart that can be rendered.
type EChart interface {
	Render(w io.Writer) error
}

type echartsHost interface {
	EChart
	Overlap(a ...charts.Overlaper)
	SetGlobalOptions(options ...charts.GlobalOpts) *charts.RectChart
}

// ECharts converts c into a go-echarts chart.
func ECharts(c *engine.GenericChart, width, height int) (EChart, error) {
	width, height = c.Size(width, height)
	colorway := engine.DefaultColorway
	var background string
	if t, ok := c.Layout.Template.Get(); ok {
		if len(t.Colorway) > 0 {
			colorway = t.Colorway
		}
		background = t.Background
	}

	// Bar keys and non-numeric data go on category axes.
	xCat, yCat := false, false
	for i := range c.Traces {
		t := &c.Traces[i]
		if t.Type == engine.TypeBar {
			if t.Orientation.OrElse(style.Vertical) == style.Horizontal {
				yCat = true
			} else {
				xCat = true
			}
		}
		xCat = xCat || !engine.IsNumeric(t.X)
		yCat = yCat || !engine.IsNumeric(t.Y)
	}
	var xCats, yCats categories
	for i := range c.Traces {
		if xCat {
			xCats.add(engine.Strings(c.Traces[i].X))
		}
		if yCat {
			yCats.add(engine.Strings(c.Traces[i].Y))
		}
	}
	cat := [2]bool{xCat, yCat}

	var host echartsHost
	var overlaps []charts.Overlaper
	for i := range c.Traces {
		t := &c.Traces[i]
		color := colorway[i%len(colorway)]
		name := t.Name.OrElse(fmt.Sprintf("trace %d", i))
		var ch echartsHost
		switch {
		case t.Type == engine.TypeBar:
			ch = charts.NewBar().AddSeries(name, barData(t, cat), seriesOpts(t, color)...)
		case t.Mode.OrElse(style.ModeLinesMarkers).Has(style.ModeLines):
			ch = charts.NewLine().AddSeries(name, lineData(t, cat), seriesOpts(t, color)...)
		default:
			ch = charts.NewScatter().AddSeries(name, scatterData(t, cat), seriesOpts(t, color)...)
		}
		if host == nil {
			host = ch
		} else {
			overlaps = append(overlaps, ch.(charts.Overlaper))
		}
	}
	if host == nil {
		return nil, errors.NotValidf("chart with no traces")
	}
	host.Overlap(overlaps...)

	xAxis := opts.XAxis{Type: "value", Name: c.Layout.XAxisTitle.OrElse("")}
	yAxis := opts.YAxis{Type: "value", Name: c.Layout.YAxisTitle.OrElse("")}
	if xCat {
		xAxis.Type, xAxis.Data = "category", xCats.names
	}
	if yCat {
		yAxis.Type, yAxis.Data = "category", yCats.names
	}
	if xCat {
		// Rendering replaces the X axis data with the host's.
		setXAxis(host, xCats.names)
	}

	host.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:           fmt.Sprintf("%dpx", width),
			Height:          fmt.Sprintf("%dpx", height),
			ChartID:         "chart" + strings.ReplaceAll(uuid.New().String(), "-", ""),
			BackgroundColor: background,
			PageTitle:       c.Layout.Title.OrElse("chart2d"),
		}),
		charts.WithTitleOpts(opts.Title{Title: c.Layout.Title.OrElse("")}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(c.Layout.ShowLegend.OrElse(len(c.Traces) > 1))}),
		charts.WithXAxisOpts(xAxis),
		charts.WithYAxisOpts(yAxis),
	)
	return host, nil
}

func setXAxis(host echartsHost, names []string) {
	switch h := host.(type) {
	case *charts.Line:
		h.SetXAxis(names)
	case *charts.Scatter:
		h.SetXAxis(names)
	case *charts.Bar:
		h.SetXAxis(names)
	}
}

// categories collects distinct category names in order of first
// appearance.
type categories struct {
	names []string
	seen  map[string]bool
}

func (c *categories) add(names []string) {
	if c.seen == nil {
		c.seen = make(map[string]bool)
	}
	for _, n := range names {
		if !c.seen[n] {
			c.seen[n] = true
			c.names = append(c.names, n)
		}
	}
}

// points returns the [x, y] value pairs of t. Coordinates on a
// category axis are category names.
func points(t *engine.Trace, cat [2]bool) [][]any {
	xs, ys := values(t.X, cat[0]), values(t.Y, cat[1])
	out := make([][]any, len(xs))
	for i := range xs {
		out[i] = []any{xs[i], ys[i]}
	}
	return out
}

// values returns the elements of s as numbers, or as strings if s is
// not numeric or cat is set.
func values(s any, cat bool) []any {
	if fs, ok := engine.Floats(s); ok && !cat {
		out := make([]any, len(fs))
		for i, f := range fs {
			out[i] = f
		}
		return out
	}
	ss := engine.Strings(s)
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func itemName(t *engine.Trace, i int) string {
	if ts, ok := t.MultiText.Get(); ok {
		return ts[i]
	}
	return t.Text.OrElse("")
}

// datumColor returns the CSS color of datum i, or "" for the series
// color.
func datumColor(t *engine.Trace, i int) string {
	m, _ := t.Marker.Get()
	c, ok := m.Color.Get()
	if !ok || !c.IsMulti() {
		return ""
	}
	lo, hi := stats.Bounds(c.Values())
	return c.CSS(i, m.ColorScale.OrElse(style.Viridis), lo, hi)
}

func scatterData(t *engine.Trace, cat [2]bool) []opts.ScatterData {
	m, _ := t.Marker.Get()
	symbols := m.MultiSymbol.OrElse(nil)
	pts := points(t, cat)
	out := make([]opts.ScatterData, len(pts))
	for i, p := range pts {
		out[i] = opts.ScatterData{Name: itemName(t, i), Value: p}
		if symbols != nil {
			out[i].Symbol = echartsSymbol(symbols[i])
		}
	}
	return out
}

func lineData(t *engine.Trace, cat [2]bool) []opts.LineData {
	m, _ := t.Marker.Get()
	symbols := m.MultiSymbol.OrElse(nil)
	pts := points(t, cat)
	out := make([]opts.LineData, len(pts))
	for i, p := range pts {
		out[i] = opts.LineData{Name: itemName(t, i), Value: p}
		if symbols != nil {
			out[i].Symbol = echartsSymbol(symbols[i])
		}
	}
	return out
}

func barData(t *engine.Trace, cat [2]bool) []opts.BarData {
	pts := points(t, cat)
	out := make([]opts.BarData, len(pts))
	for i, p := range pts {
		out[i] = opts.BarData{Name: itemName(t, i), Value: p}
		if c := datumColor(t, i); c != "" {
			out[i].ItemStyle = &opts.ItemStyle{Color: c}
		}
	}
	return out
}

func seriesOpts(t *engine.Trace, def string) []charts.SeriesOpts {
	m, _ := t.Marker.Get()
	color := def
	if c, ok := m.Color.Get(); ok && !c.IsMulti() {
		color = c.CSS(0, "", 0, 0)
	}
	item := opts.ItemStyle{Color: color}
	if o, ok := t.Opacity.Get(); ok {
		item.Opacity = opts.Float(float32(o))
	}
	if l, ok := m.Outline.Get(); ok {
		if c, ok := l.Color.Get(); ok {
			item.BorderColor = c.CSS(0, "", 0, 0)
		}
		item.BorderWidth = float32(l.Width.OrElse(0))
	}
	so := []charts.SeriesOpts{charts.WithItemStyleOpts(item)}

	mode := t.Mode.OrElse(style.ModeLinesMarkers)
	symbol := echartsSymbol(m.Symbol.OrElse(style.Circle))
	var size any
	if s, ok := m.Size.Get(); ok {
		size = s
	}
	switch {
	case t.Type == engine.TypeBar:
		bc := opts.BarChart{}
		if w, ok := t.Width.Get(); ok {
			// ECharts bar widths are in pixels or percent of the
			// category width.
			if f, ok := engine.ToFloat(w); ok {
				bc.BarWidth = fmt.Sprintf("%g%%", 100*f)
			}
		}
		so = append(so, charts.WithBarChartOpts(bc))
	case mode.Has(style.ModeLines):
		so = append(so, charts.WithLineChartOpts(opts.LineChart{
			ShowSymbol: opts.Bool(mode.Has(style.ModeMarkers)),
			Symbol:     symbol,
			SymbolSize: size,
			Stack:      t.StackGroup.OrElse(""),
		}))
		l, _ := t.Line.Get()
		ls := opts.LineStyle{Color: color, Type: echartsDash(l.Dash.OrElse(style.Solid))}
		if c, ok := l.Color.Get(); ok && !c.IsMulti() {
			ls.Color = c.CSS(0, "", 0, 0)
		}
		if w, ok := l.Width.Get(); ok {
			ls.Width = float32(w)
		}
		so = append(so, charts.WithLineStyleOpts(ls))
	default:
		if !mode.Has(style.ModeMarkers) {
			symbol = "none"
		}
		so = append(so, charts.WithScatterChartOpts(opts.ScatterChart{
			Symbol:     symbol,
			SymbolSize: size,
		}))
	}

	if fill := t.Fill.OrElse(style.NoFill); fill != style.NoFill || t.StackGroup.IsSome() {
		as := opts.AreaStyle{Opacity: opts.Float(0.5)}
		if c, ok := t.FillColor.Get(); ok && !c.IsMulti() {
			as.Color = c.CSS(0, "", 0, 0)
		}
		so = append(so, charts.WithAreaStyleOpts(as))
	}

	if mode.Has(style.ModeText) || (t.Type == engine.TypeBar && (t.Text.IsSome() || t.MultiText.IsSome())) {
		so = append(so, charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Position:  echartsPosition(t.TextPosition.OrElse(style.TopCenter)),
			Formatter: "{b}",
		}))
	}
	return so
}

func echartsSymbol(s style.MarkerSymbol) string {
	switch s {
	case style.Square:
		return "rect"
	case style.Diamond:
		return "diamond"
	case style.TriangleUp, style.TriangleDown, style.TriangleLeft, style.TriangleRight:
		return "triangle"
	}
	return "circle"
}

func echartsDash(d style.DrawingStyle) string {
	switch d {
	case style.Dot:
		return "dotted"
	case style.Dash, style.DashDot, style.LongDash, style.LongDashDot:
		return "dashed"
	}
	return "solid"
}

func echartsPosition(p style.TextPosition) string {
	switch {
	case p == style.Inside || p == style.MiddleCenter:
		return "inside"
	case strings.HasPrefix(string(p), "bottom"):
		return "bottom"
	case p == style.MiddleLeft:
		return "left"
	case p == style.MiddleRight:
		return "right"
	}
	return "top"
}
