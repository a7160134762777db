// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"
	"io"
	"math"
	"sort"

	"github.com/aclements/chart2d/engine"
	"github.com/aclements/chart2d/style"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/juju/errors"
)

// SVG renders c as an SVG image of the given size. A size set in c's
// layout takes precedence.
//
// The SVG renderer is a subset of what the chart describes: every
// marker is drawn as a circle, and line widths and dash styles are
// not drawn.
func SVG(w io.Writer, c *engine.GenericChart, width, height int) error {
	p, err := Plot(c)
	if err != nil {
		return err
	}
	width, height = c.Size(width, height)
	return errors.Annotate(p.WriteSVG(w, width, height), "rendering SVG")
}

// Plot converts c into a go-gg plot.
func Plot(c *engine.GenericChart) (*gg.Plot, error) {
	colorway := engine.DefaultColorway
	if t, ok := c.Layout.Template.Get(); ok && len(t.Colorway) > 0 {
		colorway = t.Colorway
	}

	ts := make([]*plotTrace, len(c.Traces))
	for i := range c.Traces {
		t, err := newPlotTrace(&c.Traces[i], colorway[i%len(colorway)])
		if err != nil {
			return nil, errors.Annotatef(err, "trace %d", i)
		}
		ts[i] = t
	}
	if err := stackTraces(ts); err != nil {
		return nil, err
	}
	placeBars(ts)
	if err := unifyAxes(ts); err != nil {
		return nil, err
	}

	p := gg.NewPlot(new(table.Builder).Done())
	for _, t := range ts {
		if t.bar {
			// Bars grow from their base.
			p.SetScale(axisNames[t.valueAxis()], gg.NewLinearScaler().Include(0))
			break
		}
	}
	for i, t := range ts {
		var prev *plotTrace
		if i > 0 {
			prev = ts[i-1]
		}
		t.add(p, prev)
	}

	p.Add(gg.AxisLabel("x", c.Layout.XAxisTitle.OrElse("")))
	p.Add(gg.AxisLabel("y", c.Layout.YAxisTitle.OrElse("")))
	if title, ok := c.Layout.Title.Get(); ok {
		p.Add(gg.Title(title))
	}
	return p, nil
}

var axisNames = [2]string{"x", "y"}

// A plotTrace is a trace resolved into plottable coordinates.
type plotTrace struct {
	t *engine.Trace
	n int

	// xy are the X and Y coordinates, each either []float64 or
	// []string. They are unused for bars.
	xy [2]table.Slice

	color  color.Color   // color of the line and default fill
	colors []color.Color // per-datum marker or bar colors
	text   []string      // per-datum text, or nil
	fill   style.Fill

	stackGroup string

	bar        bool
	horizontal bool
	values     []float64 // bar lengths
	pos        []float64 // bar centers along the key axis
	keys       []string  // labels of categorical keys, or nil
	widths     []float64
	offset     float64
	base       float64
}

func (t *plotTrace) valueAxis() int {
	if t.horizontal {
		return 0
	}
	return 1
}

func newPlotTrace(t *engine.Trace, def string) (*plotTrace, error) {
	pt := &plotTrace{
		t:          t,
		n:          t.Len(),
		xy:         [2]table.Slice{t.X, t.Y},
		fill:       t.Fill.OrElse(style.NoFill),
		stackGroup: t.StackGroup.OrElse(""),
	}
	pt.color = traceColor(t, def)
	pt.colors = markerColors(t, pt.color, pt.n)
	pt.text = texts(t, pt.n)

	if t.Type != engine.TypeBar {
		return pt, nil
	}
	pt.bar = true
	pt.horizontal = t.Orientation.OrElse(style.Vertical) == style.Horizontal
	keys, vals := t.X, t.Y
	if pt.horizontal {
		keys, vals = t.Y, t.X
	}
	var ok bool
	if pt.values, ok = engine.Floats(vals); !ok {
		return nil, errors.NotSupportedf("bar values of type %T", vals)
	}
	if pt.pos, ok = engine.Floats(keys); !ok {
		pt.keys = engine.Strings(keys)
		pt.pos = vec.Linspace(0, float64(pt.n-1), pt.n)
	}
	if b, ok := t.Base.Get(); ok {
		pt.base, _ = engine.ToFloat(b)
	}
	if ws, ok := t.MultiWidth.Get(); ok {
		pt.widths, _ = engine.Floats(ws)
	} else if w, ok := t.Width.Get(); ok {
		wf, _ := engine.ToFloat(w)
		pt.widths = constFloats(wf, pt.n)
	}
	return pt, nil
}

func constFloats(x float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = x
	}
	return out
}

// traceColor returns the single color set for t's markers or line, or
// def.
func traceColor(t *engine.Trace, def string) color.Color {
	if m, ok := t.Marker.Get(); ok {
		if c, ok := m.Color.Get(); ok && !c.IsMulti() {
			return c.RGBA(0, "", 0, 0)
		}
	}
	if l, ok := t.Line.Get(); ok {
		if c, ok := l.Color.Get(); ok && !c.IsMulti() {
			return c.RGBA(0, "", 0, 0)
		}
	}
	c, err := style.ParseCSS(def)
	if err != nil {
		return color.Black
	}
	return c
}

// markerColors returns the color of each datum's marker with the trace
// and marker opacities applied.
func markerColors(t *engine.Trace, base color.Color, n int) []color.Color {
	m, _ := t.Marker.Get()
	mc, multi := m.Color.Get()
	multi = multi && mc.IsMulti()
	// Bounds of an empty slice are NaN, which maps every value to
	// the middle of the scale.
	lo, hi := stats.Bounds(mc.Values())
	scale := m.ColorScale.OrElse(style.Viridis)
	opacity := t.Opacity.OrElse(1) * m.Opacity.OrElse(1)
	opacities := m.MultiOpacity.OrElse(nil)

	cs := make([]color.Color, n)
	for i := range cs {
		c := base
		if multi {
			c = mc.RGBA(i, scale, lo, hi)
		}
		a := opacity
		if opacities != nil {
			a *= opacities[i]
		}
		cs[i] = withAlpha(c, a)
	}
	return cs
}

func withAlpha(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*a + 0.5)
	return n
}

func texts(t *engine.Trace, n int) []string {
	if ts, ok := t.MultiText.Get(); ok {
		return ts
	}
	if s, ok := t.Text.Get(); ok {
		out := make([]string, n)
		for i := range out {
			out[i] = s
		}
		return out
	}
	return nil
}

// stackTraces replaces the stacked coordinate of each trace in a stack
// group with the running sum over the group, normalized according to
// the group's GroupNorm.
func stackTraces(ts []*plotTrace) error {
	var order []string
	groups := make(map[string][]*plotTrace)
	for _, t := range ts {
		if t.bar || t.stackGroup == "" {
			continue
		}
		if groups[t.stackGroup] == nil {
			order = append(order, t.stackGroup)
		}
		groups[t.stackGroup] = append(groups[t.stackGroup], t)
	}

	for _, name := range order {
		g := groups[name]
		first := g[0]
		axis := 1
		if first.t.Orientation.OrElse(style.Vertical) == style.Horizontal {
			axis = 0
		}
		norm := first.t.GroupNorm.OrElse(style.NoNorm)

		sums := make([][]float64, len(g))
		var run []float64
		for i, t := range g {
			vs, ok := engine.Floats(t.xy[axis])
			if !ok {
				return errors.NotSupportedf("stacking non-numeric %s data in group %q", axisNames[axis], name)
			}
			if i == 0 {
				run = make([]float64, len(vs))
			} else if len(vs) != len(run) {
				return errors.NotValidf("stack group %q with %d and %d data points", name, len(run), len(vs))
			}
			sums[i] = make([]float64, len(vs))
			for j, v := range vs {
				run[j] += v
				sums[i][j] = run[j]
			}
		}

		if norm != style.NoNorm {
			scale := 1.0
			if norm == style.Percent {
				scale = 100
			}
			col := make([]float64, len(g))
			for j := range run {
				for i, t := range g {
					vs, _ := engine.Floats(t.xy[axis])
					col[i] = vs[j]
				}
				total := vec.Sum(col)
				for i := range g {
					if total == 0 {
						sums[i][j] = 0
						continue
					}
					sums[i][j] = sums[i][j] / total * scale
				}
			}
		}

		for i, t := range g {
			t.xy[axis] = sums[i]
			if t.t.Fill.IsNone() {
				t.fill = style.ToNextY
				if axis == 0 {
					t.fill = style.ToNextX
				}
			}
		}
	}
	return nil
}

// placeBars assigns each bar trace its share of the key axis. Bar
// traces are drawn side by side.
func placeBars(ts []*plotTrace) {
	var bars []*plotTrace
	for _, t := range ts {
		if t.bar {
			bars = append(bars, t)
		}
	}
	if len(bars) == 0 {
		return
	}

	var all []float64
	for _, b := range bars {
		all = append(all, b.pos...)
	}
	gap := minGap(all)
	slot := 0.8 * gap / float64(len(bars))
	for j, b := range bars {
		b.offset = (float64(j) - float64(len(bars)-1)/2) * slot
		if b.widths == nil {
			b.widths = constFloats(slot, b.n)
		}
	}
}

// minGap returns the smallest distance between distinct values of xs,
// or 1 if there are fewer than two.
func minGap(xs []float64) float64 {
	xs = append([]float64(nil), xs...)
	sort.Float64s(xs)
	gap := math.Inf(1)
	for i := 1; i < len(xs); i++ {
		if d := xs[i] - xs[i-1]; d > 0 && d < gap {
			gap = d
		}
	}
	if math.IsInf(gap, 1) {
		return 1
	}
	return gap
}

// unifyAxes converts the coordinates of all traces on each axis to one
// type: []float64 if every trace's data on that axis is numeric and
// []string otherwise.
func unifyAxes(ts []*plotTrace) error {
	for axis := range axisNames {
		numeric, bars := true, false
		for _, t := range ts {
			if t.bar {
				bars = true
			} else if !engine.IsNumeric(t.xy[axis]) {
				numeric = false
			}
		}
		if !numeric && bars {
			return errors.NotSupportedf("bars with categorical %s data in the same chart", axisNames[axis])
		}
		for _, t := range ts {
			if t.bar {
				continue
			}
			if numeric {
				t.xy[axis], _ = engine.Floats(t.xy[axis])
			} else {
				t.xy[axis] = engine.Strings(t.xy[axis])
			}
		}
	}
	return nil
}

// layer adds plotter to p with tab as its data. gs are columns to group
// by first.
func layer(p *gg.Plot, tab *table.Table, plotter gg.Plotter, gs ...string) {
	p.Save()
	p.SetData(tab)
	if len(gs) > 0 {
		p.GroupBy(gs...)
	}
	p.Add(plotter)
	p.Restore()
}

func (t *plotTrace) add(p *gg.Plot, prev *plotTrace) {
	if t.n == 0 {
		return
	}
	if t.bar {
		t.addBars(p)
		return
	}

	mode := t.t.Mode.OrElse(style.ModeLinesMarkers)
	if xs, ys, ok := t.fillPolygon(prev); ok {
		fc := withAlpha(t.color, 0.5)
		if c, ok := t.t.FillColor.Get(); ok && !c.IsMulti() {
			fc = c.RGBA(0, "", 0, 0)
		}
		tab := new(table.Builder).
			Add("x", xs).
			Add("y", ys).
			AddConst("stroke", color.Transparent).
			AddConst("fill", fc).
			Done()
		layer(p, tab, gg.LayerPaths{X: "x", Y: "y", Color: "stroke", Fill: "fill"})
	}
	if mode.Has(style.ModeLines) {
		tab := new(table.Builder).
			Add("x", t.xy[0]).
			Add("y", t.xy[1]).
			AddConst("stroke", t.color).
			Done()
		layer(p, tab, gg.LayerPaths{X: "x", Y: "y", Color: "stroke"})
	}
	if mode.Has(style.ModeMarkers) {
		tab := new(table.Builder).
			Add("x", t.xy[0]).
			Add("y", t.xy[1]).
			Add("color", t.colors).
			Done()
		layer(p, tab, gg.LayerPoints{X: "x", Y: "y", Color: "color"})
	}
	if mode.Has(style.ModeText) && t.text != nil {
		tab := new(table.Builder).
			Add("x", t.xy[0]).
			Add("y", t.xy[1]).
			Add("text", t.text).
			Done()
		layer(p, tab, gg.LayerTags{X: "x", Y: "y", Label: "text"})
	}
}

// fillPolygon returns the outline of the area t fills, if any.
func (t *plotTrace) fillPolygon(prev *plotTrace) (xs, ys []float64, ok bool) {
	x, xok := t.xy[0].([]float64)
	y, yok := t.xy[1].([]float64)
	if !xok || !yok || len(x) < 2 {
		return nil, nil, false
	}
	var px, py []float64
	if prev != nil && !prev.bar {
		px, _ = prev.xy[0].([]float64)
		py, _ = prev.xy[1].([]float64)
	}
	fill := t.fill
	if (fill == style.ToNextY || fill == style.ToNextX || fill == style.ToNext) && (px == nil || py == nil) {
		// With nothing to fill to, plotly.js fills to zero.
		switch fill {
		case style.ToNextY:
			fill = style.ToZeroY
		case style.ToNextX:
			fill = style.ToZeroX
		default:
			fill = style.ToSelf
		}
	}

	n := len(x)
	switch fill {
	case style.ToZeroY:
		return vec.Concat(x, []float64{x[n-1], x[0]}), vec.Concat(y, []float64{0, 0}), true
	case style.ToZeroX:
		return vec.Concat(x, []float64{0, 0}), vec.Concat(y, []float64{y[n-1], y[0]}), true
	case style.ToSelf:
		return x, y, true
	case style.ToNextY, style.ToNextX, style.ToNext:
		return vec.Concat(x, reversed(px)), vec.Concat(y, reversed(py)), true
	}
	return nil, nil, false
}

func reversed(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return out
}

func (t *plotTrace) addBars(p *gg.Plot) {
	var kx, vx []float64 // corners along the key and value axes
	var ids []int
	var fills []color.Color
	var tagK, tagV []float64
	for i, v := range t.values {
		if math.IsNaN(v) || math.IsNaN(t.pos[i]) {
			continue
		}
		c := t.pos[i] + t.offset
		h := t.widths[i] / 2
		lo, hi := t.base, t.base+v
		kx = append(kx, c-h, c-h, c+h, c+h, c-h)
		vx = append(vx, lo, hi, hi, lo, lo)
		for k := 0; k < 5; k++ {
			ids = append(ids, i)
			fills = append(fills, t.colors[i])
		}
		tagK = append(tagK, c)
		tagV = append(tagV, hi)
	}
	if ids == nil {
		return
	}

	xs, ys := kx, vx
	if t.horizontal {
		xs, ys = vx, kx
	}
	tab := new(table.Builder).
		Add("x", xs).
		Add("y", ys).
		Add("bar", ids).
		AddConst("stroke", color.Transparent).
		Add("fill", fills).
		Done()
	layer(p, tab, gg.LayerPaths{X: "x", Y: "y", Color: "stroke", Fill: "fill"}, "bar")

	labels := t.text
	if labels == nil {
		labels = t.keys
	}
	if labels == nil || len(tagK) != len(labels) {
		return
	}
	tx, ty := tagK, tagV
	if t.horizontal {
		tx, ty = tagV, tagK
	}
	tab = new(table.Builder).
		Add("x", tx).
		Add("y", ty).
		Add("text", labels).
		Done()
	layer(p, tab, gg.LayerTags{X: "x", Y: "y", Label: "text"})
}
