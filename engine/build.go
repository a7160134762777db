// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/aclements/chart2d/opt"
	"github.com/aclements/chart2d/style"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/vec"
	"github.com/juju/errors"
)

// Scatter builds a chart with one scatter trace drawing y against x in
// the given mode.
func (e *Engine) Scatter(x, y table.Slice, mode style.Mode, p ScatterParams) (*GenericChart, error) {
	return e.scatter("scatter", x, y, mode, p)
}

// Point builds a scatter chart that draws only markers, plus text if
// a text position is given.
func (e *Engine) Point(x, y table.Slice, p PointParams) (*GenericChart, error) {
	mode := style.ModeMarkers.WithText(hasTextPosition(&p.TraceParams))
	return e.scatter("point", x, y, mode, ScatterParams{
		TraceParams:  p.TraceParams,
		MarkerParams: p.MarkerParams,
		StackParams:  p.StackParams,
		UseWebGL:     p.UseWebGL,
	})
}

// Line builds a scatter chart that connects the data points with a
// line. Markers are drawn if ShowMarkers is true and text if a text
// position is given.
func (e *Engine) Line(x, y table.Slice, p LineParams) (*GenericChart, error) {
	mode := style.ModeLines.
		WithMarkers(p.ShowMarkers.OrElse(false)).
		WithText(hasTextPosition(&p.TraceParams))
	return e.scatter("line", x, y, mode, ScatterParams{
		TraceParams:     p.TraceParams,
		MarkerParams:    p.MarkerParams,
		LineStyleParams: p.LineStyleParams,
		StackParams:     p.StackParams,
		FillParams:      p.FillParams,
		UseWebGL:        p.UseWebGL,
	})
}

// Bar builds a chart of horizontal bars, one per value. The values run
// along the X axis and the keys along the Y axis.
func (e *Engine) Bar(values table.Slice, p BarParams) (*GenericChart, error) {
	return e.bar("bar", style.Horizontal, values, p)
}

// Column builds a chart of vertical bars, one per value. The keys run
// along the X axis and the values along the Y axis.
func (e *Engine) Column(values table.Slice, p BarParams) (*GenericChart, error) {
	return e.bar("column", style.Vertical, values, p)
}

func hasTextPosition(p *TraceParams) bool {
	return p.TextPosition.IsSome() || p.MultiTextPosition.IsSome()
}

func (e *Engine) scatter(kind string, x, y table.Slice, mode style.Mode, p ScatterParams) (*GenericChart, error) {
	if !mode.Valid() {
		return nil, errors.Annotate(errors.NotValidf("mode %d", uint8(mode)), kind)
	}
	n, err := checkXY(x, y)
	if err != nil {
		return nil, errors.Annotate(err, kind)
	}

	marker := p.Marker.OrElse(style.Marker{}).Style(style.MarkerStyle{
		Color:        p.MarkerColor,
		ColorScale:   p.MarkerColorScale,
		Outline:      p.MarkerOutline,
		Symbol:       p.MarkerSymbol,
		MultiSymbol:  p.MultiMarkerSymbol,
		MultiOpacity: p.MultiOpacity,
	})
	line := p.Line.OrElse(style.Line{}).Style(p.LineColor, p.LineColorScale, p.LineWidth, p.LineDash)

	typ := TypeScatter
	if p.UseWebGL.OrElse(false) {
		typ = TypeScatterGL
	}
	t := Trace{
		Type:        typ,
		X:           x,
		Y:           y,
		Mode:        opt.Some(mode),
		Orientation: p.Orientation,
		Marker:      opt.Some(marker),
		Line:        opt.Some(line),
		StackGroup:  p.StackGroup,
		GroupNorm:   p.GroupNorm,
		Fill:        p.Fill,
		FillColor:   p.FillColor,
	}
	t.applyTrace(&p.TraceParams)
	if err := t.validate(n); err != nil {
		return nil, errors.Annotate(err, kind)
	}
	return e.chart(t, p.UseDefaults), nil
}

func (e *Engine) bar(kind string, orient style.Orientation, values table.Slice, p BarParams) (*GenericChart, error) {
	n, err := checkSeq("values", values)
	if err != nil {
		return nil, errors.Annotate(err, kind)
	}
	var keys table.Slice
	if k, ok := p.Keys.Get(); ok {
		nk, err := checkSeq("keys", k)
		if err != nil {
			return nil, errors.Annotate(err, kind)
		}
		if nk != n {
			return nil, errors.Annotate(errors.NotValidf("%d keys for %d values", nk, n), kind)
		}
		keys = k
	} else {
		keys = vec.Linspace(0, float64(n-1), n)
	}

	pattern := p.MarkerPattern.OrElse(style.Pattern{}).Style(p.MarkerPatternShape, p.MultiMarkerPatternShape)
	marker := p.Marker.OrElse(style.Marker{}).Style(style.MarkerStyle{
		Color:        p.MarkerColor,
		ColorScale:   p.MarkerColorScale,
		Outline:      p.MarkerOutline,
		MultiOpacity: p.MultiOpacity,
		Pattern:      opt.Some(pattern),
	})

	t := Trace{
		Type:        TypeBar,
		Orientation: opt.Some(orient),
		Marker:      opt.Some(marker),
		Base:        p.Base,
		Width:       p.Width,
		MultiWidth:  p.MultiWidth,
	}
	if orient == style.Horizontal {
		t.X, t.Y = values, keys
	} else {
		t.X, t.Y = keys, values
	}
	t.applyTrace(&p.TraceParams)
	if err := t.validate(n); err != nil {
		return nil, errors.Annotate(err, kind)
	}
	return e.chart(t, p.UseDefaults), nil
}

func (t *Trace) applyTrace(p *TraceParams) {
	t.Name = p.Name
	t.ShowLegend = p.ShowLegend
	t.Opacity = p.Opacity
	t.Text = p.Text
	t.MultiText = p.MultiText
	t.TextPosition = p.TextPosition
	t.MultiTextPosition = p.MultiTextPosition
}

// chart wraps t in a chart, applying e's defaults unless useDefaults
// is present and false.
func (e *Engine) chart(t Trace, useDefaults opt.Value[bool]) *GenericChart {
	c := &GenericChart{Traces: []Trace{t}}
	if !useDefaults.OrElse(true) {
		return c
	}
	d := &e.Defaults
	if d.Width > 0 {
		c.Layout.Width = opt.Some(d.Width)
	}
	if d.Height > 0 {
		c.Layout.Height = opt.Some(d.Height)
	}
	c.Layout.Template = opt.Some(d.Template)
	return c
}

func checkXY(x, y table.Slice) (int, error) {
	nx, err := checkSeq("x", x)
	if err != nil {
		return 0, err
	}
	ny, err := checkSeq("y", y)
	if err != nil {
		return 0, err
	}
	if nx != ny {
		return 0, errors.NotValidf("y of length %d for x of length %d", ny, nx)
	}
	return nx, nil
}
