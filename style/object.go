// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import "github.com/aclements/chart2d/opt"

// Line styles a trace's connecting line or a marker's outline. Absent
// fields are left to the renderer's defaults.
type Line struct {
	Color      opt.Value[Color]
	ColorScale opt.Value[Colorscale]
	Width      opt.Value[float64]
	Dash       opt.Value[DrawingStyle]
}

// Style returns a copy of l with every present argument applied. Absent
// arguments leave the corresponding field of l unchanged.
func (l Line) Style(c opt.Value[Color], scale opt.Value[Colorscale], width opt.Value[float64], dash opt.Value[DrawingStyle]) Line {
	l.Color = c.Or(l.Color)
	l.ColorScale = scale.Or(l.ColorScale)
	l.Width = width.Or(l.Width)
	l.Dash = dash.Or(l.Dash)
	return l
}

// Pattern is the hatching drawn inside a bar.
type Pattern struct {
	Shape      opt.Value[PatternShape]
	MultiShape opt.Value[[]PatternShape]
	FgColor    opt.Value[Color]
	Size       opt.Value[float64]
}

// Style returns a copy of p with the present arguments applied.
func (p Pattern) Style(shape opt.Value[PatternShape], multiShape opt.Value[[]PatternShape]) Pattern {
	p.Shape = shape.Or(p.Shape)
	p.MultiShape = multiShape.Or(p.MultiShape)
	return p
}

// Marker styles the marks drawn at each datum: scatter points or bars.
type Marker struct {
	Color        opt.Value[Color]
	ColorScale   opt.Value[Colorscale]
	Outline      opt.Value[Line]
	Size         opt.Value[float64]
	Symbol       opt.Value[MarkerSymbol]
	MultiSymbol  opt.Value[[]MarkerSymbol]
	Opacity      opt.Value[float64]
	MultiOpacity opt.Value[[]float64]
	Pattern      opt.Value[Pattern]
}

// MarkerStyle lists the per-trace arguments that can be merged into a
// Marker. It exists so Marker.Style doesn't take nine positional
// arguments.
type MarkerStyle struct {
	Color        opt.Value[Color]
	ColorScale   opt.Value[Colorscale]
	Outline      opt.Value[Line]
	Symbol       opt.Value[MarkerSymbol]
	MultiSymbol  opt.Value[[]MarkerSymbol]
	MultiOpacity opt.Value[[]float64]
	Pattern      opt.Value[Pattern]
}

// Style returns a copy of m with the present fields of s applied.
func (m Marker) Style(s MarkerStyle) Marker {
	m.Color = s.Color.Or(m.Color)
	m.ColorScale = s.ColorScale.Or(m.ColorScale)
	m.Outline = s.Outline.Or(m.Outline)
	m.Symbol = s.Symbol.Or(m.Symbol)
	m.MultiSymbol = s.MultiSymbol.Or(m.MultiSymbol)
	m.MultiOpacity = s.MultiOpacity.Or(m.MultiOpacity)
	m.Pattern = s.Pattern.Or(m.Pattern)
	return m
}
