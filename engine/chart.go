// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/aclements/chart2d/opt"
	"github.com/aclements/chart2d/style"
	"github.com/aclements/go-gg/table"
)

// TraceType is the plotly.js type of a trace.
type TraceType string

const (
	TypeScatter   TraceType = "scatter"
	TypeScatterGL TraceType = "scattergl"
	TypeBar       TraceType = "bar"
)

// A Trace is one data series of a chart together with its style.
//
// Only present fields are serialized; absent fields are left to the
// renderer.
type Trace struct {
	Type TraceType

	// X and Y are the data of the trace, exactly as passed by the
	// caller. For bars, one of them holds the keys.
	X, Y table.Slice

	Mode        opt.Value[style.Mode]
	Orientation opt.Value[style.Orientation]

	Name       opt.Value[string]
	ShowLegend opt.Value[bool]
	Opacity    opt.Value[float64]

	Text              opt.Value[string]
	MultiText         opt.Value[[]string]
	TextPosition      opt.Value[style.TextPosition]
	MultiTextPosition opt.Value[[]style.TextPosition]

	Marker opt.Value[style.Marker]
	Line   opt.Value[style.Line]

	StackGroup opt.Value[string]
	GroupNorm  opt.Value[style.GroupNorm]
	Fill       opt.Value[style.Fill]
	FillColor  opt.Value[style.Color]

	Base       opt.Value[any]
	Width      opt.Value[any]
	MultiWidth opt.Value[table.Slice]
}

// Len returns the number of data points in t.
func (t *Trace) Len() int {
	n, _ := seqLen(t.X)
	return n
}

// Layout holds chart-wide settings.
type Layout struct {
	Title      opt.Value[string]
	XAxisTitle opt.Value[string]
	YAxisTitle opt.Value[string]
	ShowLegend opt.Value[bool]
	Width      opt.Value[int]
	Height     opt.Value[int]
	Template   opt.Value[Template]
}

// merge returns l with every present field of o applied.
func (l Layout) merge(o Layout) Layout {
	l.Title = o.Title.Or(l.Title)
	l.XAxisTitle = o.XAxisTitle.Or(l.XAxisTitle)
	l.YAxisTitle = o.YAxisTitle.Or(l.YAxisTitle)
	l.ShowLegend = o.ShowLegend.Or(l.ShowLegend)
	l.Width = o.Width.Or(l.Width)
	l.Height = o.Height.Or(l.Height)
	l.Template = o.Template.Or(l.Template)
	return l
}

// A GenericChart is a constructed but unrendered chart. Charts are
// values: the With methods return modified copies and never change
// the receiver.
type GenericChart struct {
	Traces []Trace
	Layout Layout
}

// Combine returns a chart with the traces of all charts, in order. The
// layouts are merged, with later charts taking precedence for every
// setting they have present.
func Combine(charts ...*GenericChart) *GenericChart {
	c := new(GenericChart)
	for _, c2 := range charts {
		c.Traces = append(c.Traces, c2.Traces...)
		c.Layout = c.Layout.merge(c2.Layout)
	}
	return c
}

func (c *GenericChart) clone() *GenericChart {
	c2 := *c
	c2.Traces = append([]Trace(nil), c.Traces...)
	return &c2
}

// WithTitle returns a copy of c with the given title.
func (c *GenericChart) WithTitle(title string) *GenericChart {
	c2 := c.clone()
	c2.Layout.Title = opt.Some(title)
	return c2
}

// WithXAxisTitle returns a copy of c with the given X axis title.
func (c *GenericChart) WithXAxisTitle(title string) *GenericChart {
	c2 := c.clone()
	c2.Layout.XAxisTitle = opt.Some(title)
	return c2
}

// WithYAxisTitle returns a copy of c with the given Y axis title.
func (c *GenericChart) WithYAxisTitle(title string) *GenericChart {
	c2 := c.clone()
	c2.Layout.YAxisTitle = opt.Some(title)
	return c2
}

// WithSize returns a copy of c with the given size in pixels.
func (c *GenericChart) WithSize(width, height int) *GenericChart {
	c2 := c.clone()
	c2.Layout.Width = opt.Some(width)
	c2.Layout.Height = opt.Some(height)
	return c2
}

// WithLegend returns a copy of c with the legend shown or hidden.
func (c *GenericChart) WithLegend(show bool) *GenericChart {
	c2 := c.clone()
	c2.Layout.ShowLegend = opt.Some(show)
	return c2
}

// Size returns the size of c, falling back to def for each dimension
// not set in its layout.
func (c *GenericChart) Size(defWidth, defHeight int) (width, height int) {
	return c.Layout.Width.OrElse(defWidth), c.Layout.Height.OrElse(defHeight)
}
