// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart2d

import (
	"github.com/aclements/chart2d/engine"
	"github.com/aclements/chart2d/opt"
	"github.com/aclements/chart2d/style"
	"github.com/aclements/go-gg/table"
)

// TraceOptions are the options shared by every chart kind. See
// engine.TraceParams for their meaning.
type TraceOptions struct {
	Name              *string
	ShowLegend        *bool
	Opacity           *float64
	MultiOpacity      []float64
	Text              *string
	MultiText         []string
	TextPosition      *style.TextPosition
	MultiTextPosition []style.TextPosition
	UseDefaults       *bool
}

func (o *TraceOptions) params() engine.TraceParams {
	return engine.TraceParams{
		Name:              opt.FromPtr(o.Name),
		ShowLegend:        opt.FromPtr(o.ShowLegend),
		Opacity:           opt.FromPtr(o.Opacity),
		MultiOpacity:      opt.FromSlice(o.MultiOpacity),
		Text:              opt.FromPtr(o.Text),
		MultiText:         opt.FromSlice(o.MultiText),
		TextPosition:      opt.FromPtr(o.TextPosition),
		MultiTextPosition: opt.FromSlice(o.MultiTextPosition),
		UseDefaults:       opt.FromPtr(o.UseDefaults),
	}
}

// MarkerOptions style markers.
type MarkerOptions struct {
	MarkerColor       *style.Color
	MarkerColorScale  *style.Colorscale
	MarkerOutline     *style.Line
	MarkerSymbol      *style.MarkerSymbol
	MultiMarkerSymbol []style.MarkerSymbol
	Marker            *style.Marker
}

func (o *MarkerOptions) params() engine.MarkerParams {
	return engine.MarkerParams{
		MarkerColor:       opt.FromPtr(o.MarkerColor),
		MarkerColorScale:  opt.FromPtr(o.MarkerColorScale),
		MarkerOutline:     opt.FromPtr(o.MarkerOutline),
		MarkerSymbol:      opt.FromPtr(o.MarkerSymbol),
		MultiMarkerSymbol: opt.FromSlice(o.MultiMarkerSymbol),
		Marker:            opt.FromPtr(o.Marker),
	}
}

// LineStyleOptions style the connecting line.
type LineStyleOptions struct {
	LineColor      *style.Color
	LineColorScale *style.Colorscale
	LineWidth      *float64
	LineDash       *style.DrawingStyle
	Line           *style.Line
}

func (o *LineStyleOptions) params() engine.LineStyleParams {
	return engine.LineStyleParams{
		LineColor:      opt.FromPtr(o.LineColor),
		LineColorScale: opt.FromPtr(o.LineColorScale),
		LineWidth:      opt.FromPtr(o.LineWidth),
		LineDash:       opt.FromPtr(o.LineDash),
		Line:           opt.FromPtr(o.Line),
	}
}

// StackOptions put a trace into a stack group.
type StackOptions struct {
	StackGroup  *string
	Orientation *style.Orientation
	GroupNorm   *style.GroupNorm
}

func (o *StackOptions) params() engine.StackParams {
	return engine.StackParams{
		StackGroup:  opt.FromPtr(o.StackGroup),
		Orientation: opt.FromPtr(o.Orientation),
		GroupNorm:   opt.FromPtr(o.GroupNorm),
	}
}

// FillOptions control area filling.
type FillOptions struct {
	Fill      *style.Fill
	FillColor *style.Color
}

func (o *FillOptions) params() engine.FillParams {
	return engine.FillParams{
		Fill:      opt.FromPtr(o.Fill),
		FillColor: opt.FromPtr(o.FillColor),
	}
}

// ScatterOptions are the options of Scatter.
type ScatterOptions struct {
	TraceOptions
	MarkerOptions
	LineStyleOptions
	StackOptions
	FillOptions

	UseWebGL *bool
}

func (o *ScatterOptions) params() engine.ScatterParams {
	if o == nil {
		o = new(ScatterOptions)
	}
	return engine.ScatterParams{
		TraceParams:     o.TraceOptions.params(),
		MarkerParams:    o.MarkerOptions.params(),
		LineStyleParams: o.LineStyleOptions.params(),
		StackParams:     o.StackOptions.params(),
		FillParams:      o.FillOptions.params(),
		UseWebGL:        opt.FromPtr(o.UseWebGL),
	}
}

// PointOptions are the options of Point.
type PointOptions struct {
	TraceOptions
	MarkerOptions
	StackOptions

	UseWebGL *bool
}

func (o *PointOptions) params() engine.PointParams {
	if o == nil {
		o = new(PointOptions)
	}
	return engine.PointParams{
		TraceParams:  o.TraceOptions.params(),
		MarkerParams: o.MarkerOptions.params(),
		StackParams:  o.StackOptions.params(),
		UseWebGL:     opt.FromPtr(o.UseWebGL),
	}
}

// LineOptions are the options of Line.
type LineOptions struct {
	ShowMarkers *bool

	TraceOptions
	MarkerOptions
	LineStyleOptions
	StackOptions
	FillOptions

	UseWebGL *bool
}

func (o *LineOptions) params() engine.LineParams {
	if o == nil {
		o = new(LineOptions)
	}
	return engine.LineParams{
		ShowMarkers:     opt.FromPtr(o.ShowMarkers),
		TraceParams:     o.TraceOptions.params(),
		MarkerParams:    o.MarkerOptions.params(),
		LineStyleParams: o.LineStyleOptions.params(),
		StackParams:     o.StackOptions.params(),
		FillParams:      o.FillOptions.params(),
		UseWebGL:        opt.FromPtr(o.UseWebGL),
	}
}

// BarOptions are the options of Bar and Column.
type BarOptions struct {
	// Keys must be a slice of numbers or strings, one per value.
	Keys table.Slice

	TraceOptions

	MarkerColor             *style.Color
	MarkerColorScale        *style.Colorscale
	MarkerOutline           *style.Line
	MarkerPatternShape      *style.PatternShape
	MultiMarkerPatternShape []style.PatternShape
	MarkerPattern           *style.Pattern
	Marker                  *style.Marker

	// Base and Width are numbers. MultiWidth is a slice of
	// numbers.
	Base       any
	Width      any
	MultiWidth table.Slice
}

func (o *BarOptions) params() engine.BarParams {
	if o == nil {
		o = new(BarOptions)
	}
	return engine.BarParams{
		Keys:        opt.FromAny(o.Keys),
		TraceParams: o.TraceOptions.params(),
		BarMarkerParams: engine.BarMarkerParams{
			MarkerColor:             opt.FromPtr(o.MarkerColor),
			MarkerColorScale:        opt.FromPtr(o.MarkerColorScale),
			MarkerOutline:           opt.FromPtr(o.MarkerOutline),
			MarkerPatternShape:      opt.FromPtr(o.MarkerPatternShape),
			MultiMarkerPatternShape: opt.FromSlice(o.MultiMarkerPatternShape),
			MarkerPattern:           opt.FromPtr(o.MarkerPattern),
			Marker:                  opt.FromPtr(o.Marker),
		},
		Base:       opt.FromAny(o.Base),
		Width:      opt.FromAny(o.Width),
		MultiWidth: opt.FromAny(o.MultiWidth),
	}
}
