// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/aclements/chart2d/opt"
	"github.com/aclements/chart2d/style"
	"github.com/aclements/go-gg/table"
)

// TraceParams are the parameters shared by every chart kind.
type TraceParams struct {
	// Name is the trace name shown in the legend and on hover.
	Name opt.Value[string]

	// ShowLegend controls whether the trace has a legend entry.
	ShowLegend opt.Value[bool]

	// Opacity is the opacity of the whole trace, in [0, 1].
	Opacity opt.Value[float64]

	// MultiOpacity is the opacity of each datum's marker.
	MultiOpacity opt.Value[[]float64]

	// Text is attached to every datum. MultiText gives a text per
	// datum.
	Text      opt.Value[string]
	MultiText opt.Value[[]string]

	// TextPosition and MultiTextPosition place the text.
	TextPosition      opt.Value[style.TextPosition]
	MultiTextPosition opt.Value[[]style.TextPosition]

	// UseDefaults applies the engine's Defaults to the chart. It
	// defaults to true.
	UseDefaults opt.Value[bool]
}

// MarkerParams style the markers of scatter-like traces. The
// individual fields override the corresponding fields of Marker.
type MarkerParams struct {
	MarkerColor       opt.Value[style.Color]
	MarkerColorScale  opt.Value[style.Colorscale]
	MarkerOutline     opt.Value[style.Line]
	MarkerSymbol      opt.Value[style.MarkerSymbol]
	MultiMarkerSymbol opt.Value[[]style.MarkerSymbol]
	Marker            opt.Value[style.Marker]
}

// LineStyleParams style the line connecting the data points. The
// individual fields override the corresponding fields of Line.
type LineStyleParams struct {
	LineColor      opt.Value[style.Color]
	LineColorScale opt.Value[style.Colorscale]
	LineWidth      opt.Value[float64]
	LineDash       opt.Value[style.DrawingStyle]
	Line           opt.Value[style.Line]
}

// StackParams put a trace into a stack group. Traces in the same
// StackGroup have their values summed.
type StackParams struct {
	StackGroup  opt.Value[string]
	Orientation opt.Value[style.Orientation]
	GroupNorm   opt.Value[style.GroupNorm]
}

// FillParams control area filling.
type FillParams struct {
	Fill      opt.Value[style.Fill]
	FillColor opt.Value[style.Color]
}

// ScatterParams are the parameters of Engine.Scatter.
type ScatterParams struct {
	TraceParams
	MarkerParams
	LineStyleParams
	StackParams
	FillParams

	// UseWebGL selects the "scattergl" trace type.
	UseWebGL opt.Value[bool]
}

// PointParams are the parameters of Engine.Point.
type PointParams struct {
	TraceParams
	MarkerParams
	StackParams

	UseWebGL opt.Value[bool]
}

// LineParams are the parameters of Engine.Line.
type LineParams struct {
	// ShowMarkers draws markers in addition to the line. It
	// defaults to false.
	ShowMarkers opt.Value[bool]

	TraceParams
	MarkerParams
	LineStyleParams
	StackParams
	FillParams

	UseWebGL opt.Value[bool]
}

// BarMarkerParams style the bars of bar and column charts.
type BarMarkerParams struct {
	MarkerColor             opt.Value[style.Color]
	MarkerColorScale        opt.Value[style.Colorscale]
	MarkerOutline           opt.Value[style.Line]
	MarkerPatternShape      opt.Value[style.PatternShape]
	MultiMarkerPatternShape opt.Value[[]style.PatternShape]
	MarkerPattern           opt.Value[style.Pattern]
	Marker                  opt.Value[style.Marker]
}

// BarParams are the parameters of Engine.Bar and Engine.Column.
type BarParams struct {
	// Keys are the categories of the bars. If absent, the bars are
	// keyed 0, 1, ..., n-1.
	Keys opt.Value[table.Slice]

	TraceParams
	BarMarkerParams

	// Base is where the bars start, in value axis units.
	Base opt.Value[any]

	// Width is the width of all bars and MultiWidth the width of
	// each bar, in key axis units.
	Width      opt.Value[any]
	MultiWidth opt.Value[table.Slice]
}
