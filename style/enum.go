// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package style defines the styling vocabulary understood by the
// chart engine: enumerated style parameters and the option-valued
// Line, Marker and Pattern objects.
package style

import (
	"strings"

	"github.com/juju/errors"
)

// TextPosition sets where text is drawn relative to a datum.
type TextPosition string

const (
	TopLeft      TextPosition = "top left"
	TopCenter    TextPosition = "top center"
	TopRight     TextPosition = "top right"
	MiddleLeft   TextPosition = "middle left"
	MiddleCenter TextPosition = "middle center"
	MiddleRight  TextPosition = "middle right"
	BottomLeft   TextPosition = "bottom left"
	BottomCenter TextPosition = "bottom center"
	BottomRight  TextPosition = "bottom right"
	Inside       TextPosition = "inside"
	Outside      TextPosition = "outside"
	Auto         TextPosition = "auto"
	NoPosition   TextPosition = "none"
)

var textPositions = []TextPosition{
	TopLeft, TopCenter, TopRight,
	MiddleLeft, MiddleCenter, MiddleRight,
	BottomLeft, BottomCenter, BottomRight,
	Inside, Outside, Auto, NoPosition,
}

// MarkerSymbol is the shape drawn at each datum.
type MarkerSymbol string

const (
	Circle        MarkerSymbol = "circle"
	Square        MarkerSymbol = "square"
	Diamond       MarkerSymbol = "diamond"
	Cross         MarkerSymbol = "cross"
	X             MarkerSymbol = "x"
	TriangleUp    MarkerSymbol = "triangle-up"
	TriangleDown  MarkerSymbol = "triangle-down"
	TriangleLeft  MarkerSymbol = "triangle-left"
	TriangleRight MarkerSymbol = "triangle-right"
	Pentagon      MarkerSymbol = "pentagon"
	Hexagon       MarkerSymbol = "hexagon"
	Star          MarkerSymbol = "star"
)

var markerSymbols = []MarkerSymbol{
	Circle, Square, Diamond, Cross, X,
	TriangleUp, TriangleDown, TriangleLeft, TriangleRight,
	Pentagon, Hexagon, Star,
}

// DrawingStyle is the dash pattern of a line.
type DrawingStyle string

const (
	Solid       DrawingStyle = "solid"
	Dash        DrawingStyle = "dash"
	Dot         DrawingStyle = "dot"
	DashDot     DrawingStyle = "dashdot"
	LongDash    DrawingStyle = "longdash"
	LongDashDot DrawingStyle = "longdashdot"
)

var drawingStyles = []DrawingStyle{Solid, Dash, Dot, DashDot, LongDash, LongDashDot}

// Orientation is the direction of bars and of stacking.
type Orientation string

const (
	Vertical   Orientation = "v"
	Horizontal Orientation = "h"
)

var orientations = []Orientation{Vertical, Horizontal}

// GroupNorm is the normalization applied to the sums of a stack group.
type GroupNorm string

const (
	NoNorm   GroupNorm = ""
	Fraction GroupNorm = "fraction"
	Percent  GroupNorm = "percent"
)

var groupNorms = []GroupNorm{NoNorm, Fraction, Percent}

// Fill sets which area of a trace is filled.
type Fill string

const (
	NoFill  Fill = "none"
	ToZeroY Fill = "tozeroy"
	ToZeroX Fill = "tozerox"
	ToNextY Fill = "tonexty"
	ToNextX Fill = "tonextx"
	ToSelf  Fill = "toself"
	ToNext  Fill = "tonext"
)

var fills = []Fill{NoFill, ToZeroY, ToZeroX, ToNextY, ToNextX, ToSelf, ToNext}

// PatternShape is the hatching drawn inside bars.
type PatternShape string

const (
	NoPattern       PatternShape = ""
	DiagonalDescend PatternShape = "/"
	DiagonalAscend  PatternShape = `\`
	DiagonalChecked PatternShape = "x"
	HorizontalLines PatternShape = "-"
	VerticalLines   PatternShape = "|"
	Checked         PatternShape = "+"
	Dots            PatternShape = "."
)

var patternShapes = []PatternShape{
	NoPattern, DiagonalDescend, DiagonalAscend, DiagonalChecked,
	HorizontalLines, VerticalLines, Checked, Dots,
}

func (p TextPosition) Valid() bool { return member(p, textPositions) }
func (s MarkerSymbol) Valid() bool { return member(s, markerSymbols) }
func (d DrawingStyle) Valid() bool { return member(d, drawingStyles) }
func (o Orientation) Valid() bool  { return member(o, orientations) }
func (g GroupNorm) Valid() bool    { return member(g, groupNorms) }
func (f Fill) Valid() bool         { return member(f, fills) }
func (p PatternShape) Valid() bool { return member(p, patternShapes) }

func (p TextPosition) String() string { return string(p) }
func (s MarkerSymbol) String() string { return string(s) }
func (d DrawingStyle) String() string { return string(d) }
func (o Orientation) String() string  { return string(o) }
func (g GroupNorm) String() string    { return string(g) }
func (f Fill) String() string         { return string(f) }
func (p PatternShape) String() string { return string(p) }

// ParseTextPosition parses a text position such as "top center".
func ParseTextPosition(s string) (TextPosition, error) {
	return parse("text position", s, textPositions)
}

// ParseMarkerSymbol parses a marker symbol such as "triangle-up".
func ParseMarkerSymbol(s string) (MarkerSymbol, error) {
	return parse("marker symbol", s, markerSymbols)
}

// ParseDrawingStyle parses a line dash style such as "dashdot".
func ParseDrawingStyle(s string) (DrawingStyle, error) {
	return parse("drawing style", s, drawingStyles)
}

// ParseOrientation parses "v" or "h". The long forms "vertical" and
// "horizontal" are also accepted.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	}
	return parse("orientation", s, orientations)
}

// ParseGroupNorm parses "", "fraction" or "percent".
func ParseGroupNorm(s string) (GroupNorm, error) {
	return parse("group norm", s, groupNorms)
}

// ParseFill parses a fill mode such as "tozeroy".
func ParseFill(s string) (Fill, error) {
	return parse("fill", s, fills)
}

// ParsePatternShape parses a pattern shape such as "/" or "x".
func ParsePatternShape(s string) (PatternShape, error) {
	return parse("pattern shape", s, patternShapes)
}

func member[T comparable](x T, set []T) bool {
	for _, y := range set {
		if x == y {
			return true
		}
	}
	return false
}

func parse[T ~string](what, s string, set []T) (T, error) {
	x := T(strings.ToLower(strings.TrimSpace(s)))
	if member(x, set) {
		return x, nil
	}
	return "", errors.NotValidf("%s %q", what, s)
}
