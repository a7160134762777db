// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine constructs 2D charts.
//
// The chart functions of Engine take data sequences and option-valued
// parameters (see package opt) and build a GenericChart: a list of
// traces plus a layout. Rendering is left to package render.
//
// Data sequences are passed as table.Slice, which may be any slice
// whose elements are numbers or strings. The engine never copies or
// modifies them.
//
// Errors are juju/errors values: invalid parameter values and
// mismatched sequence lengths satisfy errors.IsNotValid, and
// unsupported element types satisfy errors.IsNotSupported.
package engine

// Template holds the styling defaults applied to charts built with
// UseDefaults.
type Template struct {
	// Colorway is the sequence of CSS colors assigned to traces
	// that don't set their own color.
	Colorway []string `mapstructure:"colorway"`

	// Background is the CSS color of the plot area.
	Background string `mapstructure:"background"`

	// FontFamily is the font used for titles and labels.
	FontFamily string `mapstructure:"font-family"`

	// MarkerSize is the default marker size in pixels.
	MarkerSize float64 `mapstructure:"marker-size"`

	// LineWidth is the default line width in pixels.
	LineWidth float64 `mapstructure:"line-width"`
}

// Defaults are applied to every chart whose UseDefaults parameter is
// absent or true.
type Defaults struct {
	Width    int      `mapstructure:"width"`
	Height   int      `mapstructure:"height"`
	Template Template `mapstructure:"template"`
}

// DefaultColorway is the plotly.js default trace color sequence.
var DefaultColorway = []string{
	"#636efa", "#ef553b", "#00cc96", "#ab63fa", "#ffa15a",
	"#19d3f3", "#ff6692", "#b6e880", "#ff97ff", "#fecb52",
}

// BuiltinDefaults returns the defaults used by Default.
func BuiltinDefaults() Defaults {
	return Defaults{
		Width:  600,
		Height: 600,
		Template: Template{
			Colorway:   append([]string(nil), DefaultColorway...),
			Background: "#e5ecf6",
			FontFamily: "Open Sans, verdana, arial, sans-serif",
			MarkerSize: 6,
			LineWidth:  2,
		},
	}
}

// An Engine builds charts. Its zero value has zero Defaults, meaning
// charts built with UseDefaults get no size and an empty template.
//
// An Engine is never modified by building charts and may be used
// concurrently.
type Engine struct {
	Defaults Defaults
}

// New returns an Engine that applies d.
func New(d Defaults) *Engine {
	return &Engine{Defaults: d}
}

// Default returns an Engine with the built-in defaults.
func Default() *Engine {
	return New(BuiltinDefaults())
}
