// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart2d builds 2D charts from Go slices.
//
// Each chart function takes an Engine, the data, and an options
// struct whose fields use Go's own optional-value conventions: a nil
// pointer, nil slice or nil interface means "not set". The function
// converts every option to the engine's opt.Value form, calls the
// engine, and returns the engine's chart and error unchanged. It does
// no validation, defaulting or logging of its own.
//
// For example,
//
//	c, err := chart2d.Line(engine.Default(), xs, ys, &chart2d.LineOptions{
//		ShowMarkers: chart2d.Ptr(true),
//		LineStyleOptions: chart2d.LineStyleOptions{
//			LineWidth: chart2d.Ptr(2.0),
//		},
//	})
//
// The functions are safe to call concurrently with the same Engine.
package chart2d

import (
	"github.com/aclements/chart2d/engine"
	"github.com/aclements/chart2d/style"
	"github.com/aclements/go-gg/table"
	"golang.org/x/exp/constraints"
)

// Value is the set of element types accepted for coordinates and
// values: anything representable as a number or a string.
type Value interface {
	constraints.Integer | constraints.Float | ~string
}

// Engine builds charts from data and option-wrapped parameters.
// *engine.Engine implements Engine.
type Engine interface {
	Scatter(x, y table.Slice, mode style.Mode, p engine.ScatterParams) (*engine.GenericChart, error)
	Point(x, y table.Slice, p engine.PointParams) (*engine.GenericChart, error)
	Line(x, y table.Slice, p engine.LineParams) (*engine.GenericChart, error)
	Bar(values table.Slice, p engine.BarParams) (*engine.GenericChart, error)
	Column(values table.Slice, p engine.BarParams) (*engine.GenericChart, error)
}

var _ Engine = (*engine.Engine)(nil)

// Scatter draws y against x in the given mode.
func Scatter[X, Y Value](e Engine, x []X, y []Y, mode style.Mode, o *ScatterOptions) (*engine.GenericChart, error) {
	return e.Scatter(x, y, mode, o.params())
}

// Point draws a marker at each (x, y).
func Point[X, Y Value](e Engine, x []X, y []Y, o *PointOptions) (*engine.GenericChart, error) {
	return e.Point(x, y, o.params())
}

// Line connects successive (x, y) points with a line.
func Line[X, Y Value](e Engine, x []X, y []Y, o *LineOptions) (*engine.GenericChart, error) {
	return e.Line(x, y, o.params())
}

// Bar draws a horizontal bar for each value.
func Bar[V Value](e Engine, values []V, o *BarOptions) (*engine.GenericChart, error) {
	return e.Bar(values, o.params())
}

// Column draws a vertical bar for each value.
func Column[V Value](e Engine, values []V, o *BarOptions) (*engine.GenericChart, error) {
	return e.Column(values, o.params())
}

// Ptr returns a pointer to a copy of v. It is convenient for setting
// pointer-typed options from constants.
func Ptr[T any](v T) *T {
	return &v
}
