// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aclements/chart2d"
	"github.com/aclements/chart2d/engine"
	"github.com/aclements/chart2d/opt"
	"github.com/aclements/chart2d/style"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/vec"
	"github.com/juju/errors"
	"github.com/kballard/go-shellquote"
)

// A traceSpec is one parsed trace argument, such as
//
//	line x=time y=load name='CPU load' markers=true dash=dot
type traceSpec struct {
	kind string

	// Column names.
	x, y, values, keys, textCol, colorCol string

	mode    style.Mode
	opts    chart2d.ScatterOptions
	markers *bool
	pattern *style.PatternShape

	base, barWidth any
}

var kinds = map[string]bool{
	"scatter": true, "point": true, "line": true, "bar": true, "column": true,
}

// parseTrace parses a trace argument. The argument is split into
// words using shell quoting rules. The first word is the chart kind
// and the rest are key=value pairs.
func parseTrace(arg string) (*traceSpec, error) {
	words, err := shellquote.Split(arg)
	if err != nil {
		return nil, errors.Annotatef(err, "trace %q", arg)
	}
	if len(words) == 0 {
		return nil, errors.NotValidf("empty trace")
	}
	ts := &traceSpec{kind: words[0], mode: style.ModeMarkers}
	if !kinds[ts.kind] {
		return nil, errors.NotValidf("chart kind %q", ts.kind)
	}
	for _, w := range words[1:] {
		k, v, ok := strings.Cut(w, "=")
		if !ok {
			return nil, errors.NotValidf("trace option %q without =", w)
		}
		if err := ts.set(k, v); err != nil {
			return nil, errors.Annotatef(err, "%s option %s", ts.kind, k)
		}
	}
	switch ts.kind {
	case "bar", "column":
		if ts.values == "" {
			return nil, errors.NotValidf("%s without values column", ts.kind)
		}
	default:
		if ts.y == "" {
			return nil, errors.NotValidf("%s without y column", ts.kind)
		}
	}
	return ts, nil
}

func (ts *traceSpec) set(k, v string) error {
	o := &ts.opts
	var err error
	switch k {
	case "x":
		ts.x = v
	case "y":
		ts.y = v
	case "values":
		ts.values = v
	case "keys":
		ts.keys = v
	case "textcol":
		ts.textCol = v
	case "colorcol":
		ts.colorCol = v
	case "mode":
		ts.mode, err = style.ParseMode(v)
	case "name":
		o.Name = &v
	case "legend":
		o.ShowLegend, err = parseBool(v)
	case "opacity":
		o.Opacity, err = parseFloat(v)
	case "text":
		o.Text = &v
	case "textpos":
		o.TextPosition, err = parseEnum(style.ParseTextPosition, v)
	case "defaults":
		o.UseDefaults, err = parseBool(v)
	case "color":
		c := style.ColorFromString(v)
		o.MarkerColor = &c
	case "colorscale":
		o.MarkerColorScale, err = parseEnum(style.ParseColorscale, v)
	case "symbol":
		o.MarkerSymbol, err = parseEnum(style.ParseMarkerSymbol, v)
	case "size":
		var size *float64
		size, err = parseFloat(v)
		if err == nil {
			o.Marker = &style.Marker{Size: opt.FromPtr(size)}
		}
	case "outline":
		var width *float64
		width, err = parseFloat(v)
		if err == nil {
			o.MarkerOutline = &style.Line{Width: opt.FromPtr(width)}
		}
	case "linecolor":
		c := style.ColorFromString(v)
		o.LineColor = &c
	case "linewidth":
		o.LineWidth, err = parseFloat(v)
	case "dash":
		o.LineDash, err = parseEnum(style.ParseDrawingStyle, v)
	case "stackgroup":
		o.StackGroup = &v
	case "orientation":
		o.Orientation, err = parseEnum(style.ParseOrientation, v)
	case "groupnorm":
		o.GroupNorm, err = parseEnum(style.ParseGroupNorm, v)
	case "fill":
		o.Fill, err = parseEnum(style.ParseFill, v)
	case "fillcolor":
		c := style.ColorFromString(v)
		o.FillColor = &c
	case "webgl":
		o.UseWebGL, err = parseBool(v)
	case "markers":
		ts.markers, err = parseBool(v)
	case "pattern":
		ts.pattern, err = parseEnum(style.ParsePatternShape, v)
	case "base":
		ts.base, err = parseNumber(v)
	case "width":
		ts.barWidth, err = parseNumber(v)
	default:
		return errors.NotSupportedf("option %q", k)
	}
	return err
}

func parseEnum[T any](parse func(string) (T, error), s string) (*T, error) {
	v, err := parse(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseBool(s string) (*bool, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, errors.NotValidf("boolean %q", s)
	}
	return &b, nil
}

func parseFloat(s string) (*float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.NotValidf("number %q", s)
	}
	return &f, nil
}

func parseNumber(s string) (any, error) {
	f, err := parseFloat(s)
	if err != nil {
		return nil, err
	}
	return *f, nil
}

// column returns the named column of tab, or the row indexes if name
// is empty.
func column(tab *table.Table, name string) (table.Slice, error) {
	if name == "" {
		return vec.Linspace(0, float64(tab.Len()-1), tab.Len()), nil
	}
	col := tab.Column(name)
	if col == nil {
		return nil, errors.NotFoundf("column %q", name)
	}
	return col, nil
}

// draw builds the chart for ts from the columns of tab.
func (ts *traceSpec) draw(e chart2d.Engine, tab *table.Table) (*engine.GenericChart, error) {
	if ts.textCol != "" {
		col, err := column(tab, ts.textCol)
		if err != nil {
			return nil, err
		}
		ts.opts.MultiText = engine.Strings(col)
	}
	if ts.colorCol != "" {
		col, err := column(tab, ts.colorCol)
		if err != nil {
			return nil, err
		}
		vs, ok := engine.Floats(col)
		if !ok {
			ts.opts.MarkerColor = chart2d.Ptr(style.ColorFromStrings(engine.Strings(col)))
		} else {
			ts.opts.MarkerColor = chart2d.Ptr(style.ColorFromValues(vs))
		}
	}

	switch ts.kind {
	case "bar", "column":
		return ts.drawBars(e, tab)
	}
	x, err := column(tab, ts.x)
	if err != nil {
		return nil, err
	}
	y, err := column(tab, ts.y)
	if err != nil {
		return nil, err
	}
	if xs, ok := engine.Floats(x); ok {
		return drawX(e, ts, xs, y)
	}
	return drawX(e, ts, engine.Strings(x), y)
}

func drawX[X chart2d.Value](e chart2d.Engine, ts *traceSpec, x []X, y table.Slice) (*engine.GenericChart, error) {
	if ys, ok := engine.Floats(y); ok {
		return drawXY(e, ts, x, ys)
	}
	return drawXY(e, ts, x, engine.Strings(y))
}

func drawXY[X, Y chart2d.Value](e chart2d.Engine, ts *traceSpec, x []X, y []Y) (*engine.GenericChart, error) {
	o := &ts.opts
	switch ts.kind {
	case "scatter":
		return chart2d.Scatter(e, x, y, ts.mode, o)
	case "point":
		return chart2d.Point(e, x, y, &chart2d.PointOptions{
			TraceOptions:  o.TraceOptions,
			MarkerOptions: o.MarkerOptions,
			StackOptions:  o.StackOptions,
			UseWebGL:      o.UseWebGL,
		})
	case "line":
		return chart2d.Line(e, x, y, &chart2d.LineOptions{
			ShowMarkers:      ts.markers,
			TraceOptions:     o.TraceOptions,
			MarkerOptions:    o.MarkerOptions,
			LineStyleOptions: o.LineStyleOptions,
			StackOptions:     o.StackOptions,
			FillOptions:      o.FillOptions,
			UseWebGL:         o.UseWebGL,
		})
	}
	panic(fmt.Sprintf("unexpected chart kind %q", ts.kind))
}

func (ts *traceSpec) drawBars(e chart2d.Engine, tab *table.Table) (*engine.GenericChart, error) {
	values, err := column(tab, ts.values)
	if err != nil {
		return nil, err
	}
	o := &chart2d.BarOptions{
		TraceOptions:       ts.opts.TraceOptions,
		MarkerColor:        ts.opts.MarkerColor,
		MarkerColorScale:   ts.opts.MarkerColorScale,
		MarkerOutline:      ts.opts.MarkerOutline,
		MarkerPatternShape: ts.pattern,
		Marker:             ts.opts.Marker,
		Base:               ts.base,
		Width:              ts.barWidth,
	}
	if ts.keys != "" {
		if o.Keys, err = column(tab, ts.keys); err != nil {
			return nil, err
		}
	}
	vs, ok := engine.Floats(values)
	if !ok {
		ss := engine.Strings(values)
		if ts.kind == "bar" {
			return chart2d.Bar(e, ss, o)
		}
		return chart2d.Column(e, ss, o)
	}
	if ts.kind == "bar" {
		return chart2d.Bar(e, vs, o)
	}
	return chart2d.Column(e, vs, o)
}
