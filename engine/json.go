// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"encoding/json"

	"github.com/aclements/chart2d/opt"
	"github.com/aclements/chart2d/style"
	"github.com/juju/errors"
)

// object is a JSON object under construction. encoding/json sorts its
// keys, so the output is deterministic.
type object map[string]any

// put sets o[key] if v is present.
func put[T any](o object, key string, v opt.Value[T]) {
	if x, ok := v.Get(); ok {
		o[key] = x
	}
}

// putObj sets o[key] to sub unless sub is empty.
func putObj(o object, key string, sub object) {
	if len(sub) > 0 {
		o[key] = sub
	}
}

// MarshalJSON encodes c as a plotly.js figure: {"data": [...],
// "layout": {...}}. Only present parameters are encoded.
func (c *GenericChart) MarshalJSON() ([]byte, error) {
	data := make([]object, len(c.Traces))
	for i := range c.Traces {
		data[i] = c.Traces[i].object()
	}
	b, err := json.Marshal(object{"data": data, "layout": c.Layout.object()})
	return b, errors.Annotate(err, "encoding chart")
}

func (t *Trace) object() object {
	o := object{"type": string(t.Type), "x": t.X, "y": t.Y}
	put(o, "mode", opt.Map(t.Mode, style.Mode.String))
	put(o, "orientation", t.Orientation)
	put(o, "name", t.Name)
	put(o, "showlegend", t.ShowLegend)
	put(o, "opacity", t.Opacity)
	put(o, "text", t.Text)
	put(o, "text", t.MultiText)
	put(o, "textposition", t.TextPosition)
	put(o, "textposition", t.MultiTextPosition)
	if m, ok := t.Marker.Get(); ok {
		putObj(o, "marker", markerObject(&m))
	}
	if l, ok := t.Line.Get(); ok {
		putObj(o, "line", lineObject(&l))
	}
	put(o, "stackgroup", t.StackGroup)
	put(o, "groupnorm", t.GroupNorm)
	put(o, "fill", t.Fill)
	put(o, "fillcolor", t.FillColor)
	put(o, "base", t.Base)
	put(o, "width", t.Width)
	put(o, "width", t.MultiWidth)
	return o
}

func markerObject(m *style.Marker) object {
	o := object{}
	put(o, "color", m.Color)
	put(o, "colorscale", m.ColorScale)
	if l, ok := m.Outline.Get(); ok {
		putObj(o, "line", lineObject(&l))
	}
	put(o, "size", m.Size)
	put(o, "symbol", m.Symbol)
	put(o, "symbol", m.MultiSymbol)
	put(o, "opacity", m.Opacity)
	put(o, "opacity", m.MultiOpacity)
	if p, ok := m.Pattern.Get(); ok {
		po := object{}
		put(po, "shape", p.Shape)
		put(po, "shape", p.MultiShape)
		put(po, "fgcolor", p.FgColor)
		put(po, "size", p.Size)
		putObj(o, "pattern", po)
	}
	return o
}

func lineObject(l *style.Line) object {
	o := object{}
	put(o, "color", l.Color)
	put(o, "colorscale", l.ColorScale)
	put(o, "width", l.Width)
	put(o, "dash", l.Dash)
	return o
}

func titleObject(title opt.Value[string]) object {
	o := object{}
	put(o, "text", title)
	return o
}

func (l *Layout) object() object {
	o := object{}
	putObj(o, "title", titleObject(l.Title))
	if x := titleObject(l.XAxisTitle); len(x) > 0 {
		o["xaxis"] = object{"title": x}
	}
	if y := titleObject(l.YAxisTitle); len(y) > 0 {
		o["yaxis"] = object{"title": y}
	}
	put(o, "showlegend", l.ShowLegend)
	put(o, "width", l.Width)
	put(o, "height", l.Height)
	if t, ok := l.Template.Get(); ok {
		putObj(o, "template", t.object())
	}
	return o
}

func (t *Template) object() object {
	layout := object{}
	if len(t.Colorway) > 0 {
		layout["colorway"] = t.Colorway
	}
	if t.Background != "" {
		layout["plot_bgcolor"] = t.Background
	}
	if t.FontFamily != "" {
		layout["font"] = object{"family": t.FontFamily}
	}
	scatter := object{}
	if t.MarkerSize > 0 {
		scatter["marker"] = object{"size": t.MarkerSize}
	}
	if t.LineWidth > 0 {
		scatter["line"] = object{"width": t.LineWidth}
	}

	o := object{}
	putObj(o, "layout", layout)
	if len(scatter) > 0 {
		o["data"] = object{"scatter": []object{scatter}}
	}
	return o
}
