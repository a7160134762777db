// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"math"

	"github.com/aclements/chart2d/opt"
	"github.com/aclements/chart2d/style"
	"github.com/juju/errors"
)

// validate checks the parameters of a trace with n data points.
func (t *Trace) validate(n int) error {
	if o, ok := t.Opacity.Get(); ok {
		if err := checkOpacity("opacity", o); err != nil {
			return err
		}
	}
	if err := checkLen("text", t.MultiText, n); err != nil {
		return err
	}
	if err := checkEnum("text position", t.TextPosition); err != nil {
		return err
	}
	if err := checkEnums("text positions", t.MultiTextPosition, n); err != nil {
		return err
	}
	if err := checkEnum("orientation", t.Orientation); err != nil {
		return err
	}
	if err := checkEnum("group normalization", t.GroupNorm); err != nil {
		return err
	}
	if err := checkEnum("fill", t.Fill); err != nil {
		return err
	}
	if err := checkColor("fill color", t.FillColor, n); err != nil {
		return err
	}
	if m, ok := t.Marker.Get(); ok {
		if err := validateMarker(&m, n); err != nil {
			return errors.Annotate(err, "marker")
		}
	}
	if l, ok := t.Line.Get(); ok {
		if err := validateLine(&l, n); err != nil {
			return errors.Annotate(err, "line")
		}
	}
	if b, ok := t.Base.Get(); ok {
		if f, ok := ToFloat(b); !ok || math.IsNaN(f) {
			return errors.NotValidf("base %v", b)
		}
	}
	if w, ok := t.Width.Get(); ok {
		f, ok := ToFloat(w)
		if !ok || !(f >= 0) {
			return errors.NotValidf("width %v", w)
		}
	}
	if ws, ok := t.MultiWidth.Get(); ok {
		fs, ok := Floats(ws)
		if !ok {
			return errors.NotValidf("widths of type %T", ws)
		}
		if len(fs) != n {
			return errors.NotValidf("%d widths for %d data points", len(fs), n)
		}
		for i, f := range fs {
			if !(f >= 0) {
				return errors.NotValidf("width %v at index %d", f, i)
			}
		}
	}
	return nil
}

func validateMarker(m *style.Marker, n int) error {
	if err := checkColor("color", m.Color, n); err != nil {
		return err
	}
	if err := checkEnum("color scale", m.ColorScale); err != nil {
		return err
	}
	if l, ok := m.Outline.Get(); ok {
		if err := validateLine(&l, n); err != nil {
			return errors.Annotate(err, "outline")
		}
	}
	if s, ok := m.Size.Get(); ok && s < 0 {
		return errors.NotValidf("size %v", s)
	}
	if err := checkEnum("symbol", m.Symbol); err != nil {
		return err
	}
	if err := checkEnums("symbols", m.MultiSymbol, n); err != nil {
		return err
	}
	if o, ok := m.Opacity.Get(); ok {
		if err := checkOpacity("opacity", o); err != nil {
			return err
		}
	}
	if err := checkLen("opacities", m.MultiOpacity, n); err != nil {
		return err
	}
	for i, o := range m.MultiOpacity.OrElse(nil) {
		if err := checkOpacity("opacity", o); err != nil {
			return errors.Annotatef(err, "index %d", i)
		}
	}
	if p, ok := m.Pattern.Get(); ok {
		if err := checkEnum("pattern shape", p.Shape); err != nil {
			return err
		}
		if err := checkEnums("pattern shapes", p.MultiShape, n); err != nil {
			return err
		}
		if err := checkColor("pattern color", p.FgColor, n); err != nil {
			return err
		}
		if s, ok := p.Size.Get(); ok && s < 0 {
			return errors.NotValidf("pattern size %v", s)
		}
	}
	return nil
}

func validateLine(l *style.Line, n int) error {
	if err := checkColor("color", l.Color, n); err != nil {
		return err
	}
	if err := checkEnum("color scale", l.ColorScale); err != nil {
		return err
	}
	if w, ok := l.Width.Get(); ok && w < 0 {
		return errors.NotValidf("width %v", w)
	}
	return checkEnum("dash", l.Dash)
}

func checkOpacity(what string, o float64) error {
	if !(o >= 0 && o <= 1) {
		return errors.NotValidf("%s %v", what, o)
	}
	return nil
}

func checkLen[T any](what string, v opt.Value[[]T], n int) error {
	if s, ok := v.Get(); ok && len(s) != n {
		return errors.NotValidf("%d %s for %d data points", len(s), what, n)
	}
	return nil
}

type validator interface {
	Valid() bool
}

func checkEnum[T validator](what string, v opt.Value[T]) error {
	if x, ok := v.Get(); ok && !x.Valid() {
		return errors.NotValidf("%s %q", what, x)
	}
	return nil
}

func checkEnums[T validator](what string, v opt.Value[[]T], n int) error {
	if err := checkLen(what, v, n); err != nil {
		return err
	}
	for i, x := range v.OrElse(nil) {
		if !x.Valid() {
			return errors.NotValidf("%s[%d] %q", what, i, x)
		}
	}
	return nil
}

func checkColor(what string, v opt.Value[style.Color], n int) error {
	c, ok := v.Get()
	if !ok {
		return nil
	}
	if c.IsMulti() && c.Len() != n {
		return errors.NotValidf("%d %ss for %d data points", c.Len(), what, n)
	}
	return nil
}
