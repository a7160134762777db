// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/palette"
	"github.com/juju/errors"
	"golang.org/x/image/colornames"
)

// Color is either a single color, a color per datum, or a value per
// datum that is mapped to a color through a Colorscale.
//
// Colors are written as CSS color strings: "#rrggbb", "#rgb",
// "rgb(r, g, b)", "rgba(r, g, b, a)" or one of a small set of names.
type Color struct {
	css    []string
	values []float64
	multi  bool
}

// ColorFromString returns a single color.
func ColorFromString(css string) Color {
	return Color{css: []string{css}}
}

// ColorFromStrings returns one color per datum.
func ColorFromStrings(css []string) Color {
	return Color{css: css, multi: true}
}

// ColorFromRGBA returns a single color equal to c.
func ColorFromRGBA(c color.Color) Color {
	return ColorFromString(cssOf(c))
}

// ColorFromValues returns one value per datum. The renderer maps these
// values to colors with the trace's colorscale.
func ColorFromValues(vs []float64) Color {
	return Color{values: vs, multi: true}
}

// IsMulti reports whether c holds a color or value per datum.
func (c Color) IsMulti() bool {
	return c.multi
}

// Len returns the number of per-datum entries of c, or 1 for a single
// color.
func (c Color) Len() int {
	if c.values != nil {
		return len(c.values)
	}
	return len(c.css)
}

// Values returns the per-datum values of c, or nil if c holds CSS
// colors.
func (c Color) Values() []float64 {
	return c.values
}

// CSS returns the CSS color for datum i. A single color is returned
// for every i. For value colors, CSS maps the value through scale,
// with the value range [lo, hi].
func (c Color) CSS(i int, scale Colorscale, lo, hi float64) string {
	if c.values != nil {
		return cssOf(c.RGBA(i, scale, lo, hi))
	}
	if len(c.css) == 0 {
		return ""
	}
	if !c.multi {
		return c.css[0]
	}
	return c.css[i%len(c.css)]
}

// RGBA is like CSS, but returns a color.Color. Unparseable CSS colors
// are returned as black.
func (c Color) RGBA(i int, scale Colorscale, lo, hi float64) color.Color {
	if c.values != nil {
		x := 0.5
		if hi > lo {
			x = (c.values[i%len(c.values)] - lo) / (hi - lo)
		}
		return scale.Palette().Map(x)
	}
	rgba, err := ParseCSS(c.CSS(i, scale, lo, hi))
	if err != nil {
		return color.Black
	}
	return rgba
}

func (c Color) String() string {
	switch {
	case c.values != nil:
		return fmt.Sprint(c.values)
	case c.multi:
		return fmt.Sprint(c.css)
	case len(c.css) == 1:
		return c.css[0]
	}
	return ""
}

// MarshalJSON encodes c the way plotly.js expects: a string, an array
// of strings, or an array of numbers.
func (c Color) MarshalJSON() ([]byte, error) {
	switch {
	case c.values != nil:
		return json.Marshal(c.values)
	case c.multi:
		return json.Marshal(c.css)
	case len(c.css) == 1:
		return json.Marshal(c.css[0])
	}
	return []byte("null"), nil
}

// ParseCSS parses a CSS color string: a CSS color name, "transparent",
// #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(r, g, b) or rgba(r, g, b, a).
// Out of range rgb() channels are clamped to [0, 255] and alpha to
// [0, 1].
func ParseCSS(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if s == "transparent" {
		return color.RGBA{}, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	for _, fn := range []string{"rgba(", "rgb("} {
		if strings.HasPrefix(s, fn) && strings.HasSuffix(s, ")") {
			return parseRGBFunc(s, s[len(fn):len(s)-1])
		}
	}
	return color.RGBA{}, errors.NotValidf("color %q", s)
}

func parseHex(s string) (color.RGBA, error) {
	h := s[1:]
	if len(h) == 3 || len(h) == 4 {
		long := make([]byte, 0, 2*len(h))
		for i := 0; i < len(h); i++ {
			long = append(long, h[i], h[i])
		}
		h = string(long)
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.RGBA{}, errors.NotValidf("color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.NotValidf("color %q", s)
	}
	n := color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}
	return color.RGBAModel.Convert(n).(color.RGBA), nil
}

func parseRGBFunc(s, args string) (color.RGBA, error) {
	fields := strings.Split(args, ",")
	if len(fields) != 3 && len(fields) != 4 {
		return color.RGBA{}, errors.NotValidf("color %q", s)
	}
	var c [4]float64
	c[3] = 1
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil || math.IsNaN(v) {
			return color.RGBA{}, errors.NotValidf("color %q", s)
		}
		c[i] = v
	}
	for i := 0; i < 3; i++ {
		c[i] = clamp(c[i], 0, 255)
	}
	a := clamp(c[3], 0, 1)
	n := color.NRGBA{
		uint8(c[0] + 0.5), uint8(c[1] + 0.5), uint8(c[2] + 0.5),
		uint8(a*255 + 0.5),
	}
	return color.RGBAModel.Convert(n).(color.RGBA), nil
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

func cssOf(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %.3g)", n.R, n.G, n.B, float64(n.A)/255)
}

// Colorscale names a continuous palette used to map per-datum values
// to colors.
type Colorscale string

const (
	Viridis  Colorscale = "Viridis"
	Greys    Colorscale = "Greys"
	Blues    Colorscale = "Blues"
	Reds     Colorscale = "Reds"
	Greens   Colorscale = "Greens"
	RdBu     Colorscale = "RdBu"
	Bluered  Colorscale = "Bluered"
	Hot      Colorscale = "Hot"
	Jet      Colorscale = "Jet"
	Electric Colorscale = "Electric"
	Portland Colorscale = "Portland"
)

var colorscales = map[Colorscale]palette.Continuous{
	Viridis:  palette.Viridis,
	Greys:    gradient(0x000000, 0xffffff),
	Blues:    gradient(0x08306b, 0x2171b5, 0x6baed6, 0xc6dbef, 0xf7fbff),
	Reds:     gradient(0x67000d, 0xcb181d, 0xfb6a4a, 0xfcbba1, 0xfff5f0),
	Greens:   gradient(0x00441b, 0x238b45, 0x74c476, 0xc7e9c0, 0xf7fcf5),
	RdBu:     gradient(0x053061, 0x4393c3, 0xf7f7f7, 0xd6604d, 0x67001f),
	Bluered:  gradient(0x0000ff, 0xff0000),
	Hot:      gradient(0x000000, 0xe60000, 0xffd200, 0xffffff),
	Jet:      gradient(0x000083, 0x003caa, 0x05ffff, 0xffff00, 0xfa0000, 0x800000),
	Electric: gradient(0x000000, 0x1e0064, 0x780064, 0xa05a00, 0xe6c800, 0xfffadc),
	Portland: gradient(0x0c3383, 0x0a88ba, 0xf2d338, 0xf28f38, 0xd91e1e),
}

func gradient(rgbs ...uint32) palette.RGBGradient {
	g := palette.RGBGradient{}
	for _, rgb := range rgbs {
		g.Colors = append(g.Colors, color.RGBA{uint8(rgb >> 16), uint8(rgb >> 8), uint8(rgb), 0xff})
	}
	return g
}

func (c Colorscale) Valid() bool {
	_, ok := colorscales[c]
	return ok
}

func (c Colorscale) String() string { return string(c) }

// Palette returns the continuous palette for c. Unknown colorscales
// use Viridis.
func (c Colorscale) Palette() palette.Continuous {
	if p, ok := colorscales[c]; ok {
		return p
	}
	return palette.Viridis
}

// ParseColorscale parses a colorscale name, ignoring case.
func ParseColorscale(s string) (Colorscale, error) {
	for c := range colorscales {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", errors.NotValidf("colorscale %q", s)
}
