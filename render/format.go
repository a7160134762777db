// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render writes charts built by package engine as SVG images,
// interactive HTML pages and plotly.js JSON figures.
package render

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/aclements/chart2d/engine"
	"github.com/juju/errors"
)

// Format is an output format.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatHTML Format = "html"
	FormatJSON Format = "json"
)

var formats = []Format{FormatSVG, FormatHTML, FormatJSON}

func (f Format) String() string { return string(f) }

// Ext returns the file name extension of f, including the dot.
func (f Format) Ext() string { return "." + string(f) }

// ParseFormat parses a format name, ignoring case and a leading dot.
func ParseFormat(s string) (Format, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	for _, f := range formats {
		if s == string(f) {
			return f, nil
		}
	}
	return "", errors.NotValidf("format %q", s)
}

// FormatOf returns the format named by the extension of path, or def
// if path has no recognized extension.
func FormatOf(path string, def Format) Format {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		if f, err := ParseFormat(path[i:]); err == nil {
			return f
		}
	}
	return def
}

// Write renders c to w in format f. width and height are the default
// size in pixels for formats that have one.
func Write(w io.Writer, c *engine.GenericChart, f Format, width, height int) error {
	switch f {
	case FormatSVG:
		return SVG(w, c, width, height)
	case FormatHTML:
		return HTML(w, c, width, height)
	case FormatJSON:
		return JSON(w, c)
	}
	return errors.NotValidf("format %q", string(f))
}

// JSON writes c as an indented plotly.js figure.
func JSON(w io.Writer, c *engine.GenericChart) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Annotate(enc.Encode(c), "writing JSON")
}
