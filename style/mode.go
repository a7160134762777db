// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"strings"

	"github.com/juju/errors"
)

// Mode is the drawing mode of a scatter trace: some combination of
// lines, markers and text, or none.
type Mode uint8

const (
	ModeLines Mode = 1 << iota
	ModeMarkers
	ModeText

	ModeNone Mode = 0

	ModeLinesMarkers     = ModeLines | ModeMarkers
	ModeLinesText        = ModeLines | ModeText
	ModeMarkersText      = ModeMarkers | ModeText
	ModeLinesMarkersText = ModeLines | ModeMarkers | ModeText
)

var modeParts = []struct {
	m    Mode
	name string
}{
	{ModeLines, "lines"},
	{ModeMarkers, "markers"},
	{ModeText, "text"},
}

// Has reports whether all parts of part are set in m.
func (m Mode) Has(part Mode) bool {
	return m&part == part
}

// WithText returns m with text added if show is true. Otherwise m is
// returned unchanged.
func (m Mode) WithText(show bool) Mode {
	if show {
		return m | ModeText
	}
	return m
}

// WithMarkers returns m with markers added if show is true. Otherwise
// m is returned unchanged.
func (m Mode) WithMarkers(show bool) Mode {
	if show {
		return m | ModeMarkers
	}
	return m
}

func (m Mode) Valid() bool {
	return m&^ModeLinesMarkersText == 0
}

// String returns the plotly.js spelling of m, such as
// "lines+markers".
func (m Mode) String() string {
	if m == ModeNone {
		return "none"
	}
	var parts []string
	for _, p := range modeParts {
		if m.Has(p.m) {
			parts = append(parts, p.name)
		}
	}
	return strings.Join(parts, "+")
}

// ParseMode parses a mode written as "none" or as parts joined by
// "+", in any order.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "none" {
		return ModeNone, nil
	}
	var m Mode
parts:
	for _, part := range strings.Split(s, "+") {
		for _, p := range modeParts {
			if part == p.name {
				m |= p.m
				continue parts
			}
		}
		return 0, errors.NotValidf("mode %q", s)
	}
	return m, nil
}
