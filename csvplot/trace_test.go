// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/aclements/chart2d/engine"
	"github.com/aclements/chart2d/opt"
	"github.com/aclements/chart2d/style"
	"github.com/aclements/go-gg/table"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrace(t *testing.T) {
	ts, err := parseTrace(`line x=t y=load name='CPU load' markers=true dash=dot opacity=0.5`)
	require.NoError(t, err)
	assert.Equal(t, "line", ts.kind)
	assert.Equal(t, "t", ts.x)
	assert.Equal(t, "load", ts.y)
	assert.Equal(t, "CPU load", *ts.opts.Name)
	assert.True(t, *ts.markers)
	assert.Equal(t, style.Dot, *ts.opts.LineDash)
	assert.Equal(t, 0.5, *ts.opts.Opacity)

	ts, err = parseTrace(`column values=n keys=k width=0.4 base=1`)
	require.NoError(t, err)
	assert.Equal(t, "n", ts.values)
	assert.Equal(t, 0.4, ts.barWidth)
	assert.Equal(t, 1.0, ts.base)

	ts, err = parseTrace(`scatter y=v mode=lines+text`)
	require.NoError(t, err)
	assert.Equal(t, style.ModeLinesText, ts.mode)
}

func TestParseTraceErrors(t *testing.T) {
	for _, test := range []struct {
		arg          string
		notSupported bool
	}{
		{arg: ``},
		{arg: `pie y=a`},
		{arg: `line x=a`},
		{arg: `bar keys=a`},
		{arg: `line y=a opacity=high`},
		{arg: `line y=a markers`},
		{arg: `line y=a dash=wiggly`},
		{arg: `bar values=a pattern=zigzag`},
		{arg: `line y=a shade=1`, notSupported: true},
	} {
		_, err := parseTrace(test.arg)
		if test.notSupported {
			assert.True(t, errors.IsNotSupported(err), "%q: %v", test.arg, err)
		} else {
			assert.True(t, errors.IsNotValid(err), "%q: %v", test.arg, err)
		}
	}
	_, err := parseTrace(`line y='unterminated`)
	assert.Error(t, err)
}

func testTable() *table.Table {
	return table.TableFromStrings(
		[]string{"day", "n", "label"},
		[][]string{{"1", "10", "a"}, {"2", "20", "b"}, {"3", "15", "c"}},
		true)
}

func TestDraw(t *testing.T) {
	tab := testTable()
	e := engine.Default()

	ts, err := parseTrace(`line x=day y=n textcol=label markers=true`)
	require.NoError(t, err)
	c, err := ts.draw(e, tab)
	require.NoError(t, err)
	require.Len(t, c.Traces, 1)
	tr := c.Traces[0]
	assert.Equal(t, []float64{1, 2, 3}, tr.X)
	assert.Equal(t, []float64{10, 20, 15}, tr.Y)
	assert.Equal(t, opt.Some([]string{"a", "b", "c"}), tr.MultiText)
	assert.Equal(t, opt.Some(style.ModeLinesMarkers), tr.Mode)

	ts, err = parseTrace(`point x=label y=n`)
	require.NoError(t, err)
	c, err = ts.draw(e, tab)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, c.Traces[0].X)

	ts, err = parseTrace(`scatter y=n`)
	require.NoError(t, err)
	c, err = ts.draw(e, tab)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, c.Traces[0].X)

	ts, err = parseTrace(`bar values=n keys=label`)
	require.NoError(t, err)
	c, err = ts.draw(e, tab)
	require.NoError(t, err)
	assert.Equal(t, engine.TypeBar, c.Traces[0].Type)
	assert.Equal(t, opt.Some(style.Horizontal), c.Traces[0].Orientation)

	ts, err = parseTrace(`line y=missing`)
	require.NoError(t, err)
	_, err = ts.draw(e, tab)
	assert.True(t, errors.IsNotFound(err))

	ts, err = parseTrace(`column values=n keys=missing`)
	require.NoError(t, err)
	_, err = ts.draw(e, tab)
	assert.True(t, errors.IsNotFound(err))
}
