// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromPtr(t *testing.T) {
	assert := assert.New(t)

	assert.True(FromPtr[float64](nil).IsNone())

	x := 2.5
	v := FromPtr(&x)
	got, ok := v.Get()
	assert.True(ok)
	assert.Equal(2.5, got)

	// The value is captured at conversion time.
	x = 3
	assert.Equal(2.5, v.OrElse(0))
}

func TestFromSlice(t *testing.T) {
	assert := assert.New(t)

	assert.True(FromSlice[int](nil).IsNone())

	empty := FromSlice([]int{})
	assert.True(empty.IsSome())
	got, _ := empty.Get()
	assert.NotNil(got)
	assert.Len(got, 0)

	s := []string{"a", "b"}
	v, ok := FromSlice(s).Get()
	assert.True(ok)
	assert.Equal(s, v)
	// Same backing array.
	assert.Same(&s[0], &v[0])
}

func TestFromAny(t *testing.T) {
	assert := assert.New(t)

	assert.True(FromAny[any](nil).IsNone())
	assert.Equal(Some[any](0), FromAny[any](0))
	assert.Equal(Some("x"), FromAny("x"))

	type slice interface{}
	var s slice
	assert.True(FromAny(s).IsNone())
	s = []int{}
	assert.True(FromAny(s).IsSome())
}

func TestZeroIsNone(t *testing.T) {
	var v Value[bool]
	assert.Equal(t, None[bool](), v)
	assert.Equal(t, "None", v.String())
	assert.Equal(t, "Some(true)", Some(true).String())
}

func TestOrAndPtr(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Some(1), None[int]().Or(Some(1)))
	assert.Equal(Some(2), Some(2).Or(Some(1)))
	assert.Nil(None[int]().Ptr())
	assert.Equal(3, *Some(3).Ptr())
	assert.Equal(FromPtr(Some(4).Ptr()), Some(4))
}

func TestMap(t *testing.T) {
	double := func(x int) int { return 2 * x }
	assert.Equal(t, Some(4), Map(Some(2), double))
	assert.Equal(t, None[int](), Map(None[int](), double))
}
