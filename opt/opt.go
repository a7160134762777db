// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opt provides a present/absent tagged value and the
// conversions from Go's own optional-value idioms (nil pointers, nil
// slices and nil interfaces) into it.
//
// Every conversion is total and local to one value: an absent input
// becomes None and a present input v becomes Some(v), with v passed
// through unchanged.
package opt

import "fmt"

// Value is an optional value of type T. The zero Value is None.
type Value[T any] struct {
	v  T
	ok bool
}

// Some returns a present Value holding v.
func Some[T any](v T) Value[T] {
	return Value[T]{v, true}
}

// None returns an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// FromPtr returns None if p is nil and Some(*p) otherwise.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromSlice returns None if s is nil and Some(s) otherwise. An empty
// but non-nil slice is present. The slice is not copied.
func FromSlice[T any](s []T) Value[[]T] {
	if s == nil {
		return None[[]T]()
	}
	return Some(s)
}

// FromAny returns None if x is a nil interface value and Some(x)
// otherwise. T is normally an interface type; values of other types
// are always present.
func FromAny[T any](x T) Value[T] {
	if any(x) == nil {
		return None[T]()
	}
	return Some(x)
}

// Get returns the held value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.v, o.ok
}

// IsSome reports whether o holds a value.
func (o Value[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether o is absent.
func (o Value[T]) IsNone() bool {
	return !o.ok
}

// OrElse returns the held value, or def if o is absent.
func (o Value[T]) OrElse(def T) T {
	if o.ok {
		return o.v
	}
	return def
}

// Or returns o if it is present and other otherwise.
func (o Value[T]) Or(other Value[T]) Value[T] {
	if o.ok {
		return o
	}
	return other
}

// Ptr returns a pointer to a copy of the held value, or nil if o is
// absent. It is the inverse of FromPtr.
func (o Value[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.v
	return &v
}

func (o Value[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.v)
}

// Map applies f to the value held by o, if any.
func Map[T, U any](o Value[T], f func(T) U) Value[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.v))
}
