// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/juju/errors"
)

func seqLen(s table.Slice) (int, error) {
	if s == nil {
		return 0, errors.NotValidf("nil sequence")
	}
	rv := reflect.ValueOf(s)
	if rv.Kind() != reflect.Slice {
		return 0, errors.NotValidf("%T as a sequence", s)
	}
	return rv.Len(), nil
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// checkSeq checks that s is a slice of numbers or strings and returns
// its length.
func checkSeq(what string, s table.Slice) (int, error) {
	n, err := seqLen(s)
	if err != nil {
		return 0, errors.Annotate(err, what)
	}
	ek := reflect.TypeOf(s).Elem().Kind()
	if !isNumeric(ek) && ek != reflect.String {
		return 0, errors.NotSupportedf("%s element type %s", what, reflect.TypeOf(s).Elem())
	}
	return n, nil
}

// IsNumeric reports whether s is a slice of numbers.
func IsNumeric(s table.Slice) bool {
	t := reflect.TypeOf(s)
	if t == nil || t.Kind() != reflect.Slice {
		return false
	}
	return isNumeric(t.Elem().Kind())
}

// Floats converts a slice of numbers to []float64. It returns false if
// s is not a slice of numbers. A []float64 is returned as is.
func Floats(s table.Slice) ([]float64, bool) {
	if fs, ok := s.([]float64); ok {
		return fs, true
	}
	if !IsNumeric(s) {
		return nil, false
	}
	var fs []float64
	slice.Convert(&fs, s)
	return fs, true
}

// Strings formats each element of s with fmt.Sprint.
func Strings(s table.Slice) []string {
	if ss, ok := s.([]string); ok {
		return ss
	}
	rv := reflect.ValueOf(s)
	if rv.Kind() != reflect.Slice {
		return nil
	}
	out := make([]string, rv.Len())
	for i := range out {
		out[i] = fmt.Sprint(rv.Index(i).Interface())
	}
	return out
}

// ToFloat converts a number of any numeric type to float64.
func ToFloat(x any) (float64, bool) {
	rv := reflect.ValueOf(x)
	if !rv.IsValid() {
		return 0, false
	}
	switch {
	case rv.CanInt():
		return float64(rv.Int()), true
	case rv.CanUint():
		return float64(rv.Uint()), true
	case rv.CanFloat():
		return rv.Float(), true
	}
	return 0, false
}
