/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/projx/apis"
	"dirpx.dev/projx/config"
)

var (
	// ErrNilValue is returned when an invalid or nil value is provided,
	// or when a nil indirection is hit while unwrapping.
	ErrNilValue = errors.New("reflect: nil value provided")
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrMaxDepth indicates that indirection unwrapping exceeded the
	// configured MaxUnwrap depth without reaching a concrete value.
	ErrMaxDepth = errors.New("reflect: unwrap depth exceeded")
)

// Unwrap dereferences pointers and interfaces according to cfg (MaxUnwrap)
// and returns the concrete value underneath.
//
// Unwrapping policy:
//   - ptr/interface -> Elem(); a nil indirection yields ErrNilValue.
//   - any other kind is returned as is (struct, map, slice, scalar, ...).
//
// If MaxUnwrap <= 0, config.DefaultMaxUnwrap is used.
func Unwrap(v reflect.Value, cfg apis.Config) (reflect.Value, error) {
	if !v.IsValid() {
		return reflect.Value{}, ErrNilValue
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; i < maxUnwrap; i++ {
		switch v.Kind() {
		case reflect.Pointer, reflect.Interface:
			if v.IsNil() {
				return reflect.Value{}, ErrNilValue
			}
			v = v.Elem()
		default:
			return v, nil
		}
	}

	// After reaching max depth, ensure we ended on a concrete value.
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return reflect.Value{}, ErrMaxDepth
	default:
		return v, nil
	}
}

// Base is the type-level counterpart of Unwrap: it strips pointer
// indirection from t and returns the underlying type. Interfaces cannot be
// unwrapped without an instance and are returned as is.
func Base(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; i < maxUnwrap && t.Kind() == reflect.Pointer; i++ {
		t = t.Elem()
	}
	if t.Kind() == reflect.Pointer {
		return nil, ErrMaxDepth
	}
	return t, nil
}

// IsNil reports whether v is an untyped nil or a nil value of a nilable
// kind (pointer, interface, map, slice, chan, func). Non-nilable values
// are never nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
