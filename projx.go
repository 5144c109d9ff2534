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

package projx

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/projx/apis"
	"dirpx.dev/projx/builder"
	"dirpx.dev/projx/config"
)

// init publishes the initial global snapshot with default cfg, reg, and enum.
func init() {
	buildMu.Lock()
	defer buildMu.Unlock()
	st.Store(rebuild(&state{cfg: config.DefaultConfig(), bld: builder.New()}))
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("projx: builder returned nil registry")
	// ErrNilEnumerator is returned when a builder returns a nil enumerator.
	ErrNilEnumerator = errors.New("projx: builder returned nil enumerator")
)

// Project produces one exclusive-mode Projection of src containing
// exactly the named members, without renaming. It is equivalent to
// constructing a fresh Projector, including the names as kind-agnostic
// members, and projecting src against the global enumerator.
//
// This is a convenience wrapper around Projector.
func Project(src any, names ...string) (Projection, error) {
	return New().IncludeMember(names...).Project(src)
}

// Members enumerates the readable members of v using the global
// enumerator and configuration. Useful for diagnostics and for building
// projection rules against an unfamiliar type.
func Members(v any) ([]apis.Member, error) {
	s := st.Load()
	return s.enum.Members(v, s.cfg)
}

// RegisterType adds per-type member specs to the global projx registry.
// This is a convenience wrapper around the global registry.
func RegisterType(t reflect.Type, specs ...apis.Spec) error {
	return st.Load().reg.Register(t, specs...)
}

// Config returns the global projx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global projx configuration to cfg.
// It rebuilds the non-pinned registry and enumerator layers.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	n := st.Load().clone()
	n.cfg = cfg
	st.Store(rebuild(n))
}

// Registry returns the global projx registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global projx registry to reg and pins it.
// The enumerator is rebuilt against the new registry unless pinned.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	n := st.Load().clone()
	n.reg = reg
	n.preg = true
	st.Store(rebuild(n))
}

// Enumerator returns the global projx enumerator.
func Enumerator() apis.Enumerator {
	return st.Load().enum
}

// SetEnumerator sets the global projx enumerator to enum and pins it.
// Other layers are left untouched.
func SetEnumerator(enum apis.Enumerator) {
	if enum == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	n := st.Load().clone()
	n.enum = enum
	n.pen = true
	st.Store(n)
}

// Builder returns the global projx builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global projx builder to b and rebuilds the
// non-pinned layers through it.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	n := st.Load().clone()
	n.bld = b
	st.Store(rebuild(n))
}

// SetAll explicitly sets all global projx state components in one shot.
//
// Nil arguments leave the corresponding component unchanged, except for
// ext which is always replaced. A provided registry or enumerator is
// pinned; a nil one is rebuilt and unpinned. Mainly used by tests to get
// a clean deterministic state between cases.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, enum apis.Enumerator, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	n := st.Load().clone()
	n.ext = ext
	if cfg != nil {
		n.cfg = *cfg
	}
	if bld != nil {
		n.bld = bld
	}
	if reg != nil {
		n.reg = reg
		n.preg = true
	} else {
		n.preg = false
	}
	if enum != nil {
		n.enum = enum
		n.pen = true
	} else {
		n.pen = false
	}
	st.Store(rebuild(n))
}

// SetExt replaces the opaque extension payload and rebuilds non-pinned
// layers via the builder. projx itself never interprets ext; it is passed
// to the builder so out-of-tree builders can carry extra policy/state.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	n := st.Load().clone()
	n.ext = ext
	st.Store(rebuild(n))
}

// ExtAs returns the global projx extension payload as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global registry is pinned (immutable).
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry makes the global registry immune to automatic rebuilds.
func PinRegistry() {
	setPins(func(s *state) { s.preg = true })
}

// UnpinRegistry makes the global registry rebuildable again.
func UnpinRegistry() {
	setPins(func(s *state) { s.preg = false })
}

// IsEnumeratorPinned returns whether the global enumerator is pinned (immutable).
func IsEnumeratorPinned() bool {
	return st.Load().pen
}

// PinEnumerator makes the global enumerator immune to automatic rebuilds.
func PinEnumerator() {
	setPins(func(s *state) { s.pen = true })
}

// UnpinEnumerator makes the global enumerator rebuildable again.
func UnpinEnumerator() {
	setPins(func(s *state) { s.pen = false })
}

// setPins publishes a snapshot with mutated pin flags only.
func setPins(mut func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	n := st.Load().clone()
	mut(n)
	st.Store(n)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global projx state.
var st atomic.Pointer[state]

// state is the global projx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate
// fields of a published state. Writers clone, mutate the clone, and swap
// it atomically.
type state struct {
	// cfg is the global projx configuration.
	cfg apis.Config
	// ext is the global projx extension payload.
	ext any
	// reg is the global projx registry.
	reg apis.Registry
	// enum is the global projx enumerator.
	enum apis.Enumerator
	// bld is the global projx builder.
	bld apis.Builder
	// preg indicates whether the registry is pinned (immutable).
	preg bool
	// pen indicates whether the enumerator is pinned (immutable).
	pen bool
}

// clone returns a mutable shallow copy of s.
func (s *state) clone() *state {
	c := *s
	return &c
}

// rebuild reconstructs any non-pinned layer of next through its builder
// and validates the result. The caller holds buildMu.
func rebuild(next *state) *state {
	if !next.preg {
		next.reg = next.bld.BuildRegistry(next.cfg, next.reg, next.ext)
	}
	if !next.pen {
		next.enum = next.bld.BuildEnumerator(next.cfg, next.reg, next.enum, next.ext)
	}
	if next.reg == nil {
		panic(ErrNilRegistry)
	}
	if next.enum == nil {
		panic(ErrNilEnumerator)
	}
	return next
}
