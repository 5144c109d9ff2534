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

package apis

import "reflect"

// Accessor reads one member value from a source object.
type Accessor func(src any) any

// Spec describes one registered member: a name, a kind, and the accessor
// that reads it. Specs let statically typed code expose members without
// any reflection on the hot path.
type Spec struct {
	// Name is the member name.
	Name string
	// Kind reports whether the member is property-like or field-like.
	Kind Kind
	// Get reads the member value from a source object.
	Get Accessor
}

// Registry provides an optional reflection-free member listing for known
// types. Keep it minimal so implementations can be lock-free or
// sync.Map-backed.
type Registry interface {
	// Register associates a (base) reflect.Type with a fixed member spec
	// set. Implementations should be idempotent for an identical spec
	// signature; conflicting re-registrations return an error.
	Register(t reflect.Type, specs ...Spec) error
	// Lookup returns the member specs for a type if present. The returned
	// slice is shared; callers must not mutate it.
	Lookup(t reflect.Type) (specs []Spec, ok bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered types.
	Count() int
	// Reset clears all registered types.
	Reset()
}

// Entry is a single (type, specs) association in a Registry snapshot.
type Entry struct {
	// Type is the registered reflect.Type.
	Type reflect.Type
	// Specs are the associated member specs.
	Specs []Spec
}
