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

package registry

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/projx/apis"
	"dirpx.dev/projx/config"
	uref "dirpx.dev/projx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("projx(registry): nil reflect.Type provided")
	// ErrNoSpecs is returned when no member specs are provided.
	ErrNoSpecs = errors.New("projx(registry): no member specs provided")
	// ErrEmptySpecName is returned when a spec carries an empty name.
	ErrEmptySpecName = errors.New("projx(registry): empty spec name provided")
	// ErrNilAccessor is returned when a spec carries a nil accessor.
	ErrNilAccessor = errors.New("projx(registry): nil spec accessor provided")
	// ErrBadSpecKind is returned when a spec carries an unknown kind.
	ErrBadSpecKind = errors.New("projx(registry): unknown spec kind provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type with a different member spec set.
	ErrConflictingRegistration = errors.New("projx(registry): conflicting type registration")
)

// New constructs a Registry that normalizes types according to cfg.
// Only MaxUnwrap is used here (the other knobs do not affect keying).
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &registry{cfg: cfg}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to a record.
	m sync.Map // map[reflect.Type]record
	// count tracks the number of registered types.
	count int
}

// record holds the specs for one type plus a comparable signature used
// for idempotency checks (accessor funcs are not comparable).
type record struct {
	specs []apis.Spec
	sig   string
}

// Register associates the base type of t with the given member specs.
// Re-registration with an identical (name, kind) signature is an
// idempotent no-op; a different signature is a conflict. Spec order is
// preserved for Lookup, except that properties are listed before fields.
func (r *registry) Register(t reflect.Type, specs ...apis.Spec) error {
	// Validate inputs early.
	if t == nil {
		return ErrNilType
	}
	if len(specs) == 0 {
		return ErrNoSpecs
	}
	for _, s := range specs {
		if s.Name == "" {
			return ErrEmptySpecName
		}
		if s.Get == nil {
			return ErrNilAccessor
		}
		if s.Kind != apis.KindProperty && s.Kind != apis.KindField {
			return ErrBadSpecKind
		}
	}

	// Normalize to the base type according to r.cfg.
	b, err := uref.Base(t, r.cfg)
	if err != nil {
		return err
	}

	rec := record{specs: ordered(specs), sig: signature(specs)}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(b); ok {
		if old.(record).sig == rec.sig {
			return nil // idempotent re-registration
		}
		return ErrConflictingRegistration
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(b); ok {
		if old.(record).sig == rec.sig {
			return nil
		}
		return ErrConflictingRegistration
	}

	r.m.Store(b, rec)
	r.count++
	return nil
}

// Lookup returns the member specs for a type if present.
func (r *registry) Lookup(t reflect.Type) ([]apis.Spec, bool) {
	if t == nil {
		return nil, false
	}
	b, err := uref.Base(t, r.cfg)
	if err != nil {
		return nil, false
	}
	if v, ok := r.m.Load(b); ok {
		return v.(record).specs, true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Type:  key.(reflect.Type),
			Specs: value.(record).specs,
		})
		return true
	})
	return entries
}

// Count returns the number of registered types.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered types.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = sync.Map{}
	r.count = 0
}

// ordered returns a copy of specs with properties listed before fields,
// preserving relative order inside each family.
func ordered(specs []apis.Spec) []apis.Spec {
	out := make([]apis.Spec, 0, len(specs))
	for _, s := range specs {
		if s.Kind == apis.KindProperty {
			out = append(out, s)
		}
	}
	for _, s := range specs {
		if s.Kind == apis.KindField {
			out = append(out, s)
		}
	}
	return out
}

// signature derives a comparable identity for a spec set. Accessors are
// deliberately excluded: two registrations naming the same members are
// considered equivalent.
func signature(specs []apis.Spec) string {
	var sb strings.Builder
	for _, s := range ordered(specs) {
		sb.WriteString(s.Kind.String())
		sb.WriteByte(':')
		sb.WriteString(s.Name)
		sb.WriteByte(';')
	}
	return sb.String()
}
