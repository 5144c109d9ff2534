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
	"fmt"

	"github.com/stretchr/objx"

	"dirpx.dev/projx/apis"
	"dirpx.dev/projx/pxapi/common"
	"dirpx.dev/projx/pxapi/policy"
	uref "dirpx.dev/projx/utils/reflect"
)

// Projection is the flat key->value mapping produced from a source object.
// It is created fresh on every projection and never retained by the
// Projector; downstream serializers own formatting.
type Projection = objx.Map

// IncludeBehavior selects the projection algorithm. See pxapi/policy.
type IncludeBehavior = policy.Include

// NullBehavior selects the null-value handling. See pxapi/policy.
type NullBehavior = policy.Nulls

const (
	// IncludeNone projects nothing unless named (default).
	IncludeNone = policy.None
	// IncludeAll projects everything unless excluded.
	IncludeAll = policy.All
	// ExcludeNulls drops null member values from the output (default).
	ExcludeNulls = policy.ExcludeNulls
	// IncludeNulls keeps null member values with explicit nil entries.
	IncludeNulls = policy.IncludeNulls
)

var (
	// ErrMemberNotFound is returned when an explicitly included name does
	// not resolve to any accessible member of the source object.
	ErrMemberNotFound = errors.New("projx: member not found")
	// ErrNilSource is returned when a projection is requested and no
	// source object is available.
	ErrNilSource = errors.New("projx: no source object provided")
	// ErrNilTarget is returned when ProjectInto is given a nil mapping.
	ErrNilTarget = errors.New("projx: nil target mapping provided")
)

// nameSet is a registration set; adding a name twice has no further effect.
type nameSet map[string]struct{}

func (s nameSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s *nameSet) add(names []string) {
	if *s == nil {
		*s = make(nameSet, len(names))
	}
	for _, n := range names {
		(*s)[n] = struct{}{}
	}
}

// Projector selects a subset of a source object's members by name and
// copies their values into a fresh Projection, optionally renaming keys
// and suppressing null values.
//
// A Projector accumulates rules (inclusion/exclusion sets, renames,
// behaviors) and computes projections from them; producing a projection
// never consumes or clears a rule, so one Projector is reusable across
// many source objects. Rule registration mutates the Projector and must
// be serialized by the caller; projection itself reads only and is safe
// to run concurrently against a stable rule set.
type Projector struct {
	// source is the optional bound source object for ProjectSource/ProjectInto.
	source any

	// include selects exclusive (IncludeNone) or inclusive (IncludeAll) mode.
	include IncludeBehavior
	// nulls selects null-value handling.
	nulls NullBehavior

	// incMembers/excMembers hold kind-agnostic member names.
	incMembers, excMembers nameSet
	// incProps/excProps hold property-scoped names.
	incProps, excProps nameSet
	// incFields/excFields hold field-scoped names.
	incFields, excFields nameSet

	// renames maps an original member name to its output key. One map is
	// shared across the member/property/field rule families.
	renames map[string]string

	// enum overrides the global enumerator when non-nil.
	enum apis.Enumerator
	// cfg overrides the global configuration when non-nil.
	cfg *apis.Config
}

// Option is a functional option that mutates a Projector during construction.
type Option func(*Projector)

// WithSource binds the source object for ProjectSource/ProjectInto.
func WithSource(src any) Option {
	return func(p *Projector) {
		p.source = src
	}
}

// WithEnumerator pins the Projector to a specific member enumerator
// instead of the global one.
func WithEnumerator(enum apis.Enumerator) Option {
	return func(p *Projector) {
		p.enum = enum
	}
}

// WithConfig pins the Projector to a specific enumeration configuration
// instead of the global one.
func WithConfig(cfg apis.Config) Option {
	return func(p *Projector) {
		p.cfg = &cfg
	}
}

// New constructs an empty Projector: exclusive mode, nulls excluded,
// no rules. With no further registration it projects any source to an
// empty mapping.
func New(opts ...Option) *Projector {
	p := &Projector{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetSource replaces the bound source object.
func (p *Projector) SetSource(src any) *Projector {
	p.source = src
	return p
}

// SetIncludeBehavior replaces the projection policy.
func (p *Projector) SetIncludeBehavior(b IncludeBehavior) *Projector {
	p.include = b
	return p
}

// SetNullBehavior replaces the null-handling policy.
func (p *Projector) SetNullBehavior(b NullBehavior) *Projector {
	p.nulls = b
	return p
}

// IncludeMember adds kind-agnostic names to the inclusion rules. In
// exclusive mode each name resolves as a property first, then as a field.
func (p *Projector) IncludeMember(names ...string) *Projector {
	p.incMembers.add(names)
	return p
}

// ExcludeMember adds kind-agnostic names to the exclusion rules,
// consulted only in inclusive mode.
func (p *Projector) ExcludeMember(names ...string) *Projector {
	p.excMembers.add(names)
	return p
}

// IncludeProperty adds property-scoped names to the inclusion rules.
func (p *Projector) IncludeProperty(names ...string) *Projector {
	p.incProps.add(names)
	return p
}

// ExcludeProperty adds property-scoped names to the exclusion rules.
func (p *Projector) ExcludeProperty(names ...string) *Projector {
	p.excProps.add(names)
	return p
}

// IncludeField adds field-scoped names to the inclusion rules.
func (p *Projector) IncludeField(names ...string) *Projector {
	p.incFields.add(names)
	return p
}

// ExcludeField adds field-scoped names to the exclusion rules.
func (p *Projector) ExcludeField(names ...string) *Projector {
	p.excFields.add(names)
	return p
}

// RenameAs registers an output-key override for a member name. The
// override applies regardless of which rule family included the member.
func (p *Projector) RenameAs(name, key string) *Projector {
	if p.renames == nil {
		p.renames = make(map[string]string)
	}
	p.renames[name] = key
	return p
}

// IncludeAs includes a member under a different output key. It is
// shorthand for IncludeMember(name) followed by RenameAs(name, key).
func (p *Projector) IncludeAs(name, key string) *Projector {
	return p.IncludeMember(name).RenameAs(name, key)
}

// Project produces one Projection from src using the current rules.
// It does not mutate the Projector.
func (p *Projector) Project(src any) (Projection, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if p.include == IncludeAll {
		return p.inclusive(src)
	}
	return p.exclusive(src)
}

// ProjectMany maps Project over srcs, preserving input order. It fails
// fast on the first error and returns no partial results.
func (p *Projector) ProjectMany(srcs ...any) ([]Projection, error) {
	out := make([]Projection, 0, len(srcs))
	for i, src := range srcs {
		proj, err := p.Project(src)
		if err != nil {
			return nil, fmt.Errorf("projx: item %d: %w", i, err)
		}
		out = append(out, proj)
	}
	return out, nil
}

// ProjectSource produces a Projection from the bound source object.
// It returns ErrNilSource when no source has been set.
func (p *Projector) ProjectSource() (Projection, error) {
	if p.source == nil {
		return nil, ErrNilSource
	}
	return p.Project(p.source)
}

// ProjectInto projects the bound source object and copies every key/value
// of the result into dst, overwriting colliding keys. Keys of dst that
// the projection did not produce are left untouched.
func (p *Projector) ProjectInto(dst Projection) error {
	if dst == nil {
		return ErrNilTarget
	}
	proj, err := p.ProjectSource()
	if err != nil {
		return err
	}
	for k, v := range proj {
		dst[k] = v
	}
	return nil
}

// exclusive implements IncludeNone: only explicitly included names are
// considered, in three passes (members, then properties, then fields),
// each overwriting earlier ones on output-key collision. Exclusion sets
// are not consulted. An included name that does not resolve is an error,
// never a silent skip.
func (p *Projector) exclusive(src any) (Projection, error) {
	out := Projection{}
	if len(p.incMembers)+len(p.incProps)+len(p.incFields) == 0 {
		return out, nil
	}

	props, fields, err := p.index(src)
	if err != nil {
		return nil, err
	}

	for name := range p.incMembers {
		m, ok := props[name]
		if !ok {
			m, ok = fields[name]
		}
		if !ok {
			return nil, fmt.Errorf("%w: member %q", ErrMemberNotFound, name)
		}
		p.emit(out, name, m)
	}
	for name := range p.incProps {
		m, ok := props[name]
		if !ok {
			return nil, fmt.Errorf("%w: property %q", ErrMemberNotFound, name)
		}
		p.emit(out, name, m)
	}
	for name := range p.incFields {
		m, ok := fields[name]
		if !ok {
			return nil, fmt.Errorf("%w: field %q", ErrMemberNotFound, name)
		}
		p.emit(out, name, m)
	}
	return out, nil
}

// inclusive implements IncludeAll: every readable member is a candidate
// unless its name appears in the exclusion set matching its kind or in
// the kind-agnostic member exclusion set. Inclusion sets are not
// consulted, and exclusions naming nonexistent members are no-ops.
// Members arrive properties-first from the enumerator, so a field wins a
// key collision with a property of the same name.
func (p *Projector) inclusive(src any) (Projection, error) {
	members, err := p.members(src)
	if err != nil {
		return nil, err
	}

	out := Projection{}
	for _, m := range members {
		if p.excMembers.has(m.Name) {
			continue
		}
		switch m.Kind {
		case apis.KindProperty:
			if p.excProps.has(m.Name) {
				continue
			}
		case apis.KindField:
			if p.excFields.has(m.Name) {
				continue
			}
		}
		p.emit(out, m.Name, m)
	}
	return out, nil
}

// emit copies one resolved member value into out, applying value
// substitution, the null policy, and the rename map.
func (p *Projector) emit(out Projection, name string, m apis.Member) {
	v := m.Get()
	if s, ok := v.(common.Valuer); ok {
		v = s.ProjectionValue()
	}
	if p.nulls == ExcludeNulls && uref.IsNil(v) {
		return
	}
	key := name
	if r, ok := p.renames[name]; ok {
		key = r
	}
	out[key] = v
}

// index enumerates src once and splits the members into by-name lookup
// tables per kind. The first occurrence of a name wins within a kind.
func (p *Projector) index(src any) (props, fields map[string]apis.Member, err error) {
	members, err := p.members(src)
	if err != nil {
		return nil, nil, err
	}
	props = make(map[string]apis.Member, len(members))
	fields = make(map[string]apis.Member, len(members))
	for _, m := range members {
		switch m.Kind {
		case apis.KindProperty:
			if _, ok := props[m.Name]; !ok {
				props[m.Name] = m
			}
		case apis.KindField:
			if _, ok := fields[m.Name]; !ok {
				fields[m.Name] = m
			}
		}
	}
	return props, fields, nil
}

// members enumerates src with the effective config and enumerator.
func (p *Projector) members(src any) ([]apis.Member, error) {
	cfg, enum := p.runtime()
	return enum.Members(src, cfg)
}

// runtime resolves the effective config and enumerator: per-projector
// overrides first, the global snapshot otherwise.
func (p *Projector) runtime() (apis.Config, apis.Enumerator) {
	s := st.Load()
	cfg, enum := s.cfg, s.enum
	if p.cfg != nil {
		cfg = *p.cfg
	}
	if p.enum != nil {
		enum = p.enum
	}
	return cfg, enum
}
