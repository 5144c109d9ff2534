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

// Package projx shapes objects into flat key/value mappings before
// serialization.
//
// projx selects a subset of a source object's readable members by name
// and copies their values into a fresh Projection (an objx.Map),
// optionally renaming keys and suppressing null values. Its purpose is to
// trim sensitive or unnecessary members from a representation before it
// crosses a boundary, without a proliferation of purpose-built view
// types. projx never serializes: the Projection is handed to whatever
// formatter the caller uses.
//
// # Design
//
// The core is the Projector, a small rule holder with two projection
// algorithms:
//
//   - Exclusive (IncludeNone, default): nothing is projected unless its
//     name was registered via IncludeMember/IncludeProperty/IncludeField.
//     Resolution runs in three passes (kind-agnostic members, then
//     property-scoped names, then field-scoped names), later passes
//     overwriting earlier ones on output-key collision. A registered name
//     that does not resolve on the source surfaces as ErrMemberNotFound —
//     a typo'd include is a correctness failure, never a silent skip.
//
//   - Inclusive (IncludeAll): every readable property and field is
//     projected unless its name appears in the kind-matching exclusion
//     set or the kind-agnostic member exclusion set. Exclusions are
//     advisory; naming a nonexistent member is a no-op.
//
// Null handling is orthogonal: with ExcludeNulls (default) a null member
// value is skipped entirely (key absent); with IncludeNulls it appears
// with an explicit nil. Renames registered via RenameAs/IncludeAs apply
// regardless of which rule family included the member.
//
// "Member" means a property or a field without regard to which. A field
// is plain data: an exported struct field, a string-keyed map entry, or a
// registered field spec. A property is accessor-backed: an exported
// zero-argument, single-result method, or a registered property spec.
//
// # Member enumeration
//
// The Projector itself contains no type-specific code. Enumeration is
// delegated to an apis.Enumerator, typically a chain of strategies tried
// in priority order:
//
//  1. If the source implements apis.MemberSource, use its
//     ProjectionMembers().
//  2. If the source's type is found in the Registry, use its registered
//     accessor specs.
//  3. If the source is a string-keyed map, its entries are field members.
//  4. Otherwise, fall back to a reflect-based strategy that reads
//     exported struct fields and getter methods, memoized per type.
//
// The package holds a global, read-mostly snapshot of (Config, Registry,
// Enumerator, Builder) behind an atomic pointer: readers load the
// snapshot lock-free,
// writers build a brand-new snapshot under a short build mutex and swap
// it in. SetRegistry/SetEnumerator pin their layer against automatic
// rebuilds until unpinned; SetAll is the hard-reset API used by tests.
// Projectors read the snapshot at projection time unless constructed with
// WithEnumerator/WithConfig overrides.
//
// # Usage
//
//	user := User{ID: 7, Email: "x@example.com", Salt: secret}
//
//	// Static form: exclusive projection of named members.
//	m, err := projx.Project(user, "ID", "Email")
//
//	// Configured form: trim members from a full representation.
//	p := projx.New().
//		SetIncludeBehavior(projx.IncludeAll).
//		ExcludeMember("Salt").
//		RenameAs("ID", "id")
//	m, err = p.Project(user)
//
//	// Reuse one rule set across many objects.
//	ms, err := p.ProjectMany(u1, u2, u3)
//
// # Concurrency model
//
// A Projector is mutable state: callers serialize rule registration
// externally. Project/ProjectMany perform no mutation and are safe to
// call concurrently against a stable rule set. The global snapshot reads
// (Project, Members, Registry, Enumerator) are wait-free; global writers
// (SetConfig, SetRegistry, ...) take the build mutex and publish whole
// snapshots.
//
// # Scope
//
// projx is intentionally small. It does not serialize to a wire format,
// does not validate types, does not deep-copy nested structures, and does
// not invoke behavior beyond reading passive members. Everything past the
// Projection belongs to higher layers.
package projx
