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

package policy

import (
	"fmt"
	"strings"
)

// Include controls which members of a source object are candidates for a
// projection.
//
// # Overview
//
// Include is a small enumerated type that selects one of two projection
// algorithms. It does not carry the member names themselves; those live in
// a Projector's rule sets. Include only decides which of the two rule
// families is consulted.
//
// # Values
//
//   - None — exclusive projection: nothing is included unless named.
//   - All  — inclusive projection: everything is included unless excluded.
//
// # Contract
//
//   - Include values MUST be safe to use concurrently across goroutines
//     (they are plain integers).
//   - Under None, inclusion sets are the sole gate; exclusion sets MUST
//     NOT be consulted, and a named member that cannot be resolved MUST
//     surface as an error rather than be skipped.
//   - Under All, exclusion sets are the sole gate; inclusion sets MUST
//     NOT be consulted, and an exclusion naming a nonexistent member is
//     advisory and MUST be a silent no-op.
type Include int

const (
	// None selects the exclusive projection policy.
	//
	// # Semantics
	//
	// Under None, only explicitly included names are considered, in three
	// passes over the rule sets: kind-agnostic member names first, then
	// property-scoped names, then field-scoped names. Later passes
	// overwrite earlier ones on output-key collision.
	//
	// Recommended usage:
	//
	//   - Shaping an outward representation from a sensitive type, where
	//     an accidental extra member is worse than a missing one.
	//   - Small, stable views (identifiers plus a handful of values).
	//
	// None is the default policy of a fresh Projector.
	None Include = iota

	// All selects the inclusive projection policy.
	//
	// # Semantics
	//
	// Under All, every readable property and field of the source is a
	// candidate, and a member is dropped only when its name appears in
	// the exclusion set matching its kind or in the kind-agnostic member
	// exclusion set. Properties are processed before fields; on a key
	// collision the field wins.
	//
	// Recommended usage:
	//
	//   - Trimming a few members (secrets, internals) from an otherwise
	//     complete representation.
	//   - Objects whose member list evolves and should flow through
	//     without the projection rules needing updates.
	All
)

// String returns the lowercase name of the policy ("none", "all").
func (i Include) String() string {
	switch i {
	case None:
		return "none"
	case All:
		return "all"
	default:
		return fmt.Sprintf("include(%d)", int(i))
	}
}

// ParseInclude converts a case-insensitive policy name into an Include.
func ParseInclude(s string) (Include, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return None, nil
	case "all":
		return All, nil
	default:
		return None, fmt.Errorf("policy: unknown include policy %q", s)
	}
}

// Nulls controls how null member values are represented in a projection.
//
// # Overview
//
// A member value is null when it is an untyped nil or a nil value of a
// nilable kind (pointer, interface, map, slice, chan, func). Nulls decides
// whether such a value appears in the output mapping at all.
//
// # Values
//
//   - ExcludeNulls — a null member is skipped entirely; its key is absent.
//   - IncludeNulls — a null member appears with an explicit nil value.
//
// # Contract
//
//   - Nulls values MUST be safe to use concurrently across goroutines.
//   - Under ExcludeNulls, the output mapping MUST NOT contain the member's
//     key (absent key, not a key holding nil).
//   - The null check applies to the value actually projected: a value
//     that substitutes its own representation is checked after
//     substitution.
type Nulls int

const (
	// ExcludeNulls drops null member values from the projection.
	//
	// A downstream serializer then renders nothing for the member, which
	// keeps representations compact and makes "unset" indistinguishable
	// from "absent". ExcludeNulls is the default policy of a fresh
	// Projector.
	ExcludeNulls Nulls = iota

	// IncludeNulls keeps null member values in the projection.
	//
	// The member's key maps to an explicit nil, which downstream
	// serializers typically render as their null literal. Use when the
	// consumer needs to distinguish "set to null" from "not present".
	IncludeNulls
)

// String returns the lowercase name of the policy ("exclude", "include").
func (n Nulls) String() string {
	switch n {
	case ExcludeNulls:
		return "exclude"
	case IncludeNulls:
		return "include"
	default:
		return fmt.Sprintf("nulls(%d)", int(n))
	}
}

// ParseNulls converts a case-insensitive policy name into a Nulls.
func ParseNulls(s string) (Nulls, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exclude":
		return ExcludeNulls, nil
	case "include":
		return IncludeNulls, nil
	default:
		return ExcludeNulls, fmt.Errorf("policy: unknown null policy %q", s)
	}
}
