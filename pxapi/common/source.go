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

package common

import "dirpx.dev/projx/apis"

// MemberSource lets a source object describe its own readable members.
//
// # Overview
//
// MemberSource is the primary, zero-reflection fast path for member
// enumeration inside the projx projection subsystem. When a source object
// implements MemberSource, the enumeration logic MUST prefer this interface
// and MUST NOT attempt any additional strategies (registry lookups, map
// traversal, or reflection) for that object.
//
// This is useful when:
//
//   - The natural member list differs from the Go type's shape (for
//     example, a wrapper that flattens nested state into top-level names).
//   - Reflection cost matters on a hot path and the member list is known
//     statically.
//   - The object is backed by something that is not a struct or a map at
//     all (a row, a record, a foreign handle).
//
// # Contract
//
//   - ProjectionMembers MUST list property members before field members;
//     inclusive-mode collision resolution relies on that order.
//   - Each returned apis.Member MUST carry a non-empty Name, a valid Kind,
//     and a non-nil Get.
//   - ProjectionMembers MUST be safe for concurrent calls from multiple
//     goroutines.
//   - ProjectionMembers SHOULD be cheap; enumeration happens once per
//     projection. Member Get closures MAY defer the actual read until
//     called.
//   - ProjectionMembers MUST NOT perform blocking operations or I/O.
//
// # Usage
//
//	type Account struct {
//	    id    string
//	    email string
//	}
//
//	func (a *Account) ProjectionMembers() []apis.Member {
//	    return []apis.Member{
//	        {Name: "Id", Kind: apis.KindField, Get: func() any { return a.id }},
//	        {Name: "Email", Kind: apis.KindField, Get: func() any { return a.email }},
//	    }
//	}
//
// Note that MemberSource can expose unexported state on purpose: the
// implementer, not the reflection layer, decides what is readable.
type MemberSource = apis.MemberSource

// MemberSourceFunc adapts a plain function to the MemberSource interface.
//
// # Overview
//
// MemberSourceFunc is a convenience adapter that allows standalone
// functions with signature `func() []apis.Member` to satisfy MemberSource.
// This is useful when enumeration behavior is naturally expressed as a
// function, or when it must be passed around as a dependency, rather than
// implemented as a method on the source type itself.
//
// # Contract
//
// All contractual requirements of MemberSource apply to the wrapped
// function: properties before fields, valid members, concurrency safety,
// and no blocking work.
type MemberSourceFunc func() []apis.Member

// ProjectionMembers implements MemberSource for MemberSourceFunc.
//
// Calling ProjectionMembers on a MemberSourceFunc is equivalent to
// invoking the underlying function value directly.
func (f MemberSourceFunc) ProjectionMembers() []apis.Member {
	return f()
}
