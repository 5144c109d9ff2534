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

// Kind distinguishes the two families of readable members.
type Kind uint8

const (
	// KindProperty marks an accessor-backed member (a getter method,
	// a registered property spec, or a self-described property).
	KindProperty Kind = iota + 1
	// KindField marks a plain data member (a struct field, a map entry,
	// a registered field spec, or a self-described field).
	KindField
)

// String returns "property", "field", or "unknown".
func (k Kind) String() string {
	switch k {
	case KindProperty:
		return "property"
	case KindField:
		return "field"
	default:
		return "unknown"
	}
}

// Member is one readable named member of a source object.
//
// Get reads the current value of the member. It is a closure over the
// source the member was enumerated from; enumeration itself never reads
// values. Get does not recover from panics: a property accessor that
// panics (e.g. a getter dereferencing a nil receiver) propagates to the
// caller.
type Member struct {
	// Name is the member name as exposed by the source.
	Name string
	// Kind reports whether the member is property-like or field-like.
	Kind Kind
	// Get reads the member value.
	Get func() any
}

// MemberSource is the zero-reflection fast path for member enumeration.
//
// When a source object implements MemberSource, enumeration MUST use the
// returned slice and MUST NOT attempt any further strategies (registry
// lookup, map traversal, or reflection) for that object.
//
// Implementations must list property members before field members; the
// relative order inside each family is up to the implementation.
//
// The canonical, heavily documented form of this contract lives in
// pxapi/common.
type MemberSource interface {
	// ProjectionMembers returns all readable members of the receiver,
	// properties first, then fields.
	ProjectionMembers() []Member
}
