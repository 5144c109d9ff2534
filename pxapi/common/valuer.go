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

// Valuer is a member value that prefers to create its own projected
// representation when it is copied into a Projection.
//
// # Overview
//
// When a projected member's value implements Valuer, the projection logic
// replaces the raw value with the result of ProjectionValue before writing
// it into the output mapping. This is particularly useful for compressing
// a large type to something much smaller when it appears as a piece of a
// larger representation:
//
//   - A heavyweight aggregate that should appear as its identifier only.
//   - A credential or token type that must never leave the process whole.
//   - A time or quantity type that has one canonical external shape.
//
// The substitution happens per value, after member resolution and before
// the null policy is applied: a Valuer returning nil is subject to the
// projector's null handling like any other null value.
//
// # Contract
//
//   - ProjectionValue MUST be safe for concurrent calls from multiple
//     goroutines.
//   - ProjectionValue MUST NOT perform blocking operations or I/O.
//   - ProjectionValue SHOULD be deterministic for a given receiver state;
//     the projection of an unchanged source is expected to be repeatable.
//   - The returned value MAY be nil, a primitive, or any structured value
//     the downstream serializer understands. It MUST NOT be (or contain)
//     the receiver itself, or substitution would not terminate downstream.
//
// # Usage
//
//	type Password string
//
//	func (Password) ProjectionValue() any { return "********" }
//
// A struct holding a Password field can then be projected freely without
// the secret ever entering a Projection.
type Valuer interface {
	// ProjectionValue returns the value that will represent the receiver
	// in a Projection.
	ProjectionValue() any
}
