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

// Config carries read-only enumeration knobs that influence strategies.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// MaxUnwrap limits indirection unwrapping depth (ptr/interface).
	// Acts as a safety guard against pathological nesting.
	MaxUnwrap int

	// Properties controls whether exported zero-argument, single-result
	// methods are enumerated as property members. If false, only fields
	// (and registered or self-described members) are visible.
	Properties bool

	// Stringers controls whether the well-known formatting methods
	// (String, GoString, Error) are admitted as properties. They are
	// noise in most projections and hidden by default.
	Stringers bool
}
