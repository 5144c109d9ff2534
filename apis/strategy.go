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

// Strategy is a pluggable enumeration step. An Enumerator can chain
// multiple strategies in order (e.g., Source -> Registry -> Map -> Reflect).
type Strategy interface {
	// TryMembers attempts to enumerate the readable members of src
	// according to cfg. It returns (members, true) if handled; otherwise
	// (nil, false) to fall through to the next strategy. A handling
	// strategy must list property members before field members.
	TryMembers(src any, cfg Config) (members []Member, handled bool)
}
