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

// Enumerator coordinates strategies to enumerate the readable members of
// a source object. Typical chain:
// SourceStrategy -> RegistryStrategy -> MapStrategy -> ReflectStrategy.
type Enumerator interface {
	// Members returns every readable, accessible member of src,
	// properties first, then fields. Only publicly gettable members
	// are candidates; write-only or unexported state never appears.
	// Enumeration is read-only: member values are not touched until a
	// Member's Get is called.
	Members(src any, cfg Config) ([]Member, error)
}
