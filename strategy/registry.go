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

package strategy

import (
	"reflect"

	"dirpx.dev/projx/apis"
	uref "dirpx.dev/projx/utils/reflect"
)

// NewRegistryStrategy creates an apis.Strategy that uses an apis.Registry.
func NewRegistryStrategy(reg apis.Registry) apis.Strategy {
	return &registryStrategy{reg: reg}
}

// registryStrategy consults a provided apis.Registry (reflection-free
// member listing for explicitly registered types).
type registryStrategy struct {
	reg apis.Registry
}

// Ensure registryStrategy implements apis.Strategy.
var _ apis.Strategy = (*registryStrategy)(nil)

// TryMembers looks up src's type in the registry and binds its specs to src.
// The source is unwrapped to its base value first: registration keys on the
// base type, and accessors are written against it, so a pointer source is
// dereferenced before binding.
func (s *registryStrategy) TryMembers(src any, cfg apis.Config) ([]apis.Member, bool) {
	if src == nil || s.reg == nil {
		return nil, false
	}
	v, err := uref.Unwrap(reflect.ValueOf(src), cfg)
	if err != nil {
		return nil, false
	}
	specs, ok := s.reg.Lookup(v.Type())
	if !ok {
		return nil, false
	}
	bound := v.Interface()

	// Registry specs are stored properties-first; binding preserves order.
	members := make([]apis.Member, 0, len(specs))
	for _, sp := range specs {
		get := sp.Get
		members = append(members, apis.Member{
			Name: sp.Name,
			Kind: sp.Kind,
			Get:  func() any { return get(bound) },
		})
	}
	return members, true
}
