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

// NewMapStrategy creates an apis.Strategy for string-keyed map sources.
func NewMapStrategy() apis.Strategy {
	return &mapStrategy{}
}

// mapStrategy treats any map with string keys (objx.Map, map[string]any,
// map[string]int, ...) as a source whose entries are field members. Maps
// have no accessor-backed state, so no property members are produced.
type mapStrategy struct{}

// Ensure mapStrategy implements apis.Strategy.
var _ apis.Strategy = (*mapStrategy)(nil)

// TryMembers enumerates the entries of a string-keyed map as field members.
func (*mapStrategy) TryMembers(src any, cfg apis.Config) ([]apis.Member, bool) {
	if src == nil {
		return nil, false
	}
	v, err := uref.Unwrap(reflect.ValueOf(src), cfg)
	if err != nil {
		return nil, false
	}
	if v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	members := make([]apis.Member, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		key := iter.Key()
		members = append(members, apis.Member{
			Name: key.String(),
			Kind: apis.KindField,
			// Get reads the entry at call time, not a snapshot taken at
			// enumeration. An entry deleted in between reads as nil.
			Get: func() any {
				e := v.MapIndex(key)
				if !e.IsValid() {
					return nil
				}
				return e.Interface()
			},
		})
	}
	return members, true
}
