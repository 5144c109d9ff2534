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
	"sync"

	"dirpx.dev/projx/apis"
	uref "dirpx.dev/projx/utils/reflect"
)

// NewReflectStrategy creates an apis.Strategy that enumerates struct
// members via reflection with per-type memoization.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal fallback for struct sources. Exported
// fields become field members; exported zero-argument, single-result
// methods become property members (subject to Config.Properties and
// Config.Stringers). It unwraps pointer/interface indirection via Unwrap
// and memoizes the per-type member layout.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// cacheKey ensures memoization respects all config knobs that affect enumeration.
type cacheKey struct {
	t          reflect.Type
	properties bool
	stringers  bool
}

// layoutCache caches member layouts by (receiver type, config knobs).
var layoutCache sync.Map // key: cacheKey, val: *layout

// layout is the precomputed member shape of one receiver type.
type layout struct {
	// props lists getter methods by method index on the receiver type.
	props []entry
	// fields lists exported fields by field index on the struct type.
	fields []entry
}

// entry pairs a member name with its reflect index.
type entry struct {
	name string
	idx  int
}

// formatting methods are hidden from property enumeration unless
// Config.Stringers admits them.
var stringerNames = map[string]struct{}{
	"String":   {},
	"GoString": {},
	"Error":    {},
}

// TryMembers enumerates the readable members of a struct source.
func (reflectStrategy) TryMembers(src any, cfg apis.Config) ([]apis.Member, bool) {
	if src == nil {
		return nil, false
	}
	v, err := uref.Unwrap(reflect.ValueOf(src), cfg)
	if err != nil || v.Kind() != reflect.Struct {
		return nil, false
	}

	// Method lookup happens on the pointer type when the struct is
	// addressable (source was a pointer), so pointer-receiver getters
	// stay visible.
	recv := v
	if v.CanAddr() {
		recv = v.Addr()
	}

	l := layoutFor(recv.Type(), v.Type(), cfg)

	members := make([]apis.Member, 0, len(l.props)+len(l.fields))
	for _, e := range l.props {
		m := recv.Method(e.idx)
		members = append(members, apis.Member{
			Name: e.name,
			Kind: apis.KindProperty,
			Get:  func() any { return m.Call(nil)[0].Interface() },
		})
	}
	for _, e := range l.fields {
		f := v.Field(e.idx)
		members = append(members, apis.Member{
			Name: e.name,
			Kind: apis.KindField,
			Get:  func() any { return f.Interface() },
		})
	}
	return members, true
}

// layoutFor computes (or recalls) the member layout for a receiver type.
// rt is the type methods are looked up on (possibly a pointer type);
// st is the underlying struct type fields are read from.
func layoutFor(rt, st reflect.Type, cfg apis.Config) *layout {
	key := cacheKey{
		t:          rt,
		properties: cfg.Properties,
		stringers:  cfg.Stringers,
	}
	if v, ok := layoutCache.Load(key); ok {
		return v.(*layout)
	}

	l := &layout{}
	if cfg.Properties {
		for i := 0; i < rt.NumMethod(); i++ {
			m := rt.Method(i)
			// Getter shape: receiver only in, exactly one result out.
			if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
				continue
			}
			if _, hidden := stringerNames[m.Name]; hidden && !cfg.Stringers {
				continue
			}
			l.props = append(l.props, entry{name: m.Name, idx: i})
		}
	}
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if !f.IsExported() {
			continue
		}
		l.fields = append(l.fields, entry{name: f.Name, idx: i})
	}

	layoutCache.Store(key, l)
	return l
}
