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

package strategy_test

import (
	"testing"

	"github.com/stretchr/objx"

	"dirpx.dev/projx/apis"
	"dirpx.dev/projx/config"
	"dirpx.dev/projx/strategy"
)

func TestMapStrategy_TryMembers(t *testing.T) {
	s := strategy.NewMapStrategy()
	conf := config.DefaultConfig()

	cases := []struct {
		name    string
		val     any
		handled bool
		want    map[string]any
	}{
		{"map[string]any", map[string]any{"a": 1, "b": "x"}, true, map[string]any{"a": 1, "b": "x"}},
		{"map[string]int", map[string]int{"n": 3}, true, map[string]any{"n": 3}},
		{"objx.Map", objx.Map{"k": true}, true, map[string]any{"k": true}},
		{"ptr to map", &map[string]int{"p": 1}, true, map[string]any{"p": 1}},
		{"empty map", map[string]any{}, true, map[string]any{}},
		{"non-string keys", map[int]string{1: "x"}, false, nil},
		{"struct", struct{ A int }{}, false, nil},
		{"nil", nil, false, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			members, ok := s.TryMembers(tc.val, conf)
			if ok != tc.handled {
				t.Fatalf("handled: got %v, want %v", ok, tc.handled)
			}
			if !tc.handled {
				return
			}
			if len(members) != len(tc.want) {
				t.Fatalf("members: got %d, want %d", len(members), len(tc.want))
			}
			for _, m := range members {
				if m.Kind != apis.KindField {
					t.Fatalf("member %q kind = %v, want field", m.Name, m.Kind)
				}
				want, ok := tc.want[m.Name]
				if !ok {
					t.Fatalf("unexpected member %q", m.Name)
				}
				if got := m.Get(); got != want {
					t.Fatalf("member %q value: got %v, want %v", m.Name, got, want)
				}
			}
		})
	}
}

// Get reads the entry at call time, so a mutation between enumeration and
// the read is observed, and a deleted entry reads as nil.
func TestMapStrategy_GetReadsCurrentValue(t *testing.T) {
	s := strategy.NewMapStrategy()
	src := map[string]int{"a": 1, "b": 2}

	members, ok := s.TryMembers(src, config.DefaultConfig())
	if !ok || len(members) != 2 {
		t.Fatalf("TryMembers: got (%d members,%v), want (2,true)", len(members), ok)
	}

	src["a"] = 10
	delete(src, "b")

	for _, m := range members {
		got := m.Get()
		switch m.Name {
		case "a":
			if got != 10 {
				t.Fatalf("member a: got %v, want 10", got)
			}
		case "b":
			if got != nil {
				t.Fatalf("member b: got %v, want nil after delete", got)
			}
		default:
			t.Fatalf("unexpected member %q", m.Name)
		}
	}
}
