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

package registry_test

import (
	"errors"
	"reflect"
	"testing"

	"dirpx.dev/projx/apis"
	"dirpx.dev/projx/config"
	"dirpx.dev/projx/registry"
)

type T1 struct {
	ID   int
	Name string
}

// specsT1 returns a fresh spec set for T1. Accessors assume a T1 value.
func specsT1() []apis.Spec {
	return []apis.Spec{
		{Name: "ID", Kind: apis.KindField, Get: func(src any) any { return src.(T1).ID }},
		{Name: "Name", Kind: apis.KindField, Get: func(src any) any { return src.(T1).Name }},
	}
}

func TestRegister_IdempotentAndLookup(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	// pointer -> base type = T1
	if err := reg.Register(reflect.TypeOf(&T1{}), specsT1()...); err != nil {
		t.Fatalf("Register(&T1{}): unexpected error: %v", err)
	}
	// idempotent re-register with the same signature
	if err := reg.Register(reflect.TypeOf(&T1{}), specsT1()...); err != nil {
		t.Fatalf("Register(&T1{}) idempotent: unexpected error: %v", err)
	}

	// lookup by exact type
	specs, ok := reg.Lookup(reflect.TypeOf(T1{}))
	if !ok || len(specs) != 2 {
		t.Fatalf("Lookup(T1{}): got (%d specs,%v), want (2,true)", len(specs), ok)
	}
	// lookup through pointer indirection should hit the same base
	if specs, ok := reg.Lookup(reflect.TypeOf(&T1{})); !ok || len(specs) != 2 {
		t.Fatalf("Lookup(&T1{}): got (%d specs,%v), want (2,true)", len(specs), ok)
	}

	// bound accessor reads the actual value
	v := specs[0].Get(T1{ID: 9})
	if v != 9 {
		t.Fatalf("spec accessor: got %v, want 9", v)
	}

	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}

func TestRegister_Conflict(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	if err := reg.Register(reflect.TypeOf(T1{}), specsT1()...); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	// Same base type, different member signature -> conflict
	err := reg.Register(reflect.TypeOf(&T1{}), apis.Spec{
		Name: "Other", Kind: apis.KindField, Get: func(any) any { return nil },
	})
	if !errors.Is(err, registry.ErrConflictingRegistration) {
		t.Fatalf("expected ErrConflictingRegistration, got: %v", err)
	}
}

func TestRegister_Errors(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)
	get := func(any) any { return nil }

	cases := []struct {
		name  string
		typ   reflect.Type
		specs []apis.Spec
		want  error
	}{
		{"nil type", nil, specsT1(), registry.ErrNilType},
		{"no specs", reflect.TypeOf(T1{}), nil, registry.ErrNoSpecs},
		{"empty name", reflect.TypeOf(T1{}), []apis.Spec{{Name: "", Kind: apis.KindField, Get: get}}, registry.ErrEmptySpecName},
		{"nil accessor", reflect.TypeOf(T1{}), []apis.Spec{{Name: "X", Kind: apis.KindField}}, registry.ErrNilAccessor},
		{"bad kind", reflect.TypeOf(T1{}), []apis.Spec{{Name: "X", Kind: apis.Kind(99), Get: get}}, registry.ErrBadSpecKind},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := reg.Register(tc.typ, tc.specs...); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLookup_OrdersPropertiesFirst(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)
	get := func(any) any { return nil }

	err := reg.Register(reflect.TypeOf(T1{}),
		apis.Spec{Name: "F1", Kind: apis.KindField, Get: get},
		apis.Spec{Name: "P1", Kind: apis.KindProperty, Get: get},
		apis.Spec{Name: "F2", Kind: apis.KindField, Get: get},
		apis.Spec{Name: "P2", Kind: apis.KindProperty, Get: get},
	)
	if err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}

	specs, ok := reg.Lookup(reflect.TypeOf(T1{}))
	if !ok {
		t.Fatal("Lookup: not found")
	}
	gotNames := make([]string, 0, len(specs))
	for _, s := range specs {
		gotNames = append(gotNames, s.Name)
	}
	wantNames := []string{"P1", "P2", "F1", "F2"}
	if !reflect.DeepEqual(gotNames, wantNames) {
		t.Fatalf("order: got %v, want %v", gotNames, wantNames)
	}
}

func TestEntriesAndReset(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	if err := reg.Register(reflect.TypeOf(T1{}), specsT1()...); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}

	entries := reg.Entries()
	if len(entries) != 1 {
		t.Fatalf("Entries: got %d, want 1", len(entries))
	}
	if entries[0].Type != reflect.TypeOf(T1{}) {
		t.Fatalf("Entries type: got %v, want %v", entries[0].Type, reflect.TypeOf(T1{}))
	}

	reg.Reset()
	if reg.Count() != 0 {
		t.Fatalf("Count after Reset: got %d, want 0", reg.Count())
	}
	if _, ok := reg.Lookup(reflect.TypeOf(T1{})); ok {
		t.Fatal("Lookup after Reset: unexpectedly found")
	}
}
