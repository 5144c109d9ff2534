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

	"dirpx.dev/projx/apis"
	"dirpx.dev/projx/pxapi/common"
	"dirpx.dev/projx/strategy"
)

type selfDescribed struct{ id string }

func (s selfDescribed) ProjectionMembers() []apis.Member {
	return []apis.Member{
		{Name: "Id", Kind: apis.KindField, Get: func() any { return s.id }},
	}
}

// Ensure the local type actually satisfies apis.MemberSource (compile-time).
var _ apis.MemberSource = (*selfDescribed)(nil)

func TestSourceStrategy_TryMembers(t *testing.T) {
	s := strategy.NewSourceStrategy()
	conf := apis.Config{} // config is irrelevant for SourceStrategy

	// With value implementing apis.MemberSource -> handled = true
	members, ok := s.TryMembers(selfDescribed{id: "u-1"}, conf)
	if !ok || len(members) != 1 {
		t.Fatalf("TryMembers: got (%d members,%v), want (1,true)", len(members), ok)
	}
	if members[0].Name != "Id" || members[0].Get() != "u-1" {
		t.Fatalf("member: got (%q,%v), want (Id,u-1)", members[0].Name, members[0].Get())
	}

	// With non-source value -> handled = false
	if members, ok := s.TryMembers(struct{}{}, conf); ok || members != nil {
		t.Fatalf("TryMembers(non-source): got (%v,%v), want (nil,false)", members, ok)
	}

	// nil is never handled
	if _, ok := s.TryMembers(nil, conf); ok {
		t.Fatal("TryMembers(nil): expected ok=false")
	}
}

func TestSourceStrategy_MemberSourceFunc(t *testing.T) {
	src := common.MemberSourceFunc(func() []apis.Member {
		return []apis.Member{
			{Name: "N", Kind: apis.KindField, Get: func() any { return 3 }},
		}
	})

	members, ok := strategy.NewSourceStrategy().TryMembers(src, apis.Config{})
	if !ok || len(members) != 1 {
		t.Fatalf("TryMembers: got (%d members,%v), want (1,true)", len(members), ok)
	}
	if members[0].Name != "N" || members[0].Get() != 3 {
		t.Fatalf("member: got (%q,%v), want (N,3)", members[0].Name, members[0].Get())
	}
}
