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

package policy_test

import (
	"testing"

	"dirpx.dev/projx/pxapi/policy"
)

func TestIncludeString(t *testing.T) {
	cases := []struct {
		in   policy.Include
		want string
	}{
		{policy.None, "none"},
		{policy.All, "all"},
		{policy.Include(99), "include(99)"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Fatalf("String: got %q, want %q", got, tc.want)
		}
	}
}

func TestParseInclude(t *testing.T) {
	cases := []struct {
		in      string
		want    policy.Include
		wantErr bool
	}{
		{"none", policy.None, false},
		{"all", policy.All, false},
		{"  All ", policy.All, false},
		{"NONE", policy.None, false},
		{"everything", policy.None, true},
		{"", policy.None, true},
	}
	for _, tc := range cases {
		got, err := policy.ParseInclude(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseInclude(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseInclude(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseInclude(%q): got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNullsString(t *testing.T) {
	cases := []struct {
		in   policy.Nulls
		want string
	}{
		{policy.ExcludeNulls, "exclude"},
		{policy.IncludeNulls, "include"},
		{policy.Nulls(7), "nulls(7)"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Fatalf("String: got %q, want %q", got, tc.want)
		}
	}
}

func TestParseNulls(t *testing.T) {
	cases := []struct {
		in      string
		want    policy.Nulls
		wantErr bool
	}{
		{"exclude", policy.ExcludeNulls, false},
		{"include", policy.IncludeNulls, false},
		{" Exclude ", policy.ExcludeNulls, false},
		{"keep", policy.ExcludeNulls, true},
	}
	for _, tc := range cases {
		got, err := policy.ParseNulls(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseNulls(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseNulls(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseNulls(%q): got %v, want %v", tc.in, got, tc.want)
		}
	}
}
