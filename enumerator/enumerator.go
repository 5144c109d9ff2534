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

package enumerator

import (
	"errors"

	"dirpx.dev/projx/apis"
)

// ErrUnsupportedSource is returned when no strategy can enumerate the
// members of a source object.
var ErrUnsupportedSource = errors.New("projx(enumerator): no strategy handled source")

// New constructs an apis.Enumerator that tries the given strategies in order.
// Nil strategies are ignored. The returned enumerator is safe for concurrent
// use provided strategies themselves are safe for concurrent TryMembers calls.
func New(strategies ...apis.Strategy) apis.Enumerator {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// chain is an immutable, order-preserving enumerator over a set of strategies.
type chain struct {
	strats []apis.Strategy
}

// Members runs strategies in order until one handles the source.
// Returns ErrUnsupportedSource if no strategy produced a member list.
func (c chain) Members(src any, cfg apis.Config) ([]apis.Member, error) {
	for _, s := range c.strats {
		if members, ok := s.TryMembers(src, cfg); ok {
			return members, nil
		}
	}
	return nil, ErrUnsupportedSource
}
