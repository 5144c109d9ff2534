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
	"dirpx.dev/projx/apis"
)

// NewSourceStrategy creates an apis.Strategy that uses apis.MemberSource.
func NewSourceStrategy() apis.Strategy {
	return &sourceStrategy{}
}

// sourceStrategy is a zero-cost fast path: if src implements
// apis.MemberSource, return its ProjectionMembers() and stop the chain.
type sourceStrategy struct{}

// Ensure sourceStrategy implements apis.Strategy.
var _ apis.Strategy = (*sourceStrategy)(nil)

// TryMembers checks if src implements apis.MemberSource and returns its
// ProjectionMembers().
func (*sourceStrategy) TryMembers(src any, _ apis.Config) ([]apis.Member, bool) {
	if src == nil {
		return nil, false
	}
	if s, ok := src.(apis.MemberSource); ok {
		return s.ProjectionMembers(), true
	}
	return nil, false
}
