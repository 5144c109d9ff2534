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
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/projx/apis"
)

// TestReflectStrategy_ConcurrentEnumeration hammers the layout cache from
// many goroutines with differing config knobs and verifies stable results.
func TestReflectStrategy_ConcurrentEnumeration(t *testing.T) {
	s := NewReflectStrategy()

	configs := []apis.Config{
		cfg(),
		cfg(func(c *apis.Config) { c.Stringers = true }),
		cfg(func(c *apis.Config) { c.Properties = false }),
	}
	wantProps := []int{1, 2, 0}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				j := (i + id) % len(configs)
				members, ok := s.TryMembers(acct{ID: i}, configs[j])
				if !ok {
					t.Errorf("TryMembers not handled")
					return
				}
				props := 0
				for _, m := range members {
					if m.Kind == apis.KindProperty {
						props++
					}
				}
				if props != wantProps[j] {
					t.Errorf("cfg %d: got %d properties, want %d", j, props, wantProps[j])
					return
				}
			}
		}(w)
	}

	wg.Wait()
}
