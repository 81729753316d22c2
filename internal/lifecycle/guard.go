// Copyright 2026 The kpt Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lifecycle

import (
	"sync"
	"sync/atomic"
)

// Guard is a single-slot lock over user-initiated mutations. At most one
// transition may be in flight at a time; further attempts fail fast instead
// of queueing.
type Guard struct {
	busy atomic.Bool
}

// TryAcquire takes the slot if it is free. The returned release function is
// safe to call more than once; callers are expected to defer it so the slot
// is freed on every exit path.
func (g *Guard) TryAcquire() (release func(), ok bool) {
	if !g.busy.CompareAndSwap(false, true) {
		return nil, false
	}
	var once sync.Once
	return func() {
		once.Do(func() {
			g.busy.Store(false)
		})
	}, true
}

// InFlight reports whether a mutation currently holds the slot.
func (g *Guard) InFlight() bool {
	return g.busy.Load()
}
