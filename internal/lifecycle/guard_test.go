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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardSingleSlot(t *testing.T) {
	var g Guard

	release, ok := g.TryAcquire()
	require.True(t, ok)
	assert.True(t, g.InFlight())

	_, ok = g.TryAcquire()
	assert.False(t, ok, "second acquire must fail while the slot is held")

	release()
	assert.False(t, g.InFlight())

	release2, ok := g.TryAcquire()
	require.True(t, ok, "slot must be reusable after release")
	release2()
}

func TestGuardReleaseIdempotent(t *testing.T) {
	var g Guard

	release, ok := g.TryAcquire()
	require.True(t, ok)
	release()
	release() // must not free someone else's slot

	release2, ok := g.TryAcquire()
	require.True(t, ok)
	assert.True(t, g.InFlight())

	release() // stale release from the first acquisition
	assert.True(t, g.InFlight(), "stale release must not unlock the current holder")
	release2()
}

func TestGuardConcurrentAcquire(t *testing.T) {
	var g Guard

	const attempts = 64
	var wg sync.WaitGroup
	acquired := make(chan func(), attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if release, ok := g.TryAcquire(); ok {
				acquired <- release
			}
		}()
	}
	wg.Wait()
	close(acquired)

	var releases []func()
	for release := range acquired {
		releases = append(releases, release)
	}
	require.Len(t, releases, 1, "exactly one concurrent acquire may win")
	releases[0]()
	assert.False(t, g.InFlight())
}
