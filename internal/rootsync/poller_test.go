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

package rootsync

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
)

func TestNextDelay(t *testing.T) {
	assert.Equal(t, time.Second, NextDelay(nil))

	fresh := New(deploymentRepo(""), publishedRevision(), "")
	assert.Equal(t, time.Second, NextDelay(fresh))

	assert.Equal(t, 5*time.Second, NextDelay(reportedSync(t, 1, 1)))
}

func TestPollerCadence(t *testing.T) {
	rs := New(deploymentRepo(""), publishedRevision(), "")
	c := fake.NewClientBuilder().
		WithScheme(testScheme(t)).
		WithObjects(rs).
		Build()

	clock := clockwork.NewFakeClock()
	p := NewPoller(c, clock)
	updates := make(chan *unstructured.Unstructured, 8)
	p.OnUpdate = func(rs *unstructured.Unstructured) {
		updates <- rs.DeepCopy()
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Run(ctx)
	}()

	p.SetTarget(rs.GetName())
	first := <-updates
	assert.False(t, HasReportedStatus(first))
	assert.Equal(t, time.Second, NextDelay(first))

	// The reconciler reports status before the next tick.
	synced := first.DeepCopy()
	require.NoError(t, unstructured.SetNestedField(synced.Object, int64(1), "status", "observedGeneration"))
	require.NoError(t, c.Update(ctx, synced))

	clock.BlockUntil(1)
	clock.Advance(time.Second)
	second := <-updates
	assert.True(t, HasReportedStatus(second))
	assert.Equal(t, 5*time.Second, NextDelay(second))

	clock.BlockUntil(1)
	clock.Advance(5 * time.Second)
	<-updates

	cancel()
	<-done
}

func TestPollerRetarget(t *testing.T) {
	first := New(deploymentRepo(""), publishedRevision(), "")
	second := New(deploymentRepo(""), publishedRevision(), "")
	second.SetName("another-package-v2")

	c := fake.NewClientBuilder().
		WithScheme(testScheme(t)).
		WithObjects(first, second).
		Build()

	clock := clockwork.NewFakeClock()
	p := NewPoller(c, clock)
	updates := make(chan *unstructured.Unstructured, 8)
	p.OnUpdate = func(rs *unstructured.Unstructured) {
		updates <- rs.DeepCopy()
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Run(ctx)
	}()

	p.SetTarget(first.GetName())
	got := <-updates
	assert.Equal(t, first.GetName(), got.GetName())

	// Retargeting must cancel the pending wait, not stack a second loop.
	clock.BlockUntil(1)
	p.SetTarget(second.GetName())
	got = <-updates
	assert.Equal(t, second.GetName(), got.GetName())

	cancel()
	<-done
}

func TestSetTargetReplacesPendingTarget(t *testing.T) {
	p := NewPoller(nil, clockwork.NewFakeClock())
	p.SetTarget("first")
	p.SetTarget("second")

	assert.Equal(t, "second", <-p.retarget)
}
