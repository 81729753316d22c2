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
	"time"

	"github.com/jonboulle/clockwork"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/klog/v2"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

const (
	// initialPollDelay is used until the reconciler reports status for the
	// first time, so freshly created syncs surface feedback quickly.
	initialPollDelay = 1 * time.Second
	// steadyPollDelay is used once the sync has reported status.
	steadyPollDelay = 5 * time.Second
)

// NextDelay returns how long to wait before the next poll of the given
// observation. A nil or status-less resource is polled at the short initial
// cadence.
func NextDelay(rs *unstructured.Unstructured) time.Duration {
	if !HasReportedStatus(rs) {
		return initialPollDelay
	}
	return steadyPollDelay
}

// Poller periodically fetches one RootSync and reports each observation
// through OnUpdate. At most one RootSync is tracked at a time; retargeting
// cancels the pending wait and polls the new target immediately.
type Poller struct {
	// OnUpdate receives every successful observation. It is called from the
	// polling goroutine.
	OnUpdate func(rs *unstructured.Unstructured)

	client   client.Client
	clock    clockwork.Clock
	retarget chan string
}

// NewPoller returns a poller with no target. A nil clock selects the real
// clock.
func NewPoller(c client.Client, clock clockwork.Clock) *Poller {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Poller{
		client:   c,
		clock:    clock,
		retarget: make(chan string, 1),
	}
}

// SetTarget replaces the RootSync the poller tracks. An empty name pauses
// polling until the next SetTarget.
func (p *Poller) SetTarget(name string) {
	for {
		select {
		case p.retarget <- name:
			return
		case <-p.retarget:
			// Drop the stale, undelivered target.
		}
	}
}

// Run polls the current target until the context is cancelled. It never
// returns an error; fetch failures are logged and retried on the next tick.
func (p *Poller) Run(ctx context.Context) {
	var target string
	for {
		if target == "" {
			select {
			case <-ctx.Done():
				return
			case target = <-p.retarget:
				continue
			}
		}

		rs := p.poll(ctx, target)
		select {
		case <-ctx.Done():
			return
		case target = <-p.retarget:
		case <-p.clock.After(NextDelay(rs)):
		}
	}
}

func (p *Poller) poll(ctx context.Context, name string) *unstructured.Unstructured {
	rs := &unstructured.Unstructured{}
	rs.SetGroupVersionKind(GVK())
	key := client.ObjectKey{Namespace: Namespace, Name: name}
	if err := p.client.Get(ctx, key, rs); err != nil {
		klog.Warningf("polling RootSync %s: %v", name, err)
		return nil
	}
	if p.OnUpdate != nil {
		p.OnUpdate(rs)
	}
	return rs
}
