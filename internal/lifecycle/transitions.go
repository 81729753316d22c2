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
	"context"
	"fmt"

	porchapi "github.com/kptdev/pkgsync/api/porch/v1alpha1"
	"github.com/kptdev/pkgsync/internal/errors"
	"github.com/kptdev/pkgsync/internal/util/porch"
	"k8s.io/client-go/rest"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// ErrTransitionInFlight is returned when a transition is attempted while
// another one holds the guard.
var ErrTransitionInFlight = fmt.Errorf("another request is already in flight")

// WithLifecycle returns a deep copy of the revision with only the lifecycle
// changed. The input is never mutated.
func WithLifecycle(pr *porchapi.PackageRevision, lifecycle porchapi.PackageRevisionLifecycle) *porchapi.PackageRevision {
	updated := pr.DeepCopy()
	updated.Spec.Lifecycle = lifecycle
	return updated
}

// Transitioner executes lifecycle transitions against the Porch apiserver.
// Every transition is a whole-resource replace of the last known good copy
// with only the lifecycle changed; the caller's copy is left untouched
// unless the server accepted the update.
type Transitioner struct {
	Client client.Client
	// Rest reaches the approval subresource, which the typed client cannot.
	Rest rest.Interface

	guard Guard
}

// InFlight reports whether a transition is currently outstanding.
func (t *Transitioner) InFlight() bool {
	return t.guard.InFlight()
}

// Acquire claims the transitioner's single request slot for a mutation that
// is not a lifecycle transition, such as sync creation. The same slot backs
// all mutations so at most one request is ever outstanding.
func (t *Transitioner) Acquire() (release func(), ok bool) {
	return t.guard.TryAcquire()
}

// Propose moves a Draft revision to Proposed.
func (t *Transitioner) Propose(ctx context.Context, pr *porchapi.PackageRevision) (*porchapi.PackageRevision, error) {
	const op errors.Op = "lifecycle.propose"

	if pr.Spec.Lifecycle != porchapi.PackageRevisionLifecycleDraft {
		return nil, errors.E(op, errors.Pkg(pr.Name), fmt.Errorf("cannot propose %s package", pr.Spec.Lifecycle))
	}
	return t.replace(ctx, op, pr, porchapi.PackageRevisionLifecycleProposed)
}

// MoveToDraft moves a Proposed revision back to Draft.
func (t *Transitioner) MoveToDraft(ctx context.Context, pr *porchapi.PackageRevision) (*porchapi.PackageRevision, error) {
	const op errors.Op = "lifecycle.moveToDraft"

	if pr.Spec.Lifecycle != porchapi.PackageRevisionLifecycleProposed {
		return nil, errors.E(op, errors.Pkg(pr.Name), fmt.Errorf("cannot move %s package to draft", pr.Spec.Lifecycle))
	}
	return t.replace(ctx, op, pr, porchapi.PackageRevisionLifecycleDraft)
}

// Approve publishes a Proposed revision via the approval subresource and
// returns the server's copy of the published revision.
func (t *Transitioner) Approve(ctx context.Context, pr *porchapi.PackageRevision) (*porchapi.PackageRevision, error) {
	const op errors.Op = "lifecycle.approve"

	release, ok := t.guard.TryAcquire()
	if !ok {
		return nil, errors.E(op, errors.Pkg(pr.Name), errors.Conflict, ErrTransitionInFlight)
	}
	defer release()

	key := client.ObjectKey{Namespace: pr.Namespace, Name: pr.Name}
	if err := porch.UpdatePackageRevisionApproval(ctx, t.Rest, key, porchapi.PackageRevisionLifecyclePublished); err != nil {
		return nil, errors.E(op, errors.Pkg(pr.Name), err)
	}

	updated := &porchapi.PackageRevision{}
	if err := t.Client.Get(ctx, key, updated); err != nil {
		return nil, errors.E(op, errors.Pkg(pr.Name), err)
	}
	return updated, nil
}

func (t *Transitioner) replace(ctx context.Context, op errors.Op, pr *porchapi.PackageRevision, lifecycle porchapi.PackageRevisionLifecycle) (*porchapi.PackageRevision, error) {
	release, ok := t.guard.TryAcquire()
	if !ok {
		return nil, errors.E(op, errors.Pkg(pr.Name), errors.Conflict, ErrTransitionInFlight)
	}
	defer release()

	updated := WithLifecycle(pr, lifecycle)
	if err := t.Client.Update(ctx, updated); err != nil {
		return nil, errors.E(op, errors.Pkg(pr.Name), err)
	}
	return updated, nil
}
