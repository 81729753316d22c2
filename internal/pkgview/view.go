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

// Package pkgview assembles everything known about a single package
// revision: the revision itself, its resources, its repository context, and
// the RootSync deploying it. It is the model behind the status command and
// drives lifecycle transitions and sync creation.
package pkgview

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"
	porchapi "github.com/kptdev/pkgsync/api/porch/v1alpha1"
	"github.com/kptdev/pkgsync/internal/errors"
	"github.com/kptdev/pkgsync/internal/lifecycle"
	"github.com/kptdev/pkgsync/internal/rootsync"
	"github.com/kptdev/pkgsync/internal/util/porch"
	"github.com/kptdev/pkgsync/internal/util/repository"
	"golang.org/x/sync/errgroup"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/client-go/rest"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// View is the aggregate state of one package revision. All accessors return
// snapshots; mutating methods only replace the snapshot once the apiserver
// accepted the change.
type View struct {
	client       client.Client
	transitioner *lifecycle.Transitioner
	poller       *rootsync.Poller

	mu           sync.Mutex
	revision     *porchapi.PackageRevision
	resources    *porchapi.PackageRevisionResources
	summary      *repository.Summary
	sync         *unstructured.Unstructured
	syncResolved bool
	syncState    rootsync.State
	syncKnown    bool
}

// New returns an empty view. A nil clock selects the real clock for the sync
// status poller.
func New(c client.Client, restClient rest.Interface, clock clockwork.Clock) *View {
	v := &View{
		client:       c,
		transitioner: &lifecycle.Transitioner{Client: c, Rest: restClient},
		poller:       rootsync.NewPoller(c, clock),
	}
	v.poller.OnUpdate = v.observeSync
	return v
}

// Run drives the sync status poller until the context is cancelled.
func (v *View) Run(ctx context.Context) {
	v.poller.Run(ctx)
}

// Load fetches the revision, its resources and the repository summary
// concurrently. Either all three are installed or, on any failure, the view
// is left untouched and the error is surfaced.
func (v *View) Load(ctx context.Context, key client.ObjectKey) error {
	const op errors.Op = "pkgview.load"

	name, err := porch.ParsePackageName(key.Name)
	if err != nil {
		return errors.E(op, errors.InvalidParam, err)
	}

	var (
		revision  porchapi.PackageRevision
		resources porchapi.PackageRevisionResources
		summary   *repository.Summary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return v.client.Get(gctx, key, &revision)
	})
	g.Go(func() error {
		return v.client.Get(gctx, key, &resources)
	})
	g.Go(func() error {
		repoKey := client.ObjectKey{Namespace: key.Namespace, Name: name.Repository}
		s, err := repository.GetSummary(gctx, v.client, repoKey)
		if err != nil {
			return err
		}
		summary = s
		return nil
	})
	if err := g.Wait(); err != nil {
		return errors.E(op, errors.Pkg(key.Name), err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.revision = &revision
	v.resources = &resources
	v.summary = summary
	v.sync = nil
	v.syncResolved = false
	v.syncKnown = false
	return nil
}

// ResolveSync looks up the RootSync bound to the loaded revision and, when
// one exists, points the poller at it. Only published revisions in
// deployment repositories can have a sync; for anything else the sync is
// resolved as absent.
func (v *View) ResolveSync(ctx context.Context) error {
	const op errors.Op = "pkgview.resolveSync"

	revision, summary := v.snapshot()
	if revision == nil {
		return errors.E(op, errors.MissingParam, "no revision loaded")
	}

	var rs *unstructured.Unstructured
	if revision.Spec.Lifecycle == porchapi.PackageRevisionLifecyclePublished && summary.IsDeployment() {
		var err error
		rs, err = rootsync.FindForPackage(ctx, v.client, revision, &summary.Repository)
		if err != nil {
			return errors.E(op, errors.Pkg(revision.Name), err)
		}
	}

	v.mu.Lock()
	v.sync = rs
	v.syncResolved = true
	if rs != nil {
		v.syncState, v.syncKnown = rootsync.StateOf(rs)
	} else {
		v.syncKnown = false
	}
	v.mu.Unlock()

	if rs != nil {
		v.poller.SetTarget(rs.GetName())
	}
	return nil
}

// Actions returns the actions currently offered for the revision.
func (v *View) Actions() []lifecycle.Action {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.revision == nil || v.summary == nil {
		return nil
	}

	presence := lifecycle.SyncUnknown
	if v.syncResolved {
		if v.sync != nil {
			presence = lifecycle.SyncPresent
		} else {
			presence = lifecycle.SyncAbsent
		}
	}
	return lifecycle.AvailableActions(
		v.revision.Spec.Lifecycle,
		v.summary.IsDeployment(),
		v.summary.HasDownstream(),
		presence,
	)
}

// Revision returns the loaded revision, or nil before Load.
func (v *View) Revision() *porchapi.PackageRevision {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.revision
}

// Resources returns the loaded revision's resources, or nil before Load.
func (v *View) Resources() *porchapi.PackageRevisionResources {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.resources
}

// Summary returns the loaded repository summary, or nil before Load.
func (v *View) Summary() *repository.Summary {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.summary
}

// Sync returns the resolved RootSync, or nil when none exists or the lookup
// has not run.
func (v *View) Sync() *unstructured.Unstructured {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.sync
}

// SyncStatus returns the last observed sync state and its severity. The
// boolean is false while the sync has not reported status.
func (v *View) SyncStatus() (rootsync.State, rootsync.Severity, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.syncKnown {
		return "", "", false
	}
	return v.syncState, rootsync.SeverityOf(v.syncState), true
}

// InFlight reports whether a mutation is currently outstanding.
func (v *View) InFlight() bool {
	return v.transitioner.InFlight()
}

// Propose moves the loaded Draft revision to Proposed.
func (v *View) Propose(ctx context.Context) error {
	return v.transition(ctx, (*lifecycle.Transitioner).Propose)
}

// MoveToDraft moves the loaded Proposed revision back to Draft.
func (v *View) MoveToDraft(ctx context.Context) error {
	return v.transition(ctx, (*lifecycle.Transitioner).MoveToDraft)
}

// Approve publishes the loaded Proposed revision.
func (v *View) Approve(ctx context.Context) error {
	return v.transition(ctx, (*lifecycle.Transitioner).Approve)
}

func (v *View) transition(ctx context.Context, fn func(*lifecycle.Transitioner, context.Context, *porchapi.PackageRevision) (*porchapi.PackageRevision, error)) error {
	revision, _ := v.snapshot()
	if revision == nil {
		return errors.E(errors.Op("pkgview.transition"), errors.MissingParam, "no revision loaded")
	}

	updated, err := fn(v.transitioner, ctx, revision)
	if err != nil {
		return err
	}

	v.mu.Lock()
	v.revision = updated
	v.mu.Unlock()
	return nil
}

// CreateSync deploys the loaded revision by creating a RootSync for it and
// adopts the new sync for status polling. It shares the single request slot
// with the lifecycle transitions.
func (v *View) CreateSync(ctx context.Context) error {
	const op errors.Op = "pkgview.createSync"

	revision, summary := v.snapshot()
	if revision == nil {
		return errors.E(op, errors.MissingParam, "no revision loaded")
	}

	release, ok := v.transitioner.Acquire()
	if !ok {
		return errors.E(op, errors.Pkg(revision.Name), errors.Conflict, lifecycle.ErrTransitionInFlight)
	}
	defer release()

	rs, err := rootsync.Create(ctx, v.client, &summary.Repository, revision)
	if err != nil {
		return err
	}
	if rs == nil {
		return nil
	}

	v.mu.Lock()
	v.sync = rs
	v.syncResolved = true
	v.syncKnown = false
	v.mu.Unlock()

	v.poller.SetTarget(rs.GetName())
	return nil
}

// Deploy clones the loaded revision into a downstream repository as a new
// Draft and returns the created revision. The downstream repository must be
// one of the summary's downstream repositories.
func (v *View) Deploy(ctx context.Context, downstream string) (*porchapi.PackageRevision, error) {
	const op errors.Op = "pkgview.deploy"

	revision, summary := v.snapshot()
	if revision == nil {
		return nil, errors.E(op, errors.MissingParam, "no revision loaded")
	}

	eligible := false
	for _, repo := range summary.Downstream {
		if repo.Name == downstream {
			eligible = true
			break
		}
	}
	if !eligible {
		return nil, errors.E(op, errors.Pkg(revision.Name), errors.InvalidParam,
			fmt.Errorf("repository %s is not downstream of %s", downstream, summary.Repository.Name))
	}

	release, ok := v.transitioner.Acquire()
	if !ok {
		return nil, errors.E(op, errors.Pkg(revision.Name), errors.Conflict, lifecycle.ErrTransitionInFlight)
	}
	defer release()

	// Porch assigns the revision name on creation.
	clone := &porchapi.PackageRevision{
		TypeMeta: metav1.TypeMeta{
			Kind:       "PackageRevision",
			APIVersion: porchapi.SchemeGroupVersion.Identifier(),
		},
		ObjectMeta: metav1.ObjectMeta{
			Namespace: revision.Namespace,
		},
		Spec: porchapi.PackageRevisionSpec{
			PackageName:    revision.Spec.PackageName,
			WorkspaceName:  revision.Spec.Revision,
			RepositoryName: downstream,
			Tasks: []porchapi.Task{
				{
					Type: porchapi.TaskTypeClone,
					Clone: &porchapi.PackageCloneTaskSpec{
						Upstream: porchapi.UpstreamPackage{
							UpstreamRef: &porchapi.PackageRevisionRef{
								Name: revision.Name,
							},
						},
					},
				},
			},
		},
	}
	if err := v.client.Create(ctx, clone); err != nil {
		return nil, errors.E(op, errors.Pkg(revision.Name), err)
	}
	return clone, nil
}

func (v *View) snapshot() (*porchapi.PackageRevision, *repository.Summary) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.revision, v.summary
}

func (v *View) observeSync(rs *unstructured.Unstructured) {
	state, known := rootsync.StateOf(rs)
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sync = rs
	v.syncState = state
	v.syncKnown = known
}
