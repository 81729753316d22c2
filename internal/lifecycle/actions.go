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

// Package lifecycle computes and executes the legal transitions of a
// package revision: Draft -> Proposed -> Published, plus the deploy and
// sync wiring actions that hang off those states.
package lifecycle

import (
	porchapi "github.com/kptdev/pkgsync/api/porch/v1alpha1"
)

// Action is a user-facing operation available for a package revision in its
// current state.
type Action string

const (
	ActionEdit           Action = "edit"
	ActionPropose        Action = "propose"
	ActionMoveToDraft    Action = "move-to-draft"
	ActionApprove        Action = "approve"
	ActionDeploy         Action = "deploy"
	ActionCreateSync     Action = "create-sync"
	ActionShowSyncStatus Action = "show-sync-status"
)

// SyncPresence describes whether a RootSync bound to the package revision
// is known to exist.
type SyncPresence int

const (
	// SyncUnknown means sync state has not been resolved, or does not apply
	// to the revision's current lifecycle.
	SyncUnknown SyncPresence = iota
	// SyncAbsent means the revision was matched against all RootSyncs and
	// none is bound to it.
	SyncAbsent
	// SyncPresent means a RootSync bound to the revision exists.
	SyncPresent
)

func (p SyncPresence) String() string {
	switch p {
	case SyncAbsent:
		return "absent"
	case SyncPresent:
		return "present"
	}
	return "unknown"
}

// AvailableActions returns the ordered set of actions permitted for a
// package revision.
//
// Draft revisions can be edited or proposed; Proposed revisions can be sent
// back to draft or approved; Published revisions in a deployment repository
// can have a sync created (if none exists) or their sync status shown.
// Unpublished revisions with a downstream repository can additionally be
// deployed.
func AvailableActions(lifecycle porchapi.PackageRevisionLifecycle, deploymentRepo, hasDownstream bool, presence SyncPresence) []Action {
	var actions []Action

	switch lifecycle {
	case porchapi.PackageRevisionLifecycleDraft:
		actions = append(actions, ActionEdit, ActionPropose)

	case porchapi.PackageRevisionLifecycleProposed:
		actions = append(actions, ActionMoveToDraft, ActionApprove)

	case porchapi.PackageRevisionLifecyclePublished:
		if deploymentRepo && presence == SyncAbsent {
			actions = append(actions, ActionCreateSync)
		}
		if presence == SyncPresent {
			actions = append(actions, ActionShowSyncStatus)
		}
	}

	if hasDownstream && deployEligible(lifecycle) {
		actions = append(actions, ActionDeploy)
	}

	return actions
}

func deployEligible(lifecycle porchapi.PackageRevisionLifecycle) bool {
	return lifecycle == porchapi.PackageRevisionLifecycleDraft ||
		lifecycle == porchapi.PackageRevisionLifecycleProposed
}
