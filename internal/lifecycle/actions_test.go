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
	"testing"

	"github.com/google/go-cmp/cmp"
	porchapi "github.com/kptdev/pkgsync/api/porch/v1alpha1"
)

func TestAvailableActions(t *testing.T) {
	testCases := map[string]struct {
		lifecycle      porchapi.PackageRevisionLifecycle
		deploymentRepo bool
		hasDownstream  bool
		presence       SyncPresence
		expected       []Action
	}{
		"draft": {
			lifecycle: porchapi.PackageRevisionLifecycleDraft,
			expected:  []Action{ActionEdit, ActionPropose},
		},
		"draft with downstream": {
			lifecycle:     porchapi.PackageRevisionLifecycleDraft,
			hasDownstream: true,
			expected:      []Action{ActionEdit, ActionPropose, ActionDeploy},
		},
		"proposed": {
			lifecycle: porchapi.PackageRevisionLifecycleProposed,
			expected:  []Action{ActionMoveToDraft, ActionApprove},
		},
		"proposed with downstream": {
			lifecycle:     porchapi.PackageRevisionLifecycleProposed,
			hasDownstream: true,
			expected:      []Action{ActionMoveToDraft, ActionApprove, ActionDeploy},
		},
		"published, sync unresolved": {
			lifecycle:      porchapi.PackageRevisionLifecyclePublished,
			deploymentRepo: true,
			presence:       SyncUnknown,
			expected:       nil,
		},
		"published in deployment repo without sync": {
			lifecycle:      porchapi.PackageRevisionLifecyclePublished,
			deploymentRepo: true,
			presence:       SyncAbsent,
			expected:       []Action{ActionCreateSync},
		},
		"published in config repo without sync": {
			lifecycle:      porchapi.PackageRevisionLifecyclePublished,
			deploymentRepo: false,
			presence:       SyncAbsent,
			expected:       nil,
		},
		"published with sync": {
			lifecycle:      porchapi.PackageRevisionLifecyclePublished,
			deploymentRepo: true,
			presence:       SyncPresent,
			expected:       []Action{ActionShowSyncStatus},
		},
		"published with downstream is not deployable": {
			lifecycle:      porchapi.PackageRevisionLifecyclePublished,
			deploymentRepo: true,
			hasDownstream:  true,
			presence:       SyncPresent,
			expected:       []Action{ActionShowSyncStatus},
		},
	}

	for tn := range testCases {
		tc := testCases[tn]
		t.Run(tn, func(t *testing.T) {
			actions := AvailableActions(tc.lifecycle, tc.deploymentRepo, tc.hasDownstream, tc.presence)
			if diff := cmp.Diff(tc.expected, actions); diff != "" {
				t.Errorf("unexpected actions (-want, +got): %s", diff)
			}
		})
	}
}
