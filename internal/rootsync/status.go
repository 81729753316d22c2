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
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// State is the coarse classification of a RootSync's reported condition.
type State string

const (
	StateSynced      State = "Synced"
	StateReconciling State = "Reconciling"
	StatePending     State = "Pending"
	StateStalled     State = "Stalled"
	StateError       State = "Error"
)

// Severity maps a sync state onto the banner level shown to the user.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

// SeverityOf maps a state onto its display severity. Unknown states are
// surfaced as errors rather than hidden.
func SeverityOf(state State) Severity {
	switch state {
	case StateError, StateStalled:
		return SeverityError
	case StateReconciling, StatePending:
		return SeverityInfo
	case StateSynced:
		return SeveritySuccess
	default:
		return SeverityError
	}
}

// HasReportedStatus reports whether the reconciler has written anything to
// the resource's status yet.
func HasReportedStatus(rs *unstructured.Unstructured) bool {
	if rs == nil {
		return false
	}
	_, found, err := unstructured.NestedMap(rs.Object, "status")
	return err == nil && found
}

// StateOf classifies the RootSync's status. The second return value is false
// when the reconciler has not reported status yet, in which case the state
// carries no meaning.
func StateOf(rs *unstructured.Unstructured) (State, bool) {
	if !HasReportedStatus(rs) {
		return "", false
	}

	generation, _, err := unstructured.NestedInt64(rs.Object, "metadata", "generation")
	if err != nil {
		return StateError, true
	}
	observedGeneration, _, err := unstructured.NestedInt64(rs.Object, "status", "observedGeneration")
	if err != nil {
		return StateError, true
	}
	if generation != observedGeneration {
		return StatePending, true
	}

	stalled, found, err := conditionStatus(rs, "Stalled")
	if err != nil {
		return StateError, true
	}
	if found && stalled {
		return StateStalled, true
	}

	reconciling, found, err := conditionStatus(rs, "Reconciling")
	if err != nil {
		return StateError, true
	}
	if found && reconciling {
		return StateReconciling, true
	}

	syncing, found, err := conditionStatus(rs, "Syncing")
	if err != nil {
		return StateError, true
	}
	if !found {
		// The reconciler has not gotten far enough to report sync progress.
		return StateReconciling, true
	}

	errCount, err := syncErrorCount(rs)
	if err != nil {
		return StateError, true
	}
	if errCount > 0 {
		return StateError, true
	}
	if syncing {
		return StatePending, true
	}
	return StateSynced, true
}

func conditionStatus(rs *unstructured.Unstructured, conditionType string) (bool, bool, error) {
	conditions, found, err := unstructured.NestedSlice(rs.Object, "status", "conditions")
	if err != nil || !found {
		return false, false, err
	}
	for _, c := range conditions {
		condition, ok := c.(map[string]interface{})
		if !ok {
			continue
		}
		if condition["type"] != conditionType {
			continue
		}
		return condition["status"] == "True", true, nil
	}
	return false, false, nil
}

func syncErrorCount(rs *unstructured.Unstructured) (int64, error) {
	conditions, found, err := unstructured.NestedSlice(rs.Object, "status", "conditions")
	if err != nil || !found {
		return 0, err
	}
	for _, c := range conditions {
		condition, ok := c.(map[string]interface{})
		if !ok || condition["type"] != "Syncing" {
			continue
		}
		summary, ok := condition["errorSummary"].(map[string]interface{})
		if !ok {
			return 0, nil
		}
		count, _, err := unstructured.NestedInt64(summary, "totalCount")
		if err != nil {
			return 0, err
		}
		return count, nil
	}
	return 0, nil
}
