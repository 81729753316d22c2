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

// Package rootsync manages Config Sync RootSync resources bound to
// published package revisions: creation, lookup, status classification and
// polling.
package rootsync

import (
	"context"
	"fmt"

	configapi "github.com/kptdev/pkgsync/api/config/v1alpha1"
	porchapi "github.com/kptdev/pkgsync/api/porch/v1alpha1"
	"github.com/kptdev/pkgsync/internal/util/porch"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// Namespace is the namespace Config Sync watches for RootSync resources.
const Namespace = "config-management-system"

// GroupVersion of the RootSync resource.
var GroupVersion = schema.GroupVersion{Group: "configsync.gke.io", Version: "v1beta1"}

// GVK returns the GroupVersionKind of RootSync.
func GVK() schema.GroupVersionKind {
	return GroupVersion.WithKind("RootSync")
}

// ListGVK returns the GroupVersionKind of RootSyncList.
func ListGVK() schema.GroupVersionKind {
	return GroupVersion.WithKind("RootSyncList")
}

// SyncName returns the RootSync name for a package revision.
func SyncName(revisionName string) string {
	return porch.SanitizeName(revisionName)
}

// SecretName returns the name of the sync-specific credentials secret for a
// package revision.
func SecretName(revisionName string) string {
	return porch.SanitizeName(revisionName) + "-sync"
}

// gitRevision is the source ref Config Sync pulls, as Porch tags published
// package revisions.
func gitRevision(revision *porchapi.PackageRevision) string {
	return fmt.Sprintf("%s/%s", revision.Spec.PackageName, revision.Spec.Revision)
}

// New constructs a RootSync binding the repository, the package revision's
// rendered output, and an optional credentials secret.
func New(repository *configapi.Repository, revision *porchapi.PackageRevision, secretName string) *unstructured.Unstructured {
	git := map[string]interface{}{
		"repo":     repository.Spec.Git.Repo,
		"revision": gitRevision(revision),
		"dir":      revision.Spec.PackageName,
		"branch":   repository.Spec.Git.Branch,
	}

	if secretName != "" {
		git["auth"] = "token"
		git["secretRef"] = map[string]interface{}{
			"name": secretName,
		}
	}

	return &unstructured.Unstructured{
		Object: map[string]interface{}{
			"apiVersion": GroupVersion.Identifier(),
			"kind":       "RootSync",
			"metadata": map[string]interface{}{
				"name":      SyncName(revision.Name),
				"namespace": Namespace,
			},
			"spec": map[string]interface{}{
				"sourceFormat": "unstructured",
				"git":          git,
			},
		},
	}
}

// FindForPackage looks for an existing RootSync bound to the given package
// revision and repository. It returns nil when none of the listed syncs
// matches.
func FindForPackage(ctx context.Context, c client.Client, revision *porchapi.PackageRevision, repository *configapi.Repository) (*unstructured.Unstructured, error) {
	if repository.Spec.Git == nil {
		return nil, nil
	}

	list := &unstructured.UnstructuredList{}
	list.SetGroupVersionKind(ListGVK())
	if err := c.List(ctx, list, client.InNamespace(Namespace)); err != nil {
		return nil, err
	}

	want := gitRevision(revision)
	for i := range list.Items {
		item := &list.Items[i]
		repo, _, err := unstructured.NestedString(item.Object, "spec", "git", "repo")
		if err != nil {
			continue
		}
		rev, _, err := unstructured.NestedString(item.Object, "spec", "git", "revision")
		if err != nil {
			continue
		}
		if repo == repository.Spec.Git.Repo && rev == want {
			return item, nil
		}
	}
	return nil, nil
}
