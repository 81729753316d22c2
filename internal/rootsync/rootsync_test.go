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

	configapi "github.com/kptdev/pkgsync/api/config/v1alpha1"
	porchapi "github.com/kptdev/pkgsync/api/porch/v1alpha1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	coreapi "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
)

func testScheme(t *testing.T) *runtime.Scheme {
	t.Helper()
	scheme := runtime.NewScheme()
	scheme.AddKnownTypeWithName(GVK(), &unstructured.Unstructured{})
	scheme.AddKnownTypeWithName(ListGVK(), &unstructured.UnstructuredList{})
	require.NoError(t, configapi.AddToScheme(scheme))
	require.NoError(t, porchapi.AddToScheme(scheme))
	require.NoError(t, coreapi.AddToScheme(scheme))
	return scheme
}

func publishedRevision() *porchapi.PackageRevision {
	return &porchapi.PackageRevision{
		TypeMeta: metav1.TypeMeta{
			Kind:       "PackageRevision",
			APIVersion: porchapi.SchemeGroupVersion.Identifier(),
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      "deployments:istions:v1",
			Namespace: "default",
		},
		Spec: porchapi.PackageRevisionSpec{
			PackageName:    "istions",
			Revision:       "v1",
			RepositoryName: "deployments",
			Lifecycle:      porchapi.PackageRevisionLifecyclePublished,
		},
	}
}

func deploymentRepo(secretName string) *configapi.Repository {
	return &configapi.Repository{
		TypeMeta: metav1.TypeMeta{
			Kind:       "Repository",
			APIVersion: configapi.TypeRepository.APIVersion(),
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      "deployments",
			Namespace: "default",
		},
		Spec: configapi.RepositorySpec{
			Deployment: true,
			Type:       configapi.RepositoryTypeGit,
			Git: &configapi.GitRepository{
				Repo:   "https://github.com/example/deployments.git",
				Branch: "main",
				SecretRef: configapi.SecretRef{
					Name: secretName,
				},
			},
		},
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, "deployments-istions-v1", SyncName("deployments:istions:v1"))
	assert.Equal(t, "deployments-istions-v1-sync", SecretName("deployments:istions:v1"))
}

func TestNew(t *testing.T) {
	rs := New(deploymentRepo("git-auth"), publishedRevision(), "deployments-istions-v1-sync")

	assert.Equal(t, "deployments-istions-v1", rs.GetName())
	assert.Equal(t, Namespace, rs.GetNamespace())

	git, found, err := unstructured.NestedMap(rs.Object, "spec", "git")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "https://github.com/example/deployments.git", git["repo"])
	assert.Equal(t, "istions/v1", git["revision"])
	assert.Equal(t, "istions", git["dir"])
	assert.Equal(t, "main", git["branch"])
	assert.Equal(t, "token", git["auth"])

	secretRef, found, err := unstructured.NestedString(rs.Object, "spec", "git", "secretRef", "name")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "deployments-istions-v1-sync", secretRef)
}

func TestNewWithoutSecret(t *testing.T) {
	rs := New(deploymentRepo(""), publishedRevision(), "")

	git, _, err := unstructured.NestedMap(rs.Object, "spec", "git")
	require.NoError(t, err)
	assert.NotContains(t, git, "auth")
	assert.NotContains(t, git, "secretRef")
}

func TestFindForPackage(t *testing.T) {
	repo := deploymentRepo("git-auth")
	revision := publishedRevision()

	match := New(repo, revision, "")
	other := New(repo, revision, "")
	other.SetName("something-else")
	require.NoError(t, unstructured.SetNestedField(other.Object, "other/v2", "spec", "git", "revision"))

	c := fake.NewClientBuilder().
		WithScheme(testScheme(t)).
		WithObjects(match, other).
		Build()

	found, err := FindForPackage(context.Background(), c, revision, repo)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "deployments-istions-v1", found.GetName())
}

func TestFindForPackageNoMatch(t *testing.T) {
	repo := deploymentRepo("git-auth")
	revision := publishedRevision()

	other := New(repo, revision, "")
	other.SetName("something-else")
	require.NoError(t, unstructured.SetNestedField(other.Object, "other/v2", "spec", "git", "revision"))

	c := fake.NewClientBuilder().
		WithScheme(testScheme(t)).
		WithObjects(other).
		Build()

	found, err := FindForPackage(context.Background(), c, revision, repo)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestFindForPackageNonGitRepository(t *testing.T) {
	repo := deploymentRepo("git-auth")
	repo.Spec.Git = nil

	c := fake.NewClientBuilder().WithScheme(testScheme(t)).Build()

	found, err := FindForPackage(context.Background(), c, publishedRevision(), repo)
	require.NoError(t, err)
	assert.Nil(t, found)
}
