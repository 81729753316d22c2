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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	coreapi "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
	"sigs.k8s.io/controller-runtime/pkg/client/interceptor"
)

func repoSecret() *coreapi.Secret {
	return &coreapi.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "git-auth",
			Namespace: "default",
		},
		Data: map[string][]byte{
			"username": []byte("porch"),
			"password": []byte("s3cr3t"),
		},
	}
}

func TestCreate(t *testing.T) {
	repo := deploymentRepo("git-auth")
	revision := publishedRevision()

	c := fake.NewClientBuilder().
		WithScheme(testScheme(t)).
		WithObjects(repoSecret()).
		Build()

	rs, err := Create(context.Background(), c, repo, revision)
	require.NoError(t, err)
	require.NotNil(t, rs)
	assert.Equal(t, "deployments-istions-v1", rs.GetName())
	assert.Equal(t, Namespace, rs.GetNamespace())

	// The repository credentials were copied into a sync-specific secret.
	syncSecret := &coreapi.Secret{}
	key := client.ObjectKey{Namespace: Namespace, Name: "deployments-istions-v1-sync"}
	require.NoError(t, c.Get(context.Background(), key, syncSecret))
	assert.Equal(t, []byte("porch"), syncSecret.Data["username"])
	assert.Equal(t, []byte("s3cr3t"), syncSecret.Data["token"])

	secretRef, _, err := unstructured.NestedString(rs.Object, "spec", "git", "secretRef", "name")
	require.NoError(t, err)
	assert.Equal(t, "deployments-istions-v1-sync", secretRef)

	created := &unstructured.Unstructured{}
	created.SetGroupVersionKind(GVK())
	rsKey := client.ObjectKey{Namespace: Namespace, Name: rs.GetName()}
	require.NoError(t, c.Get(context.Background(), rsKey, created))
}

func TestCreateWithoutCredentialsIsNoOp(t *testing.T) {
	calls := 0
	count := interceptor.Funcs{
		Get: func(ctx context.Context, c client.WithWatch, key client.ObjectKey, obj client.Object, opts ...client.GetOption) error {
			calls++
			return c.Get(ctx, key, obj, opts...)
		},
		Create: func(ctx context.Context, c client.WithWatch, obj client.Object, opts ...client.CreateOption) error {
			calls++
			return c.Create(ctx, obj, opts...)
		},
	}
	c := fake.NewClientBuilder().
		WithScheme(testScheme(t)).
		WithInterceptorFuncs(count).
		Build()

	noGit := deploymentRepo("")
	noGit.Spec.Git = nil
	rs, err := Create(context.Background(), c, noGit, publishedRevision())
	require.NoError(t, err)
	assert.Nil(t, rs)

	noSecret := deploymentRepo("")
	rs, err = Create(context.Background(), c, noSecret, publishedRevision())
	require.NoError(t, err)
	assert.Nil(t, rs)

	assert.Zero(t, calls, "a secretless repository must not trigger any API calls")
}

func TestCreateFailsWhenCredentialsMissing(t *testing.T) {
	repo := deploymentRepo("git-auth")

	c := fake.NewClientBuilder().WithScheme(testScheme(t)).Build()

	_, err := Create(context.Background(), c, repo, publishedRevision())
	require.Error(t, err)

	// No sync may exist after the failed flow.
	rs := &unstructured.Unstructured{}
	rs.SetGroupVersionKind(GVK())
	key := client.ObjectKey{Namespace: Namespace, Name: "deployments-istions-v1"}
	err = c.Get(context.Background(), key, rs)
	assert.Error(t, err)
}
