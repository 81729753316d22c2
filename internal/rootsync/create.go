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
	"fmt"

	configapi "github.com/kptdev/pkgsync/api/config/v1alpha1"
	porchapi "github.com/kptdev/pkgsync/api/porch/v1alpha1"
	"github.com/kptdev/pkgsync/internal/errors"
	coreapi "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// Create deploys a published package revision by creating a RootSync for it,
// copying the repository's git credentials into a sync-specific secret first.
//
// A repository without git credentials cannot be deployed this way; in that
// case Create returns (nil, nil) without touching the cluster. All other
// failures abort the flow and propagate.
func Create(ctx context.Context, c client.Client, repository *configapi.Repository, revision *porchapi.PackageRevision) (*unstructured.Unstructured, error) {
	const op errors.Op = "rootsync.create"

	if repository.Spec.Git == nil || repository.Spec.Git.SecretRef.Name == "" {
		return nil, nil
	}

	repoSecret := &coreapi.Secret{}
	repoSecretKey := client.ObjectKey{
		Namespace: repository.Namespace,
		Name:      repository.Spec.Git.SecretRef.Name,
	}
	if err := c.Get(ctx, repoSecretKey, repoSecret); err != nil {
		return nil, errors.E(op, errors.Pkg(revision.Name), fmt.Errorf("fetching repository credentials: %w", err))
	}

	secretName := SecretName(revision.Name)
	syncSecret := &coreapi.Secret{
		TypeMeta: metav1.TypeMeta{
			Kind:       "Secret",
			APIVersion: coreapi.SchemeGroupVersion.Identifier(),
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      secretName,
			Namespace: Namespace,
		},
		Data: map[string][]byte{
			"username": repoSecret.Data["username"],
			"token":    repoSecret.Data["password"],
		},
	}
	if err := c.Create(ctx, syncSecret); err != nil {
		return nil, errors.E(op, errors.Pkg(revision.Name), fmt.Errorf("creating sync secret: %w", err))
	}

	rs := New(repository, revision, secretName)
	if err := c.Create(ctx, rs); err != nil {
		return nil, errors.E(op, errors.Pkg(revision.Name), fmt.Errorf("creating sync: %w", err))
	}
	return rs, nil
}
