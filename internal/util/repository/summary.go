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

// Package repository resolves Repository objects together with their
// downstream repositories, the targets a package revision can be deployed
// or cloned to.
package repository

import (
	"context"

	configapi "github.com/kptdev/pkgsync/api/config/v1alpha1"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// Summary describes a repository and the repositories downstream of it.
type Summary struct {
	Repository configapi.Repository
	Downstream []configapi.Repository
}

// IsDeployment reports whether the repository is a deployment repository,
// i.e. a live sync target rather than a plain config source.
func (s *Summary) IsDeployment() bool {
	return s.Repository.Spec.Deployment
}

// HasDownstream reports whether any repository can receive a clone of
// packages from this repository.
func (s *Summary) HasDownstream() bool {
	return len(s.Downstream) > 0
}

// GetSummary fetches the named repository and computes its downstream
// repositories. A repository is downstream if its upstream reference names
// this repository.
func GetSummary(ctx context.Context, c client.Reader, key client.ObjectKey) (*Summary, error) {
	var repo configapi.Repository
	if err := c.Get(ctx, key, &repo); err != nil {
		return nil, err
	}

	var list configapi.RepositoryList
	if err := c.List(ctx, &list, client.InNamespace(key.Namespace)); err != nil {
		return nil, err
	}

	summary := &Summary{Repository: repo}
	for _, candidate := range list.Items {
		if candidate.Name == repo.Name {
			continue
		}
		upstream := candidate.Spec.Upstream
		if upstream == nil || upstream.RepositoryRef == nil {
			continue
		}
		if upstream.RepositoryRef.Name == repo.Name {
			summary.Downstream = append(summary.Downstream, candidate)
		}
	}
	return summary, nil
}
