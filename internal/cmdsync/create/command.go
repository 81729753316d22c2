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

package create

import (
	"context"
	"fmt"

	configapi "github.com/kptdev/pkgsync/api/config/v1alpha1"
	porchapi "github.com/kptdev/pkgsync/api/porch/v1alpha1"
	"github.com/kptdev/pkgsync/internal/errors"
	"github.com/kptdev/pkgsync/internal/rootsync"
	"github.com/kptdev/pkgsync/internal/util/porch"
	"github.com/spf13/cobra"
	"k8s.io/cli-runtime/pkg/genericclioptions"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

const (
	command = "cmdsync.create"
	longMsg = `
pkgsync sync create PACKAGE [flags]

Deploys a published package revision by creating a RootSync for it. The
repository's git credentials are copied into a sync-specific secret that the
sync references. A repository without credentials is skipped.

Args:

PACKAGE:
  Name of the published package revision to deploy.
`
)

func NewCommand(ctx context.Context, rcg *genericclioptions.ConfigFlags) *cobra.Command {
	return newRunner(ctx, rcg).Command
}

func newRunner(ctx context.Context, rcg *genericclioptions.ConfigFlags) *runner {
	r := &runner{
		ctx: ctx,
		cfg: rcg,
	}
	c := &cobra.Command{
		Use:     "create PACKAGE",
		Short:   "Deploys a published package revision by creating a RootSync.",
		Long:    longMsg,
		Example: "pkgsync sync create git-repository:package-name:v3",
		Args:    cobra.ExactArgs(1),
		PreRunE: r.preRunE,
		RunE:    r.runE,
	}
	r.Command = c

	return r
}

type runner struct {
	ctx     context.Context
	cfg     *genericclioptions.ConfigFlags
	client  client.Client
	Command *cobra.Command
}

func (r *runner) preRunE(cmd *cobra.Command, args []string) error {
	const op errors.Op = command + ".preRunE"

	c, err := porch.CreateDynamicClient(r.cfg)
	if err != nil {
		return errors.E(op, err)
	}
	r.client = c
	return nil
}

func (r *runner) runE(cmd *cobra.Command, args []string) error {
	const op errors.Op = command + ".runE"

	name := args[0]
	namespace := *r.cfg.Namespace

	revision := &porchapi.PackageRevision{}
	key := client.ObjectKey{Namespace: namespace, Name: name}
	if err := r.client.Get(r.ctx, key, revision); err != nil {
		return errors.E(op, errors.Pkg(name), err)
	}
	if revision.Spec.Lifecycle != porchapi.PackageRevisionLifecyclePublished {
		return errors.E(op, errors.Pkg(name), errors.InvalidParam,
			fmt.Errorf("cannot deploy %s package", revision.Spec.Lifecycle))
	}

	repository := &configapi.Repository{}
	repoKey := client.ObjectKey{Namespace: namespace, Name: revision.Spec.RepositoryName}
	if err := r.client.Get(r.ctx, repoKey, repository); err != nil {
		return errors.E(op, errors.Pkg(name), err)
	}

	rs, err := rootsync.Create(r.ctx, r.client, repository, revision)
	if err != nil {
		return errors.E(op, err)
	}
	if rs == nil {
		fmt.Fprintf(cmd.OutOrStderr(), "%s skipped: repository %s has no git credentials\n",
			name, repository.Name)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStderr(), "sync %s created\n", rs.GetName())
	return nil
}
