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

package cmddeploy

import (
	"context"
	"fmt"

	"github.com/kptdev/pkgsync/internal/errors"
	"github.com/kptdev/pkgsync/internal/pkgview"
	"github.com/kptdev/pkgsync/internal/util/porch"
	"github.com/spf13/cobra"
	"k8s.io/cli-runtime/pkg/genericclioptions"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

const (
	command = "cmddeploy"
	longMsg = `
pkgsync deploy PACKAGE --repository=REPOSITORY [flags]

Clones a package revision into a downstream repository as a new draft.

Args:

PACKAGE:
  Name of the package revision to clone downstream.

Flags:

--repository
  Name of the downstream repository to clone into. Required. The repository
  must declare the package's repository as its upstream.
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
		Use:     "deploy PACKAGE --repository=REPOSITORY",
		Short:   "Clones a package revision into a downstream repository.",
		Long:    longMsg,
		Example: "pkgsync deploy git-repository:package-name:v3 --repository=edge-clusters",
		Args:    cobra.ExactArgs(1),
		PreRunE: r.preRunE,
		RunE:    r.runE,
	}
	r.Command = c

	c.Flags().StringVar(&r.repository, "repository", "", "downstream repository to clone the package into")

	return r
}

type runner struct {
	ctx     context.Context
	cfg     *genericclioptions.ConfigFlags
	view    *pkgview.View
	Command *cobra.Command

	// Flags
	repository string
}

func (r *runner) preRunE(cmd *cobra.Command, args []string) error {
	const op errors.Op = command + ".preRunE"

	if r.repository == "" {
		return errors.E(op, errors.MissingParam, fmt.Errorf("--repository is required"))
	}

	c, err := porch.CreateClientWithFlags(r.cfg)
	if err != nil {
		return errors.E(op, err)
	}
	r.view = pkgview.New(c, nil, nil)
	return nil
}

func (r *runner) runE(cmd *cobra.Command, args []string) error {
	const op errors.Op = command + ".runE"

	name := args[0]
	key := client.ObjectKey{Namespace: *r.cfg.Namespace, Name: name}
	if err := r.view.Load(r.ctx, key); err != nil {
		return errors.E(op, err)
	}

	clone, err := r.view.Deploy(r.ctx, r.repository)
	if err != nil {
		return errors.E(op, err)
	}

	fmt.Fprintf(cmd.OutOrStderr(), "%s cloned into %s as %s\n", name, r.repository, clone.Name)
	return nil
}
