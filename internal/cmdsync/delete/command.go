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

package delete

import (
	"context"
	"fmt"

	"github.com/kptdev/pkgsync/internal/errors"
	"github.com/kptdev/pkgsync/internal/rootsync"
	"github.com/kptdev/pkgsync/internal/util/porch"
	"github.com/spf13/cobra"
	coreapi "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/cli-runtime/pkg/genericclioptions"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

const (
	command = "cmdsync.delete"
	longMsg = `
pkgsync sync delete NAME [flags]

Deletes a RootSync resource and its sync-specific credentials secret.

Args:

NAME:
  Name of the sync resource. Required argument.

Flags:

--keep-auth-secret
  Do not delete the sync's credentials secret, if it exists.
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
		Use:     "del NAME [flags]",
		Aliases: []string{"delete"},
		Short:   "Deletes a RootSync resource and its credentials secret.",
		Long:    longMsg,
		Example: "pkgsync sync del deployments-istions-v1",
		Args:    cobra.ExactArgs(1),
		PreRunE: r.preRunE,
		RunE:    r.runE,
	}
	r.Command = c

	c.Flags().BoolVar(&r.keepSecret, "keep-auth-secret", false,
		"keep the auth secret associated with the sync, if any")

	return r
}

type runner struct {
	ctx     context.Context
	cfg     *genericclioptions.ConfigFlags
	client  client.Client
	Command *cobra.Command

	// Flags
	keepSecret bool
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
	key := client.ObjectKey{
		Namespace: rootsync.Namespace,
		Name:      name,
	}
	rs := unstructured.Unstructured{}
	rs.SetGroupVersionKind(rootsync.GVK())
	if err := r.client.Get(r.ctx, key, &rs); err != nil {
		return errors.E(op, fmt.Errorf("cannot get %s: %v", key, err))
	}

	if err := r.client.Delete(r.ctx, &rs); err != nil {
		return errors.E(op, err)
	}

	if r.keepSecret {
		return nil
	}

	secret := secretName(&rs)
	if secret == "" {
		return nil
	}

	if err := r.client.Delete(r.ctx, &coreapi.Secret{
		TypeMeta: metav1.TypeMeta{
			Kind:       "Secret",
			APIVersion: coreapi.SchemeGroupVersion.Identifier(),
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      secret,
			Namespace: rootsync.Namespace,
		},
	}); err != nil {
		return errors.E(op, fmt.Errorf("failed to delete auth secret: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStderr(), "sync %s deleted\n", name)
	return nil
}

func secretName(rs *unstructured.Unstructured) string {
	name, _, err := unstructured.NestedString(rs.Object, "spec", "git", "secretRef", "name")
	if err != nil {
		return ""
	}
	return name
}
