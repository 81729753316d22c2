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

package status

import (
	"context"
	"fmt"

	"github.com/kptdev/pkgsync/internal/errors"
	"github.com/kptdev/pkgsync/internal/rootsync"
	"github.com/kptdev/pkgsync/internal/util/porch"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/cli-runtime/pkg/genericclioptions"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

const (
	command = "cmdsync.status"
	longMsg = `
pkgsync sync status NAME [flags]

Reports the sync state of a RootSync resource. With --watch the status is
polled until interrupted, quickly at first while the sync has not reported
status, then at a steady cadence.

Args:

NAME:
  Name of the sync resource. Required argument.
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
		Use:     "status NAME",
		Short:   "Reports the sync state of a RootSync resource.",
		Long:    longMsg,
		Example: "pkgsync sync status deployments-istions-v1 --watch",
		Args:    cobra.ExactArgs(1),
		PreRunE: r.preRunE,
		RunE:    r.runE,
	}
	r.Command = c

	c.Flags().BoolVar(&r.watch, "watch", false, "poll the sync status until interrupted")

	return r
}

type runner struct {
	ctx     context.Context
	cfg     *genericclioptions.ConfigFlags
	client  client.Client
	Command *cobra.Command

	// Flags
	watch bool
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

	if r.watch {
		poller := rootsync.NewPoller(r.client, nil)
		poller.OnUpdate = func(rs *unstructured.Unstructured) {
			printStatus(cmd, rs)
		}
		poller.SetTarget(name)
		poller.Run(r.ctx)
		return nil
	}

	rs := &unstructured.Unstructured{}
	rs.SetGroupVersionKind(rootsync.GVK())
	key := client.ObjectKey{Namespace: rootsync.Namespace, Name: name}
	if err := r.client.Get(r.ctx, key, rs); err != nil {
		return errors.E(op, fmt.Errorf("cannot get %s: %v", key, err))
	}
	printStatus(cmd, rs)
	return nil
}

func printStatus(cmd *cobra.Command, rs *unstructured.Unstructured) {
	state, known := rootsync.StateOf(rs)
	if !known {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: no status reported yet\n", rs.GetName())
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", rs.GetName(), state, rootsync.SeverityOf(state))
}
