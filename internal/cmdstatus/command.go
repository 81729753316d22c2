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

package cmdstatus

import (
	"context"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/kptdev/pkgsync/internal/errors"
	"github.com/kptdev/pkgsync/internal/lifecycle"
	"github.com/kptdev/pkgsync/internal/pkgview"
	"github.com/kptdev/pkgsync/internal/util/porch"
	"github.com/spf13/cobra"
	"k8s.io/cli-runtime/pkg/genericclioptions"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

const (
	command = "cmdstatus"
	longMsg = `
pkgsync status PACKAGE [flags]

Shows a package revision: its lifecycle, repository context, the actions it
currently offers, and the state of the sync deploying it.

Args:

PACKAGE:
  Name of the package revision to show.
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
		Use:     "status PACKAGE",
		Short:   "Shows the lifecycle and sync state of a package revision.",
		Long:    longMsg,
		Example: "pkgsync status git-repository:package-name:v3",
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
	view    *pkgview.View
	Command *cobra.Command
}

func (r *runner) preRunE(cmd *cobra.Command, args []string) error {
	const op errors.Op = command + ".preRunE"

	c, err := porch.CreateClientWithFlags(r.cfg)
	if err != nil {
		return errors.E(op, err)
	}
	rc, err := porch.CreateRESTClient(r.cfg)
	if err != nil {
		return errors.E(op, err)
	}
	r.view = pkgview.New(c, rc, nil)
	return nil
}

func (r *runner) runE(cmd *cobra.Command, args []string) error {
	const op errors.Op = command + ".runE"

	name := args[0]
	key := client.ObjectKey{Namespace: *r.cfg.Namespace, Name: name}
	if err := r.view.Load(r.ctx, key); err != nil {
		return errors.E(op, err)
	}
	if err := r.view.ResolveSync(r.ctx); err != nil {
		return errors.E(op, err)
	}

	revision := r.view.Revision()
	summary := r.view.Summary()

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendRow(table.Row{"Package", revision.Spec.PackageName})
	t.AppendRow(table.Row{"Revision", revision.Spec.Revision})
	t.AppendRow(table.Row{"Repository", summary.Repository.Name})
	t.AppendRow(table.Row{"Deployment repository", summary.IsDeployment()})
	t.AppendRow(table.Row{"Downstream repositories", len(summary.Downstream)})
	t.AppendRow(table.Row{"Lifecycle", revision.Spec.Lifecycle})
	t.AppendRow(table.Row{"Sync", syncCell(r.view)})
	t.AppendRow(table.Row{"Sync status", syncStatusCell(r.view)})
	t.AppendRow(table.Row{"Actions", actionsCell(r.view.Actions())})
	t.Render()

	return nil
}

func syncCell(v *pkgview.View) string {
	if rs := v.Sync(); rs != nil {
		return rs.GetName()
	}
	return "-"
}

func syncStatusCell(v *pkgview.View) string {
	state, severity, known := v.SyncStatus()
	if !known {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", state, severity)
}

func actionsCell(actions []lifecycle.Action) string {
	if len(actions) == 0 {
		return "-"
	}
	names := make([]string, 0, len(actions))
	for _, a := range actions {
		names = append(names, string(a))
	}
	return strings.Join(names, ", ")
}
