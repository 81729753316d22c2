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

// Package commands assembles the pkgsync command tree.
package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/kptdev/pkgsync/internal/cmdapprove"
	"github.com/kptdev/pkgsync/internal/cmddeploy"
	"github.com/kptdev/pkgsync/internal/cmdpropose"
	"github.com/kptdev/pkgsync/internal/cmdpull"
	"github.com/kptdev/pkgsync/internal/cmdpush"
	"github.com/kptdev/pkgsync/internal/cmdreject"
	"github.com/kptdev/pkgsync/internal/cmdstatus"
	"github.com/kptdev/pkgsync/internal/cmdsync"
	"github.com/spf13/cobra"
	"k8s.io/cli-runtime/pkg/genericclioptions"
	"k8s.io/client-go/rest"
)

// NewPkgSyncCommand returns the root command of the pkgsync CLI.
func NewPkgSyncCommand(ctx context.Context, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "pkgsync",
		Short: "Manage the lifecycle and deployment of Porch package revisions.",
		Long: `pkgsync drives Porch package revisions from Draft through Proposed to
Published, and deploys published revisions to live clusters via Config Sync
RootSync resources.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := cmd.Flags().GetBool("help")
			if err != nil {
				return err
			}
			if h {
				return cmd.Help()
			}
			return cmd.Usage()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := root.PersistentFlags()

	kubeflags := genericclioptions.NewConfigFlags(true)
	kubeflags.AddFlags(pf)

	kubeflags.WrapConfigFn = func(rc *rest.Config) *rest.Config {
		rc.UserAgent = fmt.Sprintf("pkgsync/%s", version)
		return rc
	}

	pf.AddGoFlagSet(flag.CommandLine)

	root.AddCommand(
		cmdpropose.NewCommand(ctx, kubeflags),
		cmdreject.NewCommand(ctx, kubeflags),
		cmdapprove.NewCommand(ctx, kubeflags),
		cmdpull.NewCommand(ctx, kubeflags),
		cmdpush.NewCommand(ctx, kubeflags),
		cmddeploy.NewCommand(ctx, kubeflags),
		cmdstatus.NewCommand(ctx, kubeflags),
		cmdsync.NewCommand(ctx, kubeflags),
	)

	return root
}
