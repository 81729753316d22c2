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

// Package cmdsync contains the sync command group, which manages the
// RootSync resources deploying published package revisions.
package cmdsync

import (
	"context"

	"github.com/kptdev/pkgsync/internal/cmdsync/create"
	"github.com/kptdev/pkgsync/internal/cmdsync/delete"
	"github.com/kptdev/pkgsync/internal/cmdsync/get"
	"github.com/kptdev/pkgsync/internal/cmdsync/status"
	"github.com/spf13/cobra"
	"k8s.io/cli-runtime/pkg/genericclioptions"
)

func NewCommand(ctx context.Context, rcg *genericclioptions.ConfigFlags) *cobra.Command {
	sync := &cobra.Command{
		Use:   "sync",
		Short: "Manages the syncs deploying published package revisions.",
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
	}

	sync.AddCommand(
		create.NewCommand(ctx, rcg),
		get.NewCommand(ctx, rcg),
		status.NewCommand(ctx, rcg),
		delete.NewCommand(ctx, rcg),
	)

	return sync
}
