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

package cmdpush

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	porchapi "github.com/kptdev/pkgsync/api/porch/v1alpha1"
	"github.com/kptdev/pkgsync/internal/errors"
	"github.com/kptdev/pkgsync/internal/util/porch"
	"github.com/spf13/cobra"
	"k8s.io/cli-runtime/pkg/genericclioptions"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/yaml"
)

const (
	command = "cmdpush"
	longMsg = `
pkgsync push PACKAGE [DIR] [flags]

Writes package content into a draft package revision. The revision is
re-rendered server side; any render failure is reported.

Args:

PACKAGE:
  Name of the package revision to write.

DIR:
  Optional local directory to read the package files from. Without it a
  single YAML document keyed by file path is read from stdin.
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
		Use:     "push PACKAGE [DIR]",
		Aliases: []string{"sink", "write"},
		Short:   "Writes package content into a draft package revision.",
		Long:    longMsg,
		Example: "pkgsync push git-repository:package-name:v3 ./package-dir",
		Args:    cobra.RangeArgs(1, 2),
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

	c, err := porch.CreateClientWithFlags(r.cfg)
	if err != nil {
		return errors.E(op, err)
	}
	r.client = c
	return nil
}

func (r *runner) runE(cmd *cobra.Command, args []string) error {
	const op errors.Op = command + ".runE"

	name := args[0]

	var content map[string]string
	var err error
	if len(args) > 1 {
		content, err = readFromDir(args[1])
	} else {
		content, err = readFromReader(cmd.InOrStdin())
	}
	if err != nil {
		return errors.E(op, errors.Pkg(name), err)
	}

	key := client.ObjectKey{Namespace: *r.cfg.Namespace, Name: name}
	resources := &porchapi.PackageRevisionResources{}
	if err := r.client.Get(r.ctx, key, resources); err != nil {
		return errors.E(op, errors.Pkg(name), err)
	}

	resources.Spec.Resources = content
	if err := r.client.Update(r.ctx, resources); err != nil {
		return errors.E(op, errors.Pkg(name), err)
	}

	if renderErr := resources.Status.RenderStatus.Err; renderErr != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "render failed: %s\n", renderErr)
	}
	return nil
}

func readFromDir(dir string) (map[string]string, error) {
	resources := map[string]string{}
	if err := filepath.Walk(dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		contents, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		resources[rel] = string(contents)
		return nil
	}); err != nil {
		return nil, err
	}
	return resources, nil
}

func readFromReader(in io.Reader) (map[string]string, error) {
	raw, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	resources := map[string]string{}
	if err := yaml.Unmarshal(raw, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}
