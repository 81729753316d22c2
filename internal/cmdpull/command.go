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

package cmdpull

import (
	"context"
	"fmt"
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
	command = "cmdpull"
	longMsg = `
pkgsync pull PACKAGE [DIR] [flags]

Reads the content of a package revision.

Args:

PACKAGE:
  Name of the package revision to read.

DIR:
  Optional local directory to write the package files to. Without it the
  content is printed to stdout as a single YAML document keyed by file path.
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
		Use:     "pull PACKAGE [DIR]",
		Aliases: []string{"source", "read"},
		Short:   "Reads the content of a package revision.",
		Long:    longMsg,
		Example: "pkgsync pull git-repository:package-name:v3 ./package-dir",
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
	resources := &porchapi.PackageRevisionResources{}
	key := client.ObjectKey{Namespace: *r.cfg.Namespace, Name: name}
	if err := r.client.Get(r.ctx, key, resources); err != nil {
		return errors.E(op, errors.Pkg(name), err)
	}

	if len(args) > 1 {
		if err := writeToDir(args[1], resources.Spec.Resources); err != nil {
			return errors.E(op, errors.Pkg(name), err)
		}
		return nil
	}

	out, err := yaml.Marshal(resources.Spec.Resources)
	if err != nil {
		return errors.E(op, errors.Pkg(name), err)
	}
	if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return errors.E(op, err)
	}
	return nil
}

func writeToDir(dir string, resources map[string]string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for file, contents := range resources {
		if !filepath.IsLocal(file) {
			return fmt.Errorf("invalid resource path %q", file)
		}
		path := filepath.Join(dir, file)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
			return err
		}
	}
	return nil
}
