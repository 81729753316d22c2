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

package main

import (
	"context"
	"flag"
	"os"

	"github.com/kptdev/pkgsync/commands"
	"github.com/kptdev/pkgsync/internal/util/cmdutil"
	"k8s.io/klog/v2"

	_ "k8s.io/client-go/plugin/pkg/client/auth"
)

var version = "unknown"

func main() {
	klog.InitFlags(flag.CommandLine)

	cmd := commands.NewPkgSyncCommand(context.Background(), version)

	// enable stack traces
	cmd.PersistentFlags().BoolVar(&cmdutil.StackOnError, "stack-trace", false,
		"print a stack-trace on failure")

	if err := cmd.Execute(); err != nil {
		cmdutil.HandleError(os.Stderr, err)
		os.Exit(1)
	}
}
