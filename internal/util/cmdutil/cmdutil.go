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

// Package cmdutil holds helpers shared by the pkgsync commands.
package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"os"

	goerrors "github.com/go-errors/errors"
)

const (
	StackTraceOnErrors = "COBRA_STACK_TRACE_ON_ERRORS"
	trueString         = "true"
)

// StackOnError if true, will print a stack trace on failure.
var StackOnError bool

func PrintErrorStacktrace() bool {
	e := os.Getenv(StackTraceOnErrors)
	if StackOnError || e == trueString || e == "1" {
		return true
	}
	return false
}

// HandleError prints the error and, when stack traces are enabled, the stack
// it was raised at.
func HandleError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	if PrintErrorStacktrace() {
		var withStack *goerrors.Error
		if !errors.As(err, &withStack) {
			withStack = goerrors.Wrap(err, 1)
		}
		fmt.Fprint(w, withStack.ErrorStack())
	}
}
