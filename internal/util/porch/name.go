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

package porch

import (
	"fmt"
	"strings"
)

// PackageName is the parsed form of a package revision identifier
// ("repository:package:revision").
type PackageName struct {
	Original   string
	Repository string
	Package    string
	Revision   string
}

func ParsePackageName(name string) (PackageName, error) {
	parts := strings.Split(name, ":")
	if len(parts) != 3 {
		return PackageName{}, fmt.Errorf("invalid package name: %q", name)
	}
	return PackageName{
		Original:   name,
		Repository: parts[0],
		Package:    parts[1],
		Revision:   parts[2],
	}, nil
}

func (name PackageName) Identifier() string {
	return name.String()
}

func (name PackageName) String() string {
	return fmt.Sprintf("%s:%s:%s", name.Repository, name.Package, name.Revision)
}

// SanitizeName turns a package revision identifier into a string usable as a
// Kubernetes object name by replacing every ':' with '-'.
func SanitizeName(name string) string {
	return strings.ReplaceAll(name, ":", "-")
}
