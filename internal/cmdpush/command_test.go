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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Kptfile"), []byte("apiVersion: kpt.dev/v1\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "deploy.yaml"), []byte("kind: Deployment\n"), 0644))

	resources, err := readFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"Kptfile":                              "apiVersion: kpt.dev/v1\n",
		filepath.Join("nested", "deploy.yaml"): "kind: Deployment\n",
	}, resources)
}

func TestReadFromReader(t *testing.T) {
	in := strings.NewReader("Kptfile: |\n  apiVersion: kpt.dev/v1\n")

	resources, err := readFromReader(in)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"Kptfile": "apiVersion: kpt.dev/v1\n",
	}, resources)
}
