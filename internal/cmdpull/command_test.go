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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteToDir(t *testing.T) {
	dir := t.TempDir()

	err := writeToDir(dir, map[string]string{
		"Kptfile":            "apiVersion: kpt.dev/v1\n",
		"nested/deploy.yaml": "kind: Deployment\n",
	})
	require.NoError(t, err)

	contents, err := os.ReadFile(filepath.Join(dir, "Kptfile"))
	require.NoError(t, err)
	assert.Equal(t, "apiVersion: kpt.dev/v1\n", string(contents))

	contents, err = os.ReadFile(filepath.Join(dir, "nested", "deploy.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "kind: Deployment\n", string(contents))
}

func TestWriteToDirRejectsEscapingPaths(t *testing.T) {
	err := writeToDir(t.TempDir(), map[string]string{
		"../escape.yaml": "kind: Deployment\n",
	})
	require.Error(t, err)
}
