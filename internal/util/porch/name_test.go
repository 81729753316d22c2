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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePackageName(t *testing.T) {
	testCases := map[string]struct {
		name    string
		parsed  PackageName
		invalid bool
	}{
		"valid": {
			name: "blueprints:istions:v3",
			parsed: PackageName{
				Original:   "blueprints:istions:v3",
				Repository: "blueprints",
				Package:    "istions",
				Revision:   "v3",
			},
		},
		"missing revision": {
			name:    "blueprints:istions",
			invalid: true,
		},
		"empty": {
			name:    "",
			invalid: true,
		},
		"too many segments": {
			name:    "a:b:c:d",
			invalid: true,
		},
	}

	for tn := range testCases {
		tc := testCases[tn]
		t.Run(tn, func(t *testing.T) {
			parsed, err := ParsePackageName(tc.name)
			if tc.invalid {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.parsed, parsed)
			assert.Equal(t, tc.name, parsed.String())
		})
	}
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "repo-pkg-v1", SanitizeName("repo:pkg:v1"))
	assert.Equal(t, "already-clean", SanitizeName("already-clean"))
}
