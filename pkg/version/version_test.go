// Copyright 2016-2018, Pulumi Corporation.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withVersion(v string) func() {
	old := Version
	Version = v
	return func() { Version = old }
}

func TestSemver(t *testing.T) {
	defer withVersion("v1.2.3")()
	v, err := Semver()
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v.String())

	Version = "not-a-version"
	_, err = Semver()
	assert.Error(t, err)
}

func TestCompatible(t *testing.T) {
	cases := []struct {
		mine, theirs string
		expected     bool
	}{
		{"1.2.3", "1.0.0", true},
		{"1.2.3", "2.0.0", false},
		{"0.1.0", "0.1.7", true},
		{"0.1.0", "0.2.0", false},
		{"0.1.0-dev", "v0.1.0", true},
	}
	for _, c := range cases {
		restore := withVersion(c.mine)
		ok, err := Compatible(c.theirs)
		restore()
		require.NoError(t, err)
		assert.Equal(t, c.expected, ok, "%v vs %v", c.mine, c.theirs)
	}

	defer withVersion("1.0.0")()
	_, err := Compatible("junk")
	assert.Error(t, err)
}
