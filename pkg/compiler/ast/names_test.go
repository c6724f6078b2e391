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

package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionPreservesFirstSeenOrder(t *testing.T) {
	t.Parallel()

	a := Names{"x", "y"}
	b := Names{"z", "x", "w"}
	assert.Equal(t, Names{"x", "y", "z", "w"}, Union(a, b))
	assert.Equal(t, Names{"z", "x", "w", "y"}, Union(b, a))

	// Neither input is modified.
	assert.Equal(t, Names{"x", "y"}, a)
	assert.Equal(t, Names{"z", "x", "w"}, b)
}

func TestUnionDeduplicatesWithinAnInput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Names{"a", "b"}, Union(Names{"a", "a", "b"}, nil))
	assert.Equal(t, Names{}, Union(nil, nil))
}

func TestAdd(t *testing.T) {
	t.Parallel()

	base := Names{"a"}
	assert.Equal(t, Names{"a", "b"}, base.Add("b"))
	assert.Equal(t, Names{"a"}, base.Add("a"))
	assert.Equal(t, Names{"a"}, base)
	assert.True(t, base.Add("b").Contains("b"))
	assert.False(t, base.Contains("b"))
}
