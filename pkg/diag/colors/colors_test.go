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
package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorizeTextStripsPlainText(t *testing.T) {
	assert.Equal(t, "no directives here", ColorizeText("no directives here"))
}

func TestColorizeTextCompilesDirectives(t *testing.T) {
	s := ColorizeText(Red + "error" + Reset)
	assert.Contains(t, s, "error")
	assert.NotContains(t, s, colorLeft)
	assert.NotContains(t, s, colorRight)
}
