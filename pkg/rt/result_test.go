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

package rt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailedIsDistinctFromNil(t *testing.T) {
	t.Parallel()

	assert.False(t, Failed.OK())
	assert.True(t, Matched(nil).OK())
	assert.Nil(t, Failed.Value())
	assert.Nil(t, Matched(nil).Value())
	assert.NotEqual(t, Failed, Matched(nil))
	assert.Equal(t, "FAIL", Failed.String())
	assert.Equal(t, "42", Matched(42).String())
}

func TestInvoke(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Matched("x"), Invoke(Thunk(func() Result { return Matched("x") })))
	assert.Equal(t, Failed, Invoke(func() Result { return Failed }))
	assert.Equal(t, Matched(nil), Invoke(func() bool { return true }))
	assert.Equal(t, Failed, Invoke(func() bool { return false }))
	assert.Equal(t, Matched(7), Invoke(func() interface{} { return 7 }))
	assert.Panics(t, func() { Invoke(42) })
}

func TestListAppend(t *testing.T) {
	t.Parallel()

	l := List{}
	l = l.Append(Matched("a")).Append(Matched(nil))
	assert.Equal(t, List{"a", nil}, l)
	assert.Panics(t, func() { l.Append(Failed) })
}

func TestTruthy(t *testing.T) {
	t.Parallel()

	falsy := []interface{}{nil, false, "", 0, int64(0), uint8(0), 0.0, List{}, []string{}, Failed, (*int)(nil)}
	for _, v := range falsy {
		assert.False(t, Truthy(v), "%#v should be false", v)
	}
	one := 1
	truthy := []interface{}{true, "x", 3, -1, 0.5, List{nil}, map[string]int{"a": 1}, Matched(nil), &one, struct{}{}}
	for _, v := range truthy {
		assert.True(t, Truthy(v), "%#v should be true", v)
	}
}
