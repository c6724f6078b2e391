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

func TestScannerText(t *testing.T) {
	t.Parallel()

	s := NewScanner("let x")
	assert.Equal(t, Failed, s.Text("var"))
	assert.Equal(t, 0, s.Position())
	assert.Equal(t, Matched("let"), s.Text("let"))
	assert.Equal(t, 3, s.Position())
	assert.Equal(t, Failed, s.Text(" x y"))
	assert.Equal(t, " x", s.Remaining())

	s.SetPosition(0)
	assert.Equal(t, Matched("let x"), s.Text("let x"))
	assert.True(t, s.AtEnd())
}

func TestScannerTag(t *testing.T) {
	t.Parallel()

	s := NewScanner("a1 É")
	assert.Equal(t, Failed, s.Tag("digit"))
	assert.Equal(t, Matched("a"), s.Tag("alpha"))
	assert.Equal(t, Matched("1"), s.Tag("alnum"))
	assert.Equal(t, Failed, s.Tag(EOFTag))
	assert.Equal(t, Matched(" "), s.Tag("space"))
	assert.Equal(t, Failed, s.Tag("lower"))
	assert.Equal(t, Matched("É"), s.Tag("upper"))
	assert.Equal(t, Failed, s.Tag("any"))
	assert.Equal(t, Matched(nil), s.Tag(EOFTag))
	assert.True(t, s.AtEnd())

	assert.Panics(t, func() { NewScanner("x").Tag("letter") })
}

func TestCharClasses(t *testing.T) {
	t.Parallel()

	for _, name := range CharClasses() {
		assert.True(t, IsCharClass(name), name)
	}
	assert.False(t, IsCharClass("ident"))
}

func TestTokenStream(t *testing.T) {
	t.Parallel()

	num := Token{Tag: "num", Text: "12", Value: 12}
	plus := Token{Tag: "op", Text: "+"}
	ts := NewTokenStream([]Token{num, plus})

	assert.Equal(t, Failed, ts.Tag("op"))
	assert.Equal(t, Matched(num), ts.Tag("num"))
	assert.Equal(t, Failed, ts.Text("-"))
	assert.Equal(t, Matched(plus), ts.Text("+"))
	assert.True(t, ts.AtEnd())
	assert.Equal(t, Failed, ts.Tag("num"))

	ts.SetPosition(1)
	assert.Equal(t, 1, ts.Position())
	assert.Panics(t, func() { ts.SetPosition(3) })
}
