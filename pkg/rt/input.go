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
	"unicode"
	"unicode/utf8"

	"github.com/pulumi/pegc/pkg/util/contract"
)

// Input is the stream a generated parser reads from.  Positions are opaque offsets that are only ever handed back to
// SetPosition to backtrack.
type Input interface {
	// Position returns the current position of the cursor.
	Position() int
	// SetPosition moves the cursor back to a position previously returned by Position.
	SetPosition(pos int)
	// Tag matches and consumes a single terminal by its tag.
	Tag(name string) Result
	// Text matches and consumes a single terminal by its literal text.
	Text(lit string) Result
}

// Character classes understood by Scanner.Tag.
var charClasses = map[string]func(r rune) bool{
	"any":   func(r rune) bool { return true },
	"alpha": unicode.IsLetter,
	"digit": unicode.IsDigit,
	"alnum": func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) },
	"space": unicode.IsSpace,
	"upper": unicode.IsUpper,
	"lower": unicode.IsLower,
}

// EOFTag is the tag that matches, without consuming anything, only at the end of the input.
const EOFTag = "eof"

// IsCharClass returns true if name is a tag that Scanner.Tag understands.
func IsCharClass(name string) bool {
	_, has := charClasses[name]
	return has || name == EOFTag
}

// CharClasses returns the names of every tag Scanner.Tag understands.
func CharClasses() []string {
	return []string{"alnum", "alpha", "any", "digit", EOFTag, "lower", "space", "upper"}
}

// Scanner is the Input for scannerless parsers.  It matches characters directly: Text matches a literal string and
// Tag matches one character of a named class, both yielding the matched text.
type Scanner struct {
	src string
	pos int // a byte offset into src.
}

var _ Input = (*Scanner)(nil)

func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

func (s *Scanner) Position() int { return s.pos }

func (s *Scanner) SetPosition(pos int) {
	contract.Assertf(pos >= 0 && pos <= len(s.src), "position %v is out of range", pos)
	s.pos = pos
}

// AtEnd returns true once every character has been consumed.
func (s *Scanner) AtEnd() bool { return s.pos == len(s.src) }

// Remaining returns the input that has not been consumed yet.
func (s *Scanner) Remaining() string { return s.src[s.pos:] }

func (s *Scanner) Tag(name string) Result {
	if name == EOFTag {
		if s.AtEnd() {
			return Matched(nil)
		}
		return Failed
	}

	class, has := charClasses[name]
	contract.Assertf(has, "unrecognized character class '%v'", name)
	if s.AtEnd() {
		return Failed
	}
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	if !class(r) {
		return Failed
	}
	s.pos += size
	return Matched(string(r))
}

func (s *Scanner) Text(lit string) Result {
	if len(s.src)-s.pos < len(lit) || s.src[s.pos:s.pos+len(lit)] != lit {
		return Failed
	}
	s.pos += len(lit)
	return Matched(lit)
}

// Token is a single terminal produced by a lexer.
type Token struct {
	Tag   string      // the token's kind, matched by Tag.
	Text  string      // the token's source text, matched by Text.
	Value interface{} // an optional decoded value, such as a number.
}

// TokenStream is the Input for token mode parsers.  Both matchers consume one token and yield it.
type TokenStream struct {
	tokens []Token
	pos    int // an index into tokens.
}

var _ Input = (*TokenStream)(nil)

func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{tokens: tokens}
}

func (ts *TokenStream) Position() int { return ts.pos }

func (ts *TokenStream) SetPosition(pos int) {
	contract.Assertf(pos >= 0 && pos <= len(ts.tokens), "position %v is out of range", pos)
	ts.pos = pos
}

// AtEnd returns true once every token has been consumed.
func (ts *TokenStream) AtEnd() bool { return ts.pos == len(ts.tokens) }

func (ts *TokenStream) Tag(name string) Result {
	if ts.AtEnd() || ts.tokens[ts.pos].Tag != name {
		return Failed
	}
	tok := ts.tokens[ts.pos]
	ts.pos++
	return Matched(tok)
}

func (ts *TokenStream) Text(lit string) Result {
	if ts.AtEnd() || ts.tokens[ts.pos].Text != lit {
		return Failed
	}
	tok := ts.tokens[ts.pos]
	ts.pos++
	return Matched(tok)
}
