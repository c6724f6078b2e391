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

// Pattern is a matching construct inside of a rule.  Every pattern carries the list of names its execution may bind;
// that list is empty until the binding analysis has run.
type Pattern interface {
	Node
	pattern()
	GetBound() Names      // the names bound by this pattern, in declaration order.
	SetBound(bound Names) // replaces the names bound by this pattern.
}

type PatternNode struct {
	Bound Names `json:"bound,omitempty" yaml:"bound,omitempty"`
}

func (node *PatternNode) nd()                  {}
func (node *PatternNode) pattern()             {}
func (node *PatternNode) GetBound() Names      { return node.Bound }
func (node *PatternNode) SetBound(bound Names) { node.Bound = bound }

/* Composites */

// Choice tries each alternative in order and commits to the first one that matches.
type Choice struct {
	PatternNode
	Patterns []Pattern `json:"patterns" yaml:"patterns"`
}

var _ Pattern = (*Choice)(nil)

const ChoiceKind NodeKind = "Choice"

func (node *Choice) GetKind() NodeKind { return ChoiceKind }

// Sequence matches each of its patterns in order, failing as soon as one of them fails.
type Sequence struct {
	PatternNode
	Patterns []Pattern `json:"patterns" yaml:"patterns"`
}

var _ Pattern = (*Sequence)(nil)

const SequenceKind NodeKind = "Sequence"

func (node *Sequence) GetKind() NodeKind { return SequenceKind }

// Bind assigns the result of its pattern, successful or not, to a rule-local variable.
type Bind struct {
	PatternNode
	Name    string  `json:"name" yaml:"name"`
	Pattern Pattern `json:"pattern" yaml:"pattern"`
}

var _ Pattern = (*Bind)(nil)

const BindKind NodeKind = "Bind"

func (node *Bind) GetKind() NodeKind { return BindKind }

// Negate succeeds, without consuming input, only if its pattern fails.
type Negate struct {
	PatternNode
	Pattern Pattern `json:"pattern" yaml:"pattern"`
}

var _ Pattern = (*Negate)(nil)

const NegateKind NodeKind = "Negate"

func (node *Negate) GetKind() NodeKind { return NegateKind }

// Lookahead matches its pattern and then rewinds, yielding the pattern's own result.
type Lookahead struct {
	PatternNode
	Pattern Pattern `json:"pattern" yaml:"pattern"`
}

var _ Pattern = (*Lookahead)(nil)

const LookaheadKind NodeKind = "Lookahead"

func (node *Lookahead) GetKind() NodeKind { return LookaheadKind }

// Repeat matches its pattern zero or more times.
type Repeat struct {
	PatternNode
	Pattern Pattern `json:"pattern" yaml:"pattern"`
}

var _ Pattern = (*Repeat)(nil)

const RepeatKind NodeKind = "Repeat"

func (node *Repeat) GetKind() NodeKind { return RepeatKind }

// Repeat1 matches its pattern one or more times.
type Repeat1 struct {
	PatternNode
	Pattern Pattern `json:"pattern" yaml:"pattern"`
}

var _ Pattern = (*Repeat1)(nil)

const Repeat1Kind NodeKind = "Repeat1"

func (node *Repeat1) GetKind() NodeKind { return Repeat1Kind }

// Delimited matches zero or more elements separated by delimiters.
type Delimited struct {
	PatternNode
	Element   Pattern `json:"element" yaml:"element"`
	Delimiter Pattern `json:"delimiter" yaml:"delimiter"`
}

var _ Pattern = (*Delimited)(nil)

const DelimitedKind NodeKind = "Delimited"

func (node *Delimited) GetKind() NodeKind { return DelimitedKind }

// Delimited1 matches one or more elements separated by delimiters.
type Delimited1 struct {
	PatternNode
	Element   Pattern `json:"element" yaml:"element"`
	Delimiter Pattern `json:"delimiter" yaml:"delimiter"`
}

var _ Pattern = (*Delimited1)(nil)

const Delimited1Kind NodeKind = "Delimited1"

func (node *Delimited1) GetKind() NodeKind { return Delimited1Kind }

// Optional matches its pattern if it can, and otherwise succeeds with no value.
type Optional struct {
	PatternNode
	Pattern Pattern `json:"pattern" yaml:"pattern"`
}

var _ Pattern = (*Optional)(nil)

const OptionalKind NodeKind = "Optional"

func (node *Optional) GetKind() NodeKind { return OptionalKind }

/* Host code */

// Immediate invokes a zero-argument recognizer supplied by the host.
type Immediate struct {
	PatternNode
	Code string `json:"code" yaml:"code"`
}

var _ Pattern = (*Immediate)(nil)

const ImmediateKind NodeKind = "Immediate"

func (node *Immediate) GetKind() NodeKind { return ImmediateKind }

// Action always succeeds, producing the value of a host expression over the bound names.
type Action struct {
	PatternNode
	Code string `json:"code" yaml:"code"`
}

var _ Pattern = (*Action)(nil)

const ActionKind NodeKind = "Action"

func (node *Action) GetKind() NodeKind { return ActionKind }

// Predicate succeeds with no value when a host boolean expression holds, and fails otherwise.
type Predicate struct {
	PatternNode
	Code string `json:"code" yaml:"code"`
}

var _ Pattern = (*Predicate)(nil)

const PredicateKind NodeKind = "Predicate"

func (node *Predicate) GetKind() NodeKind { return PredicateKind }

/* Rule invocation */

// PCall invokes a rule, passing each of its patterns as a deferred sub-parser.
type PCall struct {
	PatternNode
	Name     string    `json:"name" yaml:"name"`
	Patterns []Pattern `json:"patterns" yaml:"patterns"`
}

var _ Pattern = (*PCall)(nil)

const PCallKind NodeKind = "PCall"

func (node *PCall) GetKind() NodeKind { return PCallKind }

// Call invokes a rule with a plain host argument expression.  An empty Code invokes the rule with no arguments.
type Call struct {
	PatternNode
	Name string `json:"name" yaml:"name"`
	Code string `json:"code,omitempty" yaml:"code,omitempty"`
}

var _ Pattern = (*Call)(nil)

const CallKind NodeKind = "Call"

func (node *Call) GetKind() NodeKind { return CallKind }

/* Terminals */

// TokenTag matches a single terminal by its tag.
type TokenTag struct {
	PatternNode
	Name string `json:"name" yaml:"name"`
}

var _ Pattern = (*TokenTag)(nil)

const TokenTagKind NodeKind = "TokenTag"

func (node *TokenTag) GetKind() NodeKind { return TokenTagKind }

// TokenText matches a single terminal by its literal text.  Text holds the literal itself, without quotes.
type TokenText struct {
	PatternNode
	Text string `json:"text" yaml:"text"`
}

var _ Pattern = (*TokenText)(nil)

const TokenTextKind NodeKind = "TokenText"

func (node *TokenText) GetKind() NodeKind { return TokenTextKind }
