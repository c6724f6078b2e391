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

func NewChoice(patterns ...Pattern) *Choice {
	return &Choice{Patterns: patterns}
}

func NewSequence(patterns ...Pattern) *Sequence {
	return &Sequence{Patterns: patterns}
}

func NewBind(name string, pattern Pattern) *Bind {
	return &Bind{Name: name, Pattern: pattern}
}

func NewNegate(pattern Pattern) *Negate       { return &Negate{Pattern: pattern} }
func NewLookahead(pattern Pattern) *Lookahead { return &Lookahead{Pattern: pattern} }
func NewRepeat(pattern Pattern) *Repeat       { return &Repeat{Pattern: pattern} }
func NewRepeat1(pattern Pattern) *Repeat1     { return &Repeat1{Pattern: pattern} }
func NewOptional(pattern Pattern) *Optional   { return &Optional{Pattern: pattern} }

func NewDelimited(element, delimiter Pattern) *Delimited {
	return &Delimited{Element: element, Delimiter: delimiter}
}

func NewDelimited1(element, delimiter Pattern) *Delimited1 {
	return &Delimited1{Element: element, Delimiter: delimiter}
}

func NewImmediate(code string) *Immediate { return &Immediate{Code: code} }
func NewAction(code string) *Action       { return &Action{Code: code} }
func NewPredicate(code string) *Predicate { return &Predicate{Code: code} }

func NewPCall(name string, patterns ...Pattern) *PCall {
	return &PCall{Name: name, Patterns: patterns}
}

// NewCall creates a call to the named rule; code is the argument expression, or empty for no argument.
func NewCall(name string, code string) *Call {
	return &Call{Name: name, Code: code}
}

func NewTokenTag(name string) *TokenTag   { return &TokenTag{Name: name} }
func NewTokenText(text string) *TokenText { return &TokenText{Text: text} }

// NewRule creates a rule with the given pattern and parameter names.
func NewRule(name string, pattern Pattern, params ...string) *Rule {
	return &Rule{Name: name, Parameters: params, Pattern: pattern}
}

// NewGrammar creates a grammar from a list of rules.
func NewGrammar(name string, rules ...*Rule) *Grammar {
	return &Grammar{Name: name, Rules: rules}
}
