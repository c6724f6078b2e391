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
	"reflect"

	"github.com/pulumi/pegc/pkg/util/contract"
)

// Equal reports whether two patterns are structurally identical.  Bound name lists are derived data and are ignored.
func Equal(a, b Pattern) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.GetKind() != b.GetKind() {
		return false
	}

	switch x := a.(type) {
	case *Choice:
		return equalAll(x.Patterns, b.(*Choice).Patterns)
	case *Sequence:
		return equalAll(x.Patterns, b.(*Sequence).Patterns)
	case *Bind:
		y := b.(*Bind)
		return x.Name == y.Name && Equal(x.Pattern, y.Pattern)
	case *Negate:
		return Equal(x.Pattern, b.(*Negate).Pattern)
	case *Lookahead:
		return Equal(x.Pattern, b.(*Lookahead).Pattern)
	case *Repeat:
		return Equal(x.Pattern, b.(*Repeat).Pattern)
	case *Repeat1:
		return Equal(x.Pattern, b.(*Repeat1).Pattern)
	case *Optional:
		return Equal(x.Pattern, b.(*Optional).Pattern)
	case *Delimited:
		y := b.(*Delimited)
		return Equal(x.Element, y.Element) && Equal(x.Delimiter, y.Delimiter)
	case *Delimited1:
		y := b.(*Delimited1)
		return Equal(x.Element, y.Element) && Equal(x.Delimiter, y.Delimiter)
	case *Immediate:
		return x.Code == b.(*Immediate).Code
	case *Action:
		return x.Code == b.(*Action).Code
	case *Predicate:
		return x.Code == b.(*Predicate).Code
	case *PCall:
		y := b.(*PCall)
		return x.Name == y.Name && equalAll(x.Patterns, y.Patterns)
	case *Call:
		y := b.(*Call)
		return x.Name == y.Name && x.Code == y.Code
	case *TokenTag:
		return x.Name == b.(*TokenTag).Name
	case *TokenText:
		return x.Text == b.(*TokenText).Text
	default:
		contract.Failf("Unrecognized pattern kind during comparison: %v", reflect.TypeOf(a))
		return false
	}
}

func equalAll(as, bs []Pattern) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !Equal(as[i], bs[i]) {
			return false
		}
	}
	return true
}

// EqualGrammars reports whether two grammars have the same name and structurally identical rules, in the same order.
func EqualGrammars(a, b *Grammar) bool {
	if a.Name != b.Name || len(a.Rules) != len(b.Rules) {
		return false
	}
	for i, ra := range a.Rules {
		rb := b.Rules[i]
		if ra.Name != rb.Name || !equalStrings(ra.Parameters, rb.Parameters) || !Equal(ra.Pattern, rb.Pattern) {
			return false
		}
	}
	return true
}

func equalStrings(as, bs []string) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
