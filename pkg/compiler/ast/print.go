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
	"bytes"
	"reflect"
	"strconv"
	"strings"

	"github.com/pulumi/pegc/pkg/util/contract"
)

// String renders a pattern in a compact PEG-like notation, for logs and test failures:
//
//     (a | b)        Choice            x:p            Bind
//     (a b)          Sequence          !p  &p         Negate, Lookahead
//     p*  p+  p?     Repeat, Repeat1, Optional
//     {e / d}*       Delimited         {e / d}+       Delimited1
//     @{c}  ={c}  ?{c}                 Immediate, Action, Predicate
//     R  R(c)  R<p, q>                 Call, Call with argument, PCall
//     #tag  "text"                     TokenTag, TokenText
func String(p Pattern) string {
	var buffer bytes.Buffer
	printPattern(&buffer, p)
	return buffer.String()
}

// RuleString renders a rule as `Name(params) := pattern`.
func RuleString(rule *Rule) string {
	var buffer bytes.Buffer
	buffer.WriteString(rule.Name)
	if len(rule.Parameters) > 0 {
		buffer.WriteString("(")
		buffer.WriteString(strings.Join(rule.Parameters, ", "))
		buffer.WriteString(")")
	}
	buffer.WriteString(" := ")
	printPattern(&buffer, rule.Pattern)
	return buffer.String()
}

func printPattern(buffer *bytes.Buffer, p Pattern) {
	switch n := p.(type) {
	case *Choice:
		printList(buffer, n.Patterns, " | ")
	case *Sequence:
		printList(buffer, n.Patterns, " ")
	case *Bind:
		buffer.WriteString(n.Name)
		buffer.WriteString(":")
		printPattern(buffer, n.Pattern)
	case *Negate:
		buffer.WriteString("!")
		printPattern(buffer, n.Pattern)
	case *Lookahead:
		buffer.WriteString("&")
		printPattern(buffer, n.Pattern)
	case *Repeat:
		printPattern(buffer, n.Pattern)
		buffer.WriteString("*")
	case *Repeat1:
		printPattern(buffer, n.Pattern)
		buffer.WriteString("+")
	case *Optional:
		printPattern(buffer, n.Pattern)
		buffer.WriteString("?")
	case *Delimited:
		printDelimited(buffer, n.Element, n.Delimiter)
		buffer.WriteString("*")
	case *Delimited1:
		printDelimited(buffer, n.Element, n.Delimiter)
		buffer.WriteString("+")
	case *Immediate:
		buffer.WriteString("@{" + n.Code + "}")
	case *Action:
		buffer.WriteString("={" + n.Code + "}")
	case *Predicate:
		buffer.WriteString("?{" + n.Code + "}")
	case *PCall:
		buffer.WriteString(n.Name)
		buffer.WriteString("<")
		for i, arg := range n.Patterns {
			if i > 0 {
				buffer.WriteString(", ")
			}
			printPattern(buffer, arg)
		}
		buffer.WriteString(">")
	case *Call:
		buffer.WriteString(n.Name)
		if n.Code != "" {
			buffer.WriteString("(" + n.Code + ")")
		}
	case *TokenTag:
		buffer.WriteString("#" + n.Name)
	case *TokenText:
		buffer.WriteString(strconv.Quote(n.Text))
	default:
		contract.Failf("Unrecognized pattern kind during printing: %v", reflect.TypeOf(p))
	}
}

func printList(buffer *bytes.Buffer, ps []Pattern, sep string) {
	buffer.WriteString("(")
	for i, p := range ps {
		if i > 0 {
			buffer.WriteString(sep)
		}
		printPattern(buffer, p)
	}
	buffer.WriteString(")")
}

func printDelimited(buffer *bytes.Buffer, elem, delim Pattern) {
	buffer.WriteString("{")
	printPattern(buffer, elem)
	buffer.WriteString(" / ")
	printPattern(buffer, delim)
	buffer.WriteString("}")
}
