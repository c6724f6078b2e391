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
package encoding

import (
	"reflect"

	"github.com/pulumi/pegc/pkg/compiler/ast"
	"github.com/pulumi/pegc/pkg/util/contract"
)

// EncodeGrammar serializes a grammar in the same form DecodeGrammar reads.  Bound sets are written wherever the binding
// analysis has filled them in, which makes the output useful for inspecting a compiled grammar.
func EncodeGrammar(m Marshaler, g *ast.Grammar) ([]byte, error) {
	contract.Require(m != nil, "m")
	contract.Require(g != nil, "g")
	return m.Marshal(encodeGrammar(g))
}

func encodeGrammar(g *ast.Grammar) map[string]interface{} {
	rules := make([]interface{}, 0, len(g.Rules))
	for _, rule := range g.Rules {
		obj := map[string]interface{}{
			"name":    rule.Name,
			"pattern": EncodePattern(rule.Pattern),
		}
		if len(rule.Parameters) > 0 {
			obj["parameters"] = rule.Parameters
		}
		if rule.Bound != nil {
			obj["bound"] = []string(rule.Bound)
		}
		rules = append(rules, obj)
	}
	return map[string]interface{}{
		"name":  g.Name,
		"rules": rules,
	}
}

// EncodePattern converts a pattern into its kind-tagged object form.
func EncodePattern(p ast.Pattern) map[string]interface{} {
	obj := map[string]interface{}{"kind": string(p.GetKind())}
	switch n := p.(type) {
	case *ast.Choice:
		obj["patterns"] = encodePatterns(n.Patterns)
	case *ast.Sequence:
		obj["patterns"] = encodePatterns(n.Patterns)
	case *ast.Bind:
		obj["name"] = n.Name
		obj["pattern"] = EncodePattern(n.Pattern)
	case *ast.Negate:
		obj["pattern"] = EncodePattern(n.Pattern)
	case *ast.Lookahead:
		obj["pattern"] = EncodePattern(n.Pattern)
	case *ast.Repeat:
		obj["pattern"] = EncodePattern(n.Pattern)
	case *ast.Repeat1:
		obj["pattern"] = EncodePattern(n.Pattern)
	case *ast.Optional:
		obj["pattern"] = EncodePattern(n.Pattern)
	case *ast.Delimited:
		obj["element"] = EncodePattern(n.Element)
		obj["delimiter"] = EncodePattern(n.Delimiter)
	case *ast.Delimited1:
		obj["element"] = EncodePattern(n.Element)
		obj["delimiter"] = EncodePattern(n.Delimiter)
	case *ast.Immediate:
		obj["code"] = n.Code
	case *ast.Action:
		obj["code"] = n.Code
	case *ast.Predicate:
		obj["code"] = n.Code
	case *ast.PCall:
		obj["name"] = n.Name
		obj["patterns"] = encodePatterns(n.Patterns)
	case *ast.Call:
		obj["name"] = n.Name
		if n.Code != "" {
			obj["code"] = n.Code
		}
	case *ast.TokenTag:
		obj["name"] = n.Name
	case *ast.TokenText:
		obj["text"] = n.Text
	default:
		contract.Failf("Unrecognized pattern kind during encoding: %v", reflect.TypeOf(p))
	}
	if bound := p.GetBound(); len(bound) > 0 {
		obj["bound"] = []string(bound)
	}
	return obj
}

func encodePatterns(ps []ast.Pattern) []interface{} {
	result := make([]interface{}, 0, len(ps))
	for _, p := range ps {
		result = append(result, EncodePattern(p))
	}
	return result
}
