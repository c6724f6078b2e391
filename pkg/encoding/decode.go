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
	"fmt"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/pulumi/pegc/pkg/compiler/ast"
)

// DecodeGrammar decodes a grammar file.  Every pattern is an object whose `kind` field names its ast.NodeKind; the
// remaining fields are the node's fields.  Scalars are coerced where that is unambiguous, so that a YAML code written
// as `code: 1` reads as the string "1".
func DecodeGrammar(m Marshaler, b []byte) (*ast.Grammar, error) {
	var obj map[string]interface{}
	if err := m.Unmarshal(b, &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.New("grammar file is empty")
	}
	return decodeGrammar(obj)
}

func decodeGrammar(obj map[string]interface{}) (*ast.Grammar, error) {
	name, err := decodeString(obj, "name", "", true)
	if err != nil {
		return nil, err
	}
	rules, err := decodeList(obj, "rules", "", true)
	if err != nil {
		return nil, err
	}

	g := &ast.Grammar{Name: name}
	for i, r := range rules {
		path := fmt.Sprintf("rules[%v]", i)
		robj, err := cast.ToStringMapE(r)
		if err != nil {
			return nil, errors.Wrapf(err, "%v: expected an object", path)
		}
		rule, err := decodeRule(robj, path)
		if err != nil {
			return nil, err
		}
		g.Rules = append(g.Rules, rule)
	}

	if glog.V(7) {
		glog.V(7).Infof("Decoded grammar %v (rules=%v)", g.Name, len(g.Rules))
	}
	return g, nil
}

func decodeRule(obj map[string]interface{}, path string) (*ast.Rule, error) {
	name, err := decodeString(obj, "name", path, true)
	if err != nil {
		return nil, err
	}
	params, err := decodeNames(obj, "parameters", path)
	if err != nil {
		return nil, err
	}
	bound, err := decodeNames(obj, "bound", path)
	if err != nil {
		return nil, err
	}
	pattern, err := decodeChild(obj, "pattern", path)
	if err != nil {
		return nil, err
	}
	return &ast.Rule{
		Name:       name,
		Parameters: []string(params),
		Pattern:    pattern,
		Bound:      bound,
	}, nil
}

// DecodePattern decodes a single pattern object.
func DecodePattern(obj map[string]interface{}) (ast.Pattern, error) {
	return decodePattern(obj, "pattern")
}

func decodePattern(obj map[string]interface{}, path string) (ast.Pattern, error) {
	k, err := decodeString(obj, "kind", path, true)
	if err != nil {
		return nil, err
	}

	var p ast.Pattern
	switch kind := ast.NodeKind(k); kind {
	// Composites
	case ast.ChoiceKind:
		patterns, err := decodeChildren(obj, "patterns", path)
		if err != nil {
			return nil, err
		}
		p = ast.NewChoice(patterns...)
	case ast.SequenceKind:
		patterns, err := decodeChildren(obj, "patterns", path)
		if err != nil {
			return nil, err
		}
		p = ast.NewSequence(patterns...)
	case ast.BindKind:
		name, err := decodeString(obj, "name", path, true)
		if err != nil {
			return nil, err
		}
		child, err := decodeChild(obj, "pattern", path)
		if err != nil {
			return nil, err
		}
		p = ast.NewBind(name, child)

	// Wrappers
	case ast.NegateKind, ast.LookaheadKind, ast.RepeatKind, ast.Repeat1Kind, ast.OptionalKind:
		child, err := decodeChild(obj, "pattern", path)
		if err != nil {
			return nil, err
		}
		p = wrap(kind, child)
	case ast.DelimitedKind, ast.Delimited1Kind:
		elem, err := decodeChild(obj, "element", path)
		if err != nil {
			return nil, err
		}
		delim, err := decodeChild(obj, "delimiter", path)
		if err != nil {
			return nil, err
		}
		if kind == ast.DelimitedKind {
			p = ast.NewDelimited(elem, delim)
		} else {
			p = ast.NewDelimited1(elem, delim)
		}

	// Host code
	case ast.ImmediateKind, ast.ActionKind, ast.PredicateKind:
		code, err := decodeString(obj, "code", path, true)
		if err != nil {
			return nil, err
		}
		switch kind {
		case ast.ImmediateKind:
			p = ast.NewImmediate(code)
		case ast.ActionKind:
			p = ast.NewAction(code)
		default:
			p = ast.NewPredicate(code)
		}

	// Rule invocation
	case ast.PCallKind:
		name, err := decodeString(obj, "name", path, true)
		if err != nil {
			return nil, err
		}
		patterns, err := decodeChildren(obj, "patterns", path)
		if err != nil {
			return nil, err
		}
		p = ast.NewPCall(name, patterns...)
	case ast.CallKind:
		name, err := decodeString(obj, "name", path, true)
		if err != nil {
			return nil, err
		}
		code, err := decodeString(obj, "code", path, false)
		if err != nil {
			return nil, err
		}
		p = ast.NewCall(name, code)

	// Terminals
	case ast.TokenTagKind:
		name, err := decodeString(obj, "name", path, true)
		if err != nil {
			return nil, err
		}
		p = ast.NewTokenTag(name)
	case ast.TokenTextKind:
		text, err := decodeString(obj, "text", path, true)
		if err != nil {
			return nil, err
		}
		p = ast.NewTokenText(text)

	default:
		return nil, errors.Errorf("%v: unrecognized pattern kind '%v'", path, kind)
	}

	bound, err := decodeNames(obj, "bound", path)
	if err != nil {
		return nil, err
	}
	if bound != nil {
		p.SetBound(bound)
	}
	return p, nil
}

func wrap(kind ast.NodeKind, child ast.Pattern) ast.Pattern {
	switch kind {
	case ast.NegateKind:
		return ast.NewNegate(child)
	case ast.LookaheadKind:
		return ast.NewLookahead(child)
	case ast.RepeatKind:
		return ast.NewRepeat(child)
	case ast.Repeat1Kind:
		return ast.NewRepeat1(child)
	default:
		return ast.NewOptional(child)
	}
}

func decodeChild(obj map[string]interface{}, key string, path string) (ast.Pattern, error) {
	v, has := obj[key]
	if !has || v == nil {
		return nil, missing(path, key)
	}
	child, err := cast.ToStringMapE(v)
	if err != nil {
		return nil, errors.Wrapf(err, "%v.%v: expected a pattern object", path, key)
	}
	return decodePattern(child, path+"."+key)
}

func decodeChildren(obj map[string]interface{}, key string, path string) ([]ast.Pattern, error) {
	items, err := decodeList(obj, key, path, true)
	if err != nil {
		return nil, err
	}
	patterns := make([]ast.Pattern, 0, len(items))
	for i, item := range items {
		ipath := fmt.Sprintf("%v.%v[%v]", path, key, i)
		child, err := cast.ToStringMapE(item)
		if err != nil {
			return nil, errors.Wrapf(err, "%v: expected a pattern object", ipath)
		}
		p, err := decodePattern(child, ipath)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

func decodeList(obj map[string]interface{}, key string, path string, req bool) ([]interface{}, error) {
	v, has := obj[key]
	if !has || v == nil {
		if req {
			return nil, missing(path, key)
		}
		return nil, nil
	}
	items, err := cast.ToSliceE(v)
	if err != nil {
		return nil, errors.Wrapf(err, "%v: field '%v' must be a list", location(path), key)
	}
	return items, nil
}

func decodeString(obj map[string]interface{}, key string, path string, req bool) (string, error) {
	v, has := obj[key]
	if !has || v == nil {
		if req {
			return "", missing(path, key)
		}
		return "", nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", errors.Wrapf(err, "%v: field '%v' must be a string", location(path), key)
	}
	return s, nil
}

// decodeNames decodes an optional list of names.  A present but empty list yields an empty, non-nil set, which is how
// an analyzed rule that binds nothing is told apart from one that was never analyzed.
func decodeNames(obj map[string]interface{}, key string, path string) (ast.Names, error) {
	v, has := obj[key]
	if !has || v == nil {
		return nil, nil
	}
	names, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil, errors.Wrapf(err, "%v: field '%v' must be a list of names", location(path), key)
	}
	result := make(ast.Names, 0, len(names))
	for _, name := range names {
		result = result.Add(name)
	}
	return result, nil
}

func missing(path string, key string) error {
	return errors.Errorf("%v: missing required field '%v'", location(path), key)
}

func location(path string) string {
	if path == "" {
		return "grammar"
	}
	return path
}
