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
	"github.com/mitchellh/copystructure"

	"github.com/pulumi/pegc/pkg/util/contract"
)

// Clone returns a deep copy of a pattern tree.  Passes that derive several trees from one source pattern clone the
// pieces they reuse, so that no node ends up with two parents.
func Clone(p Pattern) Pattern {
	if p == nil {
		return nil
	}
	c, err := copystructure.Copy(p)
	contract.AssertNoErrorf(err, "copying %v pattern", p.GetKind())
	return c.(Pattern)
}

// CloneAll clones each of a list of patterns.
func CloneAll(ps []Pattern) []Pattern {
	if ps == nil {
		return nil
	}
	result := make([]Pattern, len(ps))
	for i, p := range ps {
		result[i] = Clone(p)
	}
	return result
}

// CloneGrammar returns a deep copy of an entire grammar, so that a pipeline run can leave its input untouched.
func CloneGrammar(g *Grammar) *Grammar {
	c, err := copystructure.Copy(g)
	contract.AssertNoErrorf(err, "copying grammar %v", g.Name)
	return c.(*Grammar)
}
