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

package leftrec

import (
	"reflect"
	"strings"

	"github.com/golang/glog"

	"github.com/pulumi/pegc/pkg/compiler/ast"
	"github.com/pulumi/pegc/pkg/compiler/core"
	"github.com/pulumi/pegc/pkg/compiler/errors"
	"github.com/pulumi/pegc/pkg/util/contract"
)

// HeadCalls returns the names of the rules a pattern may invoke in head position, that is, before any other part of
// the pattern has had a chance to consume input.  Names are returned in first-seen order without duplicates.
func HeadCalls(p ast.Pattern) []string {
	var names ast.Names
	headCalls(p, &names)
	return names
}

func headCalls(node ast.Pattern, names *ast.Names) {
	switch n := node.(type) {
	case *ast.Choice:
		for _, alt := range n.Patterns {
			headCalls(alt, names)
		}
	case *ast.Sequence:
		if len(n.Patterns) > 0 {
			headCalls(n.Patterns[0], names)
		}
	case *ast.Bind:
		headCalls(n.Pattern, names)
	case *ast.Negate:
		headCalls(n.Pattern, names)
	case *ast.Lookahead:
		headCalls(n.Pattern, names)
	case *ast.Repeat:
		headCalls(n.Pattern, names)
	case *ast.Repeat1:
		headCalls(n.Pattern, names)
	case *ast.Optional:
		headCalls(n.Pattern, names)
	case *ast.Delimited:
		headCalls(n.Element, names)
	case *ast.Delimited1:
		headCalls(n.Element, names)
	case *ast.PCall:
		*names = names.Add(n.Name)
	case *ast.Call:
		*names = names.Add(n.Name)
	case *ast.Immediate, *ast.Action, *ast.Predicate, *ast.TokenTag, *ast.TokenText:
		// Terminals and host code never invoke a rule.
	default:
		contract.Failf("Unrecognized pattern kind while finding head calls: %v", reflect.TypeOf(node))
	}
}

// MutualCycles returns every group of two or more rules that are left recursive through one another.  Each group lists
// its rules in grammar order, and groups are ordered by their first rule.
func MutualCycles(g *ast.Grammar) [][]string {
	index := make(map[string]int)
	for i, rule := range g.Rules {
		index[rule.Name] = i
	}
	edges := make([][]int, len(g.Rules))
	for i, rule := range g.Rules {
		for _, callee := range HeadCalls(rule.Pattern) {
			// Self calls are handled by the rewrite, and calls to unknown rules are reported by validation.
			if j, has := index[callee]; has && j != i {
				edges[i] = append(edges[i], j)
			}
		}
	}

	// Tarjan's strongly connected components.
	t := &tarjan{
		edges:   edges,
		index:   make([]int, len(edges)),
		lowlink: make([]int, len(edges)),
		onstack: make([]bool, len(edges)),
	}
	for i := range t.index {
		t.index[i] = -1
	}
	for i := range edges {
		if t.index[i] < 0 {
			t.connect(i)
		}
	}

	// Components are discovered in reverse topological order; report them by their earliest rule instead.
	var cycles [][]string
	member := make([]bool, len(g.Rules))
	for _, scc := range t.sccs {
		if len(scc) > 1 {
			for _, i := range scc {
				member[i] = true
			}
		}
	}
	seen := make([]bool, len(g.Rules))
	for i := range g.Rules {
		if !member[i] || seen[i] {
			continue
		}
		for _, scc := range t.sccs {
			if containsInt(scc, i) {
				var names []string
				for j := range g.Rules {
					if containsInt(scc, j) {
						names = append(names, g.Rules[j].Name)
						seen[j] = true
					}
				}
				cycles = append(cycles, names)
				break
			}
		}
	}
	return cycles
}

func checkMutualRecursion(ctx *core.Context, g *ast.Grammar) {
	for _, cycle := range MutualCycles(g) {
		if glog.V(5) {
			glog.V(5).Infof("Rules %v are mutually left recursive", cycle)
		}
		prev := ctx.Currule
		ctx.Currule = cycle[0]
		ctx.Errorf(errors.ErrorMutualLeftRecursion, strings.Join(cycle, ", "))
		ctx.Currule = prev
	}
}

type tarjan struct {
	edges   [][]int
	counter int
	index   []int
	lowlink []int
	onstack []bool
	stack   []int
	sccs    [][]int
}

func (t *tarjan) connect(v int) {
	t.index[v] = t.counter
	t.lowlink[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onstack[v] = true

	for _, w := range t.edges[v] {
		if t.index[w] < 0 {
			t.connect(w)
			if t.lowlink[w] < t.lowlink[v] {
				t.lowlink[v] = t.lowlink[w]
			}
		} else if t.onstack[w] && t.index[w] < t.lowlink[v] {
			t.lowlink[v] = t.index[w]
		}
	}

	if t.lowlink[v] == t.index[v] {
		var scc []int
		for {
			w := t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.onstack[w] = false
			scc = append(scc, w)
			if w == v {
				break
			}
		}
		t.sccs = append(t.sccs, scc)
	}
}

func containsInt(xs []int, x int) bool {
	for _, y := range xs {
		if y == x {
			return true
		}
	}
	return false
}
