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

// Names is an order-preserving set of variable names.  The first occurrence of a name fixes its position.
type Names []string

// Contains returns true if the given name is already in the set.
func (names Names) Contains(name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// Add returns a new set with name appended, unless it is already present.  The receiver is never modified.
func (names Names) Add(name string) Names {
	result := make(Names, 0, len(names)+1)
	result = append(result, names...)
	if !names.Contains(name) {
		result = append(result, name)
	}
	return result
}

// Union returns the names of a followed by those names of b not already in a.  Neither input is modified.
func Union(a, b Names) Names {
	result := make(Names, 0, len(a)+len(b))
	for _, n := range a {
		if !result.Contains(n) {
			result = append(result, n)
		}
	}
	for _, n := range b {
		if !result.Contains(n) {
			result = append(result, n)
		}
	}
	return result
}
