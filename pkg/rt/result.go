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

// Package rt is the runtime library that generated parsers are built on.  A generated parser embeds an Input, which
// supplies the position cursor and the terminal matchers, and reports every match as a Result.
package rt

import (
	"fmt"
	"reflect"

	"github.com/pulumi/pegc/pkg/util/contract"
)

// Result is the outcome of a match: either a matched value, which may itself be nil, or a failure.
type Result struct {
	value interface{}
	ok    bool
}

// Failed is the result of a match that did not succeed.
var Failed = Result{}

// Matched returns a successful result carrying the given value.
func Matched(v interface{}) Result {
	return Result{value: v, ok: true}
}

// OK returns true if the match succeeded.
func (r Result) OK() bool { return r.ok }

// Value returns the matched value.  A failed result has a nil value.
func (r Result) Value() interface{} { return r.value }

func (r Result) String() string {
	if !r.ok {
		return "FAIL"
	}
	return fmt.Sprintf("%v", r.value)
}

// Thunk is a deferred sub-parser, as passed to a rule by a PCall.
type Thunk func() Result

// Invoke runs a recognizer.  It accepts a Thunk, or any func of no arguments returning a Result, a bool, or an arbitrary
// value; a bool is treated like a Predicate and any other value as a match.
func Invoke(f interface{}) Result {
	switch fn := f.(type) {
	case Thunk:
		return fn()
	case func() Result:
		return fn()
	case func() bool:
		if fn() {
			return Matched(nil)
		}
		return Failed
	case func() interface{}:
		return Matched(fn())
	default:
		contract.Failf("cannot invoke %v as a recognizer", reflect.TypeOf(f))
		return Failed
	}
}

// List is the value matched by a repetition: one entry per successful iteration.
type List []interface{}

// Append adds the value of a successful result to the list.
func (l List) Append(r Result) List {
	contract.Assertf(r.OK(), "appending a failed result")
	return append(l, r.Value())
}

// Truthy reports whether a host value counts as true in a predicate.  Nil, false, zero numbers, empty strings, and
// empty lists are false; everything else is true.
func Truthy(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case List:
		return len(x) > 0
	case Result:
		return x.OK()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Slice, reflect.Map:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}
