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

package contract

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/golang/glog"
)

// Violation is the value a failed contract panics with.  The compiler driver recovers it and turns it into an
// "invariant violated" diagnostic, so that a broken pass never emits a half-built parser.
type Violation struct {
	Message string
}

func (v *Violation) Error() string {
	return v.Message
}

// AsViolation returns the Violation carried by a recovered panic value, if it is one.
func AsViolation(r interface{}) (*Violation, bool) {
	v, ok := r.(*Violation)
	return v, ok
}

// failfast logs and panics in a way that is friendly to debugging.
func failfast(msg string) {
	if f := flag.Lookup("logtostderr"); f != nil {
		if g, isgettable := f.Value.(flag.Getter); isgettable {
			if enabled, _ := g.Get().(bool); enabled {
				// Print the stack to stderr anytime glog verbose logging is enabled, since glog won't.
				fmt.Fprintf(os.Stderr, "fatal: %v\n", msg)
				debug.PrintStack()
			}
		}
	}
	glog.Error(msg)
	panic(&Violation{Message: msg})
}
