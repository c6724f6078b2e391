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

// Package logging wraps glog so that the command line tool and tests can configure it without touching flags.
package logging

import (
	"flag"
	"strconv"

	"github.com/golang/glog"
)

// LogToStderr is true when logging goes to stderr instead of files.
var LogToStderr = false

// Verbose is the glog verbosity level.
var Verbose = 0

// InitLogging ensures the glog library has been initialized with the given settings.
func InitLogging(logToStderr bool, verbose int) {
	LogToStderr = logToStderr
	Verbose = verbose

	// glog is configured entirely through the flag package, so poke at its flags directly.
	if !flag.Parsed() {
		flag.CommandLine.Parse([]string{}) // nolint: errcheck
	}
	if logToStderr {
		setFlag("logtostderr", "true")
	} else {
		setFlag("logtostderr", "false")
	}
	setFlag("v", strconv.Itoa(verbose))
}

// V reports whether verbose logging at the given level is on.
func V(level glog.Level) glog.Verbose {
	return glog.V(level)
}

func setFlag(name, value string) {
	if f := flag.Lookup(name); f != nil {
		if err := f.Value.Set(value); err != nil {
			glog.Warningf("could not set log flag %v=%v: %v", name, value, err)
		}
	}
}
