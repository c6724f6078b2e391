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
package cmdutil

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh/terminal"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ciEnvVars are set by the CI systems whose logs would otherwise fill up with escape codes.
var ciEnvVars = []string{"CI", "BUILD_NUMBER", "TF_BUILD", "TRAVIS", "CIRCLECI", "GITLAB_CI", "GITHUB_ACTIONS"}

// IsCI returns true if we appear to be running in a continuous integration system.
func IsCI() bool {
	for _, v := range ciEnvVars {
		if IsTruthy(os.Getenv(v)) || (v == "BUILD_NUMBER" && os.Getenv(v) != "") {
			return true
		}
	}
	return false
}

// InteractiveTerminal returns true if the current terminal session is interactive.
func InteractiveTerminal() bool {
	return terminal.IsTerminal(int(os.Stdout.Fd()))
}

// ColorsEnabled decides whether output should be colorized for a --color setting.
func ColorsEnabled(mode string) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return InteractiveTerminal() && !IsCI()
	}
}

// ValidateColor checks a --color setting.
func ValidateColor(mode string) error {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return errors.Errorf("unsupported color option '%v': expected one of %v, %v, or %v",
			mode, ColorAuto, ColorAlways, ColorNever)
	}
}

// IsTruthy returns true if the given string represents a CLI input interpreted as "true".
func IsTruthy(s string) bool {
	return s == "1" || strings.EqualFold(s, "true")
}
