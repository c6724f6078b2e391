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

// Package version reports the version of the pegc toolchain, which is stamped into every generated parser.
package version

import (
	"github.com/blang/semver"
	"github.com/pkg/errors"
)

// Version is the version of the toolchain.  Release builds override it with -ldflags "-X ...version.Version=...".
var Version = "0.1.0-dev"

// Semver parses Version.  A leading "v", as produced by git tags, is accepted.
func Semver() (semver.Version, error) {
	v, err := semver.ParseTolerant(Version)
	if err != nil {
		return semver.Version{}, errors.Wrapf(err, "toolchain version %q is not a semantic version", Version)
	}
	return v, nil
}

// Compatible returns true if source generated by a toolchain of version other can be regenerated by this one without
// changing the runtime package it depends on.  Pre-1.0 toolchains are only compatible within the same minor version.
func Compatible(other string) (bool, error) {
	mine, err := Semver()
	if err != nil {
		return false, err
	}
	theirs, err := semver.ParseTolerant(other)
	if err != nil {
		return false, errors.Wrapf(err, "version %q is not a semantic version", other)
	}
	if mine.Major != theirs.Major {
		return false, nil
	}
	if mine.Major == 0 && mine.Minor != theirs.Minor {
		return false, nil
	}
	return true, nil
}
