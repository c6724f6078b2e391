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
package workspace

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pulumi/pegc/pkg/compiler/errors"
	"github.com/pulumi/pegc/pkg/diag"
	"github.com/pulumi/pegc/pkg/encoding"
)

const Projectfile = "pegc" // the base name of a project file.

// isTop returns true if the path represents the top of the filesystem.
func isTop(path string) bool {
	return os.IsPathSeparator(path[len(path)-1])
}

// pathDir returns the nearest directory to the given path (identity if a directory; parent otherwise).
func pathDir(path string) string {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}

// DetectProject locates the closest project file from the given path, searching "upwards" in the directory hierarchy.
// If none is found, an empty path is returned.  Files that look like misnamed project files are reported to d.
func DetectProject(path string, d diag.Sink) (string, error) {
	// It's possible the target is already the file we seek; if so, return right away.
	if IsProjectfile(path, d) {
		return path, nil
	}

	curr, err := filepath.Abs(pathDir(path))
	if err != nil {
		return "", err
	}
	for {
		files, err := ioutil.ReadDir(curr)
		if err != nil {
			return "", err
		}
		for _, file := range files {
			path := filepath.Join(curr, file.Name())
			if IsProjectfile(path, d) {
				return path, nil
			}
		}

		// If nothing matched, keep looking in our parent directory.
		next := filepath.Dir(curr)
		if next == curr || isTop(curr) {
			break
		}
		curr = next
	}

	return "", nil
}

// IsProjectfile returns true if the path references what appears to be a valid project file.  If problems are
// detected -- like an incorrect extension -- they are logged to the provided diag.Sink (if non-nil).
func IsProjectfile(path string, d diag.Sink) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		// Missing files and directories can't be project files.
		return false
	}

	// Ensure the base name is expected.
	name := info.Name()
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if base != Projectfile {
		if d != nil && strings.EqualFold(base, Projectfile) {
			// If the strings aren't equal, but case-insensitively match, issue a warning.
			d.Warningf(errors.WarningIllegalProjectCasing.WithDocument(diag.NewDocument(path)), name, Projectfile+ext)
		}
		return false
	}

	// Check all supported extensions.
	for _, mext := range encoding.Exts {
		if name == Projectfile+mext {
			return true
		}
	}

	// If we got here, it means the base name matched, but not the extension.  Warn and return.
	if d != nil {
		d.Warningf(errors.WarningIllegalProjectExt.WithDocument(diag.NewDocument(path)), ext)
	}
	return false
}
