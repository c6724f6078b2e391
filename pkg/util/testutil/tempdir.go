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
package testutil

import (
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TempDir creates a fresh directory for a test, with symlinks resolved so that paths computed inside of it compare
// equal to the ones the test builds.  The returned func removes it.
func TempDir(t *testing.T, prefix string) (string, func()) {
	return TempDirIn(t, "", prefix)
}

// TempDirIn is TempDir, but creates the directory under parent.  Tests use it to place generated packages inside of
// the module so that they can import it.
func TempDirIn(t *testing.T, parent string, prefix string) (string, func()) {
	dir, err := ioutil.TempDir(parent, prefix)
	require.NoError(t, err)
	dir, err = filepath.Abs(dir)
	require.NoError(t, err)
	dir, err = filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	return dir, func() { os.RemoveAll(dir) }
}

// WriteFile writes a file under dir, creating any directories it needs, and returns its path.
func WriteFile(t *testing.T, dir string, name string, contents string) string {
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, ioutil.WriteFile(path, []byte(contents), 0644))
	return path
}

// RunCommand runs a program in cwd, and fails the test with the program's output if it does not succeed.
func RunCommand(t *testing.T, name string, cwd string, exe string, args ...string) {
	cmd := exec.Command(exe, args...)
	cmd.Dir = cwd
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "%v failed: %v %v\n%s", name, exe, strings.Join(args, " "), out)
}
