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
// Package workspace loads the optional project file that holds default settings for the grammars in a directory tree.
package workspace

import (
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/pulumi/pegc/pkg/compiler/core"
	"github.com/pulumi/pegc/pkg/encoding"
	"github.com/pulumi/pegc/pkg/util/contract"
)

// Project is a pegc project file.  Settings at the top level apply to every grammar; an entry under Grammars, keyed by
// the grammar's path relative to the project file, overrides them for that grammar alone.
// nolint: lll
type Project struct {
	Package  string                      `json:"package,omitempty" yaml:"package,omitempty"`   // the default Go package of generated parsers.
	Out      string                      `json:"out,omitempty" yaml:"out,omitempty"`           // the default output directory, relative to the project.
	Tokens   bool                        `json:"tokens,omitempty" yaml:"tokens,omitempty"`     // true if parsers match token streams by default.
	Grammars map[string]*GrammarSettings `json:"grammars,omitempty" yaml:"grammars,omitempty"` // the grammars this project compiles.
}

// GrammarSettings overrides project settings for a single grammar.
// nolint: lll
type GrammarSettings struct {
	Package      string `json:"package,omitempty" yaml:"package,omitempty"`           // the Go package of the generated parser.
	Type         string `json:"type,omitempty" yaml:"type,omitempty"`                 // the parser type's name.
	Out          string `json:"out,omitempty" yaml:"out,omitempty"`                   // the output directory, relative to the project.
	Tokens       *bool  `json:"tokens,omitempty" yaml:"tokens,omitempty"`             // overrides the project's token mode.
	SkipFactor   bool   `json:"skipFactor,omitempty" yaml:"skipFactor,omitempty"`     // true to leave choices unfactored.
	SkipSimplify bool   `json:"skipSimplify,omitempty" yaml:"skipSimplify,omitempty"` // true to leave composites unflattened.
}

func (proj *Project) Validate() error {
	for file := range proj.Grammars {
		if file == "" {
			return errors.New("project lists a grammar with an empty path")
		}
		if filepath.IsAbs(file) {
			return errors.Errorf("grammar path '%v' must be relative to the project file", file)
		}
		if m, _ := encoding.Detect(file); m == nil || filepath.Ext(file) == "" {
			return errors.Errorf("grammar path '%v' does not have a grammar file extension", file)
		}
	}
	return nil
}

// Files returns the paths of the project's grammars, resolved against the project's directory, in sorted order.
func (proj *Project) Files(root string) []string {
	var files []string
	for file := range proj.Grammars {
		files = append(files, filepath.Join(root, filepath.FromSlash(file)))
	}
	sort.Strings(files)
	return files
}

// settings finds the overrides for a grammar file, which may be given relative to the project directory or not.
func (proj *Project) settings(root string, file string) *GrammarSettings {
	rel := file
	if r, err := filepath.Rel(root, file); err == nil && !strings.HasPrefix(r, "..") {
		rel = r
	}
	if s, has := proj.Grammars[filepath.ToSlash(rel)]; has && s != nil {
		return s
	}
	return &GrammarSettings{}
}

// Options returns the compiler options for a grammar file under this project.  Settings left empty fall through to the
// project's, and then to the compiler's defaults.
func (proj *Project) Options(root string, file string) *core.Options {
	opts := core.DefaultOptions()
	if proj.Package != "" {
		opts.Package = proj.Package
	}
	opts.TokenMode = proj.Tokens

	s := proj.settings(root, file)
	if s.Package != "" {
		opts.Package = s.Package
	}
	if s.Tokens != nil {
		opts.TokenMode = *s.Tokens
	}
	opts.TypeName = s.Type
	opts.SkipFactor = s.SkipFactor
	opts.SkipSimplify = s.SkipSimplify
	return opts
}

// OutputPath returns where the parser generated from a grammar file goes: the grammar's base name with a .go extension,
// in the grammar's output directory if one is set and next to the grammar otherwise.
func (proj *Project) OutputPath(root string, file string) string {
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)) + ".go"
	out := proj.Out
	if s := proj.settings(root, file); s.Out != "" {
		out = s.Out
	}
	if out == "" {
		return filepath.Join(filepath.Dir(file), base)
	}
	return filepath.Join(root, filepath.FromSlash(out), base)
}

// Save writes a project definition to a file.
func (proj *Project) Save(path string) error {
	contract.Require(path != "", "path")
	contract.Require(proj != nil, "proj")
	contract.Requiref(proj.Validate() == nil, "proj", "Validate()")

	m, err := marshallerForPath(path)
	if err != nil {
		return err
	}

	b, err := m.Marshal(proj)
	if err != nil {
		return err
	}

	return ioutil.WriteFile(path, b, 0644)
}

// LoadProject reads a project definition from a file.
func LoadProject(path string) (*Project, error) {
	contract.Require(path != "", "path")

	m, err := marshallerForPath(path)
	if err != nil {
		return nil, err
	}

	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var proj Project
	if err = m.Unmarshal(b, &proj); err != nil {
		return nil, errors.Wrapf(err, "could not parse %v", path)
	}

	if err = proj.Validate(); err != nil {
		return nil, err
	}

	return &proj, nil
}

func marshallerForPath(path string) (encoding.Marshaler, error) {
	ext := filepath.Ext(path)
	m, has := encoding.Marshalers[ext]
	if !has {
		return nil, errors.Errorf("no marshaler found for file format '%v'", ext)
	}

	return m, nil
}
