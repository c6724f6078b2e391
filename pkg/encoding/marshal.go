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
// Package encoding reads and writes grammar files.  A grammar file is a JSON or YAML document whose rules hold a tree
// of patterns, each one an object discriminated by its `kind` field.
package encoding

import (
	"encoding/json"
	"path/filepath"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/pulumi/pegc/pkg/util/contract"
)

const (
	JSONExt = ".json"
	YAMLExt = ".yaml"
)

// Exts contains a list of all the valid marshalable extension types.
var Exts = []string{
	YAMLExt,
	JSONExt,
	// Although ".yml" is not a sanctioned YAML extension, it is used quite broadly; so we will support it.
	".yml",
}

// Marshalers is a map of extension to a Marshaler object for that extension.
var Marshalers map[string]Marshaler

func init() {
	Marshalers = make(map[string]Marshaler)
	for _, ext := range Exts {
		switch ext {
		case JSONExt:
			Marshalers[ext] = JSON
		case ".yml":
			fallthrough
		case YAMLExt:
			Marshalers[ext] = YAML
		default:
			contract.Failf("No Marshaler available for extension %v", ext)
		}
	}
}

// Detect auto-detects a marshaler for the given path.  Paths with no extension use the default marshaler; an
// unrecognized extension returns nil.
func Detect(path string) (Marshaler, string) {
	ext := filepath.Ext(path)
	if ext == "" {
		ext = DefaultExt()
	}
	return Marshalers[ext], ext
}

// Default returns the default marshaler object.
func Default() Marshaler {
	return Marshalers[DefaultExt()]
}

// DefaultExt returns the default extension to use.
func DefaultExt() string {
	return Exts[0]
}

// Marshaler is a type that knows how to marshal and unmarshal data in one format.
type Marshaler interface {
	IsJSONLike() bool
	IsYAMLLike() bool
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

var JSON Marshaler = &jsonMarshaler{}

type jsonMarshaler struct {
}

func (m *jsonMarshaler) IsJSONLike() bool {
	return true
}

func (m *jsonMarshaler) IsYAMLLike() bool {
	return false
}

func (m *jsonMarshaler) Marshal(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "    ")
}

func (m *jsonMarshaler) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

var YAML Marshaler = &yamlMarshaler{}

type yamlMarshaler struct {
}

func (m *yamlMarshaler) IsJSONLike() bool {
	return false
}

func (m *yamlMarshaler) IsYAMLLike() bool {
	return true
}

func (m *yamlMarshaler) Marshal(v interface{}) ([]byte, error) {
	return yaml.Marshal(v)
}

func (m *yamlMarshaler) Unmarshal(data []byte, v interface{}) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		// Return type errors directly; anything else is a syntax error.
		if _, ok := err.(*yaml.TypeError); ok {
			return err
		}
		return errors.Wrap(err, "invalid YAML file")
	}
	return nil
}
