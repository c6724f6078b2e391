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

package gen

import (
	"text/template"
)

// preamble holds the fixed parts of a generated file.  The parser type embeds one of the runtime's inputs, which
// supplies the cursor and the Tag and Text terminal matchers that rule methods call.
var preamble = template.Must(template.New("header").Parse(`// Code generated by {{.Tool}}. DO NOT EDIT.

package {{.Package}}

import "github.com/pulumi/pegc/pkg/rt"
{{define "scannerless"}}
// {{.Type}} is a scannerless parser: it matches the characters of a string directly.
type {{.Type}} struct {
	*rt.Scanner
}

// New{{.Type}} returns a parser positioned at the start of src.
func New{{.Type}}(src string) *{{.Type}} {
	return &{{.Type}}{Scanner: rt.NewScanner(src)}
}
{{end}}{{define "tokens"}}
// {{.Type}} matches a stream of tokens produced by a separate lexer.
type {{.Type}} struct {
	*rt.TokenStream
}

// New{{.Type}} returns a parser positioned at the first of tokens.
func New{{.Type}}(tokens []rt.Token) *{{.Type}} {
	return &{{.Type}}{TokenStream: rt.NewTokenStream(tokens)}
}
{{end}}`))

type preambleData struct {
	Tool    string // the tool and version that generated the file.
	Package string // the package clause.
	Type    string // the parser type's name.
}

// mode returns the name of the base primitive fragment for a parser.
func mode(tokens bool) string {
	if tokens {
		return "tokens"
	}
	return "scannerless"
}
