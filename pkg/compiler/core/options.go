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

package core

// Options contains all of the settings a user can use to control the compiler's behavior.
type Options struct {
	TokenMode    bool   // if true, the parser matches a token stream rather than raw characters.
	Package      string // the Go package name of the generated parser.
	TypeName     string // the parser type's name; defaults to the grammar's name.
	SkipFactor   bool   // if true, choices are not left factored.
	SkipSimplify bool   // if true, nested choices and sequences are left as they are.
	NoFormat     bool   // if true, generated source is not run through gofmt.
}

const DefaultPackage = "parser"

// DefaultOptions returns the default set of compiler options.
func DefaultOptions() *Options {
	return &Options{
		Package: DefaultPackage,
	}
}

// ParserType returns the name of the generated parser type for the given grammar.
func (opts *Options) ParserType(grammar string) string {
	if opts.TypeName != "" {
		return opts.TypeName
	}
	return grammar
}
