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

package diag

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/golang/glog"

	"github.com/pulumi/pegc/pkg/diag/colors"
	"github.com/pulumi/pegc/pkg/util/contract"
)

// Sink facilitates pluggable diagnostics messages.
type Sink interface {
	// Count fetches the total number of diagnostics issued (errors plus warnings).
	Count() int
	// Infos fetches the number of informational messages issued.
	Infos() int
	// Errors fetches the number of errors issued.
	Errors() int
	// Warnings fetches the number of warnings issued.
	Warnings() int
	// Success returns true if this sink is currently error-free.
	Success() bool

	// Infof issues an informational message.
	Infof(diag *Diag, args ...interface{})
	// Errorf issues a new error diagnostic.
	Errorf(diag *Diag, args ...interface{})
	// Warningf issues a new warning diagnostic.
	Warningf(diag *Diag, args ...interface{})

	// Stringify stringifies a diagnostic in the usual way (e.g., "error: PEG301: calc.yaml: Expr: message\n").
	Stringify(sev Severity, diag *Diag, args ...interface{}) string
}

// Severity dictates the kind of diagnostic.
type Severity string

const (
	Info    Severity = "info"
	Warning Severity = "warning"
	Error   Severity = "error"
)

// FormatOptions controls the output style and content.
type FormatOptions struct {
	Pwd    string // the working directory.
	Colors bool   // if true, output will be colorized.
}

// DefaultSink returns a default sink that simply logs output to stderr/stdout.
func DefaultSink(stdout io.Writer, stderr io.Writer, opts FormatOptions) Sink {
	contract.Require(stdout != nil, "stdout")
	contract.Require(stderr != nil, "stderr")
	return newDefaultSink(opts, map[Severity]io.Writer{
		Info:    stdout,
		Error:   stderr,
		Warning: stderr,
	})
}

// StderrSink returns a default sink writing diagnostics to the process' standard streams.
func StderrSink(opts FormatOptions) Sink {
	return DefaultSink(os.Stdout, os.Stderr, opts)
}

func newDefaultSink(opts FormatOptions, writers map[Severity]io.Writer) *defaultSink {
	contract.Assert(len(writers) == 3)
	return &defaultSink{
		opts:    opts,
		counts:  make(map[Severity]int),
		writers: writers,
	}
}

const DefaultSinkIDPrefix = "PEG"

// defaultSink is the default sink which logs output to stderr/stdout.  Several grammars may be compiled at once by the
// command line tool, all sharing one sink, so the counters are guarded.
type defaultSink struct {
	opts    FormatOptions          // a set of options that control output style and content.
	writers map[Severity]io.Writer // the output stream to use for each kind of message.
	counts  map[Severity]int       // the number of messages that have been issued per severity.
	mutex   sync.Mutex             // a mutex for guarding updates to the counts and writers.
}

func (d *defaultSink) Count() int    { return d.Infos() + d.Errors() + d.Warnings() }
func (d *defaultSink) Infos() int    { return d.count(Info) }
func (d *defaultSink) Errors() int   { return d.count(Error) }
func (d *defaultSink) Warnings() int { return d.count(Warning) }
func (d *defaultSink) Success() bool { return d.Errors() == 0 }

func (d *defaultSink) count(sev Severity) int {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.counts[sev]
}

func (d *defaultSink) Infof(diag *Diag, args ...interface{}) {
	d.emit(Info, diag, args...)
}

func (d *defaultSink) Errorf(diag *Diag, args ...interface{}) {
	d.emit(Error, diag, args...)
}

func (d *defaultSink) Warningf(diag *Diag, args ...interface{}) {
	d.emit(Warning, diag, args...)
}

func (d *defaultSink) emit(sev Severity, diag *Diag, args ...interface{}) {
	msg := d.Stringify(sev, diag, args...)
	if glog.V(3) {
		glog.V(3).Infof("defaultSink::%v(%v)", sev, msg[:len(msg)-1])
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()
	fmt.Fprint(d.writers[sev], msg)
	d.counts[sev]++
}

func (d *defaultSink) Stringify(sev Severity, diag *Diag, args ...interface{}) string {
	var buffer bytes.Buffer

	// First print the message category's prefix (error/warning).
	if d.opts.Colors {
		switch sev {
		case Info:
			buffer.WriteString(colors.SpecInfo)
		case Error:
			buffer.WriteString(colors.SpecError)
		case Warning:
			buffer.WriteString(colors.SpecWarning)
		default:
			contract.Failf("Unrecognized diagnostic severity: %v", sev)
		}
	}

	buffer.WriteString(string(sev))

	if diag.ID > 0 {
		buffer.WriteString(" ")
		buffer.WriteString(DefaultSinkIDPrefix)
		buffer.WriteString(strconv.Itoa(int(diag.ID)))
	}

	buffer.WriteString(": ")

	if d.opts.Colors {
		buffer.WriteString(colors.Reset)
	}

	// Next print the location (document and rule), if there is one.
	if loc := d.stringifyLocation(diag); loc != "" {
		buffer.WriteString(loc)
		buffer.WriteString(": ")
	}

	// Finally, actually print the message itself.
	if d.opts.Colors {
		buffer.WriteString(colors.SpecNote)
	}

	buffer.WriteString(fmt.Sprintf(diag.Message, args...))

	if d.opts.Colors {
		buffer.WriteString(colors.Reset)
	}

	buffer.WriteRune('\n')

	s := buffer.String()

	// If colorization was requested, compile and execute the directives now.
	if d.opts.Colors {
		s = colors.ColorizeText(s)
	}

	return s
}

func (d *defaultSink) stringifyLocation(diag *Diag) string {
	var buffer bytes.Buffer

	if diag.Doc != nil {
		if d.opts.Colors {
			buffer.WriteString(colors.SpecLocation)
		}

		file := diag.Doc.File
		if d.opts.Pwd != "" {
			// If a PWD is available, try to create a relative path.
			if rel, err := filepath.Rel(d.opts.Pwd, file); err == nil {
				file = rel
			}
		}
		buffer.WriteString(file)

		if d.opts.Colors {
			buffer.WriteString(colors.Reset)
		}
	}

	if diag.Rule != "" {
		if diag.Doc != nil {
			buffer.WriteString(": ")
		}
		buffer.WriteString(diag.Rule)
	}

	return buffer.String()
}
