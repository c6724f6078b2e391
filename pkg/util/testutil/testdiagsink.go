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
// Package testutil contains helpers shared by tests across the module.
package testutil

import (
	"io/ioutil"
	"strings"
	"sync"

	"github.com/pulumi/pegc/pkg/diag"
)

// TestDiagSink suppresses message output, but captures them, so that they can be compared to expected results.  It is
// safe to share between goroutines compiling grammars concurrently.
type TestDiagSink struct {
	Pwd      string
	sink     diag.Sink
	mutex    sync.Mutex
	infos    []string
	errors   []string
	warnings []string
}

var _ diag.Sink = (*TestDiagSink)(nil)

func NewTestDiagSink(pwd string) *TestDiagSink {
	return &TestDiagSink{
		Pwd: pwd,
		sink: diag.DefaultSink(ioutil.Discard, ioutil.Discard, diag.FormatOptions{
			Pwd: pwd,
		}),
	}
}

func (d *TestDiagSink) Count() int {
	return d.Infos() + d.Errors() + d.Warnings()
}

func (d *TestDiagSink) Infos() int {
	return len(d.InfoMsgs())
}

func (d *TestDiagSink) InfoMsgs() []string {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return append([]string(nil), d.infos...)
}

func (d *TestDiagSink) Errors() int {
	return len(d.ErrorMsgs())
}

func (d *TestDiagSink) ErrorMsgs() []string {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return append([]string(nil), d.errors...)
}

func (d *TestDiagSink) Warnings() int {
	return len(d.WarningMsgs())
}

func (d *TestDiagSink) WarningMsgs() []string {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return append([]string(nil), d.warnings...)
}

func (d *TestDiagSink) Success() bool {
	return d.Errors() == 0
}

// All returns every captured message, errors first, as a single string for use in assertion messages.
func (d *TestDiagSink) All() string {
	msgs := append(d.ErrorMsgs(), d.WarningMsgs()...)
	return strings.Join(append(msgs, d.InfoMsgs()...), "")
}

func (d *TestDiagSink) Infof(dia *diag.Diag, args ...interface{}) {
	msg := d.Stringify(diag.Info, dia, args...)
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.infos = append(d.infos, msg)
}

func (d *TestDiagSink) Errorf(dia *diag.Diag, args ...interface{}) {
	msg := d.Stringify(diag.Error, dia, args...)
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.errors = append(d.errors, msg)
}

func (d *TestDiagSink) Warningf(dia *diag.Diag, args ...interface{}) {
	msg := d.Stringify(diag.Warning, dia, args...)
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.warnings = append(d.warnings, msg)
}

func (d *TestDiagSink) Stringify(sev diag.Severity, dia *diag.Diag, args ...interface{}) string {
	return d.sink.Stringify(sev, dia, args...)
}
