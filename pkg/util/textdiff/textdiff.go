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
// Package textdiff renders line-oriented differences between two texts, for showing how generated output has drifted
// from what is on disk.
package textdiff

import (
	"bytes"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/pulumi/pegc/pkg/diag/colors"
)

// ContextLines is the number of unchanged lines shown on either side of a change.
const ContextLines = 2

// Lines computes a line-by-line diff from old to new.
func Lines(old, new string) []diffmatchpatch.Diff {
	differ := diffmatchpatch.New()
	differ.DiffTimeout = 0

	hashed1, hashed2, lineArray := differ.DiffLinesToChars(old, new)
	diffs := differ.DiffMain(hashed1, hashed2, false)
	return differ.DiffCharsToLines(diffs, lineArray)
}

// Changed returns true if a diff contains any insertion or deletion.
func Changed(diffs []diffmatchpatch.Diff) bool {
	for _, diff := range diffs {
		if diff.Type != diffmatchpatch.DiffEqual {
			return true
		}
	}
	return false
}

// Format condenses a diff into something useful to print to the console.  Inserted lines are prefixed with "+" and
// deleted ones with "-".  Runs of unchanged lines are trimmed to ContextLines around each change, with "..." standing
// in for the rest.
func Format(diffs []diffmatchpatch.Diff, colorize bool) string {
	var buff bytes.Buffer

	writeLine := func(prefix string, color string, line string) {
		if colorize && color != "" {
			buff.WriteString(color)
		}
		buff.WriteString(prefix)
		buff.WriteString(line)
		if colorize && color != "" {
			buff.WriteString(colors.Reset)
		}
		buff.WriteString("\n")
	}
	elide := func() {
		writeLine("  ", colors.SpecUnimportant, "...")
	}

	for index, diff := range diffs {
		lines := strings.Split(strings.TrimSuffix(diff.Text, "\n"), "\n")
		printLines := func(prefix string, color string, start int, end int) {
			for i := start; i < end; i++ {
				writeLine(prefix, color, lines[i])
			}
		}

		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			printLines("+ ", colors.SpecAdded, 0, len(lines))
		case diffmatchpatch.DiffDelete:
			printLines("- ", colors.SpecDeleted, 0, len(lines))
		case diffmatchpatch.DiffEqual:
			switch {
			case len(diffs) == 1:
				// Nothing changed, so there is no context to show.
			case index == 0 && len(lines) > ContextLines+1:
				elide()
				printLines("  ", "", len(lines)-ContextLines, len(lines))
			case index == len(diffs)-1 && len(lines) > ContextLines+1:
				printLines("  ", "", 0, ContextLines)
				elide()
			case index > 0 && index < len(diffs)-1 && len(lines) > 2*ContextLines+1:
				printLines("  ", "", 0, ContextLines)
				elide()
				printLines("  ", "", len(lines)-ContextLines, len(lines))
			default:
				printLines("  ", "", 0, len(lines))
			}
		}
	}

	s := buff.String()
	if colorize {
		s = colors.ColorizeText(s)
	}
	return s
}
