// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"fmt"
	"strings"

	"github.com/bufbuild/wikitree/internal/textx"
)

const (
	// Simple renders a single line in the style of the Go compiler.
	Simple Style = 1 + iota
	// Monochrome renders the full diagnostic without escape codes.
	Monochrome
	// Colored renders the full diagnostic with ANSI colors.
	Colored
)

// The display width long context lines are elided to.
const terminalWidth = 80

// Style indicates how a diagnostic should be rendered to show a user.
type Style int

// color is the set of escape codes used for pretty-rendering diagnostics.
// The zero value renders no codes at all, which is how Monochrome output
// stays byte-wise identical to Colored output minus the escapes.
type color struct {
	reset string
	nRed  string
	bRed  string
	bBlue string
}

func ansiColor() color {
	return color{
		reset: "\033[0m",
		nRed:  "\033[0;31m",
		bRed:  "\033[1;31m",
		bBlue: "\033[1;34m",
	}
}

// Render renders this error in a format suitable for showing to a user.
func (e *Error) Render(style Style) string {
	if e.Parse != nil {
		return e.Parse.Render(style)
	}
	return e.Transformation.Render(style)
}

// Render renders this parse error, including its source context window.
func (e *ParseError) Render(style Style) string {
	tokens := make([]string, len(e.Expected))
	for i, token := range e.Expected {
		if textx.Whitespace(token) {
			tokens[i] = fmt.Sprintf("%q", token)
		} else {
			tokens[i] = token
		}
	}

	if style == Simple {
		return fmt.Sprintf(
			"error: %d:%d: could not continue to parse, expected one of: %s",
			e.Position.Line, e.Position.Col, strings.Join(tokens, ", "),
		)
	}

	var color color
	if style == Colored {
		color = ansiColor()
	}

	var out strings.Builder
	fmt.Fprintf(
		&out, "%sERROR in line %d at column %d: Could not continue to parse, expected one of: %s",
		color.bRed, e.Position.Line, e.Position.Col, color.reset,
	)
	fmt.Fprintf(&out, "%s%s%s\n", color.bBlue, strings.Join(tokens, ", "), color.reset)

	for i, content := range e.Context {
		lineno := fmt.Sprintf("%d |", e.ContextStart+i+1)
		if e.ContextStart+i+1 == e.Position.Line {
			// The failing line is never shortened; the failure offset
			// must stay visible even on very long lines.
			fmt.Fprintf(&out, "%s%s%s %s%s%s\n", color.bRed, lineno, color.reset, color.nRed, content, color.reset)
		} else {
			fmt.Fprintf(&out, "%s%s%s %s\n", color.bBlue, lineno, color.reset, textx.Shorten(content, terminalWidth))
		}
	}

	return out.String()
}

// Render renders this transformation error.
func (e *TransformationError) Render(style Style) string {
	if style == Simple {
		return fmt.Sprintf(
			"error: %d:%d: %s: %s",
			e.Position.Start.Line, e.Position.Start.Col, e.TransformationName, e.Cause,
		)
	}

	var color color
	if style == Colored {
		color = ansiColor()
	}

	return fmt.Sprintf(
		"%sERROR applying transformation %q to element at %d:%d to %d:%d: %s%s\n",
		color.bRed,
		e.TransformationName,
		e.Position.Start.Line, e.Position.Start.Col,
		e.Position.End.Line, e.Position.End.Col,
		e.Cause,
		color.reset,
	)
}
