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

// Package report defines the error types surfaced to users of this
// library, and renders them as human-readable diagnostics.
//
// There are exactly two failure modes: the grammar cannot match the input
// ([ParseError]), or a normalization pass finds a tree that violates its
// structural invariants ([TransformationError]). Both abort processing
// immediately and are carried by the unified [Error], whose serialized
// form is stable regardless of how the diagnostic is rendered.
package report

import (
	"slices"

	"github.com/bufbuild/wikitree/ast"
)

// ContextLines is the number of source lines shown above and below the
// failing line of a parse error.
const ContextLines = 5

// ParseError reports that the grammar could not continue to parse.
//
// Context holds the failing line along with up to [ContextLines] lines on
// either side, clamped to the document. ContextStart and ContextEnd are
// the inclusive zero-based line indices of that window, so renderers can
// label each context line with its real line number.
type ParseError struct {
	Position ast.Position `yaml:"position" json:"position"`
	Expected []string     `yaml:"expected" json:"expected"`
	Context  []string     `yaml:"context" json:"context"`

	ContextStart int `yaml:"context_start" json:"context_start"`
	ContextEnd   int `yaml:"context_end" json:"context_end"`
}

// NewParseError builds a ParseError from the grammar's raw failure data:
// the byte offset and 1-based line it stopped at, and the descriptions of
// the tokens it would have accepted, in grammar order and undeduplicated.
func NewParseError(offset, line int, expected []string, source string) *ParseError {
	lines := ast.Lines(source)

	// The grammar may report a line just past the document when the
	// failure is at EOF; clamp it so the context window stays in range.
	failing := min(line, len(lines)) - 1

	start := max(failing-ContextLines, 0)
	end := min(failing+ContextLines, len(lines)-1)

	context := make([]string, 0, end-start+1)
	for _, sloc := range lines[start : end+1] {
		context = append(context, sloc.Content)
	}

	return &ParseError{
		Position:     ast.PositionAt(offset, lines),
		Expected:     slices.Clone(expected),
		Context:      context,
		ContextStart: start,
		ContextEnd:   end,
	}
}

func (e *ParseError) Error() string {
	return "could not continue to parse, because no rules could be matched"
}

// TransformationError reports a structural invariant violation found by a
// normalization pass. Tree is a clone of the offending subtree, kept for
// diagnosis and for the serialized form of the error.
type TransformationError struct {
	Cause              string      `yaml:"cause" json:"cause"`
	Position           ast.Span    `yaml:"position" json:"position"`
	TransformationName string      `yaml:"transformation_name" json:"transformation_name"`
	Tree               ast.Element `yaml:"tree" json:"tree"`
}

func (e *TransformationError) Error() string {
	return e.Cause
}

// Error is the unified error type of this library: exactly one of Parse
// and Transformation is set. The field names double as the discriminator
// in the serialized form.
type Error struct {
	Parse          *ParseError          `yaml:"parseerror,omitempty" json:"parseerror,omitempty"`
	Transformation *TransformationError `yaml:"transformationerror,omitempty" json:"transformationerror,omitempty"`
}

func (e *Error) Error() string {
	if e.Parse != nil {
		return e.Parse.Error()
	}
	return e.Transformation.Error()
}

// Unwrap exposes the underlying typed error to errors.As.
func (e *Error) Unwrap() error {
	if e.Parse != nil {
		return e.Parse
	}
	return e.Transformation
}
