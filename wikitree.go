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

// Package wikitree turns wikitext source into a normalized, typed syntax
// tree with exact source positions on every node.
//
// The pieces are split into sub-packages: the [ast] package holds the
// tree model and serialization, [transform] the normalization pipeline,
// [traverse] a read-only visitor for consumers, and [report] the error
// types and diagnostic rendering. This package ties them together behind
// [Parse].
//
// The grammar itself is generated code and is not part of this module; a
// [Grammar] is passed to Parse as an opaque function, mirroring how the
// generated parser is linked into the original toolchain at build time.
package wikitree

import (
	"errors"

	"github.com/bufbuild/wikitree/ast"
	"github.com/bufbuild/wikitree/report"
	"github.com/bufbuild/wikitree/transform"
)

// Grammar parses raw wikitext into an unnormalized document tree. The
// line index is precomputed by the caller so the grammar can annotate
// every node with full positions without rescanning the source.
//
// A Grammar reports failure through *GrammarError rather than error so
// that implementations generated from a PEG, which know their offset and
// expected-token set but nothing about diagnostics, stay trivial.
type Grammar func(source string, lines []ast.SourceLine) (ast.Element, *GrammarError)

// GrammarError is the raw failure data a [Grammar] produces: where
// parsing stopped and which tokens would have let it continue. Expected
// is in grammar order and may contain duplicates.
type GrammarError struct {
	Offset   int
	Line     int
	Expected []string
}

// Parse parses source with g and normalizes the resulting tree.
//
// On failure the returned error is always a [*report.Error], carrying
// either the parse failure with its source context window or the
// transformation failure with the offending subtree. Malformed input
// never panics; it surfaces as an error.
func Parse(source string, g Grammar) (ast.Element, error) {
	lines := ast.Lines(source)

	root, gerr := g(source, lines)
	if gerr != nil {
		return nil, &report.Error{
			Parse: report.NewParseError(gerr.Offset, gerr.Line, gerr.Expected, source),
		}
	}

	root, err := transform.Pipeline(root)
	if err != nil {
		var terr *report.TransformationError
		if errors.As(err, &terr) {
			return nil, &report.Error{Transformation: terr}
		}
		return nil, err
	}
	return root, nil
}
