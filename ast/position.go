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

package ast

import "unicode/utf8"

// Position is a location in the source document.
//
// Line and Col are 1-indexed. Col counts Unicode scalar values from the
// start of the line, not bytes, so a position inside "貓x" has the same
// column whether or not the line contains multi-byte runes.
//
// The zero Position is the wildcard: fixture files leave positions out
// when the exact coordinates are irrelevant, and [EquivalentPositions]
// treats the wildcard as matching anything. Ordinary == stays strict.
type Position struct {
	Offset int `yaml:"offset" json:"offset"`
	Line   int `yaml:"line" json:"line"`
	Col    int `yaml:"col" json:"col"`
}

// Span is the start and end position of one element.
//
// The zero Span is the "any" span, with both endpoints wildcard. It is the
// default for nodes synthesized by transformations.
type Span struct {
	Start Position `yaml:"start" json:"start"`
	End   Position `yaml:"end" json:"end"`
}

// Wildcard reports whether p is the all-zero wildcard position.
func (p Position) Wildcard() bool {
	return p == Position{}
}

// EquivalentPositions reports whether a and b match, treating the wildcard
// position as equal to anything.
//
// This is a fixture-comparison convenience, not an equality: it is not
// transitive. Use it only in test helpers; everywhere else, compare
// positions with ==.
func EquivalentPositions(a, b Position) bool {
	if a.Wildcard() || b.Wildcard() {
		return true
	}
	return a == b
}

// PositionAt computes the full position of a byte offset using the line
// index built by [Lines].
//
// Every offset maps to some position: an offset past the end of the last
// line yields line len(lines)+1 with a zero column.
func PositionAt(offset int, lines []SourceLine) Position {
	for i, line := range lines {
		if offset >= line.Start && offset < line.End {
			return Position{
				Offset: offset,
				Line:   i + 1,
				Col:    utf8.RuneCountInString(line.Content[:offset-line.Start]) + 1,
			}
		}
	}
	return Position{
		Offset: offset,
		Line:   len(lines) + 1,
		Col:    0,
	}
}

// NewSpan builds a span from a pair of byte offsets.
func NewSpan(start, end int, lines []SourceLine) Span {
	return Span{
		Start: PositionAt(start, lines),
		End:   PositionAt(end, lines),
	}
}
