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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/wikitree/ast"
)

func TestLines(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []ast.SourceLine{
		{Start: 0, Content: "ab", End: 3},
		{Start: 3, Content: "cd", End: 6},
	}, ast.Lines("ab\ncd"))

	// The empty document still has one (empty) line.
	assert.Equal(t, []ast.SourceLine{
		{Start: 0, Content: "", End: 1},
	}, ast.Lines(""))
}

func TestStartsLine(t *testing.T) {
	t.Parallel()
	lines := ast.Lines("ab\ncd")
	assert.True(t, ast.StartsLine(0, lines))
	assert.True(t, ast.StartsLine(3, lines))
	assert.False(t, ast.StartsLine(1, lines))
	assert.False(t, ast.StartsLine(4, lines))
}

func TestPositionAt(t *testing.T) {
	t.Parallel()
	lines := ast.Lines("ab\ncd")

	assert.Equal(t, ast.Position{Offset: 0, Line: 1, Col: 1}, ast.PositionAt(0, lines))
	assert.Equal(t, ast.Position{Offset: 4, Line: 2, Col: 2}, ast.PositionAt(4, lines))

	// The newline belongs to the line it terminates.
	assert.Equal(t, ast.Position{Offset: 2, Line: 1, Col: 3}, ast.PositionAt(2, lines))
}

func TestPositionAtPastEnd(t *testing.T) {
	t.Parallel()
	lines := ast.Lines("ab\ncd")
	assert.Equal(t, ast.Position{Offset: 10, Line: 3, Col: 0}, ast.PositionAt(10, lines))
}

func TestPositionAtCountsRunes(t *testing.T) {
	t.Parallel()

	// Every rune in "äöü" is two bytes; columns still advance by one.
	lines := ast.Lines("äöü")
	assert.Equal(t, ast.Position{Offset: 2, Line: 1, Col: 2}, ast.PositionAt(2, lines))
	assert.Equal(t, ast.Position{Offset: 4, Line: 1, Col: 3}, ast.PositionAt(4, lines))
}

func TestNewSpan(t *testing.T) {
	t.Parallel()
	lines := ast.Lines("ab\ncd")
	assert.Equal(t, ast.Span{
		Start: ast.Position{Offset: 1, Line: 1, Col: 2},
		End:   ast.Position{Offset: 4, Line: 2, Col: 2},
	}, ast.NewSpan(1, 4, lines))
}

func TestEquivalentPositions(t *testing.T) {
	t.Parallel()
	exact := ast.Position{Offset: 4, Line: 2, Col: 2}
	other := ast.Position{Offset: 5, Line: 2, Col: 3}
	wildcard := ast.Position{}

	assert.True(t, wildcard.Wildcard())
	assert.False(t, exact.Wildcard())

	assert.True(t, ast.EquivalentPositions(exact, exact))
	assert.False(t, ast.EquivalentPositions(exact, other))
	assert.True(t, ast.EquivalentPositions(wildcard, exact))
	assert.True(t, ast.EquivalentPositions(exact, wildcard))
	assert.True(t, ast.EquivalentPositions(wildcard, wildcard))
}
