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

package traverse_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/wikitree/ast"
	"github.com/bufbuild/wikitree/traverse"
)

func sampleTree() *ast.Document {
	return &ast.Document{Content: ast.Elements{
		&ast.Heading{
			Depth:   1,
			Caption: ast.Elements{&ast.Text{Text: "Title"}},
			Content: ast.Elements{
				&ast.Paragraph{Content: ast.Elements{&ast.Text{Text: "body"}}},
			},
		},
	}}
}

func TestRunVisitsPreOrder(t *testing.T) {
	t.Parallel()
	var visited []string
	walker := &traverse.Traversal[struct{}]{
		Node: func(root ast.Element, settings struct{}, out io.Writer) (bool, error) {
			visited = append(visited, root.Variant())
			return true, nil
		},
	}

	require.NoError(t, walker.Run(sampleTree(), struct{}{}, io.Discard))
	assert.Equal(t,
		[]string{"Document", "Heading", "Text", "Paragraph", "Text"},
		visited)
}

func TestRunWritesOutput(t *testing.T) {
	t.Parallel()
	printer := &traverse.Traversal[struct{}]{
		Node: func(root ast.Element, settings struct{}, out io.Writer) (bool, error) {
			if text, ok := root.(*ast.Text); ok {
				if _, err := io.WriteString(out, text.Text); err != nil {
					return false, err
				}
			}
			return true, nil
		},
	}

	var out strings.Builder
	require.NoError(t, printer.Run(sampleTree(), struct{}{}, &out))
	assert.Equal(t, "Titlebody", out.String())
}

func TestRunPrunesSubtrees(t *testing.T) {
	t.Parallel()
	var visited []string
	walker := &traverse.Traversal[struct{}]{
		Node: func(root ast.Element, settings struct{}, out io.Writer) (bool, error) {
			visited = append(visited, root.Variant())
			// Skip everything below headings; siblings are unaffected.
			_, isHeading := root.(*ast.Heading)
			return !isHeading, nil
		},
	}

	root := &ast.Document{Content: ast.Elements{
		&ast.Heading{Caption: ast.Elements{&ast.Text{Text: "skipped"}}},
		&ast.Paragraph{Content: ast.Elements{&ast.Text{Text: "kept"}}},
	}}
	require.NoError(t, walker.Run(root, struct{}{}, io.Discard))
	assert.Equal(t, []string{"Document", "Heading", "Paragraph", "Text"}, visited)
}

func TestRunPrunesLists(t *testing.T) {
	t.Parallel()
	var visited []string
	walker := &traverse.Traversal[struct{}]{
		Node: func(root ast.Element, settings struct{}, out io.Writer) (bool, error) {
			visited = append(visited, root.Variant())
			return true, nil
		},
		List: func(content ast.Elements, settings struct{}, out io.Writer) (bool, error) {
			return false, nil
		},
	}

	require.NoError(t, walker.Run(sampleTree(), struct{}{}, io.Discard))
	assert.Equal(t, []string{"Document"}, visited)
}

func TestPathHoldsAncestors(t *testing.T) {
	t.Parallel()
	depths := map[string]int{}
	walker := &traverse.Traversal[struct{}]{}
	walker.Node = func(root ast.Element, settings struct{}, out io.Writer) (bool, error) {
		path := walker.Path()
		require.Same(t, root, path[len(path)-1])
		depths[root.Variant()] = len(path)
		return true, nil
	}

	require.NoError(t, walker.Run(sampleTree(), struct{}{}, io.Discard))
	// The body text is deepest and visited last, so it wins the map slot.
	assert.Equal(t, map[string]int{
		"Document":  1,
		"Heading":   2,
		"Paragraph": 3,
		"Text":      4,
	}, depths)
}

func TestRunPropagatesErrors(t *testing.T) {
	t.Parallel()
	walker := &traverse.Traversal[struct{}]{
		Node: func(root ast.Element, settings struct{}, out io.Writer) (bool, error) {
			if _, ok := root.(*ast.Paragraph); ok {
				return false, errors.New("boom")
			}
			return true, nil
		},
	}

	err := walker.Run(sampleTree(), struct{}{}, io.Discard)
	require.EqualError(t, err, "boom")
}
