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

package transform_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/wikitree/ast"
	"github.com/bufbuild/wikitree/transform"
)

// label identifies an element in visit-order assertions: text content for
// text nodes, the variant name for everything else.
func label(el ast.Element) string {
	if text, ok := el.(*ast.Text); ok {
		return text.Text
	}
	return el.Variant()
}

func TestRecurseVisitsTemplateNameFirst(t *testing.T) {
	t.Parallel()
	var visited []string
	var walk transform.Func[struct{}]
	walk = func(root ast.Element, settings struct{}) (ast.Element, error) {
		visited = append(visited, label(root))
		return transform.Recurse(walk, root, settings)
	}

	root := &ast.Template{
		Name: ast.Elements{&ast.Text{Text: "name"}},
		Content: ast.Elements{
			&ast.TemplateArgument{Value: ast.Elements{&ast.Text{Text: "value"}}},
		},
	}
	_, err := walk(root, struct{}{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Template", "name", "TemplateArgument", "value"}, visited)
}

func TestRecurseVisitsReferencePartsInOrder(t *testing.T) {
	t.Parallel()
	var visited []string
	var walk transform.Func[struct{}]
	walk = func(root ast.Element, settings struct{}) (ast.Element, error) {
		visited = append(visited, label(root))
		return transform.Recurse(walk, root, settings)
	}

	root := &ast.InternalReference{
		Target: ast.Elements{&ast.Text{Text: "target"}},
		Options: ast.OptionLists{
			{&ast.Text{Text: "option1"}},
			{&ast.Text{Text: "option2"}},
		},
		Caption: ast.Elements{&ast.Text{Text: "caption"}},
	}
	_, err := walk(root, struct{}{})
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"InternalReference", "target", "option1", "option2", "caption"},
		visited)
}

func TestApplyStopsAtFirstError(t *testing.T) {
	t.Parallel()
	calls := 0
	fail := func(root ast.Element, settings struct{}) (ast.Element, error) {
		calls++
		if calls == 2 {
			return nil, errors.New("boom")
		}
		return root, nil
	}

	content := ast.Elements{&ast.Text{}, &ast.Text{}, &ast.Text{}}
	_, err := transform.Apply(fail, content, struct{}{})
	require.EqualError(t, err, "boom")
	assert.Equal(t, 2, calls)
}

func TestRecurseWithReplacesChildLists(t *testing.T) {
	t.Parallel()
	keep := func(root ast.Element, settings struct{}) (ast.Element, error) {
		return root, nil
	}
	replace := func(f transform.Func[struct{}], content ast.Elements, settings struct{}) (ast.Elements, error) {
		return ast.Elements{&ast.Text{Text: "x"}}, nil
	}

	root := &ast.Heading{
		Depth:   1,
		Caption: ast.Elements{&ast.Text{Text: "a"}, &ast.Text{Text: "b"}},
		Content: ast.Elements{&ast.Paragraph{}},
	}
	out, err := transform.RecurseWith(keep, root, struct{}{}, replace)
	require.NoError(t, err)

	heading := out.(*ast.Heading)
	assert.Equal(t, ast.Elements{&ast.Text{Text: "x"}}, heading.Caption)
	assert.Equal(t, ast.Elements{&ast.Text{Text: "x"}}, heading.Content)
}

func TestRecurseCloneSharesNothing(t *testing.T) {
	t.Parallel()
	var clone transform.CloneFunc[struct{}]
	clone = func(root ast.Element, path []ast.Element, settings struct{}) (ast.Element, error) {
		return transform.RecurseClone(clone, root, path, settings)
	}

	root := &ast.Document{Content: ast.Elements{
		&ast.Paragraph{Content: ast.Elements{&ast.Text{Text: "hi"}}},
	}}
	out, err := transform.RecurseClone(clone, root, nil, struct{}{})
	require.NoError(t, err)
	require.Equal(t, ast.Element(root), out)

	out.(*ast.Document).Content[0].(*ast.Paragraph).Content[0].(*ast.Text).Text = "changed"
	assert.Equal(t, "hi", root.Content[0].(*ast.Paragraph).Content[0].(*ast.Text).Text)
}

func TestRecurseClonePathHoldsAncestors(t *testing.T) {
	t.Parallel()
	var paths [][]string
	var clone transform.CloneFunc[struct{}]
	clone = func(root ast.Element, path []ast.Element, settings struct{}) (ast.Element, error) {
		if _, ok := root.(*ast.Text); ok {
			names := make([]string, len(path))
			for i, ancestor := range path {
				names[i] = ancestor.Variant()
			}
			paths = append(paths, names)
		}
		return transform.RecurseClone(clone, root, path, settings)
	}

	root := &ast.Document{Content: ast.Elements{
		&ast.Paragraph{Content: ast.Elements{&ast.Text{Text: "hi"}}},
	}}
	_, err := transform.RecurseClone(clone, root, nil, struct{}{})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Document", "Paragraph"}}, paths)
}

func TestRecurseClonePropagatesErrors(t *testing.T) {
	t.Parallel()
	var clone transform.CloneFunc[struct{}]
	clone = func(root ast.Element, path []ast.Element, settings struct{}) (ast.Element, error) {
		if _, ok := root.(*ast.Text); ok {
			return nil, errors.New("boom")
		}
		return transform.RecurseClone(clone, root, path, settings)
	}

	root := &ast.Document{Content: ast.Elements{&ast.Text{Text: "hi"}}}
	_, err := transform.RecurseClone(clone, root, nil, struct{}{})
	require.EqualError(t, err, "boom")
}
