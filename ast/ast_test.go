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
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/wikitree/ast"
)

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()
	original := &ast.Heading{
		Depth:   2,
		Caption: ast.Elements{&ast.Text{Text: "Title"}},
		Content: ast.Elements{
			&ast.Paragraph{Content: ast.Elements{&ast.Text{Text: "body"}}},
		},
	}

	clone := original.Clone().(*ast.Heading)
	require.Equal(t, original, clone)

	clone.Caption[0].(*ast.Text).Text = "changed"
	clone.Content[0].(*ast.Paragraph).Content[0].(*ast.Text).Text = "changed"
	clone.Span().Start.Line = 99

	assert.Equal(t, "Title", original.Caption[0].(*ast.Text).Text)
	assert.Equal(t, "body", original.Content[0].(*ast.Paragraph).Content[0].(*ast.Text).Text)
	assert.Zero(t, original.Position.Start.Line)
}

func TestCloneCopiesAttributes(t *testing.T) {
	t.Parallel()
	original := &ast.HtmlTag{
		Name:       "div",
		Attributes: ast.TagAttributes{{Key: "class", Value: "box"}},
	}

	clone := original.Clone().(*ast.HtmlTag)
	clone.Attributes[0].Value = "changed"
	assert.Equal(t, "box", original.Attributes[0].Value)
}

func TestCloneNilContent(t *testing.T) {
	t.Parallel()
	var content ast.Elements
	assert.Nil(t, content.Clone())

	clone := (&ast.List{}).Clone().(*ast.List)
	assert.Nil(t, clone.Content)
}

func TestVariant(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Document", (&ast.Document{}).Variant())
	assert.Equal(t, "InternalReference", (&ast.InternalReference{}).Variant())
	assert.Equal(t, "ListItem", (&ast.ListItem{}).Variant())
	assert.Equal(t, "HtmlTag", (&ast.HtmlTag{}).Variant())
}

func TestMarkupForTag(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ast.MarkupNoWiki, ast.MarkupForTag("nowiki"))
	assert.Equal(t, ast.MarkupStrikeThrough, ast.MarkupForTag("del"))
	assert.Equal(t, ast.MarkupStrikeThrough, ast.MarkupForTag("s"))
	assert.Equal(t, ast.MarkupUnderline, ast.MarkupForTag("ins"))
	assert.Equal(t, ast.MarkupPreformatted, ast.MarkupForTag("PRE"))

	assert.Panics(t, func() { ast.MarkupForTag("table") })
}
