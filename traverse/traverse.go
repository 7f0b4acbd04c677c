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

// Package traverse provides a read-only visitor over document trees, for
// consumers such as renderers, collectors, and linters that inspect a
// finished tree without rebuilding it.
package traverse

import (
	"io"

	"github.com/bufbuild/wikitree/ast"
)

// Traversal walks a document tree without mutating it.
//
// The two hooks are strategies: Node runs for every element before its
// children, List for every sibling list before its elements. Either may
// return false to prune recursion below that node or list; pruning does
// not stop the rest of the traversal. A nil hook visits everything.
//
// Stateful consumers embed a Traversal and read [Traversal.Path] from
// inside their hooks; the path holds the current node's ancestors,
// outermost first, including the node itself.
type Traversal[S any] struct {
	Node func(root ast.Element, settings S, out io.Writer) (bool, error)
	List func(content ast.Elements, settings S, out io.Writer) (bool, error)

	path []ast.Element
}

// Path returns the current traversal path. The returned slice is only
// valid until the enclosing hook returns.
func (t *Traversal[S]) Path() []ast.Element {
	return t.path
}

// Run visits root and, unless pruned, all of its descendants.
//
// Child lists are visited in the same order the transformation engine
// uses: caption before content for headings, name before content for
// templates, and target, options, caption for internal references.
func (t *Traversal[S]) Run(root ast.Element, settings S, out io.Writer) error {
	t.path = append(t.path, root)
	defer func() { t.path = t.path[:len(t.path)-1] }()

	if t.Node != nil {
		keepGoing, err := t.Node(root, settings, out)
		if err != nil || !keepGoing {
			return err
		}
	}

	switch el := root.(type) {
	case *ast.Document:
		return t.RunList(el.Content, settings, out)
	case *ast.Heading:
		if err := t.RunList(el.Caption, settings, out); err != nil {
			return err
		}
		return t.RunList(el.Content, settings, out)
	case *ast.Text:
	case *ast.Formatted:
		return t.RunList(el.Content, settings, out)
	case *ast.Paragraph:
		return t.RunList(el.Content, settings, out)
	case *ast.Template:
		if err := t.RunList(el.Name, settings, out); err != nil {
			return err
		}
		return t.RunList(el.Content, settings, out)
	case *ast.TemplateArgument:
		return t.RunList(el.Value, settings, out)
	case *ast.InternalReference:
		if err := t.RunList(el.Target, settings, out); err != nil {
			return err
		}
		for _, option := range el.Options {
			if err := t.RunList(option, settings, out); err != nil {
				return err
			}
		}
		return t.RunList(el.Caption, settings, out)
	case *ast.ExternalReference:
		return t.RunList(el.Caption, settings, out)
	case *ast.ListItem:
		return t.RunList(el.Content, settings, out)
	case *ast.List:
		return t.RunList(el.Content, settings, out)
	case *ast.Table:
		if err := t.RunList(el.Caption, settings, out); err != nil {
			return err
		}
		return t.RunList(el.Rows, settings, out)
	case *ast.TableRow:
		return t.RunList(el.Cells, settings, out)
	case *ast.TableCell:
		return t.RunList(el.Content, settings, out)
	case *ast.Comment:
	case *ast.HtmlTag:
		return t.RunList(el.Content, settings, out)
	case *ast.Gallery:
		return t.RunList(el.Content, settings, out)
	case *ast.Error:
	}
	return nil
}

// RunList visits a sibling list and, unless pruned, its elements.
func (t *Traversal[S]) RunList(content ast.Elements, settings S, out io.Writer) error {
	if t.List != nil {
		keepGoing, err := t.List(content, settings, out)
		if err != nil || !keepGoing {
			return err
		}
	}
	for _, el := range content {
		if err := t.Run(el, settings, out); err != nil {
			return err
		}
	}
	return nil
}
