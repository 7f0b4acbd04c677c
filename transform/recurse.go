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

package transform

import (
	"slices"

	"github.com/bufbuild/wikitree/ast"
)

// Func is a consuming transformation: it takes ownership of root and
// returns the replacement subtree. S is an opaque settings value threaded
// unchanged through the whole recursion; it must be cheap to copy and is
// never written by the engine.
type Func[S any] func(root ast.Element, settings S) (ast.Element, error)

// ContentFunc rebuilds one sibling list during recursion. It receives the
// transformation being applied so it can recurse into the children it
// produces, usually by ending with [Apply].
type ContentFunc[S any] func(f Func[S], content ast.Elements, settings S) (ast.Elements, error)

// CloneFunc is a non-consuming transformation. It must not mutate root or
// the path; path holds root's ancestors, outermost first.
type CloneFunc[S any] func(root ast.Element, path []ast.Element, settings S) (ast.Element, error)

// Apply is the default content handler: it applies f to every element of
// content in order, stopping at the first error.
func Apply[S any](f Func[S], content ast.Elements, settings S) (ast.Elements, error) {
	for i, child := range content {
		next, err := f(child, settings)
		if err != nil {
			return nil, err
		}
		content[i] = next
	}
	return content, nil
}

// Recurse applies f to every child of root, in place.
//
// Child lists are visited in declaration order: caption before content for
// headings, name before content for templates, and target, options,
// caption for internal references. Scalar fields are left alone. Variants
// without children (Text, Comment, Error) pass through unchanged.
func Recurse[S any](f Func[S], root ast.Element, settings S) (ast.Element, error) {
	return RecurseWith(f, root, settings, Apply[S])
}

// RecurseWith is Recurse with an injected content handler: every child
// list of root is replaced by content(f, list, settings). The handler
// owns recursion into the lists it returns, which is what lets folding
// passes restructure a sibling run and then descend into the result.
func RecurseWith[S any](f Func[S], root ast.Element, settings S, content ContentFunc[S]) (ast.Element, error) {
	var err error
	switch el := root.(type) {
	case *ast.Document:
		if el.Content, err = content(f, el.Content, settings); err != nil {
			return nil, err
		}
	case *ast.Heading:
		if el.Caption, err = content(f, el.Caption, settings); err != nil {
			return nil, err
		}
		if el.Content, err = content(f, el.Content, settings); err != nil {
			return nil, err
		}
	case *ast.Text:
	case *ast.Formatted:
		if el.Content, err = content(f, el.Content, settings); err != nil {
			return nil, err
		}
	case *ast.Paragraph:
		if el.Content, err = content(f, el.Content, settings); err != nil {
			return nil, err
		}
	case *ast.Template:
		if el.Name, err = content(f, el.Name, settings); err != nil {
			return nil, err
		}
		if el.Content, err = content(f, el.Content, settings); err != nil {
			return nil, err
		}
	case *ast.TemplateArgument:
		if el.Value, err = content(f, el.Value, settings); err != nil {
			return nil, err
		}
	case *ast.InternalReference:
		if el.Target, err = content(f, el.Target, settings); err != nil {
			return nil, err
		}
		for i, option := range el.Options {
			if el.Options[i], err = content(f, option, settings); err != nil {
				return nil, err
			}
		}
		if el.Caption, err = content(f, el.Caption, settings); err != nil {
			return nil, err
		}
	case *ast.ExternalReference:
		if el.Caption, err = content(f, el.Caption, settings); err != nil {
			return nil, err
		}
	case *ast.ListItem:
		if el.Content, err = content(f, el.Content, settings); err != nil {
			return nil, err
		}
	case *ast.List:
		if el.Content, err = content(f, el.Content, settings); err != nil {
			return nil, err
		}
	case *ast.Table:
		if el.Caption, err = content(f, el.Caption, settings); err != nil {
			return nil, err
		}
		if el.Rows, err = content(f, el.Rows, settings); err != nil {
			return nil, err
		}
	case *ast.TableRow:
		if el.Cells, err = content(f, el.Cells, settings); err != nil {
			return nil, err
		}
	case *ast.TableCell:
		if el.Content, err = content(f, el.Content, settings); err != nil {
			return nil, err
		}
	case *ast.Comment:
	case *ast.HtmlTag:
		if el.Content, err = content(f, el.Content, settings); err != nil {
			return nil, err
		}
	case *ast.Gallery:
		if el.Content, err = content(f, el.Content, settings); err != nil {
			return nil, err
		}
	case *ast.Error:
	}
	return root, nil
}

// RecurseClone rebuilds root by applying f to every child, producing a
// tree that shares no nodes with the input. Before descending, root is
// appended to the path seen by f; f is responsible for recursing further,
// usually by calling RecurseClone on its argument.
func RecurseClone[S any](f CloneFunc[S], root ast.Element, path []ast.Element, settings S) (ast.Element, error) {
	path = append(path, root)

	applyClone := func(content ast.Elements) (ast.Elements, error) {
		if content == nil {
			return nil, nil
		}
		out := make(ast.Elements, len(content))
		for i, child := range content {
			next, err := f(child, path, settings)
			if err != nil {
				return nil, err
			}
			out[i] = next
		}
		return out, nil
	}

	switch el := root.(type) {
	case *ast.Document:
		content, err := applyClone(el.Content)
		if err != nil {
			return nil, err
		}
		return &ast.Document{Position: el.Position, Content: content}, nil
	case *ast.Heading:
		caption, err := applyClone(el.Caption)
		if err != nil {
			return nil, err
		}
		content, err := applyClone(el.Content)
		if err != nil {
			return nil, err
		}
		return &ast.Heading{Position: el.Position, Depth: el.Depth, Caption: caption, Content: content}, nil
	case *ast.Text:
		return el.Clone(), nil
	case *ast.Formatted:
		content, err := applyClone(el.Content)
		if err != nil {
			return nil, err
		}
		return &ast.Formatted{Position: el.Position, Markup: el.Markup, Content: content}, nil
	case *ast.Paragraph:
		content, err := applyClone(el.Content)
		if err != nil {
			return nil, err
		}
		return &ast.Paragraph{Position: el.Position, Content: content}, nil
	case *ast.Template:
		name, err := applyClone(el.Name)
		if err != nil {
			return nil, err
		}
		content, err := applyClone(el.Content)
		if err != nil {
			return nil, err
		}
		return &ast.Template{Position: el.Position, Name: name, Content: content}, nil
	case *ast.TemplateArgument:
		value, err := applyClone(el.Value)
		if err != nil {
			return nil, err
		}
		return &ast.TemplateArgument{Position: el.Position, Name: el.Name, Value: value}, nil
	case *ast.InternalReference:
		target, err := applyClone(el.Target)
		if err != nil {
			return nil, err
		}
		var options ast.OptionLists
		if el.Options != nil {
			options = make(ast.OptionLists, len(el.Options))
			for i, option := range el.Options {
				if options[i], err = applyClone(option); err != nil {
					return nil, err
				}
			}
		}
		caption, err := applyClone(el.Caption)
		if err != nil {
			return nil, err
		}
		return &ast.InternalReference{Position: el.Position, Target: target, Options: options, Caption: caption}, nil
	case *ast.ExternalReference:
		caption, err := applyClone(el.Caption)
		if err != nil {
			return nil, err
		}
		return &ast.ExternalReference{Position: el.Position, Target: el.Target, Caption: caption}, nil
	case *ast.ListItem:
		content, err := applyClone(el.Content)
		if err != nil {
			return nil, err
		}
		return &ast.ListItem{Position: el.Position, Depth: el.Depth, Kind: el.Kind, Content: content}, nil
	case *ast.List:
		content, err := applyClone(el.Content)
		if err != nil {
			return nil, err
		}
		return &ast.List{Position: el.Position, Content: content}, nil
	case *ast.Table:
		caption, err := applyClone(el.Caption)
		if err != nil {
			return nil, err
		}
		rows, err := applyClone(el.Rows)
		if err != nil {
			return nil, err
		}
		return &ast.Table{
			Position:          el.Position,
			Attributes:        slices.Clone(el.Attributes),
			Caption:           caption,
			CaptionAttributes: slices.Clone(el.CaptionAttributes),
			Rows:              rows,
		}, nil
	case *ast.TableRow:
		cells, err := applyClone(el.Cells)
		if err != nil {
			return nil, err
		}
		return &ast.TableRow{Position: el.Position, Attributes: slices.Clone(el.Attributes), Cells: cells}, nil
	case *ast.TableCell:
		content, err := applyClone(el.Content)
		if err != nil {
			return nil, err
		}
		return &ast.TableCell{
			Position:   el.Position,
			Header:     el.Header,
			Attributes: slices.Clone(el.Attributes),
			Content:    content,
		}, nil
	case *ast.Comment:
		return el.Clone(), nil
	case *ast.HtmlTag:
		content, err := applyClone(el.Content)
		if err != nil {
			return nil, err
		}
		return &ast.HtmlTag{
			Position:   el.Position,
			Name:       el.Name,
			Attributes: slices.Clone(el.Attributes),
			Content:    content,
		}, nil
	case *ast.Gallery:
		content, err := applyClone(el.Content)
		if err != nil {
			return nil, err
		}
		return &ast.Gallery{Position: el.Position, Attributes: slices.Clone(el.Attributes), Content: content}, nil
	case *ast.Error:
		return el.Clone(), nil
	}
	return root.Clone(), nil
}
