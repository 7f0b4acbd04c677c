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
	"math"
	"strconv"
	"strings"

	"github.com/bufbuild/wikitree/ast"
	"github.com/bufbuild/wikitree/internal/textx"
	"github.com/bufbuild/wikitree/report"
)

// Settings carries read-only configuration for the default passes. It is
// currently empty, but every pass threads it so that configurable passes
// can be added without changing the recursion contract.
type Settings struct{}

// fail builds the error for a structural invariant violation found at el.
// The subtree is cloned in, since the pass owns (and may go on to drop)
// the original.
func fail(name string, el ast.Element, cause string) error {
	return &report.TransformationError{
		Cause:              cause,
		Position:           *el.Span(),
		TransformationName: name,
		Tree:               el.Clone(),
	}
}

// FoldHeadings moves flat headings into a hierarchical structure based on
// their depth.
func FoldHeadings(root ast.Element, settings *Settings) (ast.Element, error) {
	return RecurseWith(FoldHeadings, root, settings, moveDeeperHeadings)
}

// moveDeeperHeadings appends every heading that is deeper than the current
// reference heading to that reference heading's content.
func moveDeeperHeadings(trans Func[*Settings], content ast.Elements, settings *Settings) (ast.Elements, error) {
	result := make(ast.Elements, 0, len(content))
	refIndex := 0

	// Current reference depth; every deeper heading will be moved.
	depth := math.MaxInt

	for _, child := range content {
		heading, isHeading := child.(*ast.Heading)
		switch {
		case isHeading && heading.Depth > depth:
			ref := result[refIndex].(*ast.Heading)
			ref.Content = append(ref.Content, heading)
		case isHeading:
			// Pick a new reference heading if the new one is equally
			// deep or more shallow.
			refIndex = len(result)
			depth = heading.Depth
			result = append(result, heading)
		default:
			if depth < math.MaxInt {
				return nil, fail("fold_headings_transformation", child,
					"a non-heading element was found after a heading. This should not happen.")
			}
			result = append(result, child)
		}
	}

	// Recursing afterwards resolves multi-level depth jumps: the headings
	// just moved are folded again one level down.
	return Apply(trans, result, settings)
}

// FoldLists moves list items of higher depth into separate sub-lists.
// If a list starts with a deeper item than one, this transformation still
// applies, although this should later be a linter error.
func FoldLists(root ast.Element, settings *Settings) (ast.Element, error) {
	if _, isList := root.(*ast.List); isList {
		return RecurseWith(FoldLists, root, settings, moveDeeperItems)
	}
	return RecurseWith(FoldLists, root, settings, rejectStrayItems)
}

// rejectStrayItems surfaces list items whose immediate container is not a
// list; the grammar never produces them, so one in the tree means the
// input was rearranged incorrectly upstream.
func rejectStrayItems(trans Func[*Settings], content ast.Elements, settings *Settings) (ast.Elements, error) {
	for _, child := range content {
		if _, isItem := child.(*ast.ListItem); isItem {
			return nil, fail("fold_lists_transformation", child,
				"a list item should not appear outside of a list.")
		}
	}
	return Apply(trans, content, settings)
}

// moveDeeperItems moves list items which are deeper than the current level
// into new sub-lists.
func moveDeeperItems(trans Func[*Settings], content ast.Elements, settings *Settings) (ast.Elements, error) {
	// The least deep item; every deeper item is moved to a sublist.
	lowest := math.MaxInt
	for _, child := range content {
		item, isItem := child.(*ast.ListItem)
		if !isItem {
			return nil, fail("fold_lists_transformation", child,
				"A list should not contain non-listitems.")
		}
		lowest = min(lowest, item.Depth)
	}

	result := make(ast.Elements, 0, len(content))

	// Whether the next deeper item starts a new sublist.
	createSublist := true

	for _, child := range content {
		item := child.(*ast.ListItem)
		if item.Depth <= lowest {
			result = append(result, item)
			createSublist = true
			continue
		}

		if createSublist {
			createSublist = false
			if len(result) == 0 {
				// The list starts deeper than its lowest depth;
				// synthesize an item to host the sublist.
				result = append(result, &ast.ListItem{
					Position: item.Position,
					Depth:    lowest,
					Kind:     item.Kind,
				})
			}
			host := result[len(result)-1].(*ast.ListItem)
			host.Content = append(host.Content, &ast.List{Position: item.Position})
		}

		host := result[len(result)-1].(*ast.ListItem)
		sublist, ok := host.Content[len(host.Content)-1].(*ast.List)
		if !ok {
			return nil, fail("fold_lists_transformation", item,
				"sublist was not instantiated properly.")
		}
		sublist.Content = append(sublist.Content, item)
	}

	return Apply(trans, result, settings)
}

// WhitespaceParagraphsToEmpty clears the content of paragraphs containing
// nothing but whitespace text, so that the paragraph collapse pass can
// treat them as blank separators.
func WhitespaceParagraphsToEmpty(root ast.Element, settings *Settings) (ast.Element, error) {
	if par, ok := root.(*ast.Paragraph); ok {
		onlyWhitespace := true
		for _, child := range par.Content {
			text, isText := child.(*ast.Text)
			if !isText || !textx.Whitespace(text.Text) {
				onlyWhitespace = false
				break
			}
		}
		if onlyWhitespace {
			par.Content = nil
		}
	}
	return Recurse(WhitespaceParagraphsToEmpty, root, settings)
}

// CollapseParagraphs reduces consecutive paragraphs into one, if not
// separated by a blank paragraph.
func CollapseParagraphs(root ast.Element, settings *Settings) (ast.Element, error) {
	return RecurseWith(CollapseParagraphs, root, settings, squashEmptyParagraphs)
}

func squashEmptyParagraphs(trans Func[*Settings], content ast.Elements, settings *Settings) (ast.Elements, error) {
	result := make(ast.Elements, 0, len(content))
	lastEmpty := false

	for _, child := range content {
		if par, ok := child.(*ast.Paragraph); ok {
			if len(par.Content) == 0 {
				lastEmpty = true
				continue
			}

			// If the last paragraph was not separated by a blank one,
			// append to it, joined by a space for the line break.
			if !lastEmpty && len(result) > 0 {
				if last, ok := result[len(result)-1].(*ast.Paragraph); ok {
					last.Content = append(last.Content, &ast.Text{
						Position: last.Position,
						Text:     " ",
					})
					last.Content = append(last.Content, par.Content...)
					last.Position.End = par.Position.End
					continue
				}
			}
		}

		result = append(result, child)
		lastEmpty = false
	}

	return Apply(trans, result, settings)
}

// CollapseConsecutiveText merges adjacent text nodes into one, reducing
// whitespace-only nodes to a single space.
func CollapseConsecutiveText(root ast.Element, settings *Settings) (ast.Element, error) {
	return RecurseWith(CollapseConsecutiveText, root, settings, squashText)
}

func squashText(trans Func[*Settings], content ast.Elements, settings *Settings) (ast.Elements, error) {
	result := make(ast.Elements, 0, len(content))

	for _, child := range content {
		if text, ok := child.(*ast.Text); ok && len(result) > 0 {
			if last, ok := result[len(result)-1].(*ast.Text); ok {
				if textx.Whitespace(text.Text) {
					last.Text += " "
				} else {
					last.Text += text.Text
				}
				last.Position.End = text.Position.End
				continue
			}
		}
		result = append(result, child)
	}

	return Apply(trans, result, settings)
}

// EnumerateAnonArgs names anonymous template arguments "1", "2", ... in
// order of appearance. Named arguments are left alone and do not consume
// a number.
func EnumerateAnonArgs(root ast.Element, settings *Settings) (ast.Element, error) {
	if template, ok := root.(*ast.Template); ok {
		counter := 1
		for _, child := range template.Content {
			if arg, ok := child.(*ast.TemplateArgument); ok && strings.TrimSpace(arg.Name) == "" {
				arg.Name = strconv.Itoa(counter)
				counter++
			}
		}
	}
	return Recurse(EnumerateAnonArgs, root, settings)
}
