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

import "slices"

// Element is a node in a wikitext document tree.
//
// Element is a closed sum: the only implementations are the pointer types
// in this package. Code dispatching over elements should type-switch over
// all of them; new variants are added here and nowhere else.
type Element interface {
	// Span returns the source span of the element. The returned pointer
	// aliases the element, so it may be used to adjust positions in place.
	Span() *Span

	// Variant returns the variant name of the element, e.g. "Heading".
	Variant() string

	// Clone returns a deep copy of the element.
	Clone() Element
}

// Elements is a sibling list of elements.
type Elements []Element

// Clone returns a deep copy of the list.
func (e Elements) Clone() Elements {
	if e == nil {
		return nil
	}
	out := make(Elements, len(e))
	for i, el := range e {
		out[i] = el.Clone()
	}
	return out
}

// OptionLists holds the options of an [InternalReference], one sibling
// list per option.
type OptionLists []Elements

// Document is the root of a parsed document.
type Document struct {
	Position Span     `yaml:"position" json:"position"`
	Content  Elements `yaml:"content" json:"content"`
}

// Heading is a section heading. Depth is the number of markers the heading
// was written with; after heading folding, Content holds the section body
// followed by any sub-headings of strictly greater depth.
type Heading struct {
	Position Span     `yaml:"position" json:"position"`
	Depth    int      `yaml:"depth" json:"depth"`
	Caption  Elements `yaml:"caption" json:"caption"`
	Content  Elements `yaml:"content" json:"content"`
}

// Text is a run of plain text.
type Text struct {
	Position Span   `yaml:"position" json:"position"`
	Text     string `yaml:"text" json:"text"`
}

// Formatted is inline content with a markup applied to it.
type Formatted struct {
	Position Span       `yaml:"position" json:"position"`
	Markup   MarkupType `yaml:"markup" json:"markup"`
	Content  Elements   `yaml:"content" json:"content"`
}

// Paragraph is a block of inline content.
type Paragraph struct {
	Position Span     `yaml:"position" json:"position"`
	Content  Elements `yaml:"content" json:"content"`
}

// Template is a template invocation; Content holds its arguments.
type Template struct {
	Position Span     `yaml:"position" json:"position"`
	Name     Elements `yaml:"name" json:"name"`
	Content  Elements `yaml:"content" json:"content"`
}

// TemplateArgument is a single argument of a template invocation. Anonymous
// arguments have an empty Name until the enumeration pass assigns "1", "2",
// and so on.
type TemplateArgument struct {
	Position Span     `yaml:"position" json:"position"`
	Name     string   `yaml:"name" json:"name"`
	Value    Elements `yaml:"value" json:"value"`
}

// InternalReference is a wiki link, e.g. [[target|option|caption]].
type InternalReference struct {
	Position Span        `yaml:"position" json:"position"`
	Target   Elements    `yaml:"target" json:"target"`
	Options  OptionLists `yaml:"options" json:"options"`
	Caption  Elements    `yaml:"caption" json:"caption"`
}

// ExternalReference is an external link, e.g. [url caption].
type ExternalReference struct {
	Position Span     `yaml:"position" json:"position"`
	Target   string   `yaml:"target" json:"target"`
	Caption  Elements `yaml:"caption" json:"caption"`
}

// ListItem is one item of a list. Depth is the marker count as written in
// the source; list folding rewrites depth runs into nested sub-lists.
type ListItem struct {
	Position Span         `yaml:"position" json:"position"`
	Depth    int          `yaml:"depth" json:"depth"`
	Kind     ListItemKind `yaml:"kind" json:"kind"`
	Content  Elements     `yaml:"content" json:"content"`
}

// List is a list of items. A well-formed List contains only ListItems.
type List struct {
	Position Span     `yaml:"position" json:"position"`
	Content  Elements `yaml:"content" json:"content"`
}

// Table is a wikitext table.
type Table struct {
	Position          Span          `yaml:"position" json:"position"`
	Attributes        TagAttributes `yaml:"attributes" json:"attributes"`
	Caption           Elements      `yaml:"caption" json:"caption"`
	CaptionAttributes TagAttributes `yaml:"caption_attributes" json:"caption_attributes"`
	Rows              Elements      `yaml:"rows" json:"rows"`
}

// TableRow is a single row of a table.
type TableRow struct {
	Position   Span          `yaml:"position" json:"position"`
	Attributes TagAttributes `yaml:"attributes" json:"attributes"`
	Cells      Elements      `yaml:"cells" json:"cells"`
}

// TableCell is a single cell of a table row.
type TableCell struct {
	Position   Span          `yaml:"position" json:"position"`
	Header     bool          `yaml:"header" json:"header"`
	Attributes TagAttributes `yaml:"attributes" json:"attributes"`
	Content    Elements      `yaml:"content" json:"content"`
}

// Comment is an HTML comment.
type Comment struct {
	Position Span   `yaml:"position" json:"position"`
	Text     string `yaml:"text" json:"text"`
}

// HtmlTag is a literal HTML tag that does not map to a markup type.
type HtmlTag struct {
	Position   Span          `yaml:"position" json:"position"`
	Name       string        `yaml:"name" json:"name"`
	Attributes TagAttributes `yaml:"attributes" json:"attributes"`
	Content    Elements      `yaml:"content" json:"content"`
}

// Gallery is a <gallery> block of image references.
type Gallery struct {
	Position   Span          `yaml:"position" json:"position"`
	Attributes TagAttributes `yaml:"attributes" json:"attributes"`
	Content    Elements      `yaml:"content" json:"content"`
}

// Error is an error node the grammar emitted in place of unparsable input.
type Error struct {
	Position Span   `yaml:"position" json:"position"`
	Message  string `yaml:"message" json:"message"`
}

// TagAttributes is the attribute list of an HTML-like tag.
type TagAttributes []TagAttribute

// TagAttribute is a key/value pair attached to an HTML-like tag.
type TagAttribute struct {
	Position Span   `yaml:"position" json:"position"`
	Key      string `yaml:"key" json:"key"`
	Value    string `yaml:"value" json:"value"`
}

func (e *Document) Span() *Span          { return &e.Position }
func (e *Heading) Span() *Span           { return &e.Position }
func (e *Text) Span() *Span              { return &e.Position }
func (e *Formatted) Span() *Span         { return &e.Position }
func (e *Paragraph) Span() *Span         { return &e.Position }
func (e *Template) Span() *Span          { return &e.Position }
func (e *TemplateArgument) Span() *Span  { return &e.Position }
func (e *InternalReference) Span() *Span { return &e.Position }
func (e *ExternalReference) Span() *Span { return &e.Position }
func (e *ListItem) Span() *Span          { return &e.Position }
func (e *List) Span() *Span              { return &e.Position }
func (e *Table) Span() *Span             { return &e.Position }
func (e *TableRow) Span() *Span          { return &e.Position }
func (e *TableCell) Span() *Span         { return &e.Position }
func (e *Comment) Span() *Span           { return &e.Position }
func (e *HtmlTag) Span() *Span           { return &e.Position }
func (e *Gallery) Span() *Span           { return &e.Position }
func (e *Error) Span() *Span             { return &e.Position }

func (e *Document) Variant() string          { return "Document" }
func (e *Heading) Variant() string           { return "Heading" }
func (e *Text) Variant() string              { return "Text" }
func (e *Formatted) Variant() string         { return "Formatted" }
func (e *Paragraph) Variant() string         { return "Paragraph" }
func (e *Template) Variant() string          { return "Template" }
func (e *TemplateArgument) Variant() string  { return "TemplateArgument" }
func (e *InternalReference) Variant() string { return "InternalReference" }
func (e *ExternalReference) Variant() string { return "ExternalReference" }
func (e *ListItem) Variant() string          { return "ListItem" }
func (e *List) Variant() string              { return "List" }
func (e *Table) Variant() string             { return "Table" }
func (e *TableRow) Variant() string          { return "TableRow" }
func (e *TableCell) Variant() string         { return "TableCell" }
func (e *Comment) Variant() string           { return "Comment" }
func (e *HtmlTag) Variant() string           { return "HtmlTag" }
func (e *Gallery) Variant() string           { return "Gallery" }
func (e *Error) Variant() string             { return "Error" }

func (e *Document) Clone() Element {
	return &Document{Position: e.Position, Content: e.Content.Clone()}
}

func (e *Heading) Clone() Element {
	return &Heading{
		Position: e.Position,
		Depth:    e.Depth,
		Caption:  e.Caption.Clone(),
		Content:  e.Content.Clone(),
	}
}

func (e *Text) Clone() Element {
	clone := *e
	return &clone
}

func (e *Formatted) Clone() Element {
	return &Formatted{Position: e.Position, Markup: e.Markup, Content: e.Content.Clone()}
}

func (e *Paragraph) Clone() Element {
	return &Paragraph{Position: e.Position, Content: e.Content.Clone()}
}

func (e *Template) Clone() Element {
	return &Template{Position: e.Position, Name: e.Name.Clone(), Content: e.Content.Clone()}
}

func (e *TemplateArgument) Clone() Element {
	return &TemplateArgument{Position: e.Position, Name: e.Name, Value: e.Value.Clone()}
}

func (e *InternalReference) Clone() Element {
	var options OptionLists
	if e.Options != nil {
		options = make(OptionLists, len(e.Options))
		for i, option := range e.Options {
			options[i] = option.Clone()
		}
	}
	return &InternalReference{
		Position: e.Position,
		Target:   e.Target.Clone(),
		Options:  options,
		Caption:  e.Caption.Clone(),
	}
}

func (e *ExternalReference) Clone() Element {
	return &ExternalReference{Position: e.Position, Target: e.Target, Caption: e.Caption.Clone()}
}

func (e *ListItem) Clone() Element {
	return &ListItem{
		Position: e.Position,
		Depth:    e.Depth,
		Kind:     e.Kind,
		Content:  e.Content.Clone(),
	}
}

func (e *List) Clone() Element {
	return &List{Position: e.Position, Content: e.Content.Clone()}
}

func (e *Table) Clone() Element {
	return &Table{
		Position:          e.Position,
		Attributes:        slices.Clone(e.Attributes),
		Caption:           e.Caption.Clone(),
		CaptionAttributes: slices.Clone(e.CaptionAttributes),
		Rows:              e.Rows.Clone(),
	}
}

func (e *TableRow) Clone() Element {
	return &TableRow{
		Position:   e.Position,
		Attributes: slices.Clone(e.Attributes),
		Cells:      e.Cells.Clone(),
	}
}

func (e *TableCell) Clone() Element {
	return &TableCell{
		Position:   e.Position,
		Header:     e.Header,
		Attributes: slices.Clone(e.Attributes),
		Content:    e.Content.Clone(),
	}
}

func (e *Comment) Clone() Element {
	clone := *e
	return &clone
}

func (e *HtmlTag) Clone() Element {
	return &HtmlTag{
		Position:   e.Position,
		Name:       e.Name,
		Attributes: slices.Clone(e.Attributes),
		Content:    e.Content.Clone(),
	}
}

func (e *Gallery) Clone() Element {
	return &Gallery{
		Position:   e.Position,
		Attributes: slices.Clone(e.Attributes),
		Content:    e.Content.Clone(),
	}
}

func (e *Error) Clone() Element {
	clone := *e
	return &clone
}
