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

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Serialized documents are tagged unions: every element carries a "type"
// key holding the lowercased variant name, followed by the variant's
// fields. Decoding is strict; a field that no variant declares is a hard
// error, so stale regression fixtures fail loudly instead of silently
// dropping data.

// variantFields lists the permitted keys for each serialized variant,
// not counting the "type" discriminator itself.
var variantFields = map[string][]string{
	"document":          {"position", "content"},
	"heading":           {"position", "depth", "caption", "content"},
	"text":              {"position", "text"},
	"formatted":         {"position", "markup", "content"},
	"paragraph":         {"position", "content"},
	"template":          {"position", "name", "content"},
	"templateargument":  {"position", "name", "value"},
	"internalreference": {"position", "target", "options", "caption"},
	"externalreference": {"position", "target", "caption"},
	"listitem":          {"position", "depth", "kind", "content"},
	"list":              {"position", "content"},
	"table":             {"position", "attributes", "caption", "caption_attributes", "rows"},
	"tablerow":          {"position", "attributes", "cells"},
	"tablecell":         {"position", "header", "attributes", "content"},
	"comment":           {"position", "text"},
	"htmltag":           {"position", "name", "attributes", "content"},
	"gallery":           {"position", "attributes", "content"},
	"error":             {"position", "message"},
}

// tagged is the marshaling envelope that puts the "type" discriminator in
// front of a variant's own fields.
type tagged[T any] struct {
	Type  string `yaml:"type"`
	Value T      `yaml:",inline"`
}

func yamlElement[T any](tag string, v T) (any, error) {
	return tagged[T]{Type: tag, Value: v}, nil
}

// jsonElement splices the "type" discriminator into the variant's own
// object, keeping it the first key like the YAML form.
func jsonElement(tag string, v any) ([]byte, error) {
	fields, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := fmt.Appendf(nil, `{"type":%q`, tag)
	if len(fields) > 2 {
		out = append(out, ',')
		out = append(out, fields[1:]...)
		return out, nil
	}
	return append(out, '}'), nil
}

// The raw aliases strip the marshaling methods off each variant so the
// envelope can serialize the plain fields without recursing.

func (e *Document) MarshalYAML() (any, error) {
	type raw Document
	return yamlElement("document", (*raw)(e))
}
func (e *Heading) MarshalYAML() (any, error) {
	type raw Heading
	return yamlElement("heading", (*raw)(e))
}
func (e *Text) MarshalYAML() (any, error) {
	type raw Text
	return yamlElement("text", (*raw)(e))
}
func (e *Formatted) MarshalYAML() (any, error) {
	type raw Formatted
	return yamlElement("formatted", (*raw)(e))
}
func (e *Paragraph) MarshalYAML() (any, error) {
	type raw Paragraph
	return yamlElement("paragraph", (*raw)(e))
}
func (e *Template) MarshalYAML() (any, error) {
	type raw Template
	return yamlElement("template", (*raw)(e))
}
func (e *TemplateArgument) MarshalYAML() (any, error) {
	type raw TemplateArgument
	return yamlElement("templateargument", (*raw)(e))
}
func (e *InternalReference) MarshalYAML() (any, error) {
	type raw InternalReference
	return yamlElement("internalreference", (*raw)(e))
}
func (e *ExternalReference) MarshalYAML() (any, error) {
	type raw ExternalReference
	return yamlElement("externalreference", (*raw)(e))
}
func (e *ListItem) MarshalYAML() (any, error) {
	type raw ListItem
	return yamlElement("listitem", (*raw)(e))
}
func (e *List) MarshalYAML() (any, error) {
	type raw List
	return yamlElement("list", (*raw)(e))
}
func (e *Table) MarshalYAML() (any, error) {
	type raw Table
	return yamlElement("table", (*raw)(e))
}
func (e *TableRow) MarshalYAML() (any, error) {
	type raw TableRow
	return yamlElement("tablerow", (*raw)(e))
}
func (e *TableCell) MarshalYAML() (any, error) {
	type raw TableCell
	return yamlElement("tablecell", (*raw)(e))
}
func (e *Comment) MarshalYAML() (any, error) {
	type raw Comment
	return yamlElement("comment", (*raw)(e))
}
func (e *HtmlTag) MarshalYAML() (any, error) {
	type raw HtmlTag
	return yamlElement("htmltag", (*raw)(e))
}
func (e *Gallery) MarshalYAML() (any, error) {
	type raw Gallery
	return yamlElement("gallery", (*raw)(e))
}
func (e *Error) MarshalYAML() (any, error) {
	type raw Error
	return yamlElement("error", (*raw)(e))
}

func (e *Document) MarshalJSON() ([]byte, error) {
	type raw Document
	return jsonElement("document", (*raw)(e))
}
func (e *Heading) MarshalJSON() ([]byte, error) {
	type raw Heading
	return jsonElement("heading", (*raw)(e))
}
func (e *Text) MarshalJSON() ([]byte, error) {
	type raw Text
	return jsonElement("text", (*raw)(e))
}
func (e *Formatted) MarshalJSON() ([]byte, error) {
	type raw Formatted
	return jsonElement("formatted", (*raw)(e))
}
func (e *Paragraph) MarshalJSON() ([]byte, error) {
	type raw Paragraph
	return jsonElement("paragraph", (*raw)(e))
}
func (e *Template) MarshalJSON() ([]byte, error) {
	type raw Template
	return jsonElement("template", (*raw)(e))
}
func (e *TemplateArgument) MarshalJSON() ([]byte, error) {
	type raw TemplateArgument
	return jsonElement("templateargument", (*raw)(e))
}
func (e *InternalReference) MarshalJSON() ([]byte, error) {
	type raw InternalReference
	return jsonElement("internalreference", (*raw)(e))
}
func (e *ExternalReference) MarshalJSON() ([]byte, error) {
	type raw ExternalReference
	return jsonElement("externalreference", (*raw)(e))
}
func (e *ListItem) MarshalJSON() ([]byte, error) {
	type raw ListItem
	return jsonElement("listitem", (*raw)(e))
}
func (e *List) MarshalJSON() ([]byte, error) {
	type raw List
	return jsonElement("list", (*raw)(e))
}
func (e *Table) MarshalJSON() ([]byte, error) {
	type raw Table
	return jsonElement("table", (*raw)(e))
}
func (e *TableRow) MarshalJSON() ([]byte, error) {
	type raw TableRow
	return jsonElement("tablerow", (*raw)(e))
}
func (e *TableCell) MarshalJSON() ([]byte, error) {
	type raw TableCell
	return jsonElement("tablecell", (*raw)(e))
}
func (e *Comment) MarshalJSON() ([]byte, error) {
	type raw Comment
	return jsonElement("comment", (*raw)(e))
}
func (e *HtmlTag) MarshalJSON() ([]byte, error) {
	type raw HtmlTag
	return jsonElement("htmltag", (*raw)(e))
}
func (e *Gallery) MarshalJSON() ([]byte, error) {
	type raw Gallery
	return jsonElement("gallery", (*raw)(e))
}
func (e *Error) MarshalJSON() ([]byte, error) {
	type raw Error
	return jsonElement("error", (*raw)(e))
}

// The list marshalers below keep nil and empty sibling lists distinct in
// the YAML form: an absent list serializes as null and decodes back to
// nil, an empty one as [] and back to empty. encoding/json already makes
// this distinction on its own.

// MarshalYAML emits null for an absent sibling list.
func (e Elements) MarshalYAML() (any, error) {
	if e == nil {
		return nil, nil
	}
	return []Element(e), nil
}

// MarshalYAML emits null for an absent attribute list.
func (a TagAttributes) MarshalYAML() (any, error) {
	if a == nil {
		return nil, nil
	}
	return []TagAttribute(a), nil
}

// MarshalYAML emits null for absent reference options.
func (o OptionLists) MarshalYAML() (any, error) {
	if o == nil {
		return nil, nil
	}
	return []Elements(o), nil
}

// DecodeYAML parses a single serialized element from YAML.
func DecodeYAML(data []byte) (Element, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	node := &doc
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) != 1 {
			return nil, fmt.Errorf("expected a single document, got %d", len(doc.Content))
		}
		node = doc.Content[0]
	}
	return unmarshalElementYAML(node)
}

// DecodeJSON parses a single serialized element from JSON.
func DecodeJSON(data []byte) (Element, error) {
	return unmarshalElementJSON(data)
}

// UnmarshalYAML decodes a sequence of serialized elements.
func (e *Elements) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*e = nil
		return nil
	}
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: expected a sequence of elements", node.Line)
	}
	out := make(Elements, 0, len(node.Content))
	for _, item := range node.Content {
		el, err := unmarshalElementYAML(item)
		if err != nil {
			return err
		}
		out = append(out, el)
	}
	*e = out
	return nil
}

// UnmarshalJSON decodes an array of serialized elements.
func (e *Elements) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	if items == nil {
		*e = nil
		return nil
	}
	out := make(Elements, 0, len(items))
	for _, item := range items {
		el, err := unmarshalElementJSON(item)
		if err != nil {
			return err
		}
		out = append(out, el)
	}
	*e = out
	return nil
}

func (p *Position) UnmarshalYAML(node *yaml.Node) error {
	if err := checkKeys(node, "position", "offset", "line", "col"); err != nil {
		return err
	}
	type raw Position
	return node.Decode((*raw)(p))
}

func (s *Span) UnmarshalYAML(node *yaml.Node) error {
	if err := checkKeys(node, "span", "start", "end"); err != nil {
		return err
	}
	type raw Span
	return node.Decode((*raw)(s))
}

func (a *TagAttribute) UnmarshalYAML(node *yaml.Node) error {
	if err := checkKeys(node, "attribute", "position", "key", "value"); err != nil {
		return err
	}
	type raw TagAttribute
	return node.Decode((*raw)(a))
}

// unmarshalElementYAML decodes a mapping node with a "type" discriminator
// into the matching variant, rejecting keys the variant does not declare.
func unmarshalElementYAML(node *yaml.Node) (Element, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected an element mapping", node.Line)
	}
	var tag string
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "type" {
			tag = node.Content[i+1].Value
			break
		}
	}
	if tag == "" {
		return nil, fmt.Errorf("line %d: element is missing its \"type\"", node.Line)
	}
	el := newElement(tag)
	if el == nil {
		return nil, fmt.Errorf("line %d: unknown element type %q", node.Line, tag)
	}
	if err := checkKeys(node, tag, append(variantFields[tag], "type")...); err != nil {
		return nil, err
	}
	if err := node.Decode(el); err != nil {
		return nil, err
	}
	return el, nil
}

// unmarshalElementJSON is the JSON counterpart of unmarshalElementYAML.
// Strictness comes from DisallowUnknownFields, which the envelope types
// extend to the "type" key itself.
func unmarshalElementJSON(data []byte) (Element, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	if probe.Type == "" {
		return nil, fmt.Errorf("element is missing its \"type\"")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	switch probe.Type {
	case "document":
		var v struct {
			Type string `json:"type"`
			Document
		}
		return &v.Document, dec.Decode(&v)
	case "heading":
		var v struct {
			Type string `json:"type"`
			Heading
		}
		return &v.Heading, dec.Decode(&v)
	case "text":
		var v struct {
			Type string `json:"type"`
			Text
		}
		return &v.Text, dec.Decode(&v)
	case "formatted":
		var v struct {
			Type string `json:"type"`
			Formatted
		}
		return &v.Formatted, dec.Decode(&v)
	case "paragraph":
		var v struct {
			Type string `json:"type"`
			Paragraph
		}
		return &v.Paragraph, dec.Decode(&v)
	case "template":
		var v struct {
			Type string `json:"type"`
			Template
		}
		return &v.Template, dec.Decode(&v)
	case "templateargument":
		var v struct {
			Type string `json:"type"`
			TemplateArgument
		}
		return &v.TemplateArgument, dec.Decode(&v)
	case "internalreference":
		var v struct {
			Type string `json:"type"`
			InternalReference
		}
		return &v.InternalReference, dec.Decode(&v)
	case "externalreference":
		var v struct {
			Type string `json:"type"`
			ExternalReference
		}
		return &v.ExternalReference, dec.Decode(&v)
	case "listitem":
		var v struct {
			Type string `json:"type"`
			ListItem
		}
		return &v.ListItem, dec.Decode(&v)
	case "list":
		var v struct {
			Type string `json:"type"`
			List
		}
		return &v.List, dec.Decode(&v)
	case "table":
		var v struct {
			Type string `json:"type"`
			Table
		}
		return &v.Table, dec.Decode(&v)
	case "tablerow":
		var v struct {
			Type string `json:"type"`
			TableRow
		}
		return &v.TableRow, dec.Decode(&v)
	case "tablecell":
		var v struct {
			Type string `json:"type"`
			TableCell
		}
		return &v.TableCell, dec.Decode(&v)
	case "comment":
		var v struct {
			Type string `json:"type"`
			Comment
		}
		return &v.Comment, dec.Decode(&v)
	case "htmltag":
		var v struct {
			Type string `json:"type"`
			HtmlTag
		}
		return &v.HtmlTag, dec.Decode(&v)
	case "gallery":
		var v struct {
			Type string `json:"type"`
			Gallery
		}
		return &v.Gallery, dec.Decode(&v)
	case "error":
		var v struct {
			Type string `json:"type"`
			Error
		}
		return &v.Error, dec.Decode(&v)
	default:
		return nil, fmt.Errorf("unknown element type %q", probe.Type)
	}
}

// newElement allocates the zero value for a serialized variant tag.
func newElement(tag string) Element {
	switch tag {
	case "document":
		return new(Document)
	case "heading":
		return new(Heading)
	case "text":
		return new(Text)
	case "formatted":
		return new(Formatted)
	case "paragraph":
		return new(Paragraph)
	case "template":
		return new(Template)
	case "templateargument":
		return new(TemplateArgument)
	case "internalreference":
		return new(InternalReference)
	case "externalreference":
		return new(ExternalReference)
	case "listitem":
		return new(ListItem)
	case "list":
		return new(List)
	case "table":
		return new(Table)
	case "tablerow":
		return new(TableRow)
	case "tablecell":
		return new(TableCell)
	case "comment":
		return new(Comment)
	case "htmltag":
		return new(HtmlTag)
	case "gallery":
		return new(Gallery)
	case "error":
		return new(Error)
	default:
		return nil
	}
}

// checkKeys rejects mapping keys outside the allowed set.
func checkKeys(node *yaml.Node, what string, allowed ...string) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping for %s", node.Line, what)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(allowed, key.Value) {
			return fmt.Errorf("line %d: unknown field %q in %s", key.Line, key.Value, what)
		}
	}
	return nil
}
