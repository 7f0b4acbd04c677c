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
	"fmt"
	"strings"
)

// MarkupType classifies the markup applied to a [Formatted] element.
type MarkupType string

const (
	MarkupNoWiki        MarkupType = "nowiki"
	MarkupBold          MarkupType = "bold"
	MarkupItalic        MarkupType = "italic"
	MarkupMath          MarkupType = "math"
	MarkupStrikeThrough MarkupType = "strikethrough"
	MarkupUnderline     MarkupType = "underline"
	MarkupCode          MarkupType = "code"
	MarkupBlockquote    MarkupType = "blockquote"
	MarkupPreformatted  MarkupType = "preformatted"
)

// ListItemKind classifies the marker a [ListItem] was written with.
type ListItemKind string

const (
	ItemUnordered      ListItemKind = "unordered"
	ItemDefinition     ListItemKind = "definition"
	ItemDefinitionTerm ListItemKind = "definitionterm"
	ItemOrdered        ListItemKind = "ordered"
)

// MarkupForTag maps an HTML tag name to its markup type.
//
// The tag set is fixed by the grammar; an unknown tag is a programmer
// error, not bad input, so this panics rather than returning an error.
func MarkupForTag(tag string) MarkupType {
	switch strings.ToLower(tag) {
	case "math":
		return MarkupMath
	case "del", "s":
		return MarkupStrikeThrough
	case "nowiki":
		return MarkupNoWiki
	case "u", "ins":
		return MarkupUnderline
	case "code":
		return MarkupCode
	case "blockquote":
		return MarkupBlockquote
	case "pre":
		return MarkupPreformatted
	default:
		panic(fmt.Sprintf("markup type lookup not implemented for %s!", tag))
	}
}
