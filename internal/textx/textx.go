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

// Package textx provides small text helpers shared by the transformation
// passes and the diagnostic renderer.
package textx

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Whitespace reports whether s consists entirely of whitespace. The empty
// string counts as whitespace.
func Whitespace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Shorten elides the middle of s so that it fits into width terminal
// cells. Width is measured in cells, not runes, so lines full of wide
// CJK runes do not overflow the display.
func Shorten(s string, width int) string {
	if uniseg.StringWidth(s) < width {
		return s
	}

	const filler = " .. "
	half := (width - len(filler)) / 2

	// Wide runes can push a string over the width limit with fewer runes
	// than the two windows hold; there is nothing to elide then.
	runes := []rune(s)
	if half*2 >= len(runes) {
		return s
	}
	var out strings.Builder
	for i, r := range runes {
		if i < half {
			out.WriteRune(r)
		}
		if i == half {
			out.WriteString(filler)
		}
		if i >= len(runes)-half {
			out.WriteRune(r)
		}
	}
	return out.String()
}
