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

import "strings"

// SourceLine records the byte range of one line of the source document.
// End is the offset of the first byte of the next line, i.e. it includes
// the trailing newline when there is one.
type SourceLine struct {
	Start   int
	Content string
	End     int
}

// Lines builds the line index for a source document. The index is what
// [PositionAt] uses to recover line and column information from a byte
// offset, and what the grammar uses to decide line starts.
func Lines(source string) []SourceLine {
	var (
		pos    int
		result []SourceLine
	)
	for _, line := range strings.Split(source, "\n") {
		result = append(result, SourceLine{
			Start:   pos,
			Content: line,
			End:     pos + len(line) + 1,
		})
		pos += len(line) + 1
	}
	return result
}

// StartsLine reports whether pos is the first byte of a line.
func StartsLine(pos int, lines []SourceLine) bool {
	for _, line := range lines {
		if line.Start == pos {
			return true
		}
	}
	return false
}
