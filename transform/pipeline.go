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
	"github.com/bufbuild/wikitree/ast"
)

// defaultPasses runs in exactly this order: heading and list folding
// must see the flat tree the grammar produced, the paragraph collapse
// needs whitespace paragraphs already emptied, and the text collapse
// needs the space separators the paragraph collapse inserts.
var defaultPasses = []Func[*Settings]{
	FoldHeadings,
	FoldLists,
	WhitespaceParagraphsToEmpty,
	CollapseParagraphs,
	CollapseConsecutiveText,
	EnumerateAnonArgs,
}

// Pipeline normalizes a freshly parsed tree, taking ownership of it.
//
// The first pass to find a structural violation aborts the whole
// pipeline; no partially transformed tree is returned alongside an error.
func Pipeline(root ast.Element) (ast.Element, error) {
	settings := &Settings{}
	var err error
	for _, pass := range defaultPasses {
		if root, err = pass(root, settings); err != nil {
			return nil, err
		}
	}
	return root, nil
}
