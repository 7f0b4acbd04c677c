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

package main

import (
	"github.com/bufbuild/wikitree"
	"github.com/bufbuild/wikitree/ast"
)

// linkedGrammar is set by builds that link a generated wikitext grammar
// into the binary; the grammar is generated outside this module. Plain
// builds only support --from-tree.
var linkedGrammar wikitree.Grammar

func grammar() wikitree.Grammar {
	if linkedGrammar != nil {
		return linkedGrammar
	}
	return func(source string, lines []ast.SourceLine) (ast.Element, *wikitree.GrammarError) {
		return nil, &wikitree.GrammarError{
			Offset:   0,
			Line:     1,
			Expected: []string{"a build with a linked grammar (or --from-tree input)"},
		}
	}
}
