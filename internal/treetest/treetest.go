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

// Package treetest compares document trees in tests.
//
// Fixture trees usually leave positions unset; comparison here treats the
// wildcard position as matching anything, so fixtures only pin down the
// coordinates they actually assert. This looseness is deliberately
// confined to this package: production code compares positions with ==.
package treetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/wikitree/ast"
)

// Options returns the comparison options for document trees: positions
// match if equal or if either side is the wildcard.
func Options() []cmp.Option {
	return []cmp.Option{
		cmp.Comparer(ast.EquivalentPositions),
		cmpopts.EquateEmpty(),
	}
}

// Equivalent reports whether two trees match up to wildcard positions.
func Equivalent(want, got ast.Element) bool {
	return cmp.Equal(want, got, Options()...)
}

// RequireEquivalent fails the test with a unified diff of the two trees'
// serialized forms when they do not match.
func RequireEquivalent(t *testing.T, want, got ast.Element) {
	t.Helper()
	if Equivalent(want, got) {
		return
	}
	t.Fatalf("tree mismatch:\n%s", Diff(want, got))
}

// Diff renders a unified diff between the serialized forms of two trees.
func Diff(want, got ast.Element) string {
	wantYAML, err := yaml.Marshal(want)
	if err != nil {
		return err.Error()
	}
	gotYAML, err := yaml.Marshal(got)
	if err != nil {
		return err.Error()
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(wantYAML)),
		B:        difflib.SplitLines(string(gotYAML)),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}
