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

// Package transform normalizes freshly parsed document trees.
//
// The grammar hands back a deliberately flat tree: headings and list items
// are siblings annotated with a depth, paragraphs and text runs are split
// wherever the source wrapped. [Pipeline] runs a fixed sequence of passes
// that fold those flat runs into the nested structure consumers expect.
//
// Passes are written against a small recursion engine. A pass is a
// [Func] that handles the node shapes it cares about and calls [Recurse]
// for everything else; passes that restructure a sibling list use
// [RecurseWith] to inject a content handler in place of the default
// child-list recursion. [RecurseClone] is the non-destructive variant for
// callers that need the input tree intact or want the ancestor path.
package transform
