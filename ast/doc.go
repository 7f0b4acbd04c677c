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

// Package ast defines the syntax tree for wikitext documents.
//
// A document is a tree of [Element] values. Element is a closed sum: every
// node is one of the concrete pointer types in this package, and code that
// dispatches over nodes is expected to use an exhaustive type switch over
// [Kind]. Each node carries a [Span] recording where in the source document
// it came from; nodes synthesized by later processing use the zero Span.
//
// The package also provides the source line index used to convert byte
// offsets into human-meaningful line/column positions, and a YAML/JSON
// codec that round-trips every node kind for use in regression fixtures.
package ast
