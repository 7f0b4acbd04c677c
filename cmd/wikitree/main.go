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

// Command wikitree parses wikitext and prints the normalized syntax tree.
//
// On success, the serialized tree goes to stdout and the exit status is
// zero. On failure, a human-readable diagnostic goes to stderr, the
// serialized error goes to stdout, and the exit status is non-zero. The
// serialized output is YAML unless --json is given.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/wikitree"
	"github.com/bufbuild/wikitree/ast"
	"github.com/bufbuild/wikitree/report"
	"github.com/bufbuild/wikitree/transform"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		input    string
		asJSON   bool
		fromTree bool
	)

	cmd := &cobra.Command{
		Use:   "wikitree",
		Short: "Parse wikitext into a normalized syntax tree",
		Long: `Parse wikitext into a normalized syntax tree.

Reads wikitext from --input or stdin, runs the normalization pipeline,
and prints the resulting tree as YAML (or JSON with --json).

With --from-tree, the input is an already-parsed raw tree in the
serialization format instead of wikitext; only the normalization
pipeline runs. This is how regression fixtures are replayed without a
grammar linked into the binary.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(input)
			if err != nil {
				fmt.Fprintf(os.Stderr, "wikitree: %v\n", err)
				return err
			}

			tree, uerr := run(source, fromTree, asJSON)
			if uerr != nil {
				fmt.Fprint(os.Stderr, uerr.Render(styleFor(os.Stderr)))
				if err := emit(os.Stdout, uerr, asJSON); err != nil {
					fmt.Fprintf(os.Stderr, "wikitree: %v\n", err)
				}
				return uerr
			}

			if err := emit(os.Stdout, tree, asJSON); err != nil {
				fmt.Fprintf(os.Stderr, "wikitree: %v\n", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "input file (default: stdin)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "serialize as JSON instead of YAML")
	cmd.Flags().BoolVar(&fromTree, "from-tree", false, "input is a serialized raw tree, not wikitext")
	return cmd
}

// run produces the normalized tree, or the unified error to report.
func run(source []byte, fromTree, asJSON bool) (ast.Element, *report.Error) {
	if fromTree {
		raw, err := decodeTree(source, asJSON)
		if err != nil {
			// A broken fixture is not a document error; report it as if
			// the grammar had rejected the input outright.
			return nil, &report.Error{
				Parse: report.NewParseError(0, 1, []string{err.Error()}, string(source)),
			}
		}
		normalized, err := transform.Pipeline(raw)
		if err != nil {
			var terr *report.TransformationError
			if errors.As(err, &terr) {
				return nil, &report.Error{Transformation: terr}
			}
			// Pipeline errors are always transformation errors; anything
			// else would be a bug worth surfacing loudly.
			panic(err)
		}
		return normalized, nil
	}

	tree, err := wikitree.Parse(string(source), grammar())
	if err != nil {
		var uerr *report.Error
		if errors.As(err, &uerr) {
			return nil, uerr
		}
		panic(err)
	}
	return tree, nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

func decodeTree(source []byte, asJSON bool) (ast.Element, error) {
	if asJSON {
		return ast.DecodeJSON(source)
	}
	return ast.DecodeYAML(source)
}

func emit(out io.Writer, v any, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		data = append(data, '\n')
		_, err = out.Write(data)
		return err
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

// styleFor picks colored output for terminals and degrades to plain text
// everywhere else. The serialized form on stdout is unaffected by this.
func styleFor(f *os.File) report.Style {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return report.Colored
	}
	return report.Monochrome
}
