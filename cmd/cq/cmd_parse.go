package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/cq/css/parser"
	"github.com/dhamidi/cq/format"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var entry string
	var includePositions bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a CSS file and dump its syntax tree",
		Long: `Parse a CSS file and print its concrete syntax tree to stdout.

If no file is provided, reads CSS from stdin. Syntax errors are printed to
stderr with the offending source line; the exit status is non-zero when
there are any.

Formats:
  tree    one node per line (default)
  json    the tree and diagnostics as JSON
  source  the text reassembled from the tree`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, source, err := readInput(args)
			if err != nil {
				return err
			}

			var p *parser.Parser
			opts := cfg.ParserOptions(filename)
			switch entry {
			case "stylesheet":
				p = parser.ParseStylesheet(bytes.NewReader(source), opts...)
			case "container":
				p = parser.ParseContainerAtRule(bytes.NewReader(source), opts...)
			default:
				return fmt.Errorf("unknown entry point: %s", entry)
			}
			root := p.Finish()
			if root == nil {
				return fmt.Errorf("parse %s: %w", displayName(filename), p.Err())
			}

			doc := &format.Document{File: filename, Root: root, Diagnostics: p.Diagnostics()}

			var encoder format.Encoder
			switch outputFormat {
			case "tree":
				encoder = format.NewTreeEncoder(os.Stdout, includePositions)
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "source":
				encoder = format.NewSourceEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			if err := encoder.Encode(doc); err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			if len(doc.Diagnostics) == 0 {
				return nil
			}
			renderer := format.NewDiagnosticRenderer(os.Stderr, source)
			if err := renderer.Render(format.FromDiagnostics(filename, doc.Diagnostics)); err != nil {
				return err
			}
			return exitError{fmt.Sprintf("%d syntax errors", len(doc.Diagnostics))}
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json, source)")
	cmd.Flags().StringVar(&entry, "entry", "stylesheet", "grammar entry point (stylesheet, container)")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include positions in tree output")

	return cmd
}

func readInput(args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "", source, nil
	}
	source, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("read file: %w", err)
	}
	return args[0], source, nil
}

func displayName(filename string) string {
	if filename == "" {
		return "<stdin>"
	}
	return filename
}
