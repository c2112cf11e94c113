package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newKindsCmd() *cobra.Command {
	var output string
	opts := kindsOptions{
		TypeName: "NodeKind",
		Prefix:   "Kind",
		VarName:  "nodeKindNames",
	}

	cmd := &cobra.Command{
		Use:   "kinds <file>",
		Short: "Generate the name table for an enumeration of kind constants",
		Long: `Read the constants of one type from a Go file and write a map from each
constant to its name without the prefix, e.g. KindRoot: "Root".

The parser's String methods use the generated table:

  //go:generate go run ../../cmd/cqgen kinds -o kind_names.go node.go`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			pkg, kinds, err := collectKinds(args[0], src, opts)
			if err != nil {
				return err
			}
			if len(kinds) == 0 {
				return fmt.Errorf("%s: no %s constants found", args[0], opts.TypeName)
			}

			var buf bytes.Buffer
			if err := generateKinds(pkg, kinds, opts).Render(&buf); err != nil {
				return fmt.Errorf("render: %w", err)
			}

			if output == "" || output == "-" {
				_, err = os.Stdout.Write(buf.Bytes())
				return err
			}
			return os.WriteFile(output, buf.Bytes(), 0644)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.TypeName, "type", opts.TypeName, "type of the constants")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", opts.Prefix, "prefix stripped from constant names")
	cmd.Flags().StringVar(&opts.VarName, "var", opts.VarName, "name of the generated map")

	return cmd
}
