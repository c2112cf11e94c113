package main

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "grammar",
		Short:         "Container grammar tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newGrammarCheckCmd())

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var kindsFile string
	opts := grammarOptions{
		Start:      "ContainerAtRule",
		NodePrefix: "Container",
	}

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Verify the container grammar against the parser's node kinds",
		Long: `Parse an EBNF grammar, verify that every production is defined and
reachable from the start production and, with --kinds, that every
production named with the node prefix is also a NodeKind of the parser:

  cqgen grammar check --kinds css/parser/node.go css/parser/container.ebnf`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if kindsFile != "" {
				kinds, err := loadNodeKinds(kindsFile)
				if err != nil {
					return err
				}
				opts.Kinds = kinds
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			if err := checkGrammar(args[0], f, opts); err != nil {
				printErrors(os.Stderr, err)
				return fmt.Errorf("%s: grammar check failed", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Start, "start", opts.Start, "start production for verification (if empty, only checks syntax)")
	cmd.Flags().StringVar(&kindsFile, "kinds", "", "Go file declaring the NodeKind constants")
	cmd.Flags().StringVar(&opts.NodePrefix, "node-prefix", opts.NodePrefix, "prefix of productions that must name a node kind")

	return cmd
}

type grammarOptions struct {
	Start string
	// Kinds holds node kind names without their Kind prefix. Nil skips the
	// node kind check.
	Kinds      []string
	NodePrefix string
}

// grammarErrors lists every problem found in one pass.
type grammarErrors []error

func (e grammarErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

func checkGrammar(filename string, r io.Reader, opts grammarOptions) error {
	grammar, err := ebnf.Parse(filename, r)
	if err != nil {
		return err
	}
	if opts.Start != "" {
		if err := ebnf.Verify(grammar, opts.Start); err != nil {
			return err
		}
	}
	if opts.Kinds == nil {
		return nil
	}
	return checkNodeProductions(grammar, opts)
}

// checkNodeProductions reports productions carrying the node prefix that
// do not name a node kind, so a renamed kind cannot leave the grammar
// describing a node the parser no longer builds.
func checkNodeProductions(grammar ebnf.Grammar, opts grammarOptions) error {
	known := make(map[string]bool, len(opts.Kinds))
	for _, kind := range opts.Kinds {
		known[kind] = true
	}

	names := make([]string, 0, len(grammar))
	for name := range grammar {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs grammarErrors
	for _, name := range names {
		if !strings.HasPrefix(name, opts.NodePrefix) || known[name] {
			continue
		}
		errs = append(errs, fmt.Errorf("%s: production %s names no node kind", grammar[name].Pos(), name))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func loadNodeKinds(filename string) ([]string, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	_, kinds, err := collectKinds(filename, src, kindsOptions{TypeName: "NodeKind", Prefix: "Kind"})
	if err != nil {
		return nil, err
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("%s: no NodeKind constants found", filename)
	}
	for i, kind := range kinds {
		kinds[i] = strings.TrimPrefix(kind, "Kind")
	}
	return kinds, nil
}

// printErrors prints each error of an error list on its own line.
func printErrors(w io.Writer, err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(w, v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(w, err)
	}
}
