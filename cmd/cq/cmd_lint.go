package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newLintCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "lint <file>...",
		Short: "Check CSS files for container query mistakes",
		Long: `Parse and lint CSS files, printing syntax errors and rule findings.

The exit status is non-zero when a file has syntax errors or a finding of
severity error. Rule severities are read from the configuration file.

Use --fix to apply the available fixes and rewrite the files in place.
Files with syntax errors are never rewritten.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("cq.lint")
			a := cfg.NewAnalyzer()

			failed := 0
			for _, file := range args {
				result, err := lintFile(cfg, a, file, fix)
				if err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
				if result.Fixes > 0 {
					log.Noticef("%s: applied %d fixes", file, result.Fixes)
				}
				if err := printResult(os.Stderr, result); err != nil {
					return err
				}
				if result.failed() {
					failed++
				}
			}
			if failed > 0 {
				return exitError{fmt.Sprintf("%d files with errors", failed)}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "apply fixes and rewrite the files")

	return cmd
}
