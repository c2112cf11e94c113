package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/cq/config"
	"github.com/dhamidi/cq/css/analyzer"
	"github.com/dhamidi/cq/css/parser"
	"github.com/dhamidi/cq/format"
)

// lintResult is the outcome of linting one file.
type lintResult struct {
	File     string
	Source   []byte
	Syntax   []parser.Diagnostic
	Findings []analyzer.Finding
	// Fixed is the rewritten source when fixes were applied.
	Fixed []byte
	Fixes int
}

func (r *lintResult) failed() bool {
	if len(r.Syntax) > 0 {
		return true
	}
	for _, f := range r.Findings {
		if f.Severity == analyzer.SeverityError {
			return true
		}
	}
	return false
}

func (r *lintResult) reports() []format.Report {
	return append(format.FromDiagnostics(r.File, r.Syntax), format.FromFindings(r.Findings)...)
}

// lintSource parses and lints source. With fix set, the actions of all
// findings are applied and the fixed text is linted again, so findings and
// spans describe the fixed text.
func lintSource(cfg *config.Config, a *analyzer.Analyzer, file string, source []byte, fix bool) *lintResult {
	p := parser.ParseStylesheet(bytes.NewReader(source), cfg.ParserOptions(file)...)
	root := p.Finish()
	result := &lintResult{
		File:     file,
		Source:   source,
		Syntax:   p.Diagnostics(),
		Findings: a.Run(root, file),
	}
	if !fix || len(result.Syntax) > 0 {
		return result
	}

	fixed, n := analyzer.Apply(root, result.Findings)
	if n == 0 {
		return result
	}
	var buf bytes.Buffer
	if err := format.NewSourceEncoder(&buf).Encode(&format.Document{File: file, Root: fixed}); err != nil {
		return result
	}

	result = lintSource(cfg, a, file, buf.Bytes(), false)
	result.Fixed = result.Source
	result.Fixes = n
	return result
}

func lintFile(cfg *config.Config, a *analyzer.Analyzer, file string, fix bool) (*lintResult, error) {
	info, err := os.Stat(file)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}
	source, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	result := lintSource(cfg, a, file, source, fix)
	if result.Fixes > 0 {
		if err := os.WriteFile(file, result.Fixed, info.Mode().Perm()); err != nil {
			return nil, fmt.Errorf("write fixes: %w", err)
		}
	}
	return result, nil
}

func printResult(w io.Writer, r *lintResult) error {
	return format.NewDiagnosticRenderer(w, r.Source).Render(r.reports())
}
