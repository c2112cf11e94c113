package format

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/cq/css/analyzer"
	"github.com/dhamidi/cq/css/parser"
)

// Report is a diagnostic ready for display, from the parser or from a
// lint rule.
type Report struct {
	File     string
	Span     parser.Span
	Severity string
	Rule     string
	Message  string
}

func FromDiagnostics(file string, diags []parser.Diagnostic) []Report {
	reports := make([]Report, len(diags))
	for i, d := range diags {
		reports[i] = Report{
			File:     file,
			Span:     d.Span,
			Severity: "error",
			Message:  d.Message,
		}
	}
	return reports
}

func FromFindings(findings []analyzer.Finding) []Report {
	reports := make([]Report, len(findings))
	for i, f := range findings {
		reports[i] = Report{
			File:     f.File,
			Span:     f.Span,
			Severity: f.Severity.String(),
			Rule:     f.Rule,
			Message:  f.Message,
		}
	}
	return reports
}

// DiagnosticRenderer prints reports with the offending source line and a
// caret underline:
//
//	app.css:1:18: error: expected `)` but found `{`
//	  1 | container (width { }
//	    |                  ^
type DiagnosticRenderer struct {
	w      io.Writer
	source []byte
}

func NewDiagnosticRenderer(w io.Writer, source []byte) *DiagnosticRenderer {
	return &DiagnosticRenderer{w: w, source: source}
}

func (r *DiagnosticRenderer) Render(reports []Report) error {
	var sb strings.Builder
	for _, rep := range reports {
		r.writeReport(&sb, rep)
	}
	_, err := io.WriteString(r.w, sb.String())
	return err
}

func (r *DiagnosticRenderer) writeReport(sb *strings.Builder, rep Report) {
	start := rep.Span.Start
	if rep.File != "" {
		sb.WriteString(rep.File)
		sb.WriteString(":")
	}
	severity := rep.Severity
	if rep.Rule != "" {
		severity += "[" + rep.Rule + "]"
	}
	fmt.Fprintf(sb, "%s: %s: %s\n", start, severity, rep.Message)

	if start.Line == 0 || start.Offset > len(r.source) {
		return
	}
	line := r.lineAt(start.Offset)
	gutter := strconv.Itoa(start.Line)
	pad := strings.Repeat(" ", len(gutter))

	fmt.Fprintf(sb, "  %s | %s\n", gutter, line)

	width := 1
	if end := rep.Span.End; end.Line == start.Line && end.Column > start.Column {
		width = end.Column - start.Column
	}
	col := min(start.Column-1, len(line))
	width = max(1, min(width, len(line)-col))

	sb.WriteString("  " + pad + " | ")
	for i := 0; i < col; i++ {
		if line[i] == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	sb.WriteString(strings.Repeat("^", width))
	sb.WriteString("\n")
}

// lineAt returns the source line containing offset, without its newline.
func (r *DiagnosticRenderer) lineAt(offset int) string {
	begin := bytes.LastIndexAny(r.source[:offset], "\r\n") + 1
	end := bytes.IndexAny(r.source[offset:], "\r\n")
	if end < 0 {
		return string(r.source[begin:])
	}
	return string(r.source[begin : offset+end])
}
