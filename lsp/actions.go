package lsp

import (
	"github.com/dhamidi/cq/css/analyzer"
	"github.com/dhamidi/cq/css/parser"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// textDocumentCodeAction offers the fix of every finding whose diagnostic
// or edited nodes overlap the requested range as a quick fix. The edit replaces the whole document
// with the text of the fixed tree.
func (ls *Server) textDocumentCodeAction(ctx *glsp.Context, params *protocol.CodeActionParams) (any, error) {
	doc := ls.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}

	var actions []protocol.CodeAction
	for _, f := range doc.Findings {
		if f.Action == nil || f.Action.Mutation == nil {
			continue
		}
		if !overlaps(toRange(doc.Text, actionSpan(f)), params.Range) {
			continue
		}

		fixed, _ := analyzer.Apply(doc.Root, []analyzer.Finding{f})
		kind := protocol.CodeActionKindQuickFix
		actions = append(actions, protocol.CodeAction{
			Title:       f.Action.Message,
			Kind:        &kind,
			Diagnostics: []protocol.Diagnostic{findingDiagnostic(doc.Text, f)},
			IsPreferred: boolPtr(true),
			Edit: &protocol.WorkspaceEdit{
				Changes: map[protocol.DocumentUri][]protocol.TextEdit{
					doc.URI: {{
						Range:   wholeDocument(doc.Text),
						NewText: fixed.Text(),
					}},
				},
			},
		})
	}
	if len(actions) == 0 {
		return nil, nil
	}
	return actions, nil
}

// actionSpan covers the diagnostic of f and the nodes its action edits.
func actionSpan(f analyzer.Finding) parser.Span {
	span := f.Span
	edited, ok := f.Action.Mutation.Span()
	if !ok {
		return span
	}
	if edited.Start.Offset < span.Start.Offset {
		span.Start = edited.Start
	}
	if edited.End.Offset > span.End.Offset {
		span.End = edited.End
	}
	return span
}

func wholeDocument(text []byte) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{},
		End:   toPosition(text, len(text)),
	}
}

func overlaps(a, b protocol.Range) bool {
	return !before(a.End, b.Start) && !before(b.End, a.Start)
}

func before(a, b protocol.Position) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Character < b.Character
}
