package lsp

import (
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dhamidi/cq/css/parser"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// toPosition converts a byte offset into a zero-based line and a UTF-16
// character offset, which is what clients count in.
func toPosition(text []byte, offset int) protocol.Position {
	if offset > len(text) {
		offset = len(text)
	}
	var line, lineStart int
	for i := 0; i < offset; i++ {
		switch text[i] {
		case '\n':
			line++
			lineStart = i + 1
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				continue
			}
			line++
			lineStart = i + 1
		}
	}

	var character int
	for rest := text[lineStart:offset]; len(rest) > 0; {
		r, size := utf8.DecodeRune(rest)
		if r >= 0x10000 {
			character += 2
		} else {
			character++
		}
		rest = rest[size:]
	}
	return protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(character)}
}

func toRange(text []byte, span parser.Span) protocol.Range {
	return protocol.Range{
		Start: toPosition(text, span.Start.Offset),
		End:   toPosition(text, span.End.Offset),
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
