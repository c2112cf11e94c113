// Package format renders parsed stylesheets and their diagnostics.
package format

import (
	"encoding"

	"github.com/dhamidi/cq/css/parser"
)

// Document is one parsed file.
type Document struct {
	File        string
	Root        *parser.Node
	Diagnostics []parser.Diagnostic
}

type Encoder interface {
	encoding.TextMarshaler
	Encode(doc *Document) error
}
