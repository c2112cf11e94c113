package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/cq/css/parser"
)

type JSONEncoder struct {
	w   io.Writer
	doc *Document
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(doc *Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

type jsonDocument struct {
	File        string              `json:"file,omitempty"`
	Tree        *parser.Node        `json:"tree"`
	Diagnostics []parser.Diagnostic `json:"diagnostics"`
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := jsonDocument{
		File:        e.doc.File,
		Tree:        e.doc.Root,
		Diagnostics: e.doc.Diagnostics,
	}
	if data.Diagnostics == nil {
		data.Diagnostics = []parser.Diagnostic{}
	}
	return json.MarshalIndent(data, "", "  ")
}
