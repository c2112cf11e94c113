package format

import "io"

// TreeEncoder prints the syntax tree one node per line.
type TreeEncoder struct {
	w             io.Writer
	doc           *Document
	showPositions bool
}

func NewTreeEncoder(w io.Writer, showPositions bool) *TreeEncoder {
	return &TreeEncoder{w: w, showPositions: showPositions}
}

func (e *TreeEncoder) Encode(doc *Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	if e.showPositions {
		return []byte(e.doc.Root.StringWithPositions()), nil
	}
	return []byte(e.doc.Root.String()), nil
}

// SourceEncoder writes the source text held by the tree. For a tree fresh
// from the parser this is the input, byte for byte; for an edited tree it
// is the edited source.
type SourceEncoder struct {
	w   io.Writer
	doc *Document
}

func NewSourceEncoder(w io.Writer) *SourceEncoder {
	return &SourceEncoder{w: w}
}

func (e *SourceEncoder) Encode(doc *Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *SourceEncoder) MarshalText() ([]byte, error) {
	return []byte(e.doc.Root.Text()), nil
}
