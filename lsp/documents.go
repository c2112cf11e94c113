package lsp

import (
	"bytes"
	"sync"

	"github.com/dhamidi/cq/config"
	"github.com/dhamidi/cq/css/analyzer"
	"github.com/dhamidi/cq/css/parser"
)

// Document is the latest parse of one open file.
type Document struct {
	URI         string
	Path        string
	Version     int32
	Text        []byte
	Root        *parser.Node
	Diagnostics []parser.Diagnostic
	Findings    []analyzer.Finding
}

// Store holds the open documents. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	docs     map[string]*Document
	cfg      *config.Config
	analyzer *analyzer.Analyzer
}

func NewStore(cfg *config.Config) *Store {
	s := &Store{docs: make(map[string]*Document)}
	s.Configure(cfg)
	return s
}

// Configure replaces the configuration used for later updates.
func (s *Store) Configure(cfg *config.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.analyzer = cfg.NewAnalyzer()
}

// Update parses and lints text and stores the result under uri.
func (s *Store) Update(uri string, version int32, text []byte) *Document {
	path, err := uriToPath(uri)
	if err != nil {
		path = uri
	}

	s.mu.RLock()
	cfg, a := s.cfg, s.analyzer
	s.mu.RUnlock()

	p := parser.ParseStylesheet(bytes.NewReader(text), cfg.ParserOptions(path)...)
	root := p.Finish()
	doc := &Document{
		URI:         uri,
		Path:        path,
		Version:     version,
		Text:        text,
		Root:        root,
		Diagnostics: p.Diagnostics(),
		Findings:    a.Run(root, path),
	}

	s.mu.Lock()
	s.docs[uri] = doc
	s.mu.Unlock()
	return doc
}

func (s *Store) Get(uri string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri]
}

func (s *Store) Remove(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
