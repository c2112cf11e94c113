package parser

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tliron/commonlog"
)

// DefaultMaxDepth bounds the nesting of parentheses, blocks and combinator
// chains unless WithMaxDepth says otherwise.
const DefaultMaxDepth = 128

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithMaxDepth sets the maximum nesting depth. Input nested deeper is
// reported and kept as a bogus node. Values below 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

func WithLogger(logger commonlog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

type parseFunc func(*Parser) ParsedSyntax

// Diagnostic is a syntax error found while parsing. The parser keeps going
// after reporting one.
type Diagnostic struct {
	Message string
	Span    Span
}

func (d Diagnostic) Error() string {
	if d.Span.Start.File != "" {
		return fmt.Sprintf("%s:%s: %s", d.Span.Start.File, d.Span.Start, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Span.Start, d.Message)
}

type Parser struct {
	file        string
	maxDepth    int
	logger      commonlog.Logger
	reader      io.Reader
	input       []byte
	tokens      []Token
	pos         int
	events      []event
	diagnostics []Diagnostic
	depth       int
	tooDeep     bool
	open        int
	entry       parseFunc
	tree        *Node
	err         error
}

// ParseStylesheet parses a complete stylesheet.
func ParseStylesheet(r io.Reader, opts ...Option) *Parser {
	return newParser(r, (*Parser).parseStylesheet, opts)
}

// ParseContainerAtRule parses a single container at-rule starting at the
// `container` keyword, the way an at-rule dispatcher invokes it after
// consuming `@`. Input after the rule is kept in a trailing bogus node.
func ParseContainerAtRule(r io.Reader, opts ...Option) *Parser {
	return newParser(r, (*Parser).parseContainerAtRule, opts)
}

// Parse parses src as a stylesheet and returns the tree and diagnostics.
func Parse(src []byte, opts ...Option) (*Node, []Diagnostic) {
	p := ParseStylesheet(bytes.NewReader(src), opts...)
	root := p.Finish()
	return root, p.Diagnostics()
}

func newParser(r io.Reader, entry parseFunc, opts []Option) *Parser {
	p := &Parser{
		maxDepth: DefaultMaxDepth,
		reader:   r,
		entry:    entry,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = commonlog.GetLogger("cq.parser")
	}
	return p
}

func (p *Parser) readAll() error {
	if p.input != nil {
		return nil
	}
	data, err := io.ReadAll(p.reader)
	if err != nil {
		return err
	}
	if data == nil {
		data = []byte{}
	}
	p.input = data
	return nil
}

// Finish runs the parse and returns the root node. The root always holds
// every input token, ending with EOF. Finish returns nil only when reading
// the input fails; Err reports why.
func (p *Parser) Finish() *Node {
	if p.tree != nil {
		return p.tree
	}
	if err := p.readAll(); err != nil {
		p.err = fmt.Errorf("read input: %w", err)
		return nil
	}

	p.tokens = Tokenize(p.input, p.file)
	p.pos = 0
	p.events = p.events[:0]
	p.diagnostics = nil
	p.depth = 0
	p.tooDeep = false
	p.open = 0

	root := p.start()
	p.entry(p).Discard()
	if !p.at(TokenEOF) {
		m := p.start()
		for !p.at(TokenEOF) {
			p.bumpAny()
		}
		m.Complete(p, KindBogus)
	}
	p.pushToken()
	root.Complete(p, KindRoot)

	p.tree = p.buildTree()
	p.logger.Debugf("parsed %q: %d tokens, %d events, %d diagnostics",
		p.file, len(p.tokens), len(p.events), len(p.diagnostics))
	return p.tree
}

// Reset clears parser state for reuse with new input.
func (p *Parser) Reset(r io.Reader) {
	p.reader = r
	p.input = nil
	p.tokens = nil
	p.pos = 0
	p.events = nil
	p.diagnostics = nil
	p.depth = 0
	p.tooDeep = false
	p.open = 0
	p.tree = nil
	p.err = nil
}

func (p *Parser) Diagnostics() []Diagnostic {
	return p.diagnostics
}

func (p *Parser) Err() error {
	return p.err
}

// Input returns the bytes read by Finish.
func (p *Parser) Input() []byte {
	return p.input
}

func (p *Parser) nthToken(n int) *Token {
	if p.pos+n >= len(p.tokens) {
		return &p.tokens[len(p.tokens)-1]
	}
	return &p.tokens[p.pos+n]
}

func (p *Parser) curToken() *Token {
	return p.nthToken(0)
}

func (p *Parser) cur() TokenKind {
	return p.nthToken(0).Kind
}

func (p *Parser) at(kind TokenKind) bool {
	return p.cur() == kind
}

// nthAt looks n tokens ahead without consuming anything.
func (p *Parser) nthAt(n int, kind TokenKind) bool {
	return p.nthToken(n).Kind == kind
}

func (p *Parser) atAny(kinds ...TokenKind) bool {
	cur := p.cur()
	for _, kind := range kinds {
		if cur == kind {
			return true
		}
	}
	return false
}

// bump consumes the current token, which the caller has checked to be of
// the given kind. A mismatch is a bug in a production; it is reported as a
// diagnostic and nothing is consumed.
func (p *Parser) bump(kind TokenKind) {
	if !p.at(kind) {
		p.report(fmt.Sprintf("internal error: bump expected `%s` but found %s", kind, describe(p.curToken())))
		return
	}
	p.bumpAny()
}

// bumpAny consumes the current token unless it is EOF.
func (p *Parser) bumpAny() {
	if p.at(TokenEOF) {
		return
	}
	p.pushToken()
	p.pos++
}

func (p *Parser) pushToken() {
	p.events = append(p.events, event{kind: eventToken, token: min(p.pos, len(p.tokens)-1)})
}

// expect consumes the current token if it has the given kind. Otherwise it
// reports a diagnostic, consumes nothing, and the caller carries on as if
// the token had been there.
func (p *Parser) expect(kind TokenKind) bool {
	if p.at(kind) {
		p.bumpAny()
		return true
	}
	p.report(fmt.Sprintf("expected `%s` but found %s", kind, describe(p.curToken())))
	return false
}

func (p *Parser) report(msg string) {
	p.reportAt(p.curToken().Span, msg)
}

func (p *Parser) reportAt(span Span, msg string) {
	p.diagnostics = append(p.diagnostics, Diagnostic{Message: msg, Span: span})
}

// mustProgress returns a function that checks if the parser has advanced.
// Call it at the start of a loop iteration, then call the returned function
// at the end; it consumes one token when nothing else was.
func (p *Parser) mustProgress() func() bool {
	saved := p.pos
	return func() bool {
		if p.pos == saved {
			p.bumpAny()
			return false
		}
		return true
	}
}

func (p *Parser) enterNesting() bool {
	if p.depth >= p.maxDepth {
		return false
	}
	p.depth++
	return true
}

func (p *Parser) leaveNesting() {
	p.depth--
}

// parseTooDeep consumes the balanced group at the cursor without
// recursing. The first call per parse reports the limit.
func (p *Parser) parseTooDeep() ParsedSyntax {
	if !p.tooDeep {
		p.tooDeep = true
		p.report(fmt.Sprintf("nesting exceeds the maximum depth of %d", p.maxDepth))
	}
	m := p.start()
	depth := 0
	for !p.at(TokenEOF) {
		switch p.cur() {
		case TokenLParen, TokenLBracket, TokenLBrace:
			depth++
		case TokenRParen, TokenRBracket, TokenRBrace:
			if depth == 0 {
				return Present(m.Complete(p, KindBogus))
			}
			depth--
			p.bumpAny()
			if depth == 0 {
				return Present(m.Complete(p, KindBogus))
			}
			continue
		}
		p.bumpAny()
	}
	return Present(m.Complete(p, KindBogus))
}

func describe(tok *Token) string {
	if tok.Kind == TokenEOF {
		return "the end of the file"
	}
	return "`" + tok.Literal + "`"
}
