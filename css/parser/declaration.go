package parser

import "strings"

// isAtIdentifier reports whether the current token can serve as a name.
// Keywords are contextual, so `style` or `and` are valid property names.
func (p *Parser) isAtIdentifier() bool {
	return p.at(TokenIdent) || p.cur().IsKeyword()
}

func (p *Parser) parseRegularIdentifier() ParsedSyntax {
	if !p.isAtIdentifier() {
		return Absent
	}
	m := p.start()
	p.bumpAny()
	return Present(m.Complete(p, KindIdentifier))
}

// isAtFunction reports a name directly followed by `(`. Whitespace between
// the two makes them separate component values.
func (p *Parser) isAtFunction() bool {
	return p.isAtIdentifier() && p.nthAt(1, TokenLParen) && !p.nthToken(1).HasLeadingTrivia()
}

func (p *Parser) isAtImportant() bool {
	return p.at(TokenBang) && p.nthAt(1, TokenIdent) &&
		strings.EqualFold(p.nthToken(1).Literal, "important")
}

//	declaration := IDENT ':' component-value* ('!' 'important')?
func (p *Parser) parseDeclaration() ParsedSyntax {
	if !p.isAtIdentifier() {
		return Absent
	}
	m := p.start()
	p.parseRegularIdentifier().Discard()
	p.expect(TokenColon)
	p.parseComponentValueList(atDeclarationValueEnd)
	p.parseDeclarationImportant().Discard()
	return Present(m.Complete(p, KindDeclaration))
}

func atDeclarationValueEnd(p *Parser) bool {
	switch p.cur() {
	case TokenSemicolon, TokenRBrace, TokenRParen, TokenRBracket:
		return true
	}
	return p.isAtImportant()
}

func (p *Parser) parseDeclarationImportant() ParsedSyntax {
	if !p.isAtImportant() {
		return Absent
	}
	m := p.start()
	p.bump(TokenBang)
	p.bump(TokenIdent)
	return Present(m.Complete(p, KindDeclarationImportant))
}

// parseComponentValueList always produces a node, possibly empty. It stops
// at EOF or wherever atEnd says so.
func (p *Parser) parseComponentValueList(atEnd func(*Parser) bool) CompletedMarker {
	m := p.start()
	for !p.at(TokenEOF) && !atEnd(p) {
		p.parseComponentValue()
	}
	return m.Complete(p, KindComponentValueList)
}

// parseComponentValue consumes at least one token unless at EOF.
func (p *Parser) parseComponentValue() {
	switch {
	case p.atAny(TokenLParen, TokenLBracket, TokenLBrace):
		p.parseSimpleBlock().Discard()
	case p.isAtFunction():
		p.parseFunction().Discard()
	default:
		p.bumpAny()
	}
}

var closers = map[TokenKind]TokenKind{
	TokenLParen:   TokenRParen,
	TokenLBracket: TokenRBracket,
	TokenLBrace:   TokenRBrace,
}

// parseSimpleBlock reads a bracketed group up to its matching closer.
func (p *Parser) parseSimpleBlock() ParsedSyntax {
	closer, ok := closers[p.cur()]
	if !ok {
		return Absent
	}
	if !p.enterNesting() {
		return p.parseTooDeep()
	}
	defer p.leaveNesting()

	m := p.start()
	p.bumpAny()
	p.parseComponentValueList(func(p *Parser) bool { return p.at(closer) })
	p.expect(closer)
	return Present(m.Complete(p, KindSimpleBlock))
}

func (p *Parser) parseFunction() ParsedSyntax {
	if !p.isAtFunction() {
		return Absent
	}
	if !p.enterNesting() {
		return p.parseTooDeep()
	}
	defer p.leaveNesting()

	m := p.start()
	p.parseRegularIdentifier().Discard()
	p.bump(TokenLParen)
	p.parseComponentValueList(func(p *Parser) bool { return p.at(TokenRParen) })
	p.expect(TokenRParen)
	return Present(m.Complete(p, KindFunction))
}
