package parser

// parseStylesheet reads rules until EOF. The result is always present.
func (p *Parser) parseStylesheet() ParsedSyntax {
	return p.parseRuleList(TokenEOF)
}

// parseRuleList reads rules until end or EOF.
func (p *Parser) parseRuleList(end TokenKind) ParsedSyntax {
	m := p.start()
	for !p.at(TokenEOF) && !p.at(end) {
		progress := p.mustProgress()
		p.parseRule()
		progress()
	}
	return Present(m.Complete(p, KindRuleList))
}

func (p *Parser) parseRule() {
	switch p.cur() {
	case TokenAt:
		p.parseAtRule().Discard()
	case TokenRBrace, TokenSemicolon:
		p.parseBogusRule()
	case TokenCDO, TokenCDC:
		p.bumpAny()
	default:
		p.parseQualifiedRule().Discard()
	}
}

// parseBogusRule keeps a stray `}` or `;` in the tree.
func (p *Parser) parseBogusRule() {
	m := p.start()
	p.report("unexpected " + describe(p.curToken()))
	p.bumpAny()
	m.Complete(p, KindBogusRule)
}

//	at-rule := '@' (container-at-rule | unknown-at-rule)
func (p *Parser) parseAtRule() ParsedSyntax {
	if !p.at(TokenAt) {
		return Absent
	}
	m := p.start()
	p.bump(TokenAt)
	if p.parseContainerAtRule().IsAbsent() {
		p.parseUnknownAtRule().Discard()
	}
	return Present(m.Complete(p, KindAtRule))
}

// parseUnknownAtRule keeps the prelude and block of an at-rule without
// interpreting them.
func (p *Parser) parseUnknownAtRule() ParsedSyntax {
	m := p.start()
	if p.parseRegularIdentifier().IsAbsent() {
		p.report("expected an at-rule name but found " + describe(p.curToken()))
	}
	p.parseComponentValueList(atPreludeEnd)
	switch {
	case p.at(TokenLBrace):
		p.parseSimpleBlock().Discard()
	case p.at(TokenSemicolon):
		p.bump(TokenSemicolon)
	default:
		p.report("expected `{` or `;` but found " + describe(p.curToken()))
	}
	return Present(m.Complete(p, KindUnknownAtRule))
}

func atPreludeEnd(p *Parser) bool {
	return p.atAny(TokenLBrace, TokenRBrace, TokenSemicolon)
}

//	qualified-rule := selector-prelude declaration-list-block
func (p *Parser) parseQualifiedRule() ParsedSyntax {
	if p.at(TokenEOF) {
		return Absent
	}
	m := p.start()
	prelude := p.start()
	for !p.at(TokenEOF) && !atPreludeEnd(p) {
		p.parseComponentValue()
	}
	prelude.Complete(p, KindSelectorPrelude)

	if p.parseDeclarationListBlock().IsPresent() {
		return Present(m.Complete(p, KindQualifiedRule))
	}
	p.report("expected `{` to start a block but found " + describe(p.curToken()))
	if p.at(TokenSemicolon) {
		p.bump(TokenSemicolon)
	}
	return Present(m.Complete(p, KindBogusRule))
}

//	rule-list-block := '{' rule* '}'
func (p *Parser) parseRuleListBlock() ParsedSyntax {
	if !p.at(TokenLBrace) {
		return Absent
	}
	if !p.enterNesting() {
		return p.parseTooDeep()
	}
	defer p.leaveNesting()

	m := p.start()
	p.bump(TokenLBrace)
	p.parseRuleList(TokenRBrace).Discard()
	p.expect(TokenRBrace)
	return Present(m.Complete(p, KindRuleListBlock))
}

//	declaration-list-block := '{' (declaration | at-rule | qualified-rule | ';')* '}'
//
// A name followed by `:` is read as a declaration; anything else that is
// not `@` or `;` starts a nested rule.
func (p *Parser) parseDeclarationListBlock() ParsedSyntax {
	if !p.at(TokenLBrace) {
		return Absent
	}
	if !p.enterNesting() {
		return p.parseTooDeep()
	}
	defer p.leaveNesting()

	m := p.start()
	p.bump(TokenLBrace)
	for !p.atAny(TokenRBrace, TokenEOF) {
		progress := p.mustProgress()
		switch {
		case p.at(TokenSemicolon):
			p.bump(TokenSemicolon)
		case p.at(TokenAt):
			p.parseAtRule().Discard()
		case p.isAtIdentifier() && p.nthAt(1, TokenColon):
			p.parseDeclaration().Discard()
		default:
			p.parseQualifiedRule().Discard()
		}
		progress()
	}
	p.expect(TokenRBrace)
	return Present(m.Complete(p, KindDeclarationListBlock))
}
