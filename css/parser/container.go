package parser

// Productions for the container at-rule:
//
//	container-at-rule      := 'container' IDENT? container-condition block
//	container-condition    := not-query | and-or-chain
//	and-or-chain           := query-in-parens (('and' | 'or') query-in-parens)*
//	not-query              := 'not' query-in-parens
//	query-in-parens        := '(' container-condition ')'
//	                        | style-query-in-parens
//	                        | size-feature-in-parens
//	size-feature-in-parens := '(' feature ')'
//	style-query-in-parens  := 'style' '(' style-query ')'
//	style-query            := style-not-query | declaration | style-and-or-chain
//	style-and-or-chain     := style-in-parens (('and' | 'or') style-and-or-chain)?
//	style-not-query        := 'not' style-in-parens
//	style-in-parens        := '(' style-query ')'
//
// The and-or chain folds to the left by preceding the node built so far.
// The style chain nests to the right. Mixing `and` with `or` at one level is
// accepted; the analyzer reports it.

// parseContainerAtRule expects the cursor on the `container` keyword; the
// `@` belongs to the enclosing at-rule.
func (p *Parser) parseContainerAtRule() ParsedSyntax {
	if !p.at(TokenContainer) {
		return Absent
	}
	m := p.start()
	p.bump(TokenContainer)

	if p.isAtContainerName() {
		p.parseRegularIdentifier().Discard()
	}

	// TODO(diagnostics): report a missing condition once the recovery for
	// `@container name {` is settled; today only the block is checked.
	p.parseAnyContainerQuery().Discard()

	err := p.parseOrRecoverRuleListBlock()
	rule := m.Complete(p, KindContainerAtRule)
	if err != nil {
		rule = rule.ChangeKind(p, KindBogusAtRule)
	}
	return Present(rule)
}

// isAtContainerName reports whether the current token names the container.
// `not` and a `style(` call always start the condition instead; `style`
// followed by whitespace is a name.
func (p *Parser) isAtContainerName() bool {
	if !p.isAtIdentifier() || p.at(TokenNot) {
		return false
	}
	return !p.isAtStyleFunction()
}

func (p *Parser) isAtStyleFunction() bool {
	return p.at(TokenStyle) && p.isAtFunction()
}

func (p *Parser) parseAnyContainerQuery() ParsedSyntax {
	if p.at(TokenNot) {
		return p.parseContainerNotQuery()
	}

	left := p.parseAnyContainerQueryInParens()
	if left.IsAbsent() {
		return Absent
	}
	for p.atAny(TokenAnd, TokenOr) {
		kind := KindContainerAndQuery
		if p.at(TokenOr) {
			kind = KindContainerOrQuery
		}
		m := left.Precede(p)
		p.bumpAny()
		// A missing right-hand side is tolerated silently.
		p.parseAnyContainerQueryInParens().Discard()
		left = Present(m.Complete(p, kind))
	}
	return left
}

func (p *Parser) parseContainerNotQuery() ParsedSyntax {
	if !p.at(TokenNot) {
		return Absent
	}
	m := p.start()
	p.bump(TokenNot)
	p.parseAnyContainerQueryInParens().Discard()
	return Present(m.Complete(p, KindContainerNotQuery))
}

func (p *Parser) parseAnyContainerQueryInParens() ParsedSyntax {
	if !p.atAny(TokenLParen, TokenStyle) {
		return Absent
	}
	if !p.enterNesting() {
		return p.parseTooDeep()
	}
	defer p.leaveNesting()

	switch {
	case p.isAtContainerQueryInParens():
		return p.parseContainerQueryInParens()
	case p.at(TokenStyle):
		return p.parseContainerStyleQueryInParens()
	default:
		return p.parseContainerSizeFeatureInParens()
	}
}

// isAtContainerQueryInParens tells a parenthesized condition apart from a
// size feature by the token after `(`.
func (p *Parser) isAtContainerQueryInParens() bool {
	if !p.at(TokenLParen) {
		return false
	}
	switch p.nthToken(1).Kind {
	case TokenNot, TokenLParen:
		return true
	case TokenStyle:
		return p.nthAt(2, TokenLParen) && !p.nthToken(2).HasLeadingTrivia()
	}
	return false
}

func (p *Parser) parseContainerQueryInParens() ParsedSyntax {
	if !p.at(TokenLParen) {
		return Absent
	}
	m := p.start()
	p.bump(TokenLParen)
	p.parseAnyContainerQuery().Discard()
	p.expect(TokenRParen)
	return Present(m.Complete(p, KindContainerQueryInParens))
}

func (p *Parser) parseContainerSizeFeatureInParens() ParsedSyntax {
	if !p.at(TokenLParen) {
		return Absent
	}
	m := p.start()
	p.bump(TokenLParen)
	p.parseAnyQueryFeature().Discard()
	p.expect(TokenRParen)
	return Present(m.Complete(p, KindContainerSizeFeatureInParens))
}

func (p *Parser) parseContainerStyleQueryInParens() ParsedSyntax {
	if !p.at(TokenStyle) {
		return Absent
	}
	m := p.start()
	p.bump(TokenStyle)
	p.expect(TokenLParen)
	p.parseAnyContainerStyleQuery().Discard()
	p.expect(TokenRParen)
	return Present(m.Complete(p, KindContainerStyleQueryInParens))
}

func (p *Parser) parseAnyContainerStyleQuery() ParsedSyntax {
	switch {
	case p.at(TokenNot) && p.nthAt(1, TokenLParen):
		return p.parseContainerStyleNotQuery()
	case p.isAtIdentifier():
		return p.parseDeclaration()
	default:
		return p.parseContainerStyleCombinableQuery()
	}
}

// parseContainerStyleCombinableQuery recurses for the right-hand side, so
// `(a) and (b) or (c)` nests as and(a, or(b, c)).
func (p *Parser) parseContainerStyleCombinableQuery() ParsedSyntax {
	left := p.parseContainerStyleInParens()
	if !p.atAny(TokenAnd, TokenOr) {
		return left
	}
	kind := KindContainerStyleAndQuery
	if p.at(TokenOr) {
		kind = KindContainerStyleOrQuery
	}
	m := left.Precede(p)
	p.bumpAny()
	if p.enterNesting() {
		p.parseContainerStyleCombinableQuery().Discard()
		p.leaveNesting()
	} else {
		p.parseTooDeep().Discard()
	}
	return Present(m.Complete(p, kind))
}

func (p *Parser) parseContainerStyleNotQuery() ParsedSyntax {
	if !p.at(TokenNot) {
		return Absent
	}
	m := p.start()
	p.bump(TokenNot)
	p.parseContainerStyleInParens().Discard()
	return Present(m.Complete(p, KindContainerStyleNotQuery))
}

func (p *Parser) parseContainerStyleInParens() ParsedSyntax {
	if !p.at(TokenLParen) {
		return Absent
	}
	if !p.enterNesting() {
		return p.parseTooDeep()
	}
	defer p.leaveNesting()

	m := p.start()
	p.bump(TokenLParen)
	p.parseAnyContainerStyleQuery().Discard()
	p.expect(TokenRParen)
	return Present(m.Complete(p, KindContainerStyleInParens))
}
