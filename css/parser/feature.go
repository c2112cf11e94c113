package parser

// Query features appear inside size-feature parentheses:
//
//	(width)                     boolean
//	(width: 100px)              plain
//	(width >= 400px)            range
//	(400px <= width)            reverse range
//	(100px < width <= 800px)    range interval
func (p *Parser) parseAnyQueryFeature() ParsedSyntax {
	switch {
	case p.isAtFunction():
		return p.parseQueryFeatureReverseRange()
	case p.isAtIdentifier() && p.nthAt(1, TokenColon):
		return p.parseQueryFeaturePlain()
	case p.isAtIdentifier() && isComparison(p.nthToken(1).Kind):
		return p.parseQueryFeatureRange()
	case p.isAtIdentifier():
		return p.parseQueryFeatureBoolean()
	case p.isAtQueryFeatureValue():
		return p.parseQueryFeatureReverseRange()
	}
	return Absent
}

func (p *Parser) parseQueryFeatureBoolean() ParsedSyntax {
	if !p.isAtIdentifier() {
		return Absent
	}
	m := p.start()
	p.parseRegularIdentifier().Discard()
	return Present(m.Complete(p, KindQueryFeatureBoolean))
}

func (p *Parser) parseQueryFeaturePlain() ParsedSyntax {
	if !p.isAtIdentifier() {
		return Absent
	}
	m := p.start()
	p.parseRegularIdentifier().Discard()
	p.bump(TokenColon)
	p.parseRequiredQueryFeatureValue()
	return Present(m.Complete(p, KindQueryFeaturePlain))
}

func (p *Parser) parseQueryFeatureRange() ParsedSyntax {
	if !p.isAtIdentifier() {
		return Absent
	}
	m := p.start()
	p.parseRegularIdentifier().Discard()
	p.parseQueryFeatureRangeComparison().Discard()
	p.parseRequiredQueryFeatureValue()
	return Present(m.Complete(p, KindQueryFeatureRange))
}

// parseQueryFeatureReverseRange starts at a value. A second comparison after
// the feature name turns the node into an interval.
func (p *Parser) parseQueryFeatureReverseRange() ParsedSyntax {
	if !p.isAtQueryFeatureValue() {
		return Absent
	}
	m := p.start()
	p.parseAnyQueryFeatureValue().Discard()

	if p.parseQueryFeatureRangeComparison().IsAbsent() {
		p.report("expected a comparison operator but found " + describe(p.curToken()))
	}
	if p.parseRegularIdentifier().IsAbsent() {
		p.report("expected a feature name but found " + describe(p.curToken()))
	}

	if isComparison(p.cur()) {
		p.parseQueryFeatureRangeComparison().Discard()
		p.parseRequiredQueryFeatureValue()
		return Present(m.Complete(p, KindQueryFeatureRangeInterval))
	}
	return Present(m.Complete(p, KindQueryFeatureReverseRange))
}

func isComparison(kind TokenKind) bool {
	return kind == TokenLT || kind == TokenGT || kind == TokenEq
}

// parseQueryFeatureRangeComparison reads `<`, `>` or `=`, and joins a
// directly adjacent `=` to form `<=` or `>=`.
func (p *Parser) parseQueryFeatureRangeComparison() ParsedSyntax {
	if !isComparison(p.cur()) {
		return Absent
	}
	m := p.start()
	if p.at(TokenEq) {
		p.bump(TokenEq)
	} else {
		p.bumpAny()
		if p.at(TokenEq) && !p.curToken().HasLeadingTrivia() {
			p.bump(TokenEq)
		}
	}
	return Present(m.Complete(p, KindQueryFeatureRangeComparison))
}

func (p *Parser) isAtQueryFeatureValue() bool {
	switch p.cur() {
	case TokenNumber, TokenDimension, TokenPercentage:
		return true
	}
	return p.isAtIdentifier()
}

func (p *Parser) parseRequiredQueryFeatureValue() {
	if p.parseAnyQueryFeatureValue().IsAbsent() {
		p.report("expected a query feature value but found " + describe(p.curToken()))
	}
}

func (p *Parser) parseAnyQueryFeatureValue() ParsedSyntax {
	switch {
	case p.isAtFunction():
		return p.parseFunction()
	case p.at(TokenNumber) && p.nthAt(1, TokenSlash):
		return p.parseRatio()
	case p.at(TokenNumber):
		return p.parseLeaf(TokenNumber, KindNumber)
	case p.at(TokenDimension):
		return p.parseLeaf(TokenDimension, KindDimension)
	case p.at(TokenPercentage):
		return p.parseLeaf(TokenPercentage, KindPercentage)
	case p.isAtIdentifier():
		return p.parseRegularIdentifier()
	}
	return Absent
}

// parseRatio reads `16/9`; the denominator is required.
func (p *Parser) parseRatio() ParsedSyntax {
	if !p.at(TokenNumber) {
		return Absent
	}
	m := p.start()
	p.parseLeaf(TokenNumber, KindNumber).Discard()
	p.bump(TokenSlash)
	if p.parseLeaf(TokenNumber, KindNumber).IsAbsent() {
		p.report("expected a number but found " + describe(p.curToken()))
	}
	return Present(m.Complete(p, KindRatio))
}

// parseLeaf wraps a single token of the given kind in a node.
func (p *Parser) parseLeaf(tok TokenKind, kind NodeKind) ParsedSyntax {
	if !p.at(tok) {
		return Absent
	}
	m := p.start()
	p.bump(tok)
	return Present(m.Complete(p, kind))
}
