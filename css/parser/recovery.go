package parser

import "errors"

var (
	errRecoveryEOF      = errors.New("recovery reached the end of the file")
	errAlreadyRecovered = errors.New("parser is already at a recovery point")
)

// tokenSetRecovery skips tokens until one of the recovery kinds is found
// and wraps everything skipped in a bogus node of the given kind. With
// lineBreak set, a token that starts a new line is also a recovery point.
type tokenSetRecovery struct {
	kind      NodeKind
	recovery  []TokenKind
	lineBreak bool
}

func (r tokenSetRecovery) atRecoveryPoint(p *Parser) bool {
	if p.atAny(r.recovery...) {
		return true
	}
	return r.lineBreak && p.curToken().HasLineBreakBefore()
}

func (r tokenSetRecovery) recover(p *Parser) (CompletedMarker, error) {
	if p.at(TokenEOF) {
		return CompletedMarker{}, errRecoveryEOF
	}
	if r.atRecoveryPoint(p) {
		return CompletedMarker{}, errAlreadyRecovered
	}
	m := p.start()
	for !p.at(TokenEOF) {
		p.bumpAny()
		if r.atRecoveryPoint(p) {
			break
		}
	}
	return m.Complete(p, r.kind), nil
}

var blockRecovery = tokenSetRecovery{
	kind:      KindBogusBlock,
	recovery:  []TokenKind{TokenLBrace, TokenRBrace, TokenSemicolon, TokenAt},
	lineBreak: true,
}

// parseOrRecoverRuleListBlock parses the block that ends an at-rule. When no
// block follows, the tokens up to the next plausible boundary are kept in a
// BogusBlock and a block after them is still parsed. An error means nothing
// could be skipped; the caller decides how to tag its node.
func (p *Parser) parseOrRecoverRuleListBlock() error {
	if p.parseRuleListBlock().IsPresent() {
		return nil
	}
	p.report("expected `{` to start a block but found " + describe(p.curToken()))
	if _, err := blockRecovery.recover(p); err != nil {
		return err
	}
	if p.at(TokenLBrace) {
		p.parseRuleListBlock().Discard()
	}
	return nil
}
