package parser

// ParsedSyntax is the outcome of a production: either a node was produced
// (Present) or the input does not start with the production's leading
// tokens and nothing was consumed (Absent).
type ParsedSyntax struct {
	marker  CompletedMarker
	present bool
}

// Absent is the outcome of a production that did not match.
var Absent = ParsedSyntax{}

func Present(m CompletedMarker) ParsedSyntax {
	return ParsedSyntax{marker: m, present: true}
}

func (s ParsedSyntax) IsPresent() bool {
	return s.present
}

func (s ParsedSyntax) IsAbsent() bool {
	return !s.present
}

// Marker returns the completed node, if any.
func (s ParsedSyntax) Marker() (CompletedMarker, bool) {
	return s.marker, s.present
}

// Kind returns the kind of the produced node, or KindTombstone when absent.
func (s ParsedSyntax) Kind() NodeKind {
	if !s.present {
		return KindTombstone
	}
	return s.marker.kind
}

// Precede wraps the produced node in a new open marker. When absent, the
// new marker simply starts at the current position.
func (s ParsedSyntax) Precede(p *Parser) Marker {
	if s.present {
		return s.marker.Precede(p)
	}
	return p.start()
}

// Discard drops the outcome without reporting anything. It marks the call
// sites whose absent inner production is tolerated silently.
func (s ParsedSyntax) Discard() {}
