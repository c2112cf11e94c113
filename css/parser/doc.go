// Package parser provides an error-tolerant parser for CSS stylesheets with
// full support for container queries.
//
// # Overview
//
// The parser produces a concrete syntax tree (CST) that preserves every byte
// of the source, including whitespace and comments. Malformed input never
// stops the parse: regions that cannot be understood are kept in bogus
// nodes and described by diagnostics.
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Lexer     │────▶│   Parser    │────▶│ Tree builder│
//	│  (bytes)    │     │  (tokens)   │     │  (events)   │     │   (CST)     │
//	└─────────────┘     └─────────────┘     └─────────────┘     └─────────────┘
//
// The lexer wraps github.com/tdewolff/parse/v2/css and attaches whitespace
// and comments to the following token as leading trivia.
//
// Productions do not build nodes directly. They append start, token and
// finish events to a flat log through markers:
//
//	m := p.start()
//	p.bump(TokenNot)
//	p.parseAnyContainerQueryInParens().Discard()
//	m.Complete(p, KindContainerNotQuery)
//
// A completed marker can be preceded, which wraps the finished node in a
// new one without touching the nodes built so far. This is how
// `(a) and (b) or (c)` folds to the left:
//
//	ContainerOrQuery
//	├── ContainerAndQuery
//	│   ├── ContainerSizeFeatureInParens (a)
//	│   ├── and
//	│   └── ContainerSizeFeatureInParens (b)
//	├── or
//	└── ContainerSizeFeatureInParens (c)
//
// # Parse Outcomes
//
// Every production returns a ParsedSyntax. Absent means the input does not
// start with the production and nothing was consumed, so the caller may try
// an alternative. Present carries the completed node.
//
// # Error Recovery
//
//  1. A missing token is reported by expect, which consumes nothing; the
//     production carries on as if the token had been there.
//  2. When the block of an at-rule is missing, the tokens up to the next
//     `{`, `}`, `;`, `@` or line break are kept in a BogusBlock. If nothing
//     can be skipped, the whole rule is retagged BogusAtRule.
//  3. Nesting beyond the configured depth is reported once and the
//     offending group is consumed into a Bogus node without recursion.
//
// # Entry Points
//
//	// ParseStylesheet parses a complete stylesheet.
//	func ParseStylesheet(r io.Reader, opts ...Option) *Parser
//
//	// ParseContainerAtRule parses one container at-rule starting at the
//	// `container` keyword.
//	func ParseContainerAtRule(r io.Reader, opts ...Option) *Parser
//
// # Thread Safety
//
// A Parser instance is not safe for concurrent use. Trees returned by
// Finish are never modified and may be shared freely.
//
// # Example Usage
//
//	p := parser.ParseStylesheet(strings.NewReader(src), parser.WithFile("app.css"))
//	tree := p.Finish()
//	for _, d := range p.Diagnostics() {
//	    fmt.Println(d)
//	}
//	fmt.Print(tree.Text() == src) // true
package parser
