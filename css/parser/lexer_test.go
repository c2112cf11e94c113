package parser

import (
	"testing"
)

func TestLexer(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", []TokenKind{TokenEOF}},
		{"@container", []TokenKind{TokenAt, TokenContainer, TokenEOF}},
		{"@CONTAINER", []TokenKind{TokenAt, TokenContainer, TokenEOF}},
		{"@media", []TokenKind{TokenAt, TokenIdent, TokenEOF}},
		{"style(", []TokenKind{TokenStyle, TokenLParen, TokenEOF}},
		{"calc(", []TokenKind{TokenIdent, TokenLParen, TokenEOF}},
		{"not and or", []TokenKind{TokenNot, TokenAnd, TokenOr, TokenEOF}},
		{"400px 50% 16", []TokenKind{TokenDimension, TokenPercentage, TokenNumber, TokenEOF}},
		{"a:b;c,d", []TokenKind{TokenIdent, TokenColon, TokenIdent, TokenSemicolon, TokenIdent, TokenComma, TokenIdent, TokenEOF}},
		{"< > = / ! .", []TokenKind{TokenLT, TokenGT, TokenEq, TokenSlash, TokenBang, TokenDot, TokenEOF}},
		{"{}[]()", []TokenKind{TokenLBrace, TokenRBrace, TokenLBracket, TokenRBracket, TokenLParen, TokenRParen, TokenEOF}},
		{`"str" #id`, []TokenKind{TokenString, TokenHash, TokenEOF}},
		{"/* comment */ a", []TokenKind{TokenIdent, TokenEOF}},
		{"<!-- -->", []TokenKind{TokenCDO, TokenCDC, TokenEOF}},
		{"url(x.png)", []TokenKind{TokenURL, TokenEOF}},
		{"--custom", []TokenKind{TokenIdent, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := Tokenize([]byte(tt.input), "test.css")
			if len(tokens) != len(tt.expected) {
				t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(tt.expected), tokens)
			}
			for i := range tokens {
				if tokens[i].Kind != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, tokens[i].Kind, tt.expected[i])
				}
			}
		})
	}
}

func TestLexerLeadingTrivia(t *testing.T) {
	tokens := Tokenize([]byte("  /* c */\n a"), "test.css")
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(tokens))
	}
	a := tokens[0]
	if a.Literal != "a" {
		t.Fatalf("got literal %q, want %q", a.Literal, "a")
	}
	if len(a.Leading) != 3 {
		t.Fatalf("got %d trivia, want 3", len(a.Leading))
	}
	wantKinds := []TriviaKind{TriviaWhitespace, TriviaComment, TriviaWhitespace}
	for i, tr := range a.Leading {
		if tr.Kind != wantKinds[i] {
			t.Errorf("trivia %d: got kind %d, want %d", i, tr.Kind, wantKinds[i])
		}
	}
	if !a.HasLineBreakBefore() {
		t.Error("expected a line break before `a`")
	}
	want := Position{File: "test.css", Offset: 11, Line: 2, Column: 2}
	if a.Span.Start != want {
		t.Errorf("got start %+v, want %+v", a.Span.Start, want)
	}
	if a.Text() != "  /* c */\n a" {
		t.Errorf("got text %q", a.Text())
	}
}

func TestLexerTrailingTrivia(t *testing.T) {
	tokens := Tokenize([]byte("a /* x */\n"), "")
	eof := tokens[len(tokens)-1]
	if eof.Kind != TokenEOF {
		t.Fatalf("last token is %v, want EOF", eof.Kind)
	}
	if got := eof.Text(); got != " /* x */\n" {
		t.Errorf("EOF text = %q, want %q", got, " /* x */\n")
	}
}

func TestLexerLineTracking(t *testing.T) {
	tokens := Tokenize([]byte("a\r\nb\rc\nd"), "")
	want := []int{1, 2, 3, 4}
	for i, line := range want {
		if tokens[i].Span.Start.Line != line {
			t.Errorf("token %q: got line %d, want %d", tokens[i].Literal, tokens[i].Span.Start.Line, line)
		}
	}
}

func TestTokenKindString(t *testing.T) {
	tests := []struct {
		kind TokenKind
		want string
	}{
		{TokenEOF, "EOF"},
		{TokenIdent, "Identifier"},
		{TokenContainer, "container"},
		{TokenRParen, ")"},
		{TokenKind(9999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("TokenKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  TokenKind
	}{
		{"container", TokenContainer},
		{"Style", TokenStyle},
		{"NOT", TokenNot},
		{"and", TokenAnd},
		{"or", TokenOr},
		{"width", TokenIdent},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			if got := LookupKeyword(tt.ident); got != tt.want {
				t.Errorf("LookupKeyword(%q) = %v, want %v", tt.ident, got, tt.want)
			}
		})
	}
}
