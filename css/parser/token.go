package parser

import (
	"fmt"
	"strings"
)

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError

	// Literals
	TokenIdent
	TokenNumber
	TokenPercentage
	TokenDimension
	TokenString
	TokenBadString
	TokenURL
	TokenBadURL
	TokenHash
	TokenUnicodeRange
	TokenDelim

	// Keywords
	TokenContainer
	TokenStyle
	TokenNot
	TokenAnd
	TokenOr

	// Punctuation
	TokenAt
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenColon
	TokenSemicolon
	TokenComma
	TokenDot
	TokenGT
	TokenLT
	TokenEq
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenBang
	TokenAmp
	TokenTilde
	TokenPipe
	TokenAttrMatch
	TokenColumn
	TokenCDO
	TokenCDC
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:          "EOF",
	TokenError:        "Error",
	TokenIdent:        "Identifier",
	TokenNumber:       "Number",
	TokenPercentage:   "Percentage",
	TokenDimension:    "Dimension",
	TokenString:       "String",
	TokenBadString:    "BadString",
	TokenURL:          "URL",
	TokenBadURL:       "BadURL",
	TokenHash:         "Hash",
	TokenUnicodeRange: "UnicodeRange",
	TokenDelim:        "Delim",
	TokenContainer:    "container",
	TokenStyle:        "style",
	TokenNot:          "not",
	TokenAnd:          "and",
	TokenOr:           "or",
	TokenAt:           "@",
	TokenLParen:       "(",
	TokenRParen:       ")",
	TokenLBrace:       "{",
	TokenRBrace:       "}",
	TokenLBracket:     "[",
	TokenRBracket:     "]",
	TokenColon:        ":",
	TokenSemicolon:    ";",
	TokenComma:        ",",
	TokenDot:          ".",
	TokenGT:           ">",
	TokenLT:           "<",
	TokenEq:           "=",
	TokenPlus:         "+",
	TokenMinus:        "-",
	TokenStar:         "*",
	TokenSlash:        "/",
	TokenBang:         "!",
	TokenAmp:          "&",
	TokenTilde:        "~",
	TokenPipe:         "|",
	TokenAttrMatch:    "AttrMatch",
	TokenColumn:       "||",
	TokenCDO:          "<!--",
	TokenCDC:          "-->",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsKeyword reports whether k is one of the contextual keywords. Keywords
// are still valid identifiers wherever the grammar accepts a name.
func (k TokenKind) IsKeyword() bool {
	return k >= TokenContainer && k <= TokenOr
}

type TriviaKind int

const (
	TriviaWhitespace TriviaKind = iota
	TriviaComment
)

// Trivia is source text that carries no grammatical meaning but must be
// kept so the tree reproduces its input exactly.
type Trivia struct {
	Kind TriviaKind
	Text string
	Span Span
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
	Leading []Trivia
}

// Text returns the token's leading trivia followed by its literal.
func (t *Token) Text() string {
	if len(t.Leading) == 0 {
		return t.Literal
	}
	var b strings.Builder
	for _, tr := range t.Leading {
		b.WriteString(tr.Text)
	}
	b.WriteString(t.Literal)
	return b.String()
}

// HasLeadingTrivia reports whether any whitespace or comment separates the
// token from the one before it.
func (t *Token) HasLeadingTrivia() bool {
	return len(t.Leading) > 0
}

// HasLineBreakBefore reports whether the leading trivia contains a newline.
func (t *Token) HasLineBreakBefore() bool {
	for _, tr := range t.Leading {
		if tr.Kind == TriviaWhitespace && strings.ContainsAny(tr.Text, "\n\r\f") {
			return true
		}
	}
	return false
}

var keywords = map[string]TokenKind{
	"container": TokenContainer,
	"style":     TokenStyle,
	"not":       TokenNot,
	"and":       TokenAnd,
	"or":        TokenOr,
}

// LookupKeyword maps an identifier to its keyword kind. CSS keywords are
// ASCII case-insensitive.
func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[strings.ToLower(ident)]; ok {
		return kind
	}
	return TokenIdent
}

var delimKinds = map[string]TokenKind{
	"@": TokenAt,
	".": TokenDot,
	">": TokenGT,
	"<": TokenLT,
	"=": TokenEq,
	"+": TokenPlus,
	"-": TokenMinus,
	"*": TokenStar,
	"/": TokenSlash,
	"!": TokenBang,
	"&": TokenAmp,
	"~": TokenTilde,
	"|": TokenPipe,
}
