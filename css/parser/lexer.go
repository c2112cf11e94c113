package parser

import (
	"bytes"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Lexer turns CSS source into significant tokens. Whitespace and comments
// are attached to the following token as leading trivia, so the token
// stream as a whole still covers every input byte.
type Lexer struct {
	input   []byte
	file    string
	css     *css.Lexer
	pos     Position
	leading []Trivia
	pending []Token
	done    bool
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input: input,
		file:  file,
		css:   css.NewLexer(parse.NewInput(bytes.NewReader(input))),
		pos: Position{
			File:   file,
			Offset: 0,
			Line:   1,
			Column: 1,
		},
	}
}

func (l *Lexer) Position() Position {
	return l.pos
}

// NextToken returns the next significant token. Once the input is
// exhausted it returns EOF forever; the first EOF carries any trailing
// trivia.
func (l *Lexer) NextToken() Token {
	for len(l.pending) == 0 {
		l.scan()
	}
	tok := l.pending[0]
	l.pending = l.pending[1:]
	return tok
}

// Tokenize lexes the whole input. The returned slice always ends with
// exactly one EOF token.
func Tokenize(input []byte, file string) []Token {
	l := NewLexer(input, file)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens
		}
	}
}

func (l *Lexer) scan() {
	if l.done {
		l.emit(TokenEOF, "")
		return
	}

	tt, data := l.css.Next()
	if tt == css.ErrorToken || len(data) == 0 {
		l.done = true
		if l.pos.Offset < len(l.input) {
			l.emit(TokenError, string(l.input[l.pos.Offset:]))
		}
		return
	}

	text := string(data)
	switch tt {
	case css.WhitespaceToken:
		l.trivia(TriviaWhitespace, text)
	case css.CommentToken:
		l.trivia(TriviaComment, text)
	case css.IdentToken, css.CustomPropertyNameToken:
		l.emit(LookupKeyword(text), text)
	case css.FunctionToken:
		name := text[:len(text)-1]
		l.emit(LookupKeyword(name), name)
		l.emit(TokenLParen, "(")
	case css.AtKeywordToken:
		l.emit(TokenAt, "@")
		l.emit(LookupKeyword(text[1:]), text[1:])
	case css.HashToken:
		l.emit(TokenHash, text)
	case css.StringToken:
		l.emit(TokenString, text)
	case css.BadStringToken:
		l.emit(TokenBadString, text)
	case css.URLToken:
		l.emit(TokenURL, text)
	case css.BadURLToken:
		l.emit(TokenBadURL, text)
	case css.NumberToken:
		l.emit(TokenNumber, text)
	case css.PercentageToken:
		l.emit(TokenPercentage, text)
	case css.DimensionToken:
		l.emit(TokenDimension, text)
	case css.UnicodeRangeToken:
		l.emit(TokenUnicodeRange, text)
	case css.IncludeMatchToken, css.DashMatchToken, css.PrefixMatchToken,
		css.SuffixMatchToken, css.SubstringMatchToken:
		l.emit(TokenAttrMatch, text)
	case css.ColumnToken:
		l.emit(TokenColumn, text)
	case css.CDOToken:
		l.emit(TokenCDO, text)
	case css.CDCToken:
		l.emit(TokenCDC, text)
	case css.ColonToken:
		l.emit(TokenColon, text)
	case css.SemicolonToken:
		l.emit(TokenSemicolon, text)
	case css.CommaToken:
		l.emit(TokenComma, text)
	case css.LeftBracketToken:
		l.emit(TokenLBracket, text)
	case css.RightBracketToken:
		l.emit(TokenRBracket, text)
	case css.LeftParenthesisToken:
		l.emit(TokenLParen, text)
	case css.RightParenthesisToken:
		l.emit(TokenRParen, text)
	case css.LeftBraceToken:
		l.emit(TokenLBrace, text)
	case css.RightBraceToken:
		l.emit(TokenRBrace, text)
	case css.DelimToken:
		if kind, ok := delimKinds[text]; ok {
			l.emit(kind, text)
		} else {
			l.emit(TokenDelim, text)
		}
	default:
		l.emit(TokenError, text)
	}
}

func (l *Lexer) trivia(kind TriviaKind, text string) {
	start := l.pos
	l.advance(text)
	l.leading = append(l.leading, Trivia{
		Kind: kind,
		Text: text,
		Span: Span{Start: start, End: l.pos},
	})
}

func (l *Lexer) emit(kind TokenKind, text string) {
	start := l.pos
	l.advance(text)
	l.pending = append(l.pending, Token{
		Kind:    kind,
		Span:    Span{Start: start, End: l.pos},
		Literal: text,
		Leading: l.leading,
	})
	l.leading = nil
}

func (l *Lexer) advance(text string) {
	for i := 0; i < len(text); i++ {
		ch := text[i]
		l.pos.Offset++
		switch {
		case ch == '\n':
			l.pos.Line++
			l.pos.Column = 1
		case ch == '\r' && (i+1 >= len(text) || text[i+1] != '\n'):
			l.pos.Line++
			l.pos.Column = 1
		default:
			l.pos.Column++
		}
	}
}
