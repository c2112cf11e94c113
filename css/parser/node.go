package parser

import (
	"strconv"
	"strings"
)

//go:generate go run ../../cmd/cqgen kinds -o kind_names.go node.go

type NodeKind int

const (
	// KindTombstone marks an abandoned marker or a start event already
	// claimed by a preceding node. It never appears in a finished tree.
	KindTombstone NodeKind = iota

	// KindToken is the leaf kind; the node's Token field is set.
	KindToken

	// Stylesheet structure
	KindRoot
	KindRuleList
	KindAtRule
	KindUnknownAtRule
	KindQualifiedRule
	KindSelectorPrelude
	KindRuleListBlock
	KindDeclarationListBlock
	KindDeclaration
	KindDeclarationImportant
	KindComponentValueList
	KindFunction
	KindSimpleBlock
	KindIdentifier

	// Container queries
	KindContainerAtRule
	KindContainerAndQuery
	KindContainerOrQuery
	KindContainerNotQuery
	KindContainerQueryInParens
	KindContainerSizeFeatureInParens
	KindContainerStyleQueryInParens
	KindContainerStyleAndQuery
	KindContainerStyleOrQuery
	KindContainerStyleNotQuery
	KindContainerStyleInParens

	// Query features
	KindQueryFeatureBoolean
	KindQueryFeaturePlain
	KindQueryFeatureRange
	KindQueryFeatureReverseRange
	KindQueryFeatureRangeInterval
	KindQueryFeatureRangeComparison
	KindRatio
	KindNumber
	KindDimension
	KindPercentage

	// Recovered regions
	KindBogus
	KindBogusBlock
	KindBogusRule
	KindBogusAtRule
)

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsBogus reports whether k tags a region recovered from a syntax error.
func (k NodeKind) IsBogus() bool {
	switch k {
	case KindBogus, KindBogusBlock, KindBogusRule, KindBogusAtRule:
		return true
	}
	return false
}

// Node is an element of the concrete syntax tree. Leaf nodes have Kind
// KindToken and a non-nil Token; interior nodes hold their children in
// source order. A tree is never modified after Finish returns it.
type Node struct {
	Kind     NodeKind
	Span     Span
	Children []*Node
	Token    *Token
}

func (n *Node) IsToken() bool {
	return n.Token != nil
}

func (n *Node) IsBogus() bool {
	return n.Kind.IsBogus()
}

func (n *Node) FirstChildOfKind(kind NodeKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenOfKind(kind NodeKind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// FirstToken returns the first child token of the given kind, or nil.
func (n *Node) FirstToken(kind TokenKind) *Token {
	for _, child := range n.Children {
		if child.Token != nil && child.Token.Kind == kind {
			return child.Token
		}
	}
	return nil
}

// Nodes returns the children that are not tokens.
func (n *Node) Nodes() []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Token == nil {
			result = append(result, child)
		}
	}
	return result
}

func (n *Node) TokenLiteral() string {
	if n.Token != nil {
		return n.Token.Literal
	}
	return ""
}

// Tokens returns every leaf token under n in source order.
func (n *Node) Tokens() []*Token {
	var tokens []*Token
	n.Walk(func(node *Node) bool {
		if node.Token != nil {
			tokens = append(tokens, node.Token)
		}
		return true
	})
	return tokens
}

// Text returns the exact source text covered by n, trivia included. For the
// root node this is the original input.
func (n *Node) Text() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

// TrimmedText returns the source text of n without the leading trivia of
// its first token.
func (n *Node) TrimmedText() string {
	tokens := n.Tokens()
	if len(tokens) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(tokens[0].Literal)
	for _, tok := range tokens[1:] {
		for _, tr := range tok.Leading {
			b.WriteString(tr.Text)
		}
		b.WriteString(tok.Literal)
	}
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	if n.Token != nil {
		for _, tr := range n.Token.Leading {
			b.WriteString(tr.Text)
		}
		b.WriteString(n.Token.Literal)
		return
	}
	for _, child := range n.Children {
		child.writeText(b)
	}
}

// Walk visits n and its descendants depth-first in source order. Returning
// false from fn skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

func (n *Node) String() string {
	return n.stringIndent(0, false)
}

func (n *Node) StringWithPositions() string {
	return n.stringIndent(0, true)
}

func (n *Node) stringIndent(indent int, showPositions bool) string {
	var b strings.Builder
	n.writeIndent(&b, indent, showPositions)
	return b.String()
}

func (n *Node) writeIndent(b *strings.Builder, indent int, showPositions bool) {
	b.WriteString(strings.Repeat("  ", indent))
	if n.Token != nil {
		b.WriteString(n.Token.Kind.String())
	} else {
		b.WriteString(n.Kind.String())
	}
	if showPositions {
		b.WriteString(" [" + n.Span.Start.String() + "-" + n.Span.End.String() + "]")
	}
	if n.Token != nil {
		b.WriteString(" " + strconv.Quote(n.Token.Literal))
	}
	b.WriteString("\n")

	for _, child := range n.Children {
		child.writeIndent(b, indent+1, showPositions)
	}
}
