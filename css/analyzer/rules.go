package analyzer

import (
	"strconv"

	"github.com/dhamidi/cq/css/parser"
)

func DefaultRules() []Rule {
	return []Rule{
		noMixedContainerCombinators{},
		noEmptyContainerBlock{},
		noInvalidRatio{},
	}
}

// noMixedContainerCombinators reports `and` and `or` used side by side at
// one level, as in `(a) and (b) or (c)`. The parser accepts the mix and
// folds it, but the grouping it picks is rarely what the author meant.
type noMixedContainerCombinators struct{}

type mixedCombinators struct {
	operator *parser.Token
	inner    *parser.Token
}

func (noMixedContainerCombinators) Name() string { return "noMixedContainerCombinators" }

func (noMixedContainerCombinators) DefaultSeverity() Severity { return SeverityError }

func (noMixedContainerCombinators) Query() []parser.NodeKind {
	return []parser.NodeKind{
		parser.KindContainerAndQuery,
		parser.KindContainerOrQuery,
		parser.KindContainerStyleAndQuery,
		parser.KindContainerStyleOrQuery,
	}
}

func (noMixedContainerCombinators) Run(ctx *Context) (State, bool) {
	n := ctx.Node
	operands := n.Nodes()
	if len(operands) == 0 {
		return nil, false
	}

	// Size queries fold to the left, style queries nest to the right.
	var operand *parser.Node
	var opposite parser.NodeKind
	switch n.Kind {
	case parser.KindContainerAndQuery:
		operand, opposite = operands[0], parser.KindContainerOrQuery
	case parser.KindContainerOrQuery:
		operand, opposite = operands[0], parser.KindContainerAndQuery
	case parser.KindContainerStyleAndQuery:
		operand, opposite = operands[len(operands)-1], parser.KindContainerStyleOrQuery
	case parser.KindContainerStyleOrQuery:
		operand, opposite = operands[len(operands)-1], parser.KindContainerStyleAndQuery
	}
	if operand == nil || operand.Kind != opposite {
		return nil, false
	}

	state := mixedCombinators{
		operator: combinatorToken(n),
		inner:    combinatorToken(operand),
	}
	if state.operator == nil || state.inner == nil {
		return nil, false
	}
	return state, true
}

func combinatorToken(n *parser.Node) *parser.Token {
	if tok := n.FirstToken(parser.TokenAnd); tok != nil {
		return tok
	}
	return n.FirstToken(parser.TokenOr)
}

func (noMixedContainerCombinators) Diagnostic(ctx *Context, state State) Diagnostic {
	s := state.(mixedCombinators)
	return Diagnostic{
		Span: s.operator.Span,
		Message: "`" + s.inner.Literal + "` and `" + s.operator.Literal +
			"` are combined without parentheses; wrap one side in parentheses to make the grouping explicit",
	}
}

// noEmptyContainerBlock reports a container rule whose block holds neither
// rules nor comments. The fix removes the whole at-rule.
type noEmptyContainerBlock struct{}

type emptyBlock struct {
	block  *parser.Node
	target *parser.Node
}

func (noEmptyContainerBlock) Name() string { return "noEmptyContainerBlock" }

func (noEmptyContainerBlock) DefaultSeverity() Severity { return SeverityWarning }

func (noEmptyContainerBlock) Query() []parser.NodeKind {
	return []parser.NodeKind{parser.KindContainerAtRule}
}

func (noEmptyContainerBlock) Run(ctx *Context) (State, bool) {
	block := ctx.Node.FirstChildOfKind(parser.KindRuleListBlock)
	if block == nil {
		return nil, false
	}
	if list := block.FirstChildOfKind(parser.KindRuleList); list != nil && len(list.Children) > 0 {
		return nil, false
	}
	if closing := block.FirstToken(parser.TokenRBrace); closing != nil {
		for _, tr := range closing.Leading {
			if tr.Kind == parser.TriviaComment {
				return nil, false
			}
		}
	}

	target := ctx.Node
	if parent := ctx.Parent(); parent != nil && parent.Kind == parser.KindAtRule {
		target = parent
	}
	return emptyBlock{block: block, target: target}, true
}

func (noEmptyContainerBlock) Diagnostic(ctx *Context, state State) Diagnostic {
	s := state.(emptyBlock)
	return Diagnostic{
		Span:    s.block.Span,
		Message: "this container rule has an empty block",
	}
}

func (noEmptyContainerBlock) Action(ctx *Context, state State) *Action {
	s := state.(emptyBlock)
	mutation := ctx.Begin()
	mutation.RemoveNode(s.target)
	return &Action{
		Message:  "Remove the empty @container rule.",
		Mutation: mutation,
	}
}

// noInvalidRatio reports ratios such as `16/0` or `-4/3` in size features.
// Ratio terms must not be negative, and a zero term never matches.
type noInvalidRatio struct{}

type invalidRatio struct {
	term     *parser.Node
	negative bool
}

func (noInvalidRatio) Name() string { return "noInvalidRatio" }

func (noInvalidRatio) DefaultSeverity() Severity { return SeverityError }

func (noInvalidRatio) Query() []parser.NodeKind {
	return []parser.NodeKind{parser.KindRatio}
}

func (noInvalidRatio) Run(ctx *Context) (State, bool) {
	for _, term := range ctx.Node.ChildrenOfKind(parser.KindNumber) {
		value, err := strconv.ParseFloat(term.TrimmedText(), 64)
		if err != nil {
			continue
		}
		if value < 0 {
			return invalidRatio{term: term, negative: true}, true
		}
		if value == 0 {
			return invalidRatio{term: term}, true
		}
	}
	return nil, false
}

func (noInvalidRatio) Diagnostic(ctx *Context, state State) Diagnostic {
	s := state.(invalidRatio)
	msg := "a ratio with a zero term never matches"
	if s.negative {
		msg = "ratio terms must not be negative"
	}
	return Diagnostic{Span: s.term.Span, Message: msg}
}
