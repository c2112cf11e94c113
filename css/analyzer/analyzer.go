// Package analyzer runs lint rules over container query syntax trees.
//
// A rule names the node kinds it wants to see (its query). For every
// matching node the analyzer calls Run, which returns a state when the
// rule has something to report. The state is turned into a diagnostic and,
// for rules that implement Fixer, into an action that edits the tree.
// Trees are never modified in place; actions carry a Mutation that builds
// a new tree on Commit.
package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dhamidi/cq/css/parser"
	"github.com/tliron/commonlog"
)

type Severity int

const (
	SeverityOff Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "off":
		return SeverityOff, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	}
	return SeverityOff, fmt.Errorf("unknown severity %q", s)
}

// State is whatever a rule's Run found; only the rule itself interprets it.
type State any

type Rule interface {
	Name() string
	DefaultSeverity() Severity
	Query() []parser.NodeKind
	Run(ctx *Context) (State, bool)
	Diagnostic(ctx *Context, state State) Diagnostic
}

// Fixer is implemented by rules that can repair what they report.
type Fixer interface {
	Action(ctx *Context, state State) *Action
}

type Diagnostic struct {
	Span    parser.Span
	Message string
}

type Action struct {
	Message  string
	Mutation *Mutation
}

// Context describes the node a rule is looking at. It is only valid during
// the call it is passed to.
type Context struct {
	Node      *parser.Node
	Ancestors []*parser.Node
	Root      *parser.Node
	File      string
}

// Parent returns the closest ancestor, or nil for the root.
func (c *Context) Parent() *parser.Node {
	if len(c.Ancestors) == 0 {
		return nil
	}
	return c.Ancestors[len(c.Ancestors)-1]
}

// Begin starts a mutation of the tree being analyzed.
func (c *Context) Begin() *Mutation {
	return NewMutation(c.Root)
}

type Finding struct {
	Rule     string
	Severity Severity
	File     string
	Diagnostic
	Action *Action
}

func (f Finding) String() string {
	pos := f.Span.Start.String()
	if f.File != "" {
		pos = f.File + ":" + pos
	}
	return fmt.Sprintf("%s: %s [%s]: %s", pos, f.Severity, f.Rule, f.Message)
}

type Option func(*Analyzer)

func WithRules(rules ...Rule) Option {
	return func(a *Analyzer) {
		a.rules = rules
	}
}

// WithSeverities overrides the default severity of rules by name. Rules set
// to SeverityOff do not run.
func WithSeverities(severities map[string]Severity) Option {
	return func(a *Analyzer) {
		for name, sev := range severities {
			a.severities[name] = sev
		}
	}
}

func WithLogger(logger commonlog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

type Analyzer struct {
	rules      []Rule
	severities map[string]Severity
	logger     commonlog.Logger
}

func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		rules:      DefaultRules(),
		severities: make(map[string]Severity),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = commonlog.GetLogger("cq.analyzer")
	}
	return a
}

// Rules returns the configured rules sorted by name.
func (a *Analyzer) Rules() []Rule {
	rules := append([]Rule(nil), a.rules...)
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].Name() < rules[j].Name()
	})
	return rules
}

func (a *Analyzer) severity(rule Rule) Severity {
	if sev, ok := a.severities[rule.Name()]; ok {
		return sev
	}
	return rule.DefaultSeverity()
}

// Run applies every enabled rule to the tree and returns the findings in
// source order.
func (a *Analyzer) Run(root *parser.Node, file string) []Finding {
	byKind := make(map[parser.NodeKind][]Rule)
	for _, rule := range a.rules {
		if a.severity(rule) == SeverityOff {
			continue
		}
		for _, kind := range rule.Query() {
			byKind[kind] = append(byKind[kind], rule)
		}
	}

	var (
		findings  []Finding
		ancestors []*parser.Node
		visit     func(n *parser.Node)
	)
	visit = func(n *parser.Node) {
		if n.Token != nil {
			return
		}
		for _, rule := range byKind[n.Kind] {
			ctx := &Context{Node: n, Ancestors: ancestors, Root: root, File: file}
			state, ok := rule.Run(ctx)
			if !ok {
				continue
			}
			f := Finding{
				Rule:       rule.Name(),
				Severity:   a.severity(rule),
				File:       file,
				Diagnostic: rule.Diagnostic(ctx, state),
			}
			if fixer, ok := rule.(Fixer); ok {
				f.Action = fixer.Action(ctx, state)
			}
			a.logger.Debugf("%s", f)
			findings = append(findings, f)
		}
		ancestors = append(ancestors, n)
		for _, child := range n.Children {
			visit(child)
		}
		ancestors = ancestors[:len(ancestors)-1]
	}
	visit(root)

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Span.Start.Offset < findings[j].Span.Start.Offset
	})
	return findings
}

// Apply commits the actions of all fixable findings as one mutation and
// returns the new tree together with the number of actions applied. An
// action whose edits overlap those of an earlier one is skipped.
func Apply(root *parser.Node, findings []Finding) (*parser.Node, int) {
	batch := NewMutation(root)
	applied := 0
	for _, f := range findings {
		if f.Action == nil || f.Action.Mutation == nil || f.Action.Mutation.Len() == 0 {
			continue
		}
		if batch.Overlaps(f.Action.Mutation) {
			continue
		}
		batch.Merge(f.Action.Mutation)
		applied++
	}
	return batch.Commit(), applied
}
