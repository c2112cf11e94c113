package parser

import (
	"strings"
	"testing"
)

// shape renders a tree compactly: tokens as their literal, nodes as
// Kind(children...).
func shape(n *Node) string {
	if n.Token != nil {
		if n.Token.Kind == TokenEOF {
			return "<eof>"
		}
		return n.Token.Literal
	}
	parts := make([]string, len(n.Children))
	for i, child := range n.Children {
		parts[i] = shape(child)
	}
	return n.Kind.String() + "(" + strings.Join(parts, " ") + ")"
}

func findAll(root *Node, kind NodeKind) []*Node {
	var result []*Node
	root.Walk(func(n *Node) bool {
		if n.Kind == kind && n.Token == nil {
			result = append(result, n)
		}
		return true
	})
	return result
}

func parseContainer(t *testing.T, src string, opts ...Option) (*Parser, *Node) {
	t.Helper()
	p := ParseContainerAtRule(strings.NewReader(src), opts...)
	root := p.Finish()
	if root == nil {
		t.Fatalf("Finish returned nil: %v", p.Err())
	}
	if got := root.Text(); got != src {
		t.Fatalf("round trip failed:\n got: %q\nwant: %q", got, src)
	}
	if p.open != 0 {
		t.Fatalf("%d markers left open", p.open)
	}
	return p, root
}

func TestParseContainerAtRule(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "named size query",
			input: "container mysidebar (width > 400px) { }",
			want:  "ContainerAtRule(container Identifier(mysidebar) ContainerSizeFeatureInParens(( QueryFeatureRange(Identifier(width) QueryFeatureRangeComparison(>) Dimension(400px)) )) RuleListBlock({ RuleList() }))",
		},
		{
			name:  "style queries joined by and",
			input: "container style(color: blue) and style(display: flex) { }",
			want:  "ContainerAtRule(container ContainerAndQuery(ContainerStyleQueryInParens(style ( Declaration(Identifier(color) : ComponentValueList(blue)) )) and ContainerStyleQueryInParens(style ( Declaration(Identifier(display) : ComponentValueList(flex)) ))) RuleListBlock({ RuleList() }))",
		},
		{
			name:  "mixed combinators fold left",
			input: "container (a) and (b) or (c) { }",
			want:  "ContainerAtRule(container ContainerOrQuery(ContainerAndQuery(ContainerSizeFeatureInParens(( QueryFeatureBoolean(Identifier(a)) )) and ContainerSizeFeatureInParens(( QueryFeatureBoolean(Identifier(b)) ))) or ContainerSizeFeatureInParens(( QueryFeatureBoolean(Identifier(c)) ))) RuleListBlock({ RuleList() }))",
		},
		{
			name:  "negated grouping around a style query",
			input: "container not (style(color: red)) { }",
			want:  "ContainerAtRule(container ContainerNotQuery(not ContainerQueryInParens(( ContainerStyleQueryInParens(style ( Declaration(Identifier(color) : ComponentValueList(red)) )) ))) RuleListBlock({ RuleList() }))",
		},
		{
			name:  "nested style conditions",
			input: "container style((color: red) and (display: flex)) { }",
			want:  "ContainerAtRule(container ContainerStyleQueryInParens(style ( ContainerStyleAndQuery(ContainerStyleInParens(( Declaration(Identifier(color) : ComponentValueList(red)) )) and ContainerStyleInParens(( Declaration(Identifier(display) : ComponentValueList(flex)) ))) )) RuleListBlock({ RuleList() }))",
		},
		{
			name:  "style chain nests right",
			input: "container style((a: 1) and (b: 2) or (c: 3)) {}",
			want:  "ContainerAtRule(container ContainerStyleQueryInParens(style ( ContainerStyleAndQuery(ContainerStyleInParens(( Declaration(Identifier(a) : ComponentValueList(1)) )) and ContainerStyleOrQuery(ContainerStyleInParens(( Declaration(Identifier(b) : ComponentValueList(2)) )) or ContainerStyleInParens(( Declaration(Identifier(c) : ComponentValueList(3)) )))) )) RuleListBlock({ RuleList() }))",
		},
		{
			name:  "style not query",
			input: "container style(not (color: red)) {}",
			want:  "ContainerAtRule(container ContainerStyleQueryInParens(style ( ContainerStyleNotQuery(not ContainerStyleInParens(( Declaration(Identifier(color) : ComponentValueList(red)) ))) )) RuleListBlock({ RuleList() }))",
		},
		{
			name:  "nested condition groups",
			input: "container ((a) or (b)) and (c) {}",
			want:  "ContainerAtRule(container ContainerAndQuery(ContainerQueryInParens(( ContainerOrQuery(ContainerSizeFeatureInParens(( QueryFeatureBoolean(Identifier(a)) )) or ContainerSizeFeatureInParens(( QueryFeatureBoolean(Identifier(b)) ))) )) and ContainerSizeFeatureInParens(( QueryFeatureBoolean(Identifier(c)) ))) RuleListBlock({ RuleList() }))",
		},
		{
			name:  "keyword used as a name",
			input: "container style (width) {}",
			want:  "ContainerAtRule(container Identifier(style) ContainerSizeFeatureInParens(( QueryFeatureBoolean(Identifier(width)) )) RuleListBlock({ RuleList() }))",
		},
		{
			name:  "important declaration",
			input: "container style(color: red !important) {}",
			want:  "ContainerAtRule(container ContainerStyleQueryInParens(style ( Declaration(Identifier(color) : ComponentValueList(red) DeclarationImportant(! important)) )) RuleListBlock({ RuleList() }))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, root := parseContainer(t, tt.input)
			if diags := p.Diagnostics(); len(diags) != 0 {
				t.Fatalf("unexpected diagnostics: %v", diags)
			}
			if got := shape(root.Children[0]); got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestParseQueryFeature(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(width)", "QueryFeatureBoolean(Identifier(width))"},
		{"(width: 100px)", "QueryFeaturePlain(Identifier(width) : Dimension(100px))"},
		{"(orientation: landscape)", "QueryFeaturePlain(Identifier(orientation) : Identifier(landscape))"},
		{"(aspect-ratio: 16/9)", "QueryFeaturePlain(Identifier(aspect-ratio) : Ratio(Number(16) / Number(9)))"},
		{"(width >= 400px)", "QueryFeatureRange(Identifier(width) QueryFeatureRangeComparison(> =) Dimension(400px))"},
		{"(width = 50%)", "QueryFeatureRange(Identifier(width) QueryFeatureRangeComparison(=) Percentage(50%))"},
		{"(400px <= width)", "QueryFeatureReverseRange(Dimension(400px) QueryFeatureRangeComparison(< =) Identifier(width))"},
		{"(100px < width < 800px)", "QueryFeatureRangeInterval(Dimension(100px) QueryFeatureRangeComparison(<) Identifier(width) QueryFeatureRangeComparison(<) Dimension(800px))"},
		{"(width > calc(10px + 1em))", "QueryFeatureRange(Identifier(width) QueryFeatureRangeComparison(>) Function(Identifier(calc) ( ComponentValueList(10px + 1em) )))"},
		{"(calc(1px) < width)", "QueryFeatureReverseRange(Function(Identifier(calc) ( ComponentValueList(1px) )) QueryFeatureRangeComparison(<) Identifier(width))"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, root := parseContainer(t, "container "+tt.input+" {}")
			if diags := p.Diagnostics(); len(diags) != 0 {
				t.Fatalf("unexpected diagnostics: %v", diags)
			}
			features := findAll(root, KindContainerSizeFeatureInParens)
			if len(features) != 1 {
				t.Fatalf("got %d size features, want 1", len(features))
			}
			nodes := features[0].Nodes()
			if len(nodes) != 1 {
				t.Fatalf("got %d feature nodes, want 1", len(nodes))
			}
			if got := shape(nodes[0]); got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestContainerRecovery(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		messages []string
	}{
		{
			name:     "missing block",
			input:    "container foo",
			want:     "BogusAtRule(container Identifier(foo))",
			messages: []string{"expected `{` to start a block but found the end of the file"},
		},
		{
			name:     "junk before block",
			input:    "container (width > 1px) .a { }",
			want:     "ContainerAtRule(container ContainerSizeFeatureInParens(( QueryFeatureRange(Identifier(width) QueryFeatureRangeComparison(>) Dimension(1px)) )) BogusBlock(. a) RuleListBlock({ RuleList() }))",
			messages: []string{"expected `{` to start a block but found `.`"},
		},
		{
			name:     "missing closing paren",
			input:    "container (width { }",
			want:     "ContainerAtRule(container ContainerSizeFeatureInParens(( QueryFeatureBoolean(Identifier(width))) RuleListBlock({ RuleList() }))",
			messages: []string{"expected `)` but found `{`"},
		},
		{
			name:     "missing style paren",
			input:    "container (a) and style color: red) {}",
			want:     "ContainerAtRule(container ContainerAndQuery(ContainerSizeFeatureInParens(( QueryFeatureBoolean(Identifier(a)) )) and ContainerStyleQueryInParens(style Declaration(Identifier(color) : ComponentValueList(red)) ))) RuleListBlock({ RuleList() }))",
			messages: []string{"expected `(` but found `color`"},
		},
		{
			name:     "missing feature value",
			input:    "container (width >) {}",
			want:     "ContainerAtRule(container ContainerSizeFeatureInParens(( QueryFeatureRange(Identifier(width) QueryFeatureRangeComparison(>)) )) RuleListBlock({ RuleList() }))",
			messages: []string{"expected a query feature value but found `)`"},
		},
		{
			name:     "dangling combinator",
			input:    "container (a) and {}",
			want:     "ContainerAtRule(container ContainerAndQuery(ContainerSizeFeatureInParens(( QueryFeatureBoolean(Identifier(a)) )) and) RuleListBlock({ RuleList() }))",
			messages: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, root := parseContainer(t, tt.input)
			if got := shape(root.Children[0]); got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
			diags := p.Diagnostics()
			if len(diags) != len(tt.messages) {
				t.Fatalf("got %d diagnostics, want %d: %v", len(diags), len(tt.messages), diags)
			}
			for i, msg := range tt.messages {
				if diags[i].Message != msg {
					t.Errorf("diagnostic %d: got %q, want %q", i, diags[i].Message, msg)
				}
			}
		})
	}
}

func TestDiagnosticPosition(t *testing.T) {
	p, _ := parseContainer(t, "container (width { }", WithFile("app.css"))
	diags := p.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if got, want := diags[0].Error(), "app.css:1:18: expected `)` but found `{`"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBogusAtRuleDoesNotSwallowNextRule(t *testing.T) {
	src := "@container foo\n.a { color: red }"
	root, diags := Parse([]byte(src))
	if got := root.Text(); got != src {
		t.Fatalf("round trip failed: %q", got)
	}
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(diags), diags)
	}
	want := "RuleList(AtRule(@ BogusAtRule(container Identifier(foo))) QualifiedRule(SelectorPrelude(. a) DeclarationListBlock({ Declaration(Identifier(color) : ComponentValueList(red)) })))"
	if got := shape(root.Children[0]); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestParseStylesheet(t *testing.T) {
	src := `@import url(base.css);
@media screen { .a { color: red } }

@container card (min-width: 400px) {
  .title { font-size: 2em; }
  .body:hover { color: blue !important; }
}

/* trailing */
`
	root, diags := Parse([]byte(src), WithFile("app.css"))
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if got := root.Text(); got != src {
		t.Fatalf("round trip failed:\n%s", got)
	}

	counts := map[NodeKind]int{
		KindAtRule:            3,
		KindUnknownAtRule:     2,
		KindContainerAtRule:   1,
		KindQualifiedRule:     2,
		KindDeclaration:       2,
		KindQueryFeaturePlain: 1,
	}
	for kind, want := range counts {
		if got := len(findAll(root, kind)); got != want {
			t.Errorf("%v: got %d nodes, want %d", kind, got, want)
		}
	}

	rule := findAll(root, KindContainerAtRule)[0]
	name := rule.FirstChildOfKind(KindIdentifier)
	if name == nil || name.TrimmedText() != "card" {
		t.Errorf("container name = %v, want card", name)
	}
}

func TestStylesheetRecovery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		diags int
	}{
		{
			name:  "stray closing brace",
			input: "} .a {}",
			want:  "RuleList(BogusRule(}) QualifiedRule(SelectorPrelude(. a) DeclarationListBlock({ })))",
			diags: 1,
		},
		{
			name:  "selector without block",
			input: ".a; .b {}",
			want:  "RuleList(BogusRule(SelectorPrelude(. a) ;) QualifiedRule(SelectorPrelude(. b) DeclarationListBlock({ })))",
			diags: 1,
		},
		{
			name:  "unclosed block",
			input: ".a { color: red",
			want:  "RuleList(QualifiedRule(SelectorPrelude(. a) DeclarationListBlock({ Declaration(Identifier(color) : ComponentValueList(red)))))",
			diags: 1,
		},
		{
			name:  "nested rule",
			input: ".a { .b { x: y } }",
			want:  "RuleList(QualifiedRule(SelectorPrelude(. a) DeclarationListBlock({ QualifiedRule(SelectorPrelude(. b) DeclarationListBlock({ Declaration(Identifier(x) : ComponentValueList(y)) })) })))",
			diags: 0,
		},
		{
			name:  "unknown at-rule without name",
			input: "@ ;",
			want:  "RuleList(AtRule(@ UnknownAtRule(ComponentValueList() ;)))",
			diags: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, diags := Parse([]byte(tt.input))
			if got := root.Text(); got != tt.input {
				t.Fatalf("round trip failed: %q", got)
			}
			if len(diags) != tt.diags {
				t.Errorf("got %d diagnostics, want %d: %v", len(diags), tt.diags, diags)
			}
			if got := shape(root.Children[0]); got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestTrailingInputAfterContainerRule(t *testing.T) {
	_, root := parseContainer(t, "container (a) {} .b {}")
	if len(root.Children) != 3 {
		t.Fatalf("got %d root children, want 3", len(root.Children))
	}
	if root.Children[1].Kind != KindBogus {
		t.Errorf("second child is %v, want Bogus", root.Children[1].Kind)
	}
	if root.Children[2].Token == nil || root.Children[2].Token.Kind != TokenEOF {
		t.Errorf("last child is not EOF")
	}
}

func TestNestingLimit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []Option
	}{
		{
			name:  "custom limit",
			input: "container " + strings.Repeat("(", 50) + "a" + strings.Repeat(")", 50) + " {}",
			opts:  []Option{WithMaxDepth(4)},
		},
		{
			name:  "default limit",
			input: "container " + strings.Repeat("(", 10000) + "a" + strings.Repeat(")", 10000) + " {}",
		},
		{
			name:  "style chain",
			input: "container style(" + strings.Repeat("(a: b) and ", 300) + "(a: b)) {}",
		},
		{
			name:  "unbalanced",
			input: "container " + strings.Repeat("(", 500),
			opts:  []Option{WithMaxDepth(8)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, root := parseContainer(t, tt.input, tt.opts...)
			found := false
			for _, d := range p.Diagnostics() {
				if strings.HasPrefix(d.Message, "nesting exceeds the maximum depth") {
					found = true
				}
			}
			if !found {
				t.Errorf("no nesting diagnostic in %v", p.Diagnostics())
			}
			if len(findAll(root, KindBogus)) == 0 {
				t.Error("expected a Bogus node")
			}
		})
	}
}

func TestNestingLimitSingleDiagnostic(t *testing.T) {
	src := "container " + strings.Repeat("(", 50) + "a" + strings.Repeat(")", 50) + " {}"
	p, root := parseContainer(t, src, WithMaxDepth(4))
	if n := len(p.Diagnostics()); n != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", n, p.Diagnostics())
	}
	if root.Children[0].Kind != KindContainerAtRule {
		t.Errorf("got %v, want ContainerAtRule", root.Children[0].Kind)
	}
}

func TestNestingLimitSiblingGroups(t *testing.T) {
	group := strings.Repeat("(", 10) + "a" + strings.Repeat(")", 10)
	src := "container " + group + " and " + group + " or " + group + " {}"
	p, root := parseContainer(t, src, WithMaxDepth(4))
	n := 0
	for _, d := range p.Diagnostics() {
		if strings.HasPrefix(d.Message, "nesting exceeds the maximum depth") {
			n++
		}
	}
	if n != 1 {
		t.Errorf("got %d nesting diagnostics, want 1: %v", n, p.Diagnostics())
	}
	if got := root.Text(); got != src {
		t.Errorf("round trip: got %q, want %q", got, src)
	}
}

func TestDeepBlocks(t *testing.T) {
	src := "a " + strings.Repeat("{", 1000) + strings.Repeat("}", 1000)
	root, diags := Parse([]byte(src))
	if got := root.Text(); got != src {
		t.Fatal("round trip failed")
	}
	if len(diags) != 1 {
		t.Errorf("got %d diagnostics, want 1", len(diags))
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"/* only a comment */",
		"container",
		"container (",
		"container )",
		"container (((",
		"container not",
		"container not not (a)",
		"container and or",
		"container (a) and",
		"container style(",
		"container style((",
		"container style(not",
		"container style(color:",
		"container (width > ) {",
		"container (100px < width <",
		"container (16/ ) {}",
		"container foo bar baz { }",
		"container {",
		"container }",
		"container ;",
		"container @",
		"container \"unterminated",
		"container (a) { .b { color: red } ",
		"@container",
		"@container\n",
		"@container foo\n@container bar\n",
		"@@@",
		"}}}",
		";;;",
		"{{{",
		".a { color: red; ;; } }",
		"@media (x { .a { } }",
		"a { b: c(d(e(f(g",
		"a[href=\"x\"] { color: #fff }",
		"<!-- .a {} -->",
		"@container (width: 1px) { @container (height: 2px) { .a {} } }",
		"container style(--custom: { a b c }) {}",
		"\\",
		"url(",
		"/* unterminated",
		"\r\n\r\n@container\r\n(a)\r\n{\r\n}\r\n",
	}

	for _, src := range inputs {
		t.Run(src, func(t *testing.T) {
			for _, entry := range []func(*strings.Reader) *Parser{
				func(r *strings.Reader) *Parser { return ParseStylesheet(r) },
				func(r *strings.Reader) *Parser { return ParseContainerAtRule(r) },
			} {
				p := entry(strings.NewReader(src))
				root := p.Finish()
				if got := root.Text(); got != src {
					t.Errorf("round trip failed:\n got: %q\nwant: %q", got, src)
				}
				if p.open != 0 {
					t.Errorf("%d markers left open", p.open)
				}
				if root.Kind != KindRoot {
					t.Errorf("root kind = %v", root.Kind)
				}
				tokens := root.Tokens()
				if tokens[len(tokens)-1].Kind != TokenEOF {
					t.Error("tree does not end with EOF")
				}
				if len(tokens) != len(p.tokens) {
					t.Errorf("tree holds %d tokens, lexer produced %d", len(tokens), len(p.tokens))
				}
			}
		})
	}
}

func newTestParser(src string) *Parser {
	p := newParser(nil, nil, nil)
	p.tokens = Tokenize([]byte(src), "")
	return p
}

func TestAbsentConsumesNothing(t *testing.T) {
	tests := []struct {
		name  string
		input string
		parse parseFunc
	}{
		{"container at-rule", "foo", (*Parser).parseContainerAtRule},
		{"container query", "{ }", (*Parser).parseAnyContainerQuery},
		{"not query", "(a)", (*Parser).parseContainerNotQuery},
		{"query in parens", "foo", (*Parser).parseAnyContainerQueryInParens},
		{"query in parens at not", "not (a)", (*Parser).parseAnyContainerQueryInParens},
		{"grouping", "style(a: b)", (*Parser).parseContainerQueryInParens},
		{"size feature", "width", (*Parser).parseContainerSizeFeatureInParens},
		{"style query in parens", "(a: b)", (*Parser).parseContainerStyleQueryInParens},
		{"style query", ")", (*Parser).parseAnyContainerStyleQuery},
		{"style combinable", "{", (*Parser).parseContainerStyleCombinableQuery},
		{"style not", "(a: b)", (*Parser).parseContainerStyleNotQuery},
		{"style in parens", "a: b", (*Parser).parseContainerStyleInParens},
		{"query feature", ")", (*Parser).parseAnyQueryFeature},
		{"feature value", "<", (*Parser).parseAnyQueryFeatureValue},
		{"range comparison", "width", (*Parser).parseQueryFeatureRangeComparison},
		{"ratio", "a / b", (*Parser).parseRatio},
		{"identifier", "1px", (*Parser).parseRegularIdentifier},
		{"declaration", "1px", (*Parser).parseDeclaration},
		{"important", "! foo", (*Parser).parseDeclarationImportant},
		{"function", "calc (1px)", (*Parser).parseFunction},
		{"simple block", "a", (*Parser).parseSimpleBlock},
		{"at-rule", "container", (*Parser).parseAtRule},
		{"qualified rule", "", (*Parser).parseQualifiedRule},
		{"rule list block", ".a", (*Parser).parseRuleListBlock},
		{"declaration list block", "a: b", (*Parser).parseDeclarationListBlock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(tt.input)
			result := tt.parse(p)
			if result.IsPresent() {
				t.Fatalf("got %v, want Absent", result.Kind())
			}
			if p.pos != 0 {
				t.Errorf("cursor moved to %d", p.pos)
			}
			if len(p.events) != 0 {
				t.Errorf("%d events recorded", len(p.events))
			}
			if len(p.diagnostics) != 0 {
				t.Errorf("diagnostics recorded: %v", p.diagnostics)
			}
		})
	}
}

func TestPrecede(t *testing.T) {
	p := newTestParser("a b c")
	root := p.start()
	m := p.start()
	p.bumpAny()
	first := m.Complete(p, KindIdentifier)
	outer := first.Precede(p)
	p.bumpAny()
	wrapped := outer.Complete(p, KindContainerAndQuery)
	outermost := wrapped.Precede(p)
	p.bumpAny()
	outermost.Complete(p, KindContainerOrQuery)
	root.Complete(p, KindRoot)

	if p.open != 0 {
		t.Fatalf("%d markers left open", p.open)
	}
	want := "Root(ContainerOrQuery(ContainerAndQuery(Identifier(a) b) c))"
	if got := shape(p.buildTree()); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestAbandon(t *testing.T) {
	p := newTestParser("a")
	root := p.start()
	m := p.start()
	m.Abandon(p)
	p.bumpAny()
	root.Complete(p, KindRoot)

	if got := shape(p.buildTree()); got != "Root(a)" {
		t.Errorf("got %s", got)
	}
}

func TestBumpMismatchIsReported(t *testing.T) {
	p := newTestParser("a")
	p.bump(TokenLParen)
	if p.pos != 0 {
		t.Error("bump consumed a mismatched token")
	}
	if len(p.diagnostics) != 1 || !strings.HasPrefix(p.diagnostics[0].Message, "internal error") {
		t.Errorf("got %v", p.diagnostics)
	}
}

func TestParserReset(t *testing.T) {
	p := ParseStylesheet(strings.NewReader(".a {}"))
	first := p.Finish()
	if len(findAll(first, KindQualifiedRule)) != 1 {
		t.Fatal("expected a qualified rule")
	}
	if again := p.Finish(); again != first {
		t.Error("Finish did not return the cached tree")
	}

	p.Reset(strings.NewReader("@container (a) {}"))
	second := p.Finish()
	if len(findAll(second, KindContainerAtRule)) != 1 {
		t.Errorf("expected a container at-rule, got\n%s", second)
	}
	if second.Text() != "@container (a) {}" {
		t.Errorf("round trip failed: %q", second.Text())
	}
}
