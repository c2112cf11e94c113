package parser

type eventKind uint8

const (
	eventStart eventKind = iota
	eventToken
	eventFinish
)

// event is one entry of the flat construction log. The tree is built by
// replaying the log once parsing is done, so wrapping an already finished
// node never rewrites pointers: the start event of the wrapped node records
// the distance to the start event of its new parent instead.
type event struct {
	kind          eventKind
	node          NodeKind
	forwardParent int
	token         int
}

// Marker is an open node boundary. It must be completed or abandoned
// before the production that opened it returns.
type Marker struct {
	pos      int
	tokenPos int
}

func (p *Parser) start() Marker {
	pos := len(p.events)
	p.events = append(p.events, event{kind: eventStart, node: KindTombstone})
	p.open++
	return Marker{pos: pos, tokenPos: p.pos}
}

// Complete closes the marker. Every token and node produced since the
// marker was opened becomes a child of the new node.
func (m Marker) Complete(p *Parser, kind NodeKind) CompletedMarker {
	p.events[m.pos].node = kind
	p.events = append(p.events, event{kind: eventFinish})
	p.open--
	return CompletedMarker{
		start:    m.pos,
		kind:     kind,
		tokenPos: m.tokenPos,
	}
}

// Abandon drops the marker. Anything produced after it was opened is
// attached to the enclosing node.
func (m Marker) Abandon(p *Parser) {
	if m.pos == len(p.events)-1 {
		p.events = p.events[:m.pos]
	}
	p.open--
}

// CompletedMarker is a handle to a finished node in the event log.
type CompletedMarker struct {
	start    int
	kind     NodeKind
	tokenPos int
}

func (m CompletedMarker) Kind() NodeKind {
	return m.kind
}

// Precede opens a new marker that starts where m starts. Completing it
// yields a node whose first child is the node of m.
func (m CompletedMarker) Precede(p *Parser) Marker {
	outer := p.start()
	outer.tokenPos = m.tokenPos
	p.events[m.start].forwardParent = outer.pos - m.start
	return outer
}

// ChangeKind retags a finished node in place, keeping its span and
// children.
func (m CompletedMarker) ChangeKind(p *Parser, kind NodeKind) CompletedMarker {
	p.events[m.start].node = kind
	m.kind = kind
	return m
}

type buildFrame struct {
	node  *Node
	first int
	last  int
}

// buildTree replays the event log into a tree. The log must hold exactly
// one outermost node.
func (p *Parser) buildTree() *Node {
	var (
		stack   []buildFrame
		root    *Node
		kinds   []NodeKind
		emitted int
	)

	for i := range p.events {
		ev := p.events[i]
		switch ev.kind {
		case eventStart:
			if ev.node == KindTombstone {
				continue
			}
			kinds = kinds[:0]
			idx := i
			for {
				kinds = append(kinds, p.events[idx].node)
				fp := p.events[idx].forwardParent
				if idx != i {
					p.events[idx].node = KindTombstone
				}
				if fp == 0 {
					break
				}
				idx += fp
			}
			for j := len(kinds) - 1; j >= 0; j-- {
				stack = append(stack, buildFrame{node: &Node{Kind: kinds[j]}, first: -1, last: -1})
			}

		case eventToken:
			tok := &p.tokens[ev.token]
			top := &stack[len(stack)-1]
			top.node.Children = append(top.node.Children, &Node{
				Kind:  KindToken,
				Span:  tok.Span,
				Token: tok,
			})
			if top.first < 0 {
				top.first = ev.token
			}
			top.last = ev.token
			emitted = ev.token + 1

		case eventFinish:
			frame := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if frame.first < 0 {
				at := p.tokens[min(emitted, len(p.tokens)-1)].Span.Start
				frame.node.Span = Span{Start: at, End: at}
			} else {
				frame.node.Span = Span{
					Start: p.tokens[frame.first].Span.Start,
					End:   p.tokens[frame.last].Span.End,
				}
			}
			if len(stack) == 0 {
				root = frame.node
				continue
			}
			parent := &stack[len(stack)-1]
			parent.node.Children = append(parent.node.Children, frame.node)
			if frame.first >= 0 {
				if parent.first < 0 {
					parent.first = frame.first
				}
				parent.last = frame.last
			}
		}
	}

	return root
}
