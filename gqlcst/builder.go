package gqlcst

import "github.com/lossless-gql/gqlcst/internal/text"

// Builder assembles a syntax tree bottom-up while the parser consumes
// tokens left to right. It is append-only: nodes are opened with StartNode
// and closed with NodeGuard.Finish, tokens are appended with the Token
// method, and a Checkpoint lets a caller wrap already-appended siblings into
// a new parent once more lookahead reveals what they actually were.
//
// Builder itself knows nothing about GraphQL; it is reused, unchanged in
// shape, by every grammar production in this package.
type Builder struct {
	stack []*nodeBuild
	root  *nodeBuild
}

// NewBuilder returns an empty Builder ready for a single parse.
func NewBuilder() *Builder {
	return &Builder{}
}

type nodeBuild struct {
	kind     SyntaxKind
	children []rawChild
}

type rawChild struct {
	isToken bool
	token   rawToken
	node    *nodeBuild
}

type rawToken struct {
	kind SyntaxKind
	span text.Span
}

// NodeGuard closes the node most recently opened by StartNode or
// StartNodeAt. Finish is idempotent so it is always safe to defer.
type NodeGuard struct {
	b      *Builder
	frame  *nodeBuild
	closed bool
}

// Finish closes the guarded node. Calling it more than once is a no-op.
func (g *NodeGuard) Finish() {
	if g == nil || g.closed {
		return
	}
	g.closed = true
	top := g.b.stack[len(g.b.stack)-1]
	if top != g.frame {
		panic("gqlcst: NodeGuard.Finish called out of order")
	}
	g.b.stack = g.b.stack[:len(g.b.stack)-1]
}

// Checkpoint marks a position among the current node's children so a later
// call to StartNodeAt can retroactively wrap everything appended since.
type Checkpoint struct {
	frame *nodeBuild
	pos   int
}

// StartNode opens a new composite node as a child of the node currently on
// top of the stack (or as the tree root, if the stack is empty).
func (b *Builder) StartNode(kind SyntaxKind) NodeGuard {
	n := &nodeBuild{kind: kind}
	if len(b.stack) == 0 {
		b.root = n
	} else {
		top := b.stack[len(b.stack)-1]
		top.children = append(top.children, rawChild{node: n})
	}
	b.stack = append(b.stack, n)
	return NodeGuard{b: b, frame: n}
}

// Checkpoint records the current end of the top node's children.
func (b *Builder) Checkpoint() Checkpoint {
	top := b.stack[len(b.stack)-1]
	return Checkpoint{frame: top, pos: len(top.children)}
}

// StartNodeAt opens a new node of kind and moves every child appended to
// the checkpointed frame since the checkpoint was taken underneath it,
// preserving order. The checkpoint must still refer to the frame on top of
// the stack: nothing may have been finished since it was taken.
func (b *Builder) StartNodeAt(cp Checkpoint, kind SyntaxKind) NodeGuard {
	top := b.stack[len(b.stack)-1]
	if top != cp.frame {
		panic("gqlcst: StartNodeAt checkpoint no longer refers to the open frame")
	}
	if cp.pos > len(top.children) {
		panic("gqlcst: StartNodeAt checkpoint position out of range")
	}

	tail := append([]rawChild(nil), top.children[cp.pos:]...)
	top.children = top.children[:cp.pos]

	n := &nodeBuild{kind: kind, children: tail}
	top.children = append(top.children, rawChild{node: n})
	b.stack = append(b.stack, n)
	return NodeGuard{b: b, frame: n}
}

// Token appends a leaf token to the node currently on top of the stack.
func (b *Builder) Token(kind SyntaxKind, span text.Span) {
	top := b.stack[len(b.stack)-1]
	top.children = append(top.children, rawChild{isToken: true, token: rawToken{kind: kind, span: span}})
}

// finish returns the completed tree root. It panics if any node is still
// open, which would mean a grammar production forgot to close its guard.
func (b *Builder) finish() *nodeBuild {
	if len(b.stack) != 0 {
		panic("gqlcst: Builder.finish called with unclosed nodes")
	}
	return b.root
}
