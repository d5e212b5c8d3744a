package gqlcst

import (
	"strings"

	"github.com/lossless-gql/gqlcst/internal/text"
)

// Severity classifies an Error.
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Error is a diagnostic attached to a parsed document: a human-readable
// message and the byte span it concerns. Errors never stop parsing; they
// accumulate on the SyntaxTree alongside whatever tree could still be built.
type Error struct {
	Message  string
	Span     text.Span
	Severity Severity
}

// Location renders the error's span the way the parser reports it in
// messages: a plain byte range, since SyntaxTree carries no file name.
func (e Error) Location() text.Span { return e.Span }

// Point projects the error's start offset through idx into a line/column
// position, for a caller (an editor integration, say) that wants a
// human-facing location instead of a raw byte offset.
func (e Error) Point(idx *text.LineIndex) (text.Point, error) {
	return idx.OffsetToPoint(e.Span.Start)
}

func (e Error) String() string {
	return e.Span.String() + ": " + e.Message
}

// SyntaxToken is an immutable leaf of a SyntaxTree: a kind and the exact
// source bytes it covers, including keyword and trivia tokens.
type SyntaxToken struct {
	kind SyntaxKind
	span text.Span
	text string
}

func (t SyntaxToken) Kind() SyntaxKind     { return t.kind }
func (t SyntaxToken) Text() string         { return t.text }
func (t SyntaxToken) TextRange() text.Span { return t.span }

// SyntaxElement is either a SyntaxToken leaf or a child SyntaxNode. Every
// SyntaxNode's Children slice is made of these.
type SyntaxElement struct {
	isToken bool
	token   SyntaxToken
	node    *SyntaxNode
}

func (e SyntaxElement) IsToken() bool { return e.isToken }

// Token returns the element's token. Calling it on a node element returns
// the zero SyntaxToken; check IsToken first.
func (e SyntaxElement) Token() SyntaxToken { return e.token }

// Node returns the element's node, or nil if the element is a token.
func (e SyntaxElement) Node() *SyntaxNode { return e.node }

func (e SyntaxElement) Kind() SyntaxKind {
	if e.isToken {
		return e.token.kind
	}
	return e.node.kind
}

func (e SyntaxElement) TextRange() text.Span {
	if e.isToken {
		return e.token.span
	}
	return e.node.span
}

func (e SyntaxElement) text() string {
	if e.isToken {
		return e.token.text
	}
	return e.node.Text()
}

// SyntaxNode is an immutable composite node of a SyntaxTree.
type SyntaxNode struct {
	kind     SyntaxKind
	span     text.Span
	children []SyntaxElement
}

func (n *SyntaxNode) Kind() SyntaxKind { return n.kind }

// Children returns the node's direct children, tokens and nodes
// interleaved in source order.
func (n *SyntaxNode) Children() []SyntaxElement { return n.children }

// ChildNodes returns only the child elements that are themselves nodes,
// in source order.
func (n *SyntaxNode) ChildNodes() []*SyntaxNode {
	var out []*SyntaxNode
	for _, c := range n.children {
		if !c.isToken {
			out = append(out, c.node)
		}
	}
	return out
}

// TextRange returns the byte span covered by the node, the union of its
// first and last child's ranges. A childless node has an empty span at its
// insertion point.
func (n *SyntaxNode) TextRange() text.Span { return n.span }

// Text reconstructs the exact source text covered by the node by
// concatenating every descendant token's text in order. For the document
// root this recovers the entire original input, byte for byte.
func (n *SyntaxNode) Text() string {
	var sb strings.Builder
	for _, c := range n.children {
		sb.WriteString(c.text())
	}
	return sb.String()
}

// SyntaxTree is the immutable result of parsing a GraphQL document: a
// lossless tree rooted at a DOCUMENT node, plus every diagnostic collected
// along the way. A SyntaxTree is always produced, even for empty,
// malformed, or fully unparseable input.
type SyntaxTree struct {
	root      *SyntaxNode
	errors    []Error
	lineIndex *text.LineIndex
}

// Document returns the tree's DOCUMENT root.
func (t *SyntaxTree) Document() *SyntaxNode { return t.root }

// Errors returns every diagnostic collected while building the tree, in the
// order they were discovered.
func (t *SyntaxTree) Errors() []Error { return t.errors }

// LineIndex returns the line/column index built over the tree's source, for
// callers that want to project an Error's byte offset into a Point rather
// than working with raw offsets.
func (t *SyntaxTree) LineIndex() *text.LineIndex { return t.lineIndex }

// HasErrors reports whether parsing produced any diagnostic.
func (t *SyntaxTree) HasErrors() bool { return len(t.errors) > 0 }

func freezeNode(src []byte, n *nodeBuild) *SyntaxNode {
	var pos text.ByteOffset
	return freezeNodeAt(src, n, &pos)
}

// freezeNodeAt freezes n, with *pos tracking the end of the last token
// frozen so far; a childless node gets the empty span at that position.
func freezeNodeAt(src []byte, n *nodeBuild, pos *text.ByteOffset) *SyntaxNode {
	node := &SyntaxNode{kind: n.kind, span: text.Span{Start: *pos, End: *pos}}
	node.children = make([]SyntaxElement, 0, len(n.children))
	for _, c := range n.children {
		if c.isToken {
			node.children = append(node.children, SyntaxElement{
				isToken: true,
				token: SyntaxToken{
					kind: c.token.kind,
					span: c.token.span,
					text: string(treeBytes(src, c.token.span)),
				},
			})
			*pos = c.token.span.End
			continue
		}
		node.children = append(node.children, SyntaxElement{node: freezeNodeAt(src, c.node, pos)})
	}

	if len(node.children) > 0 {
		node.span = text.Span{
			Start: node.children[0].TextRange().Start,
			End:   node.children[len(node.children)-1].TextRange().End,
		}
	}
	return node
}

func treeBytes(src []byte, sp text.Span) []byte {
	if !sp.IsValid() || sp.End > text.ByteOffset(len(src)) {
		return nil
	}
	return src[sp.Start:sp.End]
}
