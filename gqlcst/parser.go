// Package gqlcst implements an error-resilient GraphQL lexer and
// recursive-descent parser that produces a lossless concrete syntax tree.
// Every byte of the input, including whitespace, comments, and insignificant
// commas, is preserved as a token somewhere in the tree; malformed input
// still yields a tree, with the problems recorded as Errors instead of
// aborting the parse.
package gqlcst

import (
	"fmt"

	"github.com/lossless-gql/gqlcst/internal/lexer"
	"github.com/lossless-gql/gqlcst/internal/text"
)

// Parser drives a single recursive-descent parse of a token stream into a
// SyntaxTree. Grammar productions decide what to do from Parser.peek/peekData
// and commit with bump; the few that need a second token of lookahead (a
// Field's alias, a leading Description, an "extend" form) use peekAt/peekDataAt.
type Parser struct {
	src    []byte
	tokens []lexer.Token
	pos    int
	b      *Builder
	errors []Error
}

// Parse lexes and parses src, always returning a SyntaxTree: parsing never
// panics on malformed input, and never stops before reaching the end of the
// token stream.
func Parse(src []byte) *SyntaxTree {
	res := lexer.Lex(src)

	p := &Parser{src: src, tokens: res.Tokens, b: NewBuilder()}
	for _, d := range res.Diagnostics {
		p.errors = append(p.errors, Error{Message: d.Message, Span: d.Span})
	}

	document(p)

	root := p.b.finish()
	return &SyntaxTree{root: freezeNode(src, root), errors: p.errors, lineIndex: text.NewLineIndex(src)}
}

func (p *Parser) current() lexer.Token {
	return p.tokens[p.pos]
}

// peek returns the lexical kind of the next unconsumed token.
func (p *Parser) peek() lexer.TokenKind {
	return p.current().Kind
}

// peekData returns the raw text of the next token if it is a Name, which is
// how the parser recognizes contextual keywords ("query", "on",
// "repeatable", "implements", directive location names, and so on): the
// lexer never classifies these, so the parser must read the text itself.
func (p *Parser) peekData() (string, bool) {
	tok := p.current()
	if tok.Kind != lexer.TokenName {
		return "", false
	}
	return string(tok.Bytes(p.src)), true
}

// peekKeyword reports whether the next token is a Name whose text is kw.
func (p *Parser) peekKeyword(kw string) bool {
	data, ok := p.peekData()
	return ok && data == kw
}

// peekAt returns the lexical kind of the token offset tokens ahead of the
// cursor (0 is the same as peek). A few productions are genuinely
// ambiguous on one token alone — a Field's optional Alias, for instance —
// and need this extra token of lookahead to decide what to build.
func (p *Parser) peekAt(offset int) lexer.TokenKind {
	return p.tokenAt(offset).Kind
}

// peekDataAt is peekData at an offset; see peekAt.
func (p *Parser) peekDataAt(offset int) (string, bool) {
	tok := p.tokenAt(offset)
	if tok.Kind != lexer.TokenName {
		return "", false
	}
	return string(tok.Bytes(p.src)), true
}

func (p *Parser) tokenAt(offset int) lexer.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		idx = len(p.tokens) - 1
	}
	return p.tokens[idx]
}

func (p *Parser) atEOF() bool {
	return p.current().Kind == lexer.TokenEOF
}

// bump consumes the next token, reclassifying it as kind, and pushes its
// leading trivia (whitespace, comments, insignificant commas) as leaf
// children first so the tree stays lossless.
func (p *Parser) bump(kind SyntaxKind) {
	tok := p.current()
	p.pushTrivia(tok.Leading)
	p.b.Token(kind, tok.Span)
	p.advance()
}

// bumpAny consumes the next token under its natural SyntaxKind, for tokens
// that are never reclassified into a keyword (punctuators, literals, raw
// identifiers, Error tokens).
func (p *Parser) bumpAny() SyntaxKind {
	kind := tokenSyntaxKind(p.current().Kind)
	p.bump(kind)
	return kind
}

func (p *Parser) advance() {
	if p.current().Kind != lexer.TokenEOF {
		p.pos++
	}
}

func (p *Parser) pushTrivia(leading []lexer.Trivia) {
	for _, tr := range leading {
		p.b.Token(triviaSyntaxKind(tr.Kind), tr.Span)
	}
}

// expect consumes the next token as kind if it has lexical shape tk,
// reporting an error and leaving the cursor in place otherwise so the
// caller (or its caller) can attempt to resynchronize.
func (p *Parser) expect(tk lexer.TokenKind, kind SyntaxKind) bool {
	if p.current().Kind == tk {
		p.bump(kind)
		return true
	}
	p.err(fmt.Sprintf("expected %s", kind))
	return false
}

// err records a diagnostic at the current token's span without consuming
// anything.
func (p *Parser) err(msg string) {
	p.errorAt(p.current().Span, msg)
}

func (p *Parser) errorAt(span text.Span, msg string) {
	p.errors = append(p.errors, Error{Message: msg, Span: span})
}

// recoverAsError records msg and consumes exactly one token, wrapped in an
// ERROR node, so a production that has completely lost its footing always
// makes progress instead of looping forever. At end of input it only records
// msg: the Eof token is never put in the tree.
func (p *Parser) recoverAsError(msg string) {
	p.recoverAsNode(KindError, msg)
}

// recoverAsNode is recoverAsError with a caller-chosen wrapper kind, used
// where the recovered span still has an identifiable shape (an
// unrecognized top-level Definition, say) even though its contents don't
// parse.
func (p *Parser) recoverAsNode(kind SyntaxKind, msg string) {
	p.err(msg)
	if p.atEOF() {
		return
	}
	g := p.startNode(kind)
	p.bumpAny()
	g.Finish()
}

// startNode and checkpoint first push the next token's leading trivia into
// the enclosing node, so a new node's span starts at its first significant
// token.
func (p *Parser) startNode(kind SyntaxKind) NodeGuard {
	p.flushLeadingTrivia()
	return p.b.StartNode(kind)
}

func (p *Parser) checkpoint() Checkpoint {
	p.flushLeadingTrivia()
	return p.b.Checkpoint()
}

func (p *Parser) flushLeadingTrivia() {
	if len(p.b.stack) == 0 {
		return
	}
	p.pushTrivia(p.current().Leading)
	p.tokens[p.pos].Leading = nil
}

func (p *Parser) startNodeAt(cp Checkpoint, kind SyntaxKind) NodeGuard {
	return p.b.StartNodeAt(cp, kind)
}

// repeatUntil calls production until the next token is closing or the
// stream is exhausted. A production is expected to consume at least one
// token on every call it makes (every grammar production in this package
// does); if one somehow doesn't, repeatUntil forces one token down as an
// error so a malformed repetition can never loop forever.
func (p *Parser) repeatUntil(closing lexer.TokenKind, production func()) {
	for p.peek() != closing && !p.atEOF() {
		before := p.pos
		production()
		if p.pos == before {
			p.recoverAsError("unexpected token")
		}
	}
}

func tokenSyntaxKind(k lexer.TokenKind) SyntaxKind {
	switch k {
	case lexer.TokenError:
		return KindError
	case lexer.TokenEOF:
		return KindEOF
	case lexer.TokenName:
		return KindIdent
	case lexer.TokenInt:
		return KindIntLit
	case lexer.TokenFloat:
		return KindFloatLit
	case lexer.TokenString:
		return KindStringLit
	case lexer.TokenBang:
		return KindBang
	case lexer.TokenDollar:
		return KindDollar
	case lexer.TokenAmp:
		return KindAmp
	case lexer.TokenSpread:
		return KindSpread
	case lexer.TokenColon:
		return KindColon
	case lexer.TokenEq:
		return KindEq
	case lexer.TokenAt:
		return KindAt
	case lexer.TokenLParen:
		return KindLParen
	case lexer.TokenRParen:
		return KindRParen
	case lexer.TokenLBracket:
		return KindLBracket
	case lexer.TokenRBracket:
		return KindRBracket
	case lexer.TokenLBrace:
		return KindLBrace
	case lexer.TokenRBrace:
		return KindRBrace
	case lexer.TokenPipe:
		return KindPipe
	default:
		return KindError
	}
}

func triviaSyntaxKind(k lexer.TriviaKind) SyntaxKind {
	switch k {
	case lexer.TriviaWhitespace:
		return KindWhitespace
	case lexer.TriviaComment:
		return KindComment
	case lexer.TriviaComma:
		return KindComma
	default:
		return KindError
	}
}
