package gqlcst

import "github.com/lossless-gql/gqlcst/internal/lexer"

// name parses a NAME node wrapping a raw identifier token.
//
//	Name : /[_A-Za-z][_0-9A-Za-z]*/
func name(p *Parser) {
	g := p.startNode(KindName)
	defer g.Finish()

	if p.peek() != lexer.TokenName {
		p.err("expected Name")
		return
	}
	p.bump(KindIdent)
}

// description parses an optional Description(opt) preceding a type-system
// definition: a bare StringValue, wrapped so it reads unambiguously as a
// leading doc comment rather than a stray value.
//
//	Description : StringValue
func description(p *Parser) {
	g := p.startNode(KindDescription)
	defer g.Finish()
	p.bump(KindStringLit)
}

func atDescription(p *Parser) bool {
	return p.peek() == lexer.TokenString
}
