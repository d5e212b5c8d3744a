package gqlcst

import "github.com/lossless-gql/gqlcst/internal/lexer"

// typeRef parses a Type, always wrapped in a TYPE node around exactly one
// of NAMED_TYPE, LIST_TYPE, or NON_NULL_TYPE.
//
//	Type :
//	    NamedType
//	    ListType
//	    NonNullType
//	NonNullType :
//	    NamedType !
//	    ListType !
func typeRef(p *Parser) {
	g := p.startNode(KindType)
	defer g.Finish()

	cp := p.checkpoint()
	if p.peek() == lexer.TokenLBracket {
		listType(p)
	} else {
		namedType(p)
	}

	if p.peek() == lexer.TokenBang {
		wg := p.startNodeAt(cp, KindNonNullType)
		p.bump(KindBang)
		wg.Finish()
	}
}

// namedType parses NamedType: Name.
func namedType(p *Parser) {
	g := p.startNode(KindNamedType)
	defer g.Finish()
	if p.peek() != lexer.TokenName {
		p.err("expected a Name")
		return
	}
	name(p)
}

// listType parses ListType: '[' Type ']'.
func listType(p *Parser) {
	g := p.startNode(KindListType)
	defer g.Finish()
	p.bump(KindLBracket)
	typeRef(p)
	p.expect(lexer.TokenRBracket, KindRBracket)
}
