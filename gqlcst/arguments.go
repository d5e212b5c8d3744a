package gqlcst

import "github.com/lossless-gql/gqlcst/internal/lexer"

// arguments parses a call-site Arguments(opt): '(' Argument+ ')', as used on
// a Field or Directive invocation. isConst forbids Variable values, which
// applies inside type-system directive arguments.
func arguments(p *Parser, isConst bool) {
	if p.peek() != lexer.TokenLParen {
		return
	}
	g := p.startNode(KindArguments)
	defer g.Finish()

	p.bump(KindLParen)
	p.repeatUntil(lexer.TokenRParen, func() { argument(p, isConst) })
	p.expect(lexer.TokenRParen, KindRParen)
}

// argument parses Argument: Name ':' Value[?Const].
func argument(p *Parser, isConst bool) {
	g := p.startNode(KindArgument)
	defer g.Finish()

	name(p)
	p.expect(lexer.TokenColon, KindColon)
	value(p, isConst)
}

// argumentsDefinition parses a definition-site ArgumentsDefinition(opt):
// '(' InputValueDefinition+ ')', as used on a FieldDefinition or
// DirectiveDefinition.
func argumentsDefinition(p *Parser) {
	if p.peek() != lexer.TokenLParen {
		return
	}
	g := p.startNode(KindArgumentsDefinition)
	defer g.Finish()

	p.bump(KindLParen)
	p.repeatUntil(lexer.TokenRParen, func() { inputValueDefinition(p) })
	p.expect(lexer.TokenRParen, KindRParen)
}

// inputValueDefinition parses InputValueDefinition:
//
//	Description(opt) Name ':' Type DefaultValue(opt) Directives[Const](opt)
func inputValueDefinition(p *Parser) {
	g := p.startNode(KindInputValueDefinition)
	defer g.Finish()

	if atDescription(p) {
		description(p)
	}
	name(p)
	p.expect(lexer.TokenColon, KindColon)
	typeRef(p)
	if p.peek() == lexer.TokenEq {
		defaultValue(p)
	}
	directives(p, true)
}
