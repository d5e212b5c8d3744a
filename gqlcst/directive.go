package gqlcst

import "github.com/lossless-gql/gqlcst/internal/lexer"

// directives parses Directives[?Const](opt): Directive[?Const]+.
func directives(p *Parser, isConst bool) {
	if p.peek() != lexer.TokenAt {
		return
	}
	g := p.startNode(KindDirectives)
	defer g.Finish()

	for p.peek() == lexer.TokenAt {
		directive(p, isConst)
	}
}

// directive parses Directive[?Const]: '@' Name Arguments[?Const](opt).
func directive(p *Parser, isConst bool) {
	g := p.startNode(KindDirective)
	defer g.Finish()

	p.bump(KindAt)
	name(p)
	arguments(p, isConst)
}

// directiveDefinition parses DirectiveDefinition:
//
//	Description(opt) directive @ Name ArgumentsDefinition(opt) repeatable(opt) on DirectiveLocations
func directiveDefinition(p *Parser) {
	g := p.startNode(KindDirectiveDefinition)
	defer g.Finish()

	if atDescription(p) {
		description(p)
	}
	p.bump(KindDirectiveKW)
	if p.peek() == lexer.TokenAt {
		p.bump(KindAt)
	} else {
		p.err("expected @ symbol")
	}
	name(p)

	argumentsDefinition(p)

	if p.peekKeyword("repeatable") {
		p.bump(KindRepeatableKW)
	}

	if p.peekKeyword("on") {
		p.bump(KindOnKW)
	} else {
		p.err("expected Directive Locations")
	}

	if p.peek() == lexer.TokenName || p.peek() == lexer.TokenPipe {
		dg := p.startNode(KindDirectiveLocations)
		directiveLocations(p, false)
		dg.Finish()
	} else {
		p.err("expected valid Directive Location")
	}
}

// directiveLocations parses DirectiveLocations:
//
//	DirectiveLocations | DirectiveLocation
//	|(opt) DirectiveLocation
//
// Every distinct location name maps to its own SyntaxKind; unlike some
// hand-written GraphQL parsers this never conflates one location's keyword
// with another's.
func directiveLocations(p *Parser, matchedOne bool) {
	if p.peek() == lexer.TokenPipe {
		p.bump(KindPipe)
		directiveLocations(p, matchedOne)
		return
	}

	if p.peek() == lexer.TokenName {
		loc, _ := p.peekData()
		kind, ok := directiveLocationKind(loc)
		if !ok {
			if !matchedOne {
				p.err("expected valid Directive Location")
			}
			return
		}

		lg := p.startNode(KindDirectiveLocation)
		p.bump(kind)
		lg.Finish()

		if p.peek() == lexer.TokenName || p.peek() == lexer.TokenPipe {
			directiveLocations(p, true)
		}
		return
	}

	if !matchedOne {
		p.err("expected Directive Locations")
	}
}

func directiveLocationKind(loc string) (SyntaxKind, bool) {
	switch loc {
	case "QUERY":
		return KindLocQueryKW, true
	case "MUTATION":
		return KindLocMutationKW, true
	case "SUBSCRIPTION":
		return KindLocSubscriptionKW, true
	case "FIELD":
		return KindLocFieldKW, true
	case "FRAGMENT_DEFINITION":
		return KindLocFragmentDefinitionKW, true
	case "FRAGMENT_SPREAD":
		return KindLocFragmentSpreadKW, true
	case "INLINE_FRAGMENT":
		return KindLocInlineFragmentKW, true
	case "SCHEMA":
		return KindLocSchemaKW, true
	case "SCALAR":
		return KindLocScalarKW, true
	case "OBJECT":
		return KindLocObjectKW, true
	case "FIELD_DEFINITION":
		return KindLocFieldDefinitionKW, true
	case "ARGUMENT_DEFINITION":
		return KindLocArgumentDefinitionKW, true
	case "INTERFACE":
		return KindLocInterfaceKW, true
	case "UNION":
		return KindLocUnionKW, true
	case "ENUM":
		return KindLocEnumKW, true
	case "ENUM_VALUE":
		return KindLocEnumValueKW, true
	case "INPUT_OBJECT":
		return KindLocInputObjectKW, true
	case "INPUT_FIELD_DEFINITION":
		return KindLocInputFieldDefinitionKW, true
	default:
		return KindError, false
	}
}
