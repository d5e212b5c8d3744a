package gqlcst

import "github.com/lossless-gql/gqlcst/internal/lexer"

// document parses Document: Definition+. Any trivia trailing the last
// Definition (a final comment or blank line) is attached directly as a
// DOCUMENT child, same as trivia anywhere else, but the Eof token itself is
// never materialized in the tree: it carries no text, and a DOCUMENT built
// from empty or whitespace-only input must have no children, or only
// trivia children, per the boundary behaviors this parser guarantees.
func document(p *Parser) {
	g := p.startNode(KindDocument)
	defer g.Finish()

	p.repeatUntil(lexer.TokenEOF, func() { definition(p) })
	p.pushTrivia(p.current().Leading)
}

// definition dispatches a single top-level Definition. Type-system
// definitions may be preceded by a Description, which this needs one extra
// token of lookahead to see past.
func definition(p *Parser) {
	kw, hasDesc := "", false
	if atDescription(p) {
		hasDesc = true
		kw, _ = p.peekDataAt(1)
	} else {
		kw, _ = p.peekData()
	}

	switch {
	case !hasDesc && p.peek() == lexer.TokenLBrace:
		operationDefinition(p)
	case !hasDesc && (kw == "query" || kw == "mutation" || kw == "subscription"):
		operationDefinition(p)
	case !hasDesc && kw == "fragment":
		fragmentDefinition(p)
	case kw == "schema":
		schemaDefinition(p)
	case kw == "scalar":
		scalarTypeDefinition(p)
	case kw == "type":
		objectTypeDefinition(p)
	case kw == "interface":
		interfaceTypeDefinition(p)
	case kw == "union":
		unionTypeDefinition(p)
	case kw == "enum":
		enumTypeDefinition(p)
	case kw == "input":
		inputObjectTypeDefinition(p)
	case kw == "directive":
		directiveDefinition(p)
	case !hasDesc && kw == "extend":
		typeExtension(p)
	default:
		p.recoverAsNode(KindDefinition, "expected a Definition")
	}
}

// operationDefinition parses OperationDefinition:
//
//	OperationType Name(opt) VariableDefinitions(opt) Directives(opt) SelectionSet
//	SelectionSet
func operationDefinition(p *Parser) {
	g := p.startNode(KindOperationDefinition)
	defer g.Finish()

	if p.peek() == lexer.TokenLBrace {
		selectionSet(p)
		return
	}

	switch kw, _ := p.peekData(); kw {
	case "query":
		p.bump(KindQueryKW)
	case "mutation":
		p.bump(KindMutationKW)
	case "subscription":
		p.bump(KindSubscriptionKW)
	default:
		p.err("expected an Operation Type")
	}

	if p.peek() == lexer.TokenName {
		name(p)
	}
	if p.peek() == lexer.TokenLParen {
		variableDefinitions(p)
	}
	directives(p, false)

	if p.peek() == lexer.TokenLBrace {
		selectionSet(p)
	} else {
		p.err("expected a Selection Set")
	}
}

// variableDefinitions parses VariableDefinitions(opt): '(' VariableDefinition+ ')'.
func variableDefinitions(p *Parser) {
	g := p.startNode(KindVariableDefinitions)
	defer g.Finish()

	p.bump(KindLParen)
	p.repeatUntil(lexer.TokenRParen, func() { variableDefinition(p) })
	p.expect(lexer.TokenRParen, KindRParen)
}

// variableDefinition parses Variable ':' Type DefaultValue(opt) Directives[Const](opt).
func variableDefinition(p *Parser) {
	g := p.startNode(KindVariableDefinition)
	defer g.Finish()

	variable(p)
	p.expect(lexer.TokenColon, KindColon)
	typeRef(p)
	if p.peek() == lexer.TokenEq {
		defaultValue(p)
	}
	directives(p, true)
}

// selectionSet parses SelectionSet: '{' Selection+ '}'.
func selectionSet(p *Parser) {
	g := p.startNode(KindSelectionSet)
	defer g.Finish()

	p.bump(KindLBrace)
	p.repeatUntil(lexer.TokenRBrace, func() { selection(p) })
	p.expect(lexer.TokenRBrace, KindRBrace)
}

// selection dispatches a Selection: Field | FragmentSpread | InlineFragment.
func selection(p *Parser) {
	switch p.peek() {
	case lexer.TokenSpread:
		fragmentSelection(p)
	case lexer.TokenName:
		field(p)
	default:
		p.recoverAsError("expected a Selection")
	}
}

// field parses Field: Alias(opt) Name Arguments(opt) Directives(opt) SelectionSet(opt),
// where Alias is Name ':'. Telling alias and plain name apart needs a
// second token of lookahead (is the token after this Name a colon?).
func field(p *Parser) {
	g := p.startNode(KindField)
	defer g.Finish()

	if p.peek() == lexer.TokenName && p.peekAt(1) == lexer.TokenColon {
		name(p)
		p.expect(lexer.TokenColon, KindColon)
	}
	name(p)

	arguments(p, false)
	directives(p, false)
	if p.peek() == lexer.TokenLBrace {
		selectionSet(p)
	}
}

// fragmentSelection parses the part of a Selection starting with '...':
// either a FragmentSpread or an InlineFragment. The '...' token is pushed
// first and only wrapped into the right node once the token after it
// resolves the ambiguity — FragmentSpread if it is a Name other than "on",
// InlineFragment otherwise.
func fragmentSelection(p *Parser) {
	cp := p.checkpoint()
	p.bump(KindSpread)

	if p.peek() == lexer.TokenName && !p.peekKeyword("on") {
		g := p.startNodeAt(cp, KindFragmentSpread)
		name(p)
		directives(p, false)
		g.Finish()
		return
	}

	g := p.startNodeAt(cp, KindInlineFragment)
	defer g.Finish()
	if p.peekKeyword("on") {
		typeCondition(p)
	}
	directives(p, false)
	if p.peek() == lexer.TokenLBrace {
		selectionSet(p)
	} else {
		p.err("expected a Selection Set")
	}
}

// typeCondition parses TypeCondition: on NamedType.
func typeCondition(p *Parser) {
	g := p.startNode(KindTypeCondition)
	defer g.Finish()

	p.bump(KindOnKW)
	namedType(p)
}

// fragmentDefinition parses FragmentDefinition:
//
//	fragment FragmentName TypeCondition Directives(opt) SelectionSet
func fragmentDefinition(p *Parser) {
	g := p.startNode(KindFragmentDefinition)
	defer g.Finish()

	p.bump(KindFragmentKW)
	name(p)
	if p.peekKeyword("on") {
		typeCondition(p)
	} else {
		p.err("expected Type Condition")
	}
	directives(p, false)
	if p.peek() == lexer.TokenLBrace {
		selectionSet(p)
	} else {
		p.err("expected a Selection Set")
	}
}
