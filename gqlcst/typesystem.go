package gqlcst

import "github.com/lossless-gql/gqlcst/internal/lexer"

// typeExtension dispatches an "extend ..." Definition to the matching
// TypeSystemExtension production, using the keyword one token past "extend"
// to decide which.
func typeExtension(p *Parser) {
	kw, _ := p.peekDataAt(1)
	switch kw {
	case "schema":
		schemaExtension(p)
	case "scalar":
		scalarTypeExtension(p)
	case "type":
		objectTypeExtension(p)
	case "interface":
		interfaceTypeExtension(p)
	case "union":
		unionTypeExtension(p)
	case "enum":
		enumTypeExtension(p)
	case "input":
		inputObjectTypeExtension(p)
	default:
		p.recoverAsNode(KindDefinition, "expected a valid type system extension")
	}
}

// schemaDefinition parses SchemaDefinition:
//
//	Description(opt) schema Directives[Const](opt) '{' RootOperationTypeDefinition+ '}'
func schemaDefinition(p *Parser) {
	g := p.startNode(KindSchemaDefinition)
	defer g.Finish()

	if atDescription(p) {
		description(p)
	}
	p.bump(KindSchemaKW)
	directives(p, true)

	if p.peek() != lexer.TokenLBrace {
		p.err("expected a Schema Definition body")
		return
	}
	p.bump(KindLBrace)
	p.repeatUntil(lexer.TokenRBrace, func() { rootOperationTypeDefinition(p) })
	p.expect(lexer.TokenRBrace, KindRBrace)
}

// schemaExtension parses SchemaExtension, a "schema" Definition led by "extend".
func schemaExtension(p *Parser) {
	g := p.startNode(KindSchemaExtension)
	defer g.Finish()

	p.bump(KindExtendKW)
	p.bump(KindSchemaKW)
	directives(p, true)

	if p.peek() == lexer.TokenLBrace {
		p.bump(KindLBrace)
		p.repeatUntil(lexer.TokenRBrace, func() { rootOperationTypeDefinition(p) })
		p.expect(lexer.TokenRBrace, KindRBrace)
	}
}

// rootOperationTypeDefinition parses OperationType ':' NamedType.
func rootOperationTypeDefinition(p *Parser) {
	g := p.startNode(KindRootOperationTypeDefinition)
	defer g.Finish()

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
	p.expect(lexer.TokenColon, KindColon)
	namedType(p)
}

// scalarTypeDefinition parses Description(opt) scalar Name Directives[Const](opt).
func scalarTypeDefinition(p *Parser) {
	g := p.startNode(KindScalarTypeDefinition)
	defer g.Finish()

	if atDescription(p) {
		description(p)
	}
	p.bump(KindScalarKW)
	name(p)
	directives(p, true)
}

// scalarTypeExtension parses extend scalar Name Directives[Const].
func scalarTypeExtension(p *Parser) {
	g := p.startNode(KindScalarTypeExtension)
	defer g.Finish()

	p.bump(KindExtendKW)
	p.bump(KindScalarKW)
	name(p)
	directives(p, true)
}

// objectTypeDefinition parses ObjectTypeDefinition:
//
//	Description(opt) type Name ImplementsInterfaces(opt) Directives(opt) FieldsDefinition(opt)
func objectTypeDefinition(p *Parser) {
	g := p.startNode(KindObjectTypeDefinition)
	defer g.Finish()

	if atDescription(p) {
		description(p)
	}
	p.bump(KindTypeKW)
	name(p)
	if p.peekKeyword("implements") {
		implementsInterfaces(p)
	}
	directives(p, true)
	if p.peek() == lexer.TokenLBrace {
		fieldsDefinition(p)
	}
}

// objectTypeExtension parses extend type Name ImplementsInterfaces(opt)
// Directives(opt) FieldsDefinition(opt).
func objectTypeExtension(p *Parser) {
	g := p.startNode(KindObjectTypeExtension)
	defer g.Finish()

	p.bump(KindExtendKW)
	p.bump(KindTypeKW)
	name(p)
	if p.peekKeyword("implements") {
		implementsInterfaces(p)
	}
	directives(p, true)
	if p.peek() == lexer.TokenLBrace {
		fieldsDefinition(p)
	}
}

// implementsInterfaces parses ImplementsInterfaces:
//
//	implements &(opt) NamedType
//	ImplementsInterfaces & NamedType
func implementsInterfaces(p *Parser) {
	g := p.startNode(KindImplementsInterfaces)
	defer g.Finish()

	p.bump(KindImplementsKW)
	if p.peek() == lexer.TokenAmp {
		p.bump(KindAmp)
	}
	namedType(p)
	for p.peek() == lexer.TokenAmp {
		p.bump(KindAmp)
		namedType(p)
	}
}

// fieldsDefinition parses FieldsDefinition: '{' FieldDefinition+ '}'.
func fieldsDefinition(p *Parser) {
	g := p.startNode(KindFieldsDefinition)
	defer g.Finish()

	p.bump(KindLBrace)
	p.repeatUntil(lexer.TokenRBrace, func() { fieldDefinition(p) })
	p.expect(lexer.TokenRBrace, KindRBrace)
}

// fieldDefinition parses FieldDefinition:
//
//	Description(opt) Name ArgumentsDefinition(opt) ':' Type Directives[Const](opt)
func fieldDefinition(p *Parser) {
	g := p.startNode(KindFieldDefinition)
	defer g.Finish()

	if atDescription(p) {
		description(p)
	}
	name(p)
	argumentsDefinition(p)
	p.expect(lexer.TokenColon, KindColon)
	typeRef(p)
	directives(p, true)
}

// interfaceTypeDefinition parses Description(opt) interface Name
// ImplementsInterfaces(opt) Directives(opt) FieldsDefinition(opt).
func interfaceTypeDefinition(p *Parser) {
	g := p.startNode(KindInterfaceTypeDefinition)
	defer g.Finish()

	if atDescription(p) {
		description(p)
	}
	p.bump(KindInterfaceKW)
	name(p)
	if p.peekKeyword("implements") {
		implementsInterfaces(p)
	}
	directives(p, true)
	if p.peek() == lexer.TokenLBrace {
		fieldsDefinition(p)
	}
}

// interfaceTypeExtension parses extend interface Name ImplementsInterfaces(opt)
// Directives(opt) FieldsDefinition(opt).
func interfaceTypeExtension(p *Parser) {
	g := p.startNode(KindInterfaceTypeExtension)
	defer g.Finish()

	p.bump(KindExtendKW)
	p.bump(KindInterfaceKW)
	name(p)
	if p.peekKeyword("implements") {
		implementsInterfaces(p)
	}
	directives(p, true)
	if p.peek() == lexer.TokenLBrace {
		fieldsDefinition(p)
	}
}

// unionTypeDefinition parses Description(opt) union Name Directives(opt)
// UnionMemberTypes(opt).
func unionTypeDefinition(p *Parser) {
	g := p.startNode(KindUnionTypeDefinition)
	defer g.Finish()

	if atDescription(p) {
		description(p)
	}
	p.bump(KindUnionKW)
	name(p)
	directives(p, true)
	if p.peek() == lexer.TokenEq {
		unionMemberTypes(p)
	}
}

// unionMemberTypes parses UnionMemberTypes: '=' |(opt) NamedType ('|' NamedType)*.
func unionMemberTypes(p *Parser) {
	g := p.startNode(KindUnionMemberTypes)
	defer g.Finish()

	p.bump(KindEq)
	if p.peek() == lexer.TokenPipe {
		p.bump(KindPipe)
	}
	namedType(p)
	for p.peek() == lexer.TokenPipe {
		p.bump(KindPipe)
		namedType(p)
	}
}

// unionTypeExtension parses extend union Name Directives(opt) UnionMemberTypes(opt).
func unionTypeExtension(p *Parser) {
	g := p.startNode(KindUnionTypeExtension)
	defer g.Finish()

	p.bump(KindExtendKW)
	p.bump(KindUnionKW)
	name(p)
	directives(p, true)
	if p.peek() == lexer.TokenEq {
		unionMemberTypes(p)
	}
}

// enumTypeDefinition parses Description(opt) enum Name Directives(opt)
// EnumValuesDefinition(opt).
func enumTypeDefinition(p *Parser) {
	g := p.startNode(KindEnumTypeDefinition)
	defer g.Finish()

	if atDescription(p) {
		description(p)
	}
	p.bump(KindEnumKW)
	name(p)
	directives(p, true)
	if p.peek() == lexer.TokenLBrace {
		enumValuesDefinition(p)
	}
}

// enumValuesDefinition parses EnumValuesDefinition: '{' EnumValueDefinition+ '}'.
func enumValuesDefinition(p *Parser) {
	g := p.startNode(KindEnumValuesDefinition)
	defer g.Finish()

	p.bump(KindLBrace)
	p.repeatUntil(lexer.TokenRBrace, func() { enumValueDefinition(p) })
	p.expect(lexer.TokenRBrace, KindRBrace)
}

// enumValueDefinition parses Description(opt) EnumValue Directives(opt).
// EnumValue is a Name that is not true, false, or null; that restriction is
// left to a later validation pass, not the syntax tree.
func enumValueDefinition(p *Parser) {
	g := p.startNode(KindEnumValueDefinition)
	defer g.Finish()

	if atDescription(p) {
		description(p)
	}
	name(p)
	directives(p, true)
}

// enumTypeExtension parses extend enum Name Directives(opt) EnumValuesDefinition(opt).
func enumTypeExtension(p *Parser) {
	g := p.startNode(KindEnumTypeExtension)
	defer g.Finish()

	p.bump(KindExtendKW)
	p.bump(KindEnumKW)
	name(p)
	directives(p, true)
	if p.peek() == lexer.TokenLBrace {
		enumValuesDefinition(p)
	}
}

// inputObjectTypeDefinition parses Description(opt) input Name Directives(opt)
// InputFieldsDefinition(opt).
func inputObjectTypeDefinition(p *Parser) {
	g := p.startNode(KindInputObjectTypeDefinition)
	defer g.Finish()

	if atDescription(p) {
		description(p)
	}
	p.bump(KindInputKW)
	name(p)
	directives(p, true)
	if p.peek() == lexer.TokenLBrace {
		inputFieldsDefinition(p)
	}
}

// inputFieldsDefinition parses InputFieldsDefinition: '{' InputValueDefinition+ '}'.
func inputFieldsDefinition(p *Parser) {
	g := p.startNode(KindInputFieldsDefinition)
	defer g.Finish()

	p.bump(KindLBrace)
	p.repeatUntil(lexer.TokenRBrace, func() { inputValueDefinition(p) })
	p.expect(lexer.TokenRBrace, KindRBrace)
}

// inputObjectTypeExtension parses extend input Name Directives(opt)
// InputFieldsDefinition(opt).
func inputObjectTypeExtension(p *Parser) {
	g := p.startNode(KindInputObjectTypeExtension)
	defer g.Finish()

	p.bump(KindExtendKW)
	p.bump(KindInputKW)
	name(p)
	directives(p, true)
	if p.peek() == lexer.TokenLBrace {
		inputFieldsDefinition(p)
	}
}
