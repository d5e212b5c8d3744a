package gqlcst

import "github.com/lossless-gql/gqlcst/internal/lexer"

// value parses a Value, or a ConstValue when isConst is true (ConstValue
// forbids Variable; default values and directive arguments inside
// type-system definitions use it).
//
//	Value[Const] :
//	    Variable [if not Const]
//	    IntValue
//	    FloatValue
//	    StringValue
//	    BooleanValue
//	    NullValue
//	    EnumValue
//	    ListValue[?Const]
//	    ObjectValue[?Const]
func value(p *Parser, isConst bool) {
	switch p.peek() {
	case lexer.TokenDollar:
		if isConst {
			p.recoverAsError("expected a constant value, found a variable")
			return
		}
		variable(p)
	case lexer.TokenInt:
		p.bump(KindIntLit)
	case lexer.TokenFloat:
		p.bump(KindFloatLit)
	case lexer.TokenString:
		p.bump(KindStringLit)
	case lexer.TokenLBracket:
		listValue(p, isConst)
	case lexer.TokenLBrace:
		objectValue(p, isConst)
	case lexer.TokenName:
		switch data, _ := p.peekData(); data {
		case "true":
			p.bump(KindTrueKW)
		case "false":
			p.bump(KindFalseKW)
		case "null":
			p.bump(KindNullKW)
		default:
			name(p)
		}
	default:
		p.recoverAsError("expected a Value")
	}
}

// variable parses a Variable: '$' Name.
func variable(p *Parser) {
	g := p.startNode(KindVariable)
	defer g.Finish()
	if p.peek() != lexer.TokenDollar {
		p.err("expected a Variable")
		return
	}
	p.bump(KindDollar)
	name(p)
}

// listValue parses '[' Value[?Const]* ']'.
func listValue(p *Parser, isConst bool) {
	g := p.startNode(KindListValue)
	defer g.Finish()

	p.bump(KindLBracket)
	p.repeatUntil(lexer.TokenRBracket, func() { value(p, isConst) })
	p.expect(lexer.TokenRBracket, KindRBracket)
}

// objectValue parses '{' ObjectField[?Const]* '}'.
func objectValue(p *Parser, isConst bool) {
	g := p.startNode(KindObjectValue)
	defer g.Finish()

	p.bump(KindLBrace)
	p.repeatUntil(lexer.TokenRBrace, func() { objectField(p, isConst) })
	p.expect(lexer.TokenRBrace, KindRBrace)
}

// objectField parses Name ':' Value[?Const].
func objectField(p *Parser, isConst bool) {
	g := p.startNode(KindObjectField)
	defer g.Finish()

	name(p)
	p.expect(lexer.TokenColon, KindColon)
	value(p, isConst)
}

// defaultValue parses DefaultValue(opt): '=' Value[Const].
func defaultValue(p *Parser) {
	g := p.startNode(KindDefaultValue)
	defer g.Finish()
	p.bump(KindEq)
	value(p, true)
}
