// Package lexer provides a lossless token/trivia lexer for GraphQL source
// documents (queries, schemas, and the type-system shorthand they share).
package lexer

import (
	"fmt"

	"github.com/lossless-gql/gqlcst/internal/text"
)

// TokenKind identifies the shape a token was lexed with. The lexer never
// classifies a Name token as a keyword: keywords are a parser-time decision
// (see Parser.bump), because the same identifier text means different things
// in different grammar positions.
type TokenKind uint16

// TokenKind values produced by Lex. This set mirrors the GraphQL October 2021
// lexical grammar: punctuators, the four structural token shapes (Name, Int,
// Float, StringValue), and Eof.
const (
	TokenError TokenKind = iota
	TokenEOF
	TokenName
	TokenInt
	TokenFloat
	TokenString

	TokenBang     // !
	TokenDollar   // $
	TokenAmp      // &
	TokenSpread   // ...
	TokenColon    // :
	TokenEq       // =
	TokenAt       // @
	TokenLParen   // (
	TokenRParen   // )
	TokenLBracket // [
	TokenRBracket // ]
	TokenLBrace   // {
	TokenRBrace   // }
	TokenPipe     // |
	TokenComma    // , (never produced by Lex: commas are lexed as TriviaComma)
)

func (k TokenKind) String() string {
	switch k {
	case TokenError:
		return "Error"
	case TokenEOF:
		return "EOF"
	case TokenName:
		return "Name"
	case TokenInt:
		return "Int"
	case TokenFloat:
		return "Float"
	case TokenString:
		return "StringValue"
	case TokenBang:
		return "Bang"
	case TokenDollar:
		return "Dollar"
	case TokenAmp:
		return "Amp"
	case TokenSpread:
		return "Spread"
	case TokenColon:
		return "Colon"
	case TokenEq:
		return "Eq"
	case TokenAt:
		return "At"
	case TokenLParen:
		return "LParen"
	case TokenRParen:
		return "RParen"
	case TokenLBracket:
		return "LBracket"
	case TokenRBracket:
		return "RBracket"
	case TokenLBrace:
		return "LBrace"
	case TokenRBrace:
		return "RBrace"
	case TokenPipe:
		return "Pipe"
	case TokenComma:
		return "Comma"
	default:
		return fmt.Sprintf("TokenKind(%d)", k)
	}
}

// TokenFlags carry metadata about a token's provenance or recovery state.
type TokenFlags uint8

const (
	// TokenFlagMalformed marks a token the lexer could not fully make sense
	// of (unterminated string, invalid number, unknown byte).
	TokenFlagMalformed TokenFlags = 1 << iota
)

// Has reports whether all bits in mask are set.
func (f TokenFlags) Has(mask TokenFlags) bool {
	return f&mask == mask
}

// Token is a lexed token: a kind, a source span, and any trivia (whitespace,
// comments, insignificant commas) that preceded it.
type Token struct {
	Kind    TokenKind
	Span    text.Span
	Leading []Trivia
	Flags   TokenFlags
}

// Bytes returns the token's bytes, or nil if Span is invalid for src.
func (t Token) Bytes(src []byte) []byte {
	return bytesForSpan(src, t.Span)
}

func bytesForSpan(src []byte, sp text.Span) []byte {
	if !sp.IsValid() || sp.End > text.ByteOffset(len(src)) {
		return nil
	}
	return src[sp.Start:sp.End]
}

func span(start, end int) text.Span {
	return text.Span{Start: text.ByteOffset(start), End: text.ByteOffset(end)}
}
