package lexer

import (
	"fmt"

	"github.com/lossless-gql/gqlcst/internal/text"
)

// TriviaKind identifies a non-significant source segment carried as leading
// trivia on the following token. Commas are grammatically insignificant in
// GraphQL (see the October 2021 spec's "Insignificant Commas" section) and
// are modeled here rather than as a lookahead-affecting token, so a stray or
// missing comma never changes a parsing decision.
type TriviaKind uint8

const (
	TriviaWhitespace TriviaKind = iota
	TriviaComment
	TriviaComma
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaWhitespace:
		return "Whitespace"
	case TriviaComment:
		return "Comment"
	case TriviaComma:
		return "Comma"
	default:
		return fmt.Sprintf("TriviaKind(%d)", k)
	}
}

// Trivia is a non-token source span attached to the token that follows it.
type Trivia struct {
	Kind TriviaKind
	Span text.Span
}

// Bytes returns the trivia's bytes, or nil if Span is invalid for src.
func (t Trivia) Bytes(src []byte) []byte {
	return bytesForSpan(src, t.Span)
}
