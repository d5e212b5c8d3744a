package lexer

import (
	"unicode/utf8"

	"github.com/lossless-gql/gqlcst/internal/text"
)

// DiagnosticCode identifies lexer diagnostic categories.
type DiagnosticCode string

// DiagnosticCode values emitted by the lexer.
const (
	DiagnosticUnexpectedCharacter DiagnosticCode = "LEX_UNEXPECTED_CHARACTER"
	DiagnosticUnterminatedString  DiagnosticCode = "LEX_UNTERMINATED_STRING"
	DiagnosticInvalidEscape       DiagnosticCode = "LEX_INVALID_ESCAPE"
	DiagnosticInvalidNumber       DiagnosticCode = "LEX_INVALID_NUMBER"
	DiagnosticInvalidUTF8         DiagnosticCode = "LEX_INVALID_UTF8"
)

// Diagnostic is a lexer-level issue with a source location.
type Diagnostic struct {
	Code    DiagnosticCode
	Message string
	Span    text.Span
}

// Result is the output of lexing source bytes: a token stream ending in a
// single Eof token, plus any diagnostics discovered along the way.
type Result struct {
	Tokens      []Token
	Diagnostics []Diagnostic
}

// Lex tokenizes src into a lossless token stream. Tokenization never stops
// early: an unrecognized byte becomes a one-unit Error token and scanning
// continues from the next position.
func Lex(src []byte) Result {
	s := scanner{src: src}
	s.run()
	return Result{Tokens: s.tokens, Diagnostics: s.diagnostics}
}

type scanner struct {
	src         []byte
	i           int
	tokens      []Token
	diagnostics []Diagnostic
}

func (s *scanner) run() {
	for {
		leading := s.scanLeadingTrivia()

		if s.eof() {
			s.tokens = append(s.tokens, Token{
				Kind:    TokenEOF,
				Span:    span(len(s.src), len(s.src)),
				Leading: leading,
			})
			return
		}

		tok := s.scanToken()
		tok.Leading = leading
		s.tokens = append(s.tokens, tok)
	}
}

// scanLeadingTrivia consumes whitespace, '#' comments, and insignificant
// commas ahead of the next token.
func (s *scanner) scanLeadingTrivia() []Trivia {
	var out []Trivia

	for !s.eof() {
		start := s.i
		switch b := s.src[s.i]; {
		case isWhitespaceByte(b):
			for !s.eof() && isWhitespaceByte(s.src[s.i]) {
				s.i++
			}
			out = append(out, Trivia{Kind: TriviaWhitespace, Span: span(start, s.i)})
		case b == ',':
			s.i++
			out = append(out, Trivia{Kind: TriviaComma, Span: span(start, s.i)})
		case b == '#':
			for !s.eof() && s.src[s.i] != '\n' && s.src[s.i] != '\r' {
				s.i++
			}
			out = append(out, Trivia{Kind: TriviaComment, Span: span(start, s.i)})
		case b == 0xEF && s.peekByte(1) == 0xBB && s.peekByte(2) == 0xBF:
			// UTF-8 encoded byte order mark (U+FEFF), treated as whitespace.
			s.i += 3
			out = append(out, Trivia{Kind: TriviaWhitespace, Span: span(start, s.i)})
		default:
			return out
		}
	}

	return out
}

func (s *scanner) scanToken() Token {
	start := s.i
	b := s.src[s.i]

	switch {
	case isNameStart(b):
		s.i++
		for !s.eof() && isNamePart(s.src[s.i]) {
			s.i++
		}
		return Token{Kind: TokenName, Span: span(start, s.i)}
	case isDigit(b) || b == '-':
		return s.scanNumber()
	case b == '"':
		return s.scanString()
	case b == '.':
		if s.peekByte(1) == '.' && s.peekByte(2) == '.' {
			s.i += 3
			return Token{Kind: TokenSpread, Span: span(start, s.i)}
		}
		s.i++
		return *s.makeErrorToken(start, s.i, DiagnosticUnexpectedCharacter, "'.' must begin '...'")
	case b >= utf8.RuneSelf:
		r, size := utf8.DecodeRune(s.src[s.i:])
		if r == utf8.RuneError && size == 1 {
			s.i++
			return *s.makeErrorToken(start, s.i, DiagnosticInvalidUTF8, "invalid UTF-8 byte")
		}
		s.i += size
		return *s.makeErrorToken(start, s.i, DiagnosticUnexpectedCharacter, "Unexpected character")
	default:
		s.i++
		switch b {
		case '!':
			return Token{Kind: TokenBang, Span: span(start, s.i)}
		case '$':
			return Token{Kind: TokenDollar, Span: span(start, s.i)}
		case '&':
			return Token{Kind: TokenAmp, Span: span(start, s.i)}
		case ':':
			return Token{Kind: TokenColon, Span: span(start, s.i)}
		case '=':
			return Token{Kind: TokenEq, Span: span(start, s.i)}
		case '@':
			return Token{Kind: TokenAt, Span: span(start, s.i)}
		case '(':
			return Token{Kind: TokenLParen, Span: span(start, s.i)}
		case ')':
			return Token{Kind: TokenRParen, Span: span(start, s.i)}
		case '[':
			return Token{Kind: TokenLBracket, Span: span(start, s.i)}
		case ']':
			return Token{Kind: TokenRBracket, Span: span(start, s.i)}
		case '{':
			return Token{Kind: TokenLBrace, Span: span(start, s.i)}
		case '}':
			return Token{Kind: TokenRBrace, Span: span(start, s.i)}
		case '|':
			return Token{Kind: TokenPipe, Span: span(start, s.i)}
		default:
			return *s.makeErrorToken(start, s.i, DiagnosticUnexpectedCharacter, "Unexpected character")
		}
	}
}

// scanNumber lexes IntValue/FloatValue per the GraphQL grammar: an optional
// leading '-', an IntegerPart with no leading zero (unless the value is
// exactly 0), an optional FractionalPart, and an optional ExponentPart.
func (s *scanner) scanNumber() Token {
	start := s.i
	malformed := false

	if !s.eof() && s.src[s.i] == '-' {
		s.i++
	}

	intDigitsStart := s.i
	if s.eof() || !isDigit(s.src[s.i]) {
		malformed = true
	} else if s.src[s.i] == '0' {
		s.i++
		if !s.eof() && isDigit(s.src[s.i]) {
			// Leading zero followed by more digits: "01" is not a valid IntValue.
			malformed = true
			for !s.eof() && isDigit(s.src[s.i]) {
				s.i++
			}
		}
	} else {
		for !s.eof() && isDigit(s.src[s.i]) {
			s.i++
		}
	}
	_ = intDigitsStart

	isFloat := false

	if !s.eof() && s.src[s.i] == '.' {
		isFloat = true
		s.i++
		if s.eof() || !isDigit(s.src[s.i]) {
			malformed = true
		}
		for !s.eof() && isDigit(s.src[s.i]) {
			s.i++
		}
	}

	if !s.eof() && (s.src[s.i] == 'e' || s.src[s.i] == 'E') {
		isFloat = true
		s.i++
		if !s.eof() && (s.src[s.i] == '+' || s.src[s.i] == '-') {
			s.i++
		}
		if s.eof() || !isDigit(s.src[s.i]) {
			malformed = true
		}
		for !s.eof() && isDigit(s.src[s.i]) {
			s.i++
		}
	}

	// A number immediately followed by a NameStart byte (e.g. "1x") or a
	// second '.' is also malformed: numbers and names must not run together.
	if !s.eof() && (isNameStart(s.src[s.i]) || s.src[s.i] == '.') {
		malformed = true
		for !s.eof() && (isNamePart(s.src[s.i]) || s.src[s.i] == '.') {
			s.i++
		}
	}

	kind := TokenInt
	if isFloat {
		kind = TokenFloat
	}

	if malformed {
		s.diagnostics = append(s.diagnostics, Diagnostic{
			Code:    DiagnosticInvalidNumber,
			Message: "invalid number literal",
			Span:    span(start, s.i),
		})
		return Token{Kind: TokenError, Span: span(start, s.i), Flags: TokenFlagMalformed}
	}

	return Token{Kind: kind, Span: span(start, s.i)}
}

// scanString lexes a standard StringValue ("...") or a block StringValue
// ("""..."""), including the surrounding delimiters in the token text. The
// token text is the raw source span; stripping block-string indentation is a
// semantic concern performed by callers, not by the lexer.
func (s *scanner) scanString() Token {
	start := s.i
	if s.peekByte(1) == '"' && s.peekByte(2) == '"' {
		return s.scanBlockString(start)
	}

	s.i++ // opening '"'
	for {
		if s.eof() {
			return *s.makeErrorToken(start, s.i, DiagnosticUnterminatedString, "unterminated string literal")
		}
		switch s.src[s.i] {
		case '"':
			s.i++
			return Token{Kind: TokenString, Span: span(start, s.i)}
		case '\n', '\r':
			return *s.makeErrorToken(start, s.i, DiagnosticUnterminatedString, "unterminated string literal")
		case '\\':
			s.i++
			if s.eof() || s.src[s.i] == '\n' || s.src[s.i] == '\r' {
				return *s.makeErrorToken(start, s.i, DiagnosticUnterminatedString, "unterminated string literal")
			}
			if !isValidEscape(s.src[s.i]) {
				s.diagnostics = append(s.diagnostics, Diagnostic{
					Code:    DiagnosticInvalidEscape,
					Message: "invalid escape sequence",
					Span:    span(s.i-1, s.i+1),
				})
			}
			if s.src[s.i] == 'u' {
				s.i++
				s.scanUnicodeEscapeDigits(start)
				continue
			}
			s.i++
		default:
			s.i++
		}
	}
}

func (s *scanner) scanUnicodeEscapeDigits(stringStart int) {
	for k := 0; k < 4; k++ {
		if s.eof() || !isHexDigit(s.src[s.i]) {
			s.diagnostics = append(s.diagnostics, Diagnostic{
				Code:    DiagnosticInvalidEscape,
				Message: "invalid unicode escape, expected 4 hex digits",
				Span:    span(s.i, s.i),
			})
			return
		}
		s.i++
	}
}

func (s *scanner) scanBlockString(start int) Token {
	s.i += 3 // opening '"""'
	for {
		if s.eof() {
			return *s.makeErrorToken(start, s.i, DiagnosticUnterminatedString, "unterminated block string literal")
		}
		if s.src[s.i] == '\\' && s.peekByte(1) == '"' && s.peekByte(2) == '"' && s.peekByte(3) == '"' {
			s.i += 4 // escaped \"""
			continue
		}
		if s.src[s.i] == '"' && s.peekByte(1) == '"' && s.peekByte(2) == '"' {
			s.i += 3
			return Token{Kind: TokenString, Span: span(start, s.i)}
		}
		s.i++
	}
}

func (s *scanner) makeErrorToken(start, end int, code DiagnosticCode, msg string) *Token {
	sp := span(start, end)
	s.diagnostics = append(s.diagnostics, Diagnostic{Code: code, Message: msg, Span: sp})
	return &Token{Kind: TokenError, Span: sp, Flags: TokenFlagMalformed}
}

func (s *scanner) eof() bool {
	return s.i >= len(s.src)
}

func (s *scanner) peekByte(delta int) byte {
	j := s.i + delta
	if j < 0 || j >= len(s.src) {
		return 0
	}
	return s.src[j]
}

func isWhitespaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isNameStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isNamePart(b byte) bool {
	return isNameStart(b) || isDigit(b)
}

func isValidEscape(b byte) bool {
	switch b {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't', 'u':
		return true
	default:
		return false
	}
}
