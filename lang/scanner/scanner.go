// Package scanner implements the scanner that tokenizes Lox source text for
// the parser to consume. It is a hand-written state machine over a single
// character of lookahead, with one extra character of peek for numeric
// fractional parts.
package scanner

import (
	"fmt"
	"unicode/utf8"

	"github.com/stevemarin/golox/lang/token"
)

// ScanChunk is a helper function that tokenizes src and returns the token
// stream, ending with an EOF token. Scanning continues past errors so that as
// many errors as possible are reported in one pass; the returned error, if
// non-nil, is an ErrorList.
func ScanChunk(src []byte) ([]token.Token, error) {
	var s Scanner
	var el ErrorList
	s.Init(src, el.Add)

	var toks []token.Token
	for {
		tok := s.Scan()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	el.Sort()
	return toks, el.Err()
}

// Scanner tokenizes Lox source text.
type Scanner struct {
	// immutable state after Init
	src []byte
	err func(line int, msg string)

	// mutable scanning state
	start int // offset of the token being scanned
	cur   int // reading offset
	line  int // 1-based line of the character at cur
}

// Init initializes the scanner to tokenize a new source buffer. Errors are
// reported through errHandler, which may be nil.
func (s *Scanner) Init(src []byte, errHandler func(line int, msg string)) {
	s.src = src
	s.err = errHandler
	s.start = 0
	s.cur = 0
	s.line = 1
}

func (s *Scanner) atEnd() bool { return s.cur >= len(s.src) }

func (s *Scanner) advance() byte {
	b := s.src[s.cur]
	s.cur++
	return b
}

// peek returns the current character without consuming it, or 0 at EOF.
func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.cur]
}

// peekNext returns the character after the current one, or 0 past EOF.
func (s *Scanner) peekNext() byte {
	if s.cur+1 >= len(s.src) {
		return 0
	}
	return s.src[s.cur+1]
}

// advance only if the current character matches expected.
func (s *Scanner) advanceIf(expected byte) bool {
	if s.atEnd() || s.src[s.cur] != expected {
		return false
	}
	s.cur++
	return true
}

func (s *Scanner) error(line int, msg string) {
	if s.err != nil {
		s.err(line, msg)
	}
}

func (s *Scanner) errorf(line int, format string, args ...any) {
	s.error(line, fmt.Sprintf(format, args...))
}

func (s *Scanner) make(typ token.Type) token.Token {
	return token.Token{
		Type:   typ,
		Lexeme: string(s.src[s.start:s.cur]),
		Line:   s.line,
	}
}

// Scan returns the next token in the source buffer. At the end of the buffer
// it returns an EOF token on the final line; unknown characters produce an
// ILLEGAL token after reporting an error, and scanning continues.
func (s *Scanner) Scan() token.Token {
	s.skipWhitespace()
	s.start = s.cur

	if s.atEnd() {
		return s.make(token.EOF)
	}

	cur := s.advance()
	switch cur {
	case '(':
		return s.make(token.LPAREN)
	case ')':
		return s.make(token.RPAREN)
	case '{':
		return s.make(token.LBRACE)
	case '}':
		return s.make(token.RBRACE)
	case ',':
		return s.make(token.COMMA)
	case '.':
		return s.make(token.DOT)
	case '-':
		return s.make(token.MINUS)
	case '+':
		return s.make(token.PLUS)
	case ';':
		return s.make(token.SEMICOLON)
	case '*':
		return s.make(token.STAR)
	case '/':
		return s.make(token.SLASH)

	case '!':
		if s.advanceIf('=') {
			return s.make(token.BANGEQ)
		}
		return s.make(token.BANG)
	case '=':
		if s.advanceIf('=') {
			return s.make(token.EQEQ)
		}
		return s.make(token.EQ)
	case '<':
		if s.advanceIf('=') {
			return s.make(token.LE)
		}
		return s.make(token.LT)
	case '>':
		if s.advanceIf('=') {
			return s.make(token.GE)
		}
		return s.make(token.GT)

	case '"':
		return s.string()

	default:
		switch {
		case isDigit(cur):
			return s.number()
		case isAlpha(cur):
			return s.ident()
		}
		// decode the full rune for the error message so that a multi-byte
		// character is not reported one byte at a time
		r, w := utf8.DecodeRune(s.src[s.start:])
		s.cur = s.start + w
		s.errorf(s.line, "Unexpected character: %c", r)
		return s.make(token.ILLEGAL)
	}
}

// skipWhitespace consumes whitespace and comments, counting newlines.
func (s *Scanner) skipWhitespace() {
	for !s.atEnd() {
		switch s.peek() {
		case ' ', '\r', '\t':
			s.cur++
		case '\n':
			s.line++
			s.cur++
		case '/':
			switch s.peekNext() {
			case '/':
				// line comment, up to but not including the newline
				for !s.atEnd() && s.peek() != '\n' {
					s.cur++
				}
			case '*':
				s.blockComment()
			default:
				return
			}
		default:
			return
		}
	}
}

// blockComment consumes a /* ... */ comment, which may span newlines and does
// not nest.
func (s *Scanner) blockComment() {
	startLine := s.line
	s.cur += 2 // opening /*
	for !s.atEnd() {
		switch s.advance() {
		case '\n':
			s.line++
		case '*':
			if s.advanceIf('/') {
				return
			}
		}
	}
	s.error(startLine, "Unterminated block comment.")
}

// string scans a double-quoted string literal. There is no escape processing
// and the literal may span newlines.
func (s *Scanner) string() token.Token {
	startLine := s.line
	for !s.atEnd() && s.peek() != '"' {
		if s.peek() == '\n' {
			s.line++
		}
		s.cur++
	}

	if s.atEnd() {
		s.error(startLine, "Unterminated string.")
		tok := s.make(token.ILLEGAL)
		tok.Line = startLine
		return tok
	}

	s.cur++ // closing "
	tok := s.make(token.STRING)
	tok.Line = startLine
	tok.Str = string(s.src[s.start+1 : s.cur-1])
	return tok
}

// number scans a numeric literal: DIGIT+ ( '.' DIGIT+ )?. A trailing dot
// without fractional digits is not part of the number, so "123." scans as the
// number 123 followed by a dot token.
func (s *Scanner) number() token.Token {
	for isDigit(s.peek()) {
		s.cur++
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.cur++ // the dot
		for isDigit(s.peek()) {
			s.cur++
		}
	}

	tok := s.make(token.NUMBER)
	tok.Num = parseNumber(tok.Lexeme)
	return tok
}

func (s *Scanner) ident() token.Token {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.cur++
	}
	tok := s.make(token.IDENT)
	tok.Type = token.LookupKw(tok.Lexeme)
	return tok
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func isAlpha(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || b == '_'
}
