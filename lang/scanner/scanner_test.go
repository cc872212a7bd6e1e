package scanner_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevemarin/golox/lang/scanner"
	"github.com/stevemarin/golox/lang/token"
)

func scanTypes(t *testing.T, src string) []token.Type {
	t.Helper()
	toks, err := scanner.ScanChunk([]byte(src))
	require.NoError(t, err)
	types := make([]token.Type, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}

func TestPunctuation(t *testing.T) {
	got := scanTypes(t, "(){};,+-*!===<=>=!=<>/.")
	want := []token.Type{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
		token.SEMICOLON, token.COMMA, token.PLUS, token.MINUS, token.STAR,
		token.BANGEQ, token.EQEQ, token.LE, token.GE, token.BANGEQ,
		token.LT, token.GT, token.SLASH, token.DOT, token.EOF,
	}
	require.Equal(t, want, got)
}

func TestKeywords(t *testing.T) {
	got := scanTypes(t, "and break class else false for fun if nil or print return super this true var while andy")
	want := []token.Type{
		token.AND, token.BREAK, token.CLASS, token.ELSE, token.FALSE,
		token.FOR, token.FUN, token.IF, token.NIL, token.OR, token.PRINT,
		token.RETURN, token.SUPER, token.THIS, token.TRUE, token.VAR,
		token.WHILE, token.IDENT, token.EOF,
	}
	require.Equal(t, want, got)
}

func TestNumbers(t *testing.T) {
	toks, err := scanner.ScanChunk([]byte("123 123.456 0.5"))
	require.NoError(t, err)
	require.Len(t, toks, 4)
	require.Equal(t, token.NUMBER, toks[0].Type)
	require.Equal(t, 123.0, toks[0].Num)
	require.Equal(t, 123.456, toks[1].Num)
	require.Equal(t, 0.5, toks[2].Num)
}

func TestNumberBoundaries(t *testing.T) {
	// a trailing dot is not part of the number
	toks, err := scanner.ScanChunk([]byte("123."))
	require.NoError(t, err)
	require.Equal(t, []token.Type{token.NUMBER, token.DOT, token.EOF}, typesOf(toks))
	require.Equal(t, 123.0, toks[0].Num)

	// a leading dot is not part of the number either
	toks, err = scanner.ScanChunk([]byte(".456"))
	require.NoError(t, err)
	require.Equal(t, []token.Type{token.DOT, token.NUMBER, token.EOF}, typesOf(toks))
	require.Equal(t, 456.0, toks[1].Num)
}

func typesOf(toks []token.Token) []token.Type {
	types := make([]token.Type, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}

func TestStrings(t *testing.T) {
	toks, err := scanner.ScanChunk([]byte(`"" "string"`))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	require.Equal(t, token.STRING, toks[0].Type)
	require.Equal(t, "", toks[0].Str)
	require.Equal(t, "string", toks[1].Str)

	// strings may span newlines, counting them, and report the literal value
	// without the quotes and without escape processing
	toks, err = scanner.ScanChunk([]byte("\"a\nb\\n\" x"))
	require.NoError(t, err)
	require.Equal(t, "a\nb\\n", toks[0].Str)
	require.Equal(t, 1, toks[0].Line)
	require.Equal(t, 2, toks[1].Line) // x is on line 2
}

func TestUnterminatedString(t *testing.T) {
	// the error is reported on the line of the opening quote
	_, err := scanner.ScanChunk([]byte("x;\n\"abc\ndef"))
	require.Error(t, err)
	el := err.(scanner.ErrorList)
	require.Len(t, el, 1)
	require.Equal(t, 2, el[0].Line)
	require.Contains(t, el[0].Msg, "Unterminated string.")
}

func TestComments(t *testing.T) {
	// line comment up to but not including the newline
	got := scanTypes(t, "1 // comment ; var\n2")
	require.Equal(t, []token.Type{token.NUMBER, token.NUMBER, token.EOF}, got)

	// block comments span newlines and do not nest
	toks, err := scanner.ScanChunk([]byte("1 /* a\nb */ 2 /* /* */ 3"))
	require.NoError(t, err)
	require.Equal(t, []token.Type{token.NUMBER, token.NUMBER, token.NUMBER, token.EOF}, typesOf(toks))
	require.Equal(t, 2, toks[1].Line)

	// unterminated block comment is an error on its opening line
	_, err = scanner.ScanChunk([]byte("1\n/* never closed"))
	require.Error(t, err)
	el := err.(scanner.ErrorList)
	require.Len(t, el, 1)
	require.Equal(t, 2, el[0].Line)
	require.Contains(t, el[0].Msg, "Unterminated block comment.")
}

func TestUnexpectedCharacter(t *testing.T) {
	// unknown characters report an error but scanning continues
	toks, err := scanner.ScanChunk([]byte("@ # 1"))
	require.Error(t, err)
	require.Equal(t, []token.Type{token.ILLEGAL, token.ILLEGAL, token.NUMBER, token.EOF}, typesOf(toks))

	el := err.(scanner.ErrorList)
	require.Len(t, el, 2)
	assert.Equal(t, "[line 1] Error: Unexpected character: @", el[0].Error())
	assert.Equal(t, "[line 1] Error: Unexpected character: #", el[1].Error())
}

func TestLines(t *testing.T) {
	toks, err := scanner.ScanChunk([]byte("a\nb\n\nc\n"))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 4, 5}, linesOf(toks))
}

func linesOf(toks []token.Token) []int {
	lines := make([]int, len(toks))
	for i, tok := range toks {
		lines[i] = tok.Line
	}
	return lines
}

// the token lexemes concatenated in order reproduce the input modulo
// whitespace and comments
func TestLexemesReproduceSource(t *testing.T) {
	src := `
class Pair { init(a, b) { this.a = a; this.b = b; } }
// a comment
var p = Pair(1, 2.5); /* another */ print p.a <= p.b;
`
	toks, err := scanner.ScanChunk([]byte(src))
	require.NoError(t, err)

	var sb strings.Builder
	for _, tok := range toks {
		sb.WriteString(tok.Lexeme)
	}

	stripped := strings.NewReplacer(" ", "", "\t", "", "\n", "").Replace(src)
	stripped = strings.ReplaceAll(stripped, "//acomment", "")
	stripped = strings.ReplaceAll(stripped, "/*another*/", "")
	require.Equal(t, stripped, sb.String())
}
