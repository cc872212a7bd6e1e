package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeString(t *testing.T) {
	for typ := Type(0); typ < maxType; typ++ {
		if typ.String() == "" {
			t.Errorf("missing string representation of token type %d", typ)
		}
	}
}

func TestLookupKw(t *testing.T) {
	for typ := Type(0); typ < maxType; typ++ {
		expect := IDENT
		if typ.IsKeyword() {
			expect = typ
		}
		require.Equal(t, expect, LookupKw(typ.String()))
	}
}

func TestGoString(t *testing.T) {
	require.Equal(t, "';'", SEMICOLON.GoString())
	require.Equal(t, "'=='", EQEQ.GoString())
	require.Equal(t, "while", WHILE.GoString())
	require.Equal(t, "end of file", EOF.GoString())
}

func TestLiteral(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{Token{Type: NUMBER, Lexeme: "123.0", Num: 123}, "123"},
		{Token{Type: NUMBER, Lexeme: "0.5", Num: 0.5}, "0.5"},
		{Token{Type: STRING, Lexeme: `"hi"`, Str: "hi"}, "hi"},
		{Token{Type: IDENT, Lexeme: "foo"}, "foo"},
		{Token{Type: SEMICOLON, Lexeme: ";"}, ""},
		{Token{Type: EOF}, ""},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.tok.Literal())
	}
}
