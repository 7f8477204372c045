package lexer

import (
	"testing"

	"github.com/kacricon/pasquim/token"
	"github.com/stretchr/testify/assert"
)

func TestTokenizeParens(t *testing.T) {
	got := Tokenize("(begin (define r 10))")
	want := []token.Token{
		"(", "begin", "(", "define", "r", "10", ")", ")",
	}
	assert.Equal(t, want, got)
}

func TestTokenizeNested(t *testing.T) {
	got := Tokenize("(begin (define r 10) (* pi (* r r)))")
	want := []token.Token{
		"(", "begin",
		"(", "define", "r", "10", ")",
		"(", "*", "pi", "(", "*", "r", "r", ")", ")",
		")",
	}
	assert.Equal(t, want, got)
}

func TestTokenizeEmpty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   \n\t  "))
}

func TestTokenizeOpaqueAtoms(t *testing.T) {
	// The lexer never classifies; it just yields whitespace-delimited runs.
	got := Tokenize("(primcall char=? a z)")
	want := []token.Token{"(", "primcall", "char=?", "a", "z", ")"}
	assert.Equal(t, want, got)
}

func TestTokenizeWhitespaceInsensitive(t *testing.T) {
	a := Tokenize("(+ 1 2)")
	b := Tokenize("(+\n1\t2  )")
	assert.Equal(t, a, b)
}
