package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKnownOperators(t *testing.T) {
	cases := map[string]Arity{
		"add1":     Unary,
		"sub1":     Unary,
		"integer?": Unary,
		"zero?":    Unary,
		"boolean?": Unary,
		"char?":    Unary,
		"+":        Binary,
		"-":        Binary,
		"*":        Binary,
		"=":        Binary,
		"<":        Binary,
		"char=?":   Binary,
	}

	for name, arity := range cases {
		d, ok := Lookup(name)
		assert.True(t, ok, "expected %q to be known", name)
		assert.Equal(t, arity, d.Arity)
		assert.Equal(t, name, d.Name)
	}
}

func TestLookupUnknownOperator(t *testing.T) {
	_, ok := Lookup("frobnicate")
	assert.False(t, ok)
}
