// Package lexer turns a Scheme program string into a flat, ordered sequence
// of token strings.
//
// The transformation is deliberately dumb: surround every "(" and ")" with
// spaces, then split on runs of ASCII whitespace, dropping empties.  No
// other lexical recognition happens here - "#t", "42", and "add1" all
// emerge as opaque tokens.  This matches the teacher's stateful rune-by-rune
// scanner in spirit (New/NextToken) but not in mechanism: there is nothing
// left to classify character-by-character once parens and numbers are no
// longer distinguished at this stage, so a single padded split suffices.
package lexer

import (
	"strings"

	"github.com/kacricon/pasquim/token"
)

// Tokenize splits source into an ordered sequence of tokens.  It never
// fails: any input string, including the empty string, produces a
// (possibly empty) token sequence.
func Tokenize(source string) []token.Token {
	padded := strings.NewReplacer(
		"(", " ( ",
		")", " ) ",
	).Replace(source)

	fields := strings.FieldsFunc(padded, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
	})
	tokens := make([]token.Token, len(fields))
	for i, f := range fields {
		tokens[i] = token.Token(f)
	}
	return tokens
}
