// Package ast defines the abstract syntax tree the parser produces and the
// code generator walks.
//
// spec.md's Design Notes call out that the source representation this
// compiler is ported from uses untyped lists for every node shape, and that
// a faithful port should promote that to an explicit tagged sum so that
// "is this a primitive call?" is a pattern match, not a structural
// inspection. Node is that tagged sum.
package ast

// Node is any AST node: an atom (Int, Bool, Char, Sym) or a List.
type Node interface {
	node()
}

// Int is a signed integer literal, required by spec.md §3 to fit in 30
// bits: -2^29 <= i <= 2^29.
type Int int32

func (Int) node() {}

// Bool is a boolean literal, #t or #f.
type Bool bool

func (Bool) node() {}

// Char is a single-character literal. The parser never produces this from
// plain source text - see Sym's doc comment - except for the supplemental
// #\x lexical form described in SPEC_FULL.md.
type Char rune

func (Char) node() {}

// Sym is a symbol: an identifier or an operator name. Per spec.md's Design
// Notes, any one-character Sym is *also* a legal Char - that reinterpretation
// happens at code-generation dispatch time, not here; the parser always
// emits Sym for a bare single-letter token.
type Sym string

func (Sym) node() {}

// List is an ordered sequence of nodes. The empty list is legal.
type List []Node

func (List) node() {}

// primcallHead is the literal symbol that marks a list as a primitive call.
const primcallHead = Sym("primcall")

// Primcall reports whether n is a list of the form
// (primcall <op> <arg>*), and if so returns the operator name and the
// argument nodes.
func Primcall(n Node) (op Sym, args []Node, ok bool) {
	list, isList := n.(List)
	if !isList || len(list) < 2 {
		return "", nil, false
	}
	head, isSym := list[0].(Sym)
	if !isSym || head != primcallHead {
		return "", nil, false
	}
	opSym, isSym := list[1].(Sym)
	if !isSym {
		return "", nil, false
	}
	return opSym, list[2:], true
}
