// Package codegen walks the AST and emits AT&T-syntax x86 assembly lines
// implementing spec.md §4.4's dispatch and primitive-operator tables.
//
// The generator's contract, for every call: the result of evaluating node
// is left in %eax as a fully-tagged word; si and lower slots may be freely
// used as scratch; slots at indices higher than si must be preserved. si is
// a plain function parameter, never an ambient cursor (spec.md §9,
// "Stack-index threading").
package codegen

import (
	"fmt"

	"github.com/kacricon/pasquim/ast"
	"github.com/kacricon/pasquim/encoding"
	"github.com/kacricon/pasquim/errs"
	"github.com/kacricon/pasquim/primitives"
)

// StackIndex is a signed byte offset relative to %esp, always a (negative)
// multiple of encoding.Wordsize.
type StackIndex int32

// InitialStackIndex is the cursor a fresh top-level compilation starts
// from (spec.md §3: "starting at -wordsize").
const InitialStackIndex StackIndex = -encoding.Wordsize

// next returns the next free slot below si.
func (si StackIndex) next() StackIndex {
	return si - encoding.Wordsize
}

// operand renders si as an %esp-relative memory operand, e.g. "-8(%esp)".
func (si StackIndex) operand() string {
	return fmt.Sprintf("%d(%%esp)", int32(si))
}

// Compile recursively emits the instruction sequence for node, assuming si
// is the next free stack slot. It is the only exported entry point; every
// primitive-operator emitter below is reached through it.
func Compile(node ast.Node, si StackIndex) ([]string, error) {
	switch n := node.(type) {
	case ast.Int:
		return immediate(encoding.EncodeInt(int32(n))), nil

	case ast.Bool:
		return immediate(encoding.EncodeBool(bool(n))), nil

	case ast.Char:
		return immediate(encoding.EncodeChar(rune(n))), nil

	case ast.Sym:
		if len(n) == 1 {
			// A one-character symbol is interpreted as a character, per
			// spec.md's Design Notes.
			return immediate(encoding.EncodeChar(rune(n[0]))), nil
		}
		return nil, errs.NewSemanticError(fmt.Sprintf("unrecognized expression: %q", string(n)))

	case ast.List:
		if op, args, ok := ast.Primcall(n); ok {
			return compilePrimcall(string(op), args, si)
		}
		return nil, errs.NewSemanticError("unrecognized expression: list is not a primcall")

	default:
		return nil, errs.NewSemanticError(fmt.Sprintf("unrecognized expression: %T", node))
	}
}

func immediate(word uint32) []string {
	return []string{fmt.Sprintf("movl $%d, %%eax", int32(word))}
}

func compilePrimcall(op string, args []ast.Node, si StackIndex) ([]string, error) {
	desc, ok := primitives.Lookup(op)
	if !ok {
		return nil, errs.NewSemanticError(fmt.Sprintf("unknown primitive operator %q", op))
	}

	switch desc.Arity {
	case primitives.Unary:
		if len(args) != 1 {
			return nil, errs.NewSemanticError(fmt.Sprintf("a single argument should be passed to %s", op))
		}
		return compileUnary(op, args[0], si)

	case primitives.Binary:
		if len(args) != 2 {
			return nil, errs.NewSemanticError(fmt.Sprintf("two arguments should be passed to %s", op))
		}
		return compileBinary(op, args[0], args[1], si)

	default:
		return nil, errs.NewSemanticError(fmt.Sprintf("operator %q has unsupported arity", op))
	}
}
