package codegen

import (
	"fmt"

	"github.com/kacricon/pasquim/ast"
	"github.com/kacricon/pasquim/encoding"
	"github.com/kacricon/pasquim/errs"
)

// boolTail is the fixed four-instruction close of spec.md §4.4's
// "equal-to V -> tagged bool" idiom, following a caller-supplied
// comparison. setcc is the set-on-condition mnemonic (sete, setl, ...).
func boolTail(setcc string) []string {
	return []string{
		"movl $0, %eax",
		fmt.Sprintf("%s %%al", setcc),
		"sall $8, %eax",
		fmt.Sprintf("orl $0x%x, %%eax", encoding.BoolTag),
	}
}

// equalToBool emits the full five-instruction idiom: compare %eax against
// the immediate value, then boolTail.
func equalToBool(value uint32, setcc string) []string {
	lines := []string{fmt.Sprintf("cmpl $%d, %%eax", int32(value))}
	return append(lines, boolTail(setcc)...)
}

func compileUnary(op string, arg ast.Node, si StackIndex) ([]string, error) {
	lines, err := Compile(arg, si)
	if err != nil {
		return nil, err
	}

	switch op {
	case "add1":
		return append(lines, fmt.Sprintf("addl $%d, %%eax", int32(encoding.EncodeInt(1)))), nil

	case "sub1":
		return append(lines, fmt.Sprintf("subl $%d, %%eax", int32(encoding.EncodeInt(1)))), nil

	case "integer?":
		lines = append(lines, fmt.Sprintf("andl $0x%x, %%eax", encoding.FixnumMask))
		return append(lines, equalToBool(0, "sete")...), nil

	case "zero?":
		return append(lines, equalToBool(0, "sete")...), nil

	case "boolean?":
		lines = append(lines, fmt.Sprintf("andl $0x%x, %%eax", encoding.BoolMask))
		return append(lines, equalToBool(encoding.BoolTag, "sete")...), nil

	case "char?":
		lines = append(lines, fmt.Sprintf("andl $0x%x, %%eax", encoding.CharMask))
		return append(lines, equalToBool(encoding.CharTag, "sete")...), nil

	default:
		return nil, errs.NewSemanticError(fmt.Sprintf("unknown unary operator %q", op))
	}
}

// compileBinary implements spec.md §4.4's binary shape: compile the first
// operand at si, spill it, compile the second operand at si-wordsize, then
// combine. Subtraction compiles its operands in reverse (second, then
// first) so the shared "subl si(%esp), %eax" combine produces a - b rather
// than b - a.
func compileBinary(op string, a, b ast.Node, si StackIndex) ([]string, error) {
	left, right := a, b
	if op == "-" {
		left, right = b, a
	}

	lines, err := Compile(left, si)
	if err != nil {
		return nil, err
	}
	lines = append(lines, fmt.Sprintf("movl %%eax, %s", si.operand()))

	rest, err := Compile(right, si.next())
	if err != nil {
		return nil, err
	}
	lines = append(lines, rest...)

	switch op {
	case "+":
		return append(lines, fmt.Sprintf("addl %s, %%eax", si.operand())), nil

	case "-":
		return append(lines, fmt.Sprintf("subl %s, %%eax", si.operand())), nil

	case "*":
		lines = append(lines, "shrl $2, %eax")
		return append(lines, fmt.Sprintf("imull %s, %%eax", si.operand())), nil

	case "=":
		lines = append(lines, fmt.Sprintf("cmpl %%eax, %s", si.operand()))
		return append(lines, boolTail("sete")...), nil

	case "<":
		lines = append(lines, fmt.Sprintf("cmpl %%eax, %s", si.operand()))
		return append(lines, boolTail("setl")...), nil

	case "char=?":
		lines = append(lines, "shrl $8, %eax")
		lines = append(lines, fmt.Sprintf("shrl $8, %s", si.operand()))
		lines = append(lines, fmt.Sprintf("cmpl %%eax, %s", si.operand()))
		return append(lines, boolTail("sete")...), nil

	default:
		return nil, errs.NewSemanticError(fmt.Sprintf("unknown binary operator %q", op))
	}
}
