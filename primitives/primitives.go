// Package primitives catalogs the primitive operators the code generator
// supports: their names and expected arities. Splitting this metadata out
// of codegen mirrors the teacher's instructions package sitting beside
// compiler as a standalone data-shape - arity is data, not a switch branch,
// so it can be validated uniformly before any emitter runs.
package primitives

// Arity is the fixed number of operands a primitive operator accepts. This
// compiler supports only fixed unary and binary arities (spec.md's
// Non-goals exclude multi-argument variadic primitives).
type Arity int

const (
	Unary  Arity = 1
	Binary Arity = 2
)

// Descriptor names an operator and its arity.
type Descriptor struct {
	Name  string
	Arity Arity
}

// Table maps every supported operator name to its descriptor, per
// spec.md §4.4's unary and binary operator tables.
var Table = map[string]Descriptor{
	"add1":     {"add1", Unary},
	"sub1":     {"sub1", Unary},
	"integer?": {"integer?", Unary},
	"zero?":    {"zero?", Unary},
	"boolean?": {"boolean?", Unary},
	"char?":    {"char?", Unary},

	"+":      {"+", Binary},
	"-":      {"-", Binary},
	"*":      {"*", Binary},
	"=":      {"=", Binary},
	"<":      {"<", Binary},
	"char=?": {"char=?", Binary},
}

// Lookup returns the descriptor for name, if it names a known primitive.
func Lookup(name string) (Descriptor, bool) {
	d, ok := Table[name]
	return d, ok
}
