// Package compiler orchestrates the compiler's three in-process stages -
// lexer, parser, codegen - and wraps the generated body with the fixed
// prologue and epilogue spec.md §4.4 specifies for scheme_entry. This
// mirrors the teacher's compiler package (New/SetDebug/Compile as the
// public surface, private staging methods underneath), generalized from a
// float-stack RPN body to this spec's tagged-immediate recursive body.
package compiler

import (
	"strings"

	"github.com/kacricon/pasquim/ast"
	"github.com/kacricon/pasquim/codegen"
	"github.com/kacricon/pasquim/lexer"
	"github.com/kacricon/pasquim/parser"
	"github.com/rs/zerolog"
)

// Compiler holds the state of a single compilation: the source expression,
// a debug flag, and a logger. Nothing here is shared across compilations
// (spec.md §5).
type Compiler struct {
	source string
	debug  bool
	log    zerolog.Logger
}

// New creates a Compiler for the given source expression, with logging
// disabled by default.
func New(source string) *Compiler {
	return &Compiler{source: source, log: zerolog.Nop()}
}

// SetDebug toggles emission of a debug breakpoint (int3) immediately after
// the prologue. It does not touch the logger; the log level is chosen by
// whoever builds the logger passed to SetLogger.
func (c *Compiler) SetDebug(val bool) {
	c.debug = val
}

// SetLogger attaches a logger used to trace pipeline stages. The zero
// value (zerolog.Nop()) keeps the core contract free of logging side
// effects, per spec.md §7 ("No logging is part of the contract").
func (c *Compiler) SetLogger(log zerolog.Logger) {
	c.log = log
}

// Compile runs the full lex -> parse -> codegen pipeline and returns the
// complete assembly text, ready to be written to compiled.s.
func (c *Compiler) Compile() (string, error) {
	tokens := lexer.Tokenize(c.source)
	c.log.Debug().Int("tokens", len(tokens)).Msg("lexed")

	tree, err := parser.Parse(tokens)
	if err != nil {
		c.log.Error().Err(err).Msg("parse failed")
		return "", err
	}
	c.log.Debug().Msg("parsed")

	body, err := codegen.Compile(tree, codegen.InitialStackIndex)
	if err != nil {
		c.log.Error().Err(err).Msg("codegen failed")
		return "", err
	}
	c.log.Debug().Int("instructions", len(body)).Msg("generated")

	return c.wrap(body), nil
}

// wrap emits the fixed prologue and epilogue around body, per spec.md
// §4.4's "Driver wrapper".
func (c *Compiler) wrap(body []string) string {
	var b strings.Builder

	writeLine := func(line string) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	writeLine(".text")
	writeLine(".p2align 4,,15")
	writeLine(".globl scheme_entry")
	writeLine("scheme_entry:")
	writeLine("push %esi")
	writeLine("push %edi")
	writeLine("push %edx")

	if c.debug {
		writeLine("int3")
	}

	for _, line := range body {
		writeLine(line)
	}

	writeLine("pop %edx")
	writeLine("pop %edi")
	writeLine("pop %esi")
	writeLine("ret")

	return b.String()
}

// Parse exposes the parse stage alone, useful to callers (and tests) that
// want the AST without running codegen.
func Parse(source string) (ast.Node, error) {
	return parser.Parse(lexer.Tokenize(source))
}
