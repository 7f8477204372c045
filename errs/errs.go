// Package errs defines the three error kinds spec.md §7 requires: syntax
// errors (parser), semantic errors (code generator), and toolchain errors
// (the external assembler/linker).  Each is a distinct Go type so callers
// can tell kinds apart with errors.As, and each wraps its underlying cause
// with github.com/pkg/errors so a stack trace survives the wrap - the same
// convention db47h-ngaro's asm and vm packages use throughout.
package errs

import "github.com/pkg/errors"

// SyntaxError is raised by the parser: unexpected EOF, an unmatched ")",
// or leftover tokens after the top-level expression.
type SyntaxError struct {
	Cause string
	err   error
}

func (e *SyntaxError) Error() string { return "syntax error: " + e.Cause }
func (e *SyntaxError) Unwrap() error { return e.err }

// NewSyntaxError builds a SyntaxError with the given human-readable cause.
func NewSyntaxError(cause string) *SyntaxError {
	return &SyntaxError{Cause: cause, err: errors.New(cause)}
}

// SemanticError is raised by the code generator: an unknown primitive
// operator, a primitive-call arity mismatch, or an unrecognized expression
// shape.
type SemanticError struct {
	Cause string
	err   error
}

func (e *SemanticError) Error() string { return "semantic error: " + e.Cause }
func (e *SemanticError) Unwrap() error { return e.err }

// NewSemanticError builds a SemanticError with the given human-readable cause.
func NewSemanticError(cause string) *SemanticError {
	return &SemanticError{Cause: cause, err: errors.New(cause)}
}

// ToolchainError wraps a non-zero exit, or other failure, from the external
// assembler/linker invocation. The underlying cause (often *exec.ExitError)
// is preserved for inspection via errors.As / errors.Unwrap.
type ToolchainError struct {
	Cause string
	err   error
}

func (e *ToolchainError) Error() string { return "toolchain error: " + e.Cause }
func (e *ToolchainError) Unwrap() error { return e.err }

// WrapToolchainError wraps err as a ToolchainError, annotated with cause.
func WrapToolchainError(cause string, err error) *ToolchainError {
	return &ToolchainError{Cause: cause, err: errors.Wrap(err, cause)}
}
