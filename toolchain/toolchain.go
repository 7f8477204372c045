// Package toolchain drives the external system C compiler that assembles
// and links the generated compiled.s together with the C runtime into a
// native executable - spec.md's §1 "external collaborator" (i).
//
// The teacher invokes gcc with a hard-coded argument list
// (exec.Command("gcc", "-static", "-o", *program, "-x", "assembler", "-")),
// piping assembly on stdin. spec.md §9's "Toolchain coupling" open question
// asks for this to become configurable and for the toolchain's absence to
// be detected up front; this package resolves that question in favor of
// configurability, per SPEC_FULL.md §5.
package toolchain

import (
	"context"
	"os"
	"os/exec"

	"github.com/kacricon/pasquim/errs"
)

// Toolchain invokes an external C compiler/linker.
type Toolchain struct {
	// CC is the compiler/linker binary, e.g. "gcc".
	CC string
	// Flags are passed ahead of the input file arguments, e.g.
	// ["-fomit-frame-pointer", "-m32"].
	Flags []string
}

// New returns a Toolchain for the given command and flags.
func New(cc string, flags []string) *Toolchain {
	return &Toolchain{CC: cc, Flags: flags}
}

// Available reports whether CC can be found on $PATH, letting callers fail
// fast with a clear error instead of discovering the absence mid-build.
func (tc *Toolchain) Available() bool {
	_, err := exec.LookPath(tc.CC)
	return err == nil
}

// Build invokes the toolchain as:
//
//	<CC> <Flags...> <asmPath> <runtimePath> -o <outputPath>
//
// matching spec.md §6's invocation shape exactly. Its stdout/stderr are
// connected to the caller's, and a non-zero exit becomes an
// errs.ToolchainError.
func (tc *Toolchain) Build(ctx context.Context, asmPath, runtimePath, outputPath string) error {
	if !tc.Available() {
		return errs.WrapToolchainError(
			tc.CC+" not found on PATH",
			exec.ErrNotFound,
		)
	}

	args := append([]string{}, tc.Flags...)
	args = append(args, asmPath, runtimePath, "-o", outputPath)

	cmd := exec.CommandContext(ctx, tc.CC, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errs.WrapToolchainError(tc.CC+" failed", err)
	}
	return nil
}

// Run executes the compiled binary at path, connecting its stdio to the
// caller's, and returns its exit status (if non-zero) wrapped as an
// errs.ToolchainError - the compiled binary follows spec.md §6's "normally
// 0" exit policy, but isn't itself part of this compiler's contract.
func Run(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, path)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		return errs.WrapToolchainError("running "+path+" failed", err)
	}
	return nil
}
