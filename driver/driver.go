// Package driver stages a compilation's output - the generated compiled.s
// and a copy of the embedded C runtime - into an output directory and
// drives the external toolchain (package toolchain) against them.
//
// This is grounded on original_source's Compiler._prep_output and
// compile_to_binary (prepare a directory, write compiled.s, shell out to
// gcc), generalized to go through an afero.Fs so it is unit-testable
// without touching the real filesystem, and to mint its own
// uuid-addressed output directory when the caller doesn't pin one - making
// spec.md §5's "multiple concurrent compilations are safe provided each
// uses a distinct output directory" the default, not just a caller
// obligation.
package driver

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/kacricon/pasquim/config"
	"github.com/kacricon/pasquim/rts"
	"github.com/kacricon/pasquim/stack"
	"github.com/kacricon/pasquim/toolchain"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// AssemblyFilename is the name spec.md §6 requires for the compiler's
// output file.
const AssemblyFilename = "compiled.s"

// BinaryFilename is the name the toolchain links the final executable to.
const BinaryFilename = "a.out"

// Result describes where a successful Build's artifacts ended up.
type Result struct {
	OutputDir    string
	AssemblyPath string
	RuntimePath  string
	BinaryPath   string
	// Owned is true when the driver minted OutputDir itself (the caller
	// didn't pin one) and is therefore responsible for cleaning it up.
	Owned bool
}

// Driver stages compilation artifacts through an afero.Fs.
type Driver struct {
	Fs afero.Fs
}

// New returns a Driver backed by fs. A nil fs defaults to the real
// filesystem (afero.NewOsFs()).
func New(fs afero.Fs) *Driver {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Driver{Fs: fs}
}

// resolveOutputDir returns the directory to write into and whether the
// driver - not the caller - owns it.
func resolveOutputDir(base string) (dir string, owned bool) {
	if base != "" {
		return base, false
	}
	return filepath.Join(os.TempDir(), "pasquim-"+uuid.NewString()), true
}

// WriteAssembly writes asm to <dir>/compiled.s.
func (d *Driver) WriteAssembly(dir, asm string) (string, error) {
	if err := d.Fs.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "creating output directory")
	}
	path := filepath.Join(dir, AssemblyFilename)
	if err := afero.WriteFile(d.Fs, path, []byte(asm), 0o644); err != nil {
		return "", errors.Wrap(err, "writing "+AssemblyFilename)
	}
	return path, nil
}

// WriteRuntime stages the embedded C runtime into <dir>/rts.c.
func (d *Driver) WriteRuntime(dir string) (string, error) {
	path := filepath.Join(dir, rts.Filename)
	if err := afero.WriteFile(d.Fs, path, rts.Source, 0o644); err != nil {
		return "", errors.Wrap(err, "writing "+rts.Filename)
	}
	return path, nil
}

// Stage writes compiled.s and the runtime into a resolved output
// directory, without invoking the toolchain. It is the half of Build that
// package compiler's pure text output touches the filesystem for.
func (d *Driver) Stage(cfg config.Config, asm string) (Result, error) {
	dir, owned := resolveOutputDir(cfg.OutputDir)
	cleanup := stack.New[string]()
	if owned {
		cleanup.Push(dir)
	}

	asmPath, err := d.WriteAssembly(dir, asm)
	if err != nil {
		d.rollback(cleanup)
		return Result{}, err
	}
	if !owned {
		cleanup.Push(asmPath)
	}

	rtsPath, err := d.WriteRuntime(dir)
	if err != nil {
		d.rollback(cleanup)
		return Result{}, err
	}

	return Result{OutputDir: dir, AssemblyPath: asmPath, RuntimePath: rtsPath, Owned: owned}, nil
}

// Build stages the output, then invokes the toolchain to assemble and link
// it into a native executable, per spec.md §6's invocation shape. If the
// toolchain fails, it rolls back whatever it staged, respecting ownership:
// an owned (driver-minted) directory is removed entirely; a caller-supplied
// directory only has the files this Build wrote removed. A failure while
// running the binary (cfg.Run) is returned with the artifacts left in place.
func (d *Driver) Build(ctx context.Context, cfg config.Config, asm string) (Result, error) {
	res, err := d.Stage(cfg, asm)
	if err != nil {
		return Result{}, err
	}

	cleanup := stack.New[string]()
	if res.Owned {
		cleanup.Push(res.OutputDir)
	} else {
		cleanup.Push(res.AssemblyPath)
		cleanup.Push(res.RuntimePath)
	}

	res.BinaryPath = filepath.Join(res.OutputDir, BinaryFilename)

	tc := toolchain.New(cfg.CC, cfg.CCFlags)
	if err := tc.Build(ctx, res.AssemblyPath, res.RuntimePath, res.BinaryPath); err != nil {
		d.rollback(cleanup)
		return Result{}, err
	}

	if cfg.Run {
		if err := toolchain.Run(ctx, res.BinaryPath); err != nil {
			return res, err
		}
	}

	return res, nil
}

func (d *Driver) rollback(cleanup *stack.Stack[string]) {
	cleanup.Drain(func(path string) {
		_ = d.Fs.RemoveAll(path)
	})
}
