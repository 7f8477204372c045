// Package config is the one piece of caller-supplied configuration
// spec.md §6 names - the output directory - expanded with the two knobs
// the "Toolchain coupling" open question (spec.md §9) forces into
// existence: the assembler/linker command and its flags. Values are bound
// from CLI flags (cmd/pasquim) via github.com/spf13/pflag and
// github.com/spf13/viper, with PASQUIM_*-prefixed environment variable
// overrides.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix viper uses for environment-variable overrides,
// e.g. PASQUIM_OUTPUT_DIR.
const EnvPrefix = "PASQUIM"

// DefaultCC and DefaultCCFlags match spec.md §6's invocation exactly:
//
//	gcc -fomit-frame-pointer -m32 <out>/compiled.s <runtime.c> -o <out>/a.out
var (
	DefaultCC      = "gcc"
	DefaultCCFlags = []string{"-fomit-frame-pointer", "-m32"}
)

// Config is the resolved configuration for a single compilation.
type Config struct {
	// OutputDir is the directory compiled.s and the staged runtime are
	// written to. Empty means the driver mints one per compilation.
	OutputDir string

	// CC is the external C compiler/linker binary to invoke.
	CC string

	// CCFlags are flags passed to CC ahead of the input files.
	CCFlags []string

	// Debug toggles the compiler's debug breakpoint and raises log
	// verbosity.
	Debug bool

	// Run additionally executes the produced binary after a successful
	// build.
	Run bool
}

// Load resolves a Config from viper, applying defaults for anything the
// caller (CLI flags or PASQUIM_* environment variables) didn't set.
func Load(v *viper.Viper) Config {
	cc := v.GetString("cc")
	if cc == "" {
		cc = DefaultCC
	}

	flags := v.GetStringSlice("ccflags")
	if len(flags) == 0 {
		flags = DefaultCCFlags
	}

	return Config{
		OutputDir: v.GetString("output-dir"),
		CC:        cc,
		CCFlags:   flags,
		Debug:     v.GetBool("debug"),
		Run:       v.GetBool("run"),
	}
}

// New returns a viper instance pre-configured for pasquim's environment
// variable conventions. Callers bind pflag flags onto it before calling
// Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// RegisterFlags defines every flag Load reads, on fs, with its default
// value. Keeping the flag definitions here rather than in cmd/pasquim
// means the set of configuration keys has one source of truth alongside
// the viper keys Load reads them back from.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Bool("debug", false, "Insert a debug breakpoint in the generated output.")
	fs.Bool("compile", false, "Compile the program, via invoking the C toolchain.")
	fs.Bool("run", false, "Run the binary, post-compile.")
	fs.String("output-dir", "", "Directory to write compiled.s and the runtime into (default: a fresh temp directory).")
	fs.String("cc", DefaultCC, "C compiler/linker to invoke.")
	fs.StringSlice("ccflags", DefaultCCFlags, "Flags passed to the C compiler ahead of the input files.")
}
