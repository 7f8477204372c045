// This is the main-driver for the compiler.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/kacricon/pasquim/compiler"
	"github.com/kacricon/pasquim/config"
	"github.com/kacricon/pasquim/driver"
	"github.com/kacricon/pasquim/logging"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the "pasquim 'expression'" command, binding its flags
// into a viper instance (config.New) so PASQUIM_*-prefixed environment
// variables can override any of them.
func newRootCmd() *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:   "pasquim 'expression'",
		Short: "Compile a Pasquim expression to x86 assembly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args[0])
		},
	}

	config.RegisterFlags(cmd.Flags())
	_ = v.BindPFlags(cmd.Flags())

	return cmd
}

// run compiles expr and, if requested, drives it through to a native
// binary. Running implies compiling, mirroring the teacher's "if *run ==
// true { *compile = true }".
func run(cmd *cobra.Command, v *viper.Viper, expr string) error {
	cfg := config.Load(v)
	compileRequested := v.GetBool("compile") || cfg.Run

	log := logging.New(cfg.Debug)
	comp := compiler.New(expr)
	comp.SetDebug(cfg.Debug)
	comp.SetLogger(log)

	out, err := comp.Compile()
	if err != nil {
		color.Red("Error compiling: %s", err)
		return err
	}

	if !compileRequested {
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	d := driver.New(afero.NewOsFs())
	res, err := d.Build(context.Background(), cfg, out)
	if err != nil {
		color.Red("Error building: %s", err)
		return err
	}

	color.Green("Built %s", res.BinaryPath)
	return nil
}
