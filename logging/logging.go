// Package logging builds the zerolog.Logger threaded through the compiler
// (the driver and toolchain packages do not log), generalizing the teacher's single debug flag (which only
// ever controlled an "int 03" breakpoint insertion) into leveled,
// structured logging for pipeline stages. The core compiler and codegen
// packages never require a non-nil logger - zerolog.Nop() is a legitimate
// value - so logging never becomes part of the compiler's data-flow
// contract, matching spec.md §7's "no logging is part of the contract".
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a console-writer logger at debug level when debug is true,
// and at warn level (quiet) otherwise.
func New(debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
