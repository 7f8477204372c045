// Package rts embeds the small C runtime that accompanies every compiled
// program: it supplies main(), calls scheme_entry(), and prints the
// returned tagged word per spec.md §6's conventions. It is shipped as a
// data asset, not compiled by this module - the external system C
// toolchain (package toolchain) is the one that builds it, alongside the
// generated compiled.s.
package rts

import _ "embed"

// Source is the embedded contents of rts.c.
//
//go:embed rts.c
var Source []byte

// Filename is the name the runtime source is written under in a
// compilation's output directory.
const Filename = "rts.c"
