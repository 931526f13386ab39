//go:build linux || darwin

// Package testbed provides small native fixture plugins compiled into the
// test binary. They implement the same ABI as an external shared object, so
// the loader, parameter bridge and processing paths can be exercised without
// shipping prebuilt binaries for every platform.
package testbed

// #cgo CFLAGS: -I${SRCDIR}/../engine
// #cgo LDFLAGS: -lm
// #include "testplug.h"
import "C"

import "unsafe"

// SynthEntry returns the entry point of a two-output sine synth with three
// parameters, MIDI input and both processing precisions.
func SynthEntry() unsafe.Pointer { return C.tp_synth_entry() }

// SinglePrecisionSynthEntry returns the synth without double-precision
// support.
func SinglePrecisionSynthEntry() unsafe.Pointer { return C.tp_synth_single_entry() }

// GainEntry returns the entry point of a stereo gain effect.
func GainEntry() unsafe.Pointer { return C.tp_gain_entry() }

// BadMagicEntry returns an entry point whose descriptor carries a wrong
// magic value.
func BadMagicEntry() unsafe.Pointer { return C.tp_badmagic_entry() }
