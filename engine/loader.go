//go:build linux || darwin

package engine

// #include "vsthost.h"
import "C"

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/hq9000/vsthost/errors"
	"github.com/hq9000/vsthost/vst"
)

// Option configures a Handle at load time.
type Option func(*Handle)

// WithVerbose leaves the plugin's stdout/stderr alone. By default the engine
// captures and discards them around every foreign call.
func WithVerbose(verbose bool) Option {
	return func(h *Handle) { h.verbose = verbose }
}

// Load opens the shared object at path, resolves its plugin entry point and
// instantiates the plugin. master receives every callback the plugin makes
// into the host; pass nil for a host that only answers the version probe.
//
// On any failure no library handle is left open.
func Load(path string, master AudioMaster, opts ...Option) (*Handle, error) {
	lib, err := openLibrary(path)
	if err != nil {
		return nil, err
	}

	var entry unsafe.Pointer
	for _, name := range vst.EntrySymbols {
		if entry = lib.symbol(name); entry != nil {
			break
		}
	}
	if entry == nil {
		_ = lib.close()
		return nil, errors.EntryPointNotFound(path, vst.EntrySymbols)
	}

	h, err := attach(entry, master, lib, opts...)
	if err != nil {
		_ = lib.close()
		return nil, err
	}

	Logger().Info("plugin loaded",
		zap.String("path", path),
		zap.Int32("numParams", h.NumParams()),
		zap.Int32("numInputs", h.NumInputs()),
		zap.Int32("numOutputs", h.NumOutputs()))
	return h, nil
}

// Attach instantiates a plugin from an in-process entry function instead of
// a shared object: entry must point to a C function with the signature
// AEffect* (*)(audioMasterCallback). Used for statically linked effects and
// the test fixtures; the returned handle owns no library.
func Attach(entry unsafe.Pointer, master AudioMaster, opts ...Option) (*Handle, error) {
	if entry == nil {
		return nil, errors.InvalidInput(errors.PhaseLoad, "nil entry point")
	}
	return attach(entry, master, nil, opts...)
}

func attach(entry unsafe.Pointer, master AudioMaster, lib *library, opts ...Option) (*Handle, error) {
	h := &Handle{lib: lib, master: master}
	for _, opt := range opts {
		opt(h)
	}

	// One entry call at a time, so the pending callback slot is unambiguous.
	loadMu.Lock()
	setPendingMaster(master)
	restore := h.quiet()
	effect := C.vsthost_call_entry(entry)
	restore()
	setPendingMaster(nil)
	loadMu.Unlock()

	if effect == nil {
		return nil, errors.InvalidPlugin("entry function returned no descriptor")
	}
	if int32(effect.magic) != vst.Magic {
		return nil, errors.InvalidPlugin("descriptor magic %#x, want %#x", int32(effect.magic), vst.Magic)
	}

	h.effect = effect
	registerMaster(unsafe.Pointer(effect), master)

	if v := h.VSTVersion(); v != vst.Version {
		Logger().Warn("plugin targets a different protocol version",
			zap.Int64("pluginVersion", v),
			zap.Int64("hostVersion", vst.Version))
	}
	return h, nil
}
