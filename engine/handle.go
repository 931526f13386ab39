//go:build linux || darwin

package engine

// #include "vsthost.h"
import "C"

import (
	"unsafe"

	"github.com/hq9000/vsthost/errors"
	"github.com/hq9000/vsthost/vst"
)

// Handle is a loaded plugin. It exclusively owns the library handle and the
// descriptor pointer; Close releases both. Not safe for concurrent use.
type Handle struct {
	effect  *C.AEffect
	lib     *library
	master  AudioMaster
	verbose bool
}

// Dispatch performs one opcode call through the plugin's dispatcher pointer.
// This is the channel for everything except the hot-path parameter and
// process calls, which the ABI carves out as direct function pointers.
// After Close the descriptor is gone and the call returns 0.
func (h *Handle) Dispatch(opcode vst.PluginOpcode, index int32, value int64, ptr unsafe.Pointer, opt float32) int64 {
	if !h.Loaded() {
		return 0
	}
	restore := h.quiet()
	defer restore()
	return int64(C.vsthost_dispatch(h.effect, C.int32_t(opcode), C.int32_t(index), C.intptr_t(value), ptr, C.float(opt)))
}

// DispatchString performs a string query opcode: the plugin writes a
// NUL-terminated string into a scratch buffer sized well above the nominal
// ABI limit, because plugins are known to overrun it.
func (h *Handle) DispatchString(opcode vst.PluginOpcode, index int32) string {
	var buf [vst.MaxScratchLen]byte
	h.Dispatch(opcode, index, 0, unsafe.Pointer(&buf[0]), 0)
	return vst.TrimNul(buf[:])
}

// GetParameter reads a parameter value through the direct function pointer,
// or 0 once the handle is closed.
func (h *Handle) GetParameter(index int32) float32 {
	if !h.Loaded() {
		return 0
	}
	return float32(C.vsthost_get_parameter(h.effect, C.int32_t(index)))
}

// SetParameter writes a parameter value through the direct function pointer.
// A write against a closed handle is dropped.
func (h *Handle) SetParameter(index int32, value float32) {
	if !h.Loaded() {
		return
	}
	C.vsthost_set_parameter(h.effect, C.int32_t(index), C.float(value))
}

// zeroEffect backs descriptor reads against a closed handle.
var zeroEffect C.AEffect

// desc returns the live descriptor, or an all-zero one after Close so
// field reads never chase a dead pointer.
func (h *Handle) desc() *C.AEffect {
	if h.Loaded() {
		return h.effect
	}
	return &zeroEffect
}

// Descriptor counts are read fresh on every call; plugins may legally change
// them over their life. All descriptor reads report 0 after Close.

func (h *Handle) NumParams() int32   { return int32(h.desc().numParams) }
func (h *Handle) NumPrograms() int32 { return int32(h.desc().numPrograms) }
func (h *Handle) NumInputs() int32   { return int32(h.desc().numInputs) }
func (h *Handle) NumOutputs() int32  { return int32(h.desc().numOutputs) }

// Flags returns the descriptor capability bitset.
func (h *Handle) Flags() vst.Flags { return vst.Flags(h.desc().flags) }

// IsSynth reports the "is synth" capability bit.
func (h *Handle) IsSynth() bool { return h.Flags().Has(vst.FlagIsSynth) }

// CanDoubleReplacing reports whether the plugin's 64-bit process pointer is
// valid and safe to call.
func (h *Handle) CanDoubleReplacing() bool { return h.Flags().Has(vst.FlagCanDoubleReplacing) }

// InitialDelay returns the plugin's reported latency in sample frames.
func (h *Handle) InitialDelay() int32 { return int32(h.desc().initialDelay) }

// UniqueID returns the plugin's registered four-char identifier.
func (h *Handle) UniqueID() int32 { return int32(h.desc().uniqueID) }

// PluginVersion returns the plugin's own version field.
func (h *Handle) PluginVersion() int32 { return int32(h.desc().version) }

// VSTVersion queries the protocol version the plugin was built against.
func (h *Handle) VSTVersion() int64 {
	return h.Dispatch(vst.EffGetVstVersion, 0, 0, nil, 0)
}

// Loaded reports whether the handle still owns a live descriptor.
func (h *Handle) Loaded() bool { return h != nil && h.effect != nil }

// Close dispatches EffClose and releases the library handle. The descriptor
// pointer is dead after this; dispatches and descriptor reads return zero
// values, and processing reports a not-loaded error.
func (h *Handle) Close() error {
	if h.effect == nil {
		return errors.NotLoaded(errors.PhaseDispatch, "plugin")
	}

	h.Dispatch(vst.EffClose, 0, 0, nil, 0)
	unregisterMaster(unsafe.Pointer(h.effect))
	h.effect = nil

	if h.lib != nil {
		err := h.lib.close()
		h.lib = nil
		if err != nil {
			return err
		}
	}

	Logger().Debug("plugin closed")
	return nil
}
