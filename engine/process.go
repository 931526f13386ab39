//go:build linux || darwin

package engine

// #include "vsthost.h"
import "C"

import (
	"runtime"

	"github.com/hq9000/vsthost/errors"
	"github.com/hq9000/vsthost/vst"
)

// ProcessReplacing renders one block through the process pointer selected by
// out's precision. in may be nil; the plugin then receives a null input
// pointer array, with whatever semantics it defines for that.
//
// The engine validates only what the foreign call cannot survive: a live
// descriptor, matching buffer precisions, and the double-precision
// capability flag. Channel-count policy lives a layer up.
func (h *Handle) ProcessReplacing(out, in *Buffer) error {
	if !h.Loaded() {
		return errors.NotLoaded(errors.PhaseProcess, "plugin")
	}
	if out == nil {
		return errors.InvalidInput(errors.PhaseProcess, "nil output buffer")
	}
	if in != nil && in.precision != out.precision {
		return errors.UnsupportedSampleType("input is %s but output is %s", in.precision, out.precision)
	}

	frames := C.int32_t(out.frames)

	restore := h.quiet()
	defer restore()

	switch out.precision {
	case Single:
		var ip **C.float
		if in != nil {
			ip = (**C.float)(in.channelPtrs())
		}
		C.vsthost_process_f32(h.effect, ip, (**C.float)(out.channelPtrs()), frames)
	case Double:
		if !h.CanDoubleReplacing() {
			return errors.PrecisionNotSupported()
		}
		var ip **C.double
		if in != nil {
			ip = (**C.double)(in.channelPtrs())
		}
		C.vsthost_process_f64(h.effect, ip, (**C.double)(out.channelPtrs()), frames)
	default:
		return errors.UnsupportedSampleType("precision %d", out.precision)
	}

	// The buffers' finalizers free the C sample blocks; keep both Go values
	// reachable until the plugin has returned.
	runtime.KeepAlive(out)
	runtime.KeepAlive(in)
	return nil
}

// SetSampleRate configures the plugin's sample rate in Hz.
func (h *Handle) SetSampleRate(rate float64) {
	h.Dispatch(vst.EffSetSampleRate, 0, 0, nil, float32(rate))
}

// SetBlockSize configures the maximum frames per process call.
func (h *Handle) SetBlockSize(frames int32) {
	h.Dispatch(vst.EffSetBlockSize, 0, int64(frames), nil, 0)
}
