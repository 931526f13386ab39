//go:build linux || darwin

package engine

// #include "vsthost.h"
import "C"

import (
	"unsafe"

	"github.com/hq9000/vsthost/errors"
	"github.com/hq9000/vsthost/midi"
	"github.com/hq9000/vsthost/vst"
)

// SendEvents delivers MIDI events to the plugin via EffProcessEvents. The
// event list is marshaled into C memory for the duration of the one
// dispatch call and freed before returning; the ABI guarantees the plugin
// does not keep pointers into it.
func (h *Handle) SendEvents(events []midi.Event) error {
	if !h.Loaded() {
		return errors.NotLoaded(errors.PhaseEvents, "plugin")
	}
	if len(events) == 0 {
		return nil
	}

	evs := C.vsthost_events_alloc(C.int32_t(len(events)))
	if evs == nil {
		return errors.New(errors.PhaseEvents, errors.KindInvalidInput, "C allocation failed for %d events", len(events))
	}
	defer C.vsthost_events_free(evs)

	for i, ev := range events {
		b := ev.Bytes()
		C.vsthost_events_set_midi(evs, C.int32_t(i), C.int32_t(ev.DeltaFrames),
			C.uint8_t(b[0]), C.uint8_t(b[1]), C.uint8_t(b[2]))
	}

	h.Dispatch(vst.EffProcessEvents, 0, 0, unsafe.Pointer(evs), 0)
	return nil
}
