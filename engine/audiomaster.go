//go:build linux || darwin

package engine

// #include "vsthost.h"
import "C"

import (
	"sync"
	"unsafe"

	"github.com/hq9000/vsthost/vst"
)

// AudioMaster is the host-side callback a plugin may invoke at any point,
// including from inside the entry function before its descriptor exists.
// Return zero for opcodes the host does not implement.
type AudioMaster func(opcode vst.HostOpcode, index int32, value int64, ptr unsafe.Pointer, opt float32) int64

// masters routes the single exported C callback symbol to the Go callback
// registered for the calling descriptor. The pending slot covers callbacks
// made during the entry function, before the descriptor pointer is known;
// loads are serialized under loadMu so one pending slot suffices.
var masters = struct {
	sync.Mutex
	byEffect map[unsafe.Pointer]AudioMaster
	pending  AudioMaster
}{byEffect: make(map[unsafe.Pointer]AudioMaster)}

// loadMu serializes entry-function invocations across the process.
var loadMu sync.Mutex

func registerMaster(effect unsafe.Pointer, cb AudioMaster) {
	masters.Lock()
	defer masters.Unlock()
	masters.byEffect[effect] = cb
}

func unregisterMaster(effect unsafe.Pointer) {
	masters.Lock()
	defer masters.Unlock()
	delete(masters.byEffect, effect)
}

func setPendingMaster(cb AudioMaster) {
	masters.Lock()
	defer masters.Unlock()
	masters.pending = cb
}

func lookupMaster(effect unsafe.Pointer) AudioMaster {
	masters.Lock()
	defer masters.Unlock()
	if cb, ok := masters.byEffect[effect]; ok {
		return cb
	}
	return masters.pending
}

//export vsthostAudioMaster
func vsthostAudioMaster(effect *C.AEffect, opcode C.int32_t, index C.int32_t, value C.intptr_t, ptr unsafe.Pointer, opt C.float) C.intptr_t {
	cb := lookupMaster(unsafe.Pointer(effect))
	if cb == nil {
		// No handler wired up. Answer the version probe so plugins that
		// refuse to initialize against a silent host still come up.
		if vst.HostOpcode(opcode) == vst.AudioMasterVersion {
			return C.intptr_t(vst.Version)
		}
		return 0
	}
	return C.intptr_t(cb(vst.HostOpcode(opcode), int32(index), int64(value), ptr, float32(opt)))
}
