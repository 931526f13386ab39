//go:build linux || darwin

package runtime

import (
	"unsafe"

	"github.com/hq9000/vsthost/engine"
	"github.com/hq9000/vsthost/vst"
)

// Host answers the callbacks a plugin makes into its host. Implementations
// must return zero for any opcode they do not handle; plugins treat zero as
// "not supported" and carry on.
//
// Callback may be invoked during Load, before the plugin's descriptor
// exists, and from any later dispatch or process call.
type Host interface {
	Callback(opcode vst.HostOpcode, index int32, value int64, ptr unsafe.Pointer, opt float32) int64
}

// MinimalHost is the smallest host a plugin will initialize against: it
// answers the version probe with the protocol version this host targets and
// declines everything else.
type MinimalHost struct{}

func (MinimalHost) Callback(opcode vst.HostOpcode, index int32, value int64, ptr unsafe.Pointer, opt float32) int64 {
	if opcode == vst.AudioMasterVersion {
		return vst.Version
	}
	return 0
}

// masterFor adapts a Host to the engine's callback function type. A nil
// host falls back to the engine's built-in version-probe answer.
func masterFor(host Host) engine.AudioMaster {
	if host == nil {
		return nil
	}
	return func(opcode vst.HostOpcode, index int32, value int64, ptr unsafe.Pointer, opt float32) int64 {
		return host.Callback(opcode, index, value, ptr, opt)
	}
}
