//go:build linux || darwin

package engine

// #include "vsthost.h"
import "C"

import (
	"runtime"
	"unsafe"

	"github.com/hq9000/vsthost/errors"
)

// Precision selects the sample element type of a Buffer and, through it,
// which of the plugin's two process pointers a call uses.
type Precision int32

const (
	// Single is 32-bit floating point, the baseline every plugin supports.
	Single Precision = iota
	// Double is 64-bit floating point, valid only when the plugin's
	// capability flag advertises it.
	Double
)

func (p Precision) String() string {
	switch p {
	case Single:
		return "float32"
	case Double:
		return "float64"
	default:
		return "invalid"
	}
}

// Valid reports whether p names one of the two ABI sample types.
func (p Precision) Valid() bool { return p == Single || p == Double }

// Buffer is a channel-major audio buffer in the ABI's array-of-per-channel-
// pointer form. Sample memory and the pointer array both live on the C heap,
// so a process call hands the plugin the caller's memory directly, with no
// per-call marshaling and no Go pointers crossing the boundary.
//
// The plugin never retains a pointer past a call's return (ABI contract),
// so one Buffer can be reused across any number of process calls. Free
// releases the C memory; a finalizer covers buffers that are dropped
// without an explicit Free.
type Buffer struct {
	precision Precision
	channels  int
	frames    int

	f32 [][]float32 // channel views over data, Single only
	f64 [][]float64 // channel views over data, Double only

	data unsafe.Pointer // contiguous sample block
	ptrs unsafe.Pointer // per-channel pointer array, ABI form
}

// NewBuffer allocates a zeroed channel-major buffer. channels may be zero
// for plugins that declare no inputs; frames must be positive.
func NewBuffer(precision Precision, channels, frames int) (*Buffer, error) {
	if !precision.Valid() {
		return nil, errors.UnsupportedSampleType("precision %d is neither float32 nor float64", precision)
	}
	if channels < 0 || frames <= 0 {
		return nil, errors.InvalidInput(errors.PhaseProcess, "buffer shape (%d, %d)", channels, frames)
	}

	b := &Buffer{precision: precision, channels: channels, frames: frames}
	if channels == 0 {
		return b, nil
	}

	elemSize := 4
	if precision == Double {
		elemSize = 8
	}

	b.data = C.calloc(C.size_t(channels*frames), C.size_t(elemSize))
	b.ptrs = C.calloc(C.size_t(channels), C.size_t(unsafe.Sizeof(uintptr(0))))
	if b.data == nil || b.ptrs == nil {
		b.Free()
		return nil, errors.New(errors.PhaseProcess, errors.KindInvalidInput, "C allocation failed for shape (%d, %d)", channels, frames)
	}

	ptrs := unsafe.Slice((*unsafe.Pointer)(b.ptrs), channels)
	for ch := 0; ch < channels; ch++ {
		base := unsafe.Add(b.data, ch*frames*elemSize)
		ptrs[ch] = base
		switch precision {
		case Single:
			b.f32 = append(b.f32, unsafe.Slice((*float32)(base), frames))
		case Double:
			b.f64 = append(b.f64, unsafe.Slice((*float64)(base), frames))
		}
	}

	runtime.SetFinalizer(b, (*Buffer).Free)
	return b, nil
}

// Precision returns the buffer's sample element type.
func (b *Buffer) Precision() Precision { return b.precision }

// NumChannels returns the channel count.
func (b *Buffer) NumChannels() int { return b.channels }

// Frames returns the per-channel sample count.
func (b *Buffer) Frames() int { return b.frames }

// Float32 returns the channel views of a Single buffer, nil otherwise.
// The slices alias the C memory the plugin reads and writes.
func (b *Buffer) Float32() [][]float32 { return b.f32 }

// Float64 returns the channel views of a Double buffer, nil otherwise.
func (b *Buffer) Float64() [][]float64 { return b.f64 }

// CopyFloat32 copies src into the buffer's channels. Shapes must match.
func (b *Buffer) CopyFloat32(src [][]float32) error {
	if b.precision != Single {
		return errors.UnsupportedSampleType("cannot copy float32 into a %s buffer", b.precision)
	}
	if len(src) != b.channels {
		return errors.ChannelCountMismatch("source", len(src), b.channels)
	}
	for ch, samples := range src {
		copy(b.f32[ch], samples)
	}
	return nil
}

// Zero clears all samples.
func (b *Buffer) Zero() {
	for _, ch := range b.f32 {
		clear(ch)
	}
	for _, ch := range b.f64 {
		clear(ch)
	}
}

// Free releases the C memory. Safe to call more than once; the buffer is
// unusable afterwards.
func (b *Buffer) Free() {
	if b.data != nil {
		C.free(b.data)
		b.data = nil
	}
	if b.ptrs != nil {
		C.free(b.ptrs)
		b.ptrs = nil
	}
	b.f32, b.f64 = nil, nil
	runtime.SetFinalizer(b, nil)
}

// channelPtrs returns the ABI-form pointer array, nil for zero channels.
func (b *Buffer) channelPtrs() unsafe.Pointer { return b.ptrs }
