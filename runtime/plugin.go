//go:build linux || darwin

package runtime

import (
	"unsafe"

	"github.com/hq9000/vsthost/engine"
	"github.com/hq9000/vsthost/midi"
	"github.com/hq9000/vsthost/vst"
)

// Plugin is a loaded plugin with the full host-facing API. It owns the
// underlying handle; Close releases it. Not safe for concurrent use.
type Plugin struct {
	handle *engine.Handle
}

// Load opens the shared object at path and instantiates the plugin against
// host (nil for a bare version-probe host).
func Load(path string, host Host, opts ...engine.Option) (*Plugin, error) {
	h, err := engine.Load(path, masterFor(host), opts...)
	if err != nil {
		return nil, err
	}
	return &Plugin{handle: h}, nil
}

// Attach instantiates a plugin from an in-process entry function, see
// engine.Attach.
func Attach(entry unsafe.Pointer, host Host, opts ...engine.Option) (*Plugin, error) {
	h, err := engine.Attach(entry, masterFor(host), opts...)
	if err != nil {
		return nil, err
	}
	return &Plugin{handle: h}, nil
}

// Handle exposes the underlying low-level handle.
func (p *Plugin) Handle() *engine.Handle { return p.handle }

// Open dispatches the plugin's open transition. Must precede configuration
// and processing.
func (p *Plugin) Open() {
	p.handle.Dispatch(vst.EffOpen, 0, 0, nil, 0)
}

// Resume turns audio processing on (mains changed, value 1).
func (p *Plugin) Resume() {
	p.handle.Dispatch(vst.EffMainsChanged, 0, 1, nil, 0)
}

// Suspend turns audio processing off (mains changed, value 0).
func (p *Plugin) Suspend() {
	p.handle.Dispatch(vst.EffMainsChanged, 0, 0, nil, 0)
}

// SetSampleRate configures the sample rate in Hz.
func (p *Plugin) SetSampleRate(rate float64) { p.handle.SetSampleRate(rate) }

// SetBlockSize configures the maximum frames per process call.
func (p *Plugin) SetBlockSize(frames int32) { p.handle.SetBlockSize(frames) }

// Close releases the plugin and its library.
func (p *Plugin) Close() error { return p.handle.Close() }

// Parameter values move through the descriptor's direct function pointers.
// Indexes are assumed caller-valid; the ABI defines no bounds reporting on
// this path.

// ParamValue returns the normalized value of parameter index.
func (p *Plugin) ParamValue(index int32) float32 { return p.handle.GetParameter(index) }

// SetParamValue sets the normalized value of parameter index.
func (p *Plugin) SetParamValue(index int32, value float32) {
	p.handle.SetParameter(index, value)
}

// ParamName returns the display name of parameter index.
func (p *Plugin) ParamName(index int32) string {
	return p.handle.DispatchString(vst.EffGetParamName, index)
}

// ParamLabel returns the unit label of parameter index, often empty.
func (p *Plugin) ParamLabel(index int32) string {
	return p.handle.DispatchString(vst.EffGetParamLabel, index)
}

// ParamDisplay returns the plugin's own formatting of parameter index's
// current value.
func (p *Plugin) ParamDisplay(index int32) string {
	return p.handle.DispatchString(vst.EffGetParamDisplay, index)
}

// ParamProperties queries the extended properties of parameter index.
// supported reports whether the plugin implements the query for this index;
// when false the struct contents are meaningless and must not be read.
func (p *Plugin) ParamProperties(index int32) (props vst.ParameterProperties, supported bool) {
	ret := p.handle.Dispatch(vst.EffGetParameterProperties, index, 0, unsafe.Pointer(&props), 0)
	return props, ret != 0
}

// InputProperties queries the pin properties of input channel index, with
// the same supported/opaque contract as ParamProperties.
func (p *Plugin) InputProperties(index int32) (props vst.PinProperties, supported bool) {
	ret := p.handle.Dispatch(vst.EffGetInputProperties, index, 0, unsafe.Pointer(&props), 0)
	return props, ret != 0
}

// OutputProperties queries the pin properties of output channel index.
func (p *Plugin) OutputProperties(index int32) (props vst.PinProperties, supported bool) {
	ret := p.handle.Dispatch(vst.EffGetOutputProperties, index, 0, unsafe.Pointer(&props), 0)
	return props, ret != 0
}

// Name returns the plugin's effect name.
func (p *Plugin) Name() string {
	return p.handle.DispatchString(vst.EffGetEffectName, 0)
}

// Vendor returns the plugin's vendor string.
func (p *Plugin) Vendor() string {
	return p.handle.DispatchString(vst.EffGetVendorString, 0)
}

// Category returns the plugin's category hint.
func (p *Plugin) Category() vst.PlugCategory {
	return vst.PlugCategory(p.handle.Dispatch(vst.EffGetPlugCategory, 0, 0, nil, 0))
}

// NumMidiInputChannels returns the plugin's reported MIDI input channel
// count, zero for none.
func (p *Plugin) NumMidiInputChannels() int32 {
	return int32(p.handle.Dispatch(vst.EffGetNumMidiInputChannels, 0, 0, nil, 0))
}

// NumMidiOutputChannels returns the plugin's reported MIDI output channel
// count.
func (p *Plugin) NumMidiOutputChannels() int32 {
	return int32(p.handle.Dispatch(vst.EffGetNumMidiOutputChannels, 0, 0, nil, 0))
}

// Descriptor accessors, read fresh per call.

func (p *Plugin) NumParams() int32    { return p.handle.NumParams() }
func (p *Plugin) NumPrograms() int32  { return p.handle.NumPrograms() }
func (p *Plugin) NumInputs() int32    { return p.handle.NumInputs() }
func (p *Plugin) NumOutputs() int32   { return p.handle.NumOutputs() }
func (p *Plugin) InitialDelay() int32 { return p.handle.InitialDelay() }
func (p *Plugin) UniqueID() int32     { return p.handle.UniqueID() }
func (p *Plugin) Version() int32      { return p.handle.PluginVersion() }
func (p *Plugin) VSTVersion() int64   { return p.handle.VSTVersion() }

// IsSynth reports the descriptor's synth capability bit.
func (p *Plugin) IsSynth() bool { return p.handle.IsSynth() }

// CanDoubleReplacing reports whether 64-bit processing is available.
func (p *Plugin) CanDoubleReplacing() bool { return p.handle.CanDoubleReplacing() }

// SendEvents delivers MIDI events for the next process call.
func (p *Plugin) SendEvents(events []midi.Event) error {
	return p.handle.SendEvents(events)
}
