//go:build linux || darwin

package runtime_test

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/hq9000/vsthost/analysis"
	"github.com/hq9000/vsthost/engine"
	"github.com/hq9000/vsthost/errors"
	"github.com/hq9000/vsthost/midi"
	"github.com/hq9000/vsthost/runtime"
	"github.com/hq9000/vsthost/testbed"
	"github.com/hq9000/vsthost/vst"
)

func attachSynth(t *testing.T) *runtime.Plugin {
	t.Helper()
	p, err := runtime.Attach(testbed.SynthEntry(), runtime.MinimalHost{})
	if err != nil {
		t.Fatalf("attach synth fixture: %v", err)
	}
	t.Cleanup(func() {
		if p.Handle().Loaded() {
			_ = p.Close()
		}
	})
	return p
}

func openAndResume(t *testing.T, p *runtime.Plugin) {
	t.Helper()
	p.Open()
	p.SetSampleRate(44100)
	p.SetBlockSize(512)
	p.Resume()
}

func TestParameterBridge(t *testing.T) {
	p := attachSynth(t)

	if got := p.ParamName(0); got != "Gain" {
		t.Fatalf("ParamName(0) = %q, want Gain", got)
	}
	if got := p.ParamLabel(0); got != "dB" {
		t.Fatalf("ParamLabel(0) = %q, want dB", got)
	}
	if got := p.ParamName(1); got != "Decay" {
		t.Fatalf("ParamName(1) = %q, want Decay", got)
	}

	// Values that are exactly representable round-trip exactly.
	p.SetParamValue(0, 0.5)
	if got := p.ParamValue(0); got != 0.5 {
		t.Fatalf("ParamValue(0) = %g, want 0.5", got)
	}

	// Arbitrary values round-trip within a small tolerance.
	for i := int32(0); i < p.NumParams(); i++ {
		want := float32(0.1) * float32(i+1)
		p.SetParamValue(i, want)
		if got := p.ParamValue(i); math.Abs(float64(got-want)) > 1e-5 {
			t.Fatalf("ParamValue(%d) = %g, want %g within 1e-5", i, got, want)
		}
	}

	if got := p.ParamDisplay(0); got == "" {
		t.Fatal("ParamDisplay(0) returned an empty string")
	}
}

func TestParameterProperties(t *testing.T) {
	p := attachSynth(t)

	props, supported := p.ParamProperties(0)
	if !supported {
		t.Fatal("properties query for parameter 0 reported unsupported")
	}
	if got := props.LabelString(); got != "Gain" {
		t.Fatalf("properties label = %q, want Gain", got)
	}
	if props.StepFloat == 0 {
		t.Fatal("properties step not populated")
	}

	// The fixture declines every other index; the struct contents must
	// not be interpreted then.
	if _, supported := p.ParamProperties(1); supported {
		t.Fatal("properties query for parameter 1 reported supported")
	}
}

func TestPinProperties(t *testing.T) {
	p := attachSynth(t)

	props, supported := p.OutputProperties(0)
	if !supported {
		t.Fatal("output pin 0 reported unsupported")
	}
	if got := props.LabelString(); got != "Out 1" {
		t.Fatalf("output pin label = %q, want Out 1", got)
	}
	if props.Flags&vst.PinIsActive == 0 {
		t.Fatal("output pin not flagged active")
	}

	if _, supported := p.OutputProperties(99); supported {
		t.Fatal("out-of-range output pin reported supported")
	}
	// The synth declares no inputs.
	if _, supported := p.InputProperties(0); supported {
		t.Fatal("input pin on a zero-input synth reported supported")
	}
}

func TestCapabilityQueries(t *testing.T) {
	p := attachSynth(t)

	if got := p.Category(); got != vst.CategorySynth {
		t.Fatalf("Category = %v, want synth", got)
	}
	if got := p.NumMidiInputChannels(); got != 1 {
		t.Fatalf("NumMidiInputChannels = %d, want 1", got)
	}
	if got := p.NumMidiOutputChannels(); got != 0 {
		t.Fatalf("NumMidiOutputChannels = %d, want 0", got)
	}
	if got := p.Name(); got != "Test Synth" {
		t.Fatalf("Name = %q, want Test Synth", got)
	}
	if !p.IsSynth() {
		t.Fatal("IsSynth = false")
	}
}

func TestProcessShape(t *testing.T) {
	p := attachSynth(t)
	openAndResume(t, p)

	for _, frames := range []int{1, 64, 500, 4096} {
		out, err := p.Process(runtime.ProcessConfig{Frames: frames, Precision: runtime.PrecisionSingle})
		if err != nil {
			t.Fatalf("Process(%d frames): %v", frames, err)
		}
		if out.NumChannels() != 2 || out.Frames() != frames {
			t.Fatalf("output shape = (%d, %d), want (2, %d)", out.NumChannels(), out.Frames(), frames)
		}
		out.Free()
	}
}

func TestProcessPrecisionAuto(t *testing.T) {
	p := attachSynth(t)
	openAndResume(t, p)

	// Auto picks the plugin's best precision when no input pins it down.
	out, err := p.Process(runtime.ProcessConfig{Frames: 64})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	defer out.Free()
	if out.Precision() != engine.Double {
		t.Fatalf("auto precision = %v, want float64", out.Precision())
	}
}

func TestProcessMissingSampleFrames(t *testing.T) {
	p := attachSynth(t)

	_, err := p.Process(runtime.ProcessConfig{})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseProcess, Kind: errors.KindMissingSampleFrames}) {
		t.Fatalf("error = %v, want missing_sample_frames", err)
	}
}

func TestProcessDoubleUnsupported(t *testing.T) {
	p, err := runtime.Attach(testbed.SinglePrecisionSynthEntry(), runtime.MinimalHost{})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	defer p.Close()
	openAndResume(t, p)

	_, err = p.Process(runtime.ProcessConfig{Frames: 64, Precision: runtime.PrecisionDouble})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseProcess, Kind: errors.KindPrecisionNotSupported}) {
		t.Fatalf("error = %v, want precision_not_supported", err)
	}

	// Auto degrades to single against the same plugin.
	out, err := p.Process(runtime.ProcessConfig{Frames: 64})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	defer out.Free()
	if out.Precision() != engine.Single {
		t.Fatalf("auto precision = %v, want float32", out.Precision())
	}
}

func TestProcessIntoChannelMismatch(t *testing.T) {
	p, err := runtime.Attach(testbed.GainEntry(), runtime.MinimalHost{})
	if err != nil {
		t.Fatalf("attach gain fixture: %v", err)
	}
	defer p.Close()
	openAndResume(t, p)

	mono, err := engine.NewBuffer(engine.Single, 1, 32)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	defer mono.Free()
	stereo, err := engine.NewBuffer(engine.Single, 2, 32)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	defer stereo.Free()

	err = p.ProcessInto(mono, nil)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseProcess, Kind: errors.KindChannelCountMismatch}) {
		t.Fatalf("output mismatch error = %v, want channel_count_mismatch", err)
	}
	err = p.ProcessInto(stereo, mono)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseProcess, Kind: errors.KindChannelCountMismatch}) {
		t.Fatalf("input mismatch error = %v, want channel_count_mismatch", err)
	}
}

func TestProcessWithInput(t *testing.T) {
	p, err := runtime.Attach(testbed.GainEntry(), runtime.MinimalHost{})
	if err != nil {
		t.Fatalf("attach gain fixture: %v", err)
	}
	defer p.Close()
	openAndResume(t, p)
	p.SetParamValue(0, 0.25)

	in, err := engine.NewBuffer(engine.Single, 2, 16)
	if err != nil {
		t.Fatalf("allocate input: %v", err)
	}
	defer in.Free()
	for ch := range in.Float32() {
		for i := range in.Float32()[ch] {
			in.Float32()[ch][i] = 1
		}
	}

	out, err := p.Process(runtime.ProcessConfig{Input: in})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	defer out.Free()

	if out.Precision() != engine.Single {
		t.Fatalf("precision = %v, want input-matched float32", out.Precision())
	}
	if got := out.Float32()[0][7]; got != 0.25 {
		t.Fatalf("processed sample = %g, want 0.25", got)
	}
}

func TestSendEventsDrivesNotes(t *testing.T) {
	p := attachSynth(t)
	openAndResume(t, p)

	if err := p.SendEvents([]midi.Event{midi.NoteOn(0, 60, 127)}); err != nil {
		t.Fatalf("send events: %v", err)
	}
	out, err := p.Process(runtime.ProcessConfig{Frames: 512, Precision: runtime.PrecisionSingle})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	defer out.Free()
	if analysis.RMS(out.Float32()[0]) == 0 {
		t.Fatal("note-on produced silence")
	}

	if err := p.SendEvents([]midi.Event{midi.NoteOff(0, 60)}); err != nil {
		t.Fatalf("send note off: %v", err)
	}
	tail, err := p.Process(runtime.ProcessConfig{Frames: 512, Precision: runtime.PrecisionSingle})
	if err != nil {
		t.Fatalf("Process after note off: %v", err)
	}
	defer tail.Free()
	if analysis.RMS(tail.Float32()[0]) != 0 {
		t.Fatal("fixture still sounding after note off")
	}
}
