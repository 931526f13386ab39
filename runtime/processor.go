//go:build linux || darwin

package runtime

import (
	"github.com/hq9000/vsthost/engine"
	"github.com/hq9000/vsthost/errors"
)

// PrecisionChoice selects the sample precision of a convenience Process
// call.
type PrecisionChoice int

const (
	// PrecisionAuto uses the input buffer's precision when an input is
	// given, otherwise the highest precision the plugin supports.
	PrecisionAuto PrecisionChoice = iota
	PrecisionSingle
	PrecisionDouble
)

// ProcessConfig describes one convenience Process call.
type ProcessConfig struct {
	// Frames is the block length. Required when Input is nil; when both
	// are set they must agree, with Input winning on zero Frames.
	Frames int
	// Input supplies the plugin's input channels. nil renders against a
	// freshly zeroed input block.
	Input *engine.Buffer
	// Precision picks the processing pointer, PrecisionAuto by default.
	Precision PrecisionChoice
}

// ProcessInto renders one block into caller-owned buffers, allocating
// nothing. in may be nil; the plugin then receives a null input pointer
// array. Channel counts must equal the descriptor's declared counts for
// each direction, read fresh for this call.
func (p *Plugin) ProcessInto(out, in *engine.Buffer) error {
	if out == nil {
		return errors.InvalidInput(errors.PhaseProcess, "nil output buffer")
	}
	if got, want := out.NumChannels(), int(p.NumOutputs()); got != want {
		return errors.ChannelCountMismatch("output", got, want)
	}
	if in != nil {
		if got, want := in.NumChannels(), int(p.NumInputs()); got != want {
			return errors.ChannelCountMismatch("input", got, want)
		}
	}
	return p.handle.ProcessReplacing(out, in)
}

// Process is the allocating convenience path: it renders one block and
// returns a freshly allocated output buffer of shape (numOutputs, frames).
// When cfg.Input is nil a zeroed input block of the plugin's declared input
// count is allocated for the call and freed before returning.
//
// The caller owns the returned buffer; Free it when done (a finalizer
// covers buffers that are simply dropped).
func (p *Plugin) Process(cfg ProcessConfig) (*engine.Buffer, error) {
	frames := cfg.Frames
	if cfg.Input != nil {
		if frames == 0 {
			frames = cfg.Input.Frames()
		} else if frames != cfg.Input.Frames() {
			return nil, errors.InvalidInput(errors.PhaseProcess,
				"frame count %d disagrees with input length %d", frames, cfg.Input.Frames())
		}
	}
	if frames <= 0 {
		return nil, errors.MissingSampleFrames()
	}

	precision, err := p.resolvePrecision(cfg)
	if err != nil {
		return nil, err
	}

	in := cfg.Input
	if in == nil {
		silent, err := engine.NewBuffer(precision, int(p.NumInputs()), frames)
		if err != nil {
			return nil, err
		}
		defer silent.Free()
		in = silent
	}

	out, err := engine.NewBuffer(precision, int(p.NumOutputs()), frames)
	if err != nil {
		return nil, err
	}
	if err := p.ProcessInto(out, in); err != nil {
		out.Free()
		return nil, err
	}
	return out, nil
}

func (p *Plugin) resolvePrecision(cfg ProcessConfig) (engine.Precision, error) {
	switch cfg.Precision {
	case PrecisionSingle:
		return engine.Single, nil
	case PrecisionDouble:
		return engine.Double, nil
	case PrecisionAuto:
		if cfg.Input != nil {
			return cfg.Input.Precision(), nil
		}
		if p.CanDoubleReplacing() {
			return engine.Double, nil
		}
		return engine.Single, nil
	default:
		return 0, errors.UnsupportedSampleType("precision choice %d", cfg.Precision)
	}
}
