//go:build linux || darwin

package runtime

import (
	"time"
	"unsafe"

	"go.uber.org/zap"

	"github.com/hq9000/vsthost/engine"
	"github.com/hq9000/vsthost/errors"
	"github.com/hq9000/vsthost/midi"
)

// State is a SimpleHost lifecycle state.
type State int32

const (
	StateUnloaded State = iota
	StateLoaded
	StateOpened
	StateResumed
	StateSuspended
	StateClosed
)

var stateNames = map[State]string{
	StateUnloaded:  "unloaded",
	StateLoaded:    "loaded",
	StateOpened:    "opened",
	StateResumed:   "resumed",
	StateSuspended: "suspended",
	StateClosed:    "closed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// SimpleHost drives one plugin through the common session: load, open,
// resume, play notes, suspend, close. It enforces the transition order
// Unloaded to Loaded to Opened to Resumed/Suspended to Closed; processing
// outside Resumed is the plugin's own business and is not policed here.
//
// Not safe for concurrent use.
type SimpleHost struct {
	plugin     *Plugin
	state      State
	host       Host
	sampleRate float64
	blockSize  int32
	verbose    bool
}

// SimpleHostOption configures a SimpleHost at construction.
type SimpleHostOption func(*SimpleHost)

// WithSampleRate sets the session sample rate in Hz. Default 44100.
func WithSampleRate(rate float64) SimpleHostOption {
	return func(sh *SimpleHost) { sh.sampleRate = rate }
}

// WithBlockSize sets the maximum frames per process call. Default 512.
func WithBlockSize(frames int32) SimpleHostOption {
	return func(sh *SimpleHost) { sh.blockSize = frames }
}

// WithHost injects the callback implementation handed to the plugin at
// load. Default MinimalHost.
func WithHost(host Host) SimpleHostOption {
	return func(sh *SimpleHost) { sh.host = host }
}

// WithVerbose leaves plugin stdio uncaptured.
func WithVerbose(verbose bool) SimpleHostOption {
	return func(sh *SimpleHost) { sh.verbose = verbose }
}

// NewSimpleHost returns an Unloaded host with the given session settings.
func NewSimpleHost(opts ...SimpleHostOption) *SimpleHost {
	sh := &SimpleHost{
		state:      StateUnloaded,
		host:       MinimalHost{},
		sampleRate: 44100,
		blockSize:  512,
	}
	for _, opt := range opts {
		opt(sh)
	}
	return sh
}

// State returns the current lifecycle state.
func (sh *SimpleHost) State() State { return sh.state }

// Plugin returns the loaded plugin, nil before LoadPlugin.
func (sh *SimpleHost) Plugin() *Plugin { return sh.plugin }

// SampleRate returns the session sample rate.
func (sh *SimpleHost) SampleRate() float64 { return sh.sampleRate }

// BlockSize returns the session block size.
func (sh *SimpleHost) BlockSize() int32 { return sh.blockSize }

func (sh *SimpleHost) transition(from, to State) error {
	if sh.state != from {
		return errors.BadTransition(sh.state.String(), to.String())
	}
	sh.state = to
	return nil
}

// LoadPlugin moves Unloaded to Loaded by loading the shared object at path.
func (sh *SimpleHost) LoadPlugin(path string) error {
	if sh.state != StateUnloaded {
		return errors.BadTransition(sh.state.String(), StateLoaded.String())
	}
	p, err := Load(path, sh.host, engine.WithVerbose(sh.verbose))
	if err != nil {
		return err
	}
	sh.plugin = p
	sh.state = StateLoaded
	Logger().Info("plugin loaded",
		zap.String("path", path),
		zap.String("name", p.Name()),
		zap.Int32("numParams", p.NumParams()))
	return nil
}

// AttachPlugin moves Unloaded to Loaded from an in-process entry function.
func (sh *SimpleHost) AttachPlugin(entry unsafe.Pointer) error {
	if sh.state != StateUnloaded {
		return errors.BadTransition(sh.state.String(), StateLoaded.String())
	}
	p, err := Attach(entry, sh.host, engine.WithVerbose(sh.verbose))
	if err != nil {
		return err
	}
	sh.plugin = p
	sh.state = StateLoaded
	return nil
}

// Open moves Loaded to Opened: dispatches the open transition and pushes
// the session's sample rate and block size to the plugin.
func (sh *SimpleHost) Open() error {
	if err := sh.transition(StateLoaded, StateOpened); err != nil {
		return err
	}
	sh.plugin.Open()
	sh.plugin.SetSampleRate(sh.sampleRate)
	sh.plugin.SetBlockSize(sh.blockSize)
	return nil
}

// Resume turns processing on, from Opened or Suspended.
func (sh *SimpleHost) Resume() error {
	if sh.state != StateOpened && sh.state != StateSuspended {
		return errors.BadTransition(sh.state.String(), StateResumed.String())
	}
	sh.plugin.Resume()
	sh.state = StateResumed
	return nil
}

// Suspend turns processing off, symmetric with Resume.
func (sh *SimpleHost) Suspend() error {
	if err := sh.transition(StateResumed, StateSuspended); err != nil {
		return err
	}
	sh.plugin.Suspend()
	return nil
}

// Close dispatches the close transition and releases the library. Valid
// from any state past Unloaded; the host is unusable afterwards.
func (sh *SimpleHost) Close() error {
	if sh.plugin == nil || sh.state == StateClosed {
		return errors.BadTransition(sh.state.String(), StateClosed.String())
	}
	sh.state = StateClosed
	return sh.plugin.Close()
}

// PlayNote renders one note: note-on, ceil(duration * rate / blockSize)
// blocks, note-off, then one release-tail block. The blocks are
// concatenated into a single channel-major float32 buffer of the plugin's
// output channel count.
//
// Processing is only defined while Resumed.
func (sh *SimpleHost) PlayNote(note uint8, duration time.Duration) ([][]float32, error) {
	if sh.state != StateResumed {
		return nil, errors.New(errors.PhaseState, errors.KindBadTransition,
			"cannot play a note while %s, resume first", sh.state)
	}

	totalFrames := int(duration.Seconds() * sh.sampleRate)
	blocks := (totalFrames + int(sh.blockSize) - 1) / int(sh.blockSize)
	if blocks < 1 {
		blocks = 1
	}

	channels := int(sh.plugin.NumOutputs())
	out := make([][]float32, channels)

	render := func() error {
		block, err := sh.plugin.Process(ProcessConfig{
			Frames:    int(sh.blockSize),
			Precision: PrecisionSingle,
		})
		if err != nil {
			return err
		}
		defer block.Free()
		for ch, samples := range block.Float32() {
			out[ch] = append(out[ch], samples...)
		}
		return nil
	}

	if err := sh.plugin.SendEvents([]midi.Event{midi.NoteOn(0, note, 100)}); err != nil {
		return nil, err
	}
	for i := 0; i < blocks; i++ {
		if err := render(); err != nil {
			return nil, err
		}
	}
	if err := sh.plugin.SendEvents([]midi.Event{midi.NoteOff(0, note)}); err != nil {
		return nil, err
	}
	if err := render(); err != nil {
		return nil, err
	}

	Logger().Debug("note rendered",
		zap.Uint8("note", note),
		zap.Duration("duration", duration),
		zap.Int("blocks", blocks+1))
	return out, nil
}
