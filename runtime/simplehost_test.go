//go:build linux || darwin

package runtime_test

import (
	stderrors "errors"
	"math"
	"testing"
	"time"

	"github.com/hq9000/vsthost/analysis"
	"github.com/hq9000/vsthost/errors"
	"github.com/hq9000/vsthost/midi"
	"github.com/hq9000/vsthost/runtime"
	"github.com/hq9000/vsthost/testbed"
)

func newResumedHost(t *testing.T) *runtime.SimpleHost {
	t.Helper()
	sh := runtime.NewSimpleHost(runtime.WithSampleRate(44100), runtime.WithBlockSize(512))
	if err := sh.AttachPlugin(testbed.SynthEntry()); err != nil {
		t.Fatalf("attach: %v", err)
	}
	t.Cleanup(func() {
		if sh.State() != runtime.StateClosed {
			_ = sh.Close()
		}
	})
	if err := sh.Open(); err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := sh.Resume(); err != nil {
		t.Fatalf("resume: %v", err)
	}
	return sh
}

func TestSimpleHostLifecycle(t *testing.T) {
	sh := runtime.NewSimpleHost()

	if sh.State() != runtime.StateUnloaded {
		t.Fatalf("initial state = %v, want unloaded", sh.State())
	}
	if err := sh.Open(); !stderrors.Is(err, &errors.Error{Phase: errors.PhaseState, Kind: errors.KindBadTransition}) {
		t.Fatalf("Open before load = %v, want bad_transition", err)
	}

	if err := sh.AttachPlugin(testbed.SynthEntry()); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if err := sh.AttachPlugin(testbed.SynthEntry()); err == nil {
		t.Fatal("expected second attach to fail")
	}
	if err := sh.Suspend(); err == nil {
		t.Fatal("expected suspend before open to fail")
	}

	if err := sh.Open(); err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := sh.Resume(); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if err := sh.Suspend(); err != nil {
		t.Fatalf("suspend: %v", err)
	}
	if err := sh.Resume(); err != nil {
		t.Fatalf("resume after suspend: %v", err)
	}
	if err := sh.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if sh.State() != runtime.StateClosed {
		t.Fatalf("state after close = %v, want closed", sh.State())
	}
	if err := sh.Close(); err == nil {
		t.Fatal("expected second close to fail")
	}
}

func TestPlayNoteRequiresResumed(t *testing.T) {
	sh := runtime.NewSimpleHost()
	if err := sh.AttachPlugin(testbed.SynthEntry()); err != nil {
		t.Fatalf("attach: %v", err)
	}
	defer sh.Close()
	if err := sh.Open(); err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, err := sh.PlayNote(69, 100*time.Millisecond); err == nil {
		t.Fatal("expected PlayNote before resume to fail")
	}
}

func TestPlayNoteRendersTheNote(t *testing.T) {
	const (
		rate = 44100.0
		note = 69 // A4, 440 Hz
	)
	sh := newResumedHost(t)

	audio, err := sh.PlayNote(note, 250*time.Millisecond)
	if err != nil {
		t.Fatalf("PlayNote: %v", err)
	}

	if len(audio) != 2 {
		t.Fatalf("rendered %d channels, want 2", len(audio))
	}
	minFrames := int(0.25 * rate)
	if len(audio[0]) < minFrames {
		t.Fatalf("rendered %d frames, want at least %d", len(audio[0]), minFrames)
	}
	if len(audio[0]) != len(audio[1]) {
		t.Fatalf("channel lengths differ: %d vs %d", len(audio[0]), len(audio[1]))
	}

	if rms := analysis.RMS(audio[0]); rms == 0 {
		t.Fatal("rendered note is silent")
	}

	got, err := analysis.DominantFrequency(audio[0], rate)
	if err != nil {
		t.Fatalf("DominantFrequency: %v", err)
	}
	want := midi.NoteFrequency(note)
	if tol := analysis.BinWidth(len(audio[0]), rate); math.Abs(got-want) > tol {
		t.Fatalf("dominant frequency = %g Hz, want %g within %g", got, want, tol)
	}
}

func TestPlayNoteTracksThePitch(t *testing.T) {
	const rate = 44100.0
	sh := newResumedHost(t)

	for _, note := range []uint8{57, 69, 81} {
		audio, err := sh.PlayNote(note, 200*time.Millisecond)
		if err != nil {
			t.Fatalf("PlayNote(%d): %v", note, err)
		}
		got, err := analysis.DominantFrequency(audio[0], rate)
		if err != nil {
			t.Fatalf("DominantFrequency: %v", err)
		}
		want := midi.NoteFrequency(note)
		if tol := analysis.BinWidth(len(audio[0]), rate); math.Abs(got-want) > tol {
			t.Fatalf("note %d: dominant frequency = %g Hz, want %g within %g", note, got, want, tol)
		}
	}
}
