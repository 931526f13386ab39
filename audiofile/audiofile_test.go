package audiofile

import (
	"bytes"
	"math"
	"path/filepath"
	"testing"
)

func testClip(t *testing.T, channels, frames int) *Clip {
	t.Helper()
	clip := &Clip{SampleRate: 44100, Channels: make([][]float32, channels)}
	for ch := range clip.Channels {
		clip.Channels[ch] = make([]float32, frames)
		for i := range clip.Channels[ch] {
			phase := 2 * math.Pi * 440 * float64(i) / 44100
			clip.Channels[ch][i] = float32(0.5 * math.Sin(phase))
		}
	}
	return clip
}

func TestWAVRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	clip := testClip(t, 2, 4410)

	if err := SaveWAV(path, clip); err != nil {
		t.Fatalf("save WAV: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load WAV: %v", err)
	}

	if got.SampleRate != clip.SampleRate {
		t.Fatalf("sample rate = %d, want %d", got.SampleRate, clip.SampleRate)
	}
	if got.NumChannels() != clip.NumChannels() {
		t.Fatalf("channels = %d, want %d", got.NumChannels(), clip.NumChannels())
	}
	if got.Frames() != clip.Frames() {
		t.Fatalf("frames = %d, want %d", got.Frames(), clip.Frames())
	}
	for ch := range clip.Channels {
		for i := range clip.Channels[ch] {
			want := clip.Channels[ch][i]
			if diff := math.Abs(float64(got.Channels[ch][i] - want)); diff > 1.0/32000 {
				t.Fatalf("channel %d frame %d: %g, want %g within 16-bit quantization", ch, i, got.Channels[ch][i], want)
			}
		}
	}
}

func TestLoadUnknownExtension(t *testing.T) {
	if _, err := Load("plugin.flac"); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestDecodeWAVRejectsGarbage(t *testing.T) {
	if _, err := DecodeWAV(bytes.NewReader(make([]byte, 128))); err == nil {
		t.Fatal("expected error for a non-WAV stream")
	}
}

func TestSaveWAVRejectsEmptyClip(t *testing.T) {
	if err := SaveWAV(filepath.Join(t.TempDir(), "out.wav"), &Clip{SampleRate: 44100}); err == nil {
		t.Fatal("expected error for an empty clip")
	}
}

func TestDeinterleaveDropsPartialFrame(t *testing.T) {
	chans := deinterleave([]float32{1, 2, 3, 4, 5}, 2)
	if len(chans) != 2 || len(chans[0]) != 2 || len(chans[1]) != 2 {
		t.Fatalf("unexpected shape %dx%d", len(chans), len(chans[0]))
	}
	if chans[0][0] != 1 || chans[1][0] != 2 || chans[0][1] != 3 || chans[1][1] != 4 {
		t.Fatalf("unexpected layout %v", chans)
	}
}
