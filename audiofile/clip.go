// Package audiofile reads audio files into channel-major float32 frames,
// the shape the processing paths consume, and writes rendered audio back
// out as WAV. Supported inputs: WAV (PCM), MP3 and Ogg Vorbis.
package audiofile

import "github.com/hq9000/vsthost/errors"

// Clip is decoded audio: one float32 slice per channel, all of equal
// length, normalized to [-1, 1].
type Clip struct {
	SampleRate int
	Channels   [][]float32
}

// NumChannels returns the channel count.
func (c *Clip) NumChannels() int { return len(c.Channels) }

// Frames returns the per-channel sample count.
func (c *Clip) Frames() int {
	if len(c.Channels) == 0 {
		return 0
	}
	return len(c.Channels[0])
}

// deinterleave splits interleaved samples into channel-major form. A
// trailing partial frame is dropped.
func deinterleave(samples []float32, channels int) [][]float32 {
	frames := len(samples) / channels
	out := make([][]float32, channels)
	for ch := range out {
		out[ch] = make([]float32, frames)
	}
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			out[ch][i] = samples[i*channels+ch]
		}
	}
	return out
}

func newClip(samples []float32, channels, sampleRate int) (*Clip, error) {
	if channels <= 0 {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidInput, "%d channels", channels)
	}
	return &Clip{SampleRate: sampleRate, Channels: deinterleave(samples, channels)}, nil
}
