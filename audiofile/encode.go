package audiofile

import (
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/hq9000/vsthost/errors"
)

// SaveWAV writes a clip to path as 16-bit PCM WAV. Samples are clamped to
// [-1, 1] before quantization.
func SaveWAV(path string, clip *Clip) error {
	if clip == nil || clip.NumChannels() == 0 {
		return errors.New(errors.PhaseDecode, errors.KindInvalidInput, "empty clip")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.PhaseDecode, errors.KindInvalidInput, err, path)
	}
	defer f.Close()

	channels := clip.NumChannels()
	frames := clip.Frames()

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: clip.SampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, channels*frames),
	}
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			buf.Data[i*channels+ch] = quantize16(clip.Channels[ch][i])
		}
	}

	enc := wav.NewEncoder(f, clip.SampleRate, 16, channels, 1)
	if err := enc.Write(buf); err != nil {
		enc.Close()
		return errors.Wrap(errors.PhaseDecode, errors.KindInvalidInput, err, "WAV write")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(errors.PhaseDecode, errors.KindInvalidInput, err, "WAV finalize")
	}
	return nil
}

func quantize16(s float32) int {
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	return int(s * 32767)
}
