package audiofile

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"

	"github.com/hq9000/vsthost/errors"
)

// Load decodes the file at path, picking the decoder by extension.
func Load(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidInput, err, path)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return DecodeWAV(f)
	case ".mp3":
		return DecodeMP3(f)
	case ".ogg", ".oga":
		return DecodeOggVorbis(f)
	default:
		return nil, errors.UnsupportedFormat(filepath.Ext(path))
	}
}

// DecodeWAV decodes a PCM WAV stream.
func DecodeWAV(r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, errors.New(errors.PhaseDecode, errors.KindUnsupportedFormat, "not a PCM WAV stream")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidInput, err, "WAV PCM read")
	}

	// Normalize by the source bit depth.
	maxVal := float32(int64(1) << (dec.BitDepth - 1))
	samples := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float32(v) / maxVal
	}
	return newClip(samples, buf.Format.NumChannels, buf.Format.SampleRate)
}

// DecodeMP3 decodes an MP3 stream. The decoder always yields 16-bit
// little-endian stereo.
func DecodeMP3(r io.Reader) (*Clip, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseDecode, errors.KindUnsupportedFormat, err, "MP3 open")
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidInput, err, "MP3 read")
	}

	samples := make([]float32, len(raw)/2)
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(raw[2*i:]))
		samples[i] = float32(v) / 32768.0
	}
	return newClip(samples, 2, dec.SampleRate())
}

// DecodeOggVorbis decodes an Ogg Vorbis stream.
func DecodeOggVorbis(r io.Reader) (*Clip, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseDecode, errors.KindUnsupportedFormat, err, "Ogg Vorbis open")
	}

	var samples []float32
	buf := make([]float32, 4096*dec.Channels())
	for {
		n, err := dec.Read(buf)
		samples = append(samples, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidInput, err, "Ogg Vorbis read")
		}
	}
	return newClip(samples, dec.Channels(), dec.SampleRate())
}
