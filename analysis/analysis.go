// Package analysis offers small measurements over rendered audio: level
// statistics and a dominant-frequency estimate. It operates on single
// channels of float32 samples, the shape the host's render paths produce.
package analysis

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/hq9000/vsthost/errors"
)

// RMS returns the root-mean-square level of one channel, 0 for an empty
// one.
func RMS(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		v := float64(s)
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// Peak returns the largest absolute sample value of one channel.
func Peak(samples []float32) float64 {
	var peak float64
	for _, s := range samples {
		if v := math.Abs(float64(s)); v > peak {
			peak = v
		}
	}
	return peak
}

// DominantFrequency estimates the strongest spectral component of one
// channel in Hz. The signal is Hann-windowed and zero-padded to the next
// power of two; resolution is sampleRate over the padded length, so short
// inputs give coarse answers.
func DominantFrequency(samples []float32, sampleRate float64) (float64, error) {
	if len(samples) < 2 {
		return 0, errors.InvalidInput(errors.PhaseProcess, "need at least 2 samples, got %d", len(samples))
	}
	if sampleRate <= 0 {
		return 0, errors.InvalidInput(errors.PhaseProcess, "sample rate %g", sampleRate)
	}

	fftSize := nextPow2(len(samples))
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, errors.Wrap(errors.PhaseProcess, errors.KindInvalidInput, err, "FFT plan")
	}

	in := make([]complex128, fftSize)
	n := float64(len(samples) - 1)
	for i, s := range samples {
		// Hann window
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/n))
		in[i] = complex(float64(s)*w, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, errors.Wrap(errors.PhaseProcess, errors.KindInvalidInput, err, "forward FFT")
	}

	half := fftSize / 2
	re := make([]float64, half)
	im := make([]float64, half)
	for i := 0; i < half; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)

	// Skip DC
	best := 1
	for i := 2; i < half; i++ {
		if mag[i] > mag[best] {
			best = i
		}
	}
	return float64(best) * sampleRate / float64(fftSize), nil
}

// BinWidth returns the frequency resolution DominantFrequency achieves for
// an input of length n at the given rate.
func BinWidth(n int, sampleRate float64) float64 {
	return sampleRate / float64(nextPow2(n))
}

func nextPow2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
