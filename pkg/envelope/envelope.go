// ABOUTME: Linear fade envelope and mono-to-multichannel expansion
// ABOUTME: Returns new buffers and leaves inputs untouched
package envelope

// Apply returns a copy of buf with a linear fade-in over the first
// fadeInS seconds and a linear fade-out over the last fadeOutS seconds.
// Fade lengths are clamped to the buffer; when they overlap both gains
// apply. The first sample of a fade-in and the last sample of a fade-out
// are silent.
func Apply(buf []float32, fadeInS, fadeOutS float64, sampleRate int) []float32 {
	out := make([]float32, len(buf))
	copy(out, buf)

	n := len(out)
	fadeIn := fadeLength(fadeInS, sampleRate, n)
	fadeOut := fadeLength(fadeOutS, sampleRate, n)

	for i := 0; i < fadeIn; i++ {
		gain := float64(i) / float64(fadeIn)
		out[i] = float32(float64(out[i]) * gain)
	}

	for i := 0; i < fadeOut; i++ {
		gain := float64(i) / float64(fadeOut)
		idx := n - 1 - i
		out[idx] = float32(float64(out[idx]) * gain)
	}

	return out
}

func fadeLength(seconds float64, sampleRate, n int) int {
	if seconds <= 0 || sampleRate <= 0 {
		return 0
	}
	samples := int(seconds * float64(sampleRate))
	return min(samples, n)
}

// ConvertToStereo interleaves each mono sample into two identical
// channel slots. spread is reserved for a future stereo-width control and
// currently has no effect.
func ConvertToStereo(mono []float32, spread float64) []float32 {
	_ = spread
	out := make([]float32, len(mono)*2)
	for i, s := range mono {
		out[i*2] = s
		out[i*2+1] = s
	}
	return out
}

// Expand duplicates mono samples into channels interleaved slots.
// channels below 1 are treated as mono.
func Expand(mono []float32, channels int) []float32 {
	switch {
	case channels <= 1:
		out := make([]float32, len(mono))
		copy(out, mono)
		return out
	case channels == 2:
		return ConvertToStereo(mono, 0)
	}

	out := make([]float32, len(mono)*channels)
	for i, s := range mono {
		for ch := 0; ch < channels; ch++ {
			out[i*channels+ch] = s
		}
	}
	return out
}
