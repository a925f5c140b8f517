// ABOUTME: Linear interpolation resampler for float32 audio
// ABOUTME: Supports chunked streaming and whole-buffer conversion
package resample

// Resampler performs linear interpolation to convert between sample rates
type Resampler struct {
	inputRate  int
	outputRate int
	channels   int
	ratio      float64
	position   float64
}

// New creates a new resampler
func New(inputRate, outputRate, channels int) *Resampler {
	if channels < 1 {
		channels = 1
	}
	return &Resampler{
		inputRate:  inputRate,
		outputRate: outputRate,
		channels:   channels,
		ratio:      float64(inputRate) / float64(outputRate),
	}
}

// Resample converts interleaved input frames into output and returns the
// number of samples written. The fractional read position carries over
// between calls.
func (r *Resampler) Resample(input []float32, output []float32) int {
	if len(input) == 0 {
		return 0
	}

	inputFrames := len(input) / r.channels
	outputFrames := len(output) / r.channels

	outIdx := 0
	for outIdx < outputFrames {
		inputIdx := int(r.position)
		if inputIdx >= inputFrames-1 {
			break
		}

		frac := r.position - float64(inputIdx)
		for ch := 0; ch < r.channels; ch++ {
			a := float64(input[inputIdx*r.channels+ch])
			b := float64(input[(inputIdx+1)*r.channels+ch])
			output[outIdx*r.channels+ch] = float32(a*(1.0-frac) + b*frac)
		}

		outIdx++
		r.position += r.ratio
	}

	r.position -= float64(int(r.position))

	return outIdx * r.channels
}

// Reset resets the resampler state
func (r *Resampler) Reset() {
	r.position = 0.0
}

// OutputSamplesNeeded calculates how many output samples will be produced from input samples
func (r *Resampler) OutputSamplesNeeded(inputSamples int) int {
	inputFrames := inputSamples / r.channels
	outputFrames := int(float64(inputFrames) / r.ratio)
	return outputFrames * r.channels
}

// Convert resamples a complete interleaved buffer. The final input frame is
// held for positions past the end so the output covers the whole input.
func Convert(input []float32, inputRate, outputRate, channels int) []float32 {
	if channels < 1 {
		channels = 1
	}
	if inputRate == outputRate || inputRate <= 0 || outputRate <= 0 {
		out := make([]float32, len(input))
		copy(out, input)
		return out
	}

	inputFrames := len(input) / channels
	if inputFrames == 0 {
		return []float32{}
	}

	// One copy of the last frame lets the interpolator reach the end
	padded := make([]float32, (inputFrames+1)*channels)
	copy(padded, input[:inputFrames*channels])
	copy(padded[inputFrames*channels:], input[(inputFrames-1)*channels:inputFrames*channels])

	outputFrames := int(float64(inputFrames) * float64(outputRate) / float64(inputRate))
	out := make([]float32, outputFrames*channels)

	n := New(inputRate, outputRate, channels).Resample(padded, out)
	return out[:n]
}
