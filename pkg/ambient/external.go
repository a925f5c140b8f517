// ABOUTME: Packaging for externally produced layers
// ABOUTME: Fits an outside sample sequence to the base length for mixing
package ambient

// External packages samples produced outside this package (for example a
// decoded recording or a generative service result) as a Layer of exactly
// length samples. The samples must already be mono at the base sample
// rate. Shorter material is looped and longer material is truncated; an
// empty input yields silence.
func External(name, description string, samples []float32, length int) Layer {
	if length < 0 {
		length = 0
	}
	out := make([]float32, length)
	if len(samples) > 0 {
		for i := range out {
			out[i] = samples[i%len(samples)]
		}
	}

	return Layer{
		Name:        name,
		Description: description,
		Samples:     out,
	}
}
