// ABOUTME: White, pink and brown noise generators
// ABOUTME: Time-domain recursive filters driven by a uniform source
package noise

import "github.com/Resonate-Protocol/resonate-noise/pkg/rng"

// WhiteGenerator emits uniform samples in [-1, 1]
type WhiteGenerator struct{}

func (WhiteGenerator) Generate(src rng.Source, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(src.Next()*2 - 1)
	}
	return out
}

// BrownGenerator integrates white noise with a 0.98 leak
type BrownGenerator struct{}

func (BrownGenerator) Generate(src rng.Source, n int) []float32 {
	out := make([]float32, n)
	var last float64
	for i := range out {
		white := src.Next()*2 - 1
		last = clamp((last+0.02*white)*0.98, -1, 1)
		out[i] = float32(last)
	}
	return out
}

// PinkGenerator approximates a 1/f spectrum with Paul Kellett's filter
type PinkGenerator struct{}

// pinkState holds the filter memory for one Generate call
type pinkState struct {
	b0, b1, b2, b3, b4, b5, b6 float64
}

func (s *pinkState) step(white float64) float64 {
	s.b0 = 0.99886*s.b0 + white*0.0555179
	s.b1 = 0.99332*s.b1 + white*0.0750759
	s.b2 = 0.96900*s.b2 + white*0.1538520
	s.b3 = 0.86650*s.b3 + white*0.3104856
	s.b4 = 0.55000*s.b4 + white*0.5329522
	s.b5 = -0.7616*s.b5 - white*0.0168980
	out := s.b0 + s.b1 + s.b2 + s.b3 + s.b4 + s.b5 + s.b6 + white*0.5362
	s.b6 = white * 0.115926
	// 0.11 brings the RMS level near unity
	return out * 0.11
}

func (PinkGenerator) Generate(src rng.Source, n int) []float32 {
	out := make([]float32, n)
	var state pinkState
	for i := range out {
		out[i] = float32(state.step(src.Next()*2 - 1))
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
