// ABOUTME: Weighted layer mixer with tanh soft limiting
// ABOUTME: Sums scaled base and layer buffers into a new buffer
package mix

import (
	"math"

	"github.com/Resonate-Protocol/resonate-noise/pkg/ambient"
)

const (
	DefaultBaseLevel  = 0.7
	DefaultLayerLevel = 0.3

	// LimitThreshold is the magnitude above which samples are soft limited
	LimitThreshold = 0.95
)

// Levels holds the mix gains
type Levels struct {
	Base  float64
	Layer float64 // Split equally across all layers
}

// DefaultLevels returns 0.7 base and 0.3 layer gain
func DefaultLevels() Levels {
	return Levels{
		Base:  DefaultBaseLevel,
		Layer: DefaultLayerLevel,
	}
}

// Mix returns base*levels.Base plus each layer scaled by
// levels.Layer/len(layers), soft limited. The result has the length of
// base; layer samples beyond it are ignored and short layers contribute
// only where they have samples. Inputs are not modified.
func Mix(base []float32, layers []ambient.Layer, levels Levels) []float32 {
	out := make([]float32, len(base))
	for i, s := range base {
		out[i] = float32(float64(s) * levels.Base)
	}

	if len(layers) > 0 {
		weight := levels.Layer / float64(len(layers))
		for _, layer := range layers {
			n := min(len(layer.Samples), len(out))
			for i := 0; i < n; i++ {
				out[i] = float32(float64(out[i]) + float64(layer.Samples[i])*weight)
			}
		}
	}

	for i, s := range out {
		out[i] = SoftLimit(s)
	}
	return out
}

// SoftLimit passes |x| <= LimitThreshold through unchanged and maps
// larger magnitudes to sign(x)*tanh(|x|), which stays below 1
func SoftLimit(x float32) float32 {
	a := math.Abs(float64(x))
	if a <= LimitThreshold {
		return x
	}
	return float32(math.Copysign(math.Tanh(a), float64(x)))
}
