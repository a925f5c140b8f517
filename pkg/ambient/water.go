// ABOUTME: Running water layer synthesizer
// ABOUTME: Lowpassed noise flow with decaying sine bubbles on top
package ambient

import (
	"fmt"
	"math"

	"github.com/Resonate-Protocol/resonate-noise/pkg/rng"
)

const (
	WaterName = "running_water"

	waterFlowLevel     = 0.3
	waterSmoothing     = 0.95
	bubbleMinRate      = 5.0 // bubbles per second at intensity 0
	bubbleRateRange    = 15.0
	bubbleMinDuration  = 0.05
	bubbleDurRange     = 0.1
	bubbleMinFreq      = 800.0
	bubbleFreqRange    = 1200.0
	bubbleDecay        = 30.0
	bubbleMinAmplitude = 0.1
	bubbleAmpRange     = 0.2
)

// flowState is the one-pole lowpass memory for one GenerateWater call
type flowState struct {
	value float64
}

func (f *flowState) step(raw float64) float64 {
	f.value = f.value*waterSmoothing + raw*(1-waterSmoothing)
	return f.value
}

// GenerateWater synthesizes a running water layer over base
func GenerateWater(base []float32, sampleRate int, opts Options) Layer {
	opts = opts.normalized()
	out := make([]float32, len(base))
	src := rng.NewFromOptional(opts.Seed)

	if opts.Intensity > 0 && sampleRate > 0 {
		bubbleRate := bubbleMinRate + bubbleRateRange*opts.Intensity
		var flow flowState

		for i := range base {
			amp := abs32(base[i])

			level := waterFlowLevel * (1 + (amp-0.5)*opts.Variation) * opts.Intensity
			v := flow.step(src.Next()*2-1) * level
			out[i] = float32(float64(out[i]) + v)

			p := eventProbability(bubbleRate, sampleRate, amp, opts.Variation)
			if src.Next() >= p {
				continue
			}

			freq := bubbleMinFreq + src.Next()*bubbleFreqRange
			bubbleLen := int((bubbleMinDuration + src.Next()*bubbleDurRange) * float64(sampleRate))
			gain := (bubbleMinAmplitude + src.Next()*bubbleAmpRange) * opts.Intensity

			for j := 0; j < bubbleLen && i+j < len(out); j++ {
				t := float64(j) / float64(sampleRate)
				b := math.Sin(2*math.Pi*freq*t) * math.Exp(-bubbleDecay*t) * gain
				out[i+j] = float32(float64(out[i+j]) + b)
			}
		}
	}

	return Layer{
		Name:        WaterName,
		Description: fmt.Sprintf("Running water stream (intensity %.2f)", opts.Intensity),
		Samples:     out,
	}
}
