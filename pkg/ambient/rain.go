// ABOUTME: Rain layer synthesizer
// ABOUTME: Stamps short decaying sine-plus-noise droplets triggered by the base signal
package ambient

import (
	"fmt"
	"math"

	"github.com/Resonate-Protocol/resonate-noise/pkg/rng"
)

const (
	RainName = "pacific_rain"

	rainMinRate      = 20.0 // drops per second at intensity 0
	rainRateRange    = 80.0 // added at intensity 1
	rainDropDuration = 0.01 // seconds
	rainDecay        = 150.0
	rainMinFreq      = 2000.0
	rainFreqRange    = 3000.0
	rainToneMix      = 0.8
	rainNoiseMix     = 0.2
)

// GenerateRain synthesizes a rain layer over base
func GenerateRain(base []float32, sampleRate int, opts Options) Layer {
	opts = opts.normalized()
	out := make([]float32, len(base))
	src := rng.NewFromOptional(opts.Seed)

	if opts.Intensity > 0 && sampleRate > 0 {
		rate := rainMinRate + rainRateRange*opts.Intensity
		dropLen := int(rainDropDuration * float64(sampleRate))

		for i := range base {
			p := eventProbability(rate, sampleRate, abs32(base[i]), opts.Variation)
			if src.Next() >= p {
				continue
			}

			freq := rainMinFreq + src.Next()*rainFreqRange
			size := 0.3 + src.Next()*0.7
			gain := size * opts.Intensity

			for j := 0; j < dropLen && i+j < len(out); j++ {
				t := float64(j) / float64(sampleRate)
				env := math.Exp(-rainDecay*t) * (1 - t/rainDropDuration)
				tone := math.Sin(2 * math.Pi * freq * t)
				hiss := src.Next()*2 - 1
				v := (rainToneMix*tone + rainNoiseMix*hiss) * env * gain
				out[i+j] = float32(float64(out[i+j]) + v)
			}
		}
	}

	return Layer{
		Name:        RainName,
		Description: fmt.Sprintf("Pacific Northwest rainfall (intensity %.2f)", opts.Intensity),
		Samples:     out,
	}
}
