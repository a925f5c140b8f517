// ABOUTME: Bird call layer synthesizer
// ABOUTME: Renders warble, caw and trill archetypes with bell envelopes
package ambient

import (
	"fmt"
	"math"

	"github.com/Resonate-Protocol/resonate-noise/pkg/rng"
)

const (
	BirdsName = "pacific_birds"

	birdMinRate   = 0.5 // calls per second at intensity 0
	birdRateRange = 2.0
	birdWobbleHz  = 3.0
	birdLevel     = 0.5
)

// birdCall describes one call archetype
type birdCall struct {
	minFreq   float64
	freqRange float64
	modDepth  float64 // ± Hz of the 3Hz wobble
	duration  float64 // seconds
}

var (
	warble = birdCall{minFreq: 2000, freqRange: 1000, modDepth: 200, duration: 0.3}
	caw    = birdCall{minFreq: 400, freqRange: 300, modDepth: 50, duration: 0.15}
	trill  = birdCall{minFreq: 1500, freqRange: 2000, modDepth: 400, duration: 0.1}
)

func pickCall(draw float64) birdCall {
	switch {
	case draw < 0.3:
		return warble
	case draw < 0.6:
		return caw
	default:
		return trill
	}
}

// GenerateBirds synthesizes a bird call layer over base
func GenerateBirds(base []float32, sampleRate int, opts Options) Layer {
	opts = opts.normalized()
	out := make([]float32, len(base))
	src := rng.NewFromOptional(opts.Seed)

	if opts.Intensity > 0 && sampleRate > 0 {
		rate := birdMinRate + birdRateRange*opts.Intensity
		gain := birdLevel * opts.Intensity

		for i := 0; i < len(base); i++ {
			p := eventProbability(rate, sampleRate, abs32(base[i]), opts.Variation)
			if src.Next() >= p {
				continue
			}

			call := pickCall(src.Next())
			freq := call.minFreq + src.Next()*call.freqRange
			callLen := int(call.duration * float64(sampleRate))

			phase := 0.0
			for j := 0; j < callLen && i+j < len(out); j++ {
				t := float64(j) / float64(sampleRate)
				env := math.Sin(math.Pi * float64(j) / float64(callLen))
				inst := freq + call.modDepth*math.Sin(2*math.Pi*birdWobbleHz*t)
				phase += 2 * math.Pi * inst / float64(sampleRate)
				out[i+j] = float32(float64(out[i+j]) + math.Sin(phase)*env*gain)
			}

			// Calls never overlap; the loop increment lands on the first
			// sample after this call
			if callLen > 0 {
				i += callLen - 1
			}
		}
	}

	return Layer{
		Name:        BirdsName,
		Description: fmt.Sprintf("Pacific Northwest songbirds (intensity %.2f)", opts.Intensity),
		Samples:     out,
	}
}
