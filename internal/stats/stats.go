// ABOUTME: Level statistics for rendered buffers
// ABOUTME: Summarizes peak, RMS and distribution of float samples
package stats

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// Summary describes the level of a rendered buffer
type Summary struct {
	Samples int
	Peak    float64 // max |x|
	RMS     float64
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
}

// Summarize computes level statistics. An empty buffer yields a zero
// Summary.
func Summarize(samples []float32) (Summary, error) {
	s := Summary{Samples: len(samples)}
	if len(samples) == 0 {
		return s, nil
	}

	data := make([]float64, len(samples))
	squares := make([]float64, len(samples))
	magnitudes := make([]float64, len(samples))
	for i, v := range samples {
		f := float64(v)
		data[i] = f
		squares[i] = f * f
		magnitudes[i] = math.Abs(f)
	}

	var err error
	if s.Mean, err = stats.Mean(data); err != nil {
		return s, fmt.Errorf("mean: %w", err)
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return s, fmt.Errorf("standard deviation: %w", err)
	}
	if s.Min, err = stats.Min(data); err != nil {
		return s, fmt.Errorf("min: %w", err)
	}
	if s.Max, err = stats.Max(data); err != nil {
		return s, fmt.Errorf("max: %w", err)
	}
	if s.Peak, err = stats.Max(magnitudes); err != nil {
		return s, fmt.Errorf("peak: %w", err)
	}
	meanSquare, err := stats.Mean(squares)
	if err != nil {
		return s, fmt.Errorf("rms: %w", err)
	}
	s.RMS = math.Sqrt(meanSquare)

	return s, nil
}

// PeakDBFS returns the peak level in dB relative to full scale
func (s Summary) PeakDBFS() float64 {
	return toDB(s.Peak)
}

// RMSDBFS returns the RMS level in dB relative to full scale
func (s Summary) RMSDBFS() float64 {
	return toDB(s.RMS)
}

// CrestFactor returns peak over RMS, or 0 for silence
func (s Summary) CrestFactor() float64 {
	if s.RMS == 0 {
		return 0
	}
	return s.Peak / s.RMS
}

func (s Summary) String() string {
	return fmt.Sprintf("%d samples, peak %.3f (%.1f dBFS), rms %.3f (%.1f dBFS), mean %+.4f, stddev %.3f",
		s.Samples, s.Peak, s.PeakDBFS(), s.RMS, s.RMSDBFS(), s.Mean, s.StdDev)
}

func toDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}
