// ABOUTME: Audio type definitions
// ABOUTME: Defines audio formats, decoded buffers and sample conversions
package audio

const (
	// 24-bit audio range constants
	Max24Bit = 8388607  // 2^23 - 1
	Min24Bit = -8388608 // -2^23

	DefaultSampleRate = 44100
	DefaultBitDepth   = 16
)

// Format describes audio stream format
type Format struct {
	Codec      string
	SampleRate int
	Channels   int
	BitDepth   int
}

// Buffer represents decoded PCM audio
type Buffer struct {
	Samples []int32 // Interleaved PCM samples in 24-bit range
	Format  Format
}

// Frames returns the number of sample frames in the buffer
func (b *Buffer) Frames() int {
	if b.Format.Channels <= 0 {
		return 0
	}
	return len(b.Samples) / b.Format.Channels
}

// FloatToInt16 converts a float sample to 16-bit PCM. The value is clamped
// to [-1, 1]; negative values scale by 32768 and non-negative values by
// 32767, truncating toward zero.
func FloatToInt16(sample float32) int16 {
	s := float64(sample)
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	if s < 0 {
		return int16(s * 32768)
	}
	return int16(s * 32767)
}

// SampleFromInt16 converts int16 sample to int32 (left-justified in 24-bit)
func SampleFromInt16(sample int16) int32 {
	return int32(sample) << 8
}

// SampleFromBitDepth rescales a signed sample of the given bit depth to
// 24-bit range
func SampleFromBitDepth(sample int32, bitDepth int) int32 {
	switch {
	case bitDepth == 24 || bitDepth <= 0:
		return sample
	case bitDepth < 24:
		return sample << (24 - bitDepth)
	default:
		return sample >> (bitDepth - 24)
	}
}

// ToFloat converts 24-bit range samples to floats in [-1, 1)
func ToFloat(samples []int32) []float32 {
	out := make([]float32, len(samples))
	for i, s := range samples {
		out[i] = float32(float64(s) / -Min24Bit)
	}
	return out
}

// Downmix averages interleaved channels into a mono buffer
func Downmix(samples []float32, channels int) []float32 {
	if channels <= 1 {
		out := make([]float32, len(samples))
		copy(out, samples)
		return out
	}

	frames := len(samples) / channels
	out := make([]float32, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for ch := 0; ch < channels; ch++ {
			sum += float64(samples[i*channels+ch])
		}
		out[i] = float32(sum / float64(channels))
	}
	return out
}
