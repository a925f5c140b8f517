// ABOUTME: Tests for audio types
// ABOUTME: Tests sample conversion, float scaling and downmix functions
package audio

import (
	"math"
	"testing"
)

func TestSampleFromInt16(t *testing.T) {
	tests := []struct {
		name     string
		input    int16
		expected int32
	}{
		{"zero", 0, 0},
		{"positive", 100, 100 << 8},
		{"negative", -100, -100 << 8},
		{"max", 32767, 32767 << 8},
		{"min", -32768, -32768 << 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SampleFromInt16(tt.input)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestFloatToInt16(t *testing.T) {
	tests := []struct {
		name     string
		input    float32
		expected int16
	}{
		{"zero", 0, 0},
		{"full positive", 1, 32767},
		{"full negative", -1, -32768},
		{"half positive", 0.5, 16383},
		{"half negative", -0.5, -16384},
		{"clamped positive", 1.7, 32767},
		{"clamped negative", -3, -32768},
		{"truncates toward zero", 0.00002, 0},
		{"negative truncates toward zero", -0.00002, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FloatToInt16(tt.input); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestSampleFromBitDepth(t *testing.T) {
	tests := []struct {
		name     string
		sample   int32
		bitDepth int
		expected int32
	}{
		{"16-bit", 100, 16, 100 << 8},
		{"24-bit", 12345, 24, 12345},
		{"32-bit", 1 << 20, 32, 1 << 12},
		{"8-bit", -1, 8, -1 << 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SampleFromBitDepth(tt.sample, tt.bitDepth); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestToFloat(t *testing.T) {
	out := ToFloat([]int32{0, Min24Bit, 4194304, Max24Bit})

	expected := []float64{0, -1, 0.5, float64(Max24Bit) / 8388608}
	for i, want := range expected {
		if math.Abs(float64(out[i])-want) > 1e-7 {
			t.Errorf("sample %d: expected %v, got %v", i, want, out[i])
		}
	}
}

func TestDownmix(t *testing.T) {
	tests := []struct {
		name     string
		input    []float32
		channels int
		expected []float32
	}{
		{"mono copy", []float32{0.1, 0.2}, 1, []float32{0.1, 0.2}},
		{"stereo average", []float32{0.2, 0.4, -1, 1}, 2, []float32{0.3, 0}},
		{"partial frame dropped", []float32{0.5, 0.5, 0.9}, 2, []float32{0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Downmix(tt.input, tt.channels)
			if len(out) != len(tt.expected) {
				t.Fatalf("expected %d samples, got %d", len(tt.expected), len(out))
			}
			for i, want := range tt.expected {
				if math.Abs(float64(out[i]-want)) > 1e-6 {
					t.Errorf("sample %d: expected %v, got %v", i, want, out[i])
				}
			}
		})
	}
}

func TestBufferFrames(t *testing.T) {
	b := &Buffer{Samples: make([]int32, 10), Format: Format{Channels: 2}}
	if b.Frames() != 5 {
		t.Errorf("expected 5 frames, got %d", b.Frames())
	}

	empty := &Buffer{Samples: make([]int32, 10)}
	if empty.Frames() != 0 {
		t.Errorf("expected 0 frames without channels, got %d", empty.Frames())
	}
}
