// ABOUTME: Tests for envelope shaping and channel expansion
// ABOUTME: Tests fade ramps, overlap, clamping and interleaving
package envelope

import (
	"math"
	"testing"
)

func ones(n int) []float32 {
	buf := make([]float32, n)
	for i := range buf {
		buf[i] = 1
	}
	return buf
}

func TestApplyNoFades(t *testing.T) {
	buf := []float32{0.1, -0.2, 0.3}
	out := Apply(buf, 0, 0, 100)

	for i := range buf {
		if out[i] != buf[i] {
			t.Errorf("sample %d: expected %v, got %v", i, buf[i], out[i])
		}
	}
}

func TestApplyFadeIn(t *testing.T) {
	// 0.04s at 100Hz = 4 samples: gains 0, 0.25, 0.5, 0.75
	out := Apply(ones(8), 0.04, 0, 100)

	expected := []float32{0, 0.25, 0.5, 0.75, 1, 1, 1, 1}
	for i, want := range expected {
		if out[i] != want {
			t.Errorf("sample %d: expected %v, got %v", i, want, out[i])
		}
	}
}

func TestApplyFadeOut(t *testing.T) {
	out := Apply(ones(8), 0, 0.04, 100)

	expected := []float32{1, 1, 1, 1, 0.75, 0.5, 0.25, 0}
	for i, want := range expected {
		if out[i] != want {
			t.Errorf("sample %d: expected %v, got %v", i, want, out[i])
		}
	}
}

func TestApplyOverlappingFades(t *testing.T) {
	// Both fades cover the whole 4-sample buffer and multiply
	out := Apply(ones(4), 1, 1, 100)

	fadeIn := []float64{0, 0.25, 0.5, 0.75}
	fadeOut := []float64{0.75, 0.5, 0.25, 0}
	for i := range out {
		want := fadeIn[i] * fadeOut[i]
		if math.Abs(float64(out[i])-want) > 1e-7 {
			t.Errorf("sample %d: expected %v, got %v", i, want, out[i])
		}
	}
}

func TestApplyPreservesLengthAndInput(t *testing.T) {
	buf := ones(10)
	out := Apply(buf, 0.05, 0.05, 100)

	if len(out) != len(buf) {
		t.Errorf("expected %d samples, got %d", len(buf), len(out))
	}
	for i, v := range buf {
		if v != 1 {
			t.Fatalf("input sample %d was modified", i)
		}
	}
}

func TestApplyEmpty(t *testing.T) {
	out := Apply(nil, 1, 1, 44100)
	if len(out) != 0 {
		t.Errorf("expected empty output, got %d samples", len(out))
	}
}

func TestConvertToStereo(t *testing.T) {
	a, b, c := float32(0.1), float32(-0.5), float32(0.9)

	out := ConvertToStereo([]float32{a, b, c}, 0)

	expected := []float32{a, a, b, b, c, c}
	if len(out) != len(expected) {
		t.Fatalf("expected %d samples, got %d", len(expected), len(out))
	}
	for i, want := range expected {
		if out[i] != want {
			t.Errorf("sample %d: expected %v, got %v", i, want, out[i])
		}
	}
}

func TestConvertToStereoIgnoresSpread(t *testing.T) {
	mono := []float32{0.3, -0.3}
	plain := ConvertToStereo(mono, 0)
	spread := ConvertToStereo(mono, 1)

	for i := range plain {
		if plain[i] != spread[i] {
			t.Errorf("sample %d: spread changed output (%v vs %v)", i, plain[i], spread[i])
		}
	}
}

func TestExpand(t *testing.T) {
	mono := []float32{0.1, 0.2}

	tests := []struct {
		name     string
		channels int
		expected []float32
	}{
		{"mono", 1, []float32{0.1, 0.2}},
		{"zero treated as mono", 0, []float32{0.1, 0.2}},
		{"stereo", 2, []float32{0.1, 0.1, 0.2, 0.2}},
		{"quad", 4, []float32{0.1, 0.1, 0.1, 0.1, 0.2, 0.2, 0.2, 0.2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Expand(mono, tt.channels)
			if len(out) != len(tt.expected) {
				t.Fatalf("expected %d samples, got %d", len(tt.expected), len(out))
			}
			for i, want := range tt.expected {
				if out[i] != want {
					t.Errorf("sample %d: expected %v, got %v", i, want, out[i])
				}
			}
		})
	}
}
