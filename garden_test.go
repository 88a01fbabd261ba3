package garden

import (
	"image/color"
	"testing"
)

func TestColorToRGBAPremultiplies(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want color.RGBA
	}{
		{"white", ColorWhite, color.RGBA{255, 255, 255, 255}},
		{"half red", Color{R: 1, A: 0.5}, color.RGBA{R: 127, A: 127}},
		{"clamped", Color{R: 2, G: -1, B: 0.5, A: 1}, color.RGBA{R: 255, G: 0, B: 127, A: 255}},
		{"transparent", Color{R: 1, G: 1, B: 1}, color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.toRGBA(); got != tt.want {
				t.Errorf("toRGBA(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-0.5, 0}, {0, 0}, {0.25, 0.25}, {1, 1}, {3, 1},
	}
	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLerpColor(t *testing.T) {
	a := Color{0, 0, 0, 1}
	b := Color{1, 0.5, 0.25, 0}
	if got := lerpColor(a, b, 0); got != a {
		t.Errorf("t=0: %v, want %v", got, a)
	}
	if got := lerpColor(a, b, 1); got != b {
		t.Errorf("t=1: %v, want %v", got, b)
	}
	want := Color{0.5, 0.25, 0.125, 0.5}
	if got := lerpColor(a, b, 0.5); got != want {
		t.Errorf("t=0.5: %v, want %v", got, want)
	}
}

func TestWhitePixel(t *testing.T) {
	if WhitePixel == nil {
		t.Fatal("WhitePixel should be initialized")
	}
	b := WhitePixel.Bounds()
	if b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("WhitePixel bounds = %v, want 1x1", b)
	}
}
