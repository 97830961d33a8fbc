package raster

import (
	"testing"

	"github.com/boergens/fontkit/cache"
)

func TestRasterizeInvalidDataFails(t *testing.T) {
	r := NewFreeTypeRasterizer()
	_, err := r.Rasterize([]byte("not a font"), 0, 1, 16, cache.FormatGray)
	if err == nil {
		t.Fatal("expected an error for invalid font data")
	}
	if _, ok := err.(*RasterizationFailedError); !ok {
		t.Errorf("got error of type %T, want *RasterizationFailedError", err)
	}
}

func TestOutlineInvalidDataFails(t *testing.T) {
	r := NewFreeTypeRasterizer()
	_, err := r.Outline([]byte("not a font"), 0, 1)
	if err == nil {
		t.Fatal("expected an error for invalid font data")
	}
}

func TestThresholdToMono(t *testing.T) {
	gray := []byte{
		0, 255, 0, 255, // row 0: 4 pixels, alternating
		255, 0, 255, 0, // row 1
	}
	mono := thresholdToMono(gray, 4, 2)
	wantPitch := 1 // (4+7)/8
	if len(mono) != wantPitch*2 {
		t.Fatalf("mono length = %d, want %d", len(mono), wantPitch*2)
	}
	// Row 0: bits set for pixels 1 and 3 (0-indexed), MSB-first per byte.
	if mono[0] != 0b01000100 {
		t.Errorf("row 0 = %08b, want 01000100", mono[0])
	}
}

func TestMonoPitchOr(t *testing.T) {
	if got := monoPitchOr(cache.FormatMono, 10, 40); got != 2 {
		t.Errorf("mono pitch for width 10 = %d, want 2", got)
	}
	if got := monoPitchOr(cache.FormatGray, 10, 40); got != 40 {
		t.Errorf("gray pitch should pass through unchanged, got %d want 40", got)
	}
}
