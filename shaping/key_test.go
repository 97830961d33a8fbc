package shaping

import (
	"math"
	"testing"
)

func TestNewKeyQuantizesSize(t *testing.T) {
	a := NewKey("x", 1, 16.04, Options{})
	b := NewKey("x", 1, 16.02, Options{})
	if a != b {
		t.Errorf("sizes 16.04 and 16.02 should quantize to the same key, got %+v vs %+v", a, b)
	}

	c := NewKey("x", 1, 16.1, Options{})
	if a == c {
		t.Errorf("sizes 16.0 and 16.1 should quantize to distinct keys")
	}
}

func TestHashOptionsOrderIndependent(t *testing.T) {
	a := Options{Features: []FontFeature{{Tag: "liga", Value: 1}, {Tag: "kern", Value: 1}}}
	b := Options{Features: []FontFeature{{Tag: "kern", Value: 1}, {Tag: "liga", Value: 1}}}
	if hashOptions(a) != hashOptions(b) {
		t.Error("feature order should not affect the options hash")
	}
}

func TestHashOptionsDistinguishesValues(t *testing.T) {
	a := Options{LetterSpacing: 1}
	b := Options{LetterSpacing: 2}
	if hashOptions(a) == hashOptions(b) {
		t.Error("different letter spacing should hash differently")
	}
}

func TestHashOptionsDistinguishesSignedZero(t *testing.T) {
	a := Options{LetterSpacing: 0}
	b := Options{LetterSpacing: 0}
	if hashOptions(a) != hashOptions(b) {
		t.Error("identical zero values should hash identically")
	}

	negZero := Options{LetterSpacing: math.Copysign(0, -1)}
	if hashOptions(a) == hashOptions(negZero) {
		t.Error("-0.0 and +0.0 letter spacing should hash differently")
	}
}
