package sfnt

import "testing"

func TestFixed16_16RoundTrip(t *testing.T) {
	cases := []struct {
		raw  int32
		want float64
	}{
		{65536, 1.0},
		{32768, 0.5},
		{-98304, -1.5},
	}
	for _, c := range cases {
		got := Fixed16_16(c.raw).Float64()
		if got != c.want {
			t.Errorf("Fixed16_16(%d).Float64() = %v, want %v", c.raw, got, c.want)
		}
	}
}
