package sfnt

import "testing"

func TestAvarIdentity(t *testing.T) {
	table := &AvarTable{segments: [][]avarSegment{
		{{From: -1, To: -1}, {From: 0, To: 0}, {From: 1, To: 1}},
	}}

	for _, v := range []float64{-1, -0.5, 0, 0.5, 1} {
		got := table.Map(0, v)
		if diff := got - v; diff < -1e-4 || diff > 1e-4 {
			t.Errorf("Map(0, %v) = %v, want %v", v, got, v)
		}
	}
}

func TestAvarPiecewiseLinear(t *testing.T) {
	table := &AvarTable{segments: [][]avarSegment{
		{{From: -1, To: -1}, {From: 0, To: -0.5}, {From: 1, To: 1}},
	}}

	if got := table.Map(0, 0); got < -0.5001 || got > -0.4999 {
		t.Errorf("Map(0, 0) = %v, want -0.5", got)
	}
	if got := table.Map(0, 0.5); got < 0.2499 || got > 0.2501 {
		t.Errorf("Map(0, 0.5) = %v, want 0.25", got)
	}
}

func TestAvarOutOfRangeAxisIsIdentity(t *testing.T) {
	table := &AvarTable{segments: [][]avarSegment{}}
	if got := table.Map(5, 0.3); got != 0.3 {
		t.Errorf("Map on out-of-range axis = %v, want identity 0.3", got)
	}
}
