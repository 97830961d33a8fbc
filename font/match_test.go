package font

import "testing"

func TestMatchWithFallback(t *testing.T) {
	candidates := []matchCandidate{
		{id: 0, family: "Arial", variant: Variant{Style: StyleNormal, Weight: WeightNormal, Stretch: StretchNormal}},
		{id: 1, family: "Arial", variant: Variant{Style: StyleNormal, Weight: WeightBold, Stretch: StretchNormal}},
		{id: 2, family: "Helvetica", variant: Variant{Style: StyleNormal, Weight: WeightNormal, Stretch: StretchNormal}},
	}

	t.Run("bold fallback to Arial", func(t *testing.T) {
		desc := FontDescriptor{
			Family:  []string{"Unknown", "Arial"},
			Weight:  WeightBold,
			Style:   StyleNormal,
			Stretch: StretchNormal,
		}
		id, ok := matchDescriptor(candidates, desc)
		if !ok || id != 1 {
			t.Fatalf("match = (%d, %v), want (1, true)", id, ok)
		}
	})

	t.Run("italic request ties on style penalty, regular wins on weight", func(t *testing.T) {
		desc := FontDescriptor{
			Family:  []string{"Arial"},
			Weight:  WeightNormal,
			Style:   StyleItalic,
			Stretch: StretchNormal,
		}
		id, ok := matchDescriptor(candidates, desc)
		if !ok || id != 0 {
			t.Fatalf("match = (%d, %v), want (0, true)", id, ok)
		}
	})

	t.Run("no match returns false", func(t *testing.T) {
		desc := FontDescriptor{Family: []string{"Nonexistent"}}
		if _, ok := matchDescriptor(candidates, desc); ok {
			t.Fatalf("expected no match")
		}
	})
}

func TestMatchMonotonicity(t *testing.T) {
	requested := Variant{Style: StyleNormal, Weight: WeightNormal, Stretch: StretchNormal}

	closer := Variant{Style: StyleNormal, Weight: WeightMedium, Stretch: StretchNormal}
	farther := Variant{Style: StyleNormal, Weight: WeightBold, Stretch: StretchNormal}

	if score(closer, requested) >= score(farther, requested) {
		t.Fatalf("score should increase with |Δweight|")
	}

	sameFamily := Variant{Style: StyleItalic, Weight: WeightNormal, Stretch: StretchNormal}
	if diff := score(sameFamily, requested) - score(requested, requested); diff != styleMismatchPenalty {
		t.Fatalf("style flip should change score by exactly %v, got %v", styleMismatchPenalty, diff)
	}
}
