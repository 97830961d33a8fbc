package shaping

import "testing"

type fakeFaceSource struct{}

func (fakeFaceSource) FaceData(faceID int) ([]byte, int, bool) {
	return []byte("face-bytes"), 0, true
}

func (fakeFaceSource) FaceUnitsPerEm(faceID int) (uint16, float64, float64, bool) {
	return 1000, 800, -200, true
}

// countingEngine records how many times Shape is called, so tests can
// assert the shaping cache actually avoids re-invoking the engine.
type countingEngine struct {
	calls int
}

func (e *countingEngine) Shape(req EngineRequest) (EngineOutput, error) {
	e.calls++
	glyphs := make([]EngineGlyph, len(req.Text))
	for i := range req.Text {
		glyphs[i] = EngineGlyph{GlyphID: uint16(req.Text[i]), XAdvance: 10, ClusterByte: i}
	}
	return EngineOutput{Glyphs: glyphs}, nil
}

func TestShaperCachesRepeatedCalls(t *testing.T) {
	engine := &countingEngine{}
	shaper := NewShaper(engine, 16)

	for i := 0; i < 3; i++ {
		if _, err := shaper.Shape(fakeFaceSource{}, 1, "hello", 16, Options{}); err != nil {
			t.Fatal(err)
		}
	}

	if engine.calls != 1 {
		t.Errorf("engine called %d times, want 1 (cache should absorb repeats)", engine.calls)
	}

	stats := shaper.Stats()
	if stats.Hits != 2 || stats.Misses != 1 {
		t.Errorf("stats = %+v, want 2 hits / 1 miss", stats)
	}
}

func TestShaperDistinctOptionsMiss(t *testing.T) {
	engine := &countingEngine{}
	shaper := NewShaper(engine, 16)

	shaper.Shape(fakeFaceSource{}, 1, "hello", 16, Options{Kerning: true})
	shaper.Shape(fakeFaceSource{}, 1, "hello", 16, Options{Kerning: false})

	if engine.calls != 2 {
		t.Errorf("engine called %d times, want 2 (differing options must miss)", engine.calls)
	}
}

func TestShaperEmptyTextShortCircuits(t *testing.T) {
	engine := &countingEngine{}
	shaper := NewShaper(engine, 16)

	shaped, err := shaper.Shape(fakeFaceSource{}, 1, "", 16, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(shaped.Glyphs) != 0 {
		t.Errorf("empty text should shape to zero glyphs, got %d", len(shaped.Glyphs))
	}
	if engine.calls != 0 {
		t.Errorf("empty text should never reach the engine, got %d calls", engine.calls)
	}
}

func TestShaperLetterSpacingAppliesToEveryGlyphIncludingLast(t *testing.T) {
	engine := &countingEngine{}
	shaper := NewShaper(engine, 16)

	shaped, err := shaper.Shape(fakeFaceSource{}, 1, "ab", 16, Options{LetterSpacing: 5})
	if err != nil {
		t.Fatal(err)
	}
	for i, g := range shaped.Glyphs {
		if g.AdvanceX != 15 {
			t.Errorf("glyph %d advance = %v, want 15 (10 base + 5 letter spacing)", i, g.AdvanceX)
		}
	}
}

func TestShaperUnknownFaceFails(t *testing.T) {
	shaper := NewShaper(&countingEngine{}, 16)
	_, err := shaper.Shape(missingFaceSource{}, 99, "x", 16, Options{})
	if err == nil {
		t.Fatal("expected an error for an unknown face id")
	}
}

type missingFaceSource struct{}

func (missingFaceSource) FaceData(int) ([]byte, int, bool)              { return nil, 0, false }
func (missingFaceSource) FaceUnitsPerEm(int) (uint16, float64, float64, bool) {
	return 0, 0, 0, false
}
