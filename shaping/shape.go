package shaping

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// FaceSource is the minimum a Shaper needs to know about a face to shape
// against it: the raw container bytes and index the external engine
// shapes from, plus the font-unit metrics the pen-walk contract scales
// to pixels. Implemented by font.Registry in this module's wiring (see
// cmd/fontkit), kept as a narrow interface here so this package never
// imports the font package.
type FaceSource interface {
	FaceData(faceID int) (data []byte, faceIndex int, ok bool)
	FaceUnitsPerEm(faceID int) (unitsPerEm uint16, ascent, descent float64, ok bool)
}

// Shaper binds the Engine, the FaceSource, and the Cache together into
// a memoized shape(text, face, size, options) call.
type Shaper struct {
	engine Engine
	cache  *Cache
}

// NewShaper creates a Shaper over engine, with its own private Cache
// bounded by maxCacheEntries (DefaultMaxEntries if non-positive).
func NewShaper(engine Engine, maxCacheEntries int) *Shaper {
	return &Shaper{engine: engine, cache: NewCache(maxCacheEntries)}
}

// Stats returns the underlying cache's hit/miss counters.
func (s *Shaper) Stats() Stats {
	return s.cache.StatsSnapshot()
}

// Shape probes the cache by (text, faceID, size, options); on a miss, it
// calls the external engine and builds PositionedGlyphs by walking its
// raw output with a pen. Empty text short-circuits to an empty
// ShapedText with no cache interaction.
func (s *Shaper) Shape(faces FaceSource, faceID int, text string, sizePx float64, opts Options) (*ShapedText, error) {
	if text == "" {
		return &ShapedText{}, nil
	}

	key := NewKey(text, faceID, sizePx, opts)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	data, faceIndex, ok := faces.FaceData(faceID)
	if !ok {
		return nil, fmt.Errorf("shaping: unknown face id %d", faceID)
	}
	unitsPerEm, ascent, descent, ok := faces.FaceUnitsPerEm(faceID)
	if !ok || unitsPerEm == 0 {
		return nil, fmt.Errorf("shaping: no metrics for face id %d", faceID)
	}

	out, err := s.engine.Shape(EngineRequest{
		FaceID:    faceID,
		FaceData:  data,
		FaceIndex: faceIndex,
		Text:      text,
		SizePx:    sizePx,
		Script:    opts.Script,
		Language:  opts.Language,
		Direction: opts.Direction,
		Features:  opts.Features,
	})
	if err != nil {
		return nil, err
	}

	shaped := buildShapedText(out, faceID, text, sizePx, unitsPerEm, ascent, descent, opts)
	s.cache.Put(key, shaped)
	return shaped, nil
}

// buildShapedText runs the pen-walk contract: pen starts at (0,0); each
// glyph draws at pen+offset; the pen advances by x_advance (plus
// letter_spacing, added to every glyph including the last) and
// y_advance. word_spacing is folded into x_advance for glyphs whose
// source cluster is a space character — the engine's raw output carries
// no "is a word gap" flag of its own, so this is derived once here from
// the cluster's source rune rather than threaded through the Engine
// boundary.
func buildShapedText(out EngineOutput, faceID int, text string, sizePx float64, unitsPerEm uint16, ascent, descent float64, opts Options) *ShapedText {
	glyphs := make([]PositionedGlyph, len(out.Glyphs))

	var penX, penY float64
	for i, g := range out.Glyphs {
		adjustedXAdvance := g.XAdvance + opts.LetterSpacing
		if clusterIsSpace(text, g.ClusterByte) {
			adjustedXAdvance += opts.WordSpacing
		}

		glyphs[i] = PositionedGlyph{
			GlyphID:     g.GlyphID,
			FaceID:      faceID,
			PenX:        penX + g.XOffset,
			PenY:        penY + g.YOffset,
			AdvanceX:    adjustedXAdvance,
			AdvanceY:    g.YAdvance,
			OffsetX:     g.XOffset,
			OffsetY:     g.YOffset,
			ClusterByte: g.ClusterByte,
		}

		penX += adjustedXAdvance
		penY += g.YAdvance
	}

	scale := sizePx / float64(unitsPerEm)
	return &ShapedText{
		Glyphs:   glyphs,
		Width:    penX,
		Height:   (ascent - descent) * scale,
		Baseline: ascent * scale,
	}
}

// clusterIsSpace reports whether the rune at byte offset off in text is a
// Unicode space character.
func clusterIsSpace(text string, off int) bool {
	if off < 0 || off >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[off:])
	return unicode.IsSpace(r)
}
