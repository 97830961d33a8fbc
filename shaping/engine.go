package shaping

// EngineGlyph is one glyph as reported by the external shaping engine,
// in 26.6-equivalent float units: advances and offsets already divided
// down to pixels, plus the byte offset of the source cluster it came
// from (needed to apply word spacing to space-producing glyphs).
type EngineGlyph struct {
	GlyphID     uint16
	XAdvance    float64
	YAdvance    float64
	XOffset     float64
	YOffset     float64
	ClusterByte int
}

// EngineOutput is the external engine's raw shaped sequence, in visual
// order for the request's direction.
type EngineOutput struct {
	Glyphs []EngineGlyph
}

// EngineRequest bundles everything the external engine needs: which face
// (by registry id, plus its raw container bytes and index within that
// container — collections share one byte slice), the text, and the
// buffer properties (script, language, direction, features) that
// describe how to shape it.
type EngineRequest struct {
	FaceID    int
	FaceData  []byte
	FaceIndex int
	Text      string
	SizePx    float64
	Script    Script
	Language  Language
	Direction Direction
	Features  []FontFeature
}

// Engine is the external shape() collaborator: a pure function of (face
// bytes, face index, buffer contents, buffer properties, feature list,
// ppem). This package's Shaper is the only caller; it never depends on
// any particular engine implementation.
type Engine interface {
	Shape(req EngineRequest) (EngineOutput, error)
}
