package sfnt

// GlyphID is an opaque per-face glyph identifier. Two glyph ids are equal
// iff their underlying values are equal; they carry no arithmetic meaning
// beyond that.
type GlyphID uint16
