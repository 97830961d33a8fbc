package sfnt

import "encoding/binary"

// ColorLayer is one (layer glyph, palette color index) pair, painted
// back-to-front with its siblings.
type ColorLayer struct {
	GlyphID      GlyphID
	PaletteIndex uint16
}

// ColrTable maps base glyphs to their ordered list of color layers.
type ColrTable struct {
	baseGlyphs map[GlyphID][]ColorLayer
}

// IsColorGlyph reports whether id appears as a COLR base glyph.
func (t *ColrTable) IsColorGlyph(id GlyphID) bool {
	_, ok := t.baseGlyphs[id]
	return ok
}

// Layers returns id's color layers in stored (paint) order, or nil if id
// is not a color glyph.
func (t *ColrTable) Layers(id GlyphID) []ColorLayer {
	return t.baseGlyphs[id]
}

// parseColr decodes a COLR (version 0) table: a base-glyph record array
// and a flat layer-record array.
func parseColr(data []byte) (*ColrTable, error) {
	if len(data) < 14 {
		return nil, errCorrupted("COLR header too short")
	}

	numBaseGlyphRecords := int(binary.BigEndian.Uint16(data[2:4]))
	baseGlyphRecordsOffset := binary.BigEndian.Uint32(data[4:8])
	layerRecordsOffset := binary.BigEndian.Uint32(data[8:12])
	numLayerRecords := int(binary.BigEndian.Uint16(data[12:14]))

	layersEnd := int(layerRecordsOffset) + numLayerRecords*4
	if layersEnd > len(data) {
		return nil, errCorrupted("COLR layer records out of bounds")
	}
	layers := make([]ColorLayer, numLayerRecords)
	for i := 0; i < numLayerRecords; i++ {
		rec := data[int(layerRecordsOffset)+i*4 : int(layerRecordsOffset)+i*4+4]
		layers[i] = ColorLayer{
			GlyphID:      GlyphID(binary.BigEndian.Uint16(rec[0:2])),
			PaletteIndex: binary.BigEndian.Uint16(rec[2:4]),
		}
	}

	baseEnd := int(baseGlyphRecordsOffset) + numBaseGlyphRecords*6
	if baseEnd > len(data) {
		return nil, errCorrupted("COLR base glyph records out of bounds")
	}

	baseGlyphs := make(map[GlyphID][]ColorLayer, numBaseGlyphRecords)
	for i := 0; i < numBaseGlyphRecords; i++ {
		rec := data[int(baseGlyphRecordsOffset)+i*6 : int(baseGlyphRecordsOffset)+i*6+6]
		glyphID := GlyphID(binary.BigEndian.Uint16(rec[0:2]))
		firstLayerIndex := int(binary.BigEndian.Uint16(rec[2:4]))
		layerCount := int(binary.BigEndian.Uint16(rec[4:6]))

		if firstLayerIndex+layerCount > numLayerRecords {
			return nil, errCorrupted("COLR base glyph layer range exceeds layer table")
		}

		baseGlyphs[glyphID] = layers[firstLayerIndex : firstLayerIndex+layerCount]
	}

	return &ColrTable{baseGlyphs: baseGlyphs}, nil
}
