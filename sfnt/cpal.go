package sfnt

import "encoding/binary"

// Color is a logical RGBA color. On-disk CPAL records store bytes in
// blue, green, red, alpha order; this type exposes them already reordered
// to RGBA.
type Color struct {
	R, G, B, A uint8
}

// CpalTable holds a face's color palettes. Palette 0 is the default.
type CpalTable struct {
	Palettes [][]Color
}

// parseCpal decodes a CPAL table far enough to expose usable palettes.
// The version field and the version >= 1 palette label/type arrays are
// not read at all; their contents are not exposed. Readers that need
// them should re-parse the extended header directly.
func parseCpal(data []byte) (*CpalTable, error) {
	if len(data) < 12 {
		return nil, errCorrupted("CPAL header too short")
	}

	numPaletteEntries := int(binary.BigEndian.Uint16(data[2:4]))
	numPalettes := int(binary.BigEndian.Uint16(data[4:6]))
	numColorRecords := int(binary.BigEndian.Uint16(data[6:8]))
	colorRecordsOffset := binary.BigEndian.Uint32(data[8:12])

	if int(colorRecordsOffset)+numColorRecords*4 > len(data) {
		return nil, errCorrupted("CPAL color records out of bounds")
	}

	colors := make([]Color, numColorRecords)
	for i := 0; i < numColorRecords; i++ {
		rec := data[int(colorRecordsOffset)+i*4 : int(colorRecordsOffset)+i*4+4]
		// on-disk order is blue, green, red, alpha
		colors[i] = Color{B: rec[0], G: rec[1], R: rec[2], A: rec[3]}
	}

	paletteStarts := make([]uint16, numPalettes)
	for i := 0; i < numPalettes; i++ {
		off := 12 + i*2
		if off+2 > len(data) {
			return nil, errCorrupted("CPAL palette index array out of bounds")
		}
		paletteStarts[i] = binary.BigEndian.Uint16(data[off : off+2])
	}

	palettes := make([][]Color, numPalettes)
	for i, start := range paletteStarts {
		end := int(start) + numPaletteEntries
		if end > len(colors) {
			return nil, errCorrupted("CPAL palette range exceeds color records")
		}
		palettes[i] = colors[start:end]
	}

	return &CpalTable{Palettes: palettes}, nil
}
