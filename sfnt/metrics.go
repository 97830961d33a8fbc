package sfnt

import "encoding/binary"

// FontMetrics holds the face's font-unit metrics, derived from head/hhea/
// OS/2. Consumers scale to pixels by pixel_size / UnitsPerEm.
type FontMetrics struct {
	UnitsPerEm         uint16
	Ascent             float64
	Descent            float64
	LineGap            float64
	CapHeight          float64
	XHeight            float64
	UnderlinePosition  float64
	UnderlineThickness float64
}

// Default metric values used when the corresponding source table or field
// is absent: head/hhea defaults, plus OS/2-derived fallback constants
// matching the original font registry's behavior.
const (
	defaultUnitsPerEm         = 1000
	defaultAscent             = 800
	defaultDescent            = -200
	defaultLineGap            = 0
	defaultCapHeight          = 700
	defaultXHeight            = 500
	defaultUnderlinePosition  = -150
	defaultUnderlineThickness = 50
)

// Scaled returns a copy of m with every field except UnitsPerEm multiplied
// by sizePx/UnitsPerEm.
func (m FontMetrics) Scaled(sizePx float64) FontMetrics {
	scale := sizePx / float64(m.UnitsPerEm)
	return FontMetrics{
		UnitsPerEm:         m.UnitsPerEm,
		Ascent:             m.Ascent * scale,
		Descent:            m.Descent * scale,
		LineGap:            m.LineGap * scale,
		CapHeight:          m.CapHeight * scale,
		XHeight:            m.XHeight * scale,
		UnderlinePosition:  m.UnderlinePosition * scale,
		UnderlineThickness: m.UnderlineThickness * scale,
	}
}

// parseMetrics extracts FontMetrics from the head/hhea/OS2 tables of dir.
// head is required; its absence fails the overall parse with
// MissingTable. hhea and OS/2 are optional and fall back to documented
// defaults.
func parseMetrics(dir *TableDirectory) (FontMetrics, error) {
	head, ok := dir.Table(TagHead)
	if !ok {
		return FontMetrics{}, errMissingTable(TagHead)
	}
	if len(head) < 20 {
		return FontMetrics{}, errCorrupted("head table too short")
	}

	m := FontMetrics{
		UnitsPerEm:         binary.BigEndian.Uint16(head[18:20]),
		Ascent:             defaultAscent,
		Descent:            defaultDescent,
		LineGap:            defaultLineGap,
		CapHeight:          defaultCapHeight,
		XHeight:            defaultXHeight,
		UnderlinePosition:  defaultUnderlinePosition,
		UnderlineThickness: defaultUnderlineThickness,
	}
	if m.UnitsPerEm == 0 {
		m.UnitsPerEm = defaultUnitsPerEm
	}

	if hhea, ok := dir.Table(TagHhea); ok && len(hhea) >= 10 {
		m.Ascent = float64(int16(binary.BigEndian.Uint16(hhea[4:6])))
		m.Descent = float64(int16(binary.BigEndian.Uint16(hhea[6:8])))
		m.LineGap = float64(int16(binary.BigEndian.Uint16(hhea[8:10])))
	}

	if os2, ok := dir.Table(TagOS2); ok {
		parseOS2Metrics(os2, &m)
	}

	return m, nil
}

// parseOS2Metrics overlays OS/2-derived cap height and x-height onto m
// when present, leaving the documented defaults in place otherwise. The
// underline fields are not read here and always keep their defaults.
func parseOS2Metrics(os2 []byte, m *FontMetrics) {
	// sCapHeight/sxHeight live at offsets 88/86 in OS/2 version >= 2;
	// bounds-check before reading since earlier versions are shorter.
	if len(os2) >= 90 {
		m.XHeight = float64(int16(binary.BigEndian.Uint16(os2[86:88])))
		m.CapHeight = float64(int16(binary.BigEndian.Uint16(os2[88:90])))
	}
}
