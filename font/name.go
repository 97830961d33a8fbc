package font

import (
	"encoding/binary"
	"unicode/utf16"
)

// fsSelectionItalic is the OS/2 fsSelection bit indicating an italic face.
const fsSelectionItalic = 0x01

// readNameRecord extracts the first string for nameID from a name table,
// preferring the Windows (platform 3) Unicode BMP encoding record and
// falling back to any other platform's record for the same name ID.
func readNameRecord(data []byte, nameID uint16) string {
	if len(data) < 6 {
		return ""
	}
	count := int(binary.BigEndian.Uint16(data[2:4]))
	stringOffset := int(binary.BigEndian.Uint16(data[4:6]))

	var fallback string
	for i := 0; i < count; i++ {
		recOff := 6 + i*12
		if recOff+12 > len(data) {
			break
		}
		rec := data[recOff : recOff+12]
		platformID := binary.BigEndian.Uint16(rec[0:2])
		length := int(binary.BigEndian.Uint16(rec[8:10]))
		offset := int(binary.BigEndian.Uint16(rec[10:12]))
		recNameID := binary.BigEndian.Uint16(rec[6:8])

		if recNameID != nameID {
			continue
		}

		start := stringOffset + offset
		if start+length > len(data) || start < 0 {
			continue
		}
		raw := data[start : start+length]

		var s string
		if platformID == 3 || platformID == 0 {
			s = decodeUTF16BE(raw)
		} else {
			s = string(raw)
		}

		if platformID == 3 {
			return s
		}
		if fallback == "" {
			fallback = s
		}
	}
	return fallback
}

func decodeUTF16BE(raw []byte) string {
	if len(raw)%2 != 0 {
		raw = raw[:len(raw)-1]
	}
	units := make([]uint16, len(raw)/2)
	for i := range units {
		units[i] = binary.BigEndian.Uint16(raw[i*2 : i*2+2])
	}
	return string(utf16.Decode(units))
}

// readOS2WeightStyle maps an OS/2 table's usWeightClass and fsSelection
// italic bit onto this package's Weight/Style enums, falling back to the
// values already present when the table is too short to read.
func readOS2WeightStyle(os2 []byte, fallbackWeight Weight, fallbackStyle Style) (Weight, Style) {
	weight := fallbackWeight
	style := fallbackStyle

	if len(os2) >= 6 {
		w := binary.BigEndian.Uint16(os2[4:6])
		if w > 0 {
			weight = Weight(w)
		}
	}
	if len(os2) >= 64 {
		fsSelection := binary.BigEndian.Uint16(os2[62:64])
		if fsSelection&fsSelectionItalic != 0 {
			style = StyleItalic
		}
	}
	return weight, style
}
