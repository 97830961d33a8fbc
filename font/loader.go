package font

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/boergens/fontkit/sfnt"
)

// LoadFromFile loads every face contained in the font file at path. A
// TTC/OTC collection yields one Font per face.
func LoadFromFile(path string) ([]*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font file: %w", err)
	}
	return LoadFromBytes(data, path)
}

// LoadFromBytes loads every face contained in data. path is used only for
// metadata and may be empty for in-memory-only fonts.
func LoadFromBytes(data []byte, path string) ([]*Font, error) {
	if len(data) < 4 {
		return nil, errors.New("font data too short")
	}

	faces, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	fonts := make([]*Font, 0, len(faces))
	for _, face := range faces {
		fonts = append(fonts, &Font{
			face:      face,
			Info:      extractInfo(face),
			Path:      path,
			FaceIndex: face.FaceIndex(),
			RawData:   face.RawData(),
		})
	}
	return fonts, nil
}

// extractInfo derives FontInfo from a parsed face's name/OS2 tables,
// falling back to normal style/weight/stretch when those tables are
// absent or unreadable (mirrors the original registry's "Unknown"/
// normal-default policy).
func extractInfo(face *sfnt.Face) FontInfo {
	info := FontInfo{
		Family:  "Unknown",
		Style:   StyleNormal,
		Weight:  WeightNormal,
		Stretch: StretchNormal,
	}

	name, ok := face.Table(sfnt.TagName)
	if ok {
		if family := readNameRecord(name, nameIDFamily); family != "" {
			info.Family = family
			info.FullName = family
		}
		if ps := readNameRecord(name, nameIDPostScript); ps != "" {
			info.PostScriptName = ps
		}
	}

	if os2, ok := face.Table(sfnt.TagOS2); ok {
		info.Weight, info.Style = readOS2WeightStyle(os2, info.Weight, info.Style)
	}

	return info
}

const (
	nameIDFamily     = 1
	nameIDPostScript = 6
)

// IsFontFile reports whether path's extension indicates a font this
// package knows how to load.
func IsFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc", ".otc", ".woff", ".woff2":
		return true
	default:
		return false
	}
}
