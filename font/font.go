// Package font provides font container loading, discovery, and the font
// registry: the layer that owns parsed faces, assigns stable face ids,
// and matches a caller's FontDescriptor against them.
package font

import (
	"github.com/boergens/fontkit/sfnt"
)

// FaceID is a registry-assigned identifier for a loaded face. It is
// monotonically increasing and never reused within a Registry's
// lifetime.
type FaceID int

// Font is a loaded face plus the metadata the registry matches against.
type Font struct {
	// face is the parsed container; nil only ever transiently during
	// construction.
	face *sfnt.Face

	// Info carries the matchable metadata (family, weight, style,
	// stretch, names).
	Info FontInfo

	// Path is the filesystem path the font was loaded from. Empty for
	// fonts loaded directly from bytes.
	Path string

	// FaceIndex is the index within a font collection (TTC/OTC). Zero
	// for single-face files.
	FaceIndex int

	// RawData holds the original container bytes. For a TTC, every face
	// in the collection shares this slice.
	RawData []byte
}

// Face returns the underlying parsed container.
func (f *Font) Face() *sfnt.Face {
	return f.face
}

// FontInfo is the metadata a Font exposes for matching.
type FontInfo struct {
	Family         string
	PostScriptName string
	FullName       string
	Style          Style
	Weight         Weight
	Stretch        Stretch
}

// Style is a face's style axis.
type Style uint8

const (
	StyleNormal Style = iota
	StyleItalic
	StyleOblique
)

func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleItalic:
		return "italic"
	case StyleOblique:
		return "oblique"
	default:
		return "unknown"
	}
}

// Weight is a face's weight on the CSS 100-900 scale.
type Weight int

const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

func (w Weight) String() string {
	switch {
	case w <= 100:
		return "thin"
	case w <= 200:
		return "extra-light"
	case w <= 300:
		return "light"
	case w <= 400:
		return "normal"
	case w <= 500:
		return "medium"
	case w <= 600:
		return "semi-bold"
	case w <= 700:
		return "bold"
	case w <= 800:
		return "extra-bold"
	default:
		return "black"
	}
}

// Stretch is a face's width/stretch, represented on the standard 50-200
// percentage scale: {50, 62, 75, 87, 100, 112, 125, 150, 200}.
type Stretch float64

const (
	StretchUltraCondensed Stretch = 50
	StretchExtraCondensed Stretch = 62
	StretchCondensed      Stretch = 75
	StretchSemiCondensed  Stretch = 87
	StretchNormal         Stretch = 100
	StretchSemiExpanded   Stretch = 112
	StretchExpanded       Stretch = 125
	StretchExtraExpanded  Stretch = 150
	StretchUltraExpanded  Stretch = 200
)

func (s Stretch) String() string {
	switch {
	case s <= 50:
		return "ultra-condensed"
	case s <= 62:
		return "extra-condensed"
	case s <= 75:
		return "condensed"
	case s <= 87:
		return "semi-condensed"
	case s <= 100:
		return "normal"
	case s <= 112:
		return "semi-expanded"
	case s <= 125:
		return "expanded"
	case s <= 150:
		return "extra-expanded"
	default:
		return "ultra-expanded"
	}
}

// Variant combines style, weight, and stretch for font matching.
type Variant struct {
	Style   Style
	Weight  Weight
	Stretch Stretch
}

// NormalVariant returns the default variant.
func NormalVariant() Variant {
	return Variant{Style: StyleNormal, Weight: WeightNormal, Stretch: StretchNormal}
}

// BoldVariant returns a bold, upright, normal-stretch variant.
func BoldVariant() Variant {
	return Variant{Style: StyleNormal, Weight: WeightBold, Stretch: StretchNormal}
}

// ItalicVariant returns a normal-weight, italic, normal-stretch variant.
func ItalicVariant() Variant {
	return Variant{Style: StyleItalic, Weight: WeightNormal, Stretch: StretchNormal}
}

// BoldItalicVariant returns a bold italic, normal-stretch variant.
func BoldItalicVariant() Variant {
	return Variant{Style: StyleItalic, Weight: WeightBold, Stretch: StretchNormal}
}
