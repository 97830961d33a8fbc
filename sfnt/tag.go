package sfnt

import "fmt"

// Tag is a 4-byte big-endian table/feature/axis identifier. Tags order
// lexicographically by their constituent bytes.
type Tag uint32

// Well-known tags used throughout the container and variable-font decoders.
var (
	TagWght = MustTagFromString("wght")
	TagWdth = MustTagFromString("wdth")
	TagSlnt = MustTagFromString("slnt")
	TagOpsz = MustTagFromString("opsz")
	TagItal = MustTagFromString("ital")

	TagHead = MustTagFromString("head")
	TagHhea = MustTagFromString("hhea")
	TagOS2  = MustTagFromString("OS/2")
	TagCmap = MustTagFromString("cmap")
	TagGlyf = MustTagFromString("glyf")
	TagLoca = MustTagFromString("loca")
	TagHmtx = MustTagFromString("hmtx")
	TagMaxp = MustTagFromString("maxp")
	TagName = MustTagFromString("name")
	TagFvar = MustTagFromString("fvar")
	TagAvar = MustTagFromString("avar")
	TagCPAL = MustTagFromString("CPAL")
	TagCOLR = MustTagFromString("COLR")
	TagCBDT = MustTagFromString("CBDT")
	TagSbix = MustTagFromString("sbix")
	TagSVG  = MustTagFromString("SVG ") // trailing space is significant
)

// TagFromUint32 builds a Tag from its raw big-endian 32-bit representation.
func TagFromUint32(n uint32) Tag {
	return Tag(n)
}

// TagFromString builds a Tag from an exactly-4-byte ASCII string. It fails
// if the string's length is not 4.
func TagFromString(s string) (Tag, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("sfnt: tag %q must be exactly 4 bytes", s)
	}
	return Tag(uint32(s[0])<<24 | uint32(s[1])<<16 | uint32(s[2])<<8 | uint32(s[3])), nil
}

// MustTagFromString is TagFromString but panics on error; used only for the
// well-known constants above, whose strings are fixed at compile time.
func MustTagFromString(s string) Tag {
	t, err := TagFromString(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Uint32 returns the tag's raw big-endian 32-bit representation.
func (t Tag) Uint32() uint32 {
	return uint32(t)
}

// String renders the tag as its 4 ASCII bytes.
func (t Tag) String() string {
	return string([]byte{
		byte(t >> 24),
		byte(t >> 16),
		byte(t >> 8),
		byte(t),
	})
}
