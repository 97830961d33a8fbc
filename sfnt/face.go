package sfnt

import "encoding/binary"

const (
	sfntVersionTrueType = 0x00010000
	sfntVersionOTTO     = 0x4F54544F // 'OTTO'
	ttcTag              = 0x74746366 // 'ttcf'
)

// Face is a single parsed font face: its table directory plus the
// lazily-decoded higher-level tables the rest of the module needs.
// A Face is immutable once returned by Parse; it is exclusively owned by
// whatever Registry holds it, and any number of readers may borrow it
// concurrently.
type Face struct {
	dir        *TableDirectory
	metrics    FontMetrics
	fvar       *FvarTable // nil if the face has no fvar table
	avar       *AvarTable // nil if the face has no avar table (or no fvar)
	cpal       *CpalTable // nil if the face has no CPAL table
	colr       *ColrTable // nil if the face has no COLR table
	cbdt       BitmapInfo
	sbix       BitmapInfo
	svg        BitmapInfo
	faceIndex  int
	rawData    []byte
}

// Metrics returns the face's font-unit metrics.
func (f *Face) Metrics() FontMetrics { return f.metrics }

// Fvar returns the face's variation axes and named instances, or nil if
// the face is not a variable font.
func (f *Face) Fvar() *FvarTable { return f.fvar }

// Avar returns the face's axis-remapping table, or nil if absent.
func (f *Face) Avar() *AvarTable { return f.avar }

// Cpal returns the face's color palettes, or nil if absent.
func (f *Face) Cpal() *CpalTable { return f.cpal }

// Colr returns the face's color-glyph composition table, or nil if
// absent.
func (f *Face) Colr() *ColrTable { return f.colr }

// CBDT, Sbix, and SVG report presence/version of the corresponding
// header-only-parsed bitmap/vector glyph tables.
func (f *Face) CBDT() BitmapInfo { return f.cbdt }
func (f *Face) Sbix() BitmapInfo { return f.sbix }
func (f *Face) SVG() BitmapInfo  { return f.svg }

// FaceIndex returns the face's index within its source container (0 for
// single-face files, >0 within a collection).
func (f *Face) FaceIndex() int { return f.faceIndex }

// Table returns the raw bytes of table tag, or nil and false if absent.
func (f *Face) Table(tag Tag) ([]byte, bool) {
	return f.dir.Table(tag)
}

// RawData returns the original container bytes this face was parsed
// from (the reconstructed sfnt, for WOFF/WOFF2 inputs).
func (f *Face) RawData() []byte { return f.rawData }

// ValidateCoordinates checks a VariationCoordinates value against this
// face's declared axis bounds, rejecting any tag whose value falls
// outside that axis's [min, max]. Tags absent from the face are ignored.
func (f *Face) ValidateCoordinates(coords *VariationCoordinates) error {
	return coords.Validate(f.fvar)
}

// Parse decodes a single-face sfnt/WOFF/WOFF2 container. wOFF and wOF2
// inputs are decompressed and reconstructed into an in-memory sfnt
// before the table directory is parsed. Returns InvalidFormat for an
// unrecognized signature, and never returns a partial Face alongside an
// error.
func Parse(data []byte) (*Face, error) {
	faces, err := ParseCollection(data)
	if err != nil {
		return nil, err
	}
	return faces[0], nil
}

// ParseCollection decodes data, returning every face it contains. A
// plain sfnt/OTTO/WOFF/WOFF2 file yields a single-element slice; a 'ttcf'
// font collection yields one Face per entry, sharing the same
// underlying container bytes.
func ParseCollection(data []byte) ([]*Face, error) {
	if len(data) < 4 {
		return nil, errInvalidFormat("data too short to contain a signature")
	}

	signature := binary.BigEndian.Uint32(data[0:4])

	switch signature {
	case uint32(woffSignature):
		sfntData, err := reconstructWoff1(data)
		if err != nil {
			return nil, err
		}
		return parseSingleOrCollection(sfntData)
	case uint32(woff2Signature):
		sfntData, err := reconstructWoff2(data)
		if err != nil {
			return nil, err
		}
		return parseSingleOrCollection(sfntData)
	case sfntVersionTrueType, sfntVersionOTTO:
		face, err := parseFace(data, 0)
		if err != nil {
			return nil, err
		}
		return []*Face{face}, nil
	case ttcTag:
		return parseTTC(data)
	default:
		return nil, errInvalidFormat("unrecognized container signature")
	}
}

func parseSingleOrCollection(data []byte) ([]*Face, error) {
	if len(data) >= 4 && binary.BigEndian.Uint32(data[0:4]) == ttcTag {
		return parseTTC(data)
	}
	face, err := parseFace(data, 0)
	if err != nil {
		return nil, err
	}
	return []*Face{face}, nil
}

// parseTTC decodes a 'ttcf' font collection header and parses each
// constituent face, sharing the same backing byte slice.
func parseTTC(data []byte) ([]*Face, error) {
	if len(data) < 16 {
		return nil, errCorrupted("TTC header too short")
	}
	numFonts := int(binary.BigEndian.Uint32(data[8:12]))
	if 12+numFonts*4 > len(data) {
		return nil, errCorrupted("TTC directory extends past end of data")
	}

	faces := make([]*Face, 0, numFonts)
	for i := 0; i < numFonts; i++ {
		offset := binary.BigEndian.Uint32(data[12+i*4 : 16+i*4])
		if int(offset) >= len(data) {
			return nil, errCorrupted("TTC entry offset out of bounds")
		}
		face, err := parseFace(data[offset:], i)
		if err != nil {
			return nil, err
		}
		face.rawData = data
		faces = append(faces, face)
	}
	return faces, nil
}

// parseFace parses a single sfnt/OTTO table directory beginning at the
// start of data (i.e. data[0:4] holds the version signature).
func parseFace(data []byte, faceIndex int) (*Face, error) {
	dir, err := parseTableDirectory(data)
	if err != nil {
		return nil, err
	}

	metrics, err := parseMetrics(dir)
	if err != nil {
		return nil, err
	}

	f := &Face{
		dir:       dir,
		metrics:   metrics,
		faceIndex: faceIndex,
		rawData:   data,
		cbdt:      cbdtInfo(dir),
		sbix:      sbixInfo(dir),
		svg:       svgInfo(dir),
	}

	if raw, ok := dir.Table(TagFvar); ok {
		fvar, err := parseFvar(raw)
		if err != nil {
			return nil, err
		}
		f.fvar = fvar

		if avarRaw, ok := dir.Table(TagAvar); ok {
			avar, err := parseAvar(avarRaw, len(fvar.Axes))
			if err != nil {
				return nil, err
			}
			f.avar = avar
		}
	}

	if raw, ok := dir.Table(TagCPAL); ok {
		cpal, err := parseCpal(raw)
		if err != nil {
			return nil, err
		}
		f.cpal = cpal
	}

	if raw, ok := dir.Table(TagCOLR); ok {
		colr, err := parseColr(raw)
		if err != nil {
			return nil, err
		}
		f.colr = colr
	}

	return f, nil
}
