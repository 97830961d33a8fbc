package sfnt

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/dsnet/compress/brotli"
)

const woff2Signature = 0x774F4632 // 'wOF2'

// woff2TableTags is the WOFF2 known-tag table, indexed by the 6-bit tag
// index packed into each directory entry's flags byte.
var woff2TableTags = []string{
	"cmap", "head", "hhea", "hmtx",
	"maxp", "name", "OS/2", "post",
	"cvt ", "fpgm", "glyf", "loca",
	"prep", "CFF ", "VORG", "EBDT",
	"EBLC", "gasp", "hdmx", "kern",
	"LTSH", "PCLT", "VDMX", "vhea",
	"vmtx", "BASE", "GDEF", "GPOS",
	"GSUB", "EBSC", "JSTF", "MATH",
	"CBDT", "CBLC", "COLR", "CPAL",
	"SVG ", "sbix", "acnt", "avar",
	"bdat", "bloc", "bsln", "cvar",
	"fdsc", "feat", "fmtx", "fvar",
	"gvar", "hsty", "just", "lcar",
	"mort", "morx", "opbd", "prop",
	"trak", "Zapf", "Silf", "Glat",
	"Gloc", "Feat", "Sill",
}

type woff2TableEntry struct {
	tag              Tag
	transformVersion int
	origLength       uint32
	transformLength  uint32
	hasTransform     bool
}

// readUintBase128 reads a WOFF2 UIntBase128 variable-length integer: up
// to 5 bytes, big-endian 7-bits-per-byte with the continuation bit in
// the high bit, no leading zero bytes, no overflow past 2^32-1.
func readUintBase128(r *byteReader) (uint32, error) {
	var value uint32
	for i := 0; i < 5; i++ {
		b, err := r.readByte()
		if err != nil {
			return 0, err
		}
		if i == 0 && b == 0x80 {
			return 0, errCorrupted("UIntBase128 has a leading zero byte")
		}
		if value&0xFE000000 != 0 {
			return 0, errCorrupted("UIntBase128 overflows 32 bits")
		}
		value = value<<7 | uint32(b&0x7F)
		if b&0x80 == 0 {
			return value, nil
		}
	}
	return 0, errCorrupted("UIntBase128 exceeds 5 bytes")
}

// byteReader is a small bounds-checked big-endian cursor over a byte
// slice, used only while walking the WOFF2 table directory.
type byteReader struct {
	data []byte
	pos  int
}

func (r *byteReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errCorrupted("unexpected end of WOFF2 directory")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *byteReader) readUint32() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, errCorrupted("unexpected end of WOFF2 directory")
	}
	v := binary.BigEndian.Uint32(r.data[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

// reconstructWoff2 decompresses a WOFF2 container's Brotli payload and
// rebuilds an in-memory sfnt byte slice. Tables carrying the glyf/loca
// "default" transform (transformVersion 0) or the hmtx transform
// (transformVersion 1) are not reconstructed; such containers return a
// CorruptedData error naming the limitation, since reconstructing the
// transform is out of scope here.
func reconstructWoff2(data []byte) ([]byte, error) {
	if len(data) < 48 {
		return nil, errCorrupted("WOFF2 header too short")
	}
	if binary.BigEndian.Uint32(data[0:4]) != woff2Signature {
		return nil, errInvalidFormat("not a WOFF2 container")
	}

	flavor := binary.BigEndian.Uint32(data[4:8])
	numTables := int(binary.BigEndian.Uint16(data[12:14]))
	totalCompressedSize := binary.BigEndian.Uint32(data[20:24])

	r := &byteReader{data: data, pos: 48}

	entries := make([]woff2TableEntry, 0, numTables)
	seen := make(map[Tag]bool, numTables)
	var uncompressedSize uint64

	for i := 0; i < numTables; i++ {
		flagsByte, err := r.readByte()
		if err != nil {
			return nil, err
		}
		tagIndex := int(flagsByte & 0x3F)
		transformVersion := int(flagsByte&0xC0) >> 6

		var tagStr string
		if tagIndex == 63 {
			raw, err := r.readUint32()
			if err != nil {
				return nil, err
			}
			tagStr = Tag(raw).String()
		} else {
			if tagIndex >= len(woff2TableTags) {
				return nil, errCorrupted("WOFF2 table tag index out of range")
			}
			tagStr = woff2TableTags[tagIndex]
		}
		tag := Tag(binary.BigEndian.Uint32([]byte(tagStr)))

		if seen[tag] {
			return nil, errCorrupted("WOFF2 table " + tag.String() + " defined more than once")
		}
		seen[tag] = true

		origLength, err := readUintBase128(r)
		if err != nil {
			return nil, err
		}

		var transformLength uint32
		hasTransform := false
		isGlyfLoca := tagStr == "glyf" || tagStr == "loca"
		if (isGlyfLoca && transformVersion == 0) || (tagStr == "hmtx" && transformVersion != 0) {
			transformLength, err = readUintBase128(r)
			if err != nil {
				return nil, err
			}
			hasTransform = true
			uncompressedSize += uint64(transformLength)
		} else {
			uncompressedSize += uint64(origLength)
		}

		entries = append(entries, woff2TableEntry{
			tag:              tag,
			transformVersion: transformVersion,
			origLength:       origLength,
			transformLength:  transformLength,
			hasTransform:     hasTransform,
		})
	}

	if uint64(r.pos)+uint64(totalCompressedSize) > uint64(len(data)) {
		return nil, errCorrupted("WOFF2 compressed payload extends past end of data")
	}
	compData := data[r.pos : r.pos+int(totalCompressedSize)]

	br, err := brotli.NewReader(bytes.NewReader(compData), nil)
	if err != nil {
		return nil, errCorrupted("WOFF2 brotli stream: " + err.Error())
	}
	defer br.Close()
	decompressed, err := io.ReadAll(br)
	if err != nil {
		return nil, errCorrupted("WOFF2 brotli stream: " + err.Error())
	}
	if uint64(len(decompressed)) != uncompressedSize {
		return nil, errCorrupted("WOFF2 decompressed size does not match table lengths")
	}

	tableData := make(map[Tag][]byte, len(entries))
	checksums := make(map[Tag]uint32, len(entries))
	tags := make([]Tag, 0, len(entries))

	offset := uint64(0)
	for _, e := range entries {
		if e.hasTransform {
			return nil, errCorrupted("WOFF2 table " + e.tag.String() + " carries an unsupported transform (version " +
				string(rune('0'+e.transformVersion)) + "); reconstruction of transformed glyf/loca/hmtx is not implemented")
		}

		n := uint64(e.origLength)
		if offset+n > uint64(len(decompressed)) {
			return nil, errCorrupted("WOFF2 table " + e.tag.String() + " extends past decompressed payload")
		}
		tableData[e.tag] = decompressed[offset : offset+n]
		offset += n
		tags = append(tags, e.tag)
		checksums[e.tag] = 0 // WOFF2 does not carry per-table checksums in the directory
	}

	return buildTableDirectory(flavor, tags, tableData, checksums), nil
}
