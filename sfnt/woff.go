package sfnt

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"io"
)

const woffSignature = 0x774F4646 // 'wOFF'

// reconstructWoff1 decompresses a WOFF1 container and rebuilds an
// in-memory sfnt byte slice equivalent to the original font file. Each
// table is zlib-inflated (or copied verbatim when origLength ==
// compLength, meaning "stored uncompressed") and re-padded to a 4-byte
// boundary; checksums are preserved verbatim from the WOFF directory.
func reconstructWoff1(data []byte) ([]byte, error) {
	if len(data) < 44 {
		return nil, errCorrupted("WOFF1 header too short")
	}
	if binary.BigEndian.Uint32(data[0:4]) != woffSignature {
		return nil, errInvalidFormat("not a WOFF1 container")
	}

	flavor := binary.BigEndian.Uint32(data[4:8])
	numTables := int(binary.BigEndian.Uint16(data[12:14]))

	type woffEntry struct {
		tag           Tag
		offset        uint32
		compLength    uint32
		origLength    uint32
		origChecksum  uint32
	}

	dirEnd := 44 + numTables*20
	if dirEnd > len(data) {
		return nil, errCorrupted("WOFF1 table directory extends past end of data")
	}

	entries := make([]woffEntry, numTables)
	tags := make([]Tag, numTables)
	for i := 0; i < numTables; i++ {
		rec := data[44+i*20 : 44+(i+1)*20]
		e := woffEntry{
			tag:          Tag(binary.BigEndian.Uint32(rec[0:4])),
			offset:       binary.BigEndian.Uint32(rec[4:8]),
			compLength:   binary.BigEndian.Uint32(rec[8:12]),
			origLength:   binary.BigEndian.Uint32(rec[12:16]),
			origChecksum: binary.BigEndian.Uint32(rec[16:20]),
		}
		entries[i] = e
		tags[i] = e.tag
	}

	tableData := make(map[Tag][]byte, numTables)
	checksums := make(map[Tag]uint32, numTables)
	for _, e := range entries {
		if uint64(e.offset)+uint64(e.compLength) > uint64(len(data)) {
			return nil, errCorrupted("WOFF1 table " + e.tag.String() + " extends past end of data")
		}
		raw := data[e.offset : e.offset+e.compLength]

		var table []byte
		if e.compLength == e.origLength {
			// Stored uncompressed.
			table = raw
		} else {
			r, err := zlib.NewReader(bytes.NewReader(raw))
			if err != nil {
				return nil, errCorrupted("WOFF1 table " + e.tag.String() + ": " + err.Error())
			}
			out, err := io.ReadAll(r)
			if err != nil {
				return nil, errCorrupted("WOFF1 table " + e.tag.String() + ": " + err.Error())
			}
			if uint32(len(out)) != e.origLength {
				return nil, errCorrupted("WOFF1 table " + e.tag.String() + " decompressed to wrong length")
			}
			table = out
		}

		tableData[e.tag] = table
		checksums[e.tag] = e.origChecksum
	}

	return buildTableDirectory(flavor, tags, tableData, checksums), nil
}
