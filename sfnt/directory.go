package sfnt

import "encoding/binary"

// tableEntry is one record in a sfnt table directory.
type tableEntry struct {
	Offset   uint32
	Length   uint32
	Checksum uint32
}

// TableDirectory maps a Tag to the byte range holding that table's data
// within a container. Lookup is constant-time; insertion order is not
// preserved or meaningful.
type TableDirectory struct {
	entries map[Tag]tableEntry
	data    []byte
}

// Has reports whether tag is present in the directory.
func (d *TableDirectory) Has(tag Tag) bool {
	_, ok := d.entries[tag]
	return ok
}

// Table returns the raw bytes for tag, or nil and false if absent.
func (d *TableDirectory) Table(tag Tag) ([]byte, bool) {
	e, ok := d.entries[tag]
	if !ok {
		return nil, false
	}
	return d.data[e.Offset : e.Offset+e.Length], true
}

// Tags returns every tag present in the directory, in no particular order.
func (d *TableDirectory) Tags() []Tag {
	tags := make([]Tag, 0, len(d.entries))
	for t := range d.entries {
		tags = append(tags, t)
	}
	return tags
}

// parseTableDirectory reads the sfnt table directory starting immediately
// after the 4-byte format signature (i.e. data[4:]) and validates that
// every entry's offset+length lies within data.
func parseTableDirectory(data []byte) (*TableDirectory, error) {
	if len(data) < 12 {
		return nil, errCorrupted("header too short")
	}
	numTables := binary.BigEndian.Uint16(data[4:6])

	dirEnd := 12 + int(numTables)*16
	if dirEnd > len(data) {
		return nil, errCorrupted("table directory extends past end of data")
	}

	entries := make(map[Tag]tableEntry, numTables)
	for i := 0; i < int(numTables); i++ {
		rec := data[12+i*16 : 12+(i+1)*16]
		tag := Tag(binary.BigEndian.Uint32(rec[0:4]))
		checksum := binary.BigEndian.Uint32(rec[4:8])
		offset := binary.BigEndian.Uint32(rec[8:12])
		length := binary.BigEndian.Uint32(rec[12:16])

		end := uint64(offset) + uint64(length)
		if end > uint64(len(data)) {
			return nil, errCorrupted("table " + tag.String() + " extends past end of container")
		}

		entries[tag] = tableEntry{Offset: offset, Length: length, Checksum: checksum}
	}

	return &TableDirectory{entries: entries, data: data}, nil
}

// buildTableDirectory writes an sfnt header + table directory for tables,
// in the given tag order, followed by the table data itself, each table
// padded to a 4-byte boundary. Padding bytes are not counted in a table's
// directory length entry, matching how a decompressed WOFF1 table is
// reassembled into its sfnt form.
func buildTableDirectory(sfntVersion uint32, tags []Tag, tableData map[Tag][]byte, checksums map[Tag]uint32) []byte {
	numTables := len(tags)

	entrySelector := 0
	for (1 << (entrySelector + 1)) <= numTables {
		entrySelector++
	}
	searchRange := (1 << entrySelector) * 16
	rangeShift := numTables*16 - searchRange

	header := make([]byte, 12)
	binary.BigEndian.PutUint32(header[0:4], sfntVersion)
	binary.BigEndian.PutUint16(header[4:6], uint16(numTables))
	binary.BigEndian.PutUint16(header[6:8], uint16(searchRange))
	binary.BigEndian.PutUint16(header[8:10], uint16(entrySelector))
	binary.BigEndian.PutUint16(header[10:12], uint16(rangeShift))

	dirSize := numTables * 16
	out := make([]byte, 12+dirSize)
	copy(out, header)

	offset := uint32(12 + dirSize)
	for i, tag := range tags {
		tbl := tableData[tag]
		rec := out[12+i*16 : 12+(i+1)*16]
		binary.BigEndian.PutUint32(rec[0:4], tag.Uint32())
		binary.BigEndian.PutUint32(rec[4:8], checksums[tag])
		binary.BigEndian.PutUint32(rec[8:12], offset)
		binary.BigEndian.PutUint32(rec[12:16], uint32(len(tbl)))

		out = append(out, tbl...)
		padded := (len(tbl) + 3) &^ 3
		for p := len(tbl); p < padded; p++ {
			out = append(out, 0)
		}
		offset += uint32(padded)
	}

	return out
}
