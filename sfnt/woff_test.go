package sfnt

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"testing"
)

// buildMinimalHead returns a 54-byte head table with unitsPerEm set at
// its documented offset (18).
func buildMinimalHead(unitsPerEm uint16) []byte {
	head := make([]byte, 54)
	binary.BigEndian.PutUint16(head[18:20], unitsPerEm)
	return head
}

func buildWoff1(t *testing.T, tables map[string][]byte) []byte {
	t.Helper()

	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}

	type entry struct {
		tag        Tag
		data       []byte
		compressed bool
	}
	entries := make([]entry, 0, len(tags))
	for _, tag := range tags {
		raw := tables[tag]
		t4, _ := TagFromString(tag)
		entries = append(entries, entry{tag: t4, data: raw, compressed: false})
	}

	headerSize := 44
	dirSize := len(entries) * 20
	dataStart := headerSize + dirSize

	var payload []byte
	offsets := make([]uint32, len(entries))
	for i, e := range entries {
		offsets[i] = uint32(dataStart + len(payload))
		payload = append(payload, e.data...)
	}

	out := make([]byte, dataStart+len(payload))
	binary.BigEndian.PutUint32(out[0:4], woffSignature)
	binary.BigEndian.PutUint32(out[4:8], sfntVersionTrueType) // flavor
	binary.BigEndian.PutUint16(out[12:14], uint16(len(entries)))

	for i, e := range entries {
		rec := out[headerSize+i*20 : headerSize+(i+1)*20]
		binary.BigEndian.PutUint32(rec[0:4], e.tag.Uint32())
		binary.BigEndian.PutUint32(rec[4:8], offsets[i])
		binary.BigEndian.PutUint32(rec[8:12], uint32(len(e.data))) // compLength == origLength: uncompressed
		binary.BigEndian.PutUint32(rec[12:16], uint32(len(e.data)))
		binary.BigEndian.PutUint32(rec[16:20], 0) // checksum
	}
	copy(out[dataStart:], payload)

	return out
}

func TestWoff1Reconstruction(t *testing.T) {
	head := buildMinimalHead(2048)
	cmap := []byte{0, 1, 2, 3, 4, 5, 6, 7}

	woff := buildWoff1(t, map[string][]byte{
		"head": head,
		"cmap": cmap,
	})

	face, err := Parse(woff)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if face.Metrics().UnitsPerEm != 2048 {
		t.Errorf("UnitsPerEm = %d, want 2048", face.Metrics().UnitsPerEm)
	}

	headTable, ok := face.Table(TagHead)
	if !ok || len(headTable) != 54 {
		t.Fatalf("head table = %d bytes, want 54", len(headTable))
	}

	cmapTable, ok := face.Table(TagCmap)
	if !ok || len(cmapTable) != 8 {
		t.Fatalf("cmap table = %d bytes, want 8", len(cmapTable))
	}
	if !bytes.Equal(cmapTable, cmap) {
		t.Errorf("cmap table contents mismatch")
	}
}

func TestWoff1CompressedTable(t *testing.T) {
	head := buildMinimalHead(1000)

	var compressed bytes.Buffer
	w := zlib.NewWriter(&compressed)
	w.Write(head)
	w.Close()

	tags := []Tag{TagHead}
	headerSize := 44
	dataStart := headerSize + 20

	out := make([]byte, dataStart+compressed.Len())
	binary.BigEndian.PutUint32(out[0:4], woffSignature)
	binary.BigEndian.PutUint32(out[4:8], sfntVersionTrueType)
	binary.BigEndian.PutUint16(out[12:14], 1)

	rec := out[headerSize : headerSize+20]
	binary.BigEndian.PutUint32(rec[0:4], tags[0].Uint32())
	binary.BigEndian.PutUint32(rec[4:8], uint32(dataStart))
	binary.BigEndian.PutUint32(rec[8:12], uint32(compressed.Len()))
	binary.BigEndian.PutUint32(rec[12:16], uint32(len(head)))
	copy(out[dataStart:], compressed.Bytes())

	face, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if face.Metrics().UnitsPerEm != 1000 {
		t.Errorf("UnitsPerEm = %d, want 1000", face.Metrics().UnitsPerEm)
	}
}
