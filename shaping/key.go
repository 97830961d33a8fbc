package shaping

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"sort"
)

// Key is the shaping cache's key: the text, face id, size quantized to
// one decimal pixel, and a stable hash of every option that affects
// shaping output.
type Key struct {
	Text        string
	FaceID      int
	SizeFixed   int64 // round(size_px * 10)
	OptionsHash uint64
}

// NewKey quantizes sizePx and hashes opts to build a cache key.
func NewKey(text string, faceID int, sizePx float64, opts Options) Key {
	return Key{
		Text:        text,
		FaceID:      faceID,
		SizeFixed:   int64(math.Round(sizePx * 10)),
		OptionsHash: hashOptions(opts),
	}
}

// hashOptions hashes script, language, direction, the feature set
// (sorted by tag so the caller's iteration order never leaks in), the two
// boolean flags, and the two spacings by IEEE-754 bit pattern so that
// -0.0 and +0.0 hash distinctly.
func hashOptions(opts Options) uint64 {
	h := fnv.New64a()

	writeString := func(s string) {
		var lenBuf [8]byte
		binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(s)))
		h.Write(lenBuf[:])
		h.Write([]byte(s))
	}
	writeUint64 := func(v uint64) {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	writeBool := func(b bool) {
		if b {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}

	writeString(string(opts.Script))
	writeString(string(opts.Language))
	writeUint64(uint64(opts.Direction))

	features := append([]FontFeature(nil), opts.Features...)
	sort.Slice(features, func(i, j int) bool { return features[i].Tag < features[j].Tag })
	writeUint64(uint64(len(features)))
	for _, f := range features {
		writeString(f.Tag)
		writeUint64(uint64(f.Value))
	}

	writeBool(opts.Kerning)
	writeBool(opts.Ligatures)
	writeUint64(math.Float64bits(opts.LetterSpacing))
	writeUint64(math.Float64bits(opts.WordSpacing))

	return h.Sum64()
}
