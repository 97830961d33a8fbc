package shaping

import (
	"bytes"
	"fmt"
	"sync"

	gotextfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	hb "github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// GoTextEngine adapts the shaping-engine boundary to
// github.com/go-text/typesetting's HarfbuzzShaper. font.Font parsing is
// cached per face id since it's read-only and safe for concurrent use;
// font.Face wrapping it is cheap and built fresh per call, since it is
// not itself concurrency-safe.
type GoTextEngine struct {
	mu        sync.Mutex
	shaper    hb.HarfbuzzShaper
	fontCache map[int]*gotextfont.Font
}

// NewGoTextEngine creates an Engine backed by HarfBuzz via go-text.
func NewGoTextEngine() *GoTextEngine {
	return &GoTextEngine{fontCache: make(map[int]*gotextfont.Font)}
}

func (e *GoTextEngine) fontFor(req EngineRequest) (*gotextfont.Font, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if f, ok := e.fontCache[req.FaceID]; ok {
		return f, nil
	}

	f, err := gotextfont.ParseTTF(bytes.NewReader(req.FaceData))
	if err != nil {
		return nil, fmt.Errorf("shaping: parse face %d: %w", req.FaceID, err)
	}
	e.fontCache[req.FaceID] = f.Font
	return f.Font, nil
}

// Shape implements Engine.
func (e *GoTextEngine) Shape(req EngineRequest) (EngineOutput, error) {
	font, err := e.fontFor(req)
	if err != nil {
		return EngineOutput{}, err
	}
	face := gotextfont.NewFace(font)

	runes := []rune(req.Text)
	dir := di.DirectionLTR
	if req.Direction == DirectionRTL {
		dir = di.DirectionRTL
	}

	features := make([]hb.FontFeature, 0, len(req.Features))
	for _, f := range req.Features {
		features = append(features, hb.FontFeature{
			Tag:   mustParseTag(f.Tag),
			Value: f.Value,
		})
	}

	input := hb.Input{
		Text:         runes,
		RunStart:     0,
		RunEnd:       len(runes),
		Face:         face,
		Size:         fixed.Int26_6(req.SizePx*64 + 0.5),
		Direction:    dir,
		Script:       detectScript(runes),
		Language:     language.NewLanguage(string(req.Language)),
		FontFeatures: features,
	}

	e.mu.Lock()
	output := e.shaper.Shape(input)
	e.mu.Unlock()

	byteOffsets := runeByteOffsets(req.Text, runes)

	glyphs := make([]EngineGlyph, len(output.Glyphs))
	for i, g := range output.Glyphs {
		clusterByte := 0
		if g.ClusterIndex >= 0 && g.ClusterIndex < len(byteOffsets) {
			clusterByte = byteOffsets[g.ClusterIndex]
		} else if len(byteOffsets) > 0 {
			clusterByte = byteOffsets[len(byteOffsets)-1]
		}
		glyphs[i] = EngineGlyph{
			GlyphID:     uint16(g.GlyphID),
			XAdvance:    toFloat(g.XAdvance),
			YAdvance:    toFloat(g.YAdvance),
			XOffset:     toFloat(g.XOffset),
			YOffset:     toFloat(g.YOffset),
			ClusterByte: clusterByte,
		}
	}
	return EngineOutput{Glyphs: glyphs}, nil
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// runeByteOffsets returns, for each rune index, the byte offset at which
// it starts in the original string.
func runeByteOffsets(s string, runes []rune) []int {
	offsets := make([]int, len(runes))
	offset := 0
	i := 0
	for _, r := range s {
		offsets[i] = offset
		offset += len(string(r))
		i++
	}
	return offsets
}

// detectScript picks the script of the first non-space rune, mirroring
// the heuristic other_examples' go-text adapters use for single-script
// runs (paragraph-level script segmentation is outside this layer).
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// mustParseTag converts a 4-character feature tag string to go-text's Tag
// representation, matching this module's own Tag encoding (sfnt.Tag).
func mustParseTag(s string) hb.Tag {
	var b [4]byte
	copy(b[:], s)
	for i := len(s); i < 4; i++ {
		b[i] = ' '
	}
	return hb.Tag(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}
