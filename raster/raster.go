// Package raster defines the rasterizer boundary: an external
// collaborator contract rasterize(face_bytes, face_index, glyph_id,
// size_px, mode) -> GlyphBitmap | RenderError, plus the vector-outline
// query used by vector-only consumers. Callers (such as cmd/fontkit's
// render command) consult the glyph cache (package cache) first and call
// a Rasterizer only on a miss. FreeTypeRasterizer in this package is one
// concrete backend; any other implementation of the interface can be
// substituted.
package raster

import "github.com/boergens/fontkit/cache"

// GlyphNotFoundError reports that a glyph id has no outline in the face.
type GlyphNotFoundError struct{ GlyphID uint16 }

func (e *GlyphNotFoundError) Error() string {
	return "raster: glyph not found"
}

// RasterizationFailedError wraps a backend failure message.
type RasterizationFailedError struct{ Message string }

func (e *RasterizationFailedError) Error() string {
	return "raster: rasterization failed: " + e.Message
}

// OutOfMemoryError reports that the backend could not allocate the
// bitmap buffer.
type OutOfMemoryError struct{}

func (e *OutOfMemoryError) Error() string { return "raster: out of memory" }

// Rasterizer is the rasterize() boundary: a pure function of (face
// bytes, face index, glyph id, size, mode). No callbacks, no state
// beyond whatever internal engine cache an implementation keeps for its
// own parsed-font reuse.
type Rasterizer interface {
	Rasterize(faceData []byte, faceIndex int, glyphID uint16, sizePx float64, mode cache.Format) (cache.GlyphBitmap, error)
}

// Point is a single contour coordinate in font units.
type Point struct {
	X, Y float64
}

// Contour is one closed or open polyline of a glyph's outline, in font
// units.
type Contour struct {
	Points []Point
	Closed bool
}

// BoundingBox is a contour-set's font-unit bounding box.
type BoundingBox struct {
	XMin, YMin, XMax, YMax float64
}

// GlyphOutline is a glyph's vector outline: its contours plus bounding
// box, both in font units. Used by vector-only consumers that don't
// need a rasterized bitmap.
type GlyphOutline struct {
	Contours []Contour
	Bounds   BoundingBox
}

// OutlineProvider is the get_outline(face, glyph) -> GlyphOutline
// boundary alongside Rasterizer.
type OutlineProvider interface {
	Outline(faceData []byte, faceIndex int, glyphID uint16) (GlyphOutline, error)
}
