package raster

import (
	"image"
	"math"

	"github.com/boergens/fontkit/cache"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// FreeTypeRasterizer implements Rasterizer and OutlineProvider over
// github.com/golang/freetype/truetype's glyph decoder and
// golang.org/x/image/vector's scanline rasterizer, turning decoded
// outline segments into an alpha mask via MoveTo/LineTo/QuadTo/Draw.
// This is this module's one concrete rasterizer implementation; callers
// are free to substitute another Rasterizer entirely.
//
// Limitation: only single-face containers are supported (faceIndex is
// accepted but ignored past 0), since truetype.Parse has no collection
// API of its own; TTC faces should be pre-split by the caller before
// reaching this adapter.
type FreeTypeRasterizer struct{}

// NewFreeTypeRasterizer creates a stateless FreeTypeRasterizer. It holds
// no cache of its own: the glyph cache (package cache) is the
// memoization layer in front of it.
func NewFreeTypeRasterizer() *FreeTypeRasterizer { return &FreeTypeRasterizer{} }

func (r *FreeTypeRasterizer) parse(faceData []byte) (*truetype.Font, error) {
	f, err := truetype.Parse(faceData)
	if err != nil {
		return nil, &RasterizationFailedError{Message: err.Error()}
	}
	return f, nil
}

// Rasterize implements Rasterizer. mode is honored only insofar as Mono
// is distinguished from the rest (thresholded alpha vs. anti-aliased
// gray); subpixel formats fall back to gray coverage, since the
// freetype/vector pipeline here produces a single alpha channel and has
// no LCD-filtering stage of its own.
func (r *FreeTypeRasterizer) Rasterize(faceData []byte, faceIndex int, glyphID uint16, sizePx float64, mode cache.Format) (cache.GlyphBitmap, error) {
	f, err := r.parse(faceData)
	if err != nil {
		return cache.GlyphBitmap{}, err
	}

	gid := truetype.Index(glyphID)
	if int(gid) >= f.NumGlyphs() {
		return cache.GlyphBitmap{}, &GlyphNotFoundError{GlyphID: glyphID}
	}

	scale := fixed.Int26_6(sizePx * 64)
	var buf truetype.GlyphBuf
	if err := buf.Load(f, scale, gid, font.HintingNone); err != nil {
		return cache.GlyphBitmap{}, &RasterizationFailedError{Message: err.Error()}
	}

	bounds := buf.Bounds
	width := int(math.Ceil(float64(bounds.Max.X-bounds.Min.X) / 64))
	height := int(math.Ceil(float64(bounds.Max.Y-bounds.Min.Y) / 64))
	if width <= 0 || height <= 0 {
		// Whitespace glyphs (e.g. space) legitimately decode to an empty
		// outline; an empty bitmap is correct, not an error.
		return cache.GlyphBitmap{
			LeftBearing: int(bounds.Min.X / 64),
			TopBearing:  int(bounds.Max.Y / 64),
			Format:      mode,
		}, nil
	}

	ras := vector.NewRasterizer(width, height)
	start := 0
	for _, end := range buf.End {
		drawContour(ras, buf.Point[start:end], bounds, height)
		start = end
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	data := mask.Pix
	if mode == cache.FormatMono {
		data = thresholdToMono(mask.Pix, width, height)
	}

	return cache.GlyphBitmap{
		Width:       width,
		Height:      height,
		LeftBearing: int(bounds.Min.X / 64),
		TopBearing:  int(bounds.Max.Y / 64),
		Pitch:       monoPitchOr(mode, width, mask.Stride),
		Data:        data,
		Format:      mode,
	}, nil
}

// Outline implements OutlineProvider, returning the glyph's contours
// directly in font units (unscaled), for vector-only consumers.
func (r *FreeTypeRasterizer) Outline(faceData []byte, faceIndex int, glyphID uint16) (GlyphOutline, error) {
	f, err := r.parse(faceData)
	if err != nil {
		return GlyphOutline{}, err
	}

	gid := truetype.Index(glyphID)
	if int(gid) >= f.NumGlyphs() {
		return GlyphOutline{}, &GlyphNotFoundError{GlyphID: glyphID}
	}

	var buf truetype.GlyphBuf
	unitsScale := fixed.Int26_6(f.FUnitsPerEm())
	if err := buf.Load(f, unitsScale, gid, font.HintingNone); err != nil {
		return GlyphOutline{}, &RasterizationFailedError{Message: err.Error()}
	}

	outline := GlyphOutline{
		Bounds: BoundingBox{
			XMin: float64(buf.Bounds.Min.X),
			YMin: float64(buf.Bounds.Min.Y),
			XMax: float64(buf.Bounds.Max.X),
			YMax: float64(buf.Bounds.Max.Y),
		},
	}

	start := 0
	for _, end := range buf.End {
		contour := buf.Point[start:end]
		start = end
		c := Contour{Closed: true, Points: make([]Point, len(contour))}
		for i, p := range contour {
			c.Points[i] = Point{X: float64(p.X), Y: float64(p.Y)}
		}
		outline.Contours = append(outline.Contours, c)
	}
	return outline, nil
}

// onCurve mirrors glyph.go's flagOnCurve (bit 0 of truetype.Point.Flags).
const onCurve = 1

// drawContour walks one glyph contour's points into ras, converting
// implied-on-curve quadratic runs (two consecutive off-curve points share
// an on-curve midpoint, per the TrueType glyf spec) into explicit QuadTo
// calls rather than treating every point as a straight-line vertex.
func drawContour(ras *vector.Rasterizer, points []truetype.Point, b fixed.Rectangle26_6, height int) {
	n := len(points)
	if n == 0 {
		return
	}

	start := 0
	for !onCurvePt(points[start]) {
		start++
		if start == n {
			// No on-curve point at all: synthesize one at the midpoint of
			// the first two off-curve points, per the glyf spec.
			mid := midpoint(points[0], points[1%n])
			ras.MoveTo(toRasterX(mid, b), toRasterY(mid, b, height))
			drawFromAllOffCurve(ras, points, b, height)
			return
		}
	}
	ras.MoveTo(toRasterX(points[start], b), toRasterY(points[start], b, height))

	prevOff, havePrevOff := truetype.Point{}, false
	for i := 1; i <= n; i++ {
		p := points[(start+i)%n]
		if onCurvePt(p) {
			if havePrevOff {
				quadTo(ras, prevOff, p, b, height)
				havePrevOff = false
			} else {
				lineTo(ras, p, b, height)
			}
			continue
		}
		if havePrevOff {
			mid := midpoint(prevOff, p)
			quadTo(ras, prevOff, mid, b, height)
		}
		prevOff, havePrevOff = p, true
	}
	if havePrevOff {
		quadTo(ras, prevOff, points[start], b, height)
	}
}

// drawFromAllOffCurve handles the degenerate all-off-curve contour.
func drawFromAllOffCurve(ras *vector.Rasterizer, points []truetype.Point, b fixed.Rectangle26_6, height int) {
	n := len(points)
	for i := 0; i < n; i++ {
		ctrl := points[i]
		mid := midpoint(points[i], points[(i+1)%n])
		quadTo(ras, ctrl, mid, b, height)
	}
}

func onCurvePt(p truetype.Point) bool { return p.Flags&onCurve != 0 }

func midpoint(a, b truetype.Point) truetype.Point {
	return truetype.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func lineTo(ras *vector.Rasterizer, p truetype.Point, b fixed.Rectangle26_6, height int) {
	ras.LineTo(toRasterX(p, b), toRasterY(p, b, height))
}

func quadTo(ras *vector.Rasterizer, ctrl, end truetype.Point, b fixed.Rectangle26_6, height int) {
	ras.QuadTo(toRasterX(ctrl, b), toRasterY(ctrl, b, height), toRasterX(end, b), toRasterY(end, b, height))
}

func toRasterX(p truetype.Point, b fixed.Rectangle26_6) float32 {
	return float32(p.X-b.Min.X) / 64
}

// toRasterY flips the font's upward Y axis into the rasterizer's
// downward image-space Y axis.
func toRasterY(p truetype.Point, b fixed.Rectangle26_6, height int) float32 {
	return float32(height) - float32(p.Y-b.Min.Y)/64
}

func thresholdToMono(gray []byte, width, height int) []byte {
	pitch := (width + 7) / 8
	out := make([]byte, pitch*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if gray[y*width+x] >= 128 {
				out[y*pitch+x/8] |= 1 << uint(7-x%8)
			}
		}
	}
	return out
}

func monoPitchOr(mode cache.Format, width, grayPitch int) int {
	if mode == cache.FormatMono {
		return (width + 7) / 8
	}
	return grayPitch
}
