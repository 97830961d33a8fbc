package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/boergens/fontkit/cache"
	"github.com/boergens/fontkit/raster"
	"github.com/boergens/fontkit/shaping"
	"github.com/boergens/fontkit/textlayout"
)

func runRender(args []string) error {
	fs, size, maxWidth, justifyFlag := newFlagSet("render")
	output := fs.String("o", "", "output PNG path")
	outputLong := fs.String("output", "", "output PNG path (long form)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("usage: fontkit render -o <output.png> [flags] <font-path> <text>")
	}
	outPath := *output
	if outPath == "" {
		outPath = *outputLong
	}
	if outPath == "" {
		return fmt.Errorf("missing -o output path")
	}

	reg, id, err := loadSingleFace(fs.Arg(0))
	if err != nil {
		return err
	}
	text := fs.Arg(1)

	mode, err := parseJustify(*justifyFlag)
	if err != nil {
		return err
	}

	shaper := shaping.NewShaper(shaping.NewGoTextEngine(), 1024)
	shaped, err := shaper.Shape(reg, int(id), text, *size, shaping.Options{
		Direction: shaping.DirectionLTR,
		Kerning:   true,
		Ligatures: true,
	})
	if err != nil {
		return fmt.Errorf("shape: %w", err)
	}

	result, err := textlayout.Layout(text, shaped, textlayout.LayoutOptions{
		MaxWidth:      *maxWidth,
		Justification: toTextlayoutJustify(mode),
		LineSpacing:   1.2,
	})
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	textlayout.JustifyAll(result.Lines, *maxWidth, toTextlayoutJustify(mode))

	faceData, faceIndex, ok := reg.FaceData(int(id))
	if !ok {
		return fmt.Errorf("render: no face data for id %d", id)
	}

	rasterizer := raster.NewFreeTypeRasterizer()
	glyphs := cache.NewGlyphCache(cache.DefaultMaxEntries, cache.DefaultMaxBytes)

	width := int(result.TotalWidth) + 2
	height := int(result.TotalHeight) + 2
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	for _, line := range result.Lines {
		for _, g := range line.Glyphs {
			key := cache.NewGlyphKey(g.FaceID, g.GlyphID, *size, cache.FormatGray)
			bmp, ok := glyphs.Get(key)
			if !ok {
				bmp, err = rasterizer.Rasterize(faceData, faceIndex, g.GlyphID, *size, cache.FormatGray)
				if err != nil {
					return fmt.Errorf("rasterize glyph %d: %w", g.GlyphID, err)
				}
				glyphs.Put(key, bmp)
			}
			blit(img, bmp, int(line.XOffset+g.PenX)+int(bmp.LeftBearing), int(line.YOffset+line.Baseline-float64(bmp.TopBearing)))
		}
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	stats := glyphs.StatsSnapshot()
	fmt.Printf("rendered %s (%dx%d), glyph cache hits=%d misses=%d entries=%d\n",
		outPath, width, height, stats.Hits, stats.Misses, stats.Entries)
	return nil
}

// blit copies an 8-bit gray glyph bitmap into dst at (x, y), clipping
// against dst's bounds. Coverage is inverted (0 = black ink on a white
// page) to match a conventional text-on-white render.
func blit(dst *image.Gray, bmp cache.GlyphBitmap, x, y int) {
	if bmp.Format != cache.FormatGray || len(bmp.Data) == 0 {
		return
	}
	for row := 0; row < bmp.Height; row++ {
		dy := y + row
		if dy < 0 || dy >= dst.Bounds().Dy() {
			continue
		}
		for col := 0; col < bmp.Width; col++ {
			dx := x + col
			if dx < 0 || dx >= dst.Bounds().Dx() {
				continue
			}
			coverage := bmp.Data[row*bmp.Pitch+col]
			if coverage == 0 {
				continue
			}
			existing := dst.GrayAt(dx, dy).Y
			ink := 0xff - coverage
			if ink < existing {
				dst.SetGray(dx, dy, color.Gray{Y: ink})
			}
		}
	}
}
