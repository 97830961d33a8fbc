package main

import (
	"fmt"

	"github.com/boergens/fontkit/shaping"
	"github.com/boergens/fontkit/textlayout"
)

func runShape(args []string) error {
	fs, size, maxWidth, justifyFlag := newFlagSet("shape")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("usage: fontkit shape [flags] <font-path> <text>")
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

	fmt.Printf("shaped: %d glyphs, width=%.1f height=%.1f baseline=%.1f\n",
		len(shaped.Glyphs), shaped.Width, shaped.Height, shaped.Baseline)
	fmt.Printf("layout: %d lines, total %.1f x %.1f, overflow=%v\n",
		len(result.Lines), result.TotalWidth, result.TotalHeight, result.Overflow)
	for i, line := range result.Lines {
		fmt.Printf("  line %2d: %q (width=%.1f x_offset=%.1f y=%.1f)\n",
			i, text[line.TextStart:line.TextEnd], line.Width, line.XOffset, line.YOffset)
	}

	stats := shaper.Stats()
	fmt.Printf("shaping cache: hits=%d misses=%d\n", stats.Hits, stats.Misses)
	return nil
}

func toTextlayoutJustify(j justification) textlayout.Justification {
	switch j {
	case justifyRight:
		return textlayout.JustifyRight
	case justifyCenter:
		return textlayout.JustifyCenter
	case justifyFull:
		return textlayout.JustifyFull
	default:
		return textlayout.JustifyLeft
	}
}
