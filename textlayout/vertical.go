package textlayout

import (
	"github.com/boergens/fontkit/linebreak"
	"github.com/boergens/fontkit/shaping"
)

// LayoutVertical runs an alternate top-to-bottom layout: MaxWidth is
// reinterpreted as the maximum height of one column; glyphs stack
// downward with their horizontal/vertical advances rotated (horizontal
// becomes vertical, horizontal is zeroed), and columns progress
// left-to-right in memory.
func LayoutVertical(text string, shaped *shaping.ShapedText, opts LayoutOptions) (*LayoutResult, error) {
	if opts.Direction != DirectionTopToBottom {
		return nil, &InvalidOptionsError{Reason: "vertical layout requires direction = top-to-bottom"}
	}
	if text == "" {
		return nil, &InvalidTextError{Reason: "text must be non-empty"}
	}
	if opts.MaxWidth <= 0 {
		return nil, &InvalidOptionsError{Reason: "max_width (column height limit) must be positive"}
	}
	if opts.LineSpacing <= 0 {
		return nil, &InvalidOptionsError{Reason: "line_spacing must be positive"}
	}

	maxColumnHeight := opts.MaxWidth
	breaks := linebreak.Breaks(text)

	var columns []LayoutLine
	var buf []shaping.PositionedGlyph
	colStart := 0
	currentHeight := 0.0

	emit := func(end int) {
		columns = append(columns, LayoutLine{
			Glyphs:     append([]shaping.PositionedGlyph(nil), buf...),
			Width:      currentHeight, // stacked extent along the column's own (vertical) axis
			LineHeight: shaped.Width,  // column width: font's horizontal extent
			Baseline:   shaped.Baseline,
			TextStart:  colStart,
			TextEnd:    end,
		})
		buf = buf[:0]
		currentHeight = 0
		colStart = end
	}

	for i, g := range shaped.Glyphs {
		rotated := rotateGlyph(g)
		byteIdx := g.ClusterByte

		if len(buf) > 0 && currentHeight+rotated.AdvanceY > maxColumnHeight {
			if bp, ok := linebreak.LastBreakAtOrBefore(breaks, byteIdx); ok && bp.ByteOffset > colStart {
				emit(bp.ByteOffset)
			} else if currentHeight+rotated.AdvanceY > maxColumnHeight*emergencyBreakFactor {
				emit(byteIdx)
			}
		}

		rotated.PenY = currentHeight + rotated.OffsetY
		buf = append(buf, rotated)
		currentHeight += rotated.AdvanceY

		nextByteIdx := len(text)
		if i+1 < len(shaped.Glyphs) {
			nextByteIdx = shaped.Glyphs[i+1].ClusterByte
		}
		if required, ok := linebreak.IsBreakAt(text, nextByteIdx); ok && required && nextByteIdx < len(text) {
			emit(nextByteIdx)
		}
	}

	if len(buf) > 0 || len(columns) == 0 {
		emit(len(text))
	}

	// Columns progress left-to-right in memory: x_offset_i accumulates
	// column width * line_spacing, mirroring stackLines but along x.
	x := 0.0
	for i := range columns {
		columns[i].XOffset = x
		x += columns[i].LineHeight * opts.LineSpacing
	}

	totalWidth := 0.0
	if len(columns) > 0 {
		last := columns[len(columns)-1]
		totalWidth = last.XOffset + last.LineHeight
	}
	totalHeight := 0.0
	for _, c := range columns {
		if h := c.Width; h > totalHeight {
			totalHeight = h
		}
	}

	overflow := opts.HasMaxHeight && totalWidth > opts.MaxHeight

	return &LayoutResult{
		Lines:       columns,
		TotalWidth:  totalWidth,
		TotalHeight: totalHeight,
		Overflow:    overflow,
	}, nil
}

// rotateGlyph swaps a glyph's horizontal advance into vertical advance
// and zeroes the horizontal advance.
func rotateGlyph(g shaping.PositionedGlyph) shaping.PositionedGlyph {
	g.AdvanceY = g.AdvanceX
	g.AdvanceX = 0
	return g
}
