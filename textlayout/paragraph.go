package textlayout

import (
	"github.com/boergens/fontkit/linebreak"
	"github.com/boergens/fontkit/shaping"
)

// emergencyBreakFactor is the over-width multiplier past which a line is
// force-broken even with no breakable whitespace, to keep a single
// unbreakable run from growing unboundedly.
const emergencyBreakFactor = 1.2

// Layout greedily fits shaped's glyphs into lines: walk them in order,
// breaking at the last known opportunity at or before the point a line
// would overflow MaxWidth, or force-breaking at 1.2x MaxWidth if no
// opportunity exists. Vertical stacking (line_spacing-scaled y offsets)
// and the Overflow flag are computed after all lines exist; justifying
// the resulting lines is the caller's next step.
func Layout(text string, shaped *shaping.ShapedText, opts LayoutOptions) (*LayoutResult, error) {
	if text == "" {
		return nil, &InvalidTextError{Reason: "text must be non-empty"}
	}
	if opts.MaxWidth <= 0 {
		return nil, &InvalidOptionsError{Reason: "max_width must be positive"}
	}
	if opts.LineSpacing <= 0 {
		return nil, &InvalidOptionsError{Reason: "line_spacing must be positive"}
	}

	breaks := linebreak.Breaks(text)

	var lines []LayoutLine
	var buf []shaping.PositionedGlyph
	lineStart := 0
	currentWidth := 0.0

	emit := func(end int) {
		lines = append(lines, LayoutLine{
			Glyphs:     append([]shaping.PositionedGlyph(nil), buf...),
			Width:      currentWidth,
			LineHeight: shaped.Height,
			Baseline:   shaped.Baseline,
			TextStart:  lineStart,
			TextEnd:    end,
		})
		buf = buf[:0]
		currentWidth = 0
		lineStart = end
	}

	for i, g := range shaped.Glyphs {
		byteIdx := g.ClusterByte

		if len(buf) > 0 && currentWidth+g.AdvanceX > opts.MaxWidth {
			if bp, ok := linebreak.LastBreakAtOrBefore(breaks, byteIdx); ok && bp.ByteOffset > lineStart {
				// Glyphs whose cluster lies at or after the break carry
				// over into the new line.
				var keep, carry []shaping.PositionedGlyph
				carryWidth := 0.0
				for _, bg := range buf {
					if bg.ClusterByte >= bp.ByteOffset {
						carry = append(carry, bg)
						carryWidth += bg.AdvanceX
					} else {
						keep = append(keep, bg)
					}
				}
				buf = keep
				currentWidth -= carryWidth
				emit(bp.ByteOffset)
				buf = append(buf, carry...)
				currentWidth = carryWidth
			} else if currentWidth+g.AdvanceX > opts.MaxWidth*emergencyBreakFactor {
				emit(byteIdx)
			}
		}

		buf = append(buf, g)
		currentWidth += g.AdvanceX

		nextByteIdx := len(text)
		if i+1 < len(shaped.Glyphs) {
			nextByteIdx = shaped.Glyphs[i+1].ClusterByte
		}
		if required, ok := linebreak.IsBreakAt(text, nextByteIdx); ok && required && nextByteIdx < len(text) {
			emit(nextByteIdx)
		}
	}

	if len(buf) > 0 || len(lines) == 0 {
		emit(len(text))
	}

	stackLines(lines, opts.LineSpacing)

	totalHeight := 0.0
	totalWidth := 0.0
	if len(lines) > 0 {
		last := lines[len(lines)-1]
		totalHeight = last.YOffset + last.LineHeight
	}
	for _, l := range lines {
		if w := l.XOffset + l.Width; w > totalWidth {
			totalWidth = w
		}
	}

	overflow := opts.HasMaxHeight && totalHeight > opts.MaxHeight

	return &LayoutResult{
		Lines:       lines,
		TotalWidth:  totalWidth,
		TotalHeight: totalHeight,
		Overflow:    overflow,
	}, nil
}

// stackLines sets the first line's y offset to 0 and each subsequent
// line's to the previous offset plus lineHeight*lineSpacing, in place.
func stackLines(lines []LayoutLine, lineSpacing float64) {
	y := 0.0
	for i := range lines {
		lines[i].YOffset = y
		y += lines[i].LineHeight * lineSpacing
	}
}
