package textlayout

import "github.com/boergens/fontkit/shaping"

// Justify applies alignment mode to a single line given the target
// width. isTerminal must be true only for the last line of a paragraph
// under Full justification: the terminal line is always left-aligned
// with its width unchanged.
func Justify(line *LayoutLine, target float64, mode Justification, isTerminal bool) {
	switch mode {
	case JustifyLeft:
		line.XOffset = 0
	case JustifyRight:
		line.XOffset = target - line.Width
	case JustifyCenter:
		line.XOffset = (target - line.Width) / 2
	case JustifyFull:
		if isTerminal {
			line.XOffset = 0
			return
		}
		justifyFull(line, target)
	default:
		line.XOffset = 0
	}
}

// JustifyAll applies mode to every line: under Full, every line except
// the last is fully justified and the last line is always left-aligned.
// Under any other mode, every line (including the last) is justified
// uniformly.
func JustifyAll(lines []LayoutLine, target float64, mode Justification) {
	for i := range lines {
		isTerminal := mode == JustifyFull && i == len(lines)-1
		Justify(&lines[i], target, mode, isTerminal)
	}
}

// justifyFull computes extra = target - width; if extra <= 0 or there
// are no gaps, leaves the line left-aligned. Otherwise distributes
// extra/gapCount across each detected gap, offsetting every subsequent
// glyph by the running sum, and sets width = target.
func justifyFull(line *LayoutLine, target float64) {
	extra := target - line.Width
	if extra <= 0 {
		line.XOffset = 0
		return
	}

	gaps := detectGaps(line.Glyphs)
	if len(gaps) == 0 {
		line.XOffset = 0
		return
	}

	perGap := extra / float64(len(gaps))

	running := 0.0
	for i := range line.Glyphs {
		line.Glyphs[i].PenX += running
		if gaps[i] {
			running += perGap
			line.Glyphs[i].AdvanceX += perGap
		}
	}

	line.Width = target
	line.XOffset = 0
}

// gapAdvanceJumpRatio is the heuristic threshold for detecting an
// inter-word gap by a sharp advance-width jump: an advance at least this
// many times the line's median glyph advance is treated as a word gap.
// This is an approximation; a more precise implementation would have
// the shaper tag each glyph with a "gap after" boolean instead of
// inferring gaps from advance widths after the fact.
const gapAdvanceJumpRatio = 2.5

// detectGaps approximates inter-word gap boundaries by flagging glyph
// indices whose advance jumps sharply above the line's median advance.
// Returns a bool slice parallel to glyphs: true at indices that open a
// gap (the glyph boundary after which the expansion is inserted).
func detectGaps(glyphs []shaping.PositionedGlyph) []bool {
	gaps := make([]bool, len(glyphs))
	if len(glyphs) == 0 {
		return gaps
	}

	median := medianAdvance(glyphs)
	if median <= 0 {
		return gaps
	}

	for i, g := range glyphs {
		if g.AdvanceX >= median*gapAdvanceJumpRatio {
			gaps[i] = true
		}
	}
	return gaps
}

func medianAdvance(glyphs []shaping.PositionedGlyph) float64 {
	advances := make([]float64, len(glyphs))
	for i, g := range glyphs {
		advances[i] = g.AdvanceX
	}
	sortFloats(advances)
	return advances[len(advances)/2]
}

// sortFloats is a tiny insertion sort; line glyph counts are small enough
// (typically tens, not thousands) that sort.Float64s would be the only
// reason to import "sort" for one call site.
func sortFloats(v []float64) {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j-1] > v[j]; j-- {
			v[j-1], v[j] = v[j], v[j-1]
		}
	}
}
