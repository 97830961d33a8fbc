package textlayout

import (
	"testing"

	"github.com/boergens/fontkit/shaping"
)

func lineOfAdvances(advances ...float64) *LayoutLine {
	glyphs := make([]shaping.PositionedGlyph, len(advances))
	width := 0.0
	pen := 0.0
	for i, a := range advances {
		glyphs[i] = shaping.PositionedGlyph{AdvanceX: a, PenX: pen}
		pen += a
		width += a
	}
	return &LayoutLine{Glyphs: glyphs, Width: width}
}

func TestJustifyLeftIsNoop(t *testing.T) {
	line := lineOfAdvances(10, 10, 10)
	Justify(line, 100, JustifyLeft, false)
	if line.XOffset != 0 {
		t.Errorf("x_offset = %v, want 0", line.XOffset)
	}
}

func TestJustifyRightMoves(t *testing.T) {
	line := lineOfAdvances(10, 10, 10)
	Justify(line, 100, JustifyRight, false)
	if line.XOffset != 70 {
		t.Errorf("x_offset = %v, want 70", line.XOffset)
	}
}

func TestJustifyCenterSplitsEvenly(t *testing.T) {
	line := lineOfAdvances(10, 10, 10)
	Justify(line, 100, JustifyCenter, false)
	if line.XOffset != 35 {
		t.Errorf("x_offset = %v, want 35", line.XOffset)
	}
}

func TestJustifyFullTerminalLineUnchanged(t *testing.T) {
	line := lineOfAdvances(10, 50, 10) // a sharp jump qualifies as a gap
	before := *line
	Justify(line, 100, JustifyFull, true)
	if line.XOffset != 0 || line.Width != before.Width {
		t.Errorf("terminal line under Full justification must stay left-aligned and unstretched, got x_offset=%v width=%v", line.XOffset, line.Width)
	}
}

func TestJustifyFullExpandsToTarget(t *testing.T) {
	line := lineOfAdvances(10, 50, 10) // middle glyph's advance is a gap
	Justify(line, 100, JustifyFull, false)
	if line.Width != 100 {
		t.Errorf("width after full justification = %v, want 100", line.Width)
	}
}

func TestJustifyFullNoGapsLeavesLineUnchanged(t *testing.T) {
	line := lineOfAdvances(10, 10, 10) // uniform advances, no detectable gap
	Justify(line, 100, JustifyFull, false)
	if line.XOffset != 0 || line.Width != 30 {
		t.Errorf("line with no gaps should stay left-aligned, got x_offset=%v width=%v", line.XOffset, line.Width)
	}
}

func TestJustifyFullNegativeExtraLeavesLineUnchanged(t *testing.T) {
	line := lineOfAdvances(60, 60) // already wider than target
	Justify(line, 100, JustifyFull, false)
	if line.XOffset != 0 {
		t.Errorf("overflowing line should not shrink, got x_offset=%v", line.XOffset)
	}
}

func TestJustifyAllLeavesLastLineLeftAlignedUnderFull(t *testing.T) {
	lines := []LayoutLine{*lineOfAdvances(10, 50, 10), *lineOfAdvances(10, 10)}
	JustifyAll(lines, 100, JustifyFull)
	if lines[1].XOffset != 0 {
		t.Errorf("last line x_offset = %v, want 0 (left-aligned under Full)", lines[1].XOffset)
	}
	if lines[0].Width != 100 {
		t.Errorf("first (non-terminal) line width = %v, want 100", lines[0].Width)
	}
}
