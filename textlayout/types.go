// Package textlayout implements paragraph layout, justification, and
// vertical (top-to-bottom) layout: slicing a ShapedText into lines or
// columns, computing per-line geometry, and positioning glyphs within
// the target width under an alignment mode. The paragraph fit is a
// simple greedy line-fill, not an optimal-fit (Knuth-Plass-style) line
// breaker.
package textlayout

import "github.com/boergens/fontkit/shaping"

// Justification selects the per-line alignment mode.
type Justification uint8

const (
	JustifyLeft Justification = iota
	JustifyRight
	JustifyCenter
	JustifyFull
)

// Direction is the paragraph flow direction. Paragraph layout accepts
// both LTR and RTL; Vertical layout accepts only TopToBottom.
type Direction = shaping.Direction

const (
	DirectionLTR         Direction = shaping.DirectionLTR
	DirectionRTL         Direction = shaping.DirectionRTL
	DirectionTopToBottom Direction = 2
)

// LayoutOptions configures a paragraph or vertical layout call.
type LayoutOptions struct {
	MaxWidth     float64
	MaxHeight    float64 // consulted only when HasMaxHeight is true
	HasMaxHeight bool    // false means unset: Overflow is always false

	Justification Justification
	LineSpacing   float64 // multiplier on line height; must be > 0
	Direction     Direction
}

// LayoutLine is the glyphs assigned to one line (or, under vertical
// layout, one column), plus its pre/post-justification geometry and the
// source byte range it covers.
type LayoutLine struct {
	Glyphs []shaping.PositionedGlyph

	// Width is the line's content width before justification adjusts it;
	// justification may rewrite it to Target for Full-justified
	// non-terminal lines.
	Width      float64
	LineHeight float64
	Baseline   float64

	XOffset float64
	YOffset float64

	TextStart int
	TextEnd   int
}

// LayoutResult is the ordered set of lines/columns plus aggregate
// dimensions and the overflow flag.
type LayoutResult struct {
	Lines       []LayoutLine
	TotalWidth  float64
	TotalHeight float64
	Overflow    bool
}

// InvalidTextError is raised when Layout is called with empty text.
type InvalidTextError struct{ Reason string }

func (e *InvalidTextError) Error() string { return "textlayout: invalid text: " + e.Reason }

// InvalidOptionsError is raised for non-positive MaxWidth/LineSpacing, or
// (Vertical layout only) a Direction other than TopToBottom.
type InvalidOptionsError struct{ Reason string }

func (e *InvalidOptionsError) Error() string { return "textlayout: invalid options: " + e.Reason }
