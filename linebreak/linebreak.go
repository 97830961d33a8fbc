// Package linebreak computes the full ordered sequence of break
// opportunities in a string per UAX #14, distinguishing mandatory
// breaks (after a newline-class character) from optional ones (after a
// space-class character).
package linebreak

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/bidi"
)

// LineBreak is one break opportunity: a byte offset and whether the
// break is mandatory (must end the line) or merely permitted.
type LineBreak struct {
	ByteOffset int
	Required   bool
}

// isMandatory reports whether r is one of the UAX #14 BK/CR/LF/NL class
// characters that force a line end.
func isMandatory(r rune) bool {
	switch r {
	case '\n', '\r', '\u0085', '\u2028', '\u2029', '\v', '\f':
		return true
	default:
		return false
	}
}

// isOptional reports whether a break is permitted after r: Unicode space
// characters, plus the bidi WS/S/B classes layout/inline/linebreak.go
// also consults for additional break-eligible characters beyond
// unicode.IsSpace's notion of whitespace.
func isOptional(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	props, _ := bidi.LookupRune(r)
	switch props.Class() {
	case bidi.WS, bidi.S, bidi.B:
		return true
	default:
		return false
	}
}

// Breaks returns every break opportunity in text, in strictly ascending
// byte-offset order, addressing only grapheme-cluster-safe boundaries. A
// terminal mandatory break at len(text) is always the last element, even
// for empty text (which yields the single break at offset 0).
func Breaks(text string) []LineBreak {
	if len(text) == 0 {
		return []LineBreak{{ByteOffset: 0, Required: true}}
	}

	var breaks []LineBreak

	gr := uniseg.NewGraphemes(text)
	offset := 0
	for gr.Next() {
		cluster := gr.Str()
		offset += len(cluster)

		r, _ := utf8.DecodeRuneInString(cluster)
		isLast := offset == len(text)

		switch {
		case isLast:
			breaks = append(breaks, LineBreak{ByteOffset: offset, Required: true})
		case isMandatory(r):
			breaks = append(breaks, LineBreak{ByteOffset: offset, Required: true})
		case isOptional(r):
			breaks = append(breaks, LineBreak{ByteOffset: offset, Required: false})
		}
	}

	if len(breaks) == 0 || breaks[len(breaks)-1].ByteOffset != len(text) {
		breaks = append(breaks, LineBreak{ByteOffset: len(text), Required: true})
	}

	return breaks
}

// BreaksInRange returns the subset of Breaks(text) whose offsets lie in
// [start, end].
func BreaksInRange(text string, start, end int) []LineBreak {
	all := Breaks(text)
	out := make([]LineBreak, 0, len(all))
	for _, b := range all {
		if b.ByteOffset >= start && b.ByteOffset <= end {
			out = append(out, b)
		}
	}
	return out
}

// IsBreakAt reports whether text has a break opportunity exactly at
// offset, and if so whether it's mandatory.
func IsBreakAt(text string, offset int) (required bool, ok bool) {
	for _, b := range Breaks(text) {
		if b.ByteOffset == offset {
			return b.Required, true
		}
		if b.ByteOffset > offset {
			break
		}
	}
	return false, false
}

// LastBreakAtOrBefore returns the break opportunity (of any kind) with
// the greatest offset that is <= pos, used by the paragraph layout's
// greedy-fit break search. Returns ok=false if no break exists at or
// before pos.
func LastBreakAtOrBefore(breaks []LineBreak, pos int) (LineBreak, bool) {
	var best LineBreak
	found := false
	for _, b := range breaks {
		if b.ByteOffset > pos {
			break
		}
		best = b
		found = true
	}
	return best, found
}
