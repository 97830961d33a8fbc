package linebreak

import "testing"

func TestBreaksEmptyText(t *testing.T) {
	breaks := Breaks("")
	if len(breaks) != 1 || !breaks[0].Required || breaks[0].ByteOffset != 0 {
		t.Fatalf("Breaks(\"\") = %+v, want single required break at 0", breaks)
	}
}

func TestBreaksAlwaysEndsAtLen(t *testing.T) {
	text := "hello world"
	breaks := Breaks(text)
	last := breaks[len(breaks)-1]
	if last.ByteOffset != len(text) || !last.Required {
		t.Errorf("last break = %+v, want required break at %d", last, len(text))
	}
}

func TestBreaksOptionalAtSpace(t *testing.T) {
	breaks := Breaks("foo bar")
	found := false
	for _, b := range breaks {
		if b.ByteOffset == 4 && !b.Required {
			found = true
		}
	}
	if !found {
		t.Errorf("expected optional break at byte 4 (after space), got %+v", breaks)
	}
}

func TestBreaksMandatoryAtNewline(t *testing.T) {
	breaks := Breaks("foo\nbar")
	found := false
	for _, b := range breaks {
		if b.ByteOffset == 4 && b.Required {
			found = true
		}
	}
	if !found {
		t.Errorf("expected required break right after \\n, got %+v", breaks)
	}
}

func TestBreaksGraphemeClusterSafety(t *testing.T) {
	// U+0301 COMBINING ACUTE ACCENT must never start a line: its grapheme
	// cluster boundary sits after the base letter, not before the mark.
	text := "éclair" // e + combining acute + clair
	breaks := Breaks(text)
	for _, b := range breaks {
		if b.ByteOffset > 0 && b.ByteOffset < len("é") {
			t.Errorf("break at %d splits a grapheme cluster", b.ByteOffset)
		}
	}
}

func TestBreaksInRange(t *testing.T) {
	text := "foo bar baz"
	all := Breaks(text)
	sub := BreaksInRange(text, 4, 11)
	for _, b := range sub {
		if b.ByteOffset < 4 || b.ByteOffset > 11 {
			t.Errorf("BreaksInRange leaked offset %d outside [4,11]", b.ByteOffset)
		}
	}
	if len(sub) == 0 {
		t.Fatalf("BreaksInRange(%q, 4, 11) returned nothing, full set was %+v", text, all)
	}
}

func TestIsBreakAt(t *testing.T) {
	required, ok := IsBreakAt("foo\nbar", 4)
	if !ok || !required {
		t.Errorf("IsBreakAt(text, 4) = (%v, %v), want (true, true)", required, ok)
	}

	_, ok = IsBreakAt("foo\nbar", 2)
	if ok {
		t.Error("IsBreakAt(text, 2) should report no break opportunity mid-word")
	}
}

func TestLastBreakAtOrBefore(t *testing.T) {
	breaks := Breaks("foo bar baz")
	bp, ok := LastBreakAtOrBefore(breaks, 10)
	if !ok {
		t.Fatal("expected a break at or before byte 10")
	}
	if bp.ByteOffset > 10 {
		t.Errorf("LastBreakAtOrBefore returned offset %d > 10", bp.ByteOffset)
	}
}
