package textlayout

import "testing"

func TestLayoutVerticalRequiresTopToBottomDirection(t *testing.T) {
	_, err := LayoutVertical("x", shapedASCII("x", 10), LayoutOptions{
		MaxWidth: 100, LineSpacing: 1, Direction: DirectionLTR,
	})
	if err == nil {
		t.Fatal("expected InvalidOptionsError for a non top-to-bottom direction")
	}
}

func TestLayoutVerticalStacksColumns(t *testing.T) {
	text := "foo bar baz"
	result, err := LayoutVertical(text, shapedASCII(text, 10), LayoutOptions{
		MaxWidth: 45, LineSpacing: 1.2, Direction: DirectionTopToBottom,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Lines) < 2 {
		t.Fatalf("expected text to wrap across multiple columns, got %d", len(result.Lines))
	}
	for i := 1; i < len(result.Lines); i++ {
		if result.Lines[i].XOffset <= result.Lines[i-1].XOffset {
			t.Errorf("column %d x_offset %v should exceed column %d's %v",
				i, result.Lines[i].XOffset, i-1, result.Lines[i-1].XOffset)
		}
	}
}

func TestLayoutVerticalRotatesAdvance(t *testing.T) {
	text := "ab"
	result, err := LayoutVertical(text, shapedASCII(text, 10), LayoutOptions{
		MaxWidth: 1000, LineSpacing: 1.2, Direction: DirectionTopToBottom,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Lines) != 1 {
		t.Fatalf("want 1 column, got %d", len(result.Lines))
	}
	for _, g := range result.Lines[0].Glyphs {
		if g.AdvanceX != 0 || g.AdvanceY != 10 {
			t.Errorf("glyph advance = (%v,%v), want (0,10) after rotation", g.AdvanceX, g.AdvanceY)
		}
	}
}
