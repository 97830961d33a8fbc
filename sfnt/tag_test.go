package sfnt

import "testing"

func TestTagRoundTrip(t *testing.T) {
	t.Run("uint32", func(t *testing.T) {
		for _, n := range []uint32{0, 1, 0x68656164, 0xFFFFFFFF} {
			tag := TagFromUint32(n)
			if tag.Uint32() != n {
				t.Fatalf("TagFromUint32(%d).Uint32() = %d", n, tag.Uint32())
			}
		}
	})

	t.Run("string", func(t *testing.T) {
		for _, s := range []string{"head", "wght", "SVG ", "CPAL"} {
			tag, err := TagFromString(s)
			if err != nil {
				t.Fatalf("TagFromString(%q): %v", s, err)
			}
			if tag.String() != s {
				t.Fatalf("TagFromString(%q).String() = %q", s, tag.String())
			}
		}
	})

	t.Run("wrong length fails", func(t *testing.T) {
		for _, s := range []string{"", "ab", "abcde"} {
			if _, err := TagFromString(s); err == nil {
				t.Fatalf("TagFromString(%q) should fail", s)
			}
		}
	})
}
