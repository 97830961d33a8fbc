package font

import "golang.org/x/text/cases"

// styleMismatchPenalty dominates the score so that italic/normal
// separation always outweighs weight or stretch differences.
const styleMismatchPenalty = 1000.0

// familyFolder is the shared case folder for family-name comparison;
// cases.Fold is the idiomatic x/text replacement for hand-rolled
// strings.ToLower case-insensitive comparison, and a package-level
// Caser is safe for concurrent use across goroutines.
var familyFolder = cases.Fold()

// matchCandidate is the subset of a Font's registry state the matcher
// needs: its face id (for deterministic tie-breaking by insertion order)
// and its matchable variant.
type matchCandidate struct {
	id      FaceID
	family  string
	variant Variant
}

// foldFamily case-folds a family name for byte-for-byte comparison.
// cases.Fold performs full Unicode case folding (e.g. "ß" -> "ss"),
// which is a superset of the plain ASCII folding family names normally
// need; harmless for the ASCII family names in practice, but technically
// over-folds on non-ASCII input.
func foldFamily(s string) string {
	return familyFolder.String(s)
}

// score computes |Δweight| + 1000·[style≠requested] + |Δstretch| for a
// candidate against a requested variant.
func score(candidate Variant, requested Variant) float64 {
	s := absFloat(float64(candidate.Weight) - float64(requested.Weight))
	if candidate.Style != requested.Style {
		s += styleMismatchPenalty
	}
	s += absFloat(float64(candidate.Stretch) - float64(requested.Stretch))
	return s
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// matchDescriptor runs the matching algorithm over candidates in
// family-chain order. candidates must be supplied in ascending face_id
// (insertion) order so the tie-break of "lower face_id wins" falls out
// of a stable linear scan.
func matchDescriptor(candidates []matchCandidate, desc FontDescriptor) (FaceID, bool) {
	requested := Variant{Style: desc.Style, Weight: desc.Weight, Stretch: desc.Stretch}

	for _, family := range desc.Family {
		folded := foldFamily(family)

		var bestID FaceID
		bestScore := -1.0
		found := false

		for _, c := range candidates {
			if foldFamily(c.family) != folded {
				continue
			}
			s := score(c.variant, requested)
			if !found || s < bestScore {
				bestScore = s
				bestID = c.id
				found = true
			}
		}

		if found {
			return bestID, true
		}
	}

	return 0, false
}
