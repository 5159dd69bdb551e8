package distance

import "github.com/typomap/typomap/pkg/layout"

// Classification thresholds in half-key units. Adjacent keys differ by
// at most 2 half-keys in either axis once stagger is applied; these
// constants are calibrated to that encoding and must be reviewed
// together with the stagger table if it ever changes.
const (
	adjacentMax = 2
	nearMax     = 4
)

// Classify computes the full distance-class matrix for a layout's key
// positions. It is a pure, total function: every cell resolves to
// exactly one of {Same, Adjacent, Near, Unrelated} and identical input
// always yields an identical matrix, which keeps generated files
// byte-for-byte reproducible across runs and platforms.
func Classify(positions map[rune]layout.Position) Matrix {
	var m Matrix

	for i := 0; i < Alphabet; i++ {
		a := rune('a' + i)
		for j := 0; j < Alphabet; j++ {
			b := rune('a' + j)

			switch {
			case i == j:
				m[i][j] = Same
			default:
				pa, okA := positions[a]
				pb, okB := positions[b]
				if !okA || !okB {
					// Not comparable: at least one letter is not on
					// this layout.
					m[i][j] = Unrelated
					continue
				}
				m[i][j] = classify(pa, pb)
			}
		}
	}

	return m
}

// classify buckets the Chebyshev distance between two key positions.
func classify(a, b layout.Position) byte {
	cheb := max(abs(a.Row-b.Row), abs(a.Col-b.Col))
	switch {
	case cheb <= adjacentMax:
		return Adjacent
	case cheb <= nearMax:
		return Near
	default:
		return Unrelated
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
