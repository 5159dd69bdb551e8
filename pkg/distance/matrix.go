// Package distance classifies the physical proximity of letter pairs
// on a keyboard layout.
//
// The result is a 26x26 matrix of single-byte classes over the
// lowercase Latin alphabet. Classes summarize Chebyshev distance in
// half-key units, so diagonal neighbors count as adjacent just like
// orthogonal ones. Spell-correction engines use the classes to weight
// how likely one letter is a typo for another.
package distance

// Distance classes. These four values are the only ones that ever
// appear in a matrix.
const (
	Same      byte = 0   // a letter's distance to itself
	Adjacent  byte = 1   // directly adjacent key, diagonals included
	Near      byte = 2   // one key further out
	Unrelated byte = 255 // far away, or not on this layout
)

// Alphabet is the number of letters a matrix covers.
const Alphabet = 26

// Matrix is a 26x26 grid of distance classes, indexed by letter-'a'.
// Row i holds letter 'a'+i's classes to every letter 'a'..'z'.
// A built matrix is immutable by convention and safe to share.
type Matrix [Alphabet][Alphabet]byte

// At returns the distance class from letter a to letter b.
// Both letters must be lowercase 'a'..'z'.
func (m *Matrix) At(a, b rune) byte {
	return m[a-'a'][b-'a']
}

// Neighbors returns the letters classified as directly adjacent to
// letter, in alphabetical order. This is a read-only debugging view;
// it is never persisted.
func (m *Matrix) Neighbors(letter rune) []rune {
	var neighbors []rune
	for j := 0; j < Alphabet; j++ {
		if m[letter-'a'][j] == Adjacent {
			neighbors = append(neighbors, rune('a'+j))
		}
	}
	return neighbors
}

// Symmetric reports whether m[i][j] == m[j][i] for all pairs.
// The classification rule is symmetric, so this always holds for
// matrices produced by Classify; decoded files may disagree.
func (m *Matrix) Symmetric() bool {
	for i := 0; i < Alphabet; i++ {
		for j := i + 1; j < Alphabet; j++ {
			if m[i][j] != m[j][i] {
				return false
			}
		}
	}
	return true
}

// Histogram counts how many cells hold each class.
// Unexpected values are aggregated under their own byte key, which
// lets callers detect corrupt decoded files.
func (m *Matrix) Histogram() map[byte]int {
	hist := make(map[byte]int, 4)
	for i := 0; i < Alphabet; i++ {
		for j := 0; j < Alphabet; j++ {
			hist[m[i][j]]++
		}
	}
	return hist
}
