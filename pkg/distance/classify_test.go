package distance

import (
	"testing"

	"github.com/typomap/typomap/pkg/layout"
)

func qwertyMatrix() Matrix {
	return Classify(layout.Positions(layout.QWERTY))
}

func TestClassifyDiagonal(t *testing.T) {
	for _, def := range []layout.Definition{layout.QWERTY, layout.AZERTY, layout.QWERTZ, layout.Dvorak, layout.Colemak} {
		m := Classify(layout.Positions(def))
		for i := 0; i < Alphabet; i++ {
			if m[i][i] != Same {
				t.Errorf("%s: m[%d][%d] = %d, want 0", def.Name, i, i, m[i][i])
			}
		}
	}
}

func TestClassifySymmetric(t *testing.T) {
	for _, def := range []layout.Definition{layout.QWERTY, layout.AZERTY, layout.QWERTZ, layout.Dvorak, layout.Colemak} {
		m := Classify(layout.Positions(def))
		if !m.Symmetric() {
			t.Errorf("%s: matrix not symmetric", def.Name)
		}
	}
}

func TestClassifyValueSet(t *testing.T) {
	for _, def := range []layout.Definition{layout.QWERTY, layout.AZERTY, layout.QWERTZ, layout.Dvorak, layout.Colemak} {
		m := Classify(layout.Positions(def))
		for class := range m.Histogram() {
			switch class {
			case Same, Adjacent, Near, Unrelated:
			default:
				t.Errorf("%s: unexpected class %d", def.Name, class)
			}
		}
	}
}

func TestClassifyQwertyScenarios(t *testing.T) {
	m := qwertyMatrix()

	cases := []struct {
		a, b rune
		want byte
	}{
		{'q', 'w', Adjacent},  // same row, next key
		{'q', 'a', Adjacent},  // stagger-adjacent across rows
		{'q', 'p', Unrelated}, // opposite ends of the top row
		{'q', 'e', Near},      // two keys along the top row
		{'g', 'h', Adjacent},
		{'a', 'z', Adjacent}, // middle to bottom row through the stagger
	}
	for _, tc := range cases {
		if got := m.At(tc.a, tc.b); got != tc.want {
			t.Errorf("At(%q,%q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
		if got := m.At(tc.b, tc.a); got != tc.want {
			t.Errorf("At(%q,%q) = %d, want %d (symmetry)", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestClassifyAbsentLetters(t *testing.T) {
	// AZERTY's alphabetic block misses nothing, so use a partial layout.
	def := layout.Definition{Name: "partial", Rows: []string{"qwe", "asd"}}
	m := Classify(layout.Positions(def))

	// 'z' is absent: Unrelated to every present letter, both directions.
	for _, present := range "qweasd" {
		if got := m.At('z', present); got != Unrelated {
			t.Errorf("At(z,%q) = %d, want 255", present, got)
		}
		if got := m.At(present, 'z'); got != Unrelated {
			t.Errorf("At(%q,z) = %d, want 255", present, got)
		}
	}

	// The absent letter's own diagonal cell is still 0.
	if got := m.At('z', 'z'); got != Same {
		t.Errorf("At(z,z) = %d, want 0", got)
	}

	// Two absent letters are Unrelated to each other.
	if got := m.At('x', 'z'); got != Unrelated {
		t.Errorf("At(x,z) = %d, want 255", got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	a := qwertyMatrix()
	b := qwertyMatrix()
	if a != b {
		t.Error("two runs over the same layout should produce identical matrices")
	}
}

func TestNeighbors(t *testing.T) {
	m := qwertyMatrix()

	got := m.Neighbors('q')
	want := "aw"
	if string(got) != want {
		t.Errorf("Neighbors(q) = %q, want %q", string(got), want)
	}

	// 's' sits in the middle of the board and touches six keys.
	got = m.Neighbors('s')
	want = "adewxz"
	if string(got) != want {
		t.Errorf("Neighbors(s) = %q, want %q", string(got), want)
	}
}

func TestHistogram(t *testing.T) {
	m := qwertyMatrix()
	hist := m.Histogram()

	if hist[Same] != Alphabet {
		t.Errorf("Same count = %d, want %d", hist[Same], Alphabet)
	}
	total := 0
	for _, n := range hist {
		total += n
	}
	if total != Alphabet*Alphabet {
		t.Errorf("histogram total = %d, want %d", total, Alphabet*Alphabet)
	}
}
