package layout

// Position is a key's coordinate on the keyboard in half-key units.
// Row indices are doubled, column indices are doubled and shifted by
// the row's stagger, so fractional-key offsets stay integral.
type Position struct {
	Row int
	Col int
}

// rowStagger is the horizontal offset of each physical row in half-key
// units: the middle row sits half a key right of the top row, the
// bottom row a further key right. Rows beyond the table fall back to
// stagger(r) = 2r; extend the table here if a fourth row is ever added.
var rowStagger = [...]int{0, 1, 3}

// stagger returns the horizontal offset for row r in half-key units.
func stagger(r int) int {
	if r < len(rowStagger) {
		return rowStagger[r]
	}
	return 2 * r
}

// Positions maps each key of the layout to its half-key coordinate:
// (2r, 2c + stagger(r)) for row r, column c. Letters absent from the
// layout are absent from the map.
func Positions(def Definition) map[rune]Position {
	positions := make(map[rune]Position, def.KeyCount())
	for r, row := range def.Rows {
		offset := stagger(r)
		for c, key := range row {
			positions[key] = Position{Row: 2 * r, Col: 2*c + offset}
		}
	}
	return positions
}
