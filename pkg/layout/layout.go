// Package layout defines keyboard layouts and their key geometry.
//
// A layout is a named arrangement of lowercase letters into staggered
// rows, mirroring a physical keyboard. The package ships the common
// western layouts as built-ins, supports loading additional layouts
// from TOML files, and converts key positions into integer coordinates
// that downstream distance classification can compare exactly.
package layout

import (
	"github.com/typomap/typomap/pkg/errors"
)

// Definition is a named, ordered arrangement of keyboard rows.
// Each row lists its keys left to right as lowercase letters.
// Definitions are immutable after construction; a layout need not
// cover all 26 letters.
type Definition struct {
	Name string
	Rows []string
}

// Validate checks the structural invariants of a layout definition:
// a non-empty name, at least one row, every key a lowercase Latin
// letter, and no letter appearing twice anywhere in the layout.
func (d Definition) Validate() error {
	if d.Name == "" {
		return errors.New(errors.ErrCodeInvalidLayout, "layout has no name")
	}
	if len(d.Rows) == 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "layout %q has no rows", d.Name)
	}

	seen := make(map[rune]bool, 26)
	for i, row := range d.Rows {
		if row == "" {
			return errors.New(errors.ErrCodeInvalidLayout, "layout %q: row %d is empty", d.Name, i)
		}
		for _, key := range row {
			if key < 'a' || key > 'z' {
				return errors.New(errors.ErrCodeInvalidLayout, "layout %q: key %q is not a lowercase letter", d.Name, key)
			}
			if seen[key] {
				return errors.New(errors.ErrCodeInvalidLayout, "layout %q: duplicate key %q", d.Name, key)
			}
			seen[key] = true
		}
	}
	return nil
}

// Letters returns the set of letters present in the layout.
func (d Definition) Letters() map[rune]bool {
	letters := make(map[rune]bool, 26)
	for _, row := range d.Rows {
		for _, key := range row {
			letters[key] = true
		}
	}
	return letters
}

// KeyCount returns the total number of keys across all rows.
func (d Definition) KeyCount() int {
	n := 0
	for _, row := range d.Rows {
		n += len(row)
	}
	return n
}
