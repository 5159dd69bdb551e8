package layout

import (
	"testing"

	"github.com/typomap/typomap/pkg/errors"
)

func TestBuiltin(t *testing.T) {
	reg := Builtin()

	want := []string{"azerty", "colemak", "dvorak", "qwerty", "qwertz"}
	got := reg.Names()
	if len(got) != len(want) {
		t.Fatalf("Names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestGet(t *testing.T) {
	reg := Builtin()

	def, err := reg.Get("qwerty")
	if err != nil {
		t.Fatalf("Get(qwerty): %v", err)
	}
	if def.Name != "qwerty" {
		t.Errorf("Name = %s", def.Name)
	}

	_, err = reg.Get("workman")
	if err == nil {
		t.Fatal("Get on unknown layout should fail")
	}
	if !errors.Is(err, errors.ErrCodeUnknownLayout) {
		t.Errorf("code = %s, want UNKNOWN_LAYOUT", errors.GetCode(err))
	}
}

func TestRegisterCollision(t *testing.T) {
	reg := Builtin()

	err := reg.Register(Definition{Name: "qwerty", Rows: []string{"abc"}})
	if err == nil {
		t.Fatal("Register should refuse to override an existing layout")
	}
	if !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("code = %s, want INVALID_LAYOUT", errors.GetCode(err))
	}

	// Original definition untouched.
	def, _ := reg.Get("qwerty")
	if len(def.Rows) != 3 {
		t.Error("existing layout was modified by failed Register")
	}
}

func TestRegisterInvalid(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(Definition{Name: "bad", Rows: []string{"a!"}}); err == nil {
		t.Fatal("Register should validate definitions")
	}
	if reg.Has("bad") {
		t.Error("invalid layout should not be registered")
	}
}
