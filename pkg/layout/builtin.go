package layout

// Built-in layout definitions. The row data matches the physical
// alphabetic block of each layout; punctuation, digits, and modifier
// keys are not modeled.
var (
	// QWERTY is the standard US/UK layout.
	QWERTY = Definition{
		Name: "qwerty",
		Rows: []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"},
	}

	// AZERTY is the French layout.
	AZERTY = Definition{
		Name: "azerty",
		Rows: []string{"azertyuiop", "qsdfghjklm", "wxcvbn"},
	}

	// QWERTZ is the German layout.
	QWERTZ = Definition{
		Name: "qwertz",
		Rows: []string{"qwertzuiop", "asdfghjkl", "yxcvbnm"},
	}

	// Dvorak is the simplified phonetic-ordered layout.
	Dvorak = Definition{
		Name: "dvorak",
		Rows: []string{"pyfgcrl", "aoeuidhtns", "qjkxbmwvz"},
	}

	// Colemak is the ergonomic layout.
	Colemak = Definition{
		Name: "colemak",
		Rows: []string{"qwfpgjluy", "arstdhneio", "zxcvbkm"},
	}
)

// Builtin returns a registry holding the five built-in layouts.
func Builtin() *Registry {
	r := NewRegistry()
	for _, def := range []Definition{QWERTY, AZERTY, QWERTZ, Dvorak, Colemak} {
		// Built-in definitions are statically valid.
		if err := r.Register(def); err != nil {
			panic(err)
		}
	}
	return r
}
