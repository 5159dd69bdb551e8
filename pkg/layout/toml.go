package layout

import (
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/typomap/typomap/pkg/errors"
)

// layoutsFile is the on-disk TOML shape for user-supplied layouts:
//
//	[layouts.workman]
//	rows = ["qdrwbjfup", "ashtgyneoi", "zxmcvkl"]
type layoutsFile struct {
	Layouts map[string]struct {
		Rows []string `toml:"rows"`
	} `toml:"layouts"`
}

// LoadTOML reads additional layout definitions from a TOML file.
// Every definition is validated; the caller registers the results.
func LoadTOML(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIOFailure, err, "read layouts file %s", path)
	}

	var file layoutsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "parse layouts file %s", path)
	}
	if len(file.Layouts) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "layouts file %s defines no layouts", path)
	}

	defs := make([]Definition, 0, len(file.Layouts))
	for name, entry := range file.Layouts {
		def := Definition{Name: name, Rows: entry.Rows}
		if err := def.Validate(); err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	// Map iteration order is random; keep output deterministic.
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs, nil
}
