// Package gen drives batch generation of KYBD layout files.
//
// Generation of one layout is fully independent of any other: each
// selected name resolves to a definition, is classified into a
// distance matrix, and is written to its own file. The generator runs
// the selected layouts concurrently; the only shared resource is the
// output directory, and the one-file-per-layout naming convention
// keeps writers from contending.
package gen

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/typomap/typomap/pkg/distance"
	"github.com/typomap/typomap/pkg/errors"
	"github.com/typomap/typomap/pkg/kybd"
	"github.com/typomap/typomap/pkg/layout"
)

// Result reports the outcome of generating one layout.
type Result struct {
	Layout string          // requested layout name
	Path   string          // written file path (empty on failure)
	Bytes  int             // bytes written (0 on failure)
	Matrix distance.Matrix // the generated matrix (zero on failure)
	Err    error           // nil on success
}

// Generator resolves layouts from a registry and writes their KYBD
// files. A Generator is stateless apart from its registry and logger;
// one instance can serve concurrent Generate calls.
type Generator struct {
	Registry *layout.Registry
	Logger   *log.Logger
}

// New creates a generator. If reg is nil the built-in registry is
// used; if logger is nil the default logger is used.
func New(reg *layout.Registry, logger *log.Logger) *Generator {
	if reg == nil {
		reg = layout.Builtin()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{Registry: reg, Logger: logger}
}

// Generate builds and writes one KYBD file per requested name into
// outDir, creating the directory if absent. Layouts are generated
// concurrently; each one's success or failure is reported in its own
// Result, in request order, and a single bad name never aborts the
// rest. The returned error is non-nil only when no per-layout work
// could start at all (the output directory could not be created).
func (g *Generator) Generate(ctx context.Context, names []string, outDir string) ([]Result, error) {
	if len(names) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no layouts requested")
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIOFailure, err, "create output directory %s", outDir)
	}

	results := make([]Result, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			results[i] = g.generateOne(ctx, name, outDir)
		}(i, name)
	}
	wg.Wait()

	for _, res := range results {
		if res.Err != nil {
			g.Logger.Error("generation failed", "layout", res.Layout, "err", res.Err)
		} else {
			g.Logger.Debug("generated layout", "layout", res.Layout, "path", res.Path, "bytes", res.Bytes)
		}
	}
	return results, nil
}

// generateOne produces the file for a single layout.
func (g *Generator) generateOne(ctx context.Context, name, outDir string) Result {
	res := Result{Layout: name}

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	def, err := g.Registry.Get(name)
	if err != nil {
		res.Err = err
		return res
	}

	res.Matrix = distance.Classify(layout.Positions(def))

	path := filepath.Join(outDir, kybd.FileName(def.Name))
	if err := kybd.WriteFile(path, res.Matrix); err != nil {
		res.Err = err
		return res
	}

	res.Path = path
	res.Bytes = kybd.FileSize
	return res
}

// FailureCount returns how many results carry an error.
func FailureCount(results []Result) int {
	n := 0
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}
	return n
}
