package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typomap/typomap/pkg/distance"
	"github.com/typomap/typomap/pkg/gen"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output      string // output directory for KYBD files
	layoutsFile string // optional TOML file with extra layouts
	neighbors   bool   // print per-letter adjacency after generating
}

// newGenerateCmd creates the generate command.
// With no arguments every registered layout is generated; otherwise
// only the named ones. Each layout's outcome is reported individually
// and one bad name never aborts the rest.
func newGenerateCmd() *cobra.Command {
	opts := generateOpts{output: "./keyboard_layouts"}

	cmd := &cobra.Command{
		Use:   "generate [layout...]",
		Short: "Generate KYBD distance files for keyboard layouts",
		Long: `Generate one 681-byte KYBD distance file per selected layout.

With no arguments, all registered layouts are generated.

Examples:
  typomap generate                              # all built-in layouts
  typomap generate qwerty dvorak                # a selection
  typomap generate -o ./out --neighbors qwerty  # with adjacency report
  typomap generate --layouts-file extra.toml workman`,
		RunE: func(c *cobra.Command, args []string) error {
			return runGenerate(c, &opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output directory for layout files")
	cmd.Flags().StringVar(&opts.layoutsFile, "layouts-file", "", "TOML file with additional layout definitions")
	cmd.Flags().BoolVar(&opts.neighbors, "neighbors", false, "print each letter's adjacent keys per layout")

	return cmd
}

func runGenerate(c *cobra.Command, opts *generateOpts, args []string) error {
	ctx := c.Context()
	logger := loggerFromContext(ctx)

	reg, err := buildRegistry(opts.layoutsFile)
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names = reg.Names()
	}

	logger.Infof("Generating %d layout file(s) into %s", len(names), opts.output)

	prog := newProgress(logger)
	g := gen.New(reg, logger)
	results, err := g.Generate(ctx, names, opts.output)
	if err != nil {
		return err
	}

	for _, res := range results {
		if res.Err != nil {
			printError("%s: %v", res.Layout, res.Err)
			continue
		}
		printSuccess("%s (%d bytes)", res.Layout, res.Bytes)
		printFile(res.Path)
		if opts.neighbors {
			printNeighbors(res.Matrix)
		}
	}

	failures := gen.FailureCount(results)
	prog.done(fmt.Sprintf("Generated %d of %d layout file(s)", len(results)-failures, len(results)))

	if failures == len(results) {
		return fmt.Errorf("all %d layout(s) failed", failures)
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d layout(s) failed", failures, len(results))
	}
	return nil
}

// printNeighbors prints the distance-1 adjacency view of a matrix,
// one line per letter that has neighbors on the layout.
func printNeighbors(m distance.Matrix) {
	for letter := 'a'; letter <= 'z'; letter++ {
		neighbors := m.Neighbors(letter)
		if len(neighbors) == 0 {
			continue
		}
		printDetail("%c: %s", letter, spaced(neighbors))
	}
}

// spaced joins runes with single spaces for readability.
func spaced(runes []rune) string {
	out := make([]byte, 0, len(runes)*2)
	for i, r := range runes {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, byte(r))
	}
	return string(out)
}
