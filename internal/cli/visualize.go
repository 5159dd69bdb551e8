package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/typomap/typomap/pkg/distance"
	"github.com/typomap/typomap/pkg/layout"
	"github.com/typomap/typomap/pkg/render"
)

// visualizeOpts holds the command-line flags for the visualize command.
type visualizeOpts struct {
	format      string // dot, svg, or png
	output      string // output file path (stdout for dot if empty)
	layoutsFile string // optional TOML file with extra layouts
	near        bool   // include dashed class-2 edges
}

// newVisualizeCmd creates the visualize command, which renders a
// layout's adjacency graph with Graphviz.
func newVisualizeCmd() *cobra.Command {
	opts := visualizeOpts{format: "svg"}

	cmd := &cobra.Command{
		Use:   "visualize <layout>",
		Short: "Render a layout's adjacency graph",
		Long: `Render a layout's adjacency graph with keys pinned at their
physical positions. Class-1 pairs are drawn as solid edges; --near adds
dashed edges for class-2 pairs.

Examples:
  typomap visualize qwerty -o qwerty.svg
  typomap visualize dvorak --format png -o dvorak.png
  typomap visualize qwertz --format dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runVisualize(c, &opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg, or png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout for dot if empty)")
	cmd.Flags().StringVar(&opts.layoutsFile, "layouts-file", "", "TOML file with additional layout definitions")
	cmd.Flags().BoolVar(&opts.near, "near", false, "include dashed edges for class-2 pairs")

	return cmd
}

func runVisualize(c *cobra.Command, opts *visualizeOpts, name string) error {
	ctx := c.Context()
	logger := loggerFromContext(ctx)

	reg, err := buildRegistry(opts.layoutsFile)
	if err != nil {
		return err
	}
	def, err := reg.Get(name)
	if err != nil {
		return err
	}

	m := distance.Classify(layout.Positions(def))
	dot := render.ToDOT(def, m, render.Options{ShowNear: opts.near})

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = render.RenderSVG(ctx, dot)
	case "png":
		data, err = render.RenderPNG(ctx, dot)
	default:
		return fmt.Errorf("unknown format: %s (available: dot, svg, png)", opts.format)
	}
	if err != nil {
		return err
	}

	out := opts.output
	if out == "" {
		if opts.format != "dot" {
			out = fmt.Sprintf("%s.%s", def.Name, opts.format)
		} else {
			fmt.Print(dot)
			return nil
		}
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return err
	}

	logger.Debugf("rendered %s (%d bytes)", out, len(data))
	printSuccess("%s (%d bytes)", def.Name, len(data))
	printFile(out)
	return nil
}
