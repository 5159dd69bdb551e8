package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/typomap/typomap/pkg/distance"
	"github.com/typomap/typomap/pkg/layout"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	layoutsFile string // optional TOML file with extra layouts
	interactive bool   // open the bubbletea key browser
}

// newInspectCmd creates the inspect command, a human-readable view of
// a layout's distance-1 adjacency. This view is derived from the
// matrix and never persisted.
func newInspectCmd() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect <layout>",
		Short: "Show each letter's adjacent keys for a layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runInspect(&opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.layoutsFile, "layouts-file", "", "TOML file with additional layout definitions")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse keys interactively")

	return cmd
}

func runInspect(opts *inspectOpts, name string) error {
	reg, err := buildRegistry(opts.layoutsFile)
	if err != nil {
		return err
	}
	def, err := reg.Get(name)
	if err != nil {
		return err
	}
	m := distance.Classify(layout.Positions(def))

	if opts.interactive {
		model := newKeyBrowserModel(def, m)
		_, err := tea.NewProgram(model).Run()
		return err
	}

	printInfo("%s adjacency (distance 1)", StyleHighlight.Render(def.Name))
	printNeighbors(m)
	return nil
}
