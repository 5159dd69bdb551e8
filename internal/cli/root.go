package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/typomap/typomap/pkg/buildinfo"
	"github.com/typomap/typomap/pkg/layout"
)

// Execute runs the typomap CLI and returns an error if any command
// fails. This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands
// (generate, inspect, info, visualize, serve), configures logging
// based on the --verbose flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "typomap",
		Short:        "typomap precomputes keyboard distance files for spell correction",
		Long:         `typomap converts named keyboard layouts into compact KYBD distance files that memory-constrained spell-correction engines load to weight candidate corrections by physical key proximity.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newVisualizeCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}

// buildRegistry returns the built-in registry, extended with layouts
// from the given TOML file when layoutsFile is non-empty. Built-ins
// cannot be overridden.
func buildRegistry(layoutsFile string) (*layout.Registry, error) {
	reg := layout.Builtin()
	if layoutsFile == "" {
		return reg, nil
	}

	defs, err := layout.LoadTOML(layoutsFile)
	if err != nil {
		return nil, err
	}
	for _, def := range defs {
		if err := reg.Register(def); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
