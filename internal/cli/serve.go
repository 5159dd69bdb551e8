package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/typomap/typomap/pkg/api"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr        string // listen address
	layoutsFile string // optional TOML file with extra layouts
}

// newServeCmd creates the serve command, a development HTTP server
// exposing layout files and adjacency views to engine integrators.
func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: ":8420"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve layout files over HTTP for engine development",
		Long: `Serve the registry's layouts over HTTP.

Routes:
  GET /layouts                    list layout names
  GET /layouts/{name}.bin         the 681-byte KYBD file
  GET /layouts/{name}/neighbors   JSON adjacency per letter`,
		RunE: func(c *cobra.Command, args []string) error {
			return runServe(c.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.addr, "addr", "a", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.layoutsFile, "layouts-file", "", "TOML file with additional layout definitions")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	reg, err := buildRegistry(opts.layoutsFile)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           api.NewRouter(reg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Serving %d layouts on %s", reg.Len(), opts.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
