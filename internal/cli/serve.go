package cli

import (
	"github.com/spf13/cobra"

	"github.com/tmaxen/fpgrow/internal/api"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	noCache   bool   // disable caching
	redisAddr string // Redis cache address
}

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP mining API",
		Long: `Run the HTTP mining API.

The server exposes:
  POST /v1/mine    Mine frequent itemsets from inline transactions
  GET  /v1/health  Health and version check

With --redis, mined pattern sets are cached in Redis so repeated requests
for the same transaction database are served without re-mining. Otherwise a
local file cache is used.

The server shuts down gracefully on SIGINT/SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(cmd.Context(), opts.noCache, opts.redisAddr)
			if err != nil {
				return err
			}
			defer runner.Close()

			server := api.NewServer(runner, c.Logger)
			return server.ListenAndServe(cmd.Context(), opts.addr)
		},
	}

	cmd.Flags().StringVarP(&opts.addr, "addr", "a", opts.addr, "listen address")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "Redis address for caching (host:port)")

	return cmd
}
