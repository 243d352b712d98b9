// Package httpd implements the httpd command: it serves the selector
// generation HTTP API.
package httpd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/goselector/cmd/common"
	"github.com/jonesrussell/goselector/internal/api"
)

// Command returns the httpd command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "httpd",
		Short: "Serve the selector generation HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := api.NewServer(common.Config(), common.Logger())
			return server.Start(ctx)
		},
	}
}
