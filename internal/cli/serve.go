package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/isdelr/phishstats/internal/api"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the reports as a read-only JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.services(cmd.Context())
			if err != nil {
				return err
			}
			router := api.NewRouter(api.Services{
				Users:   s.users,
				Events:  s.events,
				Reports: s.reports,
				Audit:   s.audit,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return api.Serve(ctx, a.cfg.Server.Port, router)
		},
	}
	cmd.Flags().Int("port", 0, "HTTP port (default 8080)")
	return cmd
}
