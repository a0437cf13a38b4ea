package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the users, dates and ips tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.openDB(cmd.Context()); err != nil {
				return err
			}
			log.Info().Str("path", a.cfg.Database.Path).Msg("Database initialised")
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Database ready at %s\n", a.cfg.Database.Path)
			return err
		},
	}
}
