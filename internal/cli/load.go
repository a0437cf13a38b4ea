package cli

import (
	"fmt"
	"io"

	"github.com/isdelr/phishstats/internal/services"
	"github.com/spf13/cobra"
)

func newLoadCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load the users JSON document into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			result, err := services.NewImportService(db).LoadFile(cmd.Context(), a.cfg.Data.Users)
			if err != nil {
				return err
			}
			return a.printer.Print(result, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Loaded %d users, %d dates and %d IPs from %s\n", result.Users, result.Dates, result.IPs, a.cfg.Data.Users)
				return err
			})
		},
	}
	cmd.Flags().String("users", "", "users JSON document (default users_data_online.json)")
	return cmd
}
