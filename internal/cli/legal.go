package cli

import (
	"fmt"
	"io"

	"github.com/isdelr/phishstats/internal/chart"
	"github.com/isdelr/phishstats/internal/models"
	"github.com/isdelr/phishstats/internal/services"
	"github.com/spf13/cobra"
)

func newLegalCmd(a *app) *cobra.Command {
	var (
		worst     int
		showChart bool
	)
	cmd := &cobra.Command{
		Use:   "legal",
		Short: "Privacy-policy compliance of the campaign's web sites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if worst <= 0 {
				return fmt.Errorf("--worst must be positive, got %d", worst)
			}
			svc := services.NewLegalService()
			sites, err := svc.LoadFile(a.cfg.Data.Legal)
			if err != nil {
				return err
			}
			report := svc.Report(sites, worst)
			return a.printer.Print(report, func(w io.Writer) error {
				if err := writeLegal(w, report); err != nil {
					return err
				}
				if !showChart {
					return nil
				}
				_, err := fmt.Fprintln(w, outdatedChart(report.Outdated, chart.ColorEnabled(w)))
				return err
			})
		},
	}
	cmd.Flags().String("legal", "", "legal JSON document (default legal_data_online.json)")
	cmd.Flags().IntVar(&worst, "worst", services.DefaultWorstSites, "number of sites in the worst-site rankings")
	cmd.Flags().BoolVar(&showChart, "chart", false, "draw a grouped bar chart of outdated policies")
	return cmd
}

func outdatedChart(sites []models.OutdatedSite, color bool) string {
	labels := make([]string, len(sites))
	cookies := make([]float64, len(sites))
	notice := make([]float64, len(sites))
	protection := make([]float64, len(sites))
	for i, s := range sites {
		labels[i] = s.Name
		cookies[i] = flag(s.Cookies)
		notice[i] = flag(s.Notice)
		protection[i] = flag(s.DataProtection)
	}
	title := fmt.Sprintf("Top %d sites with the most outdated policies", len(sites))
	return chart.Grouped(title, labels, []chart.Series{
		{Name: "cookies", Color: chart.Red, Values: cookies},
		{Name: "aviso", Color: chart.Green, Values: notice},
		{Name: "proteccion_de_datos", Color: chart.Blue, Values: protection},
	}, chart.Options{Color: color, Width: 10})
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
