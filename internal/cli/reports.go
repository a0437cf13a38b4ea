package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/isdelr/phishstats/internal/chart"
	"github.com/isdelr/phishstats/internal/models"
	"github.com/isdelr/phishstats/internal/output"
	"github.com/isdelr/phishstats/internal/services"
	"github.com/spf13/cobra"
)

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Descriptive statistics over all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.services(cmd.Context())
			if err != nil {
				return err
			}
			summary, err := s.reports.Summary(cmd.Context())
			if err != nil {
				return err
			}
			return a.printer.Print(summary, func(w io.Writer) error { return writeSummary(w, summary) })
		},
	}
}

func newCohortsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cohorts",
		Short: "Phishing email statistics for weak/strong password and admin/non-admin users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.services(cmd.Context())
			if err != nil {
				return err
			}
			cohorts, err := s.reports.Cohorts(cmd.Context())
			if err != nil {
				return err
			}
			return a.printer.Print(cohorts, func(w io.Writer) error { return writeCohorts(w, cohorts) })
		},
	}
}

func newIntervalsCmd(a *app) *cobra.Command {
	var showChart bool
	cmd := &cobra.Command{
		Use:   "intervals",
		Short: "Average password change interval of admin and normal users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.services(cmd.Context())
			if err != nil {
				return err
			}
			report, err := s.reports.Intervals(cmd.Context())
			if err != nil {
				return err
			}
			return a.printer.Print(report, func(w io.Writer) error {
				if err := writeIntervals(w, report); err != nil {
					return err
				}
				if !showChart {
					return nil
				}
				_, err := fmt.Fprintln(w, intervalsChart(report, chart.ColorEnabled(w)))
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&showChart, "chart", false, "draw a bar chart")
	return cmd
}

func newCriticalCmd(a *app) *cobra.Command {
	var showChart bool
	cmd := &cobra.Command{
		Use:   "critical",
		Short: "Users most likely to click on phishing emails",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.services(cmd.Context())
			if err != nil {
				return err
			}
			top := a.cfg.Report.Top
			if top == 0 {
				top = services.DefaultTopCritical
			}
			report, err := s.reports.Critical(cmd.Context(), top)
			if err != nil {
				return err
			}
			return a.printer.Print(report, func(w io.Writer) error {
				if err := writeCritical(w, report); err != nil {
					return err
				}
				if !showChart {
					return nil
				}
				_, err := fmt.Fprintln(w, criticalChart(report, chart.ColorEnabled(w)))
				return err
			})
		},
	}
	cmd.Flags().Int("top", 0, "number of users to rank (default 10)")
	cmd.Flags().BoolVar(&showChart, "chart", false, "draw a bar chart")
	return cmd
}

func newWeakCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "weak",
		Short: "Stored password hashes found in the wordlist and their users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.services(cmd.Context())
			if err != nil {
				return err
			}
			report, err := s.audit.Report(cmd.Context())
			if err != nil {
				return err
			}
			return a.printer.Print(report, func(w io.Writer) error { return writeWeak(w, report) })
		},
	}
}

func intervalsChart(report models.IntervalReport, color bool) string {
	return chart.Grouped("Average password change interval (days)", []string{"Admin", "Normal"}, []chart.Series{{
		Name:   "interval",
		Color:  chart.Blue,
		Values: []float64{float64(report.Admin), float64(report.Normal)},
	}}, chart.Options{Color: color})
}

func criticalChart(report models.CriticalReport, color bool) string {
	labels := make([]string, len(report.Top))
	values := make([]float64, len(report.Top))
	for i, p := range report.Top {
		labels[i] = strconv.FormatInt(p.ID, 10)
		values[i] = float64(p.Probability)
	}
	title := fmt.Sprintf("Top %d most critical users (click probability)", len(report.Top))
	return chart.Bar(title, labels, values, chart.Red, chart.Options{Color: color})
}

func usersTable(users []models.User) output.SimpleTable {
	t := output.SimpleTable{Head: []string{"id", "username", "phone", "province", "permissions", "total_emails", "phishing_emails", "clicked_emails"}}
	for _, u := range users {
		t.Cells = append(t.Cells, []string{
			strconv.FormatInt(u.ID, 10),
			u.Username,
			u.Phone,
			u.Province,
			u.Permissions.String(),
			u.TotalEmails.String(),
			u.PhishingEmails.String(),
			u.ClickedEmails.String(),
		})
	}
	return t
}
