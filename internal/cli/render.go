package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/isdelr/phishstats/internal/models"
	"github.com/isdelr/phishstats/internal/output"
	"github.com/isdelr/phishstats/internal/services"
)

func writeSummary(w io.Writer, s models.Summary) error {
	_, err := fmt.Fprintf(w, `Number of samples: %d
Average and standard deviation of the number of total dates password modified: %s %s
Average and standard deviation of the total detected IPs: %s %s
Average and standard deviation of the number of phishing emails interacted with: %s %s
Min and max values of total received emails: %s %s
Min and max values of phishing emails interacted with by an administrator: %s %s
`,
		s.Samples,
		s.DatesPerUser.Mean, s.DatesPerUser.Std,
		s.IPsPerUser.Mean, s.IPsPerUser.Std,
		s.PhishingEmails.Mean, s.PhishingEmails.Std,
		s.TotalEmails.Min, s.TotalEmails.Max,
		s.AdminPhishing.Min, s.AdminPhishing.Max,
	)
	return err
}

func writeCohorts(w io.Writer, cohorts []models.CohortStats) error {
	for _, c := range cohorts {
		_, err := fmt.Fprintf(w, `Data for: %s
Number of observations: %d
Number of missing values (i.e None): %d
Median of phishing emails: %s
Average of phishing emails: %s
Variance of phishing emails: %s
Min and max values of phishing emails: %s %s

`, c.Label, c.Observations, c.Missing, c.Median, c.Mean, c.Variance, c.Min, c.Max)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeIntervals(w io.Writer, r models.IntervalReport) error {
	t := output.SimpleTable{
		Head: []string{"Type", "Average password change interval"},
		Cells: [][]string{
			{"Admin", r.Admin.String()},
			{"Normal", r.Normal.String()},
		},
	}
	return output.Section(w, "Average password change interval", output.Table(t))
}

func writeCritical(w io.Writer, r models.CriticalReport) error {
	users := make([]models.User, len(r.Users))
	probs := make([]models.UserProbability, len(r.Users))
	for i, cu := range r.Users {
		users[i] = cu.User
		probs[i] = models.UserProbability{ID: cu.ID, Probability: cu.Probability}
	}
	merged, err := services.CriticalFrame(users, probs)
	if err != nil {
		return err
	}
	if err := output.Section(w, "Users with their phishing probability:", output.Table(merged)); err != nil {
		return err
	}

	top := output.SimpleTable{Head: []string{"id", "probability"}}
	for _, p := range r.Top {
		top.Cells = append(top.Cells, []string{strconv.FormatInt(p.ID, 10), p.Probability.String()})
	}
	return output.Section(w, fmt.Sprintf("Top %d most critical users:", len(r.Top)), output.Table(top))
}

func writeWeak(w io.Writer, r models.WeakPasswordReport) error {
	hashes := "(none)"
	if len(r.Hashes) > 0 {
		hashes = strings.Join(r.Hashes, "\n")
	}
	if err := output.Section(w, fmt.Sprintf("Weak password hashes (%s):", r.Algorithm), hashes); err != nil {
		return err
	}
	return output.Section(w, fmt.Sprintf("Users with a weak password: %d", len(r.Users)), output.Table(usersTable(r.Users)))
}

func writeLegal(w io.Writer, r models.LegalReport) error {
	worst := output.SimpleTable{Head: []string{"site", "cookies", "aviso", "proteccion_de_datos", "creacion"}}
	for _, s := range r.Worst {
		worst.Cells = append(worst.Cells, []string{s.Name, strconv.Itoa(s.Cookies), strconv.Itoa(s.Notice), strconv.Itoa(s.DataProtection), strconv.Itoa(s.Created)})
	}
	if err := output.Section(w, "Worst sites:", output.Table(worst)); err != nil {
		return err
	}

	if err := output.Section(w, "Sites complying with every privacy policy:", yearGroups(r.Compliant)); err != nil {
		return err
	}
	if err := output.Section(w, "Sites not complying with every privacy policy:", yearGroups(r.NonCompliant)); err != nil {
		return err
	}

	outdated := output.SimpleTable{Head: []string{"site", "cookies", "aviso", "proteccion_de_datos", "outdated"}}
	for _, s := range r.Outdated {
		outdated.Cells = append(outdated.Cells, []string{s.Name, strconv.FormatBool(s.Cookies), strconv.FormatBool(s.Notice), strconv.FormatBool(s.DataProtection), strconv.Itoa(s.Count)})
	}
	return output.Section(w, "Sites with the most outdated policies:", output.Table(outdated))
}

func yearGroups(groups []models.YearGroup) string {
	if len(groups) == 0 {
		return "(none)"
	}
	lines := make([]string, len(groups))
	for i, g := range groups {
		lines[i] = fmt.Sprintf("Year created: %d, Sites: %s", g.Year, strings.Join(g.Sites, ", "))
	}
	return strings.Join(lines, "\n")
}
