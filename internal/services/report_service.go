package services

import (
	"context"
	"fmt"
	"math"

	"github.com/isdelr/phishstats/internal/frame"
	"github.com/isdelr/phishstats/internal/models"
	"github.com/isdelr/phishstats/internal/stats"
)

// Cohort labels used by the cohort report.
const (
	CohortWeak     = "Weak Password Users"
	CohortStrong   = "Strong Password Users"
	CohortAdmin    = "Admin Users"
	CohortNonAdmin = "Non-Admin Users"
)

// DefaultTopCritical is the number of critical users reported when none is requested.
const DefaultTopCritical = 10

// ReportServiceProvider defines the interface for the analysis reports.
type ReportServiceProvider interface {
	Summary(ctx context.Context) (models.Summary, error)
	Cohorts(ctx context.Context) ([]models.CohortStats, error)
	Intervals(ctx context.Context) (models.IntervalReport, error)
	Critical(ctx context.Context, top int) (models.CriticalReport, error)
}

// ReportService computes the descriptive reports over the campaign data.
type ReportService struct {
	users  UserServiceProvider
	events EventServiceProvider
	audit  AuditServiceProvider
}

// NewReportService creates a new ReportService.
func NewReportService(users UserServiceProvider, events EventServiceProvider, audit AuditServiceProvider) *ReportService {
	return &ReportService{users: users, events: events, audit: audit}
}

func metric(v float64) models.Metric { return models.Metric(v) }

func meanStd(xs []float64) models.MeanStd {
	return models.MeanStd{Mean: metric(stats.Mean(xs)), Std: metric(stats.StdDev(xs))}
}

func minMax(xs []float64) models.MinMax {
	return models.MinMax{Min: metric(stats.Min(xs)), Max: metric(stats.Max(xs))}
}

func countValues(counts map[int64]int) []float64 {
	out := make([]float64, 0, len(counts))
	for _, n := range counts {
		out = append(out, float64(n))
	}
	return out
}

func phishingEmails(u models.User) float64 { return u.PhishingEmails.Float() }

func totalEmails(u models.User) float64 { return u.TotalEmails.Float() }

// Summary computes the population-wide descriptive statistics.
func (s *ReportService) Summary(ctx context.Context) (models.Summary, error) {
	users, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return models.Summary{}, err
	}
	dateCounts, err := s.events.CountDatesByUser(ctx)
	if err != nil {
		return models.Summary{}, err
	}
	ipCounts, err := s.events.CountIPsByUser(ctx)
	if err != nil {
		return models.Summary{}, err
	}

	var admins []models.User
	for _, u := range users {
		if u.IsAdmin() {
			admins = append(admins, u)
		}
	}

	return models.Summary{
		Samples:        len(users),
		DatesPerUser:   meanStd(countValues(dateCounts)),
		IPsPerUser:     meanStd(countValues(ipCounts)),
		PhishingEmails: meanStd(stats.Floats(users, phishingEmails)),
		TotalEmails:    minMax(stats.Floats(users, totalEmails)),
		AdminPhishing:  minMax(stats.Floats(admins, phishingEmails)),
	}, nil
}

// CohortStatistics describes the phishing-email distribution of users.
func CohortStatistics(label string, users []models.User) models.CohortStats {
	xs := stats.Floats(users, phishingEmails)
	missing := 0
	for _, u := range users {
		missing += u.MissingFields()
	}
	return models.CohortStats{
		Label:        label,
		Observations: len(users),
		Missing:      missing,
		Median:       metric(stats.Median(xs)),
		Mean:         metric(stats.Mean(xs)),
		Variance:     metric(stats.Variance(xs)),
		Min:          metric(stats.Min(xs)),
		Max:          metric(stats.Max(xs)),
	}
}

// Cohorts compares weak/strong password users and admin/non-admin users.
func (s *ReportService) Cohorts(ctx context.Context) ([]models.CohortStats, error) {
	weak, strong, err := s.audit.Partition(ctx)
	if err != nil {
		return nil, fmt.Errorf("password audit: %w", err)
	}
	admins, err := s.users.GetUsersByPermission(ctx, models.PermissionAdmin)
	if err != nil {
		return nil, err
	}
	normal, err := s.users.GetUsersByPermission(ctx, models.PermissionNormal)
	if err != nil {
		return nil, err
	}

	return []models.CohortStats{
		CohortStatistics(CohortWeak, weak),
		CohortStatistics(CohortStrong, strong),
		CohortStatistics(CohortAdmin, admins),
		CohortStatistics(CohortNonAdmin, normal),
	}, nil
}

// Intervals computes each user's average password-change interval and the
// admin and normal cohort means. Users without dates count as 0 days; users
// whose permission flag is neither 0 nor 1 belong to no cohort.
func (s *ReportService) Intervals(ctx context.Context) (models.IntervalReport, error) {
	byUser, err := s.events.GetDatesByUser(ctx)
	if err != nil {
		return models.IntervalReport{}, err
	}
	users, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return models.IntervalReport{}, err
	}

	report := models.IntervalReport{PerUser: make([]models.UserInterval, 0, len(users))}
	days := make(map[int64]int, len(users))
	for _, u := range users {
		d, err := stats.AverageDateDifference(byUser[u.ID])
		if err != nil {
			return models.IntervalReport{}, fmt.Errorf("user %d: %w", u.ID, err)
		}
		days[u.ID] = d
		report.PerUser = append(report.PerUser, models.UserInterval{UserID: u.ID, Days: d})
	}

	admins, err := s.users.GetUsersByPermission(ctx, models.PermissionAdmin)
	if err != nil {
		return models.IntervalReport{}, err
	}
	normal, err := s.users.GetUsersByPermission(ctx, models.PermissionNormal)
	if err != nil {
		return models.IntervalReport{}, err
	}
	cohortDays := func(u models.User) float64 { return float64(days[u.ID]) }
	report.Admin = metric(stats.Mean(stats.Floats(admins, cohortDays)))
	report.Normal = metric(stats.Mean(stats.Floats(normal, cohortDays)))
	return report, nil
}

// Probabilities returns every user's phishing-click probability in id order.
// A user who received no phishing emails has probability 0; otherwise a
// missing count makes the probability NaN.
func Probabilities(users []models.User) []models.UserProbability {
	out := make([]models.UserProbability, len(users))
	for i, u := range users {
		out[i] = models.UserProbability{ID: u.ID, Probability: metric(probability(u))}
	}
	return out
}

func probability(u models.User) float64 {
	if u.PhishingEmails.Equal(0) {
		return 0
	}
	if !u.PhishingEmails.Valid || !u.ClickedEmails.Valid {
		return math.NaN()
	}
	return stats.PhishingProbability(int(u.ClickedEmails.Int64), int(u.PhishingEmails.Int64))
}

// CriticalFrame left-merges the user table with the probabilities on id.
// Users without a probability get a missing cell.
func CriticalFrame(users []models.User, probs []models.UserProbability) (*frame.Frame, error) {
	columns := []string{"id", "username", "phone", "province", "permissions", "total_emails", "phishing_emails", "clicked_emails"}
	data := make(map[string][]any, len(columns))
	for _, u := range users {
		data["id"] = append(data["id"], u.ID)
		data["username"] = append(data["username"], u.Username)
		data["phone"] = append(data["phone"], u.Phone)
		data["province"] = append(data["province"], u.Province)
		data["permissions"] = append(data["permissions"], u.Permissions)
		data["total_emails"] = append(data["total_emails"], u.TotalEmails)
		data["phishing_emails"] = append(data["phishing_emails"], u.PhishingEmails)
		data["clicked_emails"] = append(data["clicked_emails"], u.ClickedEmails)
	}
	for _, c := range columns {
		if data[c] == nil {
			data[c] = []any{}
		}
	}
	left, err := frame.New(columns, data, nil)
	if err != nil {
		return nil, err
	}

	ids := make([]any, len(probs))
	values := make([]any, len(probs))
	for i, p := range probs {
		ids[i] = p.ID
		values[i] = p.Probability
	}
	right, err := frame.New([]string{"id", "probability"}, map[string][]any{"id": ids, "probability": values}, nil)
	if err != nil {
		return nil, err
	}
	return frame.Merge(left, right, frame.MergeOptions{On: []string{"id"}, How: frame.Left})
}

// Critical ranks users by phishing-click probability and keeps the top ones.
func (s *ReportService) Critical(ctx context.Context, top int) (models.CriticalReport, error) {
	if top <= 0 {
		top = DefaultTopCritical
	}
	users, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return models.CriticalReport{}, err
	}

	probs := Probabilities(users)
	merged, err := CriticalFrame(users, probs)
	if err != nil {
		return models.CriticalReport{}, fmt.Errorf("merge probabilities: %w", err)
	}

	report := models.CriticalReport{Users: make([]models.CriticalUser, merged.Len())}
	for i := range report.Users {
		cu := models.CriticalUser{User: users[i]}
		cu.Probability = models.NaN()
		if p, ok := merged.Value(i, "probability").(models.Metric); ok {
			cu.Probability = p
		}
		report.Users[i] = cu
	}
	report.Top = stats.TopN(probs, top, func(p models.UserProbability) float64 { return float64(p.Probability) })
	return report, nil
}
