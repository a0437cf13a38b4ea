package services

import (
	"context"
	"math"
	"testing"

	"github.com/isdelr/phishstats/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_Summary(t *testing.T) {
	summary, err := newReports(t, seededDB(t)).Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Samples)
	assert.InDelta(t, 2.0, float64(summary.DatesPerUser.Mean), 1e-9)
	assert.InDelta(t, math.Sqrt(2.0/3.0), float64(summary.DatesPerUser.Std), 1e-9)
	assert.InDelta(t, 1.75, float64(summary.IPsPerUser.Mean), 1e-9)
	assert.InDelta(t, math.Sqrt(2.75/3.0), float64(summary.IPsPerUser.Std), 1e-9)
	assert.InDelta(t, 8.0, float64(summary.PhishingEmails.Mean), 1e-9)
	assert.InDelta(t, math.Sqrt(58), float64(summary.PhishingEmails.Std), 1e-9)
	assert.Equal(t, models.MinMax{Min: 10, Max: 100}, summary.TotalEmails)
	assert.Equal(t, models.MinMax{Min: 0, Max: 20}, summary.AdminPhishing)
}

func TestReportService_SummaryEmptyDatabase(t *testing.T) {
	summary, err := newReports(t, setupDB(t)).Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Samples)
	assert.True(t, summary.PhishingEmails.Mean.IsNaN())
	assert.True(t, summary.AdminPhishing.Max.IsNaN())
}

func TestReportService_Cohorts(t *testing.T) {
	cohorts, err := newReports(t, seededDB(t)).Cohorts(context.Background())
	require.NoError(t, err)
	require.Len(t, cohorts, 4)

	weak := cohorts[0]
	assert.Equal(t, CohortWeak, weak.Label)
	assert.Equal(t, 3, weak.Observations)
	assert.Equal(t, 3, weak.Missing)
	assert.Equal(t, models.Metric(10), weak.Median)
	assert.InDelta(t, 12.0, float64(weak.Mean), 1e-9)
	assert.InDelta(t, 52.0, float64(weak.Variance), 1e-9)
	assert.Equal(t, models.Metric(6), weak.Min)
	assert.Equal(t, models.Metric(20), weak.Max)

	strong := cohorts[1]
	assert.Equal(t, CohortStrong, strong.Label)
	assert.Equal(t, 2, strong.Observations)
	assert.Equal(t, 0, strong.Missing)
	assert.InDelta(t, 8.0, float64(strong.Variance), 1e-9)

	admin := cohorts[2]
	assert.Equal(t, CohortAdmin, admin.Label)
	assert.Equal(t, 2, admin.Observations)
	assert.InDelta(t, 200.0, float64(admin.Variance), 1e-9)

	normal := cohorts[3]
	assert.Equal(t, CohortNonAdmin, normal.Label)
	assert.Equal(t, 3, normal.Observations)
	assert.Equal(t, 3, normal.Missing)
	assert.Equal(t, models.Metric(6), normal.Median)
	assert.InDelta(t, 20.0/3.0, float64(normal.Mean), 1e-9)
	assert.InDelta(t, 28.0/3.0, float64(normal.Variance), 1e-9)
}

func TestCohortStatistics_Empty(t *testing.T) {
	c := CohortStatistics("empty", nil)
	assert.Equal(t, 0, c.Observations)
	assert.True(t, c.Median.IsNaN())
	assert.True(t, c.Variance.IsNaN())
}

func TestReportService_Intervals(t *testing.T) {
	report, err := newReports(t, seededDB(t)).Intervals(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.UserInterval{
		{UserID: 1, Days: 10},
		{UserID: 2, Days: 4},
		{UserID: 3, Days: 0},
		{UserID: 4, Days: 31},
		{UserID: 5, Days: 0},
	}, report.PerUser)
	assert.InDelta(t, 5.0, float64(report.Admin), 1e-9)
	assert.InDelta(t, 35.0/3.0, float64(report.Normal), 1e-9)
}

func TestReportService_IntervalsSkipUsersWithoutPermission(t *testing.T) {
	db := loadDocument(t, `{"usuarios": [
		{"norm": {"permisos": "0", "emails": {"total": 1, "phishing": 1, "cliclados": 0},
			"fechas": ["01/01/2020", "11/01/2020"], "ips": []}},
		{"ghost": {"permisos": null, "emails": {"total": 1, "phishing": 1, "cliclados": 0},
			"fechas": ["01/01/2020", "31/01/2020"], "ips": []}}
	]}`)

	report, err := newReports(t, db).Intervals(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.UserInterval{{UserID: 1, Days: 10}, {UserID: 2, Days: 30}}, report.PerUser)
	assert.Equal(t, models.Metric(10), report.Normal)
	assert.True(t, report.Admin.IsNaN())
}

func TestReportService_IntervalsInvalidDate(t *testing.T) {
	db := seededDB(t)
	_, err := db.Exec(`INSERT INTO dates (user_id, date) VALUES (1, '2020-13-45')`)
	require.NoError(t, err)

	_, err = newReports(t, db).Intervals(context.Background())
	assert.Error(t, err)
}

func TestReportService_Critical(t *testing.T) {
	report, err := newReports(t, seededDB(t)).Critical(context.Background(), 3)
	require.NoError(t, err)

	require.Len(t, report.Users, 5)
	assert.Equal(t, "alice", report.Users[0].Username)
	assert.Equal(t, models.Metric(0.5), report.Users[0].Probability)
	assert.Equal(t, models.Metric(0), report.Users[2].Probability, "no phishing emails means probability 0")

	assert.Equal(t, []models.UserProbability{
		{ID: 4, Probability: 1},
		{ID: 1, Probability: 0.5},
		{ID: 2, Probability: 0.5},
	}, report.Top)
}

func TestReportService_CriticalDefaultTop(t *testing.T) {
	report, err := newReports(t, seededDB(t)).Critical(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, report.Top, 5)
}

func TestCriticalFrame_LeftMergeKeepsUnmatchedUsers(t *testing.T) {
	users := []models.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
	}
	merged, err := CriticalFrame(users, []models.UserProbability{{ID: 2, Probability: 0.25}})
	require.NoError(t, err)

	require.Equal(t, 2, merged.Len())
	assert.Equal(t, "probability", merged.Columns()[len(merged.Columns())-1])
	assert.Nil(t, merged.Value(0, "probability"))
	assert.Equal(t, models.Metric(0.25), merged.Value(1, "probability"))
	assert.Equal(t, "bob", merged.Value(1, "username"))
}

// missingCountsDocument has one user whose phishing and total counts are null.
const missingCountsDocument = `{"usuarios": [
	{"ana": {"contrasena": "x", "permisos": 0,
		"emails": {"total": 50, "phishing": 10, "cliclados": 5}, "fechas": [], "ips": []}},
	{"ben": {"contrasena": "y", "permisos": 0,
		"emails": {"total": null, "phishing": "None", "cliclados": 3}, "fechas": [], "ips": []}}
]}`

func TestReportService_MissingCountsAreSkipped(t *testing.T) {
	reports := newReports(t, loadDocument(t, missingCountsDocument))
	ctx := context.Background()

	summary, err := reports.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Samples)
	assert.Equal(t, models.Metric(10), summary.PhishingEmails.Mean)
	assert.True(t, summary.PhishingEmails.Std.IsNaN())
	assert.Equal(t, models.MinMax{Min: 50, Max: 50}, summary.TotalEmails)

	cohorts, err := reports.Cohorts(ctx)
	require.NoError(t, err)
	normal := cohorts[3]
	assert.Equal(t, 2, normal.Observations)
	assert.Equal(t, models.Metric(10), normal.Mean)
	assert.Equal(t, models.Metric(10), normal.Median)
	assert.Equal(t, models.Metric(10), normal.Min)
	assert.Equal(t, models.Metric(10), normal.Max)
	assert.True(t, normal.Variance.IsNaN())

	critical, err := reports.Critical(ctx, 5)
	require.NoError(t, err)
	require.Len(t, critical.Users, 2)
	assert.Equal(t, models.Metric(0.5), critical.Users[0].Probability)
	assert.True(t, critical.Users[1].Probability.IsNaN())
	assert.Equal(t, []models.UserProbability{{ID: 1, Probability: 0.5}}, critical.Top)
}

func TestProbabilities_NoPhishingEmailsIsZero(t *testing.T) {
	probs := Probabilities([]models.User{
		{ID: 1, PhishingEmails: models.Int(0)},
		{ID: 2, PhishingEmails: models.Int(4), ClickedEmails: models.Int(1)},
		{ID: 3, ClickedEmails: models.Int(1)},
	})
	assert.Equal(t, models.Metric(0), probs[0].Probability)
	assert.Equal(t, models.Metric(0.25), probs[1].Probability)
	assert.True(t, probs[2].Probability.IsNaN())
}
