package services

import (
	"strings"
	"testing"

	"github.com/isdelr/phishstats/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSites(t *testing.T) []models.Site {
	t.Helper()
	sites, err := NewLegalService().LoadFile("testdata/legal.json")
	require.NoError(t, err)
	return sites
}

func siteNames(sites []models.Site) []string {
	out := make([]string, len(sites))
	for i, s := range sites {
		out[i] = s.Name
	}
	return out
}

func TestLegalService_Load(t *testing.T) {
	sites := loadSites(t)
	require.Len(t, sites, 6)
	assert.Equal(t, models.Site{Name: "gamma.es", Cookies: 1, Notice: 0, DataProtection: 1, Created: 2001}, sites[2])
}

func TestLegalService_LoadMissingPolicyIsOutdated(t *testing.T) {
	sites, err := NewLegalService().Load(strings.NewReader(`{"legal": [{"x.es": {"cookies": 1, "creacion": 2000}}]}`))
	require.NoError(t, err)
	require.Len(t, sites, 1)
	assert.Equal(t, 2, sites[0].OutdatedCount())
	assert.False(t, sites[0].Compliant())
}

func TestWorstSites(t *testing.T) {
	assert.Equal(t, []string{"zeta.es", "epsilon.es", "beta.es"}, siteNames(WorstSites(loadSites(t), 3)))
	assert.Len(t, WorstSites(loadSites(t), 10), 6)
}

func TestCategorizeByCompliance(t *testing.T) {
	compliant, nonCompliant := CategorizeByCompliance(loadSites(t))
	assert.Equal(t, []models.YearGroup{
		{Year: 1998, Sites: []string{"delta.es"}},
		{Year: 2001, Sites: []string{"alpha.es"}},
	}, compliant)
	assert.Equal(t, []models.YearGroup{
		{Year: 1999, Sites: []string{"beta.es", "zeta.es"}},
		{Year: 2001, Sites: []string{"gamma.es"}},
		{Year: 2010, Sites: []string{"epsilon.es"}},
	}, nonCompliant)
}

func TestOutdatedPolicies(t *testing.T) {
	out := OutdatedPolicies(loadSites(t), 3)
	require.Len(t, out, 3)
	assert.Equal(t, models.OutdatedSite{Name: "beta.es", Cookies: true, Notice: true, DataProtection: true, Count: 3}, out[0])
	assert.Equal(t, models.OutdatedSite{Name: "epsilon.es", Cookies: true, Notice: false, DataProtection: true, Count: 2}, out[1])
	assert.Equal(t, "gamma.es", out[2].Name)
}

func TestLegalService_Report(t *testing.T) {
	report := NewLegalService().Report(loadSites(t), 0)
	assert.Len(t, report.Worst, DefaultWorstSites)
	assert.Len(t, report.Outdated, DefaultWorstSites)
	assert.Len(t, report.Compliant, 2)
	assert.Len(t, report.NonCompliant, 3)
}
