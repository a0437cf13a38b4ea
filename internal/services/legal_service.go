package services

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/isdelr/phishstats/internal/jsonx"
	"github.com/isdelr/phishstats/internal/models"
)

// DefaultWorstSites is the number of sites listed by the worst-site rankings.
const DefaultWorstSites = 5

type legalDocument struct {
	Legal []json.RawMessage `json:"legal"`
}

type sitePolicies struct {
	Cookies        jsonx.Int `json:"cookies"`
	Notice         jsonx.Int `json:"aviso"`
	DataProtection jsonx.Int `json:"proteccion_de_datos"`
	Created        jsonx.Int `json:"creacion"`
}

// LegalService evaluates web sites' privacy-policy compliance.
type LegalService struct{}

// NewLegalService creates a new LegalService.
func NewLegalService() *LegalService {
	return &LegalService{}
}

// LoadFile reads the legal_data_online.json document at path.
func (s *LegalService) LoadFile(path string) ([]models.Site, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open legal file: %w", err)
	}
	defer f.Close()
	return s.Load(f)
}

// Load decodes the sites of a legal document in document order. Missing
// policies count as outdated.
func (s *LegalService) Load(r io.Reader) ([]models.Site, error) {
	var doc legalDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode legal document: %w", err)
	}
	entries, err := jsonx.NamedEntries(doc.Legal)
	if err != nil {
		return nil, fmt.Errorf("decode sites: %w", err)
	}

	sites := make([]models.Site, 0, len(entries))
	for _, e := range entries {
		var p sitePolicies
		if err := json.Unmarshal(e.Value, &p); err != nil {
			return nil, fmt.Errorf("decode site %q: %w", e.Key, err)
		}
		sites = append(sites, models.Site{
			Name:           e.Key,
			Cookies:        int(p.Cookies.Value),
			Notice:         int(p.Notice.Value),
			DataProtection: int(p.DataProtection.Value),
			Created:        int(p.Created.Value),
		})
	}
	return sites, nil
}

// WorstSites returns the n sites with the most outdated policies, ordered from
// least to most outdated as in the ranking's tail.
func WorstSites(sites []models.Site, n int) []models.Site {
	sorted := append([]models.Site(nil), sites...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OutdatedCount() < sorted[j].OutdatedCount()
	})
	if n < len(sorted) {
		sorted = sorted[len(sorted)-n:]
	}
	return sorted
}

// CategorizeByCompliance splits the sites into those with every policy current
// and the rest, each grouped by creation year in ascending order.
func CategorizeByCompliance(sites []models.Site) (compliant, nonCompliant []models.YearGroup) {
	var ok, notOK []models.Site
	for _, site := range sites {
		if site.Compliant() {
			ok = append(ok, site)
		} else {
			notOK = append(notOK, site)
		}
	}
	return groupByYear(ok), groupByYear(notOK)
}

func groupByYear(sites []models.Site) []models.YearGroup {
	byYear := make(map[int][]string)
	for _, site := range sites {
		byYear[site.Created] = append(byYear[site.Created], site.Name)
	}
	groups := make([]models.YearGroup, 0, len(byYear))
	for year, names := range byYear {
		groups = append(groups, models.YearGroup{Year: year, Sites: names})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Year < groups[j].Year })
	return groups
}

// OutdatedPolicies returns, for the n sites with the most outdated policies,
// which policies are outdated. Sites with equal counts keep document order.
func OutdatedPolicies(sites []models.Site, n int) []models.OutdatedSite {
	out := make([]models.OutdatedSite, len(sites))
	for i, site := range sites {
		out[i] = models.OutdatedSite{
			Name:           site.Name,
			Cookies:        site.Cookies == 0,
			Notice:         site.Notice == 0,
			DataProtection: site.DataProtection == 0,
			Count:          site.OutdatedCount(),
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// Report builds the complete compliance report.
func (s *LegalService) Report(sites []models.Site, n int) models.LegalReport {
	if n <= 0 {
		n = DefaultWorstSites
	}
	compliant, nonCompliant := CategorizeByCompliance(sites)
	return models.LegalReport{
		Worst:        WorstSites(sites, n),
		Compliant:    compliant,
		NonCompliant: nonCompliant,
		Outdated:     OutdatedPolicies(sites, n),
	}
}
