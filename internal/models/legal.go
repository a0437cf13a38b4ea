package models

// Site is a web site's privacy-policy status. A policy value of 1 means the
// policy is current, 0 means it is outdated or absent.
type Site struct {
	Name           string `json:"name" yaml:"name"`
	Cookies        int    `json:"cookies" yaml:"cookies"`
	Notice         int    `json:"aviso" yaml:"aviso"`
	DataProtection int    `json:"proteccion_de_datos" yaml:"proteccion_de_datos"`
	Created        int    `json:"creacion" yaml:"creacion"`
}

// OutdatedCount is the number of policies of the site that are not current.
func (s Site) OutdatedCount() int {
	n := 0
	for _, v := range []int{s.Cookies, s.Notice, s.DataProtection} {
		if v == 0 {
			n++
		}
	}
	return n
}

// Compliant reports whether all three policies are current.
func (s Site) Compliant() bool {
	return s.Cookies == 1 && s.Notice == 1 && s.DataProtection == 1
}

// YearGroup lists the sites created in one year.
type YearGroup struct {
	Year  int      `json:"year" yaml:"year"`
	Sites []string `json:"sites" yaml:"sites"`
}

// OutdatedSite flags which policies of a site are outdated.
type OutdatedSite struct {
	Name           string `json:"name" yaml:"name"`
	Cookies        bool   `json:"cookies" yaml:"cookies"`
	Notice         bool   `json:"aviso" yaml:"aviso"`
	DataProtection bool   `json:"proteccion_de_datos" yaml:"proteccion_de_datos"`
	Count          int    `json:"count" yaml:"count"`
}

// LegalReport is the privacy-policy compliance report over all sites.
type LegalReport struct {
	Worst        []Site         `json:"worst" yaml:"worst"`
	Compliant    []YearGroup    `json:"compliant" yaml:"compliant"`
	NonCompliant []YearGroup    `json:"nonCompliant" yaml:"non_compliant"`
	Outdated     []OutdatedSite `json:"outdated" yaml:"outdated"`
}
