package models

// MeanStd pairs an average with its sample standard deviation.
type MeanStd struct {
	Mean Metric `json:"mean" yaml:"mean"`
	Std  Metric `json:"std" yaml:"std"`
}

// MinMax pairs the smallest and largest observation.
type MinMax struct {
	Min Metric `json:"min" yaml:"min"`
	Max Metric `json:"max" yaml:"max"`
}

// Summary is the whole-population descriptive report.
type Summary struct {
	Samples        int     `json:"samples" yaml:"samples"`
	DatesPerUser   MeanStd `json:"datesPerUser" yaml:"dates_per_user"`
	IPsPerUser     MeanStd `json:"ipsPerUser" yaml:"ips_per_user"`
	PhishingEmails MeanStd `json:"phishingEmails" yaml:"phishing_emails"`
	TotalEmails    MinMax  `json:"totalEmails" yaml:"total_emails"`
	AdminPhishing  MinMax  `json:"adminPhishingEmails" yaml:"admin_phishing_emails"`
}

// CohortStats describes the phishing-email distribution of one user cohort.
type CohortStats struct {
	Label        string `json:"label" yaml:"label"`
	Observations int    `json:"observations" yaml:"observations"`
	Missing      int    `json:"missing" yaml:"missing"`
	Median       Metric `json:"median" yaml:"median"`
	Mean         Metric `json:"mean" yaml:"mean"`
	Variance     Metric `json:"variance" yaml:"variance"`
	Min          Metric `json:"min" yaml:"min"`
	Max          Metric `json:"max" yaml:"max"`
}

// UserInterval is a user's rounded mean number of days between password changes.
type UserInterval struct {
	UserID int64 `json:"userId" yaml:"user_id"`
	Days   int   `json:"days" yaml:"days"`
}

// IntervalReport compares password-change intervals of admins and normal users.
type IntervalReport struct {
	Admin   Metric         `json:"admin" yaml:"admin"`
	Normal  Metric         `json:"normal" yaml:"normal"`
	PerUser []UserInterval `json:"perUser" yaml:"per_user"`
}

// UserProbability is the share of received phishing emails a user clicked.
type UserProbability struct {
	ID          int64  `json:"id" yaml:"id"`
	Probability Metric `json:"probability" yaml:"probability"`
}

// CriticalUser is a user row joined with its click probability.
type CriticalUser struct {
	User `yaml:",inline"`

	Probability Metric `json:"probability" yaml:"probability"`
}

// CriticalReport ranks users by their phishing-click probability.
type CriticalReport struct {
	Users []CriticalUser    `json:"users" yaml:"users"`
	Top   []UserProbability `json:"top" yaml:"top"`
}

// WeakPasswordReport lists stored hashes found in the wordlist and their owners.
type WeakPasswordReport struct {
	Algorithm string   `json:"algorithm" yaml:"algorithm"`
	Hashes    []string `json:"hashes" yaml:"hashes"`
	Users     []User   `json:"users" yaml:"users"`
}
