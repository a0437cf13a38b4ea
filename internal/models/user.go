package models

import "fmt"

// Permission is the admin/normal flag stored in users.permissions.
type Permission int

const (
	PermissionNormal Permission = 0
	PermissionAdmin  Permission = 1
)

// ErrInvalidPermission is returned when a permission flag is neither 0 nor 1.
var ErrInvalidPermission = fmt.Errorf("permission type must be either %d or %d", PermissionNormal, PermissionAdmin)

// Valid reports whether p is one of the two known flags.
func (p Permission) Valid() bool {
	return p == PermissionNormal || p == PermissionAdmin
}

func (p Permission) String() string {
	switch p {
	case PermissionAdmin:
		return "admin"
	case PermissionNormal:
		return "normal"
	default:
		return fmt.Sprintf("permission(%d)", int(p))
	}
}

// ParsePermission converts a CLI or query value into a Permission.
func ParsePermission(v int) (Permission, error) {
	p := Permission(v)
	if !p.Valid() {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPermission, v)
	}
	return p, nil
}

// MissingValue is the literal the source data uses for unknown phone and province.
const MissingValue = "None"

// User represents one simulated employee of the phishing-awareness campaign.
type User struct {
	ID             int64  `db:"id" json:"id" yaml:"id"`
	Username       string `db:"username" json:"username" yaml:"username"`
	Phone          string `db:"phone" json:"phone" yaml:"phone"`
	PasswordHash   string `db:"password_hash" json:"-" yaml:"-"` // only the audit reads this
	Province       string `db:"province" json:"province" yaml:"province"`
	Permissions    Count  `db:"permissions" json:"permissions" yaml:"permissions"`
	TotalEmails    Count  `db:"total_emails" json:"totalEmails" yaml:"total_emails"`
	PhishingEmails Count  `db:"phishing_emails" json:"phishingEmails" yaml:"phishing_emails"`
	ClickedEmails  Count  `db:"clicked_emails" json:"clickedEmails" yaml:"clicked_emails"`
}

// IsAdmin reports whether the user carries the admin flag.
func (u User) IsAdmin() bool {
	return u.Permissions.Equal(int64(PermissionAdmin))
}

// MissingFields counts the phone and province values recorded as "None".
func (u User) MissingFields() int {
	n := 0
	if u.Phone == MissingValue {
		n++
	}
	if u.Province == MissingValue {
		n++
	}
	return n
}
