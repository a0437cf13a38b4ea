package models

// DateEvent is a password-change date observed for a user (d/m/yyyy).
type DateEvent struct {
	ID     int64  `db:"id" json:"id" yaml:"id"`
	UserID int64  `db:"user_id" json:"userId" yaml:"user_id"`
	Date   string `db:"date" json:"date" yaml:"date"`
}

// IPEvent is an IP address observed for a user.
type IPEvent struct {
	ID     int64  `db:"id" json:"id" yaml:"id"`
	UserID int64  `db:"user_id" json:"userId" yaml:"user_id"`
	IP     string `db:"ip" json:"ip" yaml:"ip"`
}
