package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/isdelr/phishstats/internal/database"
	"github.com/isdelr/phishstats/internal/jsonx"
	"github.com/isdelr/phishstats/internal/metrics"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// ImportResult counts the rows written by a load.
type ImportResult struct {
	Users int `json:"users" yaml:"users"`
	Dates int `json:"dates" yaml:"dates"`
	IPs   int `json:"ips" yaml:"ips"`
}

// usersDocument is the users_data_online.json layout.
type usersDocument struct {
	Users []json.RawMessage `json:"usuarios"`
}

type userRecord struct {
	Phone       jsonx.String `json:"telefono"`
	Password    jsonx.String `json:"contrasena"`
	Province    jsonx.String `json:"provincia"`
	Permissions jsonx.Int    `json:"permisos"`
	Emails      struct {
		Total    jsonx.Int `json:"total"`
		Phishing jsonx.Int `json:"phishing"`
		Clicked  jsonx.Int `json:"cliclados"`
	} `json:"emails"`
	Dates []string `json:"fechas"`
	IPs   []string `json:"ips"`
}

// ImportService loads the simulated campaign data into the database.
type ImportService struct {
	db *sqlx.DB
}

// NewImportService creates a new ImportService.
func NewImportService(db *sqlx.DB) *ImportService {
	return &ImportService{db: db}
}

// LoadFile reads the users JSON document at path and inserts it.
func (s *ImportService) LoadFile(ctx context.Context, path string) (ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("open users file: %w", err)
	}
	defer f.Close()
	return s.Load(ctx, f)
}

// Load inserts every user of the document together with its dates and IPs.
// Each user is written in its own transaction; a failing user aborts the load
// but users committed before it are kept.
func (s *ImportService) Load(ctx context.Context, r io.Reader) (ImportResult, error) {
	var doc usersDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return ImportResult{}, fmt.Errorf("decode users document: %w", err)
	}
	entries, err := jsonx.NamedEntries(doc.Users)
	if err != nil {
		return ImportResult{}, fmt.Errorf("decode users: %w", err)
	}

	var result ImportResult
	for _, entry := range entries {
		var rec userRecord
		if err := json.Unmarshal(entry.Value, &rec); err != nil {
			return result, fmt.Errorf("decode user %q: %w", entry.Key, err)
		}

		err := database.WithTx(ctx, s.db, nil, func(ctx context.Context, tx database.DBTX) error {
			id, err := insertUser(ctx, tx, entry.Key, rec)
			if err != nil {
				return err
			}
			for _, d := range rec.Dates {
				if _, err := tx.ExecContext(ctx, "INSERT INTO dates (user_id, date) VALUES (?, ?)", id, d); err != nil {
					return fmt.Errorf("insert date: %w", err)
				}
			}
			for _, ip := range rec.IPs {
				if _, err := tx.ExecContext(ctx, "INSERT INTO ips (user_id, ip) VALUES (?, ?)", id, ip); err != nil {
					return fmt.Errorf("insert ip: %w", err)
				}
			}
			return nil
		})
		if err != nil {
			return result, fmt.Errorf("load user %q: %w", entry.Key, err)
		}

		result.Users++
		result.Dates += len(rec.Dates)
		result.IPs += len(rec.IPs)
		metrics.RecordsLoadedTotal.WithLabelValues("users").Inc()
		metrics.RecordsLoadedTotal.WithLabelValues("dates").Add(float64(len(rec.Dates)))
		metrics.RecordsLoadedTotal.WithLabelValues("ips").Add(float64(len(rec.IPs)))
		log.Debug().Str("username", entry.Key).Int("dates", len(rec.Dates)).Int("ips", len(rec.IPs)).Msg("Loaded user")
	}

	log.Info().Int("users", result.Users).Int("dates", result.Dates).Int("ips", result.IPs).Msg("Users document loaded")
	return result, nil
}

func insertUser(ctx context.Context, tx database.DBTX, username string, rec userRecord) (int64, error) {
	res, err := tx.ExecContext(ctx, `
		INSERT INTO users (username, phone, password_hash, province, permissions, total_emails, phishing_emails, clicked_emails)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		username,
		nullString(rec.Phone),
		nullString(rec.Password),
		nullString(rec.Province),
		nullInt(rec.Permissions),
		nullInt(rec.Emails.Total),
		nullInt(rec.Emails.Phishing),
		nullInt(rec.Emails.Clicked),
	)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read user id: %w", err)
	}
	return id, nil
}

func nullString(s jsonx.String) sql.NullString {
	return sql.NullString{String: s.Value, Valid: s.Valid}
}

func nullInt(i jsonx.Int) sql.NullInt64 {
	return sql.NullInt64{Int64: i.Value, Valid: i.Valid}
}
