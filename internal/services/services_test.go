package services

import (
	"context"
	"strings"
	"testing"

	"github.com/isdelr/phishstats/internal/database"
	"github.com/isdelr/phishstats/internal/hashing"
	"github.com/isdelr/phishstats/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

const (
	hash123456   = "e10adc3949ba59abbe56e057f20f883e"
	hashPassword = "5f4dcc3b5aa765d61d8327deb882cf99"
)

func setupDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(context.Background(), db))
	return db
}

// seededDB loads testdata/users.json: alice(admin), bob, carol(admin), dave, erin.
func seededDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db := setupDB(t)
	_, err := NewImportService(db).LoadFile(context.Background(), "testdata/users.json")
	require.NoError(t, err)
	return db
}

func loadDocument(t *testing.T, doc string) *sqlx.DB {
	t.Helper()
	db := setupDB(t)
	_, err := NewImportService(db).Load(context.Background(), strings.NewReader(doc))
	require.NoError(t, err)
	return db
}

func newAudit(t *testing.T, db *sqlx.DB) *AuditService {
	t.Helper()
	h, err := hashing.New("md5", nil)
	require.NoError(t, err)
	return NewAuditService(NewUserService(db), h, "testdata/wordlist.txt", "latin-1")
}

func newReports(t *testing.T, db *sqlx.DB) *ReportService {
	t.Helper()
	return NewReportService(NewUserService(db), NewEventService(db), newAudit(t, db))
}

func usernames(users []models.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Username
	}
	return out
}
