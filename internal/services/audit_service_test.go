package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/isdelr/phishstats/internal/hashing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_WeakHashes(t *testing.T) {
	audit := newAudit(t, seededDB(t))

	weak, err := audit.WeakHashes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{hash123456, hashPassword}, weak, "deduplicated, in wordlist order")
}

func TestAuditService_Partition(t *testing.T) {
	audit := newAudit(t, seededDB(t))

	weak, strong, err := audit.Partition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "dave"}, usernames(weak))
	assert.Equal(t, []string{"carol", "erin"}, usernames(strong))
}

func TestAuditService_Report(t *testing.T) {
	audit := newAudit(t, seededDB(t))

	report, err := audit.Report(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "md5", report.Algorithm)
	assert.Len(t, report.Hashes, 2)
	assert.Equal(t, []string{"alice", "bob", "dave"}, usernames(report.Users))
}

func TestAuditService_OtherAlgorithmFindsNothing(t *testing.T) {
	db := seededDB(t)
	h, err := hashing.New("sha256", nil)
	require.NoError(t, err)
	audit := NewAuditService(NewUserService(db), h, "testdata/wordlist.txt", "latin-1")

	weak, strong, err := audit.Partition(context.Background())
	require.NoError(t, err)
	assert.Empty(t, weak)
	assert.Len(t, strong, 5)
}

func TestAuditService_MissingWordlist(t *testing.T) {
	db := seededDB(t)
	h, err := hashing.New("md5", nil)
	require.NoError(t, err)
	audit := NewAuditService(NewUserService(db), h, filepath.Join(t.TempDir(), "none.txt"), "latin-1")

	_, err = audit.WeakHashes(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
