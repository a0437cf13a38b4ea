package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp isolates Load from any .env or phishstats.yaml in the package dir.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "database.db", cfg.Database.Path)
	assert.Equal(t, "users_data_online.json", cfg.Data.Users)
	assert.Equal(t, "legal_data_online.json", cfg.Data.Legal)
	assert.Equal(t, "rockyou.txt", cfg.Audit.Wordlist)
	assert.Equal(t, "latin-1", cfg.Audit.Encoding)
	assert.Equal(t, "md5", cfg.Audit.Algorithm)
	assert.Equal(t, 10, cfg.Report.Top)
	assert.Equal(t, "text", cfg.Report.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadPrecedence(t *testing.T) {
	dir := chdirTemp(t)

	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("database:\n  path: from-file.db\nreport:\n  top: 3\nserver:\n  port: 9000\n"), 0o644))
	t.Setenv("PHISHSTATS_REPORT_TOP", "7")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("db", "", "")
	flags.Int("top", 0, "")
	flags.Int("port", 0, "")
	require.NoError(t, flags.Parse([]string{"--port", "9100"}))

	cfg, err := Load(file, flags)
	require.NoError(t, err)
	assert.Equal(t, "from-file.db", cfg.Database.Path, "unset flag must not override the file")
	assert.Equal(t, 7, cfg.Report.Top, "env overrides the file")
	assert.Equal(t, 9100, cfg.Server.Port, "set flag overrides everything")
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PHISHSTATS_AUDIT_ALGORITHM=sha256\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("PHISHSTATS_AUDIT_ALGORITHM") })

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "sha256", cfg.Audit.Algorithm)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := chdirTemp(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	chdirTemp(t)
	cfg, err := Load("", nil)
	require.NoError(t, err)

	bad := *cfg
	bad.Report.Top = -1
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Server.Port = 70000
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Database.Path = " "
	assert.Error(t, bad.Validate())
}
