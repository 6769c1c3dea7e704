package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Ledger.File = "money.csv"
	cfg.Git.AutoCommit = true

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "money.csv", got.Ledger.File)
	assert.Equal(t, cfg.Log.Enabled, got.Log.Enabled)
	assert.True(t, got.Git.AutoCommit)
	assert.Equal(t, cfg.Git.AuthorName, got.Git.AuthorName)
	assert.Equal(t, cfg.Git.AuthorEmail, got.Git.AuthorEmail)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "ledger.csv", cfg.Ledger.File)
	assert.True(t, cfg.Log.Enabled)
	assert.False(t, cfg.Git.AutoCommit)
	assert.Equal(t, "Tally", cfg.Git.AuthorName)
	assert.Equal(t, "tally@localhost", cfg.Git.AuthorEmail)
}

func TestLoad_MissingLedgerFileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("log:\n  enabled: false\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ledger.csv", got.Ledger.File)
	assert.False(t, got.Log.Enabled)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
