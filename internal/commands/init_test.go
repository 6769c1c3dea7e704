package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/ledger"
)

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "books")

	out, err := runCLI(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized tally project at "+dir)

	// Config was written with defaults.
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "ledger.csv", cfg.Ledger.File)
	assert.False(t, cfg.Git.AutoCommit)

	// Ledger file exists and is header-only.
	data, err := os.ReadFile(filepath.Join(dir, "ledger.csv"))
	require.NoError(t, err)
	assert.Equal(t, ledger.Header+"\n", string(data))

	// Directory scaffolding.
	for _, d := range []string{"logs", "import", filepath.Join("import", "processed")} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "missing %s", d)
		assert.True(t, info.IsDir())
	}

	// .gitignore and .gitkeep.
	gitignore, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(gitignore), "import/processed/"))

	_, err = os.Stat(filepath.Join(dir, "import", ".gitkeep"))
	require.NoError(t, err)
}

func TestInit_CustomLedgerName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "books")

	_, err := runCLI(t, "init", dir, "--ledger", "money.csv")
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "money.csv", cfg.Ledger.File)

	_, err = os.Stat(filepath.Join(dir, "money.csv"))
	require.NoError(t, err)

	// Commands in that directory use the configured file.
	id := addTxn(t, dir, "--category", "Food", "--amount", "3", "--date", "2023-01-01")
	txns, err := ledger.LoadFile(filepath.Join(dir, "money.csv"))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, id, txns[0].ID)
}

func TestInit_DefaultDirectory(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, err = runCLI(t, "init")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
}
