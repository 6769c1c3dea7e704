package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/gitops"
	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/oplog"
)

// project is a loaded ledger directory: its configuration plus the
// in-memory store. Every command opens one, performs a single operation,
// and (for mutations) saves the ledger file back.
type project struct {
	dir   string
	cfg   *config.Config
	store *ledger.Store
}

// openProject loads tally.yaml and the ledger file from dir. A missing
// config falls back to defaults and a missing ledger file means an empty
// ledger, so every command works in a bare directory.
func openProject(dir string) (*project, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return nil, err
	}

	p := &project{dir: absDir, cfg: cfg, store: ledger.NewStore()}

	txns, err := ledger.LoadFileIfExists(p.ledgerPath())
	if err != nil {
		return nil, err
	}
	p.store.ReplaceAll(txns)
	return p, nil
}

func (p *project) ledgerPath() string {
	return filepath.Join(p.dir, p.cfg.Ledger.File)
}

// save writes the store back to the ledger file in insertion order.
func (p *project) save() error {
	return p.store.ExportFile(p.ledgerPath())
}

// record appends an oplog entry. The log is advisory, so failures are
// reported on stderr without failing the operation they describe.
func (p *project) record(action, details, txnID string) {
	if !p.cfg.Log.Enabled {
		return
	}
	if err := oplog.Record(p.dir, action, details, txnID); err != nil {
		fmt.Fprintf(os.Stderr, "warning: oplog: %v\n", err)
	}
}

// autoCommit commits the ledger artifacts when git integration is on.
func (p *project) autoCommit(message string) {
	if !p.cfg.Git.AutoCommit || !gitops.IsRepo(p.dir) {
		return
	}

	paths := []string{p.cfg.Ledger.File}
	if _, err := os.Stat(filepath.Join(p.dir, "logs", "oplog.csv")); err == nil {
		paths = append(paths, filepath.Join("logs", "oplog.csv"))
	}

	if _, err := gitops.CommitFiles(p.dir, message, p.cfg.Git.AuthorName, p.cfg.Git.AuthorEmail, paths...); err != nil {
		fmt.Fprintf(os.Stderr, "warning: git commit: %v\n", err)
	}
}
