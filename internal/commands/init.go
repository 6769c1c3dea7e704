package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/gitops"
	"github.com/tally-dev/tally/internal/ledger"
)

func newInitCommand() *cobra.Command {
	var ledgerFile string
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new tally project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, ledgerFile, useGit)
		},
	}

	cmd.Flags().StringVar(&ledgerFile, "ledger", "ledger.csv", "ledger file name")
	cmd.Flags().BoolVar(&useGit, "git", false, "initialize a git repository and auto-commit ledger changes")

	return cmd
}

func runInit(cmd *cobra.Command, dir, ledgerFile string, useGit bool) error {
	dirs := []string{
		"logs",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write tally.yaml.
	cfg := config.Default()
	cfg.Ledger.File = ledgerFile
	cfg.Git.AutoCommit = useGit
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write an empty ledger (header only).
	if err := ledger.SaveFile(filepath.Join(dir, ledgerFile), nil); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}

	// Write .gitignore.
	gitignore := "import/processed/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	// Write import/.gitkeep.
	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	if useGit {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		hash, err := gitops.CommitFiles(dir, "init: new tally project",
			cfg.Git.AuthorName, cfg.Git.AuthorEmail,
			config.FileName, ledgerFile, ".gitignore", filepath.Join("import", ".gitkeep"))
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized tally project at %s (%s)\n", dir, hash)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized tally project at %s\n", dir)
	return nil
}
