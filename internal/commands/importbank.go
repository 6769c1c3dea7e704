package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/importer"
	"github.com/tally-dev/tally/internal/model"
)

func newImportBankCommand(dir *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import-bank",
		Short: "Append transactions from bank CSV exports in import/",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := importer.DefaultRegistry()
			parser := registry.Get(format)
			if parser == nil {
				return fmt.Errorf("unknown format %q (available: %s)", format, strings.Join(registry.Formats(), ", "))
			}

			p, err := openProject(*dir)
			if err != nil {
				return err
			}

			files, err := importer.Scan(p.dir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No CSV files in import/.")
				return nil
			}

			total := 0
			all := p.store.List(false)
			for _, file := range files {
				txns, err := parseBankFile(parser, file.Path)
				if err != nil {
					return fmt.Errorf("%s: %w", file.Name, err)
				}
				all = append(all, txns...)
				total += len(txns)
			}
			p.store.ReplaceAll(all)

			if err := p.save(); err != nil {
				return err
			}

			for _, file := range files {
				if err := importer.MarkProcessed(p.dir, file.Name); err != nil {
					return err
				}
			}

			details := fmt.Sprintf("appended %d transactions from %d %s file(s)", total, len(files), format)
			p.record("import-bank", details, "")
			p.autoCommit("import-bank: " + details)

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions from %d file(s)\n", total, len(files))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "chase", "bank CSV format")

	return cmd
}

func parseBankFile(parser importer.Parser, path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parser.Parse(f)
}
