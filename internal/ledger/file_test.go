package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/model"
)

func writeTempLedger(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	txns := sampleTxns()

	require.NoError(t, SaveFile(path, txns))

	got, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, got, len(txns))
	for i := range txns {
		assert.Equal(t, txns[i].ID, got[i].ID)
		assert.True(t, txns[i].Amount.Equal(got[i].Amount))
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := NewStore()
	mustAdd(t, s, AddParams{Date: date(2023, 2, 10), Kind: model.KindIncome, Category: model.CategorySalary, Amount: "3000", Note: "pay"})
	mustAdd(t, s, AddParams{Date: date(2023, 1, 3), Kind: model.KindExpense, Category: model.CategoryShopping, Amount: "49.95", Note: `shoes, "on sale"` + "\nreturned later"})
	want := s.List(true)

	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, s.ExportFile(path))

	restored := NewStore()
	require.NoError(t, restored.ImportFile(path))

	got := restored.List(true)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.True(t, want[i].Date.Equal(got[i].Date))
		assert.Equal(t, want[i].Kind, got[i].Kind)
		assert.Equal(t, want[i].Category, got[i].Category)
		assert.True(t, want[i].Amount.Equal(got[i].Amount))
		assert.Equal(t, want[i].Note, got[i].Note)
	}
}

func TestLoadFileIfExists_Missing(t *testing.T) {
	got, err := LoadFileIfExists(filepath.Join(t.TempDir(), "ledger.csv"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLoadFileIfExists_Present(t *testing.T) {
	path := writeTempLedger(t, Header+"\n"+"a1,2023-01-05,Income,Salary,100.00,ok\n")
	got, err := LoadFileIfExists(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestSaveFile_BadPath(t *testing.T) {
	err := SaveFile(filepath.Join(t.TempDir(), "missing-dir", "ledger.csv"), nil)
	require.Error(t, err)
}
