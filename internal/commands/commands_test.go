package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/ledger"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// addTxn runs `tally add` and returns the new transaction's ID parsed
// from the command output.
func addTxn(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := runCLI(t, append([]string{"-C", dir, "add"}, args...)...)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Added "), "output: %q", out)
	id := strings.SplitN(strings.TrimPrefix(out, "Added "), ":", 2)[0]
	require.NotEmpty(t, id)
	return id
}

func TestAddAndList(t *testing.T) {
	dir := t.TempDir()

	id := addTxn(t, dir,
		"--kind", "Expense",
		"--category", "Food",
		"--amount", "12.5",
		"--date", "2023-01-05",
		"--note", "lunch, downtown")

	out, err := runCLI(t, "-C", dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "2023-01-05")
	assert.Contains(t, out, "12.50")
	assert.Contains(t, out, "lunch, downtown")

	// The ledger file was written with the transaction.
	txns, err := ledger.LoadFile(filepath.Join(dir, "ledger.csv"))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, id, txns[0].ID)
}

func TestAdd_InvalidAmount(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "-C", dir, "add", "--category", "Food", "--amount", "abc")
	require.Error(t, err)

	var verr ledger.ValidationError
	assert.ErrorAs(t, err, &verr)

	// Nothing was persisted.
	_, statErr := os.Stat(filepath.Join(dir, "ledger.csv"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestAdd_UnknownCategory(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "-C", dir, "add", "--category", "Gambling", "--amount", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestAdd_UnknownKind(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "-C", dir, "add", "--kind", "Transfer", "--category", "Other", "--amount", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	id := addTxn(t, dir, "--category", "Food", "--amount", "10", "--date", "2023-01-01")

	out, err := runCLI(t, "-C", dir, "rm", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted "+id)

	out, err = runCLI(t, "-C", dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No transactions.")
}

func TestRemove_NotFound(t *testing.T) {
	dir := t.TempDir()
	addTxn(t, dir, "--category", "Food", "--amount", "10", "--date", "2023-01-01")

	_, err := runCLI(t, "-C", dir, "rm", "no-such-id")
	require.Error(t, err)

	var nferr ledger.NotFoundError
	assert.ErrorAs(t, err, &nferr)
}

func TestList_DateFilter(t *testing.T) {
	dir := t.TempDir()
	addTxn(t, dir, "--category", "Food", "--amount", "1", "--date", "2023-01-05", "--note", "inside")
	addTxn(t, dir, "--category", "Food", "--amount", "2", "--date", "2023-03-05", "--note", "outside")

	out, err := runCLI(t, "-C", dir, "list", "--from", "2023-01-01", "--to", "2023-01-31")
	require.NoError(t, err)
	assert.Contains(t, out, "inside")
	assert.NotContains(t, out, "outside")
}

func TestList_FilterInvertedRange(t *testing.T) {
	dir := t.TempDir()
	addTxn(t, dir, "--category", "Food", "--amount", "1", "--date", "2023-01-05")

	_, err := runCLI(t, "-C", dir, "list", "--from", "2023-02-01", "--to", "2023-01-01")
	require.Error(t, err)

	var verr ledger.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestList_RequiresBothBounds(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "-C", dir, "list", "--from", "2023-01-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "together")
}

func TestReport_Monthly(t *testing.T) {
	dir := t.TempDir()
	addTxn(t, dir, "--kind", "Income", "--category", "Salary", "--amount", "100", "--date", "2023-01-05")
	addTxn(t, dir, "--kind", "Expense", "--category", "Food", "--amount", "40", "--date", "2023-01-20")
	addTxn(t, dir, "--kind", "Income", "--category", "Salary", "--amount", "50", "--date", "2023-02-01")

	out, err := runCLI(t, "-C", dir, "report", "monthly")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3, "header plus two buckets")
	assert.Contains(t, lines[0], "Period")
	assert.Contains(t, lines[1], "2023-01")
	assert.Contains(t, lines[1], "100.00")
	assert.Contains(t, lines[1], "40.00")
	assert.Contains(t, lines[1], "60.00")
	assert.Contains(t, lines[2], "2023-02")
	assert.Contains(t, lines[2], "50.00")
	assert.Contains(t, lines[2], "0.00")
}

func TestReport_BadPeriod(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "-C", dir, "report", "weekly")
	require.Error(t, err)
}

func TestExportImport(t *testing.T) {
	dir := t.TempDir()
	id := addTxn(t, dir, "--category", "Rent", "--amount", "800", "--date", "2023-01-02", "--note", "january")

	exported := filepath.Join(t.TempDir(), "backup.csv")
	out, err := runCLI(t, "-C", dir, "export", exported)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 transactions")

	// Import into a fresh directory: the set is replaced, IDs intact.
	other := t.TempDir()
	addTxn(t, other, "--category", "Food", "--amount", "5", "--date", "2023-06-01", "--note", "replaced")

	out, err = runCLI(t, "-C", other, "import", exported)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 transactions")

	listOut, err := runCLI(t, "-C", other, "list")
	require.NoError(t, err)
	assert.Contains(t, listOut, id)
	assert.NotContains(t, listOut, "replaced")
}

func TestImport_BadFileKeepsLedger(t *testing.T) {
	dir := t.TempDir()
	id := addTxn(t, dir, "--category", "Food", "--amount", "5", "--date", "2023-01-01")

	bad := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("id,date,type,category,amount,note\nx,2023-01-01,Income,Salary,garbage,\n"), 0o644))

	_, err := runCLI(t, "-C", dir, "import", bad)
	require.Error(t, err)

	var ferr ledger.FormatError
	assert.ErrorAs(t, err, &ferr)

	out, err := runCLI(t, "-C", dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, id, "failed import must leave the ledger untouched")
}

func TestCategories(t *testing.T) {
	out, err := runCLI(t, "categories")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 9)
	assert.Contains(t, lines, "Food")
	assert.Contains(t, lines, "Other")
}
