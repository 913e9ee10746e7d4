package commands_test

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/ledgerlens/internal/buildinfo"
	"github.com/ledgerlens/ledgerlens/internal/commands"
	"github.com/ledgerlens/ledgerlens/internal/config"
	"github.com/ledgerlens/ledgerlens/internal/query"
)

func runLedgerlens(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func testdata(t *testing.T, name string) string {
	t.Helper()
	p, err := filepath.Abs(filepath.Join("..", "..", "testdata", name))
	require.NoError(t, err)
	return p
}

// writeConfig saves a config over the fixture exports and returns its path.
func writeConfig(t *testing.T, withBank bool) string {
	t.Helper()
	cfg := config.Default("Test")
	cfg.Sources.Cards = []config.Source{
		{Name: "flex", Path: testdata(t, "card_flex.csv")},
		{Name: "unlimited", Path: testdata(t, "card_unlimited.csv")},
	}
	cfg.Sources.Bank = nil
	if withBank {
		cfg.Sources.Bank = &config.Source{Name: "checking", Path: testdata(t, "bank_account.csv")}
	}
	path := filepath.Join(t.TempDir(), config.DefaultFile)
	require.NoError(t, config.Save(path, cfg))
	return path
}

func TestVersion(t *testing.T) {
	out, _, err := runLedgerlens(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, buildinfo.Version)
}

func TestTransactions_Table(t *testing.T) {
	out, _, err := runLedgerlens(t, "transactions", "--config", writeConfig(t, true))
	require.NoError(t, err)
	assert.Contains(t, out, "Transaction Date")
	assert.Contains(t, out, "BOOKSHOP, INC")
	assert.Contains(t, out, "7 transactions")
	assert.Contains(t, out, "162.84")
}

func TestTransactions_CSV(t *testing.T) {
	out, _, err := runLedgerlens(t, "transactions", "--config", writeConfig(t, true), "--csv", "--category", "Food")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Transaction Date", "Description", "Category", "Type", "Amount ($)"}, records[0])
	assert.Equal(t, []string{"2023-02-27", "CORNER DELI", "Food", "Sale", "10.00"}, records[1])
	assert.Equal(t, []string{"2023-02-28", "CORNER DELI", "Food", "Sale", "5.00"}, records[2])
}

func TestTransactions_YearAndMonth(t *testing.T) {
	out, _, err := runLedgerlens(t, "transactions", "--config", writeConfig(t, true), "--csv", "--year", "2023", "--month", "march")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "RENT CO", records[1][1])
}

func TestTransactions_InvalidFilter(t *testing.T) {
	_, _, err := runLedgerlens(t, "transactions", "--from", "someday")
	require.Error(t, err)
	var invalid *query.InvalidSpecError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "from", invalid.Field)
}

func TestSummary(t *testing.T) {
	out, _, err := runLedgerlens(t, "summary", "--config", writeConfig(t, true), "--year", "2023")
	require.NoError(t, err)
	assert.Contains(t, out, "Spending by Category during: 2023")
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "Total Spending per Month")
	assert.Contains(t, out, "2023-02-28")
	assert.Contains(t, out, "2023-03-31")
	assert.Contains(t, out, "Total: 103.60 across 5 transactions")
}

func TestSummary_NoMatches(t *testing.T) {
	out, _, err := runLedgerlens(t, "summary", "--config", writeConfig(t, true), "--category", "Nope")
	require.NoError(t, err)
	assert.Contains(t, out, "(no data)")
	assert.Contains(t, out, "Total: 0.00 across 0 transactions")
}

func TestBank(t *testing.T) {
	out, _, err := runLedgerlens(t, "bank", "--config", writeConfig(t, true))
	require.NoError(t, err)
	assert.Contains(t, out, "Net Account Income (+/-) by Month")
	assert.Contains(t, out, "-1,420.00")
	assert.Contains(t, out, "Latest Account Balance per Month")
	assert.Contains(t, out, "2023-03-20")
	assert.Contains(t, out, "2,580.00")
}

func TestBank_NotConfigured(t *testing.T) {
	_, _, err := runLedgerlens(t, "bank", "--config", writeConfig(t, false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no bank source configured")
}

func TestMissingConfig(t *testing.T) {
	_, _, err := runLedgerlens(t, "transactions", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInvalidConfig(t *testing.T) {
	cfg := config.Default("Empty")
	cfg.Sources = config.SourcesConfig{}
	cfg.Log.Format = "xml"
	path := filepath.Join(t.TempDir(), config.DefaultFile)
	require.NoError(t, config.Save(path, cfg))

	_, _, err := runLedgerlens(t, "summary", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sources configured")
	assert.Contains(t, err.Error(), `invalid log format "xml"`)
}

func TestSourceErrorAborts(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("Transaction Date,Post Date,Description,Category,Type,Amount,Memo\nnot-a-date,03/02/2023,X,Y,Sale,-1.00,\n"), 0o644))

	cfg := config.Default("Bad")
	cfg.Sources.Cards = []config.Source{{Name: "bad", Path: bad}}
	cfg.Sources.Bank = nil
	path := filepath.Join(t.TempDir(), config.DefaultFile)
	require.NoError(t, config.Save(path, cfg))

	out, _, err := runLedgerlens(t, "transactions", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card source bad")
	assert.Empty(t, out)
}

func TestEnvFile_LogSettings(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("LEDGERLENS_LOG_FORMAT=json\nLEDGERLENS_LOG_LEVEL=debug\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv(config.EnvLogFormat)
		os.Unsetenv(config.EnvLogLevel)
	})

	_, stderr, err := runLedgerlens(t, "transactions", "--config", writeConfig(t, true), "--env-file", envFile)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"message":"ingestion complete"`)
	assert.Contains(t, stderr, `"message":"source parsed"`)
}

func TestServe_BadAddress(t *testing.T) {
	_, _, err := runLedgerlens(t, "serve", "--config", writeConfig(t, true), "--addr", "not-an-address")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen not-an-address")
}
