package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/beesaferoot/housing-data/internal/export"
)

func setTestEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("APP_ENV", "test")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATA_SEED", "")
	t.Setenv("OUTPUT_DIR", filepath.Join(dir, "prototype_data"))
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "housing.db"))
	return dir
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	// a nil slice makes cobra fall back to os.Args
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateCmd(t *testing.T) {
	cmd := GenerateCmd()
	assert.Equal(t, "generate", cmd.Use)
	assert.Equal(t, "Generate the synthetic housing dataset", cmd.Short)

	flags := cmd.Flags()
	assert.NotNil(t, flags.Lookup("seed"))
	assert.NotNil(t, flags.Lookup("output"))
}

func TestValidateCmd(t *testing.T) {
	cmd := ValidateCmd()
	assert.Equal(t, "validate", cmd.Use)
	assert.Equal(t, "Validate a generated dataset", cmd.Short)

	flags := cmd.Flags()
	assert.NotNil(t, flags.Lookup("output"))
	assert.NotNil(t, flags.Lookup("db"))
}

func TestSeedCmd(t *testing.T) {
	cmd := SeedCmd()
	assert.Equal(t, "seed", cmd.Use)
	assert.Equal(t, "Seed the database with a dataset", cmd.Short)

	flags := cmd.Flags()
	assert.NotNil(t, flags.Lookup("seed"))
	assert.NotNil(t, flags.Lookup("from"))
	assert.NotNil(t, flags.Lookup("debug"))
}

func TestHistoryCmd(t *testing.T) {
	cmd := HistoryCmd()
	assert.Equal(t, "history", cmd.Use)
	assert.Equal(t, "Show seed history", cmd.Short)
}

func TestAnalyzeCmd(t *testing.T) {
	cmd := AnalyzeCmd()
	assert.Equal(t, "analyze [workbook]", cmd.Use)
	assert.Equal(t, "Analyze spreadsheet structure", cmd.Short)
	assert.NotNil(t, cmd.Flags().Lookup("out"))
}

func TestGenerateThenValidate(t *testing.T) {
	dir := setTestEnv(t)
	output := filepath.Join(dir, "custom")

	out, err := run(t, GenerateCmd(), "--seed", "7", "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Houses: 4")
	assert.Contains(t, out, "Occupancy Rate:")
	assert.FileExists(t, filepath.Join(output, export.AllDataFile))

	out, err = run(t, ValidateCmd(), "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Dataset is valid")
}

func TestGenerate_SameSeedSameSnapshot(t *testing.T) {
	dir := setTestEnv(t)

	_, err := run(t, GenerateCmd(), "--output", filepath.Join(dir, "a"))
	require.NoError(t, err)
	_, err = run(t, GenerateCmd(), "--output", filepath.Join(dir, "b"))
	require.NoError(t, err)

	a, err := export.ReadSnapshot(filepath.Join(dir, "a"))
	require.NoError(t, err)
	b, err := export.ReadSnapshot(filepath.Join(dir, "b"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestValidate_MissingSnapshot(t *testing.T) {
	setTestEnv(t)
	_, err := run(t, ValidateCmd())
	assert.Error(t, err)
}

func TestSeedThenHistory(t *testing.T) {
	dir := setTestEnv(t)

	out, err := run(t, HistoryCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "No datasets have been seeded yet.")

	_, err = run(t, SeedCmd(), "--seed", "3")
	require.NoError(t, err)

	snapshot := filepath.Join(dir, "snap")
	_, err = run(t, GenerateCmd(), "--output", snapshot)
	require.NoError(t, err)
	_, err = run(t, SeedCmd(), "--from", snapshot)
	require.NoError(t, err)

	out, err = run(t, HistoryCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "generated")
	assert.Contains(t, out, snapshot)

	out, err = run(t, ValidateCmd(), "--db")
	require.NoError(t, err)
	assert.Contains(t, out, "Dataset is valid")
}

func TestSeedFromSnapshot_RecordsNoSeed(t *testing.T) {
	dir := setTestEnv(t)
	snapshot := filepath.Join(dir, "snap")

	_, err := run(t, GenerateCmd(), "--seed", "9", "--output", snapshot)
	require.NoError(t, err)
	_, err = run(t, SeedCmd(), "--seed", "9", "--from", snapshot)
	require.NoError(t, err)

	cfg, err := loadConfig()
	require.NoError(t, err)
	s, err := getStore(cfg, false)
	require.NoError(t, err)

	runs, err := s.History()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, int64(0), runs[0].Seed)
	assert.Equal(t, snapshot, runs[0].Source)
}

func TestCommands_InvalidSeedConfig(t *testing.T) {
	setTestEnv(t)
	t.Setenv("DATA_SEED", "forty-two")

	for _, cmd := range []*cobra.Command{GenerateCmd(), ValidateCmd(), SeedCmd(), HistoryCmd()} {
		_, err := run(t, cmd)
		assert.ErrorContains(t, err, "invalid DATA_SEED", cmd.Use)
	}
}

func TestAnalyzeWorkbook(t *testing.T) {
	dir := setTestEnv(t)
	workbook := filepath.Join(dir, "participants.xlsx")
	report := filepath.Join(dir, "analysis.json")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Name", "Rent"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Jane", 650}))
	require.NoError(t, f.SaveAs(workbook))
	require.NoError(t, f.Close())

	out, err := run(t, AnalyzeCmd(), workbook, "--out", report)
	require.NoError(t, err)
	assert.Contains(t, out, "Found 1 sheets in workbook")
	assert.Contains(t, out, "- Rent: int64 (non-null: 1, null: 0)")
	assert.FileExists(t, report)
}

func TestAnalyze_RequiresWorkbook(t *testing.T) {
	setTestEnv(t)
	_, err := run(t, AnalyzeCmd())
	assert.Error(t, err)
}
