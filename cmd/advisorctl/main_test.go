package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/database"
)

var (
	sampleCSV    = filepath.Join("..", "..", "pkg", "dataset", "testdata", "sample.csv")
	malformedCSV = filepath.Join("..", "..", "pkg", "dataset", "testdata", "malformed.csv")
)

// execute runs rootCmd. Flag values persist between calls, so tests pass
// every flag they depend on.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append(args, "--seed", "7"))
	err := rootCmd.Execute()
	return out.String(), err
}

func decode[T any](t *testing.T, s string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(s), &v), s)
	return v
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, name := range []string{"weather", "soil", "yield", "pests", "advisory", "suggest", "validate", "seed", "export"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestFlagDefaults(t *testing.T) {
	assert.Equal(t, "10", weatherCmd.Flags().Lookup("window").DefValue)
	assert.Equal(t, "20", advisoryCmd.Flags().Lookup("window").DefValue)
	assert.Equal(t, "10", yieldCmd.Flags().Lookup("limit").DefValue)
	assert.Equal(t, "dashboard.xlsx", exportCmd.Flags().Lookup("out").DefValue)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("csv"))
}

func TestWeatherCommand(t *testing.T) {
	out, err := execute(t, "weather", "--csv", sampleCSV, "--location", "North India", "--window", "10", "--days", "0")
	require.NoError(t, err)
	w := decode[map[string]any](t, out)
	assert.Equal(t, "North India", w["location"])
	assert.InDelta(t, 22.8, w["temperature_max"], 1e-9)

	out, err = execute(t, "weather", "--csv", sampleCSV, "--location", "", "--window", "10", "--days", "3")
	require.NoError(t, err)
	assert.Len(t, decode[[]map[string]any](t, out), 3)
}

func TestSoilCommand(t *testing.T) {
	out, err := execute(t, "soil", "--csv", sampleCSV, "--location", "", "--window", "10")
	require.NoError(t, err)
	s := decode[map[string]any](t, out)
	assert.InDelta(t, 6.47, s["ph_level"], 1e-9)
	assert.Equal(t, "Default Location", s["location"])
}

func TestYieldAndPestsCommands(t *testing.T) {
	out, err := execute(t, "yield", "--csv", sampleCSV, "--limit", "2")
	require.NoError(t, err)
	y := decode[[]map[string]any](t, out)
	require.Len(t, y, 2)
	assert.Equal(t, "SENS0001", y[0]["sensor_id"])

	out, err = execute(t, "pests", "--csv", sampleCSV, "--limit", "10")
	require.NoError(t, err)
	assert.Len(t, decode[[]map[string]any](t, out), 3)
}

func TestAdvisoryCommand(t *testing.T) {
	out, err := execute(t, "advisory", "--csv", sampleCSV, "--window", "20")
	require.NoError(t, err)
	assert.Len(t, decode[[]map[string]any](t, out), 4)
}

func TestSuggestCommand(t *testing.T) {
	out, err := execute(t, "suggest", "--csv", sampleCSV, "--location", "", "--window", "10", "--crop-type", "Wheat")
	require.NoError(t, err)
	res := decode[map[string]any](t, out)
	assert.Equal(t, "Wheat", res["crop_type"])
	assert.NotEmpty(t, res["suggestions"])

	_, err = execute(t, "suggest", "--csv", sampleCSV, "--location", "Atlantis", "--window", "10", "--crop-type", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Weather or soil data not available")
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "validate", "--csv", malformedCSV, "--strict=false")
	require.NoError(t, err)
	r := decode[map[string]any](t, out)
	assert.EqualValues(t, 2, r["records"])
	assert.Len(t, r["rejected"], 5)

	_, err = execute(t, "validate", "--csv", malformedCSV, "--strict")
	assert.Error(t, err)

	out, err = execute(t, "validate", "--csv", sampleCSV, "--strict")
	require.NoError(t, err)
	assert.Empty(t, decode[map[string]any](t, out)["rejected"])

	_, err = execute(t, "validate", "--csv", filepath.Join(t.TempDir(), "missing.csv"), "--strict=false")
	assert.Error(t, err)
}

func TestSeedCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "seed.db")
	out, err := execute(t, "seed", "--csv", sampleCSV, "--db", db)
	require.NoError(t, err)
	counts := decode[database.SeedCounts](t, out)
	assert.Equal(t, 5, counts.Crops)
	assert.Equal(t, 3, counts.Pests)
	assert.Equal(t, 4, counts.Advisories)
	// default location plus three regions
	assert.Equal(t, 4, counts.Soil)
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dash.xlsx")
	out, err := execute(t, "export", "--csv", sampleCSV, "--db", filepath.Join(dir, "export.db"),
		"--out", path, "--location", "", "--seed-db")
	require.NoError(t, err)
	assert.Equal(t, path, decode[map[string]any](t, out)["path"])

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("PK")))
}
