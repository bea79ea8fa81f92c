package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default so runs do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// run executes the CLI with an isolated data directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	return runIn(t, args...)
}

// runIn executes the CLI with isolated settings, keeping XDG_DATA_HOME.
func runIn(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--quiet", "--env-file", filepath.Join(t.TempDir(), "missing.env"), "--log-level", "error"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func writeExample(t *testing.T, ext string) string {
	t.Helper()
	dir := t.TempDir()
	_, err := runIn(t, "example", "--dir", dir, "--ext", ext)
	require.NoError(t, err)
	return dir
}

func TestExampleCommand(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	dir := writeExample(t, "txt")
	for _, name := range []string{"plan.yaml", "people.txt", "products.txt"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestSuggestCommand_Plan(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	dir := writeExample(t, "csv")

	out, err := runIn(t, "suggest", "--plan", filepath.Join(dir, "plan.yaml"), "--format", "csv", "--no-history")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 23)
	assert.True(t, strings.HasPrefix(lines[1], "Alice,21.43,Livret A,300.00,19338.23,false"))
}

func TestSuggestCommand_TablesExportAndHistory(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataDir)
	dir := writeExample(t, "csv")
	exportPath := filepath.Join(dir, "results.xlsx")

	out, err := runIn(t, "suggest",
		"--people", filepath.Join(dir, "people.csv"),
		"--products", filepath.Join(dir, "products.csv"),
		"--output", exportPath,
		"--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "RECOMMENDATIONS")
	_, err = os.Stat(exportPath)
	require.NoError(t, err)

	out, err = runIn(t, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "people.csv")

	_, err = os.Stat(filepath.Join(dataDir, "savings-planner", "history.db"))
	assert.NoError(t, err)
}

func TestSuggestCommand_Errors(t *testing.T) {
	_, err := run(t, "suggest")
	assert.ErrorContains(t, err, "--plan or both --people and --products")

	dir := writeExample(t, "csv")
	_, err = runIn(t, "suggest", "--plan", filepath.Join(dir, "plan.yaml"), "--format", "pdf")
	assert.ErrorContains(t, err, "Try one of")

	empty := filepath.Join(t.TempDir(), "people.csv")
	require.NoError(t, os.WriteFile(empty, []byte("name,age,annual_income,rent,monthly_expenses,savings_goal,horizon_years\n"), 0o644))
	_, err = runIn(t, "suggest", "--people", empty, "--products", filepath.Join(dir, "products.csv"), "--no-history")
	assert.ErrorContains(t, err, "no records found")
}

func TestProjectCommand(t *testing.T) {
	schedule := filepath.Join(t.TempDir(), "schedule.csv")
	out, err := run(t, "project", "--deposit", "1200", "--rate", "2.4", "--years", "20", "--output", schedule)
	require.NoError(t, err)
	assert.Contains(t, out, "31075.23 €")
	assert.Contains(t, out, "Per month:       100.00 €")
	assert.Contains(t, out, "Deposited:       24000.00 €")
	assert.Contains(t, out, "Matures:")

	data, err := os.ReadFile(schedule)
	require.NoError(t, err)
	assert.Contains(t, string(data), "20,24000.00,")

	_, err = run(t, "project", "--deposit", "abc", "--rate", "2", "--years", "1")
	assert.ErrorContains(t, err, "invalid --deposit")
}

func TestCleanCommand(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	dir := writeExample(t, "txt")
	peopleOut := filepath.Join(dir, "people_clean.xlsx")
	productsOut := filepath.Join(dir, "products_clean.csv")

	out, err := runIn(t, "clean",
		"--people", filepath.Join(dir, "people.txt"), "--people-out", peopleOut,
		"--products", filepath.Join(dir, "products.txt"), "--products-out", productsOut)
	require.NoError(t, err)
	assert.Contains(t, out, "2 people")
	assert.Contains(t, out, "3 products")

	data, err := os.ReadFile(productsOut)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Life insurance,2.5,17.2,8,\n")

	_, err = runIn(t, "clean")
	assert.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	settingsFile := filepath.Join(t.TempDir(), "config.toml")
	out, err := run(t, "--config", settingsFile, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "using defaults")
	assert.Contains(t, out, "Default format: console")

	_, err = runIn(t, "--config", settingsFile, "config", "init")
	require.NoError(t, err)
	out, err = runIn(t, "--config", settingsFile, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "Status: loaded")
}
