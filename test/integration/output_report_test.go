package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/savings-planner/internal/calculation"
	"github.com/rpgo/savings-planner/internal/config"
	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/rpgo/savings-planner/internal/output"
	"github.com/rpgo/savings-planner/internal/store"
	"github.com/rpgo/savings-planner/internal/tabular"
)

func planRecords(t *testing.T) []domain.ResultRecord {
	t.Helper()
	plan, err := config.NewInputParser().LoadPlan("../testdata/plan.yaml")
	require.NoError(t, err)
	engine := calculation.NewSuggestionEngine()
	var records []domain.ResultRecord
	for _, p := range plan.People {
		records = append(records, engine.Suggest(p, plan.Products)...)
	}
	return records
}

func TestOutputGeneration(t *testing.T) {
	records := planRecords(t)
	dir := t.TempDir()

	for _, format := range output.AvailableFormatterNames() {
		path, err := output.GenerateReport(records, format, dir)
		require.NoError(t, err, format)
		info, err := os.Stat(path)
		require.NoError(t, err, format)
		assert.Positive(t, info.Size(), format)
	}
}

func TestExportFormatsRoundTrip(t *testing.T) {
	records := planRecords(t)
	dir := t.TempDir()

	for _, name := range []string{"results.csv", "results.txt", "results.xlsx"} {
		path := filepath.Join(dir, name)
		require.NoError(t, output.ExportResults(records, path), name)

		table, err := tabular.Read(path)
		require.NoError(t, err, name)
		assert.Equal(t, output.ResultColumns(records), table.Header, name)
		require.Equal(t, len(records), table.Len(), name)
		assert.Equal(t, "Bob", table.Rows[len(records)-1][0], name)
		assert.Equal(t, "unlimited", table.Rows[len(records)-1][9], name)
	}
}

func TestCleanConvertsBetweenFormats(t *testing.T) {
	parser := config.NewInputParser()
	people, err := parser.LoadPeople("../testdata/people.csv")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "people.xlsx")
	require.NoError(t, output.SavePeople(people, path))
	again, err := parser.LoadPeople(path)
	require.NoError(t, err)
	require.Len(t, again, len(people))
	for i := range people {
		assert.Equal(t, people[i].String(), again[i].String())
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	records := planRecords(t)
	h, err := store.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer h.Close()

	run, err := h.SaveRun("plan.yaml", 2, 3, records)
	require.NoError(t, err)

	_, loaded, err := h.LoadRun(run.ID)
	require.NoError(t, err)

	want, err := output.CSVFormatter{}.Format(records)
	require.NoError(t, err)
	got, err := output.CSVFormatter{}.Format(loaded)
	require.NoError(t, err)
	assert.Equal(t, strings.Split(string(want), "\n"), strings.Split(string(got), "\n"))
}
