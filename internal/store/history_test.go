package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/savings-planner/internal/domain"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func sampleRecords() []domain.ResultRecord {
	return []domain.ResultRecord{
		domain.NewResultRecord("Alice", "21.43", "Livret A", decimal.NewFromInt(300), decimal.RequireFromString("19338.2325"), false,
			domain.NewIndicators("rate", "2.4", "tax_rate", "0", "min_duration", "0", "deposit_cap", "22950")),
		domain.NewResultRecord("Alice", "25", "Livret A", decimal.NewFromInt(350), decimal.RequireFromString("22561.26"), true,
			domain.NewIndicators("rate", "2.4", "deposit_cap", "22950")),
	}
}

func TestSaveAndLoadRun(t *testing.T) {
	h := openTestHistory(t)

	run, err := h.SaveRun("people.csv", 1, 3, sampleRecords())
	require.NoError(t, err)
	assert.Len(t, run.ID, 36)
	assert.Equal(t, 2, run.RecordCount)

	loaded, records, err := h.LoadRun(run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, loaded.ID)
	assert.Equal(t, "people.csv", loaded.Source)
	assert.Equal(t, 3, loaded.ProductsCount)
	assert.True(t, run.CreatedAt.Equal(loaded.CreatedAt))
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "Alice", first.ClientName)
	assert.Equal(t, "21.43", first.Scenario)
	assert.True(t, decimal.RequireFromString("19338.2325").Equal(first.NetAmount))
	assert.False(t, first.GoalReached)
	assert.Equal(t, []string{"rate", "tax_rate", "min_duration", "deposit_cap"}, first.Indicators.Keys())
	assert.True(t, records[1].GoalReached)
}

func TestLoadRun_Prefix(t *testing.T) {
	h := openTestHistory(t)
	run, err := h.SaveRun("plan.yaml", 1, 1, sampleRecords())
	require.NoError(t, err)

	loaded, _, err := h.LoadRun(run.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, run.ID, loaded.ID)

	_, _, err = h.LoadRun("does-not-exist")
	assert.ErrorIs(t, err, ErrRunNotFound)

	_, _, err = h.LoadRun("")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestLoadRun_AmbiguousPrefix(t *testing.T) {
	h := openTestHistory(t)
	ids := []string{"abc12345-0000", "abc67890-0000"}
	h.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	for i := 0; i < 2; i++ {
		_, err := h.SaveRun("plan.yaml", 1, 1, nil)
		require.NoError(t, err)
	}

	_, _, err := h.LoadRun("abc")
	assert.ErrorContains(t, err, "ambiguous")

	run, _, err := h.LoadRun("abc6")
	require.NoError(t, err)
	assert.Equal(t, "abc67890-0000", run.ID)
}

func TestLoadRun_PrefixIsLiteral(t *testing.T) {
	h := openTestHistory(t)
	run, err := h.SaveRun("plan.yaml", 1, 1, sampleRecords())
	require.NoError(t, err)

	tests := []struct {
		name   string
		prefix string
	}{
		{"underscore", "_"},
		{"percent", "%"},
		{"underscore then first char", "_" + run.ID[1:4]},
		{"percent then suffix", "%" + run.ID[len(run.ID)-4:]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := h.LoadRun(tt.prefix)
			assert.ErrorIs(t, err, ErrRunNotFound)
		})
	}
}

func TestListRuns_NewestFirst(t *testing.T) {
	h := openTestHistory(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		h.now = func() time.Time { return base.Add(time.Duration(i) * time.Hour) }
		run, err := h.SaveRun("people.csv", i+1, 2, nil)
		require.NoError(t, err)
		ids = append(ids, run.ID)
	}

	runs, err := h.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, []string{ids[2], ids[1], ids[0]}, []string{runs[0].ID, runs[1].ID, runs[2].ID})
	assert.True(t, base.Add(2*time.Hour).Equal(runs[0].CreatedAt))

	limited, err := h.ListRuns(1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, ids[2], limited[0].ID)
}

func TestLoadRun_EmptyRun(t *testing.T) {
	h := openTestHistory(t)
	run, err := h.SaveRun("plan.yaml", 2, 0, nil)
	require.NoError(t, err)

	_, records, err := h.LoadRun(run.ID)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestDeleteRun(t *testing.T) {
	h := openTestHistory(t)
	run, err := h.SaveRun("people.csv", 1, 1, sampleRecords())
	require.NoError(t, err)

	require.NoError(t, h.DeleteRun(run.ID))
	_, _, err = h.LoadRun(run.ID)
	assert.ErrorIs(t, err, ErrRunNotFound)
	assert.ErrorIs(t, h.DeleteRun(run.ID), ErrRunNotFound)

	var n int
	require.NoError(t, h.db.QueryRow("SELECT COUNT(*) FROM suggestions").Scan(&n))
	assert.Equal(t, 0, n)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	h, err := Open(path)
	require.NoError(t, err)
	run, err := h.SaveRun("people.csv", 1, 1, sampleRecords())
	require.NoError(t, err)
	require.NoError(t, h.Close())

	h, err = Open(path)
	require.NoError(t, err)
	defer h.Close()
	runs, err := h.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
}
