package integration

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/savings-planner/internal/calculation"
	"github.com/rpgo/savings-planner/internal/config"
	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/rpgo/savings-planner/internal/output"
	"github.com/rpgo/savings-planner/internal/repository"
)

func loadTables(t *testing.T) ([]domain.Person, []domain.SavingsProduct) {
	t.Helper()
	parser := config.NewInputParser()
	people, err := parser.LoadPeople("../testdata/people.csv")
	require.NoError(t, err)
	products, err := parser.LoadProducts("../testdata/products.txt")
	require.NoError(t, err)
	return people, products
}

func TestTablesAndPlanAgree(t *testing.T) {
	people, products := loadTables(t)

	plan, err := config.NewInputParser().LoadPlan("../testdata/plan.yaml")
	require.NoError(t, err)

	require.Len(t, people, 2)
	require.Len(t, products, 3)
	assert.Len(t, plan.People, 2)
	for i := range people {
		assert.Equal(t, plan.People[i].Name, people[i].Name)
		assert.True(t, plan.People[i].MonthlyCapacity().Equal(people[i].MonthlyCapacity()))
		assert.True(t, plan.People[i].MonthlyContribution.Equal(people[i].MonthlyContribution))
	}
	for i := range products {
		assert.True(t, plan.Products[i].DepositCap.Equal(products[i].DepositCap), products[i].Name)
	}
	assert.False(t, products[2].DepositCap.IsCapped())
	assert.False(t, people[1].HasContribution())
}

func TestSuggestionsEndToEnd(t *testing.T) {
	people, products := loadTables(t)

	batch, err := calculation.SuggestAll(context.Background(), calculation.NewSuggestionEngine(), people, products, 2, nil)
	require.NoError(t, err)
	records := calculation.Flatten(batch)
	require.Len(t, records, 22)

	// Life insurance needs eight years, Alice saves for five.
	for _, r := range batch[0].Records {
		assert.NotEqual(t, "Life insurance", r.ProductName)
	}
	assert.Equal(t, "21.43", batch[0].Records[0].Scenario)
	assert.Equal(t, "19338.23", batch[0].Records[0].NetAmount.StringFixed(2))

	recs := output.AnalyzeSuggestions(records)
	require.Len(t, recs, 2)
	assert.Equal(t, "Livret A", recs[0].Record.ProductName)
	assert.Equal(t, "25", recs[0].Record.Scenario)
	assert.Equal(t, "50", recs[1].Record.Scenario)
	assert.True(t, decimal.NewFromInt(650).Equal(recs[1].Record.MonthlyEffort))
}

func TestCachedBatchMatchesEngine(t *testing.T) {
	people, products := loadTables(t)
	engine := calculation.NewSuggestionEngine()
	cache := repository.NewMemoryCache()
	cached := calculation.NewCachedEngine(engine, cache)

	direct, err := calculation.SuggestAll(context.Background(), engine, people, products, 1, nil)
	require.NoError(t, err)
	first, err := calculation.SuggestAll(context.Background(), cached, people, products, 4, nil)
	require.NoError(t, err)
	second, err := calculation.SuggestAll(context.Background(), cached, people, products, 4, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, cache.Len())
	want := calculation.Flatten(direct)
	for _, got := range [][]domain.ResultRecord{calculation.Flatten(first), calculation.Flatten(second)} {
		require.Len(t, got, len(want))
		for i := range want {
			assert.Equal(t, want[i].ProductName, got[i].ProductName)
			assert.True(t, want[i].NetAmount.Equal(got[i].NetAmount))
			assert.Equal(t, want[i].Indicators.Keys(), got[i].Indicators.Keys())
		}
	}
}

func TestCancelledBatch(t *testing.T) {
	people, products := loadTables(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := calculation.SuggestAll(ctx, calculation.NewSuggestionEngine(), people, products, 1, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
