package output

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rpgo/savings-planner/internal/domain"
)

func rec(client, product string, effort, net int64, reached bool) domain.ResultRecord {
	return domain.ResultRecord{
		ClientName:    client,
		Scenario:      "25",
		ProductName:   product,
		MonthlyEffort: decimal.NewFromInt(effort),
		NetAmount:     decimal.NewFromInt(net),
		GoalReached:   reached,
	}
}

func TestRecommend_LowestEffortAmongReached(t *testing.T) {
	best, ok := Recommend([]domain.ResultRecord{
		rec("A", "big", 900, 90000, true),
		rec("A", "small", 300, 30000, true),
		rec("A", "missed", 100, 10000, false),
	})
	if !ok || best.ProductName != "small" {
		t.Fatalf("expected small, got %+v", best)
	}
}

func TestRecommend_TieBreaksOnNetAmount(t *testing.T) {
	best, _ := Recommend([]domain.ResultRecord{
		rec("A", "first", 300, 30000, true),
		rec("A", "richer", 300, 31000, true),
		rec("A", "same", 300, 31000, true),
	})
	if best.ProductName != "richer" {
		t.Fatalf("expected richer, got %s", best.ProductName)
	}
}

func TestRecommend_FallsBackToHighestNet(t *testing.T) {
	best, ok := Recommend([]domain.ResultRecord{
		rec("A", "low", 100, 1000, false),
		rec("A", "high", 500, 5000, false),
	})
	if !ok || best.ProductName != "high" || best.GoalReached {
		t.Fatalf("expected high, got %+v", best)
	}
	if _, ok := Recommend(nil); ok {
		t.Fatalf("expected no recommendation for empty input")
	}
}

func TestAnalyzeSuggestions_ClientOrder(t *testing.T) {
	recs := AnalyzeSuggestions([]domain.ResultRecord{
		rec("Zoe", "x", 100, 1000, false),
		rec("Adam", "y", 100, 1000, true),
		rec("Zoe", "z", 200, 2000, true),
	})
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].ClientName != "Zoe" || recs[0].Record.ProductName != "z" || !recs[0].GoalReached {
		t.Fatalf("unexpected first recommendation %+v", recs[0])
	}
	if recs[1].ClientName != "Adam" {
		t.Fatalf("unexpected second recommendation %+v", recs[1])
	}
}

func TestGenerateAssumptions(t *testing.T) {
	got := GenerateAssumptions(exampleRecords(t))
	if len(got) != len(DefaultAssumptions)+3 {
		t.Fatalf("expected one line per product, got %v", got)
	}
	if got[len(DefaultAssumptions)] != "Livret A: rate 2.4%, tax 0%, minimum 0 years, annual cap 22950" {
		t.Fatalf("unexpected product line %q", got[len(DefaultAssumptions)])
	}
	if len(GenerateAssumptions(nil)) != len(DefaultAssumptions) {
		t.Fatalf("expected defaults only for empty input")
	}
}
