package output

import (
	"github.com/rpgo/savings-planner/internal/domain"
)

// Recommendation is the suggested option for one client.
type Recommendation struct {
	ClientName  string
	Record      domain.ResultRecord
	GoalReached bool
}

// AnalyzeSuggestions picks one record per client, in first-seen client order.
// Among records that reach the goal the lowest monthly effort wins, ties going
// to the higher net amount. When none reaches the goal the highest net amount wins.
// Earlier records win remaining ties.
func AnalyzeSuggestions(records []domain.ResultRecord) []Recommendation {
	var order []string
	byClient := make(map[string][]domain.ResultRecord)
	for _, r := range records {
		if _, seen := byClient[r.ClientName]; !seen {
			order = append(order, r.ClientName)
		}
		byClient[r.ClientName] = append(byClient[r.ClientName], r)
	}

	recs := make([]Recommendation, 0, len(order))
	for _, client := range order {
		best, ok := Recommend(byClient[client])
		if !ok {
			continue
		}
		recs = append(recs, Recommendation{ClientName: client, Record: best, GoalReached: best.GoalReached})
	}
	return recs
}

// Recommend applies the AnalyzeSuggestions rule to a single client's records.
func Recommend(records []domain.ResultRecord) (domain.ResultRecord, bool) {
	var best domain.ResultRecord
	found := false
	for _, r := range records {
		if !r.GoalReached {
			continue
		}
		if !found ||
			r.MonthlyEffort.LessThan(best.MonthlyEffort) ||
			(r.MonthlyEffort.Equal(best.MonthlyEffort) && r.NetAmount.GreaterThan(best.NetAmount)) {
			best, found = r, true
		}
	}
	if found {
		return best, true
	}

	for _, r := range records {
		if !found || r.NetAmount.GreaterThan(best.NetAmount) {
			best, found = r, true
		}
	}
	return best, found
}
