package output

import (
	"encoding/json"

	"github.com/rpgo/savings-planner/internal/domain"
)

// JSONFormatter serializes records and recommendations as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

type jsonRecommendation struct {
	ClientName  string `json:"client_name"`
	ProductName string `json:"product_name"`
	Scenario    string `json:"scenario"`
	GoalReached bool   `json:"goal_reached"`
}

func (j JSONFormatter) Format(records []domain.ResultRecord) ([]byte, error) {
	recs := AnalyzeSuggestions(records)
	out := struct {
		Suggestions     []domain.ResultRecord `json:"suggestions"`
		Recommendations []jsonRecommendation  `json:"recommendations"`
	}{
		Suggestions:     records,
		Recommendations: make([]jsonRecommendation, 0, len(recs)),
	}
	if out.Suggestions == nil {
		out.Suggestions = []domain.ResultRecord{}
	}
	for _, r := range recs {
		out.Recommendations = append(out.Recommendations, jsonRecommendation{
			ClientName:  r.ClientName,
			ProductName: r.Record.ProductName,
			Scenario:    r.Record.Scenario,
			GoalReached: r.GoalReached,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
