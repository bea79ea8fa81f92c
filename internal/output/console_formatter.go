package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/savings-planner/internal/domain"
)

// ConsoleFormatter renders every suggestion as a text block, grouped by client,
// followed by the recommendation for each client.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(records []domain.ResultRecord) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "SAVINGS SUGGESTIONS")
	fmt.Fprintln(&buf, "================================")
	if len(records) == 0 {
		fmt.Fprintln(&buf, "No eligible suggestions.")
		return buf.Bytes(), nil
	}

	current := ""
	for i, r := range records {
		if i == 0 || r.ClientName != current {
			current = r.ClientName
			fmt.Fprintln(&buf)
			fmt.Fprintf(&buf, "Client: %s\n", current)
			fmt.Fprintln(&buf, "--------------------------------")
		}
		fmt.Fprintf(&buf, "Scenario %s of capacity\n", FormatScenario(r.Scenario))
		buf.WriteString(r.Render())
	}

	recs := AnalyzeSuggestions(records)
	if len(recs) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "RECOMMENDATIONS")
		for _, rec := range recs {
			fmt.Fprintf(&buf, "%s: %s\n", rec.ClientName, describeRecommendation(rec))
		}
	}
	return buf.Bytes(), nil
}

func describeRecommendation(rec Recommendation) string {
	r := rec.Record
	if rec.GoalReached {
		return fmt.Sprintf("%s at %s of capacity (%s/month, %s at term)",
			r.ProductName, FormatScenario(r.Scenario), FormatCurrency(r.MonthlyEffort), FormatCurrency(r.NetAmount))
	}
	return fmt.Sprintf("goal out of reach, best is %s at %s of capacity (%s at term)",
		r.ProductName, FormatScenario(r.Scenario), FormatCurrency(r.NetAmount))
}
