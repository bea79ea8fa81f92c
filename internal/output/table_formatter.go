package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/savings-planner/internal/cli"
	"github.com/rpgo/savings-planner/internal/domain"
)

// TableFormatter renders one bordered table per client for terminal display.
type TableFormatter struct{}

func (t TableFormatter) Name() string { return "table" }

func (t TableFormatter) Format(records []domain.ResultRecord) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, cli.RenderTitle("SAVINGS SUGGESTIONS"))

	recs := AnalyzeSuggestions(records)
	if len(recs) == 0 {
		fmt.Fprintln(&buf, cli.RenderMuted("  No eligible suggestions."))
		return buf.Bytes(), nil
	}

	byClient := make(map[string][][]string)
	for _, r := range records {
		byClient[r.ClientName] = append(byClient[r.ClientName], []string{
			r.ProductName,
			FormatScenario(r.Scenario),
			FormatCurrency(r.MonthlyEffort),
			FormatCurrency(r.NetAmount),
			cli.RenderStatus(r.GoalReached, goalLabel(r.GoalReached)),
		})
	}

	for _, rec := range recs {
		fmt.Fprintln(&buf)
		buf.WriteString(cli.RenderTable(cli.Table{
			Title:   rec.ClientName,
			Headers: []string{"Product", "Scenario", "Monthly effort", "Net amount", "Goal"},
			Rows:    byClient[rec.ClientName],
		}))
		fmt.Fprintf(&buf, "  Recommended: %s\n", describeRecommendation(rec))
	}

	fmt.Fprintln(&buf)
	for _, a := range DefaultAssumptions {
		fmt.Fprintln(&buf, cli.RenderMuted("  * "+a))
	}
	return buf.Bytes(), nil
}

func goalLabel(reached bool) string {
	if reached {
		return "reached"
	}
	return "not reached"
}
