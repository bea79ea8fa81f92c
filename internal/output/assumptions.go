package output

import (
	"fmt"

	"github.com/rpgo/savings-planner/internal/calculation"
	"github.com/rpgo/savings-planner/internal/domain"
)

// DefaultAssumptions lists the modeling rules rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Monthly capacity: annual income / 12 - rent - monthly expenses",
	"Scenarios: your own contribution, then 25%, 50%, 75% and 100% of capacity",
	"Deposits are made at the start of each year and compound once a year",
	"Tax applies to interest gains only, at the product's flat rate",
	"Products are skipped when the horizon is shorter than their minimum duration",
	"Scenarios whose annual deposit exceeds a product's cap are skipped",
}

// GenerateAssumptions adds the terms of every product that appears in records,
// in first-seen order.
func GenerateAssumptions(records []domain.ResultRecord) []string {
	out := append([]string(nil), DefaultAssumptions...)
	seen := make(map[string]bool)
	for _, r := range records {
		if seen[r.ProductName] {
			continue
		}
		seen[r.ProductName] = true
		rate, _ := r.Indicators.Get(calculation.IndicatorRate)
		tax, _ := r.Indicators.Get(calculation.IndicatorTaxRate)
		minDuration, _ := r.Indicators.Get(calculation.IndicatorMinDuration)
		depositCap, _ := r.Indicators.Get(calculation.IndicatorDepositCap)
		out = append(out, fmt.Sprintf("%s: rate %s%%, tax %s%%, minimum %s years, annual cap %s",
			r.ProductName, rate, tax, minDuration, depositCap))
	}
	return out
}
