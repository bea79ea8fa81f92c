package output

import (
	"github.com/shopspring/decimal"

	money "github.com/rpgo/savings-planner/pkg/decimal"
)

// FormatCurrency formats a decimal as euros with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Round().Format()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatScenario renders a scenario label as a share of capacity.
func FormatScenario(label string) string { return label + "%" }
