package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	money "github.com/rpgo/savings-planner/pkg/decimal"
)

// Fixed result columns, in export order.
const (
	ColumnClientName    = "client_name"
	ColumnScenario      = "scenario"
	ColumnProductName   = "product_name"
	ColumnMonthlyEffort = "monthly_effort"
	ColumnNetAmount     = "net_amount"
	ColumnGoalReached   = "goal_reached"
)

// ResultColumns lists the fixed columns of a result row.
var ResultColumns = []string{
	ColumnClientName,
	ColumnScenario,
	ColumnProductName,
	ColumnMonthlyEffort,
	ColumnNetAmount,
	ColumnGoalReached,
}

// ResultRecord is the outcome of one contribution scenario on one product.
type ResultRecord struct {
	ClientName    string          `json:"client_name"`
	Scenario      string          `json:"scenario"`
	ProductName   string          `json:"product_name"`
	MonthlyEffort decimal.Decimal `json:"monthly_effort"`
	NetAmount     decimal.Decimal `json:"net_amount"`
	GoalReached   bool            `json:"goal_reached"`
	Indicators    Indicators      `json:"indicators"`
}

// NewResultRecord builds a record, clamping a negative effort or net amount to zero.
// The record keeps its own copy of indicators.
func NewResultRecord(client, scenario, product string, effort, net decimal.Decimal, goalReached bool, indicators Indicators) ResultRecord {
	return ResultRecord{
		ClientName:    client,
		Scenario:      scenario,
		ProductName:   product,
		MonthlyEffort: money.NewMoneyFromDecimal(effort).NonNegative().Decimal,
		NetAmount:     money.NewMoneyFromDecimal(net).NonNegative().Decimal,
		GoalReached:   goalReached,
		Indicators:    indicators.Clone(),
	}
}

// Status returns the goal banner shown in reports.
func (r ResultRecord) Status() string {
	if r.GoalReached {
		return "✅ Objective reached"
	}
	return "❌ Objective not reached"
}

// Render returns a human-readable summary of the record.
func (r ResultRecord) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Product: %s\n", r.ProductName)
	fmt.Fprintf(&b, "  - Monthly effort: %s\n", money.NewMoneyFromDecimal(r.MonthlyEffort).Format())
	fmt.Fprintf(&b, "  - Final net amount: %s\n", money.NewMoneyFromDecimal(r.NetAmount).Format())
	fmt.Fprintf(&b, "  - Status: %s\n", r.Status())
	if r.Indicators.Len() > 0 {
		b.WriteString("  - Additional indicators:\n")
		r.Indicators.Each(func(k, v string) {
			fmt.Fprintf(&b, "      * %s: %s\n", k, v)
		})
	}
	return b.String()
}

// Row flattens the record into columns and values: the fixed columns first,
// then every indicator. Amounts are rounded to cents.
func (r ResultRecord) Row() ([]string, []string) {
	columns := append(append([]string(nil), ResultColumns...), r.Indicators.Keys()...)
	values := []string{
		r.ClientName,
		r.Scenario,
		r.ProductName,
		money.NewMoneyFromDecimal(r.MonthlyEffort).Round().String(),
		money.NewMoneyFromDecimal(r.NetAmount).Round().String(),
		strconv.FormatBool(r.GoalReached),
	}
	r.Indicators.Each(func(_, v string) {
		values = append(values, v)
	})
	return columns, values
}

// Values returns the row as a column -> value map.
func (r ResultRecord) Values() map[string]string {
	columns, values := r.Row()
	m := make(map[string]string, len(columns))
	for i, c := range columns {
		m[c] = values[i]
	}
	return m
}
