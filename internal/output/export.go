package output

import (
	"fmt"
	"strconv"

	"github.com/rpgo/savings-planner/internal/config"
	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/rpgo/savings-planner/internal/tabular"
)

// ResultColumns returns the fixed columns followed by every indicator key
// found in records, in first-seen order.
func ResultColumns(records []domain.ResultRecord) []string {
	columns := append([]string(nil), domain.ResultColumns...)
	seen := make(map[string]bool, len(columns))
	for _, c := range columns {
		seen[c] = true
	}
	for _, r := range records {
		for _, k := range r.Indicators.Keys() {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}
	return columns
}

// ResultTable flattens records into one row each. Indicators a record lacks are empty cells.
func ResultTable(records []domain.ResultRecord) *tabular.Table {
	columns := ResultColumns(records)
	t := tabular.NewTable(columns...)
	for _, r := range records {
		values := r.Values()
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = values[c]
		}
		t.Append(row...)
	}
	return t
}

// ExportResults writes records to path, choosing the format by extension.
func ExportResults(records []domain.ResultRecord, path string) error {
	if err := tabular.Write(path, ResultTable(records)); err != nil {
		return fmt.Errorf("failed to export results: %w", err)
	}
	return nil
}

// PeopleTable renders people with the canonical person columns.
func PeopleTable(people []domain.Person) *tabular.Table {
	t := tabular.NewTable(config.PersonColumns...)
	for _, p := range people {
		t.Append(
			p.Name,
			strconv.Itoa(p.Age),
			p.AnnualIncome.String(),
			p.Rent.String(),
			p.MonthlyExpenses.String(),
			p.SavingsGoal.String(),
			strconv.Itoa(p.HorizonYears),
			p.MonthlyContribution.String(),
		)
	}
	return t
}

// ProductTable renders products with the canonical product columns.
// Uncapped products get an empty cap cell.
func ProductTable(products []domain.SavingsProduct) *tabular.Table {
	t := tabular.NewTable(config.ProductColumns...)
	for _, p := range products {
		depositCap := ""
		if amount, capped := p.DepositCap.Amount(); capped {
			depositCap = amount.String()
		}
		t.Append(
			p.Name,
			p.Rate.String(),
			p.TaxRate.String(),
			strconv.Itoa(p.MinDurationYears),
			depositCap,
		)
	}
	return t
}

// SavePeople writes people so that config.InputParser.LoadPeople reads them back unchanged.
func SavePeople(people []domain.Person, path string) error {
	if err := tabular.Write(path, PeopleTable(people)); err != nil {
		return fmt.Errorf("failed to save people: %w", err)
	}
	return nil
}

// SaveProducts writes products so that config.InputParser.LoadProducts reads them back unchanged.
func SaveProducts(products []domain.SavingsProduct, path string) error {
	if err := tabular.Write(path, ProductTable(products)); err != nil {
		return fmt.Errorf("failed to save products: %w", err)
	}
	return nil
}
