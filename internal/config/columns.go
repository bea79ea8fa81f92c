package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rpgo/savings-planner/internal/tabular"
)

// Canonical column names for person tables.
const (
	ColName                = "name"
	ColAge                 = "age"
	ColAnnualIncome        = "annual_income"
	ColRent                = "rent"
	ColMonthlyExpenses     = "monthly_expenses"
	ColSavingsGoal         = "savings_goal"
	ColHorizonYears        = "horizon_years"
	ColMonthlyContribution = "monthly_contribution"
)

// Canonical column names for product tables.
const (
	ColRate             = "rate"
	ColTaxRate          = "tax_rate"
	ColMinDurationYears = "min_duration_years"
	ColDepositCap       = "deposit_cap"
)

// PersonColumns is the column order used when writing person tables.
var PersonColumns = []string{
	ColName, ColAge, ColAnnualIncome, ColRent, ColMonthlyExpenses,
	ColSavingsGoal, ColHorizonYears, ColMonthlyContribution,
}

// ProductColumns is the column order used when writing product tables.
var ProductColumns = []string{
	ColName, ColRate, ColTaxRate, ColMinDurationYears, ColDepositCap,
}

// headerAliases maps accepted header spellings to canonical names. French
// headers come from existing client spreadsheets.
var headerAliases = map[string]string{
	"nom":                           ColName,
	"revenu_annuel":                 ColAnnualIncome,
	"income":                        ColAnnualIncome,
	"loyer":                         ColRent,
	"depenses_mensuelles":           ColMonthlyExpenses,
	"expenses":                      ColMonthlyExpenses,
	"objectif":                      ColSavingsGoal,
	"goal":                          ColSavingsGoal,
	"duree_epargne":                 ColHorizonYears,
	"horizon":                       ColHorizonYears,
	"versement_mensuel_utilisateur": ColMonthlyContribution,
	"contribution":                  ColMonthlyContribution,
	"taux_interet":                  ColRate,
	"interest_rate":                 ColRate,
	"fiscalite":                     ColTaxRate,
	"duree_min":                     ColMinDurationYears,
	"min_duration":                  ColMinDurationYears,
	"versement_max":                 ColDepositCap,
	"max_deposit":                   ColDepositCap,
}

// canonicalColumns resolves a table's headers to canonical names.
func canonicalColumns(t *tabular.Table) map[string]int {
	idx := make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		key := tabular.NormalizeHeader(h)
		if alias, ok := headerAliases[key]; ok {
			key = alias
		}
		if _, seen := idx[key]; !seen {
			idx[key] = i
		}
	}
	return idx
}

// rowReader pulls typed values out of one table row.
type rowReader struct {
	path    string
	table   *tabular.Table
	columns map[string]int
	row     int
}

// isMissing reports whether a cell holds no value.
func isMissing(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "none", "null", "nan", "<na>":
		return true
	}
	return false
}

func (r *rowReader) raw(col string) (string, bool) {
	i, ok := r.columns[col]
	if !ok {
		return "", false
	}
	v := strings.TrimSpace(r.table.Cell(r.row, i))
	if isMissing(v) {
		return "", false
	}
	return v, true
}

func (r *rowReader) requiredString(col string) (string, error) {
	v, ok := r.raw(col)
	if !ok {
		return "", fmt.Errorf("missing required field %q", col)
	}
	return v, nil
}

func (r *rowReader) decimal(col string, required bool) (decimal.Decimal, error) {
	v, ok := r.raw(col)
	if !ok {
		if required {
			return decimal.Zero, fmt.Errorf("missing required field %q", col)
		}
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, &tabular.FormatError{Path: r.path, Column: col, Err: fmt.Errorf("invalid number %q", v)}
	}
	return d, nil
}

func (r *rowReader) integer(col string) (int, error) {
	d, err := r.decimal(col, true)
	if err != nil {
		return 0, err
	}
	if !d.Equal(d.Truncate(0)) {
		v, _ := r.raw(col)
		return 0, &tabular.FormatError{Path: r.path, Column: col, Err: fmt.Errorf("invalid integer %q", v)}
	}
	return int(d.IntPart()), nil
}

// rowError attaches the 1-based row number. A wrapped FormatError still names the column.
func (r *rowReader) rowError(err error) error {
	return &tabular.RowError{Row: r.row + 1, Err: err}
}
