package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Person represents a saver and the financial profile used to size contributions.
// Fields are plain values so callers can adjust a profile between runs.
type Person struct {
	Name            string          `yaml:"name" json:"name"`
	Age             int             `yaml:"age" json:"age"`
	AnnualIncome    decimal.Decimal `yaml:"annual_income" json:"annual_income"`
	Rent            decimal.Decimal `yaml:"rent" json:"rent"`                         // Monthly
	MonthlyExpenses decimal.Decimal `yaml:"monthly_expenses" json:"monthly_expenses"` // Excluding rent
	SavingsGoal     decimal.Decimal `yaml:"savings_goal" json:"savings_goal"`
	HorizonYears    int             `yaml:"horizon_years" json:"horizon_years"`

	// Optional monthly amount chosen by the saver; zero means none was specified
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution,omitempty" json:"monthly_contribution,omitempty"`
}

// MonthlyCapacity returns what is left each month after rent and expenses.
// It is recomputed on every call and may be negative.
func (p *Person) MonthlyCapacity() decimal.Decimal {
	return p.AnnualIncome.Div(decimal.NewFromInt(12)).Sub(p.Rent).Sub(p.MonthlyExpenses)
}

// HasContribution reports whether the saver specified a positive monthly contribution.
func (p *Person) HasContribution() bool {
	return p.MonthlyContribution.IsPositive()
}

func (p Person) String() string {
	contribution := "none planned"
	if p.HasContribution() {
		contribution = p.MonthlyContribution.String()
	}
	return fmt.Sprintf("Person: %s, Age: %d, Annual income: %s, Rent: %s, Monthly expenses: %s, "+
		"Goal: %s, Horizon: %d years, Monthly contribution: %s, Monthly capacity: %s",
		p.Name, p.Age, p.AnnualIncome, p.Rent, p.MonthlyExpenses,
		p.SavingsGoal, p.HorizonYears, contribution, p.MonthlyCapacity().StringFixed(2))
}
