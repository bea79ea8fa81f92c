package calculation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	money "github.com/rpgo/savings-planner/pkg/decimal"
)

// ErrNegativeYears is returned when a projection is asked for a negative duration.
var ErrNegativeYears = errors.New("years must not be negative")

// FutureValue returns the balance after depositing annualDeposit at the start of
// each year for the given number of years, compounded once a year at ratePercent.
func FutureValue(annualDeposit, ratePercent decimal.Decimal, years int) (decimal.Decimal, error) {
	if years < 0 {
		return decimal.Zero, fmt.Errorf("%w: got %d", ErrNegativeYears, years)
	}
	deposit := money.NewMoneyFromDecimal(annualDeposit)
	balance := money.Zero()
	for i := 0; i < years; i++ {
		balance = balance.Add(deposit).Grow(ratePercent)
	}
	return balance.Decimal, nil
}

// YearBalance is one row of a growth schedule.
type YearBalance struct {
	Year      int             `json:"year"`
	Deposited decimal.Decimal `json:"deposited"` // Cumulative
	Interest  decimal.Decimal `json:"interest"`  // Earned during the year
	Balance   decimal.Decimal `json:"balance"`   // At year end
}

// GrowthSchedule breaks FutureValue down year by year. The last row's balance
// equals FutureValue for the same inputs.
func GrowthSchedule(annualDeposit, ratePercent decimal.Decimal, years int) ([]YearBalance, error) {
	if years < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeYears, years)
	}
	deposit := money.NewMoneyFromDecimal(annualDeposit)
	balance := money.Zero()
	deposited := money.Zero()
	schedule := make([]YearBalance, 0, years)
	for year := 1; year <= years; year++ {
		opening := balance.Add(deposit)
		balance = opening.Grow(ratePercent)
		deposited = deposited.Add(deposit)
		schedule = append(schedule, YearBalance{
			Year:      year,
			Deposited: deposited.Decimal,
			Interest:  balance.Sub(opening).Decimal,
			Balance:   balance.Decimal,
		})
	}
	return schedule, nil
}
