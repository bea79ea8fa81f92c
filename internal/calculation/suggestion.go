package calculation

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/rpgo/savings-planner/internal/domain"
	money "github.com/rpgo/savings-planner/pkg/decimal"
)

// Indicator keys attached to every suggestion.
const (
	IndicatorRate        = "rate"
	IndicatorTaxRate     = "tax_rate"
	IndicatorMinDuration = "min_duration"
	IndicatorDepositCap  = "deposit_cap"
)

// CapacityShares are the fixed percentages of monthly capacity evaluated for every saver.
var CapacityShares = []int64{25, 50, 75, 100}

// Suggester produces ordered suggestions for one saver.
type Suggester interface {
	Suggest(person domain.Person, products []domain.SavingsProduct) []domain.ResultRecord
}

// Scenario is one monthly contribution to evaluate.
type Scenario struct {
	Label   string          // Share of capacity, in percent
	Monthly decimal.Decimal // May be negative when capacity is
}

// BuildScenarios lists the contributions to evaluate, in output order: the saver's
// own contribution first when one is set, then each of CapacityShares.
func BuildScenarios(person *domain.Person) []Scenario {
	capacity := person.MonthlyCapacity()
	scenarios := make([]Scenario, 0, len(CapacityShares)+1)
	if person.HasContribution() {
		scenarios = append(scenarios, Scenario{
			Label:   money.Ratio(person.MonthlyContribution, capacity).String(),
			Monthly: person.MonthlyContribution,
		})
	}
	for _, share := range CapacityShares {
		scenarios = append(scenarios, Scenario{
			Label:   strconv.FormatInt(share, 10),
			Monthly: money.NewMoneyFromDecimal(capacity).PercentOf(decimal.NewFromInt(share)).Decimal,
		})
	}
	return scenarios
}

// SuggestionEngine matches a saver against a product catalog.
type SuggestionEngine struct {
	Logger Logger
}

// NewSuggestionEngine creates a suggestion engine with a no-op logger.
func NewSuggestionEngine() *SuggestionEngine {
	return &SuggestionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (se *SuggestionEngine) SetLogger(l Logger) {
	se.Logger = loggerOrNop(l)
}

// Suggest evaluates every scenario on every product the saver is eligible for.
// Records come out in product order, then scenario order, without sorting or
// deduplication. Products whose minimum duration exceeds the horizon are skipped,
// as are scenarios whose annual deposit is above the product's cap.
func (se *SuggestionEngine) Suggest(person domain.Person, products []domain.SavingsProduct) []domain.ResultRecord {
	log := loggerOrNop(se.Logger)
	scenarios := BuildScenarios(&person)
	records := make([]domain.ResultRecord, 0, len(products)*len(scenarios))

	for _, product := range products {
		if person.HorizonYears < product.MinDurationYears {
			log.Debugf("%s: skipping %s, horizon %d years is below minimum duration %d",
				person.Name, product.Name, person.HorizonYears, product.MinDurationYears)
			continue
		}
		indicators := ProductIndicators(product)
		for _, sc := range scenarios {
			record, ok := se.evaluate(log, person, product, sc, indicators)
			if ok {
				records = append(records, record)
			}
		}
	}

	log.Infof("%s: %d suggestions across %d products", person.Name, len(records), len(products))
	return records
}

func (se *SuggestionEngine) evaluate(log Logger, person domain.Person, product domain.SavingsProduct, sc Scenario, indicators domain.Indicators) (domain.ResultRecord, bool) {
	annual := money.NewMoneyFromDecimal(sc.Monthly).Annual()
	if product.DepositCap.Exceeded(annual.Decimal) {
		log.Debugf("%s: skipping %s at %s%%, annual deposit %s exceeds cap %s",
			person.Name, product.Name, sc.Label, annual, product.DepositCap)
		return domain.ResultRecord{}, false
	}

	grossValue, err := FutureValue(annual.Decimal, product.Rate, person.HorizonYears)
	if err != nil {
		log.Warnf("%s: skipping %s at %s%%: %v", person.Name, product.Name, sc.Label, err)
		return domain.ResultRecord{}, false
	}
	gross := money.NewMoneyFromDecimal(grossValue)
	deposited := annual.Mul(decimal.NewFromInt(int64(person.HorizonYears)))
	gain := gross.Sub(deposited)
	net := deposited.Add(gain.ApplyTaxRate(product.TaxRate))

	return domain.NewResultRecord(
		person.Name,
		sc.Label,
		product.Name,
		sc.Monthly,
		net.Decimal,
		net.GreaterThanOrEqual(money.NewMoneyFromDecimal(person.SavingsGoal)),
		indicators,
	), true
}

// ProductIndicators returns the product terms reported alongside each suggestion.
func ProductIndicators(product domain.SavingsProduct) domain.Indicators {
	return domain.NewIndicators(
		IndicatorRate, product.Rate.String(),
		IndicatorTaxRate, product.TaxRate.String(),
		IndicatorMinDuration, strconv.Itoa(product.MinDurationYears),
		IndicatorDepositCap, product.DepositCap.String(),
	)
}
