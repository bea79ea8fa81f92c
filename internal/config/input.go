package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/rpgo/savings-planner/internal/tabular"
)

// ErrEmptyCollection is returned when an import yields no records.
var ErrEmptyCollection = errors.New("no records found")

// InputParser handles parsing of people, product and plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadPeople reads people from a CSV, tab-delimited or spreadsheet file.
// The whole import fails on the first bad row.
func (ip *InputParser) LoadPeople(path string) ([]domain.Person, error) {
	table, err := tabular.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read people from %s: %w", path, err)
	}

	columns := canonicalColumns(table)
	people := make([]domain.Person, 0, table.Len())
	for i := range table.Rows {
		r := &rowReader{path: path, table: table, columns: columns, row: i}
		person, err := ip.personFromRow(r)
		if err != nil {
			return nil, r.rowError(err)
		}
		if err := ip.validatePerson(&person); err != nil {
			return nil, r.rowError(err)
		}
		people = append(people, person)
	}
	return people, nil
}

func (ip *InputParser) personFromRow(r *rowReader) (domain.Person, error) {
	var p domain.Person
	var err error

	if p.Name, err = r.requiredString(ColName); err != nil {
		return p, err
	}
	if p.Age, err = r.integer(ColAge); err != nil {
		return p, err
	}
	if p.AnnualIncome, err = r.decimal(ColAnnualIncome, true); err != nil {
		return p, err
	}
	if p.Rent, err = r.decimal(ColRent, true); err != nil {
		return p, err
	}
	if p.MonthlyExpenses, err = r.decimal(ColMonthlyExpenses, true); err != nil {
		return p, err
	}
	if p.SavingsGoal, err = r.decimal(ColSavingsGoal, true); err != nil {
		return p, err
	}
	if p.HorizonYears, err = r.integer(ColHorizonYears); err != nil {
		return p, err
	}
	if p.MonthlyContribution, err = r.decimal(ColMonthlyContribution, false); err != nil {
		return p, err
	}
	return p, nil
}

// LoadProducts reads savings products from a CSV, tab-delimited or spreadsheet file.
// A missing deposit cap means the product is uncapped.
func (ip *InputParser) LoadProducts(path string) ([]domain.SavingsProduct, error) {
	table, err := tabular.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read products from %s: %w", path, err)
	}

	columns := canonicalColumns(table)
	products := make([]domain.SavingsProduct, 0, table.Len())
	for i := range table.Rows {
		r := &rowReader{path: path, table: table, columns: columns, row: i}
		product, err := ip.productFromRow(r)
		if err != nil {
			return nil, r.rowError(err)
		}
		if err := ip.validateProduct(&product); err != nil {
			return nil, r.rowError(err)
		}
		products = append(products, product)
	}
	return products, nil
}

func (ip *InputParser) productFromRow(r *rowReader) (domain.SavingsProduct, error) {
	var p domain.SavingsProduct
	var err error

	if p.Name, err = r.requiredString(ColName); err != nil {
		return p, err
	}
	if p.Rate, err = r.decimal(ColRate, true); err != nil {
		return p, err
	}
	if p.TaxRate, err = r.decimal(ColTaxRate, true); err != nil {
		return p, err
	}
	if p.MinDurationYears, err = r.integer(ColMinDurationYears); err != nil {
		return p, err
	}

	p.DepositCap = domain.Uncapped()
	if v, ok := r.raw(ColDepositCap); ok {
		if p.DepositCap, err = domain.ParseDepositCap(v); err != nil {
			return p, &tabular.FormatError{Path: r.path, Column: ColDepositCap, Err: err}
		}
	}
	return p, nil
}

// LoadPlan loads people and products from a YAML plan file
func (ip *InputParser) LoadPlan(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// SavePlan writes a plan as YAML
func (ip *InputParser) SavePlan(plan *domain.Plan, filename string) error {
	data, err := yaml.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// ValidatePlan validates a loaded plan
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if len(plan.People) == 0 {
		return fmt.Errorf("people: %w", ErrEmptyCollection)
	}
	if len(plan.Products) == 0 {
		return fmt.Errorf("products: %w", ErrEmptyCollection)
	}

	for i := range plan.People {
		if err := ip.validatePerson(&plan.People[i]); err != nil {
			return fmt.Errorf("person %d (%s) validation failed: %w", i+1, plan.People[i].Name, err)
		}
	}
	for i := range plan.Products {
		if err := ip.validateProduct(&plan.Products[i]); err != nil {
			return fmt.Errorf("product %d (%s) validation failed: %w", i+1, plan.Products[i].Name, err)
		}
	}

	return nil
}

// validatePerson checks field ranges. Negative capacity is allowed.
func (ip *InputParser) validatePerson(p *domain.Person) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Age < 0 {
		return fmt.Errorf("age cannot be negative")
	}
	if p.HorizonYears < 0 {
		return fmt.Errorf("horizon years cannot be negative")
	}
	if p.MonthlyContribution.IsNegative() {
		return fmt.Errorf("monthly contribution cannot be negative")
	}
	return nil
}

// validateProduct validates a single product's terms
func (ip *InputParser) validateProduct(p *domain.SavingsProduct) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.TaxRate.IsNegative() || p.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("tax rate must be between 0 and 100")
	}
	if p.MinDurationYears < 0 {
		return fmt.Errorf("minimum duration cannot be negative")
	}
	if amount, capped := p.DepositCap.Amount(); capped && amount.IsNegative() {
		return fmt.Errorf("deposit cap cannot be negative")
	}
	return nil
}

// RequireNonEmpty returns ErrEmptyCollection when items is empty.
func RequireNonEmpty[T any](what string, items []T) error {
	if len(items) == 0 {
		return fmt.Errorf("%s: %w", what, ErrEmptyCollection)
	}
	return nil
}

// CreateExamplePlan returns a small plan covering capped, uncapped and long-term products
func (ip *InputParser) CreateExamplePlan() *domain.Plan {
	return &domain.Plan{
		People: []domain.Person{
			{
				Name:                "Alice",
				Age:                 30,
				AnnualIncome:        decimal.NewFromInt(42000),
				Rent:                decimal.NewFromInt(900),
				MonthlyExpenses:     decimal.NewFromInt(1200),
				SavingsGoal:         decimal.NewFromInt(20000),
				HorizonYears:        5,
				MonthlyContribution: decimal.NewFromInt(300),
			},
			{
				Name:            "Bob",
				Age:             45,
				AnnualIncome:    decimal.NewFromInt(36000),
				Rent:            decimal.NewFromInt(700),
				MonthlyExpenses: decimal.NewFromInt(1000),
				SavingsGoal:     decimal.NewFromInt(50000),
				HorizonYears:    10,
			},
		},
		Products: []domain.SavingsProduct{
			{
				Name:             "Livret A",
				Rate:             decimal.NewFromFloat(2.4),
				TaxRate:          decimal.Zero,
				MinDurationYears: 0,
				DepositCap:       domain.Capped(decimal.NewFromInt(22950)),
			},
			{
				Name:             "PEL",
				Rate:             decimal.NewFromInt(2),
				TaxRate:          decimal.NewFromFloat(17.2),
				MinDurationYears: 4,
				DepositCap:       domain.Capped(decimal.NewFromInt(61200)),
			},
			{
				Name:             "Life insurance",
				Rate:             decimal.NewFromFloat(2.5),
				TaxRate:          decimal.NewFromFloat(17.2),
				MinDurationYears: 8,
				DepositCap:       domain.Uncapped(),
			},
		},
	}
}
