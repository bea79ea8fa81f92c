package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/savings-planner/internal/config"
	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/rpgo/savings-planner/internal/output"
)

var flagInteractiveProducts string

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Enter one profile in a form and get suggestions for it",
	RunE:  runInteractive,
}

func init() {
	interactiveCmd.Flags().StringVar(&flagInteractiveProducts, "products", "", "Products file (default: the example catalog)")
	rootCmd.AddCommand(interactiveCmd)
}

// profileForm holds the raw form answers.
type profileForm struct {
	Name, Age, Income, Rent, Expenses, Goal, Horizon, Contribution string
}

func (f profileForm) person() (domain.Person, error) {
	p := domain.Person{Name: strings.TrimSpace(f.Name)}
	var err error
	if p.Age, err = strconv.Atoi(strings.TrimSpace(f.Age)); err != nil {
		return p, fmt.Errorf("age: %w", err)
	}
	if p.HorizonYears, err = strconv.Atoi(strings.TrimSpace(f.Horizon)); err != nil {
		return p, fmt.Errorf("horizon: %w", err)
	}
	amounts := []struct {
		label string
		raw   string
		dst   *decimal.Decimal
	}{
		{"annual income", f.Income, &p.AnnualIncome},
		{"rent", f.Rent, &p.Rent},
		{"monthly expenses", f.Expenses, &p.MonthlyExpenses},
		{"savings goal", f.Goal, &p.SavingsGoal},
		{"monthly contribution", f.Contribution, &p.MonthlyContribution},
	}
	for _, a := range amounts {
		raw := strings.TrimSpace(a.raw)
		if raw == "" {
			continue
		}
		if *a.dst, err = decimal.NewFromString(raw); err != nil {
			return p, fmt.Errorf("%s: %w", a.label, err)
		}
	}
	return p, nil
}

func validateInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validateAmount(optional bool) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" && optional {
			return nil
		}
		if _, err := decimal.NewFromString(s); err != nil {
			return fmt.Errorf("enter an amount like 1200 or 1200.50")
		}
		return nil
	}
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	parser := config.NewInputParser()
	products := parser.CreateExamplePlan().Products
	if flagInteractiveProducts != "" {
		var err error
		if products, err = parser.LoadProducts(flagInteractiveProducts); err != nil {
			return err
		}
		if err := config.RequireNonEmpty("products", products); err != nil {
			return err
		}
	}

	var answers profileForm
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&answers.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().Title("Age").Value(&answers.Age).Validate(validateInt),
		),
		huh.NewGroup(
			huh.NewInput().Title("Annual income").Value(&answers.Income).Validate(validateAmount(false)),
			huh.NewInput().Title("Monthly rent").Value(&answers.Rent).Validate(validateAmount(false)),
			huh.NewInput().Title("Other monthly expenses").Value(&answers.Expenses).Validate(validateAmount(false)),
		),
		huh.NewGroup(
			huh.NewInput().Title("Savings goal").Value(&answers.Goal).Validate(validateAmount(false)),
			huh.NewInput().Title("Horizon in years").Value(&answers.Horizon).Validate(validateInt),
			huh.NewInput().Title("Planned monthly contribution").
				Description("Leave empty to only see shares of your capacity").
				Value(&answers.Contribution).Validate(validateAmount(true)),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	person, err := answers.person()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "  "+person.String())

	records, err := suggest(cmd.Context(), cmd, []domain.Person{person}, products)
	if err != nil {
		return err
	}
	format := settings.General.DefaultFormat
	if format == "" {
		format = "table"
	}
	return output.Render(cmd.OutOrStdout(), records, format)
}
