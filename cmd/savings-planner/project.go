package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/savings-planner/internal/calculation"
	"github.com/rpgo/savings-planner/internal/output"
	"github.com/rpgo/savings-planner/pkg/dateutil"
	money "github.com/rpgo/savings-planner/pkg/decimal"
)

var (
	flagDeposit      string
	flagRate         string
	flagYears        int
	flagTax          string
	flagScheduleFile string
)

var projectCmd = &cobra.Command{
	Use:     "project",
	Short:   "Project an annual deposit with yearly compounding",
	Example: "  savings-planner project --deposit 1200 --rate 2.4 --years 20 --tax 17.2",
	RunE:    runProject,
}

func init() {
	projectCmd.Flags().StringVar(&flagDeposit, "deposit", "", "Amount deposited at the start of each year")
	projectCmd.Flags().StringVar(&flagRate, "rate", "", "Annual interest rate in percent (2.4 = 2.4%)")
	projectCmd.Flags().IntVar(&flagYears, "years", 0, "Number of years")
	projectCmd.Flags().StringVar(&flagTax, "tax", "0", "Flat tax on gains in percent")
	projectCmd.Flags().StringVarP(&flagScheduleFile, "output", "o", "", "Export the year-by-year schedule; format from extension")
	_ = projectCmd.MarkFlagRequired("deposit")
	_ = projectCmd.MarkFlagRequired("rate")
	_ = projectCmd.MarkFlagRequired("years")
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, _ []string) error {
	deposit, err := money.NewMoneyFromString(flagDeposit)
	if err != nil {
		return fmt.Errorf("invalid --deposit %q: %w", flagDeposit, err)
	}
	rate, err := decimal.NewFromString(flagRate)
	if err != nil {
		return fmt.Errorf("invalid --rate %q: %w", flagRate, err)
	}
	tax, err := decimal.NewFromString(flagTax)
	if err != nil {
		return fmt.Errorf("invalid --tax %q: %w", flagTax, err)
	}

	schedule, err := calculation.GrowthSchedule(deposit.Decimal, rate, flagYears)
	if err != nil {
		return err
	}
	gross, err := calculation.FutureValue(deposit.Decimal, rate, flagYears)
	if err != nil {
		return err
	}
	deposited := deposit.Mul(decimal.NewFromInt(int64(flagYears)))
	gain := money.NewMoneyFromDecimal(gross).Sub(deposited)
	net := deposited.Add(gain.ApplyTaxRate(tax))

	out := cmd.OutOrStdout()
	fmt.Fprint(out, output.FormatSchedule(fmt.Sprintf("%s a year at %s for %d years", output.FormatCurrency(deposit.Decimal), output.FormatPercentage(rate), flagYears), schedule))
	fmt.Fprintf(out, "  Per month:       %s\n", output.FormatCurrency(deposit.Monthly().Decimal))
	fmt.Fprintf(out, "  Deposited:       %s\n", output.FormatCurrency(deposited.Decimal))
	fmt.Fprintf(out, "  Gross value:     %s\n", output.FormatCurrency(gross))
	fmt.Fprintf(out, "  Net after tax:   %s\n", output.FormatCurrency(net.Decimal))
	fmt.Fprintf(out, "  Matures:         %s\n", dateutil.MaturityDate(time.Now(), flagYears).Format("January 2006"))

	if flagScheduleFile != "" {
		if err := output.ExportSchedule(schedule, flagScheduleFile); err != nil {
			appLog.Errorf("export to %s failed: %v", flagScheduleFile, err)
			return err
		}
		appLog.Infof("schedule exported to %s", flagScheduleFile)
	}
	return nil
}
