package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/savings-planner/internal/config"
	"github.com/rpgo/savings-planner/internal/output"
)

var (
	flagCleanPeople      string
	flagCleanProducts    string
	flagCleanPeopleOut   string
	flagCleanProductsOut string
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Validate people and product files and rewrite them with canonical columns",
	Long: `Imports people and/or products, coercing types and resolving column aliases,
then writes them back out. The output format follows each output file's extension,
so clean also converts between CSV, tab-delimited and spreadsheet files.`,
	Example: "  savings-planner clean --people clients.xlsx --people-out clients.csv",
	RunE:    runClean,
}

func init() {
	cleanCmd.Flags().StringVar(&flagCleanPeople, "people", "", "People file to import")
	cleanCmd.Flags().StringVar(&flagCleanProducts, "products", "", "Products file to import")
	cleanCmd.Flags().StringVar(&flagCleanPeopleOut, "people-out", "", "Where to write cleaned people")
	cleanCmd.Flags().StringVar(&flagCleanProductsOut, "products-out", "", "Where to write cleaned products")
	cleanCmd.MarkFlagsRequiredTogether("people", "people-out")
	cleanCmd.MarkFlagsRequiredTogether("products", "products-out")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, _ []string) error {
	if flagCleanPeople == "" && flagCleanProducts == "" {
		return fmt.Errorf("nothing to clean: pass --people and/or --products")
	}
	parser := config.NewInputParser()
	out := cmd.OutOrStdout()

	if flagCleanPeople != "" {
		people, err := parser.LoadPeople(flagCleanPeople)
		if err != nil {
			appLog.Errorf("import of %s failed: %v", flagCleanPeople, err)
			return err
		}
		if err := output.SavePeople(people, flagCleanPeopleOut); err != nil {
			appLog.Errorf("export to %s failed: %v", flagCleanPeopleOut, err)
			return err
		}
		appLog.Infof("cleaned %d people into %s", len(people), flagCleanPeopleOut)
		fmt.Fprintf(out, "  %d people -> %s\n", len(people), flagCleanPeopleOut)
	}

	if flagCleanProducts != "" {
		products, err := parser.LoadProducts(flagCleanProducts)
		if err != nil {
			appLog.Errorf("import of %s failed: %v", flagCleanProducts, err)
			return err
		}
		if err := output.SaveProducts(products, flagCleanProductsOut); err != nil {
			appLog.Errorf("export to %s failed: %v", flagCleanProductsOut, err)
			return err
		}
		appLog.Infof("cleaned %d products into %s", len(products), flagCleanProductsOut)
		fmt.Fprintf(out, "  %d products -> %s\n", len(products), flagCleanProductsOut)
	}
	return nil
}
