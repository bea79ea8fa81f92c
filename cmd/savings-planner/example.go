package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rpgo/savings-planner/internal/config"
	"github.com/rpgo/savings-planner/internal/output"
)

var (
	flagExampleDir string
	flagExampleExt string
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write an example plan plus matching people and product tables",
	RunE:  runExample,
}

func init() {
	exampleCmd.Flags().StringVarP(&flagExampleDir, "dir", "d", ".", "Directory to write into")
	exampleCmd.Flags().StringVar(&flagExampleExt, "ext", "csv", "Table format for people and products: csv, txt, tsv, xlsx")
	rootCmd.AddCommand(exampleCmd)
}

func runExample(cmd *cobra.Command, _ []string) error {
	if err := os.MkdirAll(flagExampleDir, 0o755); err != nil {
		return err
	}
	parser := config.NewInputParser()
	plan := parser.CreateExamplePlan()

	planPath := filepath.Join(flagExampleDir, "plan.yaml")
	peoplePath := filepath.Join(flagExampleDir, "people."+flagExampleExt)
	productsPath := filepath.Join(flagExampleDir, "products."+flagExampleExt)

	if err := parser.SavePlan(plan, planPath); err != nil {
		return err
	}
	if err := output.SavePeople(plan.People, peoplePath); err != nil {
		return err
	}
	if err := output.SaveProducts(plan.Products, productsPath); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range []string{planPath, peoplePath, productsPath} {
		fmt.Fprintf(out, "  Wrote %s\n", p)
	}
	fmt.Fprintf(out, "\n  Try: savings-planner suggest --plan %s\n", planPath)
	return nil
}
