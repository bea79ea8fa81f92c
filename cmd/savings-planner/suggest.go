package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpgo/savings-planner/internal/calculation"
	"github.com/rpgo/savings-planner/internal/config"
	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/rpgo/savings-planner/internal/output"
	"github.com/rpgo/savings-planner/internal/repository"
	"github.com/rpgo/savings-planner/internal/store"
)

var (
	flagPeople    string
	flagProducts  string
	flagPlan      string
	flagFormat    string
	flagOutput    string
	flagReportDir string
	flagNoCache   bool
	flagNoHistory bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest savings strategies for every person against every product",
	Example: `  savings-planner suggest --people people.csv --products products.txt
  savings-planner suggest --plan plan.yaml --format table --output results.xlsx`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVar(&flagPeople, "people", "", "People file (.csv, .txt, .tsv, .xlsx)")
	suggestCmd.Flags().StringVar(&flagProducts, "products", "", "Products file (.csv, .txt, .tsv, .xlsx)")
	suggestCmd.Flags().StringVar(&flagPlan, "plan", "", "YAML plan with people and products")
	suggestCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Output format: console, table, csv, tsv, xlsx, json, html")
	suggestCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Export results to a file; format from extension")
	suggestCmd.Flags().StringVar(&flagReportDir, "report-dir", "", "Also write a timestamped report in this directory")
	suggestCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Skip the suggestion cache")
	suggestCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record this run in the history database")
	suggestCmd.MarkFlagsMutuallyExclusive("plan", "people")
	suggestCmd.MarkFlagsMutuallyExclusive("plan", "products")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	people, products, source, err := loadInputs()
	if err != nil {
		return err
	}

	format := flagFormat
	if format == "" {
		format = settings.General.DefaultFormat
	}
	if _, err := output.LookupFormatter(format); err != nil {
		return err
	}

	records, err := suggest(cmd.Context(), cmd, people, products)
	if err != nil {
		return err
	}

	if err := output.Render(cmd.OutOrStdout(), records, format); err != nil {
		return err
	}

	if flagOutput != "" {
		if err := output.ExportResults(records, flagOutput); err != nil {
			appLog.Errorf("export to %s failed: %v", flagOutput, err)
			return err
		}
		appLog.Infof("exported %d suggestions to %s", len(records), flagOutput)
	}
	if flagReportDir != "" {
		path, err := output.GenerateReport(records, format, flagReportDir)
		if err != nil {
			return err
		}
		appLog.Infof("report written to %s", path)
	}

	if settings.History.Enabled && !flagNoHistory {
		recordHistory(cmd, source, len(people), len(products), records)
	}
	return nil
}

// loadInputs reads people and products from a plan or a pair of tables and
// rejects empty collections.
func loadInputs() ([]domain.Person, []domain.SavingsProduct, string, error) {
	parser := config.NewInputParser()

	if flagPlan != "" {
		plan, err := parser.LoadPlan(flagPlan)
		if err != nil {
			appLog.Errorf("import of %s failed: %v", flagPlan, err)
			return nil, nil, "", err
		}
		appLog.Infof("imported %d people and %d products from %s", len(plan.People), len(plan.Products), flagPlan)
		return plan.People, plan.Products, flagPlan, nil
	}

	if flagPeople == "" || flagProducts == "" {
		return nil, nil, "", fmt.Errorf("either --plan or both --people and --products are required")
	}
	people, err := parser.LoadPeople(flagPeople)
	if err != nil {
		appLog.Errorf("import of %s failed: %v", flagPeople, err)
		return nil, nil, "", err
	}
	appLog.Infof("imported %d people from %s", len(people), flagPeople)

	products, err := parser.LoadProducts(flagProducts)
	if err != nil {
		appLog.Errorf("import of %s failed: %v", flagProducts, err)
		return nil, nil, "", err
	}
	appLog.Infof("imported %d products from %s", len(products), flagProducts)

	if err := config.RequireNonEmpty("people", people); err != nil {
		return nil, nil, "", err
	}
	if err := config.RequireNonEmpty("products", products); err != nil {
		return nil, nil, "", err
	}
	return people, products, flagPeople + " + " + flagProducts, nil
}

// suggest runs the engine over every person, through the cache unless disabled.
func suggest(ctx context.Context, cmd *cobra.Command, people []domain.Person, products []domain.SavingsProduct) ([]domain.ResultRecord, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	engine := calculation.NewSuggestionEngine()
	engine.SetLogger(appLog)

	var suggester calculation.Suggester = engine
	if !flagNoCache {
		cache, closeCache := openCache(ctx)
		defer closeCache()
		cached := calculation.NewCachedEngine(engine, cache)
		cached.SetLogger(appLog)
		suggester = cached
	}

	batch, err := calculation.SuggestAll(ctx, suggester, people, products, settings.General.Workers, progress(cmd))
	if err != nil {
		return nil, err
	}
	return calculation.Flatten(batch), nil
}

// openCache connects to Redis when configured, falling back to an in-process cache.
func openCache(ctx context.Context) (repository.CacheRepository, func()) {
	if settings.Cache.RedisAddr == "" {
		return repository.NewMemoryCache(), func() {}
	}

	redisCache := repository.NewRedisCache(settings.Cache.RedisAddr, settings.CacheTTL())
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		appLog.Warnf("redis at %s unavailable, using in-memory cache: %v", settings.Cache.RedisAddr, err)
		_ = redisCache.Close()
		return repository.NewMemoryCache(), func() {}
	}
	appLog.Debugf("using redis cache at %s", settings.Cache.RedisAddr)
	return redisCache, func() { _ = redisCache.Close() }
}

func recordHistory(cmd *cobra.Command, source string, peopleCount, productsCount int, records []domain.ResultRecord) {
	h, err := store.Open(settings.History.DBPath)
	if err != nil {
		appLog.Warnf("history unavailable: %v", err)
		return
	}
	defer h.Close()

	run, err := h.SaveRun(source, peopleCount, productsCount, records)
	if err != nil {
		appLog.Warnf("saving run history: %v", err)
		return
	}
	if !flagQuiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "  Saved run %s\n", run.ID[:8])
	}
}
