package output_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rpgo/savings-planner/internal/config"
	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/rpgo/savings-planner/internal/output"
	"github.com/rpgo/savings-planner/internal/tabular"
)

func TestGenerateReport(t *testing.T) {
	records := []domain.ResultRecord{
		domain.NewResultRecord("Alice", "25", "Livret A", decimal.NewFromInt(350), decimal.NewFromInt(22561), true, domain.NewIndicators("rate", "2.4")),
	}
	dir := t.TempDir()
	for _, format := range []string{"json", "csv", "html", "excel", "console"} {
		path, err := output.GenerateReport(records, format, dir)
		if err != nil {
			t.Fatalf("GenerateReport %s error: %v", format, err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("%s: report not written: %v", format, err)
		}
	}

	_, err := output.GenerateReport(records, "pdf", dir)
	if !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "Try one of: console, csv, html") {
		t.Fatalf("error should list formats: %v", err)
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := output.Render(&buf, nil, "text"); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "SAVINGS SUGGESTIONS") {
		t.Fatalf("unexpected output %q", buf.String())
	}
	if err := output.Render(&buf, nil, "yaml"); !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExportResults_UnionColumns(t *testing.T) {
	records := []domain.ResultRecord{
		domain.NewResultRecord("Alice", "25", "A", decimal.NewFromInt(100), decimal.NewFromInt(1000), false, domain.NewIndicators("rate", "2")),
		domain.NewResultRecord("Alice", "50", "B", decimal.NewFromInt(200), decimal.NewFromInt(2000), true, domain.NewIndicators("fees", "1", "rate", "3")),
	}
	path := filepath.Join(t.TempDir(), "results.csv")
	if err := output.ExportResults(records, path); err != nil {
		t.Fatalf("ExportResults error: %v", err)
	}

	table, err := tabular.Read(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := append(append([]string(nil), domain.ResultColumns...), "rate", "fees")
	if strings.Join(table.Header, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected header %v", table.Header)
	}
	if got := table.Rows[0]; got[6] != "2" || got[7] != "" {
		t.Fatalf("first row indicators %v", got)
	}
	if got := table.Rows[1]; got[6] != "3" || got[7] != "1" || got[5] != "true" {
		t.Fatalf("second row %v", got)
	}
}

func TestExportResults_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.pdf")
	err := output.ExportResults(nil, path)
	if !errors.Is(err, tabular.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("no file expected, stat err %v", statErr)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	parser := config.NewInputParser()
	plan := parser.CreateExamplePlan()

	for _, ext := range []string{"csv", "txt", "xlsx"} {
		t.Run(ext, func(t *testing.T) {
			dir := t.TempDir()
			peoplePath := filepath.Join(dir, "people."+ext)
			productsPath := filepath.Join(dir, "products."+ext)
			if err := output.SavePeople(plan.People, peoplePath); err != nil {
				t.Fatalf("SavePeople: %v", err)
			}
			if err := output.SaveProducts(plan.Products, productsPath); err != nil {
				t.Fatalf("SaveProducts: %v", err)
			}

			people, err := parser.LoadPeople(peoplePath)
			if err != nil {
				t.Fatalf("LoadPeople: %v", err)
			}
			if len(people) != len(plan.People) {
				t.Fatalf("expected %d people, got %d", len(plan.People), len(people))
			}
			for i, p := range people {
				want := plan.People[i]
				if p.Name != want.Name || p.Age != want.Age || p.HorizonYears != want.HorizonYears ||
					!p.AnnualIncome.Equal(want.AnnualIncome) || !p.SavingsGoal.Equal(want.SavingsGoal) ||
					!p.MonthlyContribution.Equal(want.MonthlyContribution) {
					t.Fatalf("person %d mismatch: %v vs %v", i, p, want)
				}
			}

			products, err := parser.LoadProducts(productsPath)
			if err != nil {
				t.Fatalf("LoadProducts: %v", err)
			}
			for i, p := range products {
				want := plan.Products[i]
				if p.Name != want.Name || !p.Rate.Equal(want.Rate) || !p.TaxRate.Equal(want.TaxRate) ||
					p.MinDurationYears != want.MinDurationYears || !p.DepositCap.Equal(want.DepositCap) {
					t.Fatalf("product %d mismatch: %v vs %v", i, p, want)
				}
			}
		})
	}
}
