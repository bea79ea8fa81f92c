package output

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rpgo/savings-planner/internal/calculation"
	"github.com/rpgo/savings-planner/internal/tabular"
)

func testSchedule(t *testing.T) []calculation.YearBalance {
	t.Helper()
	schedule, err := calculation.GrowthSchedule(decimal.NewFromInt(100), decimal.NewFromInt(10), 3)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	return schedule
}

func TestScheduleCSV(t *testing.T) {
	out, err := ScheduleCSV(testSchedule(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "year,deposited,interest,balance\n" +
		"1,100.00,10.00,110.00\n" +
		"2,200.00,21.00,231.00\n" +
		"3,300.00,33.10,364.10\n"
	if string(out) != want {
		t.Fatalf("unexpected schedule csv:\n%s", out)
	}
}

func TestFormatSchedule(t *testing.T) {
	out := FormatSchedule("Livret A", testSchedule(t))
	for _, want := range []string{"Livret A", "Balance", "364.10 €"} {
		if !strings.Contains(out, want) {
			t.Fatalf("schedule output missing %q:\n%s", want, out)
		}
	}
}

func TestExportSchedule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	if err := ExportSchedule(testSchedule(t), path); err != nil {
		t.Fatalf("export: %v", err)
	}
	table, err := tabular.Read(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if table.Len() != 3 || table.Cell(2, 3) != "364.10" {
		t.Fatalf("unexpected table %+v", table)
	}
}
