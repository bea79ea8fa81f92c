package output

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/rpgo/savings-planner/internal/calculation"
	"github.com/rpgo/savings-planner/internal/cli"
	"github.com/rpgo/savings-planner/internal/tabular"
)

// ScheduleColumns are the columns of a growth schedule table.
var ScheduleColumns = []string{"year", "deposited", "interest", "balance"}

// ScheduleTable converts a growth schedule to a table with amounts rounded to cents.
func ScheduleTable(schedule []calculation.YearBalance) *tabular.Table {
	t := tabular.NewTable(ScheduleColumns...)
	for _, yb := range schedule {
		t.Append(
			strconv.Itoa(yb.Year),
			yb.Deposited.StringFixed(2),
			yb.Interest.StringFixed(2),
			yb.Balance.StringFixed(2),
		)
	}
	return t
}

// FormatSchedule renders a growth schedule for the terminal.
func FormatSchedule(title string, schedule []calculation.YearBalance) string {
	rows := make([][]string, 0, len(schedule))
	for _, yb := range schedule {
		rows = append(rows, []string{
			strconv.Itoa(yb.Year),
			FormatCurrency(yb.Deposited),
			FormatCurrency(yb.Interest),
			FormatCurrency(yb.Balance),
		})
	}
	return cli.RenderTable(cli.Table{
		Title:   title,
		Headers: []string{"Year", "Deposited", "Interest", "Balance"},
		Rows:    rows,
	})
}

// ExportSchedule writes a growth schedule to path, choosing the format by extension.
func ExportSchedule(schedule []calculation.YearBalance, path string) error {
	if err := tabular.Write(path, ScheduleTable(schedule)); err != nil {
		return fmt.Errorf("failed to export schedule: %w", err)
	}
	return nil
}

// ScheduleCSV returns the schedule as comma-separated text.
func ScheduleCSV(schedule []calculation.YearBalance) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := tabular.Encode(buf, ScheduleTable(schedule), tabular.FormatCSV); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
