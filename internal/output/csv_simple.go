package output

import (
	"bytes"

	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/rpgo/savings-planner/internal/tabular"
)

// CSVFormatter writes one comma-separated row per record.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(records []domain.ResultRecord) ([]byte, error) {
	return encodeTable(records, tabular.FormatCSV)
}

// TSVFormatter writes one tab-separated row per record.
type TSVFormatter struct{}

func (c TSVFormatter) Name() string { return "tsv" }

func (c TSVFormatter) Format(records []domain.ResultRecord) ([]byte, error) {
	return encodeTable(records, tabular.FormatTSV)
}

// XLSXFormatter writes records to a single-sheet workbook.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string { return "xlsx" }

func (x XLSXFormatter) Format(records []domain.ResultRecord) ([]byte, error) {
	return encodeTable(records, tabular.FormatXLSX)
}

func encodeTable(records []domain.ResultRecord, format tabular.Format) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := tabular.Encode(buf, ResultTable(records), format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
