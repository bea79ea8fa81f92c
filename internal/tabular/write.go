package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// Write stores t at path in the format given by its extension. The file is
// written to a temporary sibling and renamed into place, so a failed write
// leaves any existing file untouched.
func Write(path string, t *Table) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}

	return writeAtomic(path, func(w io.Writer) error {
		return Encode(w, t, format)
	})
}

// Encode writes t to w in the given format.
func Encode(w io.Writer, t *Table, format Format) error {
	switch format {
	case FormatXLSX:
		return writeSpreadsheet(w, t)
	case FormatCSV, FormatTSV:
		return writeDelimited(w, t, format.delimiter())
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func writeAtomic(path string, encode func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if err := encode(tmp); err != nil {
		cleanup()
		return &FormatError{Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func writeDelimited(w io.Writer, t *Table, comma rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = comma
	if err := writer.Write(t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeSpreadsheet(w io.Writer, t *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	all := make([][]string, 0, len(t.Rows)+1)
	all = append(all, t.Header)
	all = append(all, t.Rows...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	_, err := f.WriteTo(w)
	return err
}
