package tabular

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for file extensions with no reader or writer.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// FormatError reports a file that cannot be read or written in its format,
// or a column whose values cannot be converted.
type FormatError struct {
	Path   string
	Column string // Empty when the whole file is at fault
	Err    error
}

func (e *FormatError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s: column %q: %v", e.Path, e.Column, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// RowError reports a data row that cannot be mapped to a record.
// Row is 1-based and does not count the header.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
