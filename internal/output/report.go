package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/savings-planner/internal/domain"
)

// Render writes records to w using the named formatter.
func Render(w io.Writer, records []domain.ResultRecord, format string) error {
	f, err := LookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(records)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport writes a timestamped report file in dir using the named
// formatter and returns its path.
func GenerateReport(records []domain.ResultRecord, format, dir string) (string, error) {
	f, err := LookupFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, records, dir, ExtensionFor(f))
}

// LookupFormatter resolves a formatter name or alias. Unknown names wrap
// ErrUnsupportedFormat and list the choices.
func LookupFormatter(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: report format %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
