package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/rpgo/savings-planner/internal/tabular"
)

// ErrUnsupportedFormat is returned for unknown formatter names and file extensions.
var ErrUnsupportedFormat = tabular.ErrUnsupportedFormat

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(records []domain.ResultRecord) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func([]domain.ResultRecord) ([]byte, error)
}

func (ff FormatterFunc) Format(r []domain.ResultRecord) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                   { return ff.ID }

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
func WriteFormatted(f Formatter, records []domain.ResultRecord, dir, ext string) (string, error) {
	data, err := f.Format(records)
	if err != nil {
		return "", err
	}
	filename := filepath.Join(dir, fmt.Sprintf("savings_report_%s.%s", time.Now().Format("20060102_150405"), ext))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	TableFormatter{},
	CSVFormatter{},
	TSVFormatter{},
	XLSXFormatter{},
	JSONFormatter{},
	HTMLFormatter{},
}

// formatterExtensions maps formatter names to report file extensions.
var formatterExtensions = map[string]string{
	"console": "txt",
	"table":   "txt",
	"csv":     "csv",
	"tsv":     "tsv",
	"xlsx":    "xlsx",
	"json":    "json",
	"html":    "html",
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// ExtensionFor returns the report file extension for a formatter.
func ExtensionFor(f Formatter) string {
	if ext, ok := formatterExtensions[f.Name()]; ok {
		return ext
	}
	return "txt"
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"plain":       "console",
	"pretty":      "table",
	"tab":         "tsv",
	"excel":       "xlsx",
	"spreadsheet": "xlsx",
	"json-pretty": "json",
	"html-report": "html",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
