package tabular

import (
	"path/filepath"
	"strings"
)

// Format identifies a tabular file encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatXLSX Format = "xlsx"
)

var extensionFormats = map[string]Format{
	".csv":  FormatCSV,
	".txt":  FormatTSV,
	".tsv":  FormatTSV,
	".xlsx": FormatXLSX,
	".xls":  FormatXLSX,
}

// DetectFormat picks the format from the file extension, case-insensitively.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensionFormats[ext]; ok {
		return f, nil
	}
	return "", &FormatError{Path: path, Err: ErrUnsupportedFormat}
}

func (f Format) delimiter() rune {
	if f == FormatTSV {
		return '\t'
	}
	return ','
}
