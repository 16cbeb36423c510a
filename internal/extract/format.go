package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a supported source format.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
	FormatXML  Format = "xml"
)

// ErrUnsupportedFormat is returned when a file extension or declared format
// does not map to a supported Format.
var ErrUnsupportedFormat = errors.New("unsupported format")

// DetectFormat maps a file name (by extension) or a bare format name like
// "csv" to a Format.
func DetectFormat(name string) (Format, error) {
	s := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if s == "" {
		s = strings.ToLower(strings.TrimSpace(name))
	}
	switch Format(s) {
	case FormatCSV, FormatJSON, FormatXLSX, FormatXML:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// Binary reports whether the format is a binary container rather than text.
// Binary formats skip transport-level text decoding.
func (f Format) Binary() bool {
	return f == FormatXLSX
}
