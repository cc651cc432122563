package entities

import (
	"fmt"
	"strings"
)

// FileFormat is a supported import/export encoding.
type FileFormat string

const (
	FormatJSON FileFormat = "json"
	FormatCSV  FileFormat = "csv"
	FormatYAML FileFormat = "yaml"
)

// ParseFileFormat accepts json, csv and yaml (or yml), case-insensitively.
// An empty string means json.
func ParseFileFormat(s string) (FileFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported format %q", s)
}

func (f FileFormat) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatYAML:
		return "application/yaml"
	default:
		return "application/json"
	}
}

// ImportFailure describes one record that could not be imported.
type ImportFailure struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// ImportReport is the detailed outcome of a batch import.
type ImportReport struct {
	Imported int             `json:"imported"`
	IDs      []string        `json:"ids"`
	Failures []ImportFailure `json:"failures"`
}

// ExportFile is a serialised snapshot of the address collection. Location
// is set when the file was uploaded to object storage.
type ExportFile struct {
	Format      FileFormat `json:"format"`
	Filename    string     `json:"filename"`
	ContentType string     `json:"contentType"`
	Count       int        `json:"count"`
	Location    string     `json:"location,omitempty"`
	Content     []byte     `json:"-"`
}
