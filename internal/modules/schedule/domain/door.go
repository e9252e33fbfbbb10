package domain

import (
	"fmt"
	"strings"
)

// Door is one row of a door schedule as extracted from the drawings.
// Every field is free text; the extractor may leave any of them empty.
type Door struct {
	Mark       string
	Location   string
	FireRating string
	Material   string
	WidthMM    string
	HeightMM   string
}

type ExportFormat string

const (
	FormatTable ExportFormat = "table"
	FormatCSV   ExportFormat = "csv"
	FormatJSON  ExportFormat = "json"
	FormatYAML  ExportFormat = "yaml"
)

func ParseExportFormat(raw string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(raw))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (table|csv|json|yaml)", raw)
	}
}
