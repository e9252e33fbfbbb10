package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"projectbrain/internal/modules/schedule/domain"
)

var exportHeaders = []string{"mark", "location", "fire_rating", "material", "width_mm", "height_mm"}

type exportRecord struct {
	Mark       string `json:"mark" yaml:"mark"`
	Location   string `json:"location" yaml:"location"`
	FireRating string `json:"fire_rating" yaml:"fire_rating"`
	Material   string `json:"material" yaml:"material"`
	WidthMM    string `json:"width_mm,omitempty" yaml:"width_mm,omitempty"`
	HeightMM   string `json:"height_mm,omitempty" yaml:"height_mm,omitempty"`
}

// Export renders doors in the requested format, preserving their order.
func Export(doors []domain.Door, format domain.ExportFormat) ([]byte, error) {
	switch format {
	case domain.FormatTable:
		return exportTable(doors), nil
	case domain.FormatCSV:
		return exportCSV(doors)
	case domain.FormatJSON:
		records := toRecords(doors)
		b, err := json.MarshalIndent(map[string][]exportRecord{"doors": records}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json schedule: %w", err)
		}
		return append(b, '\n'), nil
	case domain.FormatYAML:
		b, err := yaml.Marshal(map[string][]exportRecord{"doors": toRecords(doors)})
		if err != nil {
			return nil, fmt.Errorf("encode yaml schedule: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

func toRecords(doors []domain.Door) []exportRecord {
	records := make([]exportRecord, len(doors))
	for i, d := range doors {
		records[i] = exportRecord(d)
	}
	return records
}

func exportCSV(doors []domain.Door) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeaders); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, d := range doors {
		if err := w.Write([]string{d.Mark, d.Location, d.FireRating, d.Material, d.WidthMM, d.HeightMM}); err != nil {
			return nil, fmt.Errorf("write csv row %s: %w", d.Mark, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func exportTable(doors []domain.Door) []byte {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("MARK", "LOC", "RATING", "MATERIAL", "WIDTH", "HEIGHT")
	for _, d := range doors {
		t.Row(d.Mark, d.Location, d.FireRating, d.Material, d.WidthMM, d.HeightMM)
	}
	return []byte(t.String() + "\n")
}
