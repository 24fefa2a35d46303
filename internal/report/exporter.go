// Package report exports computed campaign statistics to disk as a
// tabular (CSV) or structured (JSON) document.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/example/phishtrack/internal/apperr"
	"github.com/example/phishtrack/internal/ports/primary"
)

// Supported export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Export writes stats to dir in the given format and returns the path
// written. The filename is deterministic: a fixed prefix plus the first
// eight characters of the campaign identifier. An unsupported format
// fails before any file is opened.
func Export(stats *primary.StatsReport, format, dir string) (string, error) {
	switch format {
	case FormatCSV, FormatJSON:
	default:
		return "", apperr.NewValidation("unsupported export format %q (supported: csv, json)", format)
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("report_%s.%s", shortID(stats.CampaignID), format))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	switch format {
	case FormatCSV:
		err = writeCSV(f, stats)
	case FormatJSON:
		err = writeJSON(f, stats)
	}
	if err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return path, nil
}

// writeCSV writes a flat metric/value summary followed by the
// per-department table.
func writeCSV(f *os.File, stats *primary.StatsReport) error {
	w := csv.NewWriter(f)

	rows := [][]string{
		{"Campaign statistics"},
		{"Metric", "Value"},
		{"Total employees", strconv.Itoa(stats.TotalEmployees)},
		{"Emails sent", strconv.Itoa(stats.EmailsSent)},
		{"Links clicked", strconv.Itoa(stats.LinksClicked)},
		{"Phishing reported", strconv.Itoa(stats.PhishingReported)},
		{"Click rate", fmt.Sprintf("%.2f%%", stats.ClickRate)},
		{"Report rate", fmt.Sprintf("%.2f%%", stats.ReportRate)},
		{},
		{"Department statistics"},
		{"Department", "Total", "Clicked", "Reported"},
	}
	for _, d := range stats.DepartmentStats {
		rows = append(rows, []string{
			d.Department,
			strconv.Itoa(d.Total),
			strconv.Itoa(d.Clicked),
			strconv.Itoa(d.Reported),
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}

// writeJSON writes the full report as a self-describing document.
func writeJSON(f *os.File, stats *primary.StatsReport) error {
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(stats)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
