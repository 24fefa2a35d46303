// Package roster parses the delimited enrollment input. Parsing is
// validate-then-commit: any defect fails the whole roster before the
// caller writes a single row.
package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/example/phishtrack/internal/apperr"
)

// Record is one enrollment row from the input roster.
type Record struct {
	Email      string
	Name       string
	Department string
}

// requiredColumns are the header names every roster must carry.
// Additional columns are ignored.
var requiredColumns = []string{"email", "name", "department"}

// Parse reads a CSV roster with a header row. It fails with a
// validation error when a required column is absent, a required value
// is blank, or the roster contains no data rows.
func Parse(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, apperr.NewValidation("roster is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read roster header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, apperr.NewValidation("roster is missing required column %q (need email, name, department)", required)
		}
	}

	var records []Record
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read roster row: %w", err)
		}
		line++

		record := Record{
			Email:      strings.TrimSpace(row[columns["email"]]),
			Name:       strings.TrimSpace(row[columns["name"]]),
			Department: strings.TrimSpace(row[columns["department"]]),
		}
		if record.Email == "" || record.Name == "" || record.Department == "" {
			return nil, apperr.NewValidation("roster line %d is missing a required field", line)
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, apperr.NewValidation("roster contains no records")
	}

	return records, nil
}
