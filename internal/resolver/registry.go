package resolver

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// CSVRegistry is a RegistryReader backed by a company-registry CSV file on
// disk, with a header row containing at least "name" and "url" columns
// (column order and casing are tolerated).
type CSVRegistry struct {
	Path string
}

// Rows reads and parses the registry CSV. A missing file is reported as an
// error to the caller, which (per §7's "source unavailable" class) should
// log it and continue with zero matches for that ATS rather than fail the
// whole resolve.
func (c CSVRegistry) Rows() ([]RegistryRow, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("open registry %s: %w", c.Path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read registry header %s: %w", c.Path, err)
	}

	nameIdx, urlIdx := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name", "display_name":
			nameIdx = i
		case "url":
			urlIdx = i
		}
	}
	if nameIdx < 0 || urlIdx < 0 {
		return nil, fmt.Errorf("registry %s: missing name/url columns", c.Path)
	}

	var rows []RegistryRow
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rows, fmt.Errorf("read registry row %s: %w", c.Path, err)
		}
		if nameIdx >= len(record) || urlIdx >= len(record) {
			continue
		}
		rows = append(rows, RegistryRow{
			DisplayName: record[nameIdx],
			URL:         record[urlIdx],
		})
	}
	return rows, nil
}
