// Package csvstore persists the lender registry, the community report ledger
// and the user accounts as flat CSV files. The files are small and
// human-editable; each repository loads its file once at startup and the
// report and user stores append rows as they grow.
package csvstore

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// table is one parsed CSV file: normalized header names mapped to column
// positions, plus the data rows.
type table struct {
	columns map[string]int
	rows    [][]string
}

// readTable parses the CSV file at path. Header names are lower-cased and
// whitespace-trimmed so hand-edited files with inconsistent capitalization
// still load.
func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return &table{columns: map[string]int{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of %s: %w", path, err)
	}

	return &table{columns: columns, rows: rows}, nil
}

// get returns the trimmed cell for the named column, or "" when the column
// is absent or the row is short.
func (t *table) get(row []string, column string) string {
	i, ok := t.columns[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// require fails when any of the named columns is missing from the header.
func (t *table) require(path string, columns ...string) error {
	for _, c := range columns {
		if _, ok := t.columns[c]; !ok {
			return fmt.Errorf("file %s is missing required column %q", path, c)
		}
	}
	return nil
}

// appendRow appends one record to the CSV file at path, writing the header
// first when the file does not exist yet or is empty.
func appendRow(path string, header, row []string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("failed to write header to %s: %w", path, err)
		}
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("failed to write row to %s: %w", path, err)
	}
	w.Flush()
	return w.Error()
}
