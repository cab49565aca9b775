package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// RowError reports a cell that could not be decoded. Row is 1-based and
// counts the header, so it matches the row number shown by spreadsheet tools.
type RowError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d, column %q: cannot parse %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// columnMap maps normalized header names to column indexes.
type columnMap map[string]int

func buildColumnMap(header []string) columnMap {
	cm := make(columnMap, len(header))
	for i, h := range header {
		key := normalize(h)
		if _, dup := cm[key]; !dup {
			cm[key] = i
		}
	}
	return cm
}

// find returns the index of the first alias present in the header.
func (cm columnMap) find(aliases ...string) (int, bool) {
	for _, a := range aliases {
		if i, ok := cm[normalize(a)]; ok {
			return i, true
		}
	}
	return 0, false
}

func (cm columnMap) require(aliases ...string) (int, error) {
	i, ok := cm.find(aliases...)
	if !ok {
		return 0, fmt.Errorf("missing column %q", aliases[0])
	}
	return i, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseNumber accepts plain and thousands-grouped numbers with an optional
// currency sign. An empty cell yields ok=false.
func parseNumber(s string) (v float64, ok bool, err error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₹")
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	v, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// numberAt parses the cell at column i of the data row at index n.
func numberAt(row []string, n, i int, column string) (float64, bool, error) {
	raw := cell(row, i)
	v, ok, err := parseNumber(raw)
	if err != nil {
		return 0, false, &RowError{Row: n + 2, Column: column, Value: raw, Err: err}
	}
	return v, ok, nil
}
