package dispatch

import (
	"strconv"
	"strings"

	"study-tracker/internal/record"
)

// Args is a positional payload: the legacy form posts field values as a flat
// ordered array. Indexing past the end degrades to the zero value.
type Args []any

// String renders the cell at i as a string, empty when out of range.
func (a Args) String(i int) string {
	if i < 0 || i >= len(a) {
		return ""
	}
	return record.CellString(a[i])
}

// Int reads the cell at i as an integer, 0 when absent or unparseable.
// JSON numbers arrive as float64.
func (a Args) Int(i int) int {
	if i < 0 || i >= len(a) {
		return 0
	}
	switch v := a[i].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	s := strings.TrimSpace(record.CellString(a[i]))
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// Any returns the raw cell at i, nil when out of range.
func (a Args) Any(i int) any {
	if i < 0 || i >= len(a) {
		return nil
	}
	return a[i]
}

// IsArray reports whether the raw payload is a JSON array, i.e. a positional
// submission rather than a structured object.
func IsArray(payload []byte) bool {
	for _, b := range payload {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
