package record

import (
	"strconv"
	"strings"
)

// Record is a keyed view over one sheet row, produced by zipping the header
// row onto cell values. Missing cells degrade to the empty string.
type Record map[string]string

// Normalize converts raw row arrays into keyed records using the sheet's
// header row. Rows whose identity column is empty are dropped; everything
// else passes through untouched. Pure transform, never fails.
func Normalize(header []any, rows [][]any, identityColumn string) []Record {
	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = strings.TrimSpace(CellString(h))
	}

	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := make(Record, len(keys))
		for i, key := range keys {
			if key == "" {
				continue
			}
			if i < len(row) {
				rec[key] = CellString(row[i])
			} else {
				rec[key] = ""
			}
		}
		if strings.TrimSpace(rec[identityColumn]) == "" {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// CellString renders a raw sheet cell as a string. The Sheets API hands
// back strings, bools and float64s depending on cell formatting.
func CellString(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

// Int reads a record field as an integer, 0 when absent or unparseable.
func (r Record) Int(key string) int {
	s := strings.TrimSpace(r[key])
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

// Bool reads a record field as the store's loose boolean: true/yes/1 are
// true, everything else is false.
func (r Record) Bool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(r[key])) {
	case "true", "yes", "1":
		return true
	default:
		return false
	}
}
