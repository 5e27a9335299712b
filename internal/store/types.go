package store

// UpdateRowInput addresses one row by a column/value match and carries the
// columns to overwrite. Columns absent from Values keep their current cells.
type UpdateRowInput struct {
	Sheet       string         `json:"sheet"`
	MatchColumn string         `json:"match_column"`
	MatchValue  string         `json:"match_value"`
	Values      map[string]any `json:"values"`
}
