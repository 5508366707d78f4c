package store

// RawRow maps a result column name to the backend-native value produced by
// database/sql: nil, bool, int64, float64, []byte, string or time.Time.
type RawRow map[string]any

// RawResult is the untyped output of one query against a backend, before
// any field casting.
type RawResult struct {
	Columns []string
	Rows    []RawRow
}
