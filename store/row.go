package store

import (
	"strconv"
	"time"
)

// Row is one result row keyed by column name. Drivers disagree on the Go
// types they hand back, so the accessors accept every representation seen
// from the supported backends and fall back to the zero value.
type Row map[string]any

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (r Row) Int64(col string) int64 {
	switch v := r[col].(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	case uint64:
		return int64(v)
	case float64:
		return int64(v)
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	case []byte:
		n, _ := strconv.ParseInt(string(v), 10, 64)
		return n
	default:
		return 0
	}
}

func (r Row) String(col string) string {
	switch v := r[col].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	case time.Time:
		return v.Format(time.RFC3339)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

// NullString returns nil for SQL NULL and for missing columns.
func (r Row) NullString(col string) *string {
	v, ok := r[col]
	if !ok || v == nil {
		return nil
	}
	s := r.String(col)
	return &s
}

// Time parses driver timestamps. SQLite may hand back text, PostgreSQL and
// MySQL (with parseTime) hand back time.Time.
func (r Row) Time(col string) time.Time {
	var s string
	switch v := r[col].(type) {
	case time.Time:
		return v.UTC()
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
