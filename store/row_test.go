package store

import (
	"testing"
	"time"
)

func TestRowAccessors(t *testing.T) {
	ts := time.Date(2025, 1, 10, 8, 30, 0, 0, time.UTC)
	row := Row{
		"int":     int64(42),
		"int32":   int32(7),
		"bytes":   []byte("13"),
		"text":    "hello",
		"null":    nil,
		"time":    ts,
		"sqlTime": "2025-01-10 08:30:00",
		"isoTime": "2025-01-10T08:30:00Z",
	}

	if got := row.Int64("int"); got != 42 {
		t.Errorf("Int64(int) = %d, want 42", got)
	}
	if got := row.Int64("int32"); got != 7 {
		t.Errorf("Int64(int32) = %d, want 7", got)
	}
	if got := row.Int64("bytes"); got != 13 {
		t.Errorf("Int64(bytes) = %d, want 13", got)
	}
	if got := row.Int64("missing"); got != 0 {
		t.Errorf("Int64(missing) = %d, want 0", got)
	}
	if got := row.String("text"); got != "hello" {
		t.Errorf("String(text) = %q, want %q", got, "hello")
	}
	if got := row.String("bytes"); got != "13" {
		t.Errorf("String(bytes) = %q, want %q", got, "13")
	}
	if got := row.NullString("null"); got != nil {
		t.Errorf("NullString(null) = %q, want nil", *got)
	}
	if got := row.NullString("missing"); got != nil {
		t.Errorf("NullString(missing) = %q, want nil", *got)
	}
	if got := row.NullString("text"); got == nil || *got != "hello" {
		t.Errorf("NullString(text) = %v, want hello", got)
	}
	for _, col := range []string{"time", "sqlTime", "isoTime"} {
		if got := row.Time(col); !got.Equal(ts) {
			t.Errorf("Time(%s) = %v, want %v", col, got, ts)
		}
	}
	if got := row.Time("text"); !got.IsZero() {
		t.Errorf("Time(text) = %v, want zero", got)
	}
}
