package storage

import (
	"database/sql"
	"fmt"
	"time"

	"gymdesk/internal/domain/validate"
)

// NullableDate converts a domain date to a bind parameter, mapping the zero
// time to NULL.
func NullableDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return validate.FormatDate(t)
}

// NullableText converts a domain string to a bind parameter, mapping the
// empty string to NULL.
func NullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// NullableID converts a domain id to a bind parameter, mapping zero to NULL.
func NullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

// ScanDate converts a scanned nullable date column back to a domain date;
// NULL becomes the zero time.
func ScanDate(ns sql.NullString) (time.Time, error) {
	if !ns.Valid || ns.String == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(validate.DateLayout, ns.String)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed stored date %q: %w", ns.String, err)
	}
	return t, nil
}
