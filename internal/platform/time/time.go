// Package time contains time helpers for query filters and nullable columns
package time

import (
	"fmt"
	"strings"
	"time"
)

const dateOnly = "2006-01-02"

// Ptr returns &t, or nil for the zero time
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// ParseDate accepts RFC3339 or a plain YYYY-MM-DD (UTC midnight)
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(dateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: use RFC3339 or YYYY-MM-DD", s)
}

// ParseEnd is ParseDate but a plain date covers the whole day
func ParseEnd(s string) (time.Time, error) {
	t, err := ParseDate(s)
	if err != nil {
		return t, err
	}
	if len(strings.TrimSpace(s)) == len(dateOnly) {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
