package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"paysystem/internal/core/money"
	perr "paysystem/internal/platform/errors"
	ptime "paysystem/internal/platform/time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pagination defaults shared by every list endpoint
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Query reads typed values from the URL query and remembers the first failure
// handlers read every field then check Err once
type Query struct {
	v   map[string][]string
	err error
}

// NewQuery wraps the request query string
func NewQuery(r *http.Request) *Query { return &Query{v: r.URL.Query()} }

func (q *Query) raw(key string) string {
	if vs := q.v[key]; len(vs) > 0 {
		return strings.TrimSpace(vs[0])
	}
	return ""
}

func (q *Query) fail(key, msg string) {
	if q.err == nil {
		q.err = perr.WithField(perr.Validationf("%s %s", key, msg), key)
	}
}

// Err returns the first parse failure
func (q *Query) Err() error { return q.err }

// String returns the trimmed value or ""
func (q *Query) String(key string) string { return q.raw(key) }

// Int parses an int in [lo, hi], def when absent
func (q *Query) Int(key string, def, lo, hi int) int {
	s := q.raw(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		q.fail(key, "must be an integer")
		return def
	}
	if n < lo || n > hi {
		q.fail(key, "must be between "+strconv.Itoa(lo)+" and "+strconv.Itoa(hi))
		return def
	}
	return n
}

// Page returns page and limit with the list defaults applied
func (q *Query) Page() (page, limit int) {
	return q.Int("page", DefaultPage, 1, 1<<30), q.Int("limit", DefaultLimit, 1, MaxLimit)
}

// OneOf returns the value when it is one of allowed, "" when absent
func (q *Query) OneOf(key string, allowed ...string) string {
	s := q.raw(key)
	if s == "" {
		return ""
	}
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	q.fail(key, "must be one of "+strings.Join(allowed, ", "))
	return ""
}

// UUID parses an optional id
func (q *Query) UUID(key string) *uuid.UUID {
	s := q.raw(key)
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		q.fail(key, "must be a valid UUID")
		return nil
	}
	return &id
}

// Decimal parses an optional amount
func (q *Query) Decimal(key string) *decimal.Decimal {
	s := q.raw(key)
	if s == "" {
		return nil
	}
	d, err := money.FromString(s)
	if err != nil {
		q.fail(key, "must be a decimal number")
		return nil
	}
	return &d
}

// Time parses an optional RFC3339 or YYYY-MM-DD lower bound
func (q *Query) Time(key string) *time.Time {
	return q.parseTime(key, ptime.ParseDate)
}

// EndTime is Time but a plain date includes the whole day
func (q *Query) EndTime(key string) *time.Time {
	return q.parseTime(key, ptime.ParseEnd)
}

func (q *Query) parseTime(key string, parse func(string) (time.Time, error)) *time.Time {
	s := q.raw(key)
	if s == "" {
		return nil
	}
	t, err := parse(s)
	if err != nil {
		q.fail(key, "must be a date (RFC3339 or YYYY-MM-DD)")
		return nil
	}
	return &t
}
