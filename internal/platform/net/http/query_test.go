package http

import (
	"net/http/httptest"
	"strings"
	"testing"

	perr "paysystem/internal/platform/errors"
)

func jsonBody(s string) *strings.Reader { return strings.NewReader(s) }

func TestQuery_Defaults(t *testing.T) {
	q := NewQuery(httptest.NewRequest("GET", "/charges", nil))
	page, limit := q.Page()
	if page != 1 || limit != 10 || q.Err() != nil {
		t.Fatalf("page=%d limit=%d err=%v", page, limit, q.Err())
	}
	if q.Decimal("min_amount") != nil || q.Time("start_date") != nil {
		t.Fatalf("absent values should be nil")
	}
}

func TestQuery_Values(t *testing.T) {
	q := NewQuery(httptest.NewRequest("GET", "/charges?page=3&limit=50&min_amount=10.5&start_date=2026-01-01&end_date=2026-01-31&status=PAID", nil))
	page, limit := q.Page()
	min := q.Decimal("min_amount")
	start, end := q.Time("start_date"), q.EndTime("end_date")
	if q.Err() != nil || page != 3 || limit != 50 || q.String("status") != "PAID" {
		t.Fatalf("unexpected %v %d %d", q.Err(), page, limit)
	}
	if min == nil || min.String() != "10.5" {
		t.Fatalf("min = %v", min)
	}
	if start == nil || end == nil || end.Day() != 31 || end.Hour() != 23 {
		t.Fatalf("start=%v end=%v", start, end)
	}
}

func TestQuery_FirstErrorWins(t *testing.T) {
	q := NewQuery(httptest.NewRequest("GET", "/charges?limit=500&min_amount=abc", nil))
	q.Page()
	q.Decimal("min_amount")
	err := q.Err()
	e, ok := perr.As(err)
	if !ok || e.Code() != perr.ErrorCodeValidation || e.Field() != "limit" {
		t.Fatalf("err = %v", err)
	}
	if e.Message() != "limit must be between 1 and 100" {
		t.Fatalf("message = %q", e.Message())
	}
}

func TestQuery_UUIDAndOneOf(t *testing.T) {
	q := NewQuery(httptest.NewRequest("GET", "/charges?customer_id=7f4d52a9-f8b9-4a6e-bd8e-215ad48b1b42&status=PAID", nil))
	id := q.UUID("customer_id")
	st := q.OneOf("status", "PENDING", "PAID")
	if q.Err() != nil || id == nil || id.String() != "7f4d52a9-f8b9-4a6e-bd8e-215ad48b1b42" || st != "PAID" {
		t.Fatalf("id=%v status=%q err=%v", id, st, q.Err())
	}

	q = NewQuery(httptest.NewRequest("GET", "/charges?customer_id=nope&status=LOST", nil))
	if q.UUID("customer_id") != nil {
		t.Fatalf("bad uuid should be nil")
	}
	q.OneOf("status", "PENDING", "PAID")
	if e, ok := perr.As(q.Err()); !ok || e.Field() != "customer_id" {
		t.Fatalf("err = %v", q.Err())
	}

	q = NewQuery(httptest.NewRequest("GET", "/charges?status=LOST", nil))
	q.OneOf("status", "PENDING", "PAID")
	if e, ok := perr.As(q.Err()); !ok || e.Message() != "status must be one of PENDING, PAID" {
		t.Fatalf("err = %v", q.Err())
	}
}
