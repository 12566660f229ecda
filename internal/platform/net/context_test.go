package net

import (
	"context"
	"testing"
)

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-42")
	if RequestID(ctx) != "req-42" {
		t.Fatalf("RequestID = %q", RequestID(ctx))
	}
	if RequestID(WithRequestID(context.Background(), "")) != "" {
		t.Fatalf("empty id should not be stored")
	}
}

func TestPrincipalRoundTrip(t *testing.T) {
	ctx := WithPrincipal(context.Background(), Principal{UserID: "u-1", Email: "admin@example.com", Role: "ADMIN"})
	p, ok := PrincipalFrom(ctx)
	if !ok || p.UserID != "u-1" || p.Email != "admin@example.com" || p.Role != "ADMIN" {
		t.Fatalf("PrincipalFrom = %+v, %v", p, ok)
	}
	if UserID(ctx) != "u-1" || Role(ctx) != "ADMIN" {
		t.Fatalf("accessors")
	}
	if _, ok := PrincipalFrom(WithPrincipal(context.Background(), Principal{Role: "ADMIN"})); ok {
		t.Fatalf("principal without user id should be ignored")
	}
}
