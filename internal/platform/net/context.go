// Package net carries request scoped identity through context
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey uint8

const (
	keyUserID ctxKey = iota
	keyRole
	keyEmail
)

// Principal is the authenticated caller as read from a bearer token
type Principal struct {
	UserID string
	Email  string
	Role   string
}

// WithRequestID sets the chi request id so chimw.GetReqID finds it
func WithRequestID(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// WithPrincipal stores the authenticated caller on ctx
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	if p.UserID == "" {
		return ctx
	}
	ctx = context.WithValue(ctx, keyUserID, p.UserID)
	ctx = context.WithValue(ctx, keyRole, p.Role)
	return context.WithValue(ctx, keyEmail, p.Email)
}

// RequestID returns the request id on ctx or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// UserID returns the authenticated user id or ""
func UserID(ctx context.Context) string { return str(ctx, keyUserID) }

// Role returns the authenticated role or ""
func Role(ctx context.Context) string { return str(ctx, keyRole) }

// PrincipalFrom returns the caller and whether one is present
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p := Principal{UserID: str(ctx, keyUserID), Role: str(ctx, keyRole), Email: str(ctx, keyEmail)}
	return p, p.UserID != ""
}

func str(ctx context.Context, k ctxKey) string {
	v, _ := ctx.Value(k).(string)
	return v
}
