package domain

import (
	"context"

	pnet "paysystem/internal/platform/net"
)

// ServicePort is consumed by handlers
type ServicePort interface {
	Register(ctx context.Context, in RegisterInput) (Session, error)
	Login(ctx context.Context, in LoginInput) (Session, error)
	Me(ctx context.Context, userID string) (Profile, error)
}

// TokenPort verifies access tokens for the other modules
type TokenPort interface {
	Verify(token string) (pnet.Principal, error)
}
