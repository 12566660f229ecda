package domain

import (
	"context"

	"github.com/google/uuid"
)

// ServicePort is consumed by handlers
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Customer, error)
	List(ctx context.Context, in ListInput) ([]Customer, int, error)
	Get(ctx context.Context, id uuid.UUID) (Customer, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateInput) (Customer, error)
	Delete(ctx context.Context, id uuid.UUID) (Removed, error)
	ExistsPort
}

// ExistsPort lets other modules check a customer is live
type ExistsPort interface {
	// Exists returns a NotFound error unless id names a live customer
	Exists(ctx context.Context, id uuid.UUID) error
}
