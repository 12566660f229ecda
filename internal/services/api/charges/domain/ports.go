package domain

import (
	"context"

	"github.com/google/uuid"
)

// ServicePort is consumed by handlers
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Charge, error)
	List(ctx context.Context, in ListInput) ([]Charge, int, error)
	ByCustomer(ctx context.Context, customerID uuid.UUID) (CustomerCharges, error)
	Get(ctx context.Context, id uuid.UUID) (Charge, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateInput) (Charge, error)
	Delete(ctx context.Context, id uuid.UUID) (Removed, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, in StatusInput) (Charge, error)
}
