package domain

import "context"

// RecorderPort is what other modules write to
type RecorderPort interface {
	Record(ctx context.Context, e Entry) error
}

// ServicePort is consumed by handlers
type ServicePort interface {
	RecorderPort
	List(ctx context.Context, in ListInput) ([]Entry, int, error)
}
