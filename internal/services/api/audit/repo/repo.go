// Package repo stores the audit trail in postgres or clickhouse
package repo

import (
	"context"

	"paysystem/internal/services/api/audit/domain"
)

// Repo is the persistence surface for the audit trail
type Repo interface {
	// Insert stores e and returns it with id and created_at filled
	Insert(ctx context.Context, e domain.Entry) (domain.Entry, error)
	List(ctx context.Context, in domain.ListInput) ([]domain.Entry, error)
	Count(ctx context.Context, in domain.ListInput) (int, error)
}
