package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/posting_spine/internal/core/domain"
)

// ReconciliationResultStore keeps the most recent books verification of each tenant.
type ReconciliationResultStore interface {
	// SaveLatest replaces the stored result of the tenant. A zero ttl keeps it indefinitely.
	SaveLatest(ctx context.Context, result domain.BooksVerification, ttl time.Duration) error

	// GetLatest returns ErrNotFound when no result is stored or it has expired.
	GetLatest(ctx context.Context, tenantID string) (*domain.BooksVerification, error)
}
