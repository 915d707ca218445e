package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	portsrepo "github.com/SscSPs/posting_spine/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const latestKeyPrefix = "reconciliation:latest:"

// ReconciliationResultStore keeps the latest books verification of each tenant as JSON.
type ReconciliationResultStore struct {
	client redis.UniversalClient
}

// NewReconciliationResultStore creates a result store on top of client.
func NewReconciliationResultStore(client redis.UniversalClient) *ReconciliationResultStore {
	return &ReconciliationResultStore{client: client}
}

var _ portsrepo.ReconciliationResultStore = (*ReconciliationResultStore)(nil)

func latestKey(tenantID string) string {
	return latestKeyPrefix + tenantID
}

func (s *ReconciliationResultStore) SaveLatest(ctx context.Context, result domain.BooksVerification, ttl time.Duration) error {
	if result.TenantID == "" {
		return fmt.Errorf("%w: verification result has no tenant", apperrors.ErrValidation)
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode verification result: %w", err)
	}
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, latestKey(result.TenantID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store verification result: %w", err)
	}
	return nil
}

func (s *ReconciliationResultStore) GetLatest(ctx context.Context, tenantID string) (*domain.BooksVerification, error) {
	payload, err := s.client.Get(ctx, latestKey(tenantID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: no verification result for tenant %s", apperrors.ErrNotFound, tenantID)
		}
		return nil, fmt.Errorf("failed to read verification result: %w", err)
	}
	var result domain.BooksVerification
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to decode verification result: %w", err)
	}
	return &result, nil
}
