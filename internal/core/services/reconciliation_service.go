package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	portsrepo "github.com/SscSPs/posting_spine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
	"github.com/google/uuid"
)

// reconciliationService runs books verification in the background and keeps the latest result.
type reconciliationService struct {
	BaseService
	reporting   portssvc.ReportingService
	resultStore portsrepo.ReconciliationResultStore
	enqueuer    portssvc.VerificationEnqueuer
	resultTTL   time.Duration
}

// ReconciliationOption is a functional option for configuring the reconciliation service
type ReconciliationOption func(*reconciliationService)

// WithResultStore keeps the latest verification of each tenant in store for ttl.
func WithResultStore(store portsrepo.ReconciliationResultStore, ttl time.Duration) ReconciliationOption {
	return func(s *reconciliationService) {
		s.resultStore = store
		s.resultTTL = ttl
	}
}

// WithEnqueuer hands verifications to a background queue instead of running them inline.
func WithEnqueuer(enqueuer portssvc.VerificationEnqueuer) ReconciliationOption {
	return func(s *reconciliationService) {
		s.enqueuer = enqueuer
	}
}

// NewReconciliationService creates a new reconciliation service with the provided options
func NewReconciliationService(reporting portssvc.ReportingService, options ...ReconciliationOption) portssvc.ReconciliationSvc {
	svc := &reconciliationService{reporting: reporting}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReconciliationSvc = (*reconciliationService)(nil)

// EnqueueVerification schedules a verification and returns its task ID. Without a
// queue the verification runs before returning and gets a local ID.
func (s *reconciliationService) EnqueueVerification(ctx context.Context, tenantID string, dates domain.DateRange) (string, error) {
	if tenantID == "" {
		return "", fmt.Errorf("%w: tenant ID is required", apperrors.ErrValidation)
	}
	if err := validateRange(dates); err != nil {
		return "", err
	}

	if s.enqueuer == nil {
		if _, err := s.RunVerification(ctx, tenantID, dates); err != nil {
			return "", err
		}
		return "inline-" + uuid.NewString(), nil
	}

	taskID, err := s.enqueuer.EnqueueBooksVerification(ctx, tenantID, dates)
	if err != nil {
		s.LogError(ctx, err, "Failed to enqueue books verification", slog.String("tenant_id", tenantID))
		return "", fmt.Errorf("failed to enqueue books verification: %w", err)
	}
	s.LogInfo(ctx, "Books verification enqueued",
		slog.String("tenant_id", tenantID),
		slog.String("task_id", taskID))
	return taskID, nil
}

func (s *reconciliationService) RunVerification(ctx context.Context, tenantID string, dates domain.DateRange) (*domain.BooksVerification, error) {
	result, err := s.reporting.VerifyBalancedBooks(ctx, tenantID, dates)
	if err != nil {
		return nil, err
	}
	if s.resultStore != nil {
		if err := s.resultStore.SaveLatest(ctx, *result, s.resultTTL); err != nil {
			s.LogError(ctx, err, "Failed to store verification result", slog.String("tenant_id", tenantID))
			return nil, fmt.Errorf("failed to store verification result: %w", err)
		}
	}
	return result, nil
}

func (s *reconciliationService) GetLatestVerification(ctx context.Context, tenantID string) (*domain.BooksVerification, error) {
	if s.resultStore == nil {
		return nil, fmt.Errorf("%w: no verification results are kept", apperrors.ErrNotFound)
	}
	result, err := s.resultStore.GetLatest(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to read latest verification", slog.String("tenant_id", tenantID))
		}
		return nil, err
	}
	return result, nil
}
