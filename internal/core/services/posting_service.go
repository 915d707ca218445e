package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	portsrepo "github.com/SscSPs/posting_spine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
	"github.com/SscSPs/posting_spine/internal/utils/accounting"
	"github.com/SscSPs/posting_spine/internal/utils/money"
	"github.com/google/uuid"
)

// postingService is the double-entry posting engine.
type postingService struct {
	BaseService
	postingRepo portsrepo.LedgerPostingRepositoryFacade
	txManager   portsrepo.TransactionManager
}

// NewPostingService creates a new posting engine.
func NewPostingService(postingRepo portsrepo.LedgerPostingRepositoryFacade, txManager portsrepo.TransactionManager) portssvc.PostingSvcFacade {
	return &postingService{postingRepo: postingRepo, txManager: txManager}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// validateLines checks the shape of every line and the balance of the set.
// It reads nothing, so callers can run it before opening a transaction.
func validateLines(lines []domain.PostingLine) (accounting.DirectionTotals, error) {
	if len(lines) == 0 {
		return accounting.DirectionTotals{}, apperrors.ErrEmptyPostingSet
	}
	for i, line := range lines {
		switch {
		case line.AccountID == "":
			return accounting.DirectionTotals{}, fmt.Errorf("%w: line %d has no account", apperrors.ErrValidation, i+1)
		case !line.Direction.IsValid():
			return accounting.DirectionTotals{}, fmt.Errorf("%w: line %d has invalid direction %q", apperrors.ErrValidation, i+1, line.Direction)
		case !money.IsPositive(line.Amount):
			return accounting.DirectionTotals{}, fmt.Errorf("%w: line %d amount must be positive", apperrors.ErrValidation, i+1)
		}
	}
	return accounting.ValidateLinesBalance(lines)
}

// insertPostings validates input, checks the accounts and appends the whole batch
// through the transaction-bound repositories. Nothing is written unless every
// check passes. reversedFrom maps line numbers to the postings they offset and is
// only set by the reversal engine.
func insertPostings(ctx context.Context, repos portsrepo.TxRepositories, input portssvc.CreatePostingsInput, reversedFrom map[int]string) (*domain.PostingResult, error) {
	isReversal := reversedFrom != nil
	if input.TenantID == "" || input.EventID == "" {
		return nil, fmt.Errorf("%w: tenant and event are required", apperrors.ErrValidation)
	}
	totals, err := validateLines(input.Lines)
	if err != nil {
		return nil, err
	}

	accountIDs := make([]string, 0, len(input.Lines))
	for _, line := range input.Lines {
		accountIDs = append(accountIDs, line.AccountID)
	}
	accounts, err := repos.Accounts().FindAccountsByIDs(ctx, input.TenantID, uniqueStrings(accountIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	currency := strings.ToUpper(strings.TrimSpace(input.CurrencyCode))
	for _, id := range accountIDs {
		acc, ok := accounts[id]
		if !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		// Reversals must stay possible after an account is closed.
		if !acc.IsActive && !isReversal {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, id)
		}
		if currency != "" && acc.CurrencyCode != "" && acc.CurrencyCode != currency {
			return nil, fmt.Errorf("%w: account %s is kept in %s, postings are in %s", apperrors.ErrValidation, id, acc.CurrencyCode, currency)
		}
	}

	now := timeNow()
	postingDate := input.PostingDate
	if postingDate.IsZero() {
		postingDate = now
	}
	batchID := uuid.NewString()
	postings := make([]domain.LedgerPosting, len(input.Lines))
	for i, line := range input.Lines {
		lineNo := i + 1
		p := domain.LedgerPosting{
			PostingID:    uuid.NewString(),
			TenantID:     input.TenantID,
			EventID:      input.EventID,
			BatchID:      batchID,
			LineNo:       lineNo,
			AccountID:    line.AccountID,
			Direction:    line.Direction,
			Amount:       money.Normalize(line.Amount),
			CurrencyCode: currency,
			PostingDate:  postingDate,
			Description:  line.Description,
			Metadata:     maps.Clone(line.Metadata),
			IsReversal:   isReversal,
			CreatedAt:    now,
			CreatedBy:    input.UserID,
		}
		if originalID, ok := reversedFrom[lineNo]; ok {
			p.ReversedFromID = &originalID
		}
		postings[i] = p
	}

	if err := repos.Postings().InsertPostings(ctx, postings); err != nil {
		return nil, fmt.Errorf("failed to insert postings: %w", err)
	}

	return &domain.PostingResult{
		BatchID:      batchID,
		Postings:     postings,
		TotalDebits:  money.Normalize(totals.Debits),
		TotalCredits: money.Normalize(totals.Credits),
		IsBalanced:   totals.IsBalanced(),
	}, nil
}

func (s *postingService) CreatePostings(ctx context.Context, input portssvc.CreatePostingsInput) (*domain.PostingResult, error) {
	// Fail fast: an unbalanced set never opens a transaction.
	if _, err := validateLines(input.Lines); err != nil {
		s.logRejectedLines(ctx, err, input.EventID)
		return nil, err
	}

	var result *domain.PostingResult
	err := s.txManager.WithTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if _, err := repos.Events().FindEventByID(ctx, input.TenantID, input.EventID); err != nil {
			return fmt.Errorf("event %s: %w", input.EventID, err)
		}
		var err error
		result, err = insertPostings(ctx, repos, input, nil)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create postings",
			slog.String("event_id", input.EventID),
			slog.String("tenant_id", input.TenantID))
		return nil, err
	}

	s.LogInfo(ctx, "Postings created",
		slog.String("batch_id", result.BatchID),
		slog.String("event_id", input.EventID),
		slog.Int("line_count", len(result.Postings)))
	return result, nil
}

func (s *postingService) logRejectedLines(ctx context.Context, err error, eventID string) {
	var unbalanced *apperrors.UnbalancedPostingsError
	if errors.As(err, &unbalanced) {
		s.LogError(ctx, err, "Rejected unbalanced posting set",
			slog.String("event_id", eventID),
			slog.String("debits", unbalanced.Debits),
			slog.String("credits", unbalanced.Credits),
			slog.String("difference", unbalanced.Difference))
		return
	}
	s.LogWarn(ctx, "Rejected posting set", slog.String("event_id", eventID), slog.String("error", err.Error()))
}

func (s *postingService) GetPostingsByEvent(ctx context.Context, tenantID, eventID string) ([]domain.LedgerPosting, error) {
	postings, err := s.postingRepo.FindPostingsByEvent(ctx, tenantID, eventID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find postings by event", slog.String("event_id", eventID))
		return nil, err
	}
	if postings == nil {
		return []domain.LedgerPosting{}, nil
	}
	return postings, nil
}

func (s *postingService) GetPostingsByBatch(ctx context.Context, tenantID, batchID string) ([]domain.LedgerPosting, error) {
	postings, err := s.postingRepo.FindPostingsByBatch(ctx, tenantID, batchID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find postings by batch", slog.String("batch_id", batchID))
		return nil, err
	}
	if postings == nil {
		return []domain.LedgerPosting{}, nil
	}
	return postings, nil
}

func (s *postingService) GetPostingsByAccount(ctx context.Context, tenantID, accountID string, filter domain.PostingFilter) ([]domain.LedgerPosting, *string, error) {
	if filter.Dates.From != nil && filter.Dates.To != nil && filter.Dates.From.After(*filter.Dates.To) {
		return nil, nil, fmt.Errorf("%w: from must not be after to", apperrors.ErrValidation)
	}
	postings, next, err := s.postingRepo.ListPostingsByAccount(ctx, tenantID, accountID, filter)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list postings by account", slog.String("account_id", accountID))
		}
		return nil, nil, err
	}
	if postings == nil {
		postings = []domain.LedgerPosting{}
	}
	return postings, next, nil
}

// ValidateBatchBalance recomputes a stored batch from its rows. An unbalanced
// result is returned, not raised, so auditors can inspect it; it is always
// logged as an error.
func (s *postingService) ValidateBatchBalance(ctx context.Context, tenantID, batchID string) (*domain.BatchBalance, error) {
	postings, err := s.postingRepo.FindPostingsByBatch(ctx, tenantID, batchID)
	if err != nil {
		return nil, err
	}
	if len(postings) == 0 {
		return nil, fmt.Errorf("%w: batch %s", apperrors.ErrNotFound, batchID)
	}

	totals := accounting.TotalsOfPostings(postings)
	balance := &domain.BatchBalance{
		BatchID:      batchID,
		LineCount:    len(postings),
		TotalDebits:  money.Normalize(totals.Debits),
		TotalCredits: money.Normalize(totals.Credits),
		Difference:   money.Normalize(totals.Difference()),
		IsBalanced:   totals.IsBalanced(),
	}
	if !balance.IsBalanced {
		s.LogError(ctx, totals.UnbalancedError(), "Stored batch is not balanced",
			slog.String("batch_id", batchID),
			slog.String("tenant_id", tenantID))
	}
	return balance, nil
}

// uniqueStrings returns the distinct values of in, keeping first-seen order.
func uniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
