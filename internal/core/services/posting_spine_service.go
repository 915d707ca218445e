package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	portsrepo "github.com/SscSPs/posting_spine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
)

// postingSpineService turns an approved document into one economic event and one
// balanced batch of postings, together with the state change, in a single transaction.
type postingSpineService struct {
	BaseService
	txManager portsrepo.TransactionManager
}

// NewPostingSpineService creates the posting spine.
func NewPostingSpineService(txManager portsrepo.TransactionManager) portssvc.PostingSpineSvc {
	return &postingSpineService{txManager: txManager}
}

var _ portssvc.PostingSpineSvc = (*postingSpineService)(nil)

func (s *postingSpineService) PostDocument(ctx context.Context, input portssvc.PostDocumentInput) (*domain.PostDocumentResult, error) {
	logger := s.GetLogger(ctx).With(
		slog.String("tenant_id", input.TenantID),
		slog.String("document_id", input.DocumentID))

	if input.TenantID == "" || input.DocumentID == "" {
		return nil, fmt.Errorf("%w: tenant and document are required", apperrors.ErrValidation)
	}
	if !input.EventType.IsValid() {
		return nil, fmt.Errorf("%w: unknown event type %q", apperrors.ErrValidation, input.EventType)
	}
	totals, err := validateLines(input.Lines)
	if err != nil {
		logger.Error("Rejected posting set before posting", slog.String("error", err.Error()))
		return nil, err
	}

	var result *domain.PostDocumentResult
	err = s.txManager.WithTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		// The row lock serialises concurrent posts of the same document.
		doc, err := repos.Documents().FindDocumentByIDForUpdate(ctx, input.TenantID, input.DocumentID)
		if err != nil {
			return err
		}
		if doc.State != domain.StateApproved {
			return &apperrors.InvalidDocumentStateError{
				DocumentID: doc.DocumentID,
				Current:    string(doc.State),
				Required:   string(domain.StateApproved),
			}
		}
		if !domain.CanTransitionTo(doc.State, domain.StatePosted) {
			return &apperrors.InvalidTransitionError{From: string(doc.State), To: string(domain.StatePosted)}
		}

		now := timeNow()
		audit := input.AuditContext.Normalize(domain.AuditDefaults{
			Now:          now,
			ActorID:      input.UserID,
			Action:       "post",
			DocumentType: string(doc.DocumentType),
			Which: domain.AuditWhich{
				TenantID:     input.TenantID,
				ResourceType: "document",
				ResourceID:   doc.DocumentID,
			},
		})

		eventInput := portssvc.CreateEventInput{
			TenantID:     input.TenantID,
			DocumentID:   doc.DocumentID,
			EventType:    input.EventType,
			Description:  input.Description,
			EventDate:    input.PostingDate,
			Amount:       &totals.Debits,
			EventData:    input.EventData,
			AuditContext: audit,
			UserID:       input.UserID,
		}
		if input.CurrencyCode != "" {
			currency := input.CurrencyCode
			eventInput.CurrencyCode = &currency
		}
		event, err := insertEvent(ctx, repos.Events(), eventInput)
		if err != nil {
			return err
		}

		posted, err := insertPostings(ctx, repos, portssvc.CreatePostingsInput{
			TenantID:     input.TenantID,
			EventID:      event.EventID,
			Lines:        input.Lines,
			PostingDate:  event.EventDate,
			CurrencyCode: input.CurrencyCode,
			UserID:       input.UserID,
		}, nil)
		if err != nil {
			return err
		}

		if err := repos.Documents().UpdateDocumentState(ctx, input.TenantID, doc.DocumentID, domain.StatePosted, input.UserID, now); err != nil {
			return err
		}
		doc.State = domain.StatePosted
		doc.LastUpdatedAt = now
		doc.LastUpdatedBy = input.UserID

		result = &domain.PostDocumentResult{
			Document:   *doc,
			Event:      *event,
			Postings:   posted.Postings,
			BatchID:    posted.BatchID,
			IsBalanced: posted.IsBalanced,
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnbalancedPostings):
			logger.Error("Posting rolled back: unbalanced postings", slog.String("error", err.Error()))
		case errors.Is(err, apperrors.ErrInvalidDocumentState), errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Document cannot be posted", slog.String("error", err.Error()))
		default:
			logger.Error("Posting transaction failed", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Document posted",
		slog.String("event_id", result.Event.EventID),
		slog.String("batch_id", result.BatchID),
		slog.Int("line_count", len(result.Postings)))
	return result, nil
}
