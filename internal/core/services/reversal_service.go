package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	portsrepo "github.com/SscSPs/posting_spine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
)

const (
	reversalPrefix       = "REVERSAL: "
	reversedPostingIDKey = "reversed_posting_id"
)

// reversalService corrects posted data by appending offsetting records.
type reversalService struct {
	BaseService
	documentRepo portsrepo.DocumentReader
	eventRepo    portsrepo.EconomicEventReader
	txManager    portsrepo.TransactionManager
}

// NewReversalService creates the reversal engine.
func NewReversalService(documentRepo portsrepo.DocumentReader, eventRepo portsrepo.EconomicEventReader, txManager portsrepo.TransactionManager) portssvc.ReversalSvcFacade {
	return &reversalService{documentRepo: documentRepo, eventRepo: eventRepo, txManager: txManager}
}

var _ portssvc.ReversalSvcFacade = (*reversalService)(nil)

type reverseRequest struct {
	tenantID     string
	eventID      string
	reason       string
	date         time.Time
	userID       string
	audit        *domain.AuditContextInput
	resourceType string
	resourceID   string
}

// reverseEvent writes the offsetting event and batch for one original event and
// links both levels in both directions. It must run inside a transaction.
func reverseEvent(ctx context.Context, repos portsrepo.TxRepositories, req reverseRequest) (*domain.ReversalResult, error) {
	original, err := repos.Events().FindEventByID(ctx, req.tenantID, req.eventID)
	if err != nil {
		return nil, err
	}
	if original.IsReversal {
		return nil, fmt.Errorf("%w: event %s", apperrors.ErrCannotReverseReversal, original.EventID)
	}
	if original.ReversalID != nil {
		return nil, fmt.Errorf("%w: event %s was reversed by %s", apperrors.ErrAlreadyReversed, original.EventID, *original.ReversalID)
	}

	originalPostings, err := repos.Postings().FindPostingsByEvent(ctx, req.tenantID, original.EventID)
	if err != nil {
		return nil, err
	}
	if len(originalPostings) == 0 {
		return nil, fmt.Errorf("%w: event %s", apperrors.ErrNoPostingsFound, original.EventID)
	}

	var auditInput domain.AuditContextInput
	if req.audit != nil {
		auditInput = *req.audit
	}
	audit := auditInput.Normalize(domain.AuditDefaults{
		Now:          timeNow(),
		ActorID:      req.userID,
		DocumentType: original.AuditContext.What.DocumentType,
		Which: domain.AuditWhich{
			TenantID:     req.tenantID,
			ResourceType: req.resourceType,
			ResourceID:   req.resourceID,
		},
	})
	audit.What.Action = "Reversal of " + string(original.EventType)
	if audit.What.Description == "" {
		audit.What.Description = req.reason
	}
	audit.Why.Reason = req.reason

	// New line N offsets original line N; the pairing is persisted through ReversedFromID.
	lines := make([]domain.PostingLine, len(originalPostings))
	pairs := make(map[int]string, len(originalPostings))
	for i, p := range originalPostings {
		metadata := maps.Clone(p.Metadata)
		if metadata == nil {
			metadata = make(map[string]any, 1)
		}
		metadata[reversedPostingIDKey] = p.PostingID
		lines[i] = domain.PostingLine{
			AccountID:   p.AccountID,
			Direction:   p.Direction.Opposite(),
			Amount:      p.Amount,
			Description: reversalPrefix + p.Description,
			Metadata:    metadata,
		}
		pairs[i+1] = p.PostingID
	}

	event, err := insertEvent(ctx, repos.Events(), portssvc.CreateEventInput{
		TenantID:       req.tenantID,
		DocumentID:     original.DocumentID,
		EventType:      original.EventType,
		Description:    reversalPrefix + original.Description,
		EventDate:      req.date,
		Amount:         original.Amount,
		CurrencyCode:   original.CurrencyCode,
		EventData:      original.EventData,
		AuditContext:   audit,
		ReversedFromID: &original.EventID,
		UserID:         req.userID,
	})
	if err != nil {
		return nil, err
	}

	posted, err := insertPostings(ctx, repos, portssvc.CreatePostingsInput{
		TenantID:     req.tenantID,
		EventID:      event.EventID,
		Lines:        lines,
		PostingDate:  event.EventDate,
		CurrencyCode: originalPostings[0].CurrencyCode,
		UserID:       req.userID,
	}, pairs)
	if err != nil {
		return nil, err
	}

	if err := repos.Events().LinkEventReversal(ctx, req.tenantID, original.EventID, event.EventID); err != nil {
		return nil, fmt.Errorf("failed to link event reversal: %w", err)
	}
	original.ReversalID = &event.EventID

	byID := make(map[string]int, len(originalPostings))
	for i, p := range originalPostings {
		byID[p.PostingID] = i
	}
	for _, np := range posted.Postings {
		if np.ReversedFromID == nil {
			continue
		}
		if err := repos.Postings().LinkPostingReversal(ctx, req.tenantID, *np.ReversedFromID, np.PostingID); err != nil {
			return nil, fmt.Errorf("failed to link posting reversal: %w", err)
		}
		reversalID := np.PostingID
		originalPostings[byID[*np.ReversedFromID]].ReversalID = &reversalID
	}

	return &domain.ReversalResult{
		Event:            *event,
		Postings:         posted.Postings,
		BatchID:          posted.BatchID,
		OriginalEvent:    *original,
		OriginalPostings: originalPostings,
		IsBalanced:       posted.IsBalanced,
	}, nil
}

func validateReason(reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return "", fmt.Errorf("%w: a reversal reason is required", apperrors.ErrValidation)
	}
	return reason, nil
}

func (s *reversalService) CreateReversalEntry(ctx context.Context, input portssvc.ReversalEntryInput) (*domain.ReversalResult, error) {
	reason, err := validateReason(input.Reason)
	if err != nil {
		return nil, err
	}

	var result *domain.ReversalResult
	err = s.txManager.WithTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		original, err := repos.Events().FindEventByID(ctx, input.TenantID, input.OriginalEventID)
		if err != nil {
			return err
		}
		// Reversing the event a document was posted with reverses the document too.
		doc, err := repos.Documents().FindDocumentByIDForUpdate(ctx, input.TenantID, original.DocumentID)
		if err != nil {
			return err
		}
		reversesDocument := false
		if doc.State == domain.StatePosted && !doc.IsReversed() {
			origin, err := originatingEvent(ctx, repos.Events(), input.TenantID, doc.DocumentID)
			if err != nil {
				return err
			}
			reversesDocument = origin.EventID == original.EventID
		}

		result, err = reverseEvent(ctx, repos, reverseRequest{
			tenantID:     input.TenantID,
			eventID:      input.OriginalEventID,
			reason:       reason,
			date:         input.ReversalDate,
			userID:       input.UserID,
			audit:        input.AuditContext,
			resourceType: "economic_event",
			resourceID:   input.OriginalEventID,
		})
		if err != nil || !reversesDocument {
			return err
		}
		if err := markDocumentReversed(ctx, repos, doc, result.Event.EventID, input.UserID); err != nil {
			return err
		}
		result.Document = doc
		return nil
	})
	if err != nil {
		s.logReversalFailure(ctx, err, slog.String("event_id", input.OriginalEventID))
		return nil, err
	}

	s.LogInfo(ctx, "Economic event reversed",
		slog.String("event_id", input.OriginalEventID),
		slog.String("reversal_event_id", result.Event.EventID),
		slog.String("batch_id", result.BatchID))
	return result, nil
}

func (s *reversalService) CreateDocumentReversal(ctx context.Context, input portssvc.DocumentReversalInput) (*domain.ReversalResult, error) {
	reason, err := validateReason(input.Reason)
	if err != nil {
		return nil, err
	}

	var result *domain.ReversalResult
	err = s.txManager.WithTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		doc, err := repos.Documents().FindDocumentByIDForUpdate(ctx, input.TenantID, input.DocumentID)
		if err != nil {
			return err
		}
		if doc.IsReversal() {
			return fmt.Errorf("%w: document %s", apperrors.ErrCannotReverseReversal, doc.DocumentID)
		}
		if doc.IsReversed() || doc.State == domain.StateReversed {
			return fmt.Errorf("%w: document %s", apperrors.ErrAlreadyReversed, doc.DocumentID)
		}
		if doc.State != domain.StatePosted {
			return &apperrors.InvalidDocumentStateError{
				DocumentID: doc.DocumentID,
				Current:    string(doc.State),
				Required:   string(domain.StatePosted),
			}
		}
		if !domain.CanTransitionTo(doc.State, domain.StateReversed) {
			return &apperrors.InvalidTransitionError{From: string(doc.State), To: string(domain.StateReversed)}
		}

		origin, err := originatingEvent(ctx, repos.Events(), input.TenantID, doc.DocumentID)
		if err != nil {
			return err
		}

		result, err = reverseEvent(ctx, repos, reverseRequest{
			tenantID:     input.TenantID,
			eventID:      origin.EventID,
			reason:       reason,
			date:         input.ReversalDate,
			userID:       input.UserID,
			audit:        input.AuditContext,
			resourceType: "document",
			resourceID:   doc.DocumentID,
		})
		if err != nil {
			return err
		}

		if err := markDocumentReversed(ctx, repos, doc, result.Event.EventID, input.UserID); err != nil {
			return err
		}
		result.Document = doc
		return nil
	})
	if err != nil {
		s.logReversalFailure(ctx, err, slog.String("document_id", input.DocumentID))
		return nil, err
	}

	s.LogInfo(ctx, "Document reversed",
		slog.String("document_id", input.DocumentID),
		slog.String("reversal_event_id", result.Event.EventID),
		slog.String("batch_id", result.BatchID))
	return result, nil
}

// markDocumentReversed moves a posted document to reversed and stamps the
// reversal event on it.
func markDocumentReversed(ctx context.Context, repos portsrepo.TxRepositories, doc *domain.Document, reversalEventID, userID string) error {
	now := timeNow()
	if err := repos.Documents().UpdateDocumentState(ctx, doc.TenantID, doc.DocumentID, domain.StateReversed, userID, now); err != nil {
		return err
	}
	if err := repos.Documents().LinkDocumentReversal(ctx, doc.TenantID, doc.DocumentID, reversalEventID, userID, now); err != nil {
		return err
	}
	doc.State = domain.StateReversed
	doc.ReversalID = &reversalEventID
	doc.LastUpdatedAt = now
	doc.LastUpdatedBy = userID
	return nil
}

func (s *reversalService) logReversalFailure(ctx context.Context, err error, attr slog.Attr) {
	switch {
	case errors.Is(err, apperrors.ErrAlreadyReversed),
		errors.Is(err, apperrors.ErrCannotReverseReversal),
		errors.Is(err, apperrors.ErrInvalidDocumentState),
		errors.Is(err, apperrors.ErrNotFound):
		s.LogWarn(ctx, "Reversal rejected", attr, slog.String("error", err.Error()))
	default:
		s.LogError(ctx, err, "Reversal transaction failed", attr)
	}
}

// originatingEvent returns the first non-reversal event recorded for a document.
func originatingEvent(ctx context.Context, reader portsrepo.EconomicEventReader, tenantID, documentID string) (*domain.EconomicEvent, error) {
	events, err := reader.FindEventsByDocument(ctx, tenantID, documentID)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if !events[i].IsReversal {
			return &events[i], nil
		}
	}
	return nil, fmt.Errorf("%w: no originating event for document %s", apperrors.ErrNotFound, documentID)
}

func (s *reversalService) ValidateReversalEligibility(ctx context.Context, tenantID, eventID string) (*domain.ReversalEligibility, error) {
	event, err := s.eventRepo.FindEventByID(ctx, tenantID, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.ReversalEligibility{Reason: domain.ReasonEventNotFound}, nil
		}
		s.LogError(ctx, err, "Failed to load event for eligibility check", slog.String("event_id", eventID))
		return nil, err
	}
	switch {
	case event.IsReversal:
		return &domain.ReversalEligibility{Reason: domain.ReasonReversalOfReverse}, nil
	case event.ReversalID != nil:
		return &domain.ReversalEligibility{Reason: domain.ReasonAlreadyReversed}, nil
	}
	return &domain.ReversalEligibility{IsEligible: true}, nil
}

func (s *reversalService) GetReversalStatus(ctx context.Context, tenantID, documentID string) (*domain.DocumentReversalStatus, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, tenantID, documentID)
	if err != nil {
		return nil, err
	}
	status := &domain.DocumentReversalStatus{DocumentID: doc.DocumentID, Status: domain.NotReversed}
	switch {
	case doc.IsReversal():
		status.Status = domain.IsReversal
		status.ReversedFromID = doc.ReversedFromID
	case doc.IsReversed():
		status.Status = domain.Reversed
		status.ReversalEventID = doc.ReversalID
	default:
		origin, err := originatingEvent(ctx, s.eventRepo, tenantID, documentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return status, nil
			}
			return nil, err
		}
		if origin.ReversalID != nil {
			status.Status = domain.Reversed
			status.ReversalEventID = origin.ReversalID
		}
	}
	return status, nil
}

// GetDocumentReversalChain returns the reversal chain of the document's originating
// event, or an empty chain when nothing has been posted for it yet.
func (s *reversalService) GetDocumentReversalChain(ctx context.Context, tenantID, documentID string) ([]domain.EconomicEvent, error) {
	if _, err := s.documentRepo.FindDocumentByID(ctx, tenantID, documentID); err != nil {
		return nil, err
	}
	origin, err := originatingEvent(ctx, s.eventRepo, tenantID, documentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.EconomicEvent{}, nil
		}
		return nil, err
	}
	return reversalChain(ctx, s.eventRepo, tenantID, origin.EventID)
}
