package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
	"github.com/SscSPs/posting_spine/internal/utils/money"
)

// PostingLineRequest is one debit or credit line. Amount is a positive decimal
// string with at most four fraction digits.
type PostingLineRequest struct {
	AccountID   string           `json:"accountID" binding:"required"`
	Direction   domain.Direction `json:"direction" binding:"required,oneof=debit credit"`
	Amount      string           `json:"amount" binding:"required,decimal4" example:"100.0000"`
	Description string           `json:"description"`
	Metadata    map[string]any   `json:"metadata"`
}

// PostDocumentRequest posts an approved document.
type PostDocumentRequest struct {
	EventType    domain.EventType     `json:"eventType" binding:"required"`
	Description  string               `json:"description"`
	PostingDate  string               `json:"postingDate" example:"2024-03-05"`
	CurrencyCode string               `json:"currencyCode" binding:"omitempty,len=3"`
	EventData    json.RawMessage      `json:"eventData" swaggertype:"object"`
	Lines        []PostingLineRequest `json:"lines" binding:"required,min=1,dive"`
	AuditContext *AuditContextRequest `json:"auditContext"`
}

// ToInput converts the request for the posting spine.
func (r PostDocumentRequest) ToInput(tenantID, documentID, userID string) (portssvc.PostDocumentInput, error) {
	postingDate, err := ParseDate("postingDate", r.PostingDate)
	if err != nil {
		return portssvc.PostDocumentInput{}, err
	}
	lines := make([]domain.PostingLine, len(r.Lines))
	for i, l := range r.Lines {
		amount, err := money.Parse(l.Amount)
		if err != nil {
			return portssvc.PostDocumentInput{}, fmt.Errorf("%w: line %d: %v", apperrors.ErrValidation, i+1, err)
		}
		lines[i] = domain.PostingLine{
			AccountID:   l.AccountID,
			Direction:   l.Direction,
			Amount:      amount,
			Description: l.Description,
			Metadata:    l.Metadata,
		}
	}
	return portssvc.PostDocumentInput{
		TenantID:     tenantID,
		DocumentID:   documentID,
		UserID:       userID,
		PostingDate:  deref(postingDate),
		EventType:    r.EventType,
		Description:  r.Description,
		CurrencyCode: strings.ToUpper(r.CurrencyCode),
		EventData:    r.EventData,
		Lines:        lines,
		AuditContext: r.AuditContext.ToDomain(),
	}, nil
}

// ReverseRequest asks for the reversal of an event or a posted document.
type ReverseRequest struct {
	Reason       string               `json:"reason" binding:"required"`
	ReversalDate string               `json:"reversalDate" example:"2024-03-09"`
	AuditContext *AuditContextRequest `json:"auditContext"`
}

func (r ReverseRequest) auditContext() *domain.AuditContextInput {
	if r.AuditContext == nil {
		return nil
	}
	in := r.AuditContext.ToDomain()
	return &in
}

// ToEntryInput converts the request for the reversal of one event.
func (r ReverseRequest) ToEntryInput(tenantID, eventID, userID string) (portssvc.ReversalEntryInput, error) {
	date, err := ParseDate("reversalDate", r.ReversalDate)
	if err != nil {
		return portssvc.ReversalEntryInput{}, err
	}
	return portssvc.ReversalEntryInput{
		TenantID:        tenantID,
		OriginalEventID: eventID,
		Reason:          r.Reason,
		ReversalDate:    deref(date),
		UserID:          userID,
		AuditContext:    r.auditContext(),
	}, nil
}

// ToDocumentInput converts the request for the reversal of a posted document.
func (r ReverseRequest) ToDocumentInput(tenantID, documentID, userID string) (portssvc.DocumentReversalInput, error) {
	date, err := ParseDate("reversalDate", r.ReversalDate)
	if err != nil {
		return portssvc.DocumentReversalInput{}, err
	}
	return portssvc.DocumentReversalInput{
		TenantID:     tenantID,
		DocumentID:   documentID,
		Reason:       r.Reason,
		ReversalDate: deref(date),
		UserID:       userID,
		AuditContext: r.auditContext(),
	}, nil
}

// EventResponse is an economic event with its amount as a 4-scale string.
type EventResponse struct {
	EventID        string              `json:"eventID"`
	TenantID       string              `json:"tenantID"`
	DocumentID     string              `json:"documentID"`
	EventType      domain.EventType    `json:"eventType"`
	Description    string              `json:"description"`
	EventDate      time.Time           `json:"eventDate"`
	Amount         *string             `json:"amount,omitempty" example:"100.0000"`
	CurrencyCode   *string             `json:"currencyCode,omitempty"`
	EventData      json.RawMessage     `json:"eventData,omitempty" swaggertype:"object"`
	AuditContext   domain.AuditContext `json:"auditContext"`
	IsReversal     bool                `json:"isReversal"`
	ReversedFromID *string             `json:"reversedFromID,omitempty"`
	ReversalID     *string             `json:"reversalID,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	CreatedBy      string              `json:"createdBy"`
}

func ToEventResponse(e *domain.EconomicEvent) EventResponse {
	res := EventResponse{
		EventID:        e.EventID,
		TenantID:       e.TenantID,
		DocumentID:     e.DocumentID,
		EventType:      e.EventType,
		Description:    e.Description,
		EventDate:      e.EventDate,
		CurrencyCode:   e.CurrencyCode,
		EventData:      e.EventData,
		AuditContext:   e.AuditContext,
		IsReversal:     e.IsReversal,
		ReversedFromID: e.ReversedFromID,
		ReversalID:     e.ReversalID,
		CreatedAt:      e.CreatedAt,
		CreatedBy:      e.CreatedBy,
	}
	if e.Amount != nil {
		amount := money.Format(*e.Amount)
		res.Amount = &amount
	}
	return res
}

func ToEventResponses(events []domain.EconomicEvent) []EventResponse {
	out := make([]EventResponse, len(events))
	for i := range events {
		out[i] = ToEventResponse(&events[i])
	}
	return out
}

// ListEventsResponse is one page of a tenant's event log, newest first.
type ListEventsResponse struct {
	Events    []EventResponse `json:"events"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// PostingResponse is a ledger posting with its amount as a 4-scale string.
type PostingResponse struct {
	PostingID      string           `json:"postingID"`
	EventID        string           `json:"eventID"`
	BatchID        string           `json:"batchID"`
	LineNo         int              `json:"lineNo"`
	AccountID      string           `json:"accountID"`
	Direction      domain.Direction `json:"direction"`
	Amount         string           `json:"amount" example:"100.0000"`
	CurrencyCode   string           `json:"currencyCode,omitempty"`
	PostingDate    time.Time        `json:"postingDate"`
	Description    string           `json:"description,omitempty"`
	Metadata       map[string]any   `json:"metadata,omitempty"`
	IsReversal     bool             `json:"isReversal"`
	ReversedFromID *string          `json:"reversedFromID,omitempty"`
	ReversalID     *string          `json:"reversalID,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	CreatedBy      string           `json:"createdBy"`
}

func ToPostingResponse(p *domain.LedgerPosting) PostingResponse {
	return PostingResponse{
		PostingID:      p.PostingID,
		EventID:        p.EventID,
		BatchID:        p.BatchID,
		LineNo:         p.LineNo,
		AccountID:      p.AccountID,
		Direction:      p.Direction,
		Amount:         money.Format(p.Amount),
		CurrencyCode:   p.CurrencyCode,
		PostingDate:    p.PostingDate,
		Description:    p.Description,
		Metadata:       p.Metadata,
		IsReversal:     p.IsReversal,
		ReversedFromID: p.ReversedFromID,
		ReversalID:     p.ReversalID,
		CreatedAt:      p.CreatedAt,
		CreatedBy:      p.CreatedBy,
	}
}

func ToPostingResponses(postings []domain.LedgerPosting) []PostingResponse {
	out := make([]PostingResponse, len(postings))
	for i := range postings {
		out[i] = ToPostingResponse(&postings[i])
	}
	return out
}

// ListPostingsResponse wraps postings of a document or batch.
type ListPostingsResponse struct {
	Postings []PostingResponse `json:"postings"`
}

// PostDocumentResponse is the outcome of posting a document.
type PostDocumentResponse struct {
	Document   DocumentResponse  `json:"document"`
	Event      EventResponse     `json:"event"`
	Postings   []PostingResponse `json:"postings"`
	BatchID    string            `json:"batchID"`
	IsBalanced bool              `json:"isBalanced"`
}

func ToPostDocumentResponse(r *domain.PostDocumentResult) PostDocumentResponse {
	return PostDocumentResponse{
		Document:   ToDocumentResponse(&r.Document),
		Event:      ToEventResponse(&r.Event),
		Postings:   ToPostingResponses(r.Postings),
		BatchID:    r.BatchID,
		IsBalanced: r.IsBalanced,
	}
}

// ReversalResponse is the outcome of a reversal.
type ReversalResponse struct {
	Event            EventResponse     `json:"event"`
	Postings         []PostingResponse `json:"postings"`
	BatchID          string            `json:"batchID"`
	OriginalEventID  string            `json:"originalEventID"`
	OriginalPostings []PostingResponse `json:"originalPostings"`
	Document         *DocumentResponse `json:"document,omitempty"`
	IsBalanced       bool              `json:"isBalanced"`
}

func ToReversalResponse(r *domain.ReversalResult) ReversalResponse {
	res := ReversalResponse{
		Event:            ToEventResponse(&r.Event),
		Postings:         ToPostingResponses(r.Postings),
		BatchID:          r.BatchID,
		OriginalEventID:  r.OriginalEvent.EventID,
		OriginalPostings: ToPostingResponses(r.OriginalPostings),
		IsBalanced:       r.IsBalanced,
	}
	if r.Document != nil {
		doc := ToDocumentResponse(r.Document)
		res.Document = &doc
	}
	return res
}

// ReversalStatusResponse combines a document's reversal status with the event chain.
type ReversalStatusResponse struct {
	DocumentID      string                `json:"documentID"`
	Status          domain.ReversalStatus `json:"status"`
	ReversalEventID *string               `json:"reversalEventID,omitempty"`
	ReversedFromID  *string               `json:"reversedFromID,omitempty"`
	Chain           []EventResponse       `json:"chain"`
}

// ReversalChainResponse is an original event followed by its reversals.
type ReversalChainResponse struct {
	Chain []EventResponse `json:"chain"`
}

// BatchBalanceResponse is the recomputed balance of a stored batch.
type BatchBalanceResponse struct {
	BatchID      string `json:"batchID"`
	LineCount    int    `json:"lineCount"`
	TotalDebits  string `json:"totalDebits"`
	TotalCredits string `json:"totalCredits"`
	Difference   string `json:"difference"`
	IsBalanced   bool   `json:"isBalanced"`
}

func ToBatchBalanceResponse(b *domain.BatchBalance) BatchBalanceResponse {
	return BatchBalanceResponse{
		BatchID:      b.BatchID,
		LineCount:    b.LineCount,
		TotalDebits:  money.Format(b.TotalDebits),
		TotalCredits: money.Format(b.TotalCredits),
		Difference:   money.Format(b.Difference),
		IsBalanced:   b.IsBalanced,
	}
}
