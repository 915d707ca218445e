package services

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/posting_spine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountInput describes a new chart-of-accounts entry.
type CreateAccountInput struct {
	TenantID     string
	Code         string
	Name         string
	AccountType  domain.AccountType
	CurrencyCode string
	UserID       string
}

// CreateDocumentInput describes a document saved for the first time.
type CreateDocumentInput struct {
	TenantID       string
	DocumentType   domain.DocumentType
	ReversedFromID *string
	UserID         string
}

// CreateEventInput describes one economic event to append.
type CreateEventInput struct {
	TenantID       string
	DocumentID     string
	EventType      domain.EventType
	Description    string
	EventDate      time.Time
	Amount         *decimal.Decimal
	CurrencyCode   *string
	EventData      json.RawMessage
	AuditContext   domain.AuditContext
	ReversedFromID *string
	UserID         string
}

// CreatePostingsInput describes a posting set tied to one event.
type CreatePostingsInput struct {
	TenantID     string
	EventID      string
	Lines        []domain.PostingLine
	PostingDate  time.Time
	CurrencyCode string
	UserID       string
}

// PostDocumentInput is everything the posting spine needs to post an approved document.
type PostDocumentInput struct {
	TenantID     string
	DocumentID   string
	UserID       string
	PostingDate  time.Time
	EventType    domain.EventType
	Description  string
	CurrencyCode string
	EventData    json.RawMessage
	Lines        []domain.PostingLine
	AuditContext domain.AuditContextInput
}

// ReversalEntryInput asks for the reversal of one economic event.
type ReversalEntryInput struct {
	TenantID        string
	OriginalEventID string
	Reason          string
	ReversalDate    time.Time
	UserID          string
	AuditContext    *domain.AuditContextInput
}

// DocumentReversalInput asks for the reversal of a posted document.
type DocumentReversalInput struct {
	TenantID     string
	DocumentID   string
	Reason       string
	ReversalDate time.Time
	UserID       string
	AuditContext *domain.AuditContextInput
}
