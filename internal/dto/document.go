package dto

import (
	"time"

	"github.com/SscSPs/posting_spine/internal/core/domain"
)

// CreateDocumentRequest creates a draft document.
type CreateDocumentRequest struct {
	DocumentType domain.DocumentType `json:"documentType" binding:"required,oneof=invoice bill payment journal"`
}

// TransitionDocumentRequest moves a document to another lifecycle state.
type TransitionDocumentRequest struct {
	TargetState domain.DocumentState `json:"targetState" binding:"required"`
}

// DocumentResponse is a document with the states it may move to next.
type DocumentResponse struct {
	DocumentID         string                 `json:"documentID"`
	TenantID           string                 `json:"tenantID"`
	DocumentType       domain.DocumentType    `json:"documentType"`
	State              domain.DocumentState   `json:"state"`
	AllowedTransitions []domain.DocumentState `json:"allowedTransitions"`
	ReversedFromID     *string                `json:"reversedFromID,omitempty"`
	ReversalID         *string                `json:"reversalID,omitempty"`
	CreatedAt          time.Time              `json:"createdAt"`
	CreatedBy          string                 `json:"createdBy"`
	LastUpdatedAt      time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy      string                 `json:"lastUpdatedBy"`
}

func ToDocumentResponse(doc *domain.Document) DocumentResponse {
	return DocumentResponse{
		DocumentID:         doc.DocumentID,
		TenantID:           doc.TenantID,
		DocumentType:       doc.DocumentType,
		State:              doc.State,
		AllowedTransitions: domain.AllowedTransitions(doc.State),
		ReversedFromID:     doc.ReversedFromID,
		ReversalID:         doc.ReversalID,
		CreatedAt:          doc.CreatedAt,
		CreatedBy:          doc.CreatedBy,
		LastUpdatedAt:      doc.LastUpdatedAt,
		LastUpdatedBy:      doc.LastUpdatedBy,
	}
}

// AllowedTransitionsResponse lists the states reachable from State in one step.
type AllowedTransitionsResponse struct {
	State              domain.DocumentState   `json:"state"`
	AllowedTransitions []domain.DocumentState `json:"allowedTransitions"`
	IsTerminal         bool                   `json:"isTerminal"`
}
