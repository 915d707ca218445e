package worker

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/posting_spine/internal/core/domain"
	"github.com/hibiken/asynq"
)

// TypeBooksVerify is the asynq task type of a background books verification.
const TypeBooksVerify = "books:verify"

// QueueReconciliation is the queue verification tasks are put on.
const QueueReconciliation = "default"

// BooksVerifyPayload is the JSON body of a books:verify task.
type BooksVerifyPayload struct {
	TenantID string     `json:"tenant_id"`
	From     *time.Time `json:"from,omitempty"`
	To       *time.Time `json:"to,omitempty"`
}

// DateRange returns the payload dates as a domain range.
func (p BooksVerifyPayload) DateRange() domain.DateRange {
	return domain.DateRange{From: p.From, To: p.To}
}

// NewBooksVerifyTask builds a books:verify task for tenantID.
func NewBooksVerifyTask(tenantID string, dates domain.DateRange) (*asynq.Task, error) {
	payload, err := json.Marshal(BooksVerifyPayload{TenantID: tenantID, From: dates.From, To: dates.To})
	if err != nil {
		return nil, fmt.Errorf("failed to encode books verification payload: %w", err)
	}
	return asynq.NewTask(TypeBooksVerify, payload, asynq.MaxRetry(5), asynq.Timeout(10*time.Minute)), nil
}
