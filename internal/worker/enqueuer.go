package worker

import (
	"context"
	"fmt"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
	"github.com/hibiken/asynq"
)

// taskClient is the part of *asynq.Client the enqueuer uses.
type taskClient interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Enqueuer puts books verifications on the asynq queue.
type Enqueuer struct {
	client taskClient
}

// NewEnqueuer wraps client, usually an *asynq.Client.
func NewEnqueuer(client taskClient) *Enqueuer {
	return &Enqueuer{client: client}
}

var _ portssvc.VerificationEnqueuer = (*Enqueuer)(nil)

func (e *Enqueuer) EnqueueBooksVerification(ctx context.Context, tenantID string, dates domain.DateRange) (string, error) {
	if tenantID == "" {
		return "", fmt.Errorf("%w: tenant ID is required", apperrors.ErrValidation)
	}
	task, err := NewBooksVerifyTask(tenantID, dates)
	if err != nil {
		return "", err
	}
	info, err := e.client.EnqueueContext(ctx, task, asynq.Queue(QueueReconciliation))
	if err != nil {
		return "", fmt.Errorf("failed to enqueue %s task: %w", TypeBooksVerify, err)
	}
	return info.ID, nil
}
