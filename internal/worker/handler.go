package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
	"github.com/SscSPs/posting_spine/internal/middleware"
	"github.com/hibiken/asynq"
)

// BooksVerifyHandler runs queued books verifications and stores their results.
type BooksVerifyHandler struct {
	reconciliation portssvc.ReconciliationSvc
	logger         *slog.Logger
}

func NewBooksVerifyHandler(reconciliation portssvc.ReconciliationSvc, logger *slog.Logger) *BooksVerifyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BooksVerifyHandler{reconciliation: reconciliation, logger: logger}
}

func (h *BooksVerifyHandler) Handle(ctx context.Context, task *asynq.Task) error {
	var payload BooksVerifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid books verification payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.TenantID == "" {
		return fmt.Errorf("books verification payload has no tenant: %w", asynq.SkipRetry)
	}

	logger := h.logger.With(slog.String("task_type", task.Type()), slog.String("tenant_id", payload.TenantID))
	if taskID, ok := asynq.GetTaskID(ctx); ok {
		logger = logger.With(slog.String("task_id", taskID))
	}
	ctx = middleware.WithLogger(ctx, logger)

	result, err := h.reconciliation.RunVerification(ctx, payload.TenantID, payload.DateRange())
	if err != nil {
		logger.Error("Books verification failed", slog.String("error", err.Error()))
		return err
	}

	if result.IsBalanced {
		logger.Info("Books verified",
			slog.Int("batch_count", result.BatchCount),
			slog.String("total_debits", result.TotalDebits.StringFixed(4)))
	} else {
		batchIDs := make([]string, len(result.UnbalancedBatches))
		for i, b := range result.UnbalancedBatches {
			batchIDs[i] = b.BatchID
		}
		logger.Error("Books are not balanced",
			slog.Int("batch_count", result.BatchCount),
			slog.Any("unbalanced_batch_ids", batchIDs),
			slog.String("difference", result.Difference.StringFixed(4)))
	}
	return nil
}
