package worker

import (
	"log/slog"

	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
	"github.com/hibiken/asynq"
)

// RegisterHandlers binds every task type the worker understands to mux.
func RegisterHandlers(mux *asynq.ServeMux, reconciliation portssvc.ReconciliationSvc, logger *slog.Logger) {
	mux.HandleFunc(TypeBooksVerify, NewBooksVerifyHandler(reconciliation, logger).Handle)
}
