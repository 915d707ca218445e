package services

import (
	portsrepo "github.com/SscSPs/posting_spine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Reconciliation options wire the optional queue and result cache.
func NewServiceContainer(repos portsrepo.RepositoryProvider, reconciliationOpts ...ReconciliationOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Document = NewDocumentService(repos.DocumentRepo, repos.TxManager)
	container.Event = NewEventService(repos.EventRepo, repos.DocumentRepo, repos.TxManager)
	container.Posting = NewPostingService(repos.PostingRepo, repos.TxManager)
	container.PostingSpine = NewPostingSpineService(repos.TxManager)
	container.Reversal = NewReversalService(repos.DocumentRepo, repos.EventRepo, repos.TxManager)
	container.Reporting = NewReportingService(repos)
	container.Reconciliation = NewReconciliationService(container.Reporting, reconciliationOpts...)

	return container
}
