package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo   AccountRepositoryFacade
	DocumentRepo  DocumentRepositoryFacade
	EventRepo     EconomicEventRepositoryFacade
	PostingRepo   LedgerPostingRepositoryFacade
	ReportingRepo ReportingRepository
	TxManager     TransactionManager
}
