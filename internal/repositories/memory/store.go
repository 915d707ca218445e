// Package memory provides an in-process implementation of the repository ports.
// It backs the service tests and local runs without PostgreSQL. Writes issued
// through WithTx are atomic: the store is locked for the whole callback and the
// previous state is restored when the callback fails.
package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	portsrepo "github.com/SscSPs/posting_spine/internal/core/ports/repositories"
	"github.com/SscSPs/posting_spine/internal/utils/pagination"
)

// Store holds every table of the posting spine in maps guarded by one mutex.
type Store struct {
	mu   sync.RWMutex
	data state
}

type state struct {
	accounts     map[string]domain.Account
	documents    map[string]domain.Document
	events       map[string]domain.EconomicEvent
	eventOrder   []string
	postings     map[string]domain.LedgerPosting
	postingOrder []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: state{
		accounts:  make(map[string]domain.Account),
		documents: make(map[string]domain.Document),
		events:    make(map[string]domain.EconomicEvent),
		postings:  make(map[string]domain.LedgerPosting),
	}}
}

// NewRepositoryProvider exposes the store through the repository ports.
func NewRepositoryProvider(s *Store) *portsrepo.RepositoryProvider {
	v := &view{s: s}
	return &portsrepo.RepositoryProvider{
		AccountRepo:   v,
		DocumentRepo:  v,
		EventRepo:     v,
		PostingRepo:   v,
		ReportingRepo: v,
		TxManager:     s,
	}
}

var _ portsrepo.TransactionManager = (*Store)(nil)

// WithTx runs fn while holding the write lock. On error the snapshot taken
// before fn is restored, so none of its writes remain visible.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(ctx, &view{s: s, inTx: true}); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

func (st state) clone() state {
	return state{
		accounts:     maps.Clone(st.accounts),
		documents:    maps.Clone(st.documents),
		events:       maps.Clone(st.events),
		eventOrder:   append([]string(nil), st.eventOrder...),
		postings:     maps.Clone(st.postings),
		postingOrder: append([]string(nil), st.postingOrder...),
	}
}

// view implements every repository port. Inside a transaction the caller
// already owns the write lock, so a view created by WithTx never locks.
type view struct {
	s    *Store
	inTx bool
}

var (
	_ portsrepo.AccountRepositoryFacade       = (*view)(nil)
	_ portsrepo.DocumentRepositoryFacade      = (*view)(nil)
	_ portsrepo.EconomicEventRepositoryFacade = (*view)(nil)
	_ portsrepo.LedgerPostingRepositoryFacade = (*view)(nil)
	_ portsrepo.ReportingRepository           = (*view)(nil)
	_ portsrepo.TxRepositories                = (*view)(nil)
)

func (v *view) Documents() portsrepo.DocumentRepositoryFacade     { return v }
func (v *view) Events() portsrepo.EconomicEventRepositoryFacade   { return v }
func (v *view) Postings() portsrepo.LedgerPostingRepositoryFacade { return v }
func (v *view) Accounts() portsrepo.AccountReader                 { return v }

func (v *view) read(fn func(st *state)) {
	if !v.inTx {
		v.s.mu.RLock()
		defer v.s.mu.RUnlock()
	}
	fn(&v.s.data)
}

func (v *view) write(fn func(st *state) error) error {
	if !v.inTx {
		v.s.mu.Lock()
		defer v.s.mu.Unlock()
	}
	return fn(&v.s.data)
}

// paginate cuts rows, already sorted and filtered past the cursor, into one page.
// A non-positive limit returns everything.
func paginate[T any](rows []T, limit int, cursorOf func(T) pagination.Cursor) ([]T, *string) {
	if limit <= 0 || len(rows) <= limit {
		return rows, nil
	}
	page := rows[:limit]
	token := pagination.EncodeCursor(cursorOf(page[len(page)-1]))
	return page, &token
}

func decodeToken(token *string) (*pagination.Cursor, error) {
	if token == nil || *token == "" {
		return nil, nil
	}
	c, err := pagination.DecodeCursor(*token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return &c, nil
}
