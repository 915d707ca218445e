package pgsql_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	portsrepo "github.com/SscSPs/posting_spine/internal/core/ports/repositories"
	"github.com/SscSPs/posting_spine/internal/repositories/database/pgsql"
	"github.com/SscSPs/posting_spine/pkg/database"
	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// PgsqlStoreTestSuite runs the repositories against a real PostgreSQL database.
// Set PGSQL_URL to a disposable database to run it.
type PgsqlStoreTestSuite struct {
	suite.Suite
	ctx      context.Context
	pool     *pgxpool.Pool
	repos    portsrepo.RepositoryProvider
	tenantID string
	userID   string
	now      time.Time
	cash     domain.Account
	revenue  domain.Account
}

func TestPgsqlStore(t *testing.T) {
	url := os.Getenv("PGSQL_URL")
	if url == "" {
		t.Skip("PGSQL_URL not set")
	}
	applyMigrations(t, url)
	suite.Run(t, &PgsqlStoreTestSuite{})
}

func applyMigrations(t *testing.T, url string) {
	db, err := sql.Open("pgx", url)
	require.NoError(t, err)
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	require.NoError(t, err)
	m, err := migrate.NewWithDatabaseInstance("file://../../../../migrations", "postgres", driver)
	require.NoError(t, err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("migrations: %v", err)
	}
}

func (s *PgsqlStoreTestSuite) SetupSuite() {
	s.ctx = context.Background()
	pool, err := database.NewPgxPool(s.ctx, os.Getenv("PGSQL_URL"), true)
	s.Require().NoError(err)
	s.pool = pool
	s.repos = pgsql.NewRepositoryProvider(pool)
}

func (s *PgsqlStoreTestSuite) TearDownSuite() {
	database.ClosePgxPool(s.pool)
}

// Every test gets its own tenant so rows left behind by earlier tests never collide.
func (s *PgsqlStoreTestSuite) SetupTest() {
	s.tenantID = uuid.NewString()
	s.userID = "user-1"
	s.now = time.Now().UTC().Truncate(time.Microsecond)
	s.cash = s.saveAccount("1000", domain.Asset)
	s.revenue = s.saveAccount("4000", domain.Revenue)
}

func (s *PgsqlStoreTestSuite) audit() domain.AuditFields {
	return domain.AuditFields{CreatedAt: s.now, CreatedBy: s.userID, LastUpdatedAt: s.now, LastUpdatedBy: s.userID}
}

func (s *PgsqlStoreTestSuite) saveAccount(code string, accountType domain.AccountType) domain.Account {
	account := domain.Account{
		AccountID:    uuid.NewString(),
		TenantID:     s.tenantID,
		Code:         code,
		Name:         code,
		AccountType:  accountType,
		CurrencyCode: "USD",
		IsActive:     true,
		AuditFields:  s.audit(),
	}
	s.Require().NoError(s.repos.AccountRepo.SaveAccount(s.ctx, account))
	return account
}

func (s *PgsqlStoreTestSuite) newDocument() domain.Document {
	return domain.Document{
		DocumentID:   uuid.NewString(),
		TenantID:     s.tenantID,
		DocumentType: domain.DocumentInvoice,
		State:        domain.StatePosted,
		AuditFields:  s.audit(),
	}
}

func (s *PgsqlStoreTestSuite) newEvent(documentID string, reversedFrom *string) domain.EconomicEvent {
	return domain.EconomicEvent{
		EventID:        uuid.NewString(),
		TenantID:       s.tenantID,
		DocumentID:     documentID,
		EventType:      domain.EventRevenue,
		Description:    "invoice",
		EventDate:      s.now,
		IsReversal:     reversedFrom != nil,
		ReversedFromID: reversedFrom,
		CreatedAt:      s.now,
		CreatedBy:      s.userID,
	}
}

func (s *PgsqlStoreTestSuite) batch(eventID string, reversedFrom ...string) []domain.LedgerPosting {
	batchID := uuid.NewString()
	amount := decimal.RequireFromString("125.5000")
	lines := []struct {
		account   string
		direction domain.Direction
	}{
		{s.cash.AccountID, domain.Debit},
		{s.revenue.AccountID, domain.Credit},
	}
	postings := make([]domain.LedgerPosting, len(lines))
	for i, l := range lines {
		postings[i] = domain.LedgerPosting{
			PostingID:    uuid.NewString(),
			TenantID:     s.tenantID,
			EventID:      eventID,
			BatchID:      batchID,
			LineNo:       i + 1,
			AccountID:    l.account,
			Direction:    l.direction,
			Amount:       amount,
			CurrencyCode: "USD",
			PostingDate:  s.now,
			CreatedAt:    s.now,
			CreatedBy:    s.userID,
		}
		if i < len(reversedFrom) {
			postings[i].IsReversal = true
			postings[i].ReversedFromID = &reversedFrom[i]
		}
	}
	return postings
}

// seed stores a document with one event and its balanced batch.
func (s *PgsqlStoreTestSuite) seed() (domain.Document, domain.EconomicEvent, []domain.LedgerPosting) {
	doc := s.newDocument()
	event := s.newEvent(doc.DocumentID, nil)
	postings := s.batch(event.EventID)
	err := s.repos.TxManager.WithTx(s.ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if err := repos.Documents().SaveDocument(ctx, doc); err != nil {
			return err
		}
		if _, err := repos.Events().InsertEvent(ctx, event); err != nil {
			return err
		}
		return repos.Postings().InsertPostings(ctx, postings)
	})
	s.Require().NoError(err)
	return doc, event, postings
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func (s *PgsqlStoreTestSuite) TestWithTxRollsBackOnError() {
	doc := s.newDocument()
	event := s.newEvent(doc.DocumentID, nil)

	err := s.repos.TxManager.WithTx(s.ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if err := repos.Documents().SaveDocument(ctx, doc); err != nil {
			return err
		}
		if _, err := repos.Events().InsertEvent(ctx, event); err != nil {
			return err
		}
		return apperrors.ErrUnbalancedPostings
	})
	s.ErrorIs(err, apperrors.ErrUnbalancedPostings)

	_, err = s.repos.DocumentRepo.FindDocumentByID(s.ctx, s.tenantID, doc.DocumentID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.repos.EventRepo.FindEventByID(s.ctx, s.tenantID, event.EventID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *PgsqlStoreTestSuite) TestFindDocumentForUpdateHoldsRowLock() {
	doc, _, _ := s.seed()

	err := s.repos.TxManager.WithTx(s.ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		locked, err := repos.Documents().FindDocumentByIDForUpdate(ctx, s.tenantID, doc.DocumentID)
		s.Require().NoError(err)
		s.Equal(domain.StatePosted, locked.State)

		_, err = s.pool.Exec(s.ctx,
			`SELECT document_id FROM documents WHERE document_id = $1 FOR UPDATE NOWAIT;`, doc.DocumentID)
		s.Equal("55P03", pgCode(err), "a second writer must not get the row while the lock is held")
		return nil
	})
	s.Require().NoError(err)

	_, err = s.pool.Exec(s.ctx,
		`SELECT document_id FROM documents WHERE document_id = $1 FOR UPDATE NOWAIT;`, doc.DocumentID)
	s.NoError(err, "the lock is released on commit")
}

func (s *PgsqlStoreTestSuite) TestInsertPostingsBatch() {
	_, event, postings := s.seed()

	stored, err := s.repos.PostingRepo.FindPostingsByBatch(s.ctx, s.tenantID, postings[0].BatchID)
	s.Require().NoError(err)
	s.Require().Len(stored, 2)
	for i, p := range stored {
		s.Equal(i+1, p.LineNo)
		s.Equal(event.EventID, p.EventID)
		s.True(p.Amount.Equal(decimal.RequireFromString("125.5")))
		s.False(p.IsReversal)
		s.Nil(p.ReversalID)
	}
	s.Equal(domain.Debit, stored[0].Direction)
	s.Equal(s.cash.AccountID, stored[0].AccountID)

	// A bad line fails the whole batch and the transaction keeps nothing of it.
	broken := s.batch(event.EventID)
	broken[1].LineNo = broken[0].LineNo
	err = s.repos.TxManager.WithTx(s.ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		return repos.Postings().InsertPostings(ctx, broken)
	})
	s.Require().Error(err)
	left, err := s.repos.PostingRepo.FindPostingsByBatch(s.ctx, s.tenantID, broken[0].BatchID)
	s.Require().NoError(err)
	s.Empty(left)

	s.ErrorIs(s.repos.PostingRepo.InsertPostings(s.ctx, nil), apperrors.ErrEmptyPostingSet)
}

func (s *PgsqlStoreTestSuite) TestReversalLinksAreSetOnce() {
	doc, event, postings := s.seed()
	reversal := s.newEvent(doc.DocumentID, &event.EventID)
	reversalPostings := s.batch(reversal.EventID, postings[0].PostingID, postings[1].PostingID)

	err := s.repos.TxManager.WithTx(s.ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if _, err := repos.Events().InsertEvent(ctx, reversal); err != nil {
			return err
		}
		if err := repos.Events().LinkEventReversal(ctx, s.tenantID, event.EventID, reversal.EventID); err != nil {
			return err
		}
		if err := repos.Postings().InsertPostings(ctx, reversalPostings); err != nil {
			return err
		}
		for i, p := range postings {
			if err := repos.Postings().LinkPostingReversal(ctx, s.tenantID, p.PostingID, reversalPostings[i].PostingID); err != nil {
				return err
			}
		}
		return nil
	})
	s.Require().NoError(err)

	original, err := s.repos.EventRepo.FindEventByID(s.ctx, s.tenantID, event.EventID)
	s.Require().NoError(err)
	s.Require().NotNil(original.ReversalID)
	s.Equal(reversal.EventID, *original.ReversalID)
	s.Equal(event.Description, original.Description)
	s.True(event.EventDate.Equal(original.EventDate))

	other := uuid.NewString()
	err = s.repos.EventRepo.LinkEventReversal(s.ctx, s.tenantID, event.EventID, other)
	s.ErrorIs(err, apperrors.ErrAlreadyReversed)
	err = s.repos.PostingRepo.LinkPostingReversal(s.ctx, s.tenantID, postings[0].PostingID, other)
	s.ErrorIs(err, apperrors.ErrAlreadyReversed)
	err = s.repos.EventRepo.LinkEventReversal(s.ctx, s.tenantID, uuid.NewString(), other)
	s.ErrorIs(err, apperrors.ErrNotFound)

	// The partial unique index refuses a second reversal of the same posting.
	again := s.batch(reversal.EventID, postings[0].PostingID)
	err = s.repos.PostingRepo.InsertPostings(s.ctx, again)
	s.ErrorIs(err, apperrors.ErrAlreadyReversed)

	linked, err := s.repos.PostingRepo.FindPostingsByEvent(s.ctx, s.tenantID, event.EventID)
	s.Require().NoError(err)
	for i, p := range linked {
		s.Require().NotNil(p.ReversalID)
		s.Equal(reversalPostings[i].PostingID, *p.ReversalID)
	}
}

func (s *PgsqlStoreTestSuite) TestDocumentReversalLinkIsSetOnce() {
	doc, _, _ := s.seed()
	reversal := s.newDocument()
	reversal.ReversedFromID = &doc.DocumentID
	s.Require().NoError(s.repos.DocumentRepo.SaveDocument(s.ctx, reversal))

	s.Require().NoError(s.repos.DocumentRepo.LinkDocumentReversal(s.ctx, s.tenantID, doc.DocumentID, reversal.DocumentID, s.userID, s.now))
	err := s.repos.DocumentRepo.LinkDocumentReversal(s.ctx, s.tenantID, doc.DocumentID, uuid.NewString(), s.userID, s.now)
	s.ErrorIs(err, apperrors.ErrAlreadyReversed)

	stored, err := s.repos.DocumentRepo.FindDocumentByID(s.ctx, s.tenantID, doc.DocumentID)
	s.Require().NoError(err)
	s.Require().NotNil(stored.ReversalID)
	s.Equal(reversal.DocumentID, *stored.ReversalID)
}

func (s *PgsqlStoreTestSuite) TestLedgerRowsAreAppendOnly() {
	_, event, postings := s.seed()

	statements := []struct {
		name  string
		query string
		id    string
	}{
		{"event description", `UPDATE economic_events SET description = 'edited' WHERE event_id = $1;`, event.EventID},
		{"event delete", `DELETE FROM economic_events WHERE event_id = $1;`, event.EventID},
		{"posting amount", `UPDATE ledger_postings SET amount = 1 WHERE posting_id = $1;`, postings[0].PostingID},
		{"posting delete", `DELETE FROM ledger_postings WHERE posting_id = $1;`, postings[0].PostingID},
		{"posting link cleared", `UPDATE ledger_postings SET reversal_id = NULL WHERE posting_id = $1;`, postings[0].PostingID},
	}
	for _, st := range statements {
		_, err := s.pool.Exec(s.ctx, st.query, st.id)
		s.Error(err, st.name)
		s.Contains(err.Error(), "append-only", st.name)
	}

	// Only the one-time reversal link may change.
	_, err := s.pool.Exec(s.ctx, `UPDATE ledger_postings SET reversal_id = $2 WHERE posting_id = $1;`,
		postings[1].PostingID, postings[0].PostingID)
	s.NoError(err)
	_, err = s.pool.Exec(s.ctx, `UPDATE ledger_postings SET reversal_id = $2 WHERE posting_id = $1;`,
		postings[1].PostingID, postings[1].PostingID)
	s.Error(err, "a set link cannot be rewritten")

	stored, err := s.repos.EventRepo.FindEventByID(s.ctx, s.tenantID, event.EventID)
	s.Require().NoError(err)
	s.Equal("invoice", stored.Description)
}
