package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	portsrepo "github.com/SscSPs/posting_spine/internal/core/ports/repositories"
	"github.com/SscSPs/posting_spine/internal/models"
	"github.com/SscSPs/posting_spine/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(db querier) *PgxDocumentRepository {
	return &PgxDocumentRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

const documentColumns = `document_id, tenant_id, document_type, state, reversed_from_id, reversal_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanDocument(row pgx.Row) (domain.Document, error) {
	var m models.Document
	err := row.Scan(
		&m.DocumentID,
		&m.TenantID,
		&m.DocumentType,
		&m.State,
		&m.ReversedFromID,
		&m.ReversalID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Document{}, err
	}
	return mapping.ToDomainDocument(m), nil
}

func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, document domain.Document) error {
	m := mapping.ToModelDocument(document)
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		m.DocumentID,
		m.TenantID,
		m.DocumentType,
		m.State,
		m.ReversedFromID,
		m.ReversalID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "document "+m.DocumentID)
	}
	return nil
}

func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, tenantID, documentID string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE tenant_id = $1 AND document_id = $2;`
	doc, err := scanDocument(r.db.QueryRow(ctx, query, tenantID, documentID))
	if err != nil {
		return nil, mapReadError(err, "document "+documentID)
	}
	return &doc, nil
}

// FindDocumentByIDForUpdate reads the document and holds its row lock until the
// surrounding transaction ends. Outside a transaction the lock is released at once.
func (r *PgxDocumentRepository) FindDocumentByIDForUpdate(ctx context.Context, tenantID, documentID string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE tenant_id = $1 AND document_id = $2 FOR UPDATE;`
	doc, err := scanDocument(r.db.QueryRow(ctx, query, tenantID, documentID))
	if err != nil {
		return nil, mapReadError(err, "document "+documentID)
	}
	return &doc, nil
}

func (r *PgxDocumentRepository) UpdateDocumentState(ctx context.Context, tenantID, documentID string, state domain.DocumentState, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE documents
		SET state = $3, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $1 AND document_id = $2;
	`
	tag, err := r.db.Exec(ctx, query, tenantID, documentID, mapping.ToModelDocumentState(state), updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update state of document %s: %w", documentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: document %s", apperrors.ErrNotFound, documentID)
	}
	return nil
}

// LinkDocumentReversal sets the reversal link once. A second call reports
// ErrAlreadyReversed.
func (r *PgxDocumentRepository) LinkDocumentReversal(ctx context.Context, tenantID, documentID, reversalID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE documents
		SET reversal_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $1 AND document_id = $2 AND reversal_id IS NULL;
	`
	tag, err := r.db.Exec(ctx, query, tenantID, documentID, reversalID, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to link reversal of document %s: %w", documentID, err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.FindDocumentByID(ctx, tenantID, documentID); err != nil {
			return err
		}
		return fmt.Errorf("%w: document %s", apperrors.ErrAlreadyReversed, documentID)
	}
	return nil
}
