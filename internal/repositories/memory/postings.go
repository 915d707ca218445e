package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	"github.com/SscSPs/posting_spine/internal/utils/pagination"
)

func postingCursor(p domain.LedgerPosting) pagination.Cursor {
	return pagination.Cursor{Date: p.PostingDate, CreatedAt: p.CreatedAt, ID: p.PostingID}
}

func (st *state) postingsWhere(match func(p domain.LedgerPosting) bool) []domain.LedgerPosting {
	var result []domain.LedgerPosting
	for _, id := range st.postingOrder {
		if p := st.postings[id]; match(p) {
			result = append(result, p)
		}
	}
	return result
}

func byLineNo(postings []domain.LedgerPosting) {
	sort.SliceStable(postings, func(i, j int) bool {
		a, b := postings[i], postings[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		if a.BatchID != b.BatchID {
			return a.BatchID < b.BatchID
		}
		return a.LineNo < b.LineNo
	})
}

// InsertPostings validates every row against the stored ones before writing any of them.
func (v *view) InsertPostings(_ context.Context, postings []domain.LedgerPosting) error {
	return v.write(func(st *state) error {
		type batchLine struct {
			batchID string
			lineNo  int
		}
		taken := make(map[batchLine]bool)
		reversed := make(map[string]bool)
		for _, p := range st.postings {
			taken[batchLine{p.BatchID, p.LineNo}] = true
			if p.ReversedFromID != nil {
				reversed[*p.ReversedFromID] = true
			}
		}

		for _, p := range postings {
			if _, ok := st.postings[p.PostingID]; ok {
				return fmt.Errorf("%w: posting with ID %s already exists", apperrors.ErrDuplicate, p.PostingID)
			}
			key := batchLine{p.BatchID, p.LineNo}
			if taken[key] {
				return fmt.Errorf("%w: line %d of batch %s already exists", apperrors.ErrDuplicate, p.LineNo, p.BatchID)
			}
			taken[key] = true
			if p.ReversedFromID != nil {
				if reversed[*p.ReversedFromID] {
					return fmt.Errorf("%w: posting %s", apperrors.ErrAlreadyReversed, *p.ReversedFromID)
				}
				reversed[*p.ReversedFromID] = true
			}
		}

		for _, p := range postings {
			st.postings[p.PostingID] = p
			st.postingOrder = append(st.postingOrder, p.PostingID)
		}
		return nil
	})
}

func (v *view) LinkPostingReversal(_ context.Context, tenantID, originalPostingID, reversalPostingID string) error {
	return v.write(func(st *state) error {
		p, ok := st.postings[originalPostingID]
		if !ok || p.TenantID != tenantID {
			return fmt.Errorf("%w: posting %s", apperrors.ErrNotFound, originalPostingID)
		}
		if p.ReversalID != nil {
			return fmt.Errorf("%w: posting %s", apperrors.ErrAlreadyReversed, originalPostingID)
		}
		p.ReversalID = &reversalPostingID
		st.postings[originalPostingID] = p
		return nil
	})
}

func (v *view) FindPostingsByEvent(_ context.Context, tenantID, eventID string) ([]domain.LedgerPosting, error) {
	var postings []domain.LedgerPosting
	v.read(func(st *state) {
		postings = st.postingsWhere(func(p domain.LedgerPosting) bool {
			return p.TenantID == tenantID && p.EventID == eventID
		})
	})
	byLineNo(postings)
	return postings, nil
}

func (v *view) FindPostingsByBatch(_ context.Context, tenantID, batchID string) ([]domain.LedgerPosting, error) {
	var postings []domain.LedgerPosting
	v.read(func(st *state) {
		postings = st.postingsWhere(func(p domain.LedgerPosting) bool {
			return p.TenantID == tenantID && p.BatchID == batchID
		})
	})
	byLineNo(postings)
	return postings, nil
}

func (v *view) FindPostingsByEvents(_ context.Context, tenantID string, eventIDs []string) (map[string][]domain.LedgerPosting, error) {
	wanted := make(map[string]bool, len(eventIDs))
	for _, id := range eventIDs {
		wanted[id] = true
	}
	result := make(map[string][]domain.LedgerPosting, len(eventIDs))
	v.read(func(st *state) {
		for _, p := range st.postingsWhere(func(p domain.LedgerPosting) bool {
			return p.TenantID == tenantID && wanted[p.EventID]
		}) {
			result[p.EventID] = append(result[p.EventID], p)
		}
	})
	for _, postings := range result {
		byLineNo(postings)
	}
	return result, nil
}

func (v *view) ListPostingsByAccount(_ context.Context, tenantID, accountID string, filter domain.PostingFilter) ([]domain.LedgerPosting, *string, error) {
	after, err := decodeToken(filter.NextToken)
	if err != nil {
		return nil, nil, err
	}

	var postings []domain.LedgerPosting
	v.read(func(st *state) {
		postings = st.postingsWhere(func(p domain.LedgerPosting) bool {
			if p.TenantID != tenantID || p.AccountID != accountID || !filter.Dates.Contains(p.PostingDate) {
				return false
			}
			return after == nil || postingCursor(p).Compare(*after) > 0
		})
	})

	sort.SliceStable(postings, func(i, j int) bool {
		return postingCursor(postings[i]).Compare(postingCursor(postings[j])) < 0
	})
	page, next := paginate(postings, filter.Limit, postingCursor)
	return page, next, nil
}
