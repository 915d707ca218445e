package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
)

func (v *view) SaveAccount(_ context.Context, account domain.Account) error {
	return v.write(func(st *state) error {
		if _, ok := st.accounts[account.AccountID]; ok {
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, account.AccountID)
		}
		for _, existing := range st.accounts {
			if existing.TenantID == account.TenantID && existing.Code == account.Code {
				return fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, account.Code)
			}
		}
		st.accounts[account.AccountID] = account
		return nil
	})
}

func (v *view) FindAccountByID(_ context.Context, tenantID, accountID string) (*domain.Account, error) {
	var found *domain.Account
	v.read(func(st *state) {
		if a, ok := st.accounts[accountID]; ok && a.TenantID == tenantID {
			found = &a
		}
	})
	if found == nil {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return found, nil
}

func (v *view) FindAccountsByIDs(_ context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	result := make(map[string]domain.Account, len(accountIDs))
	v.read(func(st *state) {
		for _, id := range accountIDs {
			if a, ok := st.accounts[id]; ok && a.TenantID == tenantID {
				result[id] = a
			}
		}
	})
	return result, nil
}

func (v *view) ListAccounts(_ context.Context, tenantID string) ([]domain.Account, error) {
	var accounts []domain.Account
	v.read(func(st *state) {
		for _, a := range st.accounts {
			if a.TenantID == tenantID {
				accounts = append(accounts, a)
			}
		}
	})
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Code < accounts[j].Code })
	return accounts, nil
}
