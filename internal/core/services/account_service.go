package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	portsrepo "github.com/SscSPs/posting_spine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
	"github.com/google/uuid"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, input portssvc.CreateAccountInput) (*domain.Account, error) {
	code := strings.TrimSpace(input.Code)
	name := strings.TrimSpace(input.Name)
	switch {
	case input.TenantID == "":
		return nil, fmt.Errorf("%w: tenant ID is required", apperrors.ErrValidation)
	case code == "" || name == "":
		return nil, fmt.Errorf("%w: account code and name are required", apperrors.ErrValidation)
	case !input.AccountType.IsValid():
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, input.AccountType)
	}

	now := timeNow()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		TenantID:     input.TenantID,
		Code:         code,
		Name:         name,
		AccountType:  input.AccountType,
		CurrencyCode: strings.ToUpper(strings.TrimSpace(input.CurrencyCode)),
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     input.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: input.UserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_code", account.Code),
			slog.String("tenant_id", input.TenantID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("tenant_id", input.TenantID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.String("account_id", accountID))
		}
		return nil, err // Propagate error (including NotFound)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to list accounts for tenant %s: %w", tenantID, err)
	}
	if accounts == nil {
		return []domain.Account{}, nil // Return empty slice if repo returns nil
	}
	return accounts, nil
}
