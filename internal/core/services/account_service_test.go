package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
	"github.com/SscSPs/posting_spine/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tenantID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
	tenantID string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
	suite.tenantID = uuid.NewString()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	input := portssvc.CreateAccountInput{
		TenantID:     suite.tenantID,
		Code:         " 1100 ",
		Name:         "Accounts Receivable",
		AccountType:  domain.Asset,
		CurrencyCode: "usd",
		UserID:       creatorUserID,
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, input)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdAccount)
	suite.NotEmpty(createdAccount.AccountID)
	suite.Equal("1100", createdAccount.Code)
	suite.Equal("USD", createdAccount.CurrencyCode)
	suite.Equal(suite.tenantID, createdAccount.TenantID)
	suite.True(createdAccount.IsActive)
	suite.Equal(creatorUserID, createdAccount.CreatedBy)
	suite.WithinDuration(time.Now(), createdAccount.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidType() {
	ctx := context.Background()
	createdAccount, err := suite.service.CreateAccount(ctx, portssvc.CreateAccountInput{
		TenantID:    suite.tenantID,
		Code:        "9000",
		Name:        "Mystery",
		AccountType: domain.AccountType("contra"),
	})

	suite.Nil(createdAccount)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, portssvc.CreateAccountInput{
		TenantID:    suite.tenantID,
		Code:        "4000",
		Name:        "Revenue",
		AccountType: domain.Revenue,
	})

	suite.Nil(createdAccount)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, suite.tenantID, testID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, suite.tenantID, testID)

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListAccounts", ctx, suite.tenantID).Return(nil, assert.AnError).Once()

	accounts, err := suite.service.ListAccounts(ctx, suite.tenantID)

	suite.Nil(accounts)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *AccountServiceTestSuite) TestListAccounts_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockRepo.On("ListAccounts", ctx, suite.tenantID).Return(nil, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, suite.tenantID)

	suite.NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
