package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReconciliationSvc struct {
	mock.Mock
}

func (m *MockReconciliationSvc) EnqueueVerification(ctx context.Context, tenantID string, dates domain.DateRange) (string, error) {
	args := m.Called(ctx, tenantID, dates)
	return args.String(0), args.Error(1)
}

func (m *MockReconciliationSvc) RunVerification(ctx context.Context, tenantID string, dates domain.DateRange) (*domain.BooksVerification, error) {
	args := m.Called(ctx, tenantID, dates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BooksVerification), args.Error(1)
}

func (m *MockReconciliationSvc) GetLatestVerification(ctx context.Context, tenantID string) (*domain.BooksVerification, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BooksVerification), args.Error(1)
}

type fakeTaskClient struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
	err   error
}

func (c *fakeTaskClient) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.tasks = append(c.tasks, task)
	c.opts = append(c.opts, opts)
	return &asynq.TaskInfo{ID: "task-1", Type: task.Type(), Queue: QueueReconciliation}, nil
}

func TestBooksVerifyTask_RoundTrip(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	task, err := NewBooksVerifyTask("t1", domain.DateRange{From: &from})
	require.NoError(t, err)
	assert.Equal(t, TypeBooksVerify, task.Type())

	var payload BooksVerifyPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, "t1", payload.TenantID)
	require.NotNil(t, payload.From)
	assert.True(t, payload.From.Equal(from))
	assert.Nil(t, payload.To)
}

func TestHandle_RunsVerification(t *testing.T) {
	svc := new(MockReconciliationSvc)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	task, err := NewBooksVerifyTask("t1", domain.DateRange{To: &to})
	require.NoError(t, err)

	svc.On("RunVerification", mock.Anything, "t1", mock.MatchedBy(func(r domain.DateRange) bool {
		return r.From == nil && r.To != nil && r.To.Equal(to)
	})).Return(&domain.BooksVerification{TenantID: "t1", BatchCount: 2, IsBalanced: true, TotalDebits: decimal.NewFromInt(10)}, nil).Once()

	require.NoError(t, NewBooksVerifyHandler(svc, nil).Handle(context.Background(), task))
	svc.AssertExpectations(t)
}

func TestHandle_UnbalancedBooksIsNotATaskFailure(t *testing.T) {
	svc := new(MockReconciliationSvc)
	task, err := NewBooksVerifyTask("t1", domain.DateRange{})
	require.NoError(t, err)
	svc.On("RunVerification", mock.Anything, "t1", domain.DateRange{}).
		Return(&domain.BooksVerification{TenantID: "t1", IsBalanced: false, Difference: decimal.RequireFromString("0.01")}, nil).Once()

	assert.NoError(t, NewBooksVerifyHandler(svc, nil).Handle(context.Background(), task))
}

func TestHandle_RetriesServiceErrors(t *testing.T) {
	svc := new(MockReconciliationSvc)
	task, err := NewBooksVerifyTask("t1", domain.DateRange{})
	require.NoError(t, err)
	boom := errors.New("connection reset")
	svc.On("RunVerification", mock.Anything, "t1", domain.DateRange{}).Return(nil, boom).Once()

	err = NewBooksVerifyHandler(svc, nil).Handle(context.Background(), task)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestHandle_SkipsRetryOnBadPayload(t *testing.T) {
	svc := new(MockReconciliationSvc)
	h := NewBooksVerifyHandler(svc, nil)

	err := h.Handle(context.Background(), asynq.NewTask(TypeBooksVerify, []byte("{not json")))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	err = h.Handle(context.Background(), asynq.NewTask(TypeBooksVerify, []byte(`{"from":null}`)))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	svc.AssertNotCalled(t, "RunVerification", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterHandlers_RoutesBooksVerify(t *testing.T) {
	svc := new(MockReconciliationSvc)
	svc.On("RunVerification", mock.Anything, "t1", domain.DateRange{}).Return(&domain.BooksVerification{TenantID: "t1", IsBalanced: true}, nil).Once()

	mux := asynq.NewServeMux()
	RegisterHandlers(mux, svc, nil)
	task, err := NewBooksVerifyTask("t1", domain.DateRange{})
	require.NoError(t, err)

	require.NoError(t, mux.ProcessTask(context.Background(), task))
	svc.AssertExpectations(t)
}

func TestEnqueuer(t *testing.T) {
	client := &fakeTaskClient{}
	e := NewEnqueuer(client)

	id, err := e.EnqueueBooksVerification(context.Background(), "t1", domain.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, "task-1", id)
	require.Len(t, client.tasks, 1)
	assert.Equal(t, TypeBooksVerify, client.tasks[0].Type())

	_, err = e.EnqueueBooksVerification(context.Background(), "", domain.DateRange{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Len(t, client.tasks, 1)

	client.err = errors.New("redis down")
	_, err = e.EnqueueBooksVerification(context.Background(), "t1", domain.DateRange{})
	assert.ErrorIs(t, err, client.err)
}
