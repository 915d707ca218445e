package rediscache

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*ReconciliationResultStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewReconciliationResultStore(client), mr
}

func TestSaveAndGetLatest(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	result := domain.BooksVerification{
		TenantID:     "t1",
		From:         &from,
		TotalDebits:  decimal.RequireFromString("130.0000"),
		TotalCredits: decimal.RequireFromString("130.0000"),
		BatchCount:   3,
		IsBalanced:   true,
		VerifiedAt:   time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, store.SaveLatest(ctx, result, time.Hour))
	assert.True(t, mr.Exists("reconciliation:latest:t1"))
	assert.Equal(t, time.Hour, mr.TTL("reconciliation:latest:t1"))

	latest, err := store.GetLatest(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 3, latest.BatchCount)
	assert.True(t, latest.TotalDebits.Equal(result.TotalDebits))
	require.NotNil(t, latest.From)
	assert.True(t, latest.From.Equal(from))
	assert.True(t, latest.IsBalanced)
}

func TestGetLatest_MissingOrExpired(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	_, err := store.GetLatest(ctx, "nobody")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, store.SaveLatest(ctx, domain.BooksVerification{TenantID: "t1"}, time.Minute))
	mr.FastForward(2 * time.Minute)
	_, err = store.GetLatest(ctx, "t1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSaveLatest_ZeroTTLKeepsResult(t *testing.T) {
	store, mr := newTestStore(t)
	require.NoError(t, store.SaveLatest(context.Background(), domain.BooksVerification{TenantID: "t1"}, 0))
	assert.Equal(t, time.Duration(0), mr.TTL("reconciliation:latest:t1"))
}

func TestSaveLatest_RequiresTenant(t *testing.T) {
	store, _ := newTestStore(t)
	err := store.SaveLatest(context.Background(), domain.BooksVerification{}, time.Minute)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGetLatest_CorruptPayload(t *testing.T) {
	store, mr := newTestStore(t)
	require.NoError(t, mr.Set("reconciliation:latest:t1", "{not json"))
	_, err := store.GetLatest(context.Background(), "t1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}
