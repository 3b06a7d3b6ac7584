package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"substore/internal/models/db_models"
	mem "substore/pkg/memcache"
	"substore/pkg/utils"
)

type fakeSubscriptionRepo struct {
	txn         *db_models.Transaction
	activated   []*db_models.Subscription
	failedTxns  []string
	subByID     *db_models.Subscription
	cancelled   []string
	activateErr error
}

func (f *fakeSubscriptionRepo) ListByAccount(ctx context.Context, accountID string) ([]db_models.Subscription, error) {
	return nil, nil
}

func (f *fakeSubscriptionRepo) FindById(ctx context.Context, id string) (*db_models.Subscription, error) {
	return f.subByID, nil
}

func (f *fakeSubscriptionRepo) Activate(ctx context.Context, sub *db_models.Subscription, providerTxnID string) error {
	if f.activateErr != nil {
		return f.activateErr
	}
	f.activated = append(f.activated, sub)
	return nil
}

func (f *fakeSubscriptionRepo) SetCancelAtPeriodEnd(ctx context.Context, id string) error {
	f.cancelled = append(f.cancelled, id)
	return nil
}

func (f *fakeSubscriptionRepo) MarkTransactionFailed(ctx context.Context, providerTxnID string) error {
	f.failedTxns = append(f.failedTxns, providerTxnID)
	return nil
}

func (f *fakeSubscriptionRepo) FindTransactionByTxnID(ctx context.Context, providerTxnID string) (*db_models.Transaction, error) {
	if f.txn != nil && f.txn.ProviderTxnID == providerTxnID {
		return f.txn, nil
	}
	return nil, nil
}

func pendingFixture(accountID uuid.UUID, cycle string) (mem.PendingSubscription, *db_models.Transaction) {
	txn := &db_models.Transaction{
		BaseModel:     db_models.BaseModel{ID: uuid.New()},
		AccountID:     accountID,
		ProviderTxnID: "TXN123",
		Status:        db_models.TxnStatusPending,
	}
	rec := mem.PendingSubscription{
		UserID:       accountID.String(),
		ProductID:    uuid.NewString(),
		Status:       "active",
		BillingCycle: cycle,
		ProductName:  "AI Writer",
	}
	return rec, txn
}

func TestHandlePaymentSuccess(t *testing.T) {
	accountID := uuid.New()
	rec, txn := pendingFixture(accountID, "monthly")

	repo := &fakeSubscriptionRepo{txn: txn}
	pending := mem.NewPendingSubscriptions()
	pending.Put(accountID.String(), rec)

	svc := NewSubscriptionService(repo, pending)

	result, err := svc.HandlePaymentSuccess(context.Background(), "TXN123")
	require.NoError(t, err)

	assert.Equal(t, "confirmed", result.State)
	require.NotNil(t, result.Subscription)
	assert.Equal(t, "AI Writer", result.Subscription.ProductName)

	// Exactly one subscription persisted, record cleared afterwards.
	require.Len(t, repo.activated, 1)
	sub := repo.activated[0]
	assert.Equal(t, accountID, sub.AccountID)
	assert.Equal(t, db_models.SubStatusActive, sub.Status)
	assert.Equal(t, db_models.CycleMonthly, sub.BillingCycle)

	_, ok := pending.Get(accountID.String())
	assert.False(t, ok)
}

func TestHandlePaymentSuccessPeriodEnd(t *testing.T) {
	for cycle, wantEnd := range map[string]time.Time{
		"monthly": time.Now().AddDate(0, 1, 0),
		"yearly":  time.Now().AddDate(1, 0, 0),
	} {
		accountID := uuid.New()
		rec, txn := pendingFixture(accountID, cycle)

		repo := &fakeSubscriptionRepo{txn: txn}
		pending := mem.NewPendingSubscriptions()
		pending.Put(accountID.String(), rec)

		svc := NewSubscriptionService(repo, pending)
		_, err := svc.HandlePaymentSuccess(context.Background(), "TXN123")
		require.NoError(t, err)

		require.Len(t, repo.activated, 1)
		// Calendar arithmetic, allow a little slack for test runtime.
		assert.InDelta(t, wantEnd.Unix(), repo.activated[0].CurrentPeriodEnd, 5, "cycle %s", cycle)
	}
}

func TestHandlePaymentSuccessNoStagedRecord(t *testing.T) {
	accountID := uuid.New()
	_, txn := pendingFixture(accountID, "monthly")

	repo := &fakeSubscriptionRepo{txn: txn}
	svc := NewSubscriptionService(repo, mem.NewPendingSubscriptions())

	_, err := svc.HandlePaymentSuccess(context.Background(), "TXN123")

	// Never fabricate a subscription from the transaction alone.
	assert.ErrorIs(t, err, utils.ErrNoPendingSubscription)
	assert.Empty(t, repo.activated)
}

func TestHandlePaymentSuccessUnknownTransaction(t *testing.T) {
	repo := &fakeSubscriptionRepo{}
	svc := NewSubscriptionService(repo, mem.NewPendingSubscriptions())

	_, err := svc.HandlePaymentSuccess(context.Background(), "TXN999")

	assert.ErrorIs(t, err, utils.ErrTransactionNotFound)
	assert.Empty(t, repo.activated)
}

func TestHandlePaymentSuccessPersistenceFailureKeepsRecord(t *testing.T) {
	accountID := uuid.New()
	rec, txn := pendingFixture(accountID, "monthly")

	repo := &fakeSubscriptionRepo{txn: txn, activateErr: errors.New("write failed")}
	pending := mem.NewPendingSubscriptions()
	pending.Put(accountID.String(), rec)

	svc := NewSubscriptionService(repo, pending)

	_, err := svc.HandlePaymentSuccess(context.Background(), "TXN123")
	assert.ErrorIs(t, err, utils.ErrDatabaseError)

	// User intent survives a failed write; the leg can be retried.
	_, ok := pending.Get(accountID.String())
	assert.True(t, ok)
}

func TestHandlePaymentFailure(t *testing.T) {
	accountID := uuid.New()
	rec, txn := pendingFixture(accountID, "monthly")

	repo := &fakeSubscriptionRepo{txn: txn}
	pending := mem.NewPendingSubscriptions()
	pending.Put(accountID.String(), rec)

	svc := NewSubscriptionService(repo, pending)

	require.NoError(t, svc.HandlePaymentFailure(context.Background(), "TXN123"))

	// Record cleared, transaction marked failed, nothing persisted.
	_, ok := pending.Get(accountID.String())
	assert.False(t, ok)
	assert.Equal(t, []string{"TXN123"}, repo.failedTxns)
	assert.Empty(t, repo.activated)
}

func TestHandlePaymentFailureIdempotent(t *testing.T) {
	repo := &fakeSubscriptionRepo{}
	svc := NewSubscriptionService(repo, mem.NewPendingSubscriptions())

	// Unknown txnid and an absent staged record are both no-ops.
	assert.NoError(t, svc.HandlePaymentFailure(context.Background(), "TXN404"))
	assert.NoError(t, svc.HandlePaymentFailure(context.Background(), ""))
	assert.Empty(t, repo.activated)
}

func TestCancelAtPeriodEnd(t *testing.T) {
	accountID := uuid.New()
	sub := &db_models.Subscription{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		AccountID: accountID,
		Status:    db_models.SubStatusActive,
	}

	repo := &fakeSubscriptionRepo{subByID: sub}
	svc := NewSubscriptionService(repo, mem.NewPendingSubscriptions())

	require.NoError(t, svc.CancelAtPeriodEnd(context.Background(), accountID.String(), sub.ID.String()))
	assert.Equal(t, []string{sub.ID.String()}, repo.cancelled)
}

func TestCancelAtPeriodEndWrongOwner(t *testing.T) {
	sub := &db_models.Subscription{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		AccountID: uuid.New(),
	}

	repo := &fakeSubscriptionRepo{subByID: sub}
	svc := NewSubscriptionService(repo, mem.NewPendingSubscriptions())

	err := svc.CancelAtPeriodEnd(context.Background(), uuid.NewString(), sub.ID.String())

	assert.ErrorIs(t, err, utils.ErrSubscriptionNotFound)
	assert.Empty(t, repo.cancelled)
}
