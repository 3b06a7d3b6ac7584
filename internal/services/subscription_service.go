package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"substore/internal/models/db_models"
	"substore/internal/models/response_models"
	"substore/internal/repositories"
	mem "substore/pkg/memcache"
	"substore/pkg/utils"
)

type SubscriptionServiceInterface interface {
	// HandlePaymentSuccess consumes the staged pending record for the
	// account behind txnid and persists the subscription. The staged record
	// is cleared only after the write commits.
	HandlePaymentSuccess(ctx context.Context, txnid string) (*response_models.ReconciliationResult, error)

	// HandlePaymentFailure clears the staged record and marks the gateway
	// transaction failed. Never creates a subscription; idempotent.
	HandlePaymentFailure(ctx context.Context, txnid string) error

	ListSubscriptions(ctx context.Context, accountID string) ([]response_models.SubscriptionResponse, error)
	CancelAtPeriodEnd(ctx context.Context, accountID string, subscriptionID string) error
}

type SubscriptionService struct {
	subRepo repositories.ISubscriptionRepository
	pending mem.PendingSubscriptionStore
}

func NewSubscriptionService(subRepo repositories.ISubscriptionRepository, pending mem.PendingSubscriptionStore) SubscriptionServiceInterface {
	return &SubscriptionService{
		subRepo: subRepo,
		pending: pending,
	}
}

func (s *SubscriptionService) HandlePaymentSuccess(ctx context.Context, txnid string) (*response_models.ReconciliationResult, error) {

	txn, err := s.subRepo.FindTransactionByTxnID(ctx, txnid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}

	accountID := txn.AccountID.String()

	rec, ok := s.pending.Get(accountID)
	if !ok {
		// Do not fabricate a subscription from the transaction alone.
		return nil, utils.ErrNoPendingSubscription
	}

	productID, err := uuid.Parse(rec.ProductID)
	if err != nil {
		return nil, utils.ErrProductNotFound
	}

	now := time.Now()
	periodEnd := now.AddDate(0, 1, 0) // calendar month, not 30 days
	if rec.BillingCycle == string(db_models.CycleYearly) {
		periodEnd = now.AddDate(1, 0, 0)
	}

	meta, _ := json.Marshal(map[string]interface{}{
		"activated_by_txn": txnid,
		"product_name":     rec.ProductName,
	})

	sub := &db_models.Subscription{
		AccountID:          txn.AccountID,
		ProductID:          productID,
		Status:             db_models.SubscriptionStatus(rec.Status),
		BillingCycle:       db_models.BillingCycle(rec.BillingCycle),
		CurrentPeriodStart: now.Unix(),
		CurrentPeriodEnd:   periodEnd.Unix(),
		TrialEnd:           rec.TrialEnd,
		Metadata:           meta,
	}

	if err := s.subRepo.Activate(ctx, sub, txnid); err != nil {
		// Leave the staged record intact so the user's intent survives a
		// failed write and the leg can be retried manually.
		log.Printf("subscription: failed to persist for txn %s: %v", txnid, err)
		return nil, utils.ErrDatabaseError
	}

	s.pending.Delete(accountID)

	return &response_models.ReconciliationResult{
		State: "confirmed",
		Subscription: &response_models.SubscriptionResponse{
			ID:                 sub.ID,
			ProductID:          sub.ProductID,
			ProductName:        rec.ProductName,
			Status:             string(sub.Status),
			BillingCycle:       string(sub.BillingCycle),
			CurrentPeriodStart: sub.CurrentPeriodStart,
			CurrentPeriodEnd:   sub.CurrentPeriodEnd,
			CancelAtPeriodEnd:  sub.CancelAtPeriodEnd,
			TrialEnd:           sub.TrialEnd,
		},
	}, nil
}

func (s *SubscriptionService) HandlePaymentFailure(ctx context.Context, txnid string) error {

	if txnid == "" {
		return nil
	}

	txn, err := s.subRepo.FindTransactionByTxnID(ctx, txnid)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if txn == nil {
		// Nothing staged under an unknown transaction; clearing is a no-op.
		return nil
	}

	if err := s.subRepo.MarkTransactionFailed(ctx, txnid); err != nil {
		log.Printf("subscription: failed to mark txn %s failed: %v", txnid, err)
	}

	s.pending.Delete(txn.AccountID.String())
	return nil
}

func (s *SubscriptionService) ListSubscriptions(ctx context.Context, accountID string) ([]response_models.SubscriptionResponse, error) {

	subs, err := s.subRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		result = append(result, response_models.SubscriptionResponse{
			ID:                 sub.ID,
			ProductID:          sub.ProductID,
			ProductName:        sub.Product.Name,
			Status:             string(sub.Status),
			BillingCycle:       string(sub.BillingCycle),
			CurrentPeriodStart: sub.CurrentPeriodStart,
			CurrentPeriodEnd:   sub.CurrentPeriodEnd,
			CancelAtPeriodEnd:  sub.CancelAtPeriodEnd,
			TrialEnd:           sub.TrialEnd,
		})
	}

	return result, nil
}

func (s *SubscriptionService) CancelAtPeriodEnd(ctx context.Context, accountID string, subscriptionID string) error {

	sub, err := s.subRepo.FindById(ctx, subscriptionID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	// Not found and not-yours answer the same way.
	if sub == nil || sub.AccountID.String() != accountID {
		return utils.ErrSubscriptionNotFound
	}

	if err := s.subRepo.SetCancelAtPeriodEnd(ctx, subscriptionID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
