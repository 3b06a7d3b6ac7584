package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"substore/internal/models/db_models"
)

type ISubscriptionRepository interface {
	ListByAccount(ctx context.Context, accountID string) ([]db_models.Subscription, error)
	FindById(ctx context.Context, id string) (*db_models.Subscription, error)

	// Activate creates the subscription and marks the pending transaction
	// paid inside one database transaction. Either both writes commit or
	// neither does; the caller keeps the staged record on failure.
	Activate(ctx context.Context, sub *db_models.Subscription, providerTxnID string) error

	SetCancelAtPeriodEnd(ctx context.Context, id string) error
	MarkTransactionFailed(ctx context.Context, providerTxnID string) error
	FindTransactionByTxnID(ctx context.Context, providerTxnID string) (*db_models.Transaction, error)
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) ISubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (s SubscriptionRepository) ListByAccount(ctx context.Context, accountID string) ([]db_models.Subscription, error) {

	var subs []db_models.Subscription
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&subs).Error

	if err != nil {
		return nil, err
	}

	return subs, nil
}

func (s SubscriptionRepository) FindById(ctx context.Context, id string) (*db_models.Subscription, error) {

	var sub db_models.Subscription
	err := s.db.WithContext(ctx).First(&sub, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}

func (s SubscriptionRepository) Activate(ctx context.Context, sub *db_models.Subscription, providerTxnID string) error {
	now := time.Now().Unix()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sub).Error; err != nil {
			return err
		}

		// Link the gateway transaction, if one was recorded on initiation.
		res := tx.Model(&db_models.Transaction{}).
			Where("provider_txn_id = ? AND status = ?", providerTxnID, db_models.TxnStatusPending).
			Updates(map[string]interface{}{
				"status":          db_models.TxnStatusPaid,
				"paid_at":         now,
				"subscription_id": sub.ID,
			})
		return res.Error
	})
}

func (s SubscriptionRepository) SetCancelAtPeriodEnd(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("id = ?", id).
		Update("cancel_at_period_end", true).Error
}

func (s SubscriptionRepository) MarkTransactionFailed(ctx context.Context, providerTxnID string) error {
	now := time.Now().Unix()

	return s.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("provider_txn_id = ? AND status = ?", providerTxnID, db_models.TxnStatusPending).
		Updates(map[string]interface{}{
			"status":    db_models.TxnStatusFailed,
			"failed_at": now,
		}).Error
}

func (s SubscriptionRepository) FindTransactionByTxnID(ctx context.Context, providerTxnID string) (*db_models.Transaction, error) {

	var txn db_models.Transaction
	err := s.db.WithContext(ctx).First(&txn, "provider_txn_id = ?", providerTxnID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &txn, nil
}
