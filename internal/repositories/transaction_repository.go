package repositories

import (
	"context"

	"gorm.io/gorm"
	"substore/internal/models/db_models"
)

type ITransactionRepository interface {
	Insert(ctx context.Context, txn *db_models.Transaction) error
}

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) ITransactionRepository {
	return &TransactionRepository{db: db}
}

func (t TransactionRepository) Insert(ctx context.Context, txn *db_models.Transaction) error {
	return t.db.WithContext(ctx).Create(txn).Error
}
