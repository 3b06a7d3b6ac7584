package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending  TransactionStatus = "pending"
	TxnStatusPaid     TransactionStatus = "paid"
	TxnStatusFailed   TransactionStatus = "failed"
	TxnStatusRefunded TransactionStatus = "refunded"
)

type Transaction struct {
	BaseModel
	AccountID      uuid.UUID  `gorm:"index"`
	SubscriptionID *uuid.UUID `gorm:"index"` // set once reconciliation creates the subscription
	ProductID      uuid.UUID  `gorm:"index"`

	AmountMinor int64
	Currency    string            `gorm:"size:3"` // ISO 4217, "INR"
	Status      TransactionStatus `gorm:"index"`

	// Gateway fields
	Provider      string `gorm:"index"`       // "payu"
	ProviderTxnID string `gorm:"uniqueIndex"` // the txnid sent in the signed form

	// Unix seconds
	PaidAt   *int64
	FailedAt *int64

	// Signed field set snapshot (hash and salt excluded), failure reasons, etc.
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account      Account       `gorm:"foreignKey:AccountID"`
	Subscription *Subscription `gorm:"foreignKey:SubscriptionID"`
}
