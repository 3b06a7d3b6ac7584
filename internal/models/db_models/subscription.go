package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionStatus string

const (
	SubStatusTrial     SubscriptionStatus = "trial"
	SubStatusActive    SubscriptionStatus = "active"
	SubStatusCancelled SubscriptionStatus = "cancelled"
	SubStatusExpired   SubscriptionStatus = "expired"
)

type BillingCycle string

const (
	CycleMonthly BillingCycle = "monthly"
	CycleYearly  BillingCycle = "yearly"
)

type Subscription struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	ProductID uuid.UUID `gorm:"index"`

	Status       SubscriptionStatus `gorm:"index"`
	BillingCycle BillingCycle

	// Unix seconds
	CurrentPeriodStart int64 `gorm:"not null"`
	CurrentPeriodEnd   int64 `gorm:"not null"`
	TrialEnd           *int64

	CancelAtPeriodEnd bool `gorm:"default:false"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
	Product Product `gorm:"foreignKey:ProductID"`
}
