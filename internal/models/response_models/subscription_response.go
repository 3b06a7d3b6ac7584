package response_models

import "github.com/google/uuid"

type SubscriptionResponse struct {
	ID                 uuid.UUID `json:"id"`
	ProductID          uuid.UUID `json:"product_id"`
	ProductName        string    `json:"product_name"`
	Status             string    `json:"status"`
	BillingCycle       string    `json:"billing_cycle"`
	CurrentPeriodStart int64     `json:"current_period_start"`
	CurrentPeriodEnd   int64     `json:"current_period_end"`
	CancelAtPeriodEnd  bool      `json:"cancel_at_period_end"`
	TrialEnd           *int64    `json:"trial_end,omitempty"`
}

// ReconciliationResult reports the outcome of a gateway return leg.
// State follows idle -> processing -> confirmed | errored; only the two
// terminal states appear on the wire.
type ReconciliationResult struct {
	State        string                `json:"state"` // "confirmed" or "errored"
	Subscription *SubscriptionResponse `json:"subscription,omitempty"`
}
