package response_models

import "github.com/google/uuid"

type ProductResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	Description       string    `json:"description"`
	MonthlyPriceMinor int64     `json:"monthly_price_minor"`
	YearlyPriceMinor  int64     `json:"yearly_price_minor"`
	TrialDays         int32     `json:"trial_days"`
	Icon              string    `json:"icon"`
	Category          string    `json:"category"`
	IsActive          bool      `json:"is_active"`
	Features          []string  `json:"features,omitempty"`
}
