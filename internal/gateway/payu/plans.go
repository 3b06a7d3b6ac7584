package payu

import "strings"

// Charge is the gateway-facing price for a plan. Amounts are minor units
// (paise); ProductInfo is the literal description signed into the hash.
type Charge struct {
	AmountMinor int64
	ProductInfo string
}

const TrialPlanID = "plan_trial_2inr"

var (
	trialCharge   = Charge{AmountMinor: 200, ProductInfo: "7-Day Trial Setup Fee"}
	monthlyCharge = Charge{AmountMinor: 299900, ProductInfo: "Monthly Subscription"}
	yearlyCharge  = Charge{AmountMinor: 2999000, ProductInfo: "Yearly Subscription"}
)

// ResolveCharge maps a plan identifier to its charge. First match wins:
// the exact trial plan, then any id containing "monthly", then "yearly".
// Unknown ids fall back to trial pricing; callers that care should check
// KnownPlan first and log the fallback.
func ResolveCharge(planID string) Charge {
	switch {
	case planID == TrialPlanID:
		return trialCharge
	case strings.Contains(planID, "monthly"):
		return monthlyCharge
	case strings.Contains(planID, "yearly"):
		return yearlyCharge
	default:
		return trialCharge
	}
}

// KnownPlan reports whether planID matches one of the pricing rules, as
// opposed to hitting the trial fallback.
func KnownPlan(planID string) bool {
	return planID == TrialPlanID ||
		strings.Contains(planID, "monthly") ||
		strings.Contains(planID, "yearly")
}

// Amount returns the charge amount as the two-decimal string used on the wire.
func (c Charge) Amount() string {
	return FormatAmount(c.AmountMinor)
}
