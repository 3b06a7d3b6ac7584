package request_models

// CheckoutRequest is the body of POST /api/payu/initiate. Field names are
// part of the external contract and stay camelCase. Phone is optional; a
// missing phone falls back to the gateway placeholder.
type CheckoutRequest struct {
	PlanID    string `json:"planId"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	ProductID string `json:"productId"`
	UserID    string `json:"userId"`
}
