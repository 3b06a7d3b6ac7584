package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"substore/internal/models/response_models"
	"substore/internal/services"
	"substore/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

// PaymentSuccess is the surl target: the gateway redirects the browser here
// after a successful payment, posting back the transaction fields.
func (s *SubscriptionController) PaymentSuccess(c *gin.Context) {

	txnid := reconcileTxnID(c)
	if txnid == "" {
		utils.RespondError(c, http.StatusBadRequest, "txnid is required")
		return
	}

	result, err := s.subscriptionService.HandlePaymentSuccess(c.Request.Context(), txnid)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Subscription activated")
}

// PaymentFailure is the furl target. The staged record is cleared so a dead
// checkout never turns into a subscription; no persistence happens here.
func (s *SubscriptionController) PaymentFailure(c *gin.Context) {

	if err := s.subscriptionService.HandlePaymentFailure(c.Request.Context(), reconcileTxnID(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ReconciliationResult{State: "errored"},
		"Payment failed. Try again or contact support.")
}

// ListSubscriptions godoc
// @Summary List the caller's subscriptions, newest first
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions [get]
func (s *SubscriptionController) ListSubscriptions(c *gin.Context) {

	accountID := c.GetString("user_id")
	if accountID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	subs, err := s.subscriptionService.ListSubscriptions(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, subs, "Subscriptions fetched successfully")
}

// CancelSubscription godoc
// @Summary Stop renewal at the end of the current period
// @Tags Subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/{id}/cancel [post]
func (s *SubscriptionController) CancelSubscription(c *gin.Context) {

	accountID := c.GetString("user_id")
	if accountID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	if err := s.subscriptionService.CancelAtPeriodEnd(c.Request.Context(), accountID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Subscription will cancel at period end")
}

// PayU posts the outcome fields as a form; direct navigations may carry the
// id as a query parameter instead.
func reconcileTxnID(c *gin.Context) string {
	if txnid := c.PostForm("txnid"); txnid != "" {
		return txnid
	}
	return c.Query("txnid")
}
