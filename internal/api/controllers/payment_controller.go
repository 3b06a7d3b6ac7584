package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"substore/internal/gateway/payu"
	"substore/internal/models/request_models"
	"substore/internal/services"
	"substore/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentService
}

func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// InitiatePayment godoc
// @Summary Build the signed PayU field set for a checkout
// @Description Resolves the plan, signs the transaction fields, stages the pending subscription and returns the gateway redirect directive
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CheckoutRequest true "Checkout Request"
// @Success 200 {object} payu.Directive
// @Router /api/payu/initiate [post]
func (p *PaymentController) InitiatePayment(c *gin.Context) {

	// This endpoint keeps the storefront's original wire contract: raw
	// {"error": ...} bodies, not the APIResponse envelope.
	var request request_models.CheckoutRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	directive, err := p.paymentService.InitiatePayment(c.Request.Context(), request, requestOrigin(c))
	if err != nil {
		p.respondInitiateError(c, err)
		return
	}

	c.JSON(http.StatusOK, directive)
}

// CheckoutForm renders the auto-submitting gateway form. Loading the
// response is a full-page navigation to PayU; control returns to the
// storefront only through the surl/furl redirect legs.
func (p *PaymentController) CheckoutForm(c *gin.Context) {

	var request request_models.CheckoutRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	directive, err := p.paymentService.InitiatePayment(c.Request.Context(), request, requestOrigin(c))
	if err != nil {
		p.respondInitiateError(c, err)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := payu.RenderCheckoutForm(c.Writer, *directive); err != nil {
		log.Printf("payment: render checkout form: %v", err)
	}
}

func (p *PaymentController) respondInitiateError(c *gin.Context, err error) {
	var missing *services.MissingFieldError

	switch {
	case errors.As(err, &missing):
		c.JSON(http.StatusBadRequest, gin.H{"error": missing.Error()})
	case errors.Is(err, services.ErrGatewayNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.ErrGatewayNotConfigured.Error()})
	case errors.Is(err, utils.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	default:
		log.Printf("payment: initiate failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initiate payment"})
	}
}

func requestOrigin(c *gin.Context) string {
	if origin := c.GetHeader("Origin"); origin != "" {
		return origin
	}
	return c.GetHeader("Referer")
}
