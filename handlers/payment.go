package handlers

import (
	"io"
	"net/http"

	"swiftcab/models"
	"swiftcab/services/payment"
	"swiftcab/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes the payment-gateway glue.
type PaymentHandler struct {
	Svc    payment.Service
	Logger *zap.Logger
}

func NewPaymentHandler(svc payment.Service, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Svc: svc, Logger: logger}
}

// CreatePaymentIntent creates a Stripe payment intent for a booking.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Svc.CreateIntent(c.Request.Context(), req.BookingID)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to create payment intent", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// StripeWebhook receives payment gateway events.
func (h *PaymentHandler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 65536))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read webhook body", err.Error())
		return
	}

	sig := c.GetHeader("Stripe-Signature")
	if err := h.Svc.HandleWebhook(c.Request.Context(), payload, sig); err != nil {
		h.Logger.Warn("webhook rejected", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "webhook rejected", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
