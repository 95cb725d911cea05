package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/chowdhry/storefront/internal/domain/errors"
	"github.com/chowdhry/storefront/internal/domain/model"
	"github.com/chowdhry/storefront/internal/server/http/dto"
)

// PaymentHandler reconciles gateway callbacks against orders.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Verify handles POST /api/orders/:id/payment/verify.
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req dto.PaymentVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.ConfirmPayment(c.Request.Context(), c.Param("id"), model.GatewayPayload{
		GatewayOrderID: req.GatewayOrderID,
		PaymentID:      req.PaymentID,
		Signature:      req.Signature,
		Amount:         model.Paise(req.Amount),
		Method:         req.Method,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrVerificationFailed):
			c.JSON(http.StatusBadRequest, gin.H{"error": "signature verification failed"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}

// Failure handles POST /api/orders/:id/payment/failure.
func (h *PaymentHandler) Failure(c *gin.Context) {
	var req dto.PaymentFailureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if req.Reason == "" {
		req.Reason = "Payment failed"
	}

	if err := h.facade.FailPayment(c.Request.Context(), c.Param("id"), req.Reason); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}

// Cancel handles POST /api/orders/:id/payment/cancel.
func (h *PaymentHandler) Cancel(c *gin.Context) {
	if err := h.facade.CancelPayment(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}
