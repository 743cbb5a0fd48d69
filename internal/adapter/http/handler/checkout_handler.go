package handler

import (
	"vendorguard/internal/adapter/http/dto"
	"vendorguard/internal/core/ports"
	"vendorguard/pkg/apperror"
	"vendorguard/pkg/response"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles both payment paths.
type CheckoutHandler struct {
	checkoutSvc ports.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkoutSvc ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutSvc: checkoutSvc}
}

// PayCrypto handles POST /api/v1/checkout/crypto.
func (h *CheckoutHandler) PayCrypto(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	receipt, err := h.checkoutSvc.PayWithCrypto(c.Request.Context(), ports.PaymentAttempt{
		Amount: req.Amount,
		Item:   req.Item,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toReceiptResponse(receipt))
}

// PayCard handles POST /api/v1/checkout/card.
func (h *CheckoutHandler) PayCard(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	receipt, err := h.checkoutSvc.PayWithCard(c.Request.Context(), ports.PaymentAttempt{
		Amount: req.Amount,
		Item:   req.Item,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toReceiptResponse(receipt))
}

func toReceiptResponse(r *ports.Receipt) dto.ReceiptResponse {
	return dto.ReceiptResponse{
		ID:     r.ID,
		Amount: r.Amount,
		Item:   r.Item,
		Method: string(r.Method),
	}
}
