package handler

import (
	"vendorguard/internal/adapter/http/dto"
	"vendorguard/internal/core/ports"
	"vendorguard/pkg/apperror"
	"vendorguard/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaylinkHandler handles payment link generation and resolution.
type PaylinkHandler struct {
	paylinkSvc ports.PaylinkService
}

// NewPaylinkHandler creates a new PaylinkHandler.
func NewPaylinkHandler(paylinkSvc ports.PaylinkService) *PaylinkHandler {
	return &PaylinkHandler{paylinkSvc: paylinkSvc}
}

// CreatePaylink handles POST /api/v1/paylinks.
func (h *PaylinkHandler) CreatePaylink(c *gin.Context) {
	var req dto.PaylinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	link, err := h.paylinkSvc.Generate(req.Amount, req.Item, req.LockDuration)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.Created(c, dto.PaylinkResponse{
		ID:      link.ID,
		URL:     link.URL,
		QRImage: link.QRImage,
	})
}

// ResolvePaylink handles GET /pay/:id. Absent parameters resolve to their
// literal defaults so a bare link still renders a checkout page.
func (h *PaylinkHandler) ResolvePaylink(c *gin.Context) {
	params := h.paylinkSvc.Parse(c.Request.URL.String())

	response.OK(c, dto.PayPageResponse{
		Amount:       params.Amount,
		Item:         params.Item,
		LockDuration: params.LockDuration,
	})
}
