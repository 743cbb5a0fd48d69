package handler

import (
	"vendorguard/internal/adapter/http/dto"
	"vendorguard/internal/core/domain"
	"vendorguard/internal/core/ports"
	"vendorguard/pkg/apperror"
	"vendorguard/pkg/response"

	"github.com/gin-gonic/gin"
)

// SettingsHandler handles merchant settings endpoints.
type SettingsHandler struct {
	settings ports.SettingsStore
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settings ports.SettingsStore) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetSettings handles GET /api/v1/settings.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settings.Load(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSettingsResponse(settings))
}

// UpdateSettings handles PUT /api/v1/settings. The stored settings are
// replaced wholesale; LockDuration is stored as submitted, numeric or not.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req dto.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	settings := domain.MerchantSettings{
		CompanyName:   req.CompanyName,
		LockDuration:  req.LockDuration,
		WalletAddress: req.WalletAddress,
		ProfileImage:  req.ProfileImage,
	}
	if err := h.settings.Save(c.Request.Context(), settings); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSettingsResponse(settings))
}

func toSettingsResponse(s domain.MerchantSettings) dto.SettingsResponse {
	return dto.SettingsResponse{
		CompanyName:   s.CompanyName,
		LockDuration:  s.LockDuration,
		WalletAddress: s.WalletAddress,
		ProfileImage:  s.ProfileImage,
	}
}
