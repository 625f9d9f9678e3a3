package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stickybar/internal/application/admin/usecases"
	"stickybar/internal/shared/logger"
	"stickybar/internal/shared/utils"
)

// SaveConfigRequest is the admin configuration write payload
type SaveConfigRequest struct {
	Plan                    string   `json:"plan" validate:"required,oneof=free pro premium"`
	PreferredProvider       string   `json:"preferred_provider" validate:"required,oneof=judgeme manual"`
	ManualRating            *float64 `json:"manual_rating,omitempty"`
	ManualText              string   `json:"manual_text"`
	FallbackText            string   `json:"fallback_text"`
	UseManualRatingFallback bool     `json:"use_manual_rating_fallback"`
	FallbackRating          *float64 `json:"fallback_rating,omitempty"`
	FallbackReviewCount     int      `json:"fallback_review_count"`
	NotifyOnFailure         bool     `json:"notify_on_failure"`
	NotificationEmail       string   `json:"notification_email" validate:"omitempty,email"`
	StoreOwnerEmail         string   `json:"store_owner_email" validate:"omitempty,email"`
	BackgroundColorHex      string   `json:"background_color_hex" validate:"omitempty,hexcolor"`
	TextColorHex            string   `json:"text_color_hex" validate:"omitempty,hexcolor"`
	AccentColorHex          string   `json:"accent_color_hex" validate:"omitempty,hexcolor"`
	Enabled                 bool     `json:"enabled"`
}

// AdminConfigHandler handles admin configuration reads and writes
type AdminConfigHandler struct {
	getAdminConfigUC  *usecases.GetAdminConfigUseCase
	saveAdminConfigUC *usecases.SaveAdminConfigUseCase
	logger            logger.Interface
}

// NewAdminConfigHandler creates a new admin config handler
func NewAdminConfigHandler(
	getAdminConfigUC *usecases.GetAdminConfigUseCase,
	saveAdminConfigUC *usecases.SaveAdminConfigUseCase,
	log logger.Interface,
) *AdminConfigHandler {
	return &AdminConfigHandler{
		getAdminConfigUC:  getAdminConfigUC,
		saveAdminConfigUC: saveAdminConfigUC,
		logger:            log,
	}
}

// GetConfig handles GET /admin/sites/:siteId/config
func (h *AdminConfigHandler) GetConfig(c *gin.Context) {
	snapshot, err := h.getAdminConfigUC.Execute(c.Request.Context(), c.Param("siteId"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, snapshot)
}

// SaveConfig handles PUT /admin/sites/:siteId/config
func (h *AdminConfigHandler) SaveConfig(c *gin.Context) {
	var req SaveConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for save config", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.SaveAdminConfigCommand{
		SiteID:                  c.Param("siteId"),
		Plan:                    req.Plan,
		PreferredProvider:       req.PreferredProvider,
		ManualRating:            req.ManualRating,
		ManualText:              req.ManualText,
		FallbackText:            req.FallbackText,
		UseManualRatingFallback: req.UseManualRatingFallback,
		FallbackRating:          req.FallbackRating,
		FallbackReviewCount:     req.FallbackReviewCount,
		NotifyOnFailure:         req.NotifyOnFailure,
		NotificationEmail:       req.NotificationEmail,
		StoreOwnerEmail:         req.StoreOwnerEmail,
		BackgroundColorHex:      req.BackgroundColorHex,
		TextColorHex:            req.TextColorHex,
		AccentColorHex:          req.AccentColorHex,
		Enabled:                 req.Enabled,
	}

	result, err := h.saveAdminConfigUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Configuration saved successfully", result)
}
