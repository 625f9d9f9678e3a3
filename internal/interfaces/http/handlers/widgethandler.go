// Package handlers contains the gin HTTP handlers.
package handlers

import (
	"github.com/gin-gonic/gin"

	"stickybar/internal/application/widget/usecases"
	"stickybar/internal/shared/logger"
	"stickybar/internal/shared/utils"
)

// WidgetHandler serves the storefront widget payload
type WidgetHandler struct {
	getWidgetDataUC *usecases.GetWidgetDataUseCase
	logger          logger.Interface
}

// NewWidgetHandler creates a new widget handler
func NewWidgetHandler(getWidgetDataUC *usecases.GetWidgetDataUseCase, log logger.Interface) *WidgetHandler {
	return &WidgetHandler{
		getWidgetDataUC: getWidgetDataUC,
		logger:          log,
	}
}

// GetWidgetData handles GET /widget/:siteId and GET /widget/:siteId/products/:productId.
// The product identifier is optional; without one the site-level resolution runs.
func (h *WidgetHandler) GetWidgetData(c *gin.Context) {
	siteID := c.Param("siteId")
	productID := c.Param("productId")
	if productID == "" {
		productID = c.Query("productId")
	}

	data, err := h.getWidgetDataUC.Execute(c.Request.Context(), siteID, productID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, data)
}
