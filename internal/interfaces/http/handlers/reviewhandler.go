package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stickybar/internal/application/review/usecases"
	"stickybar/internal/shared/logger"
	"stickybar/internal/shared/utils"
)

// SaveManualReviewRequest is the manual review write payload
type SaveManualReviewRequest struct {
	Rating      float64 `json:"rating" validate:"min=0,max=5"`
	ReviewCount int     `json:"review_count" validate:"min=0"`
	DisplayText string  `json:"display_text"`
}

// ReviewHandler handles manual review CRUD and failure log reads
type ReviewHandler struct {
	saveManualReviewUC   *usecases.SaveManualReviewUseCase
	getManualReviewUC    *usecases.GetManualReviewUseCase
	deleteManualReviewUC *usecases.DeleteManualReviewUseCase
	listFailureLogsUC    *usecases.ListFailureLogsUseCase
	logger               logger.Interface
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(
	saveManualReviewUC *usecases.SaveManualReviewUseCase,
	getManualReviewUC *usecases.GetManualReviewUseCase,
	deleteManualReviewUC *usecases.DeleteManualReviewUseCase,
	listFailureLogsUC *usecases.ListFailureLogsUseCase,
	log logger.Interface,
) *ReviewHandler {
	return &ReviewHandler{
		saveManualReviewUC:   saveManualReviewUC,
		getManualReviewUC:    getManualReviewUC,
		deleteManualReviewUC: deleteManualReviewUC,
		listFailureLogsUC:    listFailureLogsUC,
		logger:               log,
	}
}

// SaveManualReview handles PUT /admin/sites/:siteId/products/:productId/review
func (h *ReviewHandler) SaveManualReview(c *gin.Context) {
	var req SaveManualReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for save manual review", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.SaveManualReviewCommand{
		SiteID:      c.Param("siteId"),
		ProductID:   c.Param("productId"),
		Rating:      req.Rating,
		ReviewCount: req.ReviewCount,
		DisplayText: req.DisplayText,
	}

	result, err := h.saveManualReviewUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	status := http.StatusOK
	if result.IsNew {
		status = http.StatusCreated
	}
	utils.SuccessResponse(c, status, "Manual review saved successfully", result)
}

// GetManualReview handles GET /admin/sites/:siteId/products/:productId/review
func (h *ReviewHandler) GetManualReview(c *gin.Context) {
	result, err := h.getManualReviewUC.Execute(c.Request.Context(), c.Param("siteId"), c.Param("productId"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// DeleteManualReview handles DELETE /admin/sites/:siteId/products/:productId/review
func (h *ReviewHandler) DeleteManualReview(c *gin.Context) {
	if err := h.deleteManualReviewUC.Execute(c.Request.Context(), c.Param("siteId"), c.Param("productId")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Manual review deleted successfully", nil)
}

// ListFailureLogs handles GET /admin/sites/:siteId/failures
func (h *ReviewHandler) ListFailureLogs(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil {
			limit = parsed
		}
	}

	result, err := h.listFailureLogsUC.Execute(c.Request.Context(), c.Param("siteId"), limit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
