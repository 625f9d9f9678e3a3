package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stickybar/internal/shared/utils"
)

// HealthHandler reports service liveness and database connectivity
type HealthHandler struct {
	db        *gorm.DB
	startedAt time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db:        db,
		startedAt: time.Now(),
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	status := gin.H{
		"status": "ok",
		"uptime": time.Since(h.startedAt).String(),
	}

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			status["status"] = "degraded"
			status["database"] = "unreachable"
			utils.SuccessResponse(c, 503, "Service degraded", status)
			return
		}
		status["database"] = "ok"
	}

	utils.OKResponse(c, status)
}
