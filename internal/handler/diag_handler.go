package handler

import (
	"net/http"

	"zhanyixia/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DiagHandler backs the deployment smoke-check screens: a store connectivity
// ping and a small sample of rows per table.
type DiagHandler struct {
	db *gorm.DB
}

func NewDiagHandler(db *gorm.DB) *DiagHandler {
	return &DiagHandler{db: db}
}

// DB pings the underlying connection.
func (h *DiagHandler) DB(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
		return
	}
	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unreachable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Data returns up to five rows from each content table so a deploy can be
// eyeballed quickly.
func (h *DiagHandler) Data(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		services []models.Service
		faqs     []models.FAQ
		cases    []models.Case
		stats    []models.SiteStat
	)
	if err := h.db.WithContext(ctx).Limit(5).Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.db.WithContext(ctx).Limit(5).Find(&faqs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.db.WithContext(ctx).Limit(5).Find(&cases).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.db.WithContext(ctx).Limit(5).Find(&stats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"faqs":     faqs,
		"cases":    cases,
		"stats":    stats,
	})
}
