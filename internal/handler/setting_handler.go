package handler

import (
	"context"
	"net/http"

	"zhanyixia/internal/models"
	"zhanyixia/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingStore interface {
	ListAll(ctx context.Context) ([]models.SiteSetting, error)
	UpdateValue(ctx context.Context, id uint, value string) error
}

type SettingHandler struct {
	store SettingStore
}

func NewSettingHandler(store SettingStore) *SettingHandler {
	return &SettingHandler{store: store}
}

// List returns the flat settings list plus the grouped-by-category view
// derived from it on the fly.
func (h *SettingHandler) List(c *gin.Context) {
	list, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"settings": list,
		"grouped":  service.GroupByCategory(list),
	})
}

type bulkSaveRequest struct {
	Updates []service.SettingUpdate `json:"updates" binding:"required,dive"`
}

// BulkSave writes every submitted row concurrently. One aggregate result is
// reported; rows are not individually acknowledged and the batch is not
// atomic (last write wins per row).
func (h *SettingHandler) BulkSave(c *gin.Context) {
	var req bulkSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := service.BulkSaveSettings(c.Request.Context(), h.store, req.Updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved", "count": len(req.Updates)})
}
