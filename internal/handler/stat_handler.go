package handler

import (
	"context"
	"net/http"

	"zhanyixia/internal/models"

	"github.com/gin-gonic/gin"
)

type StatStore interface {
	ListAll(ctx context.Context) ([]models.SiteStat, error)
	GetByID(ctx context.Context, id uint) (*models.SiteStat, error)
	Create(ctx context.Context, s *models.SiteStat) error
	Update(ctx context.Context, s *models.SiteStat) error
	Delete(ctx context.Context, id uint) error
}

type StatHandler struct {
	store StatStore
}

func NewStatHandler(store StatStore) *StatHandler {
	return &StatHandler{store: store}
}

func (h *StatHandler) List(c *gin.Context) {
	list, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": list})
}

type statRequest struct {
	StatLabel    string `json:"stat_label" binding:"required"`
	StatValue    string `json:"stat_value" binding:"required"`
	DisplayOrder int    `json:"display_order" binding:"min=0"`
}

func (h *StatHandler) Create(c *gin.Context) {
	var req statRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s := &models.SiteStat{
		StatLabel:    req.StatLabel,
		StatValue:    req.StatValue,
		DisplayOrder: req.DisplayOrder,
	}
	if err := h.store.Create(c.Request.Context(), s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *StatHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req statRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	s.StatLabel = req.StatLabel
	s.StatValue = req.StatValue
	s.DisplayOrder = req.DisplayOrder
	if err := h.store.Update(c.Request.Context(), s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *StatHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.store.GetByID(c.Request.Context(), id); err != nil {
		respondFetchError(c, err)
		return
	}
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
