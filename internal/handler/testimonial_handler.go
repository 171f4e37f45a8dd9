package handler

import (
	"context"
	"net/http"

	"zhanyixia/internal/domain"
	"zhanyixia/internal/models"

	"github.com/gin-gonic/gin"
)

type TestimonialStore interface {
	ListAll(ctx context.Context) ([]models.Testimonial, error)
	GetByID(ctx context.Context, id uint) (*models.Testimonial, error)
	Create(ctx context.Context, t *models.Testimonial) error
	Update(ctx context.Context, t *models.Testimonial) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

type TestimonialHandler struct {
	store TestimonialStore
}

func NewTestimonialHandler(store TestimonialStore) *TestimonialHandler {
	return &TestimonialHandler{store: store}
}

func (h *TestimonialHandler) List(c *gin.Context) {
	list, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": list, "total": len(list)})
}

func (h *TestimonialHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	t, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

type testimonialRequest struct {
	Content   string `json:"content" binding:"required"`
	Author    string `json:"author" binding:"required"`
	Status    string `json:"status" binding:"omitempty,oneof=已发布 草稿"`
	SortOrder int    `json:"sort_order" binding:"min=0"`
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	var req testimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" {
		req.Status = domain.StatusPublished
	}
	t := &models.Testimonial{
		Content:   req.Content,
		Author:    req.Author,
		Status:    req.Status,
		SortOrder: req.SortOrder,
	}
	if err := h.store.Create(c.Request.Context(), t); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *TestimonialHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req testimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	t.Content = req.Content
	t.Author = req.Author
	if req.Status != "" {
		t.Status = req.Status
	}
	t.SortOrder = req.SortOrder
	if err := h.store.Update(c.Request.Context(), t); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TestimonialHandler) ToggleStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	t, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	next := domain.TogglePublished(t.Status)
	if err := h.store.UpdateStatus(c.Request.Context(), id, next); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": next})
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
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
