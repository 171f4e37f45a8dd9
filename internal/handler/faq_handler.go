package handler

import (
	"context"
	"net/http"

	"zhanyixia/internal/domain"
	"zhanyixia/internal/models"

	"github.com/gin-gonic/gin"
)

type FAQStore interface {
	ListAll(ctx context.Context) ([]models.FAQ, error)
	GetByID(ctx context.Context, id uint) (*models.FAQ, error)
	Create(ctx context.Context, f *models.FAQ) error
	Update(ctx context.Context, f *models.FAQ) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

type FAQHandler struct {
	store FAQStore
}

func NewFAQHandler(store FAQStore) *FAQHandler {
	return &FAQHandler{store: store}
}

// FilterFAQs keeps rows matching an exact category; 全部 passes everything.
func FilterFAQs(list []models.FAQ, category string) []models.FAQ {
	if category == "" || category == domain.CategoryAll {
		return list
	}
	out := make([]models.FAQ, 0, len(list))
	for _, f := range list {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

func (h *FAQHandler) List(c *gin.Context) {
	list, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	filtered := FilterFAQs(list, c.Query("category"))
	c.JSON(http.StatusOK, gin.H{"faqs": filtered, "total": len(list)})
}

func (h *FAQHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	f, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// faqRequest rejects blank questions/answers at the binding layer: a create
// with an empty question never reaches the store.
type faqRequest struct {
	Category  string `json:"category" binding:"required"`
	Question  string `json:"question" binding:"required"`
	Answer    string `json:"answer" binding:"required"`
	Status    string `json:"status" binding:"omitempty,oneof=已发布 草稿"`
	SortOrder int    `json:"sort_order" binding:"min=0"`
}

func (h *FAQHandler) Create(c *gin.Context) {
	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.ValidFAQCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}
	if req.Status == "" {
		req.Status = domain.StatusPublished
	}
	f := &models.FAQ{
		Category:  req.Category,
		Question:  req.Question,
		Answer:    req.Answer,
		Status:    req.Status,
		SortOrder: req.SortOrder,
	}
	if err := h.store.Create(c.Request.Context(), f); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (h *FAQHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.ValidFAQCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}
	f, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	f.Category = req.Category
	f.Question = req.Question
	f.Answer = req.Answer
	if req.Status != "" {
		f.Status = req.Status
	}
	f.SortOrder = req.SortOrder
	if err := h.store.Update(c.Request.Context(), f); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FAQHandler) ToggleStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	f, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	next := domain.TogglePublished(f.Status)
	if err := h.store.UpdateStatus(c.Request.Context(), id, next); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": next})
}

func (h *FAQHandler) Delete(c *gin.Context) {
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
