package handler

import (
	"context"
	"net/http"
	"strings"

	"zhanyixia/internal/domain"
	"zhanyixia/internal/models"

	"github.com/gin-gonic/gin"
)

type CaseStore interface {
	ListAll(ctx context.Context) ([]models.Case, error)
	GetByID(ctx context.Context, id uint) (*models.Case, error)
	Create(ctx context.Context, cs *models.Case) error
	Update(ctx context.Context, cs *models.Case) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

type CaseHandler struct {
	store CaseStore
}

func NewCaseHandler(store CaseStore) *CaseHandler {
	return &CaseHandler{store: store}
}

// NormalizeHighlights trims each entry and drops blanks. Order of the
// remaining entries is preserved verbatim; duplicates are allowed.
func NormalizeHighlights(in []string) models.StringList {
	out := make(models.StringList, 0, len(in))
	for _, h := range in {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		out = append(out, h)
	}
	return out
}

func (h *CaseHandler) List(c *gin.Context) {
	list, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cases": list, "total": len(list)})
}

func (h *CaseHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cs, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	c.JSON(http.StatusOK, cs)
}

type caseRequest struct {
	CustomerName string   `json:"customer_name" binding:"required"`
	ServiceName  string   `json:"service_name" binding:"required"`
	Achievement  string   `json:"achievement"`
	Comment      string   `json:"comment"`
	Rating       int      `json:"rating" binding:"required,min=3,max=5"`
	Highlights   []string `json:"highlights"`
	Status       string   `json:"status" binding:"omitempty,oneof=已发布 草稿"`
	SortOrder    int      `json:"sort_order" binding:"min=0"`
}

func (h *CaseHandler) Create(c *gin.Context) {
	var req caseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" {
		req.Status = domain.StatusPublished
	}
	cs := &models.Case{
		CustomerName: req.CustomerName,
		ServiceName:  req.ServiceName,
		Achievement:  req.Achievement,
		Comment:      req.Comment,
		Rating:       req.Rating,
		Highlights:   NormalizeHighlights(req.Highlights),
		Status:       req.Status,
		SortOrder:    req.SortOrder,
	}
	if err := h.store.Create(c.Request.Context(), cs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cs)
}

func (h *CaseHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req caseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cs, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	cs.CustomerName = req.CustomerName
	cs.ServiceName = req.ServiceName
	cs.Achievement = req.Achievement
	cs.Comment = req.Comment
	cs.Rating = req.Rating
	cs.Highlights = NormalizeHighlights(req.Highlights)
	if req.Status != "" {
		cs.Status = req.Status
	}
	cs.SortOrder = req.SortOrder
	if err := h.store.Update(c.Request.Context(), cs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cs)
}

// ToggleStatus flips 已发布 ↔ 草稿 on one row.
func (h *CaseHandler) ToggleStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cs, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	next := domain.TogglePublished(cs.Status)
	if err := h.store.UpdateStatus(c.Request.Context(), id, next); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": next})
}

func (h *CaseHandler) Delete(c *gin.Context) {
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
