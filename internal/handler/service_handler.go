package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"

	"zhanyixia/internal/domain"
	"zhanyixia/internal/models"
	"zhanyixia/internal/service"

	"github.com/gin-gonic/gin"
)

// ServiceStore is the repository surface the service admin screens use.
type ServiceStore interface {
	ListAll(ctx context.Context) ([]models.Service, error)
	GetByID(ctx context.Context, id uint) (*models.Service, error)
	Create(ctx context.Context, s *models.Service) error
	Update(ctx context.Context, s *models.Service) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

type ServiceHandler struct {
	store  ServiceStore
	upload *service.UploadService
}

func NewServiceHandler(store ServiceStore, upload *service.UploadService) *ServiceHandler {
	return &ServiceHandler{store: store, upload: upload}
}

// FilterServices applies the list screen's filters over an already-fetched
// set: exact category match (全部 passes everything) and a case-insensitive
// substring search across name, description and the numeric id.
func FilterServices(list []models.Service, category, query string) []models.Service {
	query = strings.ToLower(query)
	out := make([]models.Service, 0, len(list))
	for _, s := range list {
		if category != "" && category != domain.CategoryAll && s.Category != category {
			continue
		}
		if query != "" {
			idStr := strconv.FormatUint(uint64(s.ID), 10)
			if !strings.Contains(strings.ToLower(s.Name), query) &&
				!strings.Contains(strings.ToLower(s.Description), query) &&
				!strings.Contains(idStr, query) {
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

// List returns all services ordered by category then sort_order, with
// optional ?category= and ?q= filters plus listed/total tallies for the
// screen header.
func (h *ServiceHandler) List(c *gin.Context) {
	list, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	filtered := FilterServices(list, c.Query("category"), c.Query("q"))
	listed := 0
	for _, s := range list {
		if s.IsListed() {
			listed++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"services": filtered,
		"total":    len(list),
		"listed":   listed,
	})
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

type serviceRequest struct {
	Category    string `json:"category" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Price       int    `json:"price" binding:"min=0"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=已上架 已下架"`
	SortOrder   int    `json:"sort_order" binding:"min=0"`
	ImageURL    string `json:"image_url"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.ValidServiceCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}
	if req.Status == "" {
		req.Status = domain.StatusListed
	}
	s := &models.Service{
		Category:    req.Category,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Status:      req.Status,
		SortOrder:   req.SortOrder,
		ImageURL:    req.ImageURL,
	}
	if err := h.store.Create(c.Request.Context(), s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.ValidServiceCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}
	s, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	oldImage := s.ImageURL
	s.Category = req.Category
	s.Name = req.Name
	s.Price = req.Price
	s.Description = req.Description
	if req.Status != "" {
		s.Status = req.Status
	}
	s.SortOrder = req.SortOrder
	s.ImageURL = req.ImageURL
	if err := h.store.Update(c.Request.Context(), s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// a replaced image is an orphan in storage; removal is best effort
	if h.upload != nil && oldImage != "" && oldImage != s.ImageURL {
		if err := h.upload.RemoveImage(c.Request.Context(), oldImage); err != nil {
			log.Printf("remove replaced image %s: %v", oldImage, err)
		}
	}
	c.JSON(http.StatusOK, s)
}

// ToggleStatus flips 已上架 ↔ 已下架 on one row.
func (h *ServiceHandler) ToggleStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	next := domain.ToggleListed(s.Status)
	if err := h.store.UpdateStatus(c.Request.Context(), id, next); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": next})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if h.upload != nil && s.ImageURL != "" {
		if err := h.upload.RemoveImage(c.Request.Context(), s.ImageURL); err != nil {
			log.Printf("remove image of deleted service %d: %v", id, err)
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// UploadImage stores one service image. Non-image MIME types and files over
// 5MB are rejected before anything leaves the process.
func (h *ServiceHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	contentType := file.Header.Get("Content-Type")
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	url, err := h.upload.UploadServiceImage(c.Request.Context(), f, file.Filename, contentType, file.Size)
	if err != nil {
		switch err {
		case service.ErrNotAnImage, service.ErrImageTooLarge:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
