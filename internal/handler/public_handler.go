package handler

import (
	"context"
	"net/http"

	"zhanyixia/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// Read-only store slices for the public pages.
type PublicServiceStore interface {
	ListListed(ctx context.Context) ([]models.Service, error)
}

type PublicCaseStore interface {
	ListPublished(ctx context.Context) ([]models.Case, error)
}

type PublicFAQStore interface {
	ListPublished(ctx context.Context) ([]models.FAQ, error)
}

type PublicTestimonialStore interface {
	ListPublished(ctx context.Context) ([]models.Testimonial, error)
}

type PublicStatStore interface {
	ListAll(ctx context.Context) ([]models.SiteStat, error)
}

type PublicSettingStore interface {
	ListPublic(ctx context.Context) ([]models.SiteSetting, error)
}

// PublicHandler serves the unauthenticated content reads behind the site
// pages. Pages that show several datasets issue their reads concurrently and
// respond only once all have resolved, failing as a whole if any one fails.
type PublicHandler struct {
	services     PublicServiceStore
	cases        PublicCaseStore
	faqs         PublicFAQStore
	testimonials PublicTestimonialStore
	stats        PublicStatStore
	settings     PublicSettingStore
}

func NewPublicHandler(
	services PublicServiceStore,
	cases PublicCaseStore,
	faqs PublicFAQStore,
	testimonials PublicTestimonialStore,
	stats PublicStatStore,
	settings PublicSettingStore,
) *PublicHandler {
	return &PublicHandler{
		services:     services,
		cases:        cases,
		faqs:         faqs,
		testimonials: testimonials,
		stats:        stats,
		settings:     settings,
	}
}

// Services backs the /services page: listed rows only, sort_order ascending,
// optional exact-category filter.
func (h *PublicHandler) Services(c *gin.Context) {
	list, err := h.services.ListListed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	filtered := FilterServices(list, c.Query("category"), "")
	c.JSON(http.StatusOK, gin.H{"services": filtered})
}

// Cases backs the /cases page: published cases, published testimonials and
// the stats strip, fetched in parallel.
func (h *PublicHandler) Cases(c *gin.Context) {
	var (
		cases        []models.Case
		testimonials []models.Testimonial
		stats        []models.SiteStat
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		cases, err = h.cases.ListPublished(ctx)
		return
	})
	g.Go(func() (err error) {
		testimonials, err = h.testimonials.ListPublished(ctx)
		return
	})
	g.Go(func() (err error) {
		stats, err = h.stats.ListAll(ctx)
		return
	})
	if err := g.Wait(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cases":        cases,
		"testimonials": testimonials,
		"stats":        stats,
	})
}

// GroupFAQs derives the category → rows view from the flat, already-sorted
// list. Within a group the fetch order (sort_order) is preserved.
func GroupFAQs(list []models.FAQ) map[string][]models.FAQ {
	grouped := make(map[string][]models.FAQ)
	for _, f := range list {
		grouped[f.Category] = append(grouped[f.Category], f)
	}
	return grouped
}

// FAQs backs the /faq page: published rows, flat and grouped by category.
func (h *PublicHandler) FAQs(c *gin.Context) {
	list, err := h.faqs.ListPublished(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"faqs":    list,
		"grouped": GroupFAQs(list),
	})
}

// Stats backs the home page stats strip.
func (h *PublicHandler) Stats(c *gin.Context) {
	list, err := h.stats.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": list})
}

// Settings exposes only rows flagged is_public (contact info, site name).
func (h *PublicHandler) Settings(c *gin.Context) {
	list, err := h.settings.ListPublic(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// keyed by setting_key for direct consumption by the pages
	values := make(map[string]string, len(list))
	for _, s := range list {
		values[s.SettingKey] = s.SettingValue
	}
	c.JSON(http.StatusOK, gin.H{"settings": list, "values": values})
}

// Home backs the landing page: listed services, stats and published
// testimonials in one concurrent round trip.
func (h *PublicHandler) Home(c *gin.Context) {
	var (
		services     []models.Service
		stats        []models.SiteStat
		testimonials []models.Testimonial
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		services, err = h.services.ListListed(ctx)
		return
	})
	g.Go(func() (err error) {
		stats, err = h.stats.ListAll(ctx)
		return
	})
	g.Go(func() (err error) {
		testimonials, err = h.testimonials.ListPublished(ctx)
		return
	})
	if err := g.Wait(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// the landing page shows a teaser, not the full catalogue
	if len(services) > 8 {
		services = services[:8]
	}
	c.JSON(http.StatusOK, gin.H{
		"services":     services,
		"stats":        stats,
		"testimonials": testimonials,
	})
}
