package handler

import (
	"context"
	"net/http"

	"zhanyixia/internal/domain"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type StatusCounter interface {
	Counter
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// DashboardHandler aggregates the admin landing numbers. All counts are
// issued concurrently; the response renders only once every read resolves.
type DashboardHandler struct {
	services     StatusCounter
	faqs         Counter
	cases        Counter
	testimonials Counter
}

func NewDashboardHandler(services StatusCounter, faqs, cases, testimonials Counter) *DashboardHandler {
	return &DashboardHandler{services: services, faqs: faqs, cases: cases, testimonials: testimonials}
}

func (h *DashboardHandler) Overview(c *gin.Context) {
	var services, listed, faqs, cases, testimonials int64
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		services, err = h.services.Count(ctx)
		return
	})
	g.Go(func() (err error) {
		listed, err = h.services.CountByStatus(ctx, domain.StatusListed)
		return
	})
	g.Go(func() (err error) {
		faqs, err = h.faqs.Count(ctx)
		return
	})
	g.Go(func() (err error) {
		cases, err = h.cases.Count(ctx)
		return
	})
	g.Go(func() (err error) {
		testimonials, err = h.testimonials.Count(ctx)
		return
	})
	if err := g.Wait(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"services":     services,
		"listed":       listed,
		"faqs":         faqs,
		"cases":        cases,
		"testimonials": testimonials,
	})
}
