package handler

import (
	"context"
	"net/http"
	"testing"

	"zhanyixia/internal/domain"
	"zhanyixia/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// fakeFAQStore records calls so tests can assert nothing was inserted.
type fakeFAQStore struct {
	rows    []models.FAQ
	creates int
	nextID  uint
}

func (f *fakeFAQStore) ListAll(_ context.Context) ([]models.FAQ, error) {
	out := make([]models.FAQ, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeFAQStore) GetByID(_ context.Context, id uint) (*models.FAQ, error) {
	for _, row := range f.rows {
		if row.ID == id {
			cp := row
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFAQStore) Create(_ context.Context, q *models.FAQ) error {
	f.creates++
	f.nextID++
	q.ID = f.nextID
	f.rows = append(f.rows, *q)
	return nil
}

func (f *fakeFAQStore) Update(_ context.Context, q *models.FAQ) error {
	for i, row := range f.rows {
		if row.ID == q.ID {
			f.rows[i] = *q
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeFAQStore) UpdateStatus(_ context.Context, id uint, status string) error {
	for i, row := range f.rows {
		if row.ID == id {
			f.rows[i].Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeFAQStore) Delete(_ context.Context, id uint) error {
	for i, row := range f.rows {
		if row.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func newFAQEngine(store *fakeFAQStore) *gin.Engine {
	h := NewFAQHandler(store)
	r := gin.New()
	r.GET("/faqs", h.List)
	r.POST("/faqs", h.Create)
	r.PUT("/faqs/:id", h.Update)
	r.PATCH("/faqs/:id/status", h.ToggleStatus)
	r.DELETE("/faqs/:id", h.Delete)
	return r
}

func TestFilterFAQs(t *testing.T) {
	list := []models.FAQ{
		{ID: 1, Category: "服务相关"},
		{ID: 2, Category: "订单相关"},
		{ID: 3, Category: "服务相关"},
	}
	if got := FilterFAQs(list, "服务相关"); len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("category filter = %v", got)
	}
	if got := FilterFAQs(list, domain.CategoryAll); len(got) != 3 {
		t.Errorf("全部 returned %d rows, want 3", len(got))
	}
	if got := FilterFAQs(list, ""); len(got) != 3 {
		t.Errorf("empty category returned %d rows, want 3", len(got))
	}
}

// An empty question must fail binding; no insert reaches the store.
func TestFAQCreate_EmptyQuestion(t *testing.T) {
	store := &fakeFAQStore{}
	r := newFAQEngine(store)
	w := doJSON(t, r, http.MethodPost, "/faqs", gin.H{
		"category": "服务相关",
		"question": "",
		"answer":   "回答",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if store.creates != 0 {
		t.Errorf("creates = %d, want 0", store.creates)
	}
}

func TestFAQCreate_DefaultsToPublished(t *testing.T) {
	store := &fakeFAQStore{}
	r := newFAQEngine(store)
	w := doJSON(t, r, http.MethodPost, "/faqs", gin.H{
		"category": "账号安全",
		"question": "如何改密码？",
		"answer":   "在设置页修改。",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}
	if store.rows[0].Status != domain.StatusPublished {
		t.Errorf("status = %q, want %q", store.rows[0].Status, domain.StatusPublished)
	}
}

func TestFAQCreate_UnknownCategory(t *testing.T) {
	store := &fakeFAQStore{}
	r := newFAQEngine(store)
	w := doJSON(t, r, http.MethodPost, "/faqs", gin.H{
		"category": "闲聊",
		"question": "q",
		"answer":   "a",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if store.creates != 0 {
		t.Error("insert issued for unknown category")
	}
}

func TestFAQToggleStatus(t *testing.T) {
	store := &fakeFAQStore{
		rows:   []models.FAQ{{ID: 1, Category: "其他问题", Question: "q", Answer: "a", Status: domain.StatusPublished}},
		nextID: 1,
	}
	r := newFAQEngine(store)
	if w := doJSON(t, r, http.MethodPatch, "/faqs/1/status", nil); w.Code != http.StatusOK {
		t.Fatalf("toggle status = %d", w.Code)
	}
	if store.rows[0].Status != domain.StatusDraft {
		t.Errorf("status = %q, want %q", store.rows[0].Status, domain.StatusDraft)
	}
}
