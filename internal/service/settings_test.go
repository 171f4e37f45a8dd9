package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"zhanyixia/internal/models"
)

func TestGroupByCategory(t *testing.T) {
	settings := []models.SiteSetting{
		{ID: 1, SettingKey: "contact_email", Category: "contact"},
		{ID: 2, SettingKey: "contact_phone", Category: "contact"},
		{ID: 3, SettingKey: "site_name", Category: "general"},
	}
	grouped := GroupByCategory(settings)
	if len(grouped) != 2 {
		t.Fatalf("groups = %d, want 2", len(grouped))
	}
	contact := grouped["contact"]
	if len(contact) != 2 {
		t.Fatalf("contact rows = %d, want 2", len(contact))
	}
	// input order preserved within a group
	if contact[0].SettingKey != "contact_email" || contact[1].SettingKey != "contact_phone" {
		t.Errorf("contact order = [%s %s]", contact[0].SettingKey, contact[1].SettingKey)
	}
	if len(grouped["general"]) != 1 {
		t.Errorf("general rows = %d, want 1", len(grouped["general"]))
	}
}

func TestGroupByCategory_Empty(t *testing.T) {
	if g := GroupByCategory(nil); len(g) != 0 {
		t.Errorf("groups = %d, want 0", len(g))
	}
}

// fakeSettingStore records writes and optionally fails a specific id.
type fakeSettingStore struct {
	mu     sync.Mutex
	values map[uint]string
	failID uint
}

func (f *fakeSettingStore) UpdateValue(_ context.Context, id uint, value string) error {
	if f.failID != 0 && id == f.failID {
		return errors.New("update rejected")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.values == nil {
		f.values = make(map[uint]string)
	}
	f.values[id] = value
	return nil
}

func TestBulkSaveSettings_AllRowsWritten(t *testing.T) {
	store := &fakeSettingStore{}
	updates := []SettingUpdate{
		{ID: 1, Value: "战一下电竞"},
		{ID: 2, Value: "true"},
		{ID: 3, Value: ""},
	}
	if err := BulkSaveSettings(context.Background(), store, updates); err != nil {
		t.Fatalf("bulk save: %v", err)
	}
	if len(store.values) != 3 {
		t.Fatalf("rows written = %d, want 3", len(store.values))
	}
	if store.values[1] != "战一下电竞" || store.values[2] != "true" || store.values[3] != "" {
		t.Errorf("stored values = %v", store.values)
	}
}

// A failing row surfaces as the single aggregate error; the batch is not
// atomic, so other rows may still have landed.
func TestBulkSaveSettings_FailFast(t *testing.T) {
	store := &fakeSettingStore{failID: 2}
	updates := []SettingUpdate{
		{ID: 1, Value: "a"},
		{ID: 2, Value: "b"},
		{ID: 3, Value: "c"},
	}
	err := BulkSaveSettings(context.Background(), store, updates)
	if err == nil {
		t.Fatal("expected aggregate error")
	}
	if _, ok := store.values[2]; ok {
		t.Error("failed row must not be recorded")
	}
}

func TestBulkSaveSettings_NoUpdates(t *testing.T) {
	if err := BulkSaveSettings(context.Background(), &fakeSettingStore{}, nil); err != nil {
		t.Errorf("empty batch: %v", err)
	}
}
