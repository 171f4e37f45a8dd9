package service

import (
	"context"

	"zhanyixia/internal/models"

	"golang.org/x/sync/errgroup"
)

// SettingValueStore is the slice of the setting repository bulk save needs.
type SettingValueStore interface {
	UpdateValue(ctx context.Context, id uint, value string) error
}

// SettingUpdate is one row of a bulk save request.
type SettingUpdate struct {
	ID    uint   `json:"id" binding:"required"`
	Value string `json:"setting_value"`
}

// GroupByCategory derives the category → rows mapping from the flat list.
// Input order (already category, key) is preserved within each group. The
// flat list stays the single source of truth; this view is recomputed on
// demand, never stored.
func GroupByCategory(settings []models.SiteSetting) map[string][]models.SiteSetting {
	grouped := make(map[string][]models.SiteSetting)
	for _, s := range settings {
		grouped[s.Category] = append(grouped[s.Category], s)
	}
	return grouped
}

// BulkSaveSettings writes every submitted row concurrently, one update per
// row. Semantics follow the original panel: no atomicity across rows, and a
// partial failure is reported as the first error while already-issued
// updates may still land.
func BulkSaveSettings(ctx context.Context, store SettingValueStore, updates []SettingUpdate) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, u := range updates {
		g.Go(func() error {
			return store.UpdateValue(ctx, u.ID, u.Value)
		})
	}
	return g.Wait()
}
