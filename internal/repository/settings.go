package repository

import (
	"sync"

	"parking-backend/internal/models"
	"parking-backend/internal/store"
)

const settingsDoc = "settings"

// SettingsRepository owns the singleton settings document. Reads always go
// to the store; nothing is cached across requests, so a write is visible to
// the next read.
type SettingsRepository struct {
	store *store.Store
	mu    sync.Mutex
}

func NewSettingsRepository(s *store.Store) *SettingsRepository {
	return &SettingsRepository{store: s}
}

func (r *SettingsRepository) Get() (models.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return store.Read(r.store, settingsDoc, models.DefaultSettings())
}

// Put replaces the settings document in full. No merge, no validation.
func (r *SettingsRepository) Put(settings models.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return store.Write(r.store, settingsDoc, settings)
}
