package services

import (
	"parking-backend/internal/models"
	"parking-backend/internal/repository"
)

type SettingsService struct {
	settingsRepo *repository.SettingsRepository
}

func NewSettingsService(settingsRepo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

func (s *SettingsService) GetSettings() (models.Settings, error) {
	return s.settingsRepo.Get()
}

// ReplaceSettings overwrites the settings document with whatever the caller
// supplied.
func (s *SettingsService) ReplaceSettings(settings models.Settings) (models.Settings, error) {
	if err := s.settingsRepo.Put(settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}
