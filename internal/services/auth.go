package services

import (
	"errors"

	"parking-backend/internal/repository"
)

// ErrInvalidCredentials is returned for every mismatch, regardless of which
// field was wrong, so a caller cannot probe for valid usernames.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	settingsRepo *repository.SettingsRepository
}

func NewAuthService(settingsRepo *repository.SettingsRepository) *AuthService {
	return &AuthService{settingsRepo: settingsRepo}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login compares the supplied credentials against the current settings
// document with exact string equality. No session or token is issued.
func (s *AuthService) Login(req *LoginRequest) error {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return err
	}
	if req.Username != settings.Username || req.Password != settings.Password {
		return ErrInvalidCredentials
	}
	return nil
}
