package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parking-backend/internal/models"
	"parking-backend/internal/services"
	"parking-backend/pkg/utils"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings returns the settings document, defaults included on first read
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings()
	if err != nil {
		utils.InternalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings replaces the settings document in full, no merge
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	updated, err := h.settingsService.ReplaceSettings(settings)
	if err != nil {
		utils.InternalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, updated)
}
