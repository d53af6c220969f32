package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parking-backend/internal/models"
	"parking-backend/internal/services"
	"parking-backend/pkg/utils"
)

type BackupHandler struct {
	backupService *services.BackupService
}

func NewBackupHandler(backupService *services.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// SaveBackup persists the posted snapshot locally and mirrors it remotely.
// The supabase flag reports the mirror outcome; the save itself succeeds
// once the local writes succeed.
func (h *BackupHandler) SaveBackup(c *gin.Context) {
	var snap models.BackupSnapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	mirrored, err := h.backupService.Save(c.Request.Context(), &snap)
	if err != nil {
		utils.InternalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"supabase": mirrored,
	})
}

// LoadBackup returns the remote snapshot when available, else the local one,
// else an empty object.
func (h *BackupHandler) LoadBackup(c *gin.Context) {
	snap, err := h.backupService.Load(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, snap)
}
