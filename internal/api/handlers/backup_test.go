package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-backend/internal/mirror"
	"parking-backend/internal/models"
	"parking-backend/internal/repository"
	"parking-backend/internal/services"
	"parking-backend/internal/store"
)

func newBackupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	s, err := store.New(t.TempDir())
	require.NoError(t, err)

	backupService := services.NewBackupService(
		s,
		&mirror.Disabled{},
		repository.NewVehicleRepository(s),
		repository.NewClientRepository(s),
		repository.NewSettingsRepository(s),
		repository.NewStatsRepository(s),
	)
	handler := NewBackupHandler(backupService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/backup", handler.SaveBackup)
	router.GET("/api/backup", handler.LoadBackup)
	return router
}

func TestSaveBackupReportsMirrorFlag(t *testing.T) {
	router := newBackupRouter(t)

	w := postJSON(t, router, "/api/backup", gin.H{
		"vehicles": []gin.H{{"id": "v1", "plateNumber": "ABC-123", "entryTime": "2026-08-22T09:30:00Z"}},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	// no mirror configured, so the remote flag is false
	assert.Equal(t, false, response["supabase"])
}

func TestSaveThenLoadBackup(t *testing.T) {
	router := newBackupRouter(t)

	snap := gin.H{
		"vehicles":   []gin.H{{"id": "v1", "plateNumber": "ABC-123", "entryTime": "2026-08-22T09:30:00Z"}},
		"dailyStats": []gin.H{{"date": "2026-08-22", "vehicleCount": 12, "revenue": 84}},
	}
	w := postJSON(t, router, "/api/backup", snap)
	require.Equal(t, http.StatusOK, w.Code)

	req, _ := http.NewRequest("GET", "/api/backup", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var loaded models.BackupSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loaded))
	require.Len(t, loaded.Vehicles, 1)
	assert.Equal(t, "v1", loaded.Vehicles[0].ID)
	require.Len(t, loaded.DailyStats, 1)
	assert.Equal(t, "2026-08-22", loaded.DailyStats[0].Date)
	assert.Nil(t, loaded.PermanentClients)
	assert.Nil(t, loaded.Settings)
}

func TestLoadBackupWithNothingSaved(t *testing.T) {
	router := newBackupRouter(t)

	req, _ := http.NewRequest("GET", "/api/backup", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "{}", w.Body.String())
}
