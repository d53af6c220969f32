package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-backend/internal/models"
	"parking-backend/internal/repository"
	"parking-backend/internal/services"
	"parking-backend/internal/store"
)

func newVehicleRouter(t *testing.T) *gin.Engine {
	t.Helper()
	s, err := store.New(t.TempDir())
	require.NoError(t, err)

	handler := NewVehicleHandler(services.NewVehicleService(repository.NewVehicleRepository(s)))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/vehicles", handler.GetVehicles)
	router.POST("/api/vehicles", handler.CreateVehicle)
	router.PUT("/api/vehicles/:id/exit", handler.ExitVehicle)
	return router
}

func TestGetVehiclesEmpty(t *testing.T) {
	router := newVehicleRouter(t)

	req, _ := http.NewRequest("GET", "/api/vehicles", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCreateVehicleReturnsIDAndEntryTime(t *testing.T) {
	router := newVehicleRouter(t)

	w := postJSON(t, router, "/api/vehicles", gin.H{
		"plateNumber": "ABC-123",
		"category":    "car",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var vehicle models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vehicle))
	assert.NotEmpty(t, vehicle.ID)
	assert.Equal(t, "ABC-123", vehicle.PlateNumber)
	assert.WithinDuration(t, time.Now().UTC(), vehicle.EntryTime, 5*time.Second)
}

func TestCreateVehicleRequiresPlateNumber(t *testing.T) {
	router := newVehicleRouter(t)

	w := postJSON(t, router, "/api/vehicles", gin.H{"category": "car"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExitVehicle(t *testing.T) {
	router := newVehicleRouter(t)

	w := postJSON(t, router, "/api/vehicles", gin.H{"plateNumber": "ABC-123"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = putJSON(t, router, "/api/vehicles/"+created.ID+"/exit", gin.H{"fee": 12.5})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.NotNil(t, updated.Fee)
	assert.Equal(t, 12.5, *updated.Fee)
	assert.NotNil(t, updated.ExitTime)
}

func TestExitVehicleUnknownID(t *testing.T) {
	router := newVehicleRouter(t)

	w := putJSON(t, router, "/api/vehicles/no-such-id/exit", gin.H{"fee": 10})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response, "error")
}
