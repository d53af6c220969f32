package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"parking-backend/internal/repository"
	"parking-backend/internal/services"
	"parking-backend/pkg/utils"
)

type VehicleHandler struct {
	vehicleService *services.VehicleService
	validator      *validator.Validate
}

func NewVehicleHandler(vehicleService *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		validator:      validator.New(),
	}
}

// GetVehicles retrieves all vehicles
func (h *VehicleHandler) GetVehicles(c *gin.Context) {
	vehicles, err := h.vehicleService.GetAllVehicles()
	if err != nil {
		utils.InternalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// CreateVehicle registers a vehicle entry
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req services.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	vehicle, err := h.vehicleService.RegisterEntry(&req)
	if err != nil {
		utils.InternalErrorResponse(c)
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// ExitVehicle records an exit time and fee on an existing vehicle
func (h *VehicleHandler) ExitVehicle(c *gin.Context) {
	vehicleID := c.Param("id")

	var req services.ExitVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	vehicle, err := h.vehicleService.RegisterExit(vehicleID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Vehicle not found")
			return
		}
		utils.InternalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}
