package services

import (
	"time"

	"github.com/google/uuid"

	"parking-backend/internal/models"
	"parking-backend/internal/repository"
)

type VehicleService struct {
	vehicleRepo *repository.VehicleRepository
}

func NewVehicleService(vehicleRepo *repository.VehicleRepository) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo}
}

type CreateVehicleRequest struct {
	PlateNumber string `json:"plateNumber" validate:"required,min=1,max=20"`
	Category    string `json:"category,omitempty" validate:"omitempty,max=30"`
	Model       string `json:"model,omitempty"`
	Color       string `json:"color,omitempty"`
	OwnerName   string `json:"ownerName,omitempty"`
}

type ExitVehicleRequest struct {
	Fee float64 `json:"fee" validate:"min=0"`
}

func (s *VehicleService) GetAllVehicles() ([]models.Vehicle, error) {
	return s.vehicleRepo.List()
}

// RegisterEntry stores the caller's payload with a server-assigned id and
// entry timestamp.
func (s *VehicleService) RegisterEntry(req *CreateVehicleRequest) (models.Vehicle, error) {
	vehicle := models.Vehicle{
		ID:          uuid.NewString(),
		PlateNumber: req.PlateNumber,
		Category:    req.Category,
		Model:       req.Model,
		Color:       req.Color,
		OwnerName:   req.OwnerName,
		EntryTime:   time.Now().UTC(),
	}
	return s.vehicleRepo.Insert(vehicle)
}

// RegisterExit stamps the exit time and fee onto the vehicle with the given
// id. A vehicle is mutated exactly once this way; it is never deleted.
func (s *VehicleService) RegisterExit(id string, req *ExitVehicleRequest) (models.Vehicle, error) {
	exitTime := time.Now().UTC()
	return s.vehicleRepo.Update(id, func(v *models.Vehicle) {
		v.ExitTime = &exitTime
		fee := req.Fee
		v.Fee = &fee
	})
}
