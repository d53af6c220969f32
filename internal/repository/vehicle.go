package repository

import (
	"errors"
	"sync"

	"parking-backend/internal/models"
	"parking-backend/internal/store"
)

var ErrVehicleNotFound = errors.New("vehicle not found")

const vehiclesDoc = "vehicles"

// VehicleRepository owns the vehicles collection document. The mutex
// serializes read-modify-write sequences so two requests mutating the
// collection cannot drop each other's update.
type VehicleRepository struct {
	store *store.Store
	mu    sync.Mutex
}

func NewVehicleRepository(s *store.Store) *VehicleRepository {
	return &VehicleRepository{store: s}
}

func (r *VehicleRepository) List() ([]models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return store.Read(r.store, vehiclesDoc, []models.Vehicle{})
}

func (r *VehicleRepository) Insert(vehicle models.Vehicle) (models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	vehicles, err := store.Read(r.store, vehiclesDoc, []models.Vehicle{})
	if err != nil {
		return models.Vehicle{}, err
	}

	vehicles = append(vehicles, vehicle)
	if err := store.Write(r.store, vehiclesDoc, vehicles); err != nil {
		return models.Vehicle{}, err
	}
	return vehicle, nil
}

// Update locates a vehicle by id with a linear scan, applies mutate to it in
// place and writes the collection back. Returns ErrVehicleNotFound when the
// id is unknown, leaving the document untouched.
func (r *VehicleRepository) Update(id string, mutate func(*models.Vehicle)) (models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	vehicles, err := store.Read(r.store, vehiclesDoc, []models.Vehicle{})
	if err != nil {
		return models.Vehicle{}, err
	}

	for i := range vehicles {
		if vehicles[i].ID == id {
			mutate(&vehicles[i])
			if err := store.Write(r.store, vehiclesDoc, vehicles); err != nil {
				return models.Vehicle{}, err
			}
			return vehicles[i], nil
		}
	}
	return models.Vehicle{}, ErrVehicleNotFound
}

// ReplaceAll overwrites the whole collection. Used by backup restore.
func (r *VehicleRepository) ReplaceAll(vehicles []models.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return store.Write(r.store, vehiclesDoc, vehicles)
}
