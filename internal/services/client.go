package services

import (
	"time"

	"github.com/google/uuid"

	"parking-backend/internal/models"
	"parking-backend/internal/repository"
)

const initialPaymentStatus = "unpaid"

type ClientService struct {
	clientRepo *repository.ClientRepository
}

func NewClientService(clientRepo *repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

type CreateClientRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	PlateNumber string  `json:"plateNumber,omitempty" validate:"omitempty,max=20"`
	Phone       string  `json:"phone,omitempty"`
	Spot        string  `json:"spot,omitempty"`
	MonthlyFee  float64 `json:"monthlyFee,omitempty" validate:"omitempty,min=0"`
}

// UpdateClientRequest is a shallow merge: only fields present in the request
// body are applied, so patching one field never erases another.
type UpdateClientRequest struct {
	Name          *string  `json:"name,omitempty"`
	PlateNumber   *string  `json:"plateNumber,omitempty"`
	Phone         *string  `json:"phone,omitempty"`
	Spot          *string  `json:"spot,omitempty"`
	MonthlyFee    *float64 `json:"monthlyFee,omitempty"`
	PaymentStatus *string  `json:"paymentStatus,omitempty"`
}

func (s *ClientService) GetAllClients() ([]models.PermanentClient, error) {
	return s.clientRepo.List()
}

func (s *ClientService) CreateClient(req *CreateClientRequest) (models.PermanentClient, error) {
	client := models.PermanentClient{
		ID:            uuid.NewString(),
		Name:          req.Name,
		PlateNumber:   req.PlateNumber,
		Phone:         req.Phone,
		Spot:          req.Spot,
		MonthlyFee:    req.MonthlyFee,
		IsPermanent:   true,
		PaymentStatus: initialPaymentStatus,
		EntryTime:     time.Now().UTC(),
	}
	return s.clientRepo.Insert(client)
}

func (s *ClientService) UpdateClient(id string, req *UpdateClientRequest) (models.PermanentClient, error) {
	return s.clientRepo.Update(id, func(c *models.PermanentClient) {
		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.PlateNumber != nil {
			c.PlateNumber = *req.PlateNumber
		}
		if req.Phone != nil {
			c.Phone = *req.Phone
		}
		if req.Spot != nil {
			c.Spot = *req.Spot
		}
		if req.MonthlyFee != nil {
			c.MonthlyFee = *req.MonthlyFee
		}
		if req.PaymentStatus != nil {
			c.PaymentStatus = *req.PaymentStatus
		}
	})
}

func (s *ClientService) DeleteClient(id string) error {
	return s.clientRepo.Delete(id)
}
