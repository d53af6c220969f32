package models

import "time"

// PermanentClient is a monthly subscriber with a reserved spot. Unlike a
// Vehicle it can be patched field by field and deleted by id.
type PermanentClient struct {
	ID            string    `json:"id"`
	Name          string    `json:"name" validate:"required"`
	PlateNumber   string    `json:"plateNumber,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Spot          string    `json:"spot,omitempty"`
	MonthlyFee    float64   `json:"monthlyFee,omitempty"`
	IsPermanent   bool      `json:"isPermanent"`
	PaymentStatus string    `json:"paymentStatus"`
	EntryTime     time.Time `json:"entryTime"`
}
