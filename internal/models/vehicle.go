package models

import "time"

type Vehicle struct {
	ID          string     `json:"id"`
	PlateNumber string     `json:"plateNumber" validate:"required"`
	Category    string     `json:"category,omitempty"`
	Model       string     `json:"model,omitempty"`
	Color       string     `json:"color,omitempty"`
	OwnerName   string     `json:"ownerName,omitempty"`
	EntryTime   time.Time  `json:"entryTime"`
	ExitTime    *time.Time `json:"exitTime,omitempty"`
	Fee         *float64   `json:"fee,omitempty"`
}
