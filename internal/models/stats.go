package models

// DailyStat is one aggregate record per calendar date. Date is the natural
// key for upserts.
type DailyStat struct {
	Date                 string  `json:"date" validate:"required"`
	VehicleCount         int     `json:"vehicleCount"`
	Revenue              float64 `json:"revenue"`
	PermanentClientCount int     `json:"permanentClientCount"`
}
