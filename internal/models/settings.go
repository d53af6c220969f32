package models

// CategoryPricing defines the fee schedule for one vehicle category: a flat
// BaseFee covers the first BaseHours, every started hour beyond that costs
// ExtraHourFee.
type CategoryPricing struct {
	BaseHours    int     `json:"baseHours"`
	BaseFee      float64 `json:"baseFee"`
	ExtraHourFee float64 `json:"extraHourFee"`
}

// Settings is a singleton document. Credentials are stored in clear text and
// compared verbatim on login.
type Settings struct {
	SiteName    string                     `json:"siteName"`
	Pricing     map[string]CategoryPricing `json:"pricing"`
	Username    string                     `json:"username"`
	Password    string                     `json:"password"`
	DisplayMode string                     `json:"displayMode"`
}

// DefaultSettings returns the document materialized on first read so a fresh
// install is usable without any setup call.
func DefaultSettings() Settings {
	return Settings{
		SiteName: "Parking Lot",
		Pricing: map[string]CategoryPricing{
			"car":        {BaseHours: 2, BaseFee: 5, ExtraHourFee: 2},
			"motorcycle": {BaseHours: 2, BaseFee: 3, ExtraHourFee: 1},
			"truck":      {BaseHours: 2, BaseFee: 10, ExtraHourFee: 4},
		},
		Username:    "admin",
		Password:    "admin123",
		DisplayMode: "light",
	}
}
