package model

type SearchWeatherDTO struct {
	City string `json:"city" form:"city"`
}

// DevicePositionDTO is the position a client device reports. Denied marks a
// refused or failed browser geolocation request.
type DevicePositionDTO struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Denied    bool     `json:"denied"`
	Reason    string   `json:"reason"`
}
