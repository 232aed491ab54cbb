package entity

import (
	"fmt"
	"strconv"
)

// Coordinates is a device position in floating point degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%s,%s", formatDegrees(c.Latitude), formatDegrees(c.Longitude))
}

// LocationQuery selects the place a fetch sequence resolves. Exactly one of
// CityName or Coordinates is active.
type LocationQuery struct {
	CityName    string       `json:"cityName,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// ByCityName builds a query for a free-text place name. The name is passed
// to the provider as typed.
func ByCityName(name string) LocationQuery {
	return LocationQuery{CityName: name}
}

// ByCoordinates builds a query for a latitude/longitude pair.
func ByCoordinates(coordinates Coordinates) LocationQuery {
	return LocationQuery{Coordinates: &coordinates}
}

// IsCoordinates reports whether the coordinate form is active.
func (q LocationQuery) IsCoordinates() bool {
	return q.Coordinates != nil
}

// Params returns the provider query parameters selecting this location.
func (q LocationQuery) Params() map[string]string {
	if q.Coordinates != nil {
		return map[string]string{
			"lat": formatDegrees(q.Coordinates.Latitude),
			"lon": formatDegrees(q.Coordinates.Longitude),
		}
	}
	return map[string]string{"q": q.CityName}
}

func (q LocationQuery) String() string {
	if q.Coordinates != nil {
		return q.Coordinates.String()
	}
	return q.CityName
}

func formatDegrees(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
