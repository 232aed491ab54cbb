package entity

// WeatherSnapshot holds the current conditions for one location.
type WeatherSnapshot struct {
	Name        string  `json:"name"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
}
