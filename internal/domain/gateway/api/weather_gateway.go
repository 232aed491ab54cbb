package api

import (
	"context"

	"weather-view/internal/domain/entity"
)

// WeatherGateway defines the interface for the weather provider calls
type WeatherGateway interface {
	// GetCurrentWeather gets the current conditions for a city name or coordinates
	GetCurrentWeather(ctx context.Context, query entity.LocationQuery) (*entity.WeatherSnapshot, error)

	// GetForecast gets the provider forecast periods, in provider order and untruncated
	GetForecast(ctx context.Context, query entity.LocationQuery) ([]entity.ForecastEntry, error)
}
