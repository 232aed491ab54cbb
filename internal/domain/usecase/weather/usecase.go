package weather

import (
	"context"

	"weather-view/internal/domain/entity"
)

type UseCase interface {
	// FetchByName resolves current conditions and forecast for a free-text city name
	FetchByName(ctx context.Context, cityName string) entity.ViewState

	// FetchByCurrentLocation asks the geolocation gateway for the position of clientIP and resolves it
	FetchByCurrentLocation(ctx context.Context, clientIP string) entity.ViewState

	// FetchByDevicePosition resolves a position the client device already obtained
	FetchByDevicePosition(ctx context.Context, position entity.PositionResult) entity.ViewState

	// State returns a copy of the current view state
	State() entity.ViewState
}
