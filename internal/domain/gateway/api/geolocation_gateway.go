package api

import (
	"context"

	"weather-view/internal/domain/entity"
)

// GeolocationGateway performs a one-shot current position request for the
// caller at clientIP. An empty or non-public clientIP locates the server itself.
type GeolocationGateway interface {
	CurrentPosition(ctx context.Context, clientIP string) entity.PositionResult
}
