package health

import "weather-view/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
