package health

import (
	"strconv"

	"weather-view/internal/domain/model"
	"weather-view/internal/domain/usecase/weather"
)

// ProviderInfo describes the configured weather provider.
type ProviderInfo struct {
	BaseURL          string
	APIKeyConfigured bool
	GeolocationURL   string
	GeolocationOn    bool
}

type healthUseCase struct {
	provider    ProviderInfo
	viewUseCase weather.UseCase
}

func NewHealthUseCase(provider ProviderInfo, viewUseCase weather.UseCase) UseCase {
	return &healthUseCase{
		provider:    provider,
		viewUseCase: viewUseCase,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	providerHealth := useCase.providerHealth()
	geolocationHealth := useCase.geolocationHealth()
	viewHealth := useCase.viewHealth()

	overallStatus := model.StatusUp
	if providerHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:      overallStatus,
		Provider:    providerHealth,
		Geolocation: geolocationHealth,
		View:        viewHealth,
	}
}

func (useCase *healthUseCase) providerHealth() model.ComponentHealthStatus {
	details := map[string]string{
		"base_url":           useCase.provider.BaseURL,
		"api_key_configured": strconv.FormatBool(useCase.provider.APIKeyConfigured),
	}
	if !useCase.provider.APIKeyConfigured {
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
	// the provider is unusable while the latest fetch failed to reach it or was throttled
	if useCase.viewUseCase != nil {
		switch kind := model.FetchErrorKind(useCase.viewUseCase.State().ErrorKind); kind {
		case model.KindNetworkError, model.KindRateLimited:
			details["last_error_kind"] = string(kind)
			return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
		}
	}
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}

func (useCase *healthUseCase) geolocationHealth() model.ComponentHealthStatus {
	if !useCase.provider.GeolocationOn {
		return model.ComponentHealthStatus{
			Status:  model.StatusUnknown,
			Details: map[string]string{"message": "Geolocation disabled"},
		}
	}
	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: map[string]string{"base_url": useCase.provider.GeolocationURL},
	}
}

func (useCase *healthUseCase) viewHealth() model.ComponentHealthStatus {
	if useCase.viewUseCase == nil {
		return model.ComponentHealthStatus{Status: model.StatusUnknown, Details: map[string]string{}}
	}

	state := useCase.viewUseCase.State()
	details := map[string]string{
		"loading":   strconv.FormatBool(state.Loading),
		"sequence":  strconv.FormatUint(state.Sequence, 10),
		"populated": strconv.FormatBool(state.Populated()),
	}
	if state.ErrorKind != "" {
		details["last_error_kind"] = state.ErrorKind
	}
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
