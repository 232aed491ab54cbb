package api

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"

	"weather-view/internal/domain/entity"
	"weather-view/internal/domain/model"
	"weather-view/internal/domain/model/external"
	"weather-view/pkg/http"
)

// weatherGatewayImpl implements the WeatherGateway interface against the
// OpenWeatherMap 2.5 API
type weatherGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
	units      string
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseUrl string, apiKey string, units string, clientOptions http.ClientOptions) WeatherGateway {
	if units == "" {
		units = "metric"
	}
	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		apiKey:     apiKey,
		units:      units,
	}
}

// GetCurrentWeather gets the current conditions for a location
func (w *weatherGatewayImpl) GetCurrentWeather(ctx context.Context, query entity.LocationQuery) (*entity.WeatherSnapshot, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/weather").
		WithQueryParams(w.params(query)).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, classify(status, errResp, err)
	}

	response, ok := successResp.(*external.CurrentWeatherResponse)
	if !ok || response == nil {
		return nil, &model.FetchError{Kind: model.KindNotFound, Status: status, Message: "no current weather for location"}
	}
	snapshot := &entity.WeatherSnapshot{
		Name:        response.Name,
		Temperature: response.Main.Temp,
		Humidity:    response.Main.Humidity,
		WindSpeed:   response.Wind.Speed,
	}
	if len(response.Weather) > 0 {
		snapshot.Condition = response.Weather[0].Main
		snapshot.Description = response.Weather[0].Description
	}
	return snapshot, nil
}

// GetForecast gets the forecast periods for a location
func (w *weatherGatewayImpl) GetForecast(ctx context.Context, query entity.LocationQuery) ([]entity.ForecastEntry, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/forecast").
		WithQueryParams(w.params(query)).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, classify(status, errResp, err)
	}

	response, ok := successResp.(*external.ForecastResponse)
	if !ok || response == nil {
		return nil, &model.FetchError{Kind: model.KindNotFound, Status: status, Message: "no forecast for location"}
	}
	forecast := make([]entity.ForecastEntry, 0, len(response.List))
	for _, period := range response.List {
		entry := entity.ForecastEntry{
			Timestamp:   period.Dt,
			Temperature: period.Main.Temp,
		}
		if len(period.Weather) > 0 {
			entry.Condition = period.Weather[0].Main
			entry.Description = period.Weather[0].Description
		}
		forecast = append(forecast, entry)
	}
	return forecast, nil
}

// params adds the credential and unit system to the location parameters
func (w *weatherGatewayImpl) params(query entity.LocationQuery) map[string]string {
	params := query.Params()
	params["appid"] = w.apiKey
	params["units"] = w.units
	return params
}

// classify turns a client failure into a FetchError
func classify(status int, errResp any, err error) error {
	message := ""
	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr != nil {
		message = apiErr.Message
	}

	var statusErr *http.StatusError
	if !errors.As(err, &statusErr) {
		if status == 0 {
			return &model.FetchError{Kind: model.KindNetworkError, Cause: err}
		}
		// a 2xx body that could not be decoded
		return &model.FetchError{Kind: model.KindUnknown, Status: status, Message: "malformed provider response", Cause: err}
	}

	kind := model.KindUnknown
	switch statusErr.StatusCode {
	case nethttp.StatusNotFound:
		kind = model.KindNotFound
	case nethttp.StatusTooManyRequests:
		kind = model.KindRateLimited
	case nethttp.StatusBadGateway, nethttp.StatusServiceUnavailable, nethttp.StatusGatewayTimeout:
		kind = model.KindNetworkError
	}

	return &model.FetchError{
		Kind:    kind,
		Status:  statusErr.StatusCode,
		Message: message,
		Cause:   fmt.Errorf("provider responded %d: %w", statusErr.StatusCode, err),
	}
}
