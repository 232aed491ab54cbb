package weather

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weather-view/internal/domain/entity"
	"weather-view/internal/domain/gateway/api"
	"weather-view/internal/domain/model"
	"weather-view/pkg/log"
)

// DefaultErrorMessage is shown when no message is configured for a failure kind.
const DefaultErrorMessage = "Unable to fetch weather data. Please try again."

// Config carries the user-facing settings of the view controller.
type Config struct {
	ForecastSize  int
	ErrorMessages map[model.FetchErrorKind]string
}

type weatherUseCase struct {
	weatherGateway     api.WeatherGateway
	geolocationGateway api.GeolocationGateway
	config             Config
	now                func() time.Time

	mutex  sync.RWMutex
	latest uint64
	state  entity.ViewState
}

func NewWeatherUseCase(weatherGateway api.WeatherGateway, geolocationGateway api.GeolocationGateway, config Config) UseCase {
	if config.ForecastSize <= 0 {
		config.ForecastSize = entity.ForecastSize
	}
	if geolocationGateway == nil {
		geolocationGateway = api.NewDisabledGeolocationGateway()
	}
	return &weatherUseCase{
		weatherGateway:     weatherGateway,
		geolocationGateway: geolocationGateway,
		config:             config,
		now:                time.Now,
	}
}

// fetchResult is what one fetch sequence produced.
type fetchResult struct {
	weather  *entity.WeatherSnapshot
	forecast *entity.ForecastSnapshot
	err      error
}

// FetchByName resolves current conditions and forecast for a free-text city name
func (uc *weatherUseCase) FetchByName(ctx context.Context, cityName string) entity.ViewState {
	query := entity.ByCityName(cityName)
	sequence := uc.begin(&query)
	uc.complete(sequence, &query, uc.fetch(ctx, sequence, query))
	return uc.State()
}

// FetchByCurrentLocation asks the geolocation gateway for the position of clientIP and resolves it
func (uc *weatherUseCase) FetchByCurrentLocation(ctx context.Context, clientIP string) entity.ViewState {
	sequence := uc.begin(nil)
	uc.resolvePosition(ctx, sequence, uc.geolocationGateway.CurrentPosition(ctx, clientIP))
	return uc.State()
}

// FetchByDevicePosition resolves a position the client device already obtained
func (uc *weatherUseCase) FetchByDevicePosition(ctx context.Context, position entity.PositionResult) entity.ViewState {
	sequence := uc.begin(nil)
	uc.resolvePosition(ctx, sequence, position)
	return uc.State()
}

// State returns a copy of the current view state
func (uc *weatherUseCase) State() entity.ViewState {
	uc.mutex.RLock()
	defer uc.mutex.RUnlock()
	return uc.state.Clone()
}

// resolvePosition runs the coordinate flow or settles the sequence with a
// location failure, so Loading always resolves.
func (uc *weatherUseCase) resolvePosition(ctx context.Context, sequence uint64, position entity.PositionResult) {
	position.Resolve(
		func(coordinates entity.Coordinates) {
			query := entity.ByCoordinates(coordinates)
			uc.complete(sequence, &query, uc.fetch(ctx, sequence, query))
		},
		func(err error) {
			uc.complete(sequence, nil, fetchResult{err: &model.FetchError{
				Kind:    model.KindLocationUnavailable,
				Message: "current position unavailable",
				Cause:   err,
			}})
		},
	)
}

// begin starts a new fetch sequence and marks the view as loading.
func (uc *weatherUseCase) begin(query *entity.LocationQuery) uint64 {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	uc.latest++
	uc.state.Loading = true
	uc.state.Sequence = uc.latest
	if query != nil {
		uc.state.Query = query
	}
	return uc.latest
}

// fetch issues the current conditions call and, once it succeeded, the forecast call.
func (uc *weatherUseCase) fetch(ctx context.Context, sequence uint64, query entity.LocationQuery) fetchResult {
	correlationID := uuid.NewString()
	log.Debug("Fetching weather",
		zap.Uint64("sequence", sequence),
		zap.String("correlation_id", correlationID),
		zap.String("location", query.String()))

	current, err := uc.weatherGateway.GetCurrentWeather(ctx, query)
	if err != nil {
		return fetchResult{err: fmt.Errorf("current weather for %q: %w", query.String(), err)}
	}

	periods, err := uc.weatherGateway.GetForecast(ctx, query)
	if err != nil {
		return fetchResult{err: fmt.Errorf("forecast for %q: %w", query.String(), err)}
	}

	log.Debug("Weather fetched",
		zap.Uint64("sequence", sequence),
		zap.String("correlation_id", correlationID),
		zap.Int("periods", len(periods)))

	return fetchResult{
		weather:  current,
		forecast: &entity.ForecastSnapshot{Entries: entity.TruncateForecast(periods, uc.config.ForecastSize)},
	}
}

// complete applies a sequence result unless a newer sequence has started.
func (uc *weatherUseCase) complete(sequence uint64, query *entity.LocationQuery, result fetchResult) {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	if sequence != uc.latest {
		log.Info("Discarding superseded weather result",
			zap.Uint64("sequence", sequence),
			zap.Uint64("latest", uc.latest))
		return
	}

	uc.state.Loading = false
	uc.state.UpdatedAt = uc.now()
	if query != nil {
		uc.state.Query = query
	}

	if result.err != nil {
		kind := model.KindOf(result.err)
		log.Error("Weather fetch failed",
			zap.Uint64("sequence", sequence),
			zap.String("kind", string(kind)),
			zap.Int("status", statusOf(result.err)),
			zap.Error(result.err))

		uc.state.Weather = nil
		uc.state.Forecast = nil
		uc.state.Error = uc.messageFor(kind)
		uc.state.ErrorKind = string(kind)
		return
	}

	uc.state.Weather = result.weather
	uc.state.Forecast = result.forecast
	uc.state.Error = ""
	uc.state.ErrorKind = ""
}

func (uc *weatherUseCase) messageFor(kind model.FetchErrorKind) string {
	if message, ok := uc.config.ErrorMessages[kind]; ok && message != "" {
		return message
	}
	if message, ok := uc.config.ErrorMessages[model.KindUnknown]; ok && message != "" {
		return message
	}
	return DefaultErrorMessage
}

func statusOf(err error) int {
	var fetchErr *model.FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Status
	}
	return 0
}
