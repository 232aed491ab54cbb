package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"weather-view/configs"
	"weather-view/docs"
	"weather-view/internal/application/controller"
	"weather-view/internal/application/middleware"
	"weather-view/internal/application/schedule"
	"weather-view/internal/application/view"
	"weather-view/internal/domain/gateway/api"
	"weather-view/internal/domain/model"
	"weather-view/internal/domain/usecase/health"
	"weather-view/internal/domain/usecase/weather"
	"weather-view/internal/infra/httplog"
	pkghttp "weather-view/pkg/http"
	"weather-view/pkg/log"
	"weather-view/pkg/msg"
	"weather-view/pkg/resource"
)

func main() {
	defer log.Sync()

	// Init config
	if err := resource.Init(configs.Env.PropertiesFilePath); err != nil {
		log.Fatal("failed to load properties", zap.Error(err))
	}
	if err := msg.Init(configs.Env.MessagesFilePath); err != nil {
		log.Fatal("failed to load messages", zap.Error(err))
	}

	log.Info(msg.GetMessage("app.start"))

	apiKey := resource.GetString("app.weather.provider.api-key")
	if apiKey == "" {
		log.Fatal(msg.GetMessage("app.missing-api-key"))
	}
	for _, key := range errorMessageKeys {
		if !msg.Has(key) {
			log.Fatal("missing user message", zap.String("key", key))
		}
	}

	contextPath := resource.GetString("app.server.context-path")
	providerURL := resource.GetString("app.weather.provider.base-url")
	geolocationURL := resource.GetString("app.weather.geolocation.base-url")
	geolocationOn := resource.GetBool("app.weather.geolocation.enabled")

	// Init Gateways
	weatherGateway := api.NewWeatherGateway(providerURL, apiKey, resource.GetStringOrDefault("app.weather.provider.units", "metric"), pkghttp.ClientOptions{
		ConnectionTimeout: resource.GetDuration("app.weather.provider.connection-timeout"),
		ReadTimeout:       resource.GetDuration("app.weather.provider.read-timeout"),
		Logger:            httplog.NewZapLogger("openweathermap"),
	})

	geolocationGateway := api.NewDisabledGeolocationGateway()
	if geolocationOn {
		geolocationGateway = api.NewGeolocationGateway(geolocationURL, pkghttp.ClientOptions{
			ReadTimeout: resource.GetDuration("app.weather.geolocation.read-timeout"),
			Logger:      httplog.NewZapLogger("geolocation"),
		})
	}

	// Init UseCase
	forecastSize := resource.GetInt("app.weather.forecast.size")
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway, geolocationGateway, weather.Config{
		ForecastSize:  forecastSize,
		ErrorMessages: errorMessages(),
	})
	healthUseCase := health.NewHealthUseCase(health.ProviderInfo{
		BaseURL:          providerURL,
		APIKeyConfigured: apiKey != "",
		GeolocationURL:   geolocationURL,
		GeolocationOn:    geolocationOn,
	}, weatherUseCase)

	// Init View
	presenter, err := view.NewPresenter(
		resource.GetString("app.weather.forecast.time-layout"),
		resource.GetString("app.weather.forecast.timezone"),
		forecastSize,
	)
	if err != nil {
		log.Fatal("failed to create presenter", zap.Error(err))
	}
	renderer, err := view.NewTemplateRenderer()
	if err != nil {
		log.Fatal("failed to create renderer", zap.Error(err))
	}

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.IPExtractor = echo.ExtractIPFromXFFHeader()
	e.Renderer = renderer
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	group := e.Group(contextPath)

	// Init Controller
	weatherController := controller.NewWeatherController(group, weatherUseCase, presenter, contextPath)
	healthController := controller.NewHealthController(group, healthUseCase)

	// Init Routes
	weatherController.InitWeatherRoutes()
	healthController.InitHealthRoutes()
	docs.SwaggerInfo.BasePath = contextPath
	group.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	var locationScheduler *schedule.LocationScheduler
	if resource.GetBool("app.weather.startup.fetch-current-location") {
		locationScheduler, err = schedule.NewLocationScheduler(weatherUseCase, resource.GetDuration("app.weather.startup.timeout"))
		if err == nil {
			err = locationScheduler.InitLocationScheduleTasks()
		}
		if err != nil {
			log.Fatal("failed to start startup schedule", zap.Error(err))
		}
	}

	// Start Routes
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(":" + resource.GetString("app.server.port")); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()
	log.Info(msg.GetMessage("app.started"), zap.String("context_path", contextPath))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if locationScheduler != nil {
		if err := locationScheduler.Stop(); err != nil {
			log.Warn("failed to stop startup schedule", zap.Error(err))
		}
	}
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shut down server", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stop"))
}

var errorMessageKeys = map[model.FetchErrorKind]string{
	model.KindUnknown:             "weather.error.unknown",
	model.KindNotFound:            "weather.error.not-found",
	model.KindRateLimited:         "weather.error.rate-limited",
	model.KindNetworkError:        "weather.error.network",
	model.KindLocationUnavailable: "weather.error.location-unavailable",
}

// errorMessages maps each failure kind to its user-facing message
func errorMessages() map[model.FetchErrorKind]string {
	messages := make(map[model.FetchErrorKind]string, len(errorMessageKeys))
	for kind, key := range errorMessageKeys {
		messages[kind] = msg.GetMessage(key)
	}
	return messages
}
