package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"weather-view/internal/application/view"
	"weather-view/internal/domain/entity"
	"weather-view/internal/domain/model"
	"weather-view/internal/domain/usecase/weather"
	"weather-view/pkg/util/numberutils"
)

type WeatherController struct {
	api        *echo.Group
	useCase    weather.UseCase
	presenter  *view.Presenter
	searchPath string
	locatePath string
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase, presenter *view.Presenter, contextPath string) *WeatherController {
	base := strings.TrimRight(contextPath, "/")
	return &WeatherController{
		api:        api,
		useCase:    useCase,
		presenter:  presenter,
		searchPath: base + "/search",
		locatePath: base + "/api/weather/location",
	}
}

// InitWeatherRoutes initializes the weather page and API routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("", controller.ShowPage)
	controller.api.GET("/", controller.ShowPage)
	controller.api.POST("/search", controller.SearchPage)

	controller.api.GET("/api/weather", controller.GetState)
	controller.api.POST("/api/weather/search", controller.FetchByName)
	controller.api.POST("/api/weather/location", controller.FetchByLocation)
	controller.api.GET("/api/weather/forecast", controller.GetForecast)
	controller.api.GET("/api/weather/icon/:condition", controller.GetIcon)
}

// ShowPage renders the weather page for the current view state
func (controller *WeatherController) ShowPage(c echo.Context) error {
	return controller.renderPage(c, controller.useCase.State(), "")
}

// SearchPage runs a fetch by city name from the page form and renders the result
func (controller *WeatherController) SearchPage(c echo.Context) error {
	city := c.FormValue("city")
	if strings.TrimSpace(city) == "" {
		return controller.renderPage(c, controller.useCase.State(), city)
	}
	return controller.renderPage(c, controller.useCase.FetchByName(c.Request().Context(), city), city)
}

func (controller *WeatherController) renderPage(c echo.Context, state entity.ViewState, city string) error {
	return c.Render(http.StatusOK, view.PageTemplate, view.PageData{
		Page:       controller.presenter.RenderPage(state, city),
		SearchPath: controller.searchPath,
		LocatePath: controller.locatePath,
	})
}

// GetState godoc
// @Summary Get the view state
// @Description Current weather, forecast, error and loading flag of the view
// @Tags weather
// @Produce json
// @Success 200 {object} view.StateResponse "Current view state"
// @Router /api/weather [get]
func (controller *WeatherController) GetState(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.presenter.RenderState(controller.useCase.State()))
}

// FetchByName godoc
// @Summary Fetch weather by city name
// @Description Fetch current conditions and then the forecast for a free-text city name
// @Tags weather
// @Accept json
// @Produce json
// @Param body body model.SearchWeatherDTO true "City to search"
// @Success 200 {object} view.StateResponse "Populated view state"
// @Failure 400 {object} map[string]string "Missing city"
// @Failure 404 {object} view.StateResponse "Location not found"
// @Failure 429 {object} view.StateResponse "Provider rate limit reached"
// @Failure 502 {object} view.StateResponse "Provider unreachable or failed"
// @Router /api/weather/search [post]
func (controller *WeatherController) FetchByName(c echo.Context) error {
	var dto model.SearchWeatherDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if strings.TrimSpace(dto.City) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "city is required"})
	}

	state := controller.useCase.FetchByName(c.Request().Context(), dto.City)
	return c.JSON(statusFor(state), controller.presenter.RenderState(state))
}

// FetchByLocation godoc
// @Summary Fetch weather for the current location
// @Description Uses the device position from the body or the lat/lon query, a denied position, or the IP geolocation of the caller when neither is given
// @Tags weather
// @Accept json
// @Produce json
// @Param lat query number false "Latitude in degrees"
// @Param lon query number false "Longitude in degrees"
// @Param body body model.DevicePositionDTO false "Device position"
// @Success 200 {object} view.StateResponse "Populated view state"
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 422 {object} view.StateResponse "Position unavailable"
// @Failure 502 {object} view.StateResponse "Provider unreachable or failed"
// @Router /api/weather/location [post]
func (controller *WeatherController) FetchByLocation(c echo.Context) error {
	var dto model.DevicePositionDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	position, provided, err := devicePosition(c, dto)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	ctx := c.Request().Context()
	var state entity.ViewState
	if provided {
		state = controller.useCase.FetchByDevicePosition(ctx, position)
	} else {
		state = controller.useCase.FetchByCurrentLocation(ctx, c.RealIP())
	}
	return c.JSON(statusFor(state), controller.presenter.RenderState(state))
}

// GetForecast godoc
// @Summary Get the rendered forecast list
// @Description First forecast periods of the view state with formatted time, icon, description and temperature
// @Tags weather
// @Produce json
// @Success 200 {array} view.ForecastItem "Forecast items"
// @Router /api/weather/forecast [get]
func (controller *WeatherController) GetForecast(c echo.Context) error {
	items := controller.presenter.RenderForecastList(controller.useCase.State().Forecast)
	if items == nil {
		items = []view.ForecastItem{}
	}
	return c.JSON(http.StatusOK, items)
}

// GetIcon godoc
// @Summary Get the icon for a condition
// @Description Unknown conditions get the clouds icon
// @Tags weather
// @Produce json
// @Param condition path string true "Condition category, e.g. Rain"
// @Success 200 {object} entity.ConditionIcon "Icon"
// @Router /api/weather/icon/{condition} [get]
func (controller *WeatherController) GetIcon(c echo.Context) error {
	return c.JSON(http.StatusOK, entity.SelectConditionIcon(c.Param("condition")))
}

// devicePosition reads a client-reported position from the body or the query.
// provided is false when the client sent neither coordinates nor a denial.
func devicePosition(c echo.Context, dto model.DevicePositionDTO) (entity.PositionResult, bool, error) {
	if dto.Denied {
		reason := dto.Reason
		if reason == "" {
			return entity.PositionFailed(entity.ErrPositionDenied), true, nil
		}
		return entity.PositionFailed(errors.New(reason)), true, nil
	}

	latitude, longitude := dto.Latitude, dto.Longitude
	if latitude == nil && longitude == nil {
		lat, lon := c.QueryParam("lat"), c.QueryParam("lon")
		if lat == "" && lon == "" {
			return entity.PositionResult{}, false, nil
		}
		parsedLat, latErr := numberutils.ToFloat64WithError(lat)
		parsedLon, lonErr := numberutils.ToFloat64WithError(lon)
		if latErr != nil || lonErr != nil {
			return entity.PositionResult{}, false, errors.New("lat and lon must be numbers")
		}
		latitude, longitude = &parsedLat, &parsedLon
	}

	if latitude == nil || longitude == nil {
		return entity.PositionResult{}, false, errors.New("latitude and longitude are both required")
	}
	if !numberutils.IsLatitude(*latitude) || !numberutils.IsLongitude(*longitude) {
		return entity.PositionResult{}, false, errors.New("coordinates out of range")
	}

	return entity.PositionOf(entity.Coordinates{Latitude: *latitude, Longitude: *longitude}), true, nil
}

// statusFor maps the view outcome to an HTTP status
func statusFor(state entity.ViewState) int {
	if state.Loading {
		return http.StatusAccepted
	}
	switch model.FetchErrorKind(state.ErrorKind) {
	case "":
		return http.StatusOK
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindRateLimited:
		return http.StatusTooManyRequests
	case model.KindLocationUnavailable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
