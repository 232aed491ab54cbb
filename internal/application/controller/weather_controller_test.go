package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"weather-view/internal/application/view"
	"weather-view/internal/domain/entity"
	"weather-view/internal/domain/gateway/api"
	"weather-view/internal/domain/model"
	"weather-view/internal/domain/usecase/health"
	"weather-view/internal/domain/usecase/weather"
	pkghttp "weather-view/pkg/http"
	"weather-view/pkg/msg"
)

func TestMain(m *testing.M) {
	if err := msg.Init(filepath.Join("..", "..", "..", "configs", "messages.yml")); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type stubWeatherGateway struct {
	currentErr error
	periods    int
	queries    []entity.LocationQuery
}

func (s *stubWeatherGateway) GetCurrentWeather(ctx context.Context, query entity.LocationQuery) (*entity.WeatherSnapshot, error) {
	s.queries = append(s.queries, query)
	if s.currentErr != nil {
		return nil, s.currentErr
	}
	return &entity.WeatherSnapshot{Name: "Paris", Condition: "Rain", Description: "light rain", Temperature: 15.2, Humidity: 80, WindSpeed: 3.1}, nil
}

func (s *stubWeatherGateway) GetForecast(ctx context.Context, query entity.LocationQuery) ([]entity.ForecastEntry, error) {
	entries := make([]entity.ForecastEntry, s.periods)
	for i := range entries {
		entries[i] = entity.ForecastEntry{Timestamp: int64(1700000000 + i*10800), Condition: "Rain", Description: "light rain", Temperature: 14}
	}
	return entries, nil
}

type stubGeolocation struct {
	result   entity.PositionResult
	clientIP string
	calls    int
}

func (s *stubGeolocation) CurrentPosition(_ context.Context, clientIP string) entity.PositionResult {
	s.calls++
	s.clientIP = clientIP
	return s.result
}

func newTestServer(t *testing.T, gateway *stubWeatherGateway, geolocation api.GeolocationGateway) *echo.Echo {
	t.Helper()

	presenter, err := view.NewPresenter("", "UTC", 5)
	if err != nil {
		t.Fatalf("NewPresenter failed: %v", err)
	}
	renderer, err := view.NewTemplateRenderer()
	if err != nil {
		t.Fatalf("NewTemplateRenderer failed: %v", err)
	}

	useCase := weather.NewWeatherUseCase(gateway, geolocation, weather.Config{ErrorMessages: map[model.FetchErrorKind]string{
		model.KindUnknown:             msg.GetMessage("weather.error.unknown"),
		model.KindNotFound:            msg.GetMessage("weather.error.not-found"),
		model.KindLocationUnavailable: msg.GetMessage("weather.error.location-unavailable"),
	}})

	e := echo.New()
	e.Renderer = renderer
	group := e.Group("/weather-view")
	NewWeatherController(group, useCase, presenter, "/weather-view").InitWeatherRoutes()
	NewHealthController(group, health.NewHealthUseCase(health.ProviderInfo{APIKeyConfigured: true}, useCase)).InitHealthRoutes()
	return e
}

func perform(e *echo.Echo, method, target, contentType, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) view.StateResponse {
	t.Helper()
	var response view.StateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return response
}

func TestFetchByNameEndpoint(t *testing.T) {
	e := newTestServer(t, &stubWeatherGateway{periods: 8}, &stubGeolocation{})

	rec := perform(e, http.MethodPost, "/weather-view/api/weather/search", echo.MIMEApplicationJSON, `{"city":"Paris"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	response := decodeState(t, rec)
	if response.Weather == nil || response.Weather.Name != "Paris" {
		t.Fatalf("weather = %+v", response.Weather)
	}
	if response.Current == nil || response.Current.Temperature != "Temperature: 15.2 °C" {
		t.Errorf("current = %+v", response.Current)
	}
	if len(response.ForecastItems) != 5 || len(response.Forecast.Entries) != 5 {
		t.Errorf("forecast items = %d, entries = %d", len(response.ForecastItems), len(response.Forecast.Entries))
	}
	if response.Loading || response.Error != "" {
		t.Errorf("unexpected loading/error %v %q", response.Loading, response.Error)
	}

	rec = perform(e, http.MethodGet, "/weather-view/api/weather/forecast", "", "")
	var items []view.ForecastItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil || len(items) != 5 {
		t.Errorf("forecast endpoint returned %d items (%v)", len(items), err)
	}
}

func TestFetchByNameValidation(t *testing.T) {
	e := newTestServer(t, &stubWeatherGateway{periods: 8}, &stubGeolocation{})

	if rec := perform(e, http.MethodPost, "/weather-view/api/weather/search", echo.MIMEApplicationJSON, `{"city":"  "}`); rec.Code != http.StatusBadRequest {
		t.Errorf("blank city status = %d", rec.Code)
	}
	if rec := perform(e, http.MethodPost, "/weather-view/api/weather/search", echo.MIMEApplicationJSON, `{"city":`); rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d", rec.Code)
	}
}

func TestFetchByNameNotFound(t *testing.T) {
	gateway := &stubWeatherGateway{periods: 8, currentErr: &model.FetchError{Kind: model.KindNotFound, Status: 404}}
	e := newTestServer(t, gateway, &stubGeolocation{})

	rec := perform(e, http.MethodPost, "/weather-view/api/weather/search", echo.MIMEApplicationJSON, `{"city":"Atlantis"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	response := decodeState(t, rec)
	if response.Weather != nil || response.Forecast != nil || response.ErrorKind != "NOT_FOUND" {
		t.Errorf("unexpected state %+v", response.ViewState)
	}
	if response.Error != msg.GetMessage("weather.error.not-found") {
		t.Errorf("error = %q", response.Error)
	}
}

func TestFetchByLocationEndpoint(t *testing.T) {
	cases := []struct {
		name        string
		target      string
		contentType string
		body        string
		geolocation *stubGeolocation
		wantStatus  int
		wantLat     string
	}{
		{"body coordinates", "/weather-view/api/weather/location", echo.MIMEApplicationJSON, `{"latitude":48.8566,"longitude":2.3522}`, &stubGeolocation{}, http.StatusOK, "48.8566"},
		{"query coordinates", "/weather-view/api/weather/location?lat=-33.87&lon=151.21", "", "", &stubGeolocation{}, http.StatusOK, "-33.87"},
		{"server geolocation", "/weather-view/api/weather/location", "", "", &stubGeolocation{result: entity.PositionOf(entity.Coordinates{Latitude: 40.4, Longitude: -3.7})}, http.StatusOK, "40.4"},
		{"denied", "/weather-view/api/weather/location", echo.MIMEApplicationJSON, `{"denied":true,"reason":"User denied Geolocation"}`, &stubGeolocation{}, http.StatusUnprocessableEntity, ""},
		{"server geolocation failed", "/weather-view/api/weather/location", "", "", &stubGeolocation{result: entity.PositionFailed(nil)}, http.StatusUnprocessableEntity, ""},
		{"out of range", "/weather-view/api/weather/location", echo.MIMEApplicationJSON, `{"latitude":91,"longitude":0}`, &stubGeolocation{}, http.StatusBadRequest, ""},
		{"half coordinates", "/weather-view/api/weather/location", echo.MIMEApplicationJSON, `{"latitude":10}`, &stubGeolocation{}, http.StatusBadRequest, ""},
		{"bad query", "/weather-view/api/weather/location?lat=north&lon=1", "", "", &stubGeolocation{}, http.StatusBadRequest, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gateway := &stubWeatherGateway{periods: 3}
			e := newTestServer(t, gateway, tc.geolocation)

			rec := perform(e, http.MethodPost, tc.target, tc.contentType, tc.body)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d, body = %s", rec.Code, tc.wantStatus, rec.Body.String())
			}

			if tc.wantLat != "" {
				if len(gateway.queries) == 0 || gateway.queries[0].Params()["lat"] != tc.wantLat {
					t.Errorf("queries = %+v", gateway.queries)
				}
				return
			}
			if len(gateway.queries) != 0 {
				t.Errorf("provider must not be called, got %+v", gateway.queries)
			}
			if tc.wantStatus == http.StatusUnprocessableEntity {
				response := decodeState(t, rec)
				if response.Loading || response.ErrorKind != string(model.KindLocationUnavailable) {
					t.Errorf("unexpected state %+v", response.ViewState)
				}
			}
		})
	}
}

func TestGetIconEndpoint(t *testing.T) {
	e := newTestServer(t, &stubWeatherGateway{}, &stubGeolocation{})

	for condition, want := range map[string]entity.ConditionIcon{"Snow": entity.IconSnow, "Haze": entity.IconClouds} {
		rec := perform(e, http.MethodGet, "/weather-view/api/weather/icon/"+condition, "", "")
		var icon entity.ConditionIcon
		if err := json.Unmarshal(rec.Body.Bytes(), &icon); err != nil || icon != want {
			t.Errorf("%s: icon = %+v (%v)", condition, icon, err)
		}
	}
}

func TestPageRoutes(t *testing.T) {
	e := newTestServer(t, &stubWeatherGateway{periods: 8}, &stubGeolocation{})

	rec := perform(e, http.MethodGet, "/weather-view", "", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `placeholder="Enter city"`) {
		t.Fatalf("page status = %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), `class="weather-info"`) {
		t.Error("idle page must not show a weather panel")
	}

	form := url.Values{"city": {"Paris"}}.Encode()
	rec = perform(e, http.MethodPost, "/weather-view/search", echo.MIMEApplicationForm, form)
	body := rec.Body.String()
	if rec.Code != http.StatusOK {
		t.Fatalf("search status = %d", rec.Code)
	}
	for _, want := range []string{"<h2>Paris</h2>", "Humidity: 80 %", "Wind Speed: 3.1 m/s", `value="Paris"`} {
		if !strings.Contains(body, want) {
			t.Errorf("search page is missing %q", want)
		}
	}
	if got := strings.Count(body, `class="forecast-item"`); got != 5 {
		t.Errorf("forecast items = %d", got)
	}
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestServer(t, &stubWeatherGateway{}, &stubGeolocation{})

	rec := perform(e, http.MethodGet, "/weather-view/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var response model.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil || response.Status != model.StatusUp {
		t.Errorf("health = %+v (%v)", response, err)
	}
}

func TestFetchByLocationLocatesCaller(t *testing.T) {
	geolocation := &stubGeolocation{result: entity.PositionOf(entity.Coordinates{Latitude: 40.4, Longitude: -3.7})}
	e := newTestServer(t, &stubWeatherGateway{periods: 5}, geolocation)

	req := httptest.NewRequest(http.MethodPost, "/weather-view/api/weather/location", nil)
	req.Header.Set(echo.HeaderXForwardedFor, "203.0.113.7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if geolocation.calls != 1 || geolocation.clientIP != "203.0.113.7" {
		t.Errorf("geolocation calls = %d, client = %q", geolocation.calls, geolocation.clientIP)
	}
}

func TestFetchByLocationQueriesCallerAddress(t *testing.T) {
	var lookupPath string
	locator := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lookupPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","city":"Madrid","lat":40.4,"lon":-3.7}`))
	}))
	defer locator.Close()

	gateway := &stubWeatherGateway{periods: 5}
	e := newTestServer(t, gateway, api.NewGeolocationGateway(locator.URL, pkghttp.ClientOptions{}))

	req := httptest.NewRequest(http.MethodPost, "/weather-view/api/weather/location", nil)
	req.RemoteAddr = "203.0.113.7:1234"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if lookupPath != "/json/203.0.113.7" {
		t.Errorf("lookup path = %q, want the caller address", lookupPath)
	}
	if len(gateway.queries) == 0 || gateway.queries[0].Params()["lat"] != "40.4" {
		t.Errorf("queries = %+v", gateway.queries)
	}
}

func TestIdlePageReportsDevicePosition(t *testing.T) {
	e := newTestServer(t, &stubWeatherGateway{periods: 5}, &stubGeolocation{})

	idle := perform(e, http.MethodGet, "/weather-view/", "", "").Body.String()
	if !strings.Contains(idle, `data-locate-path="/weather-view/api/weather/location"`) {
		t.Error("page is missing the location endpoint")
	}
	for _, want := range []string{"navigator.geolocation.getCurrentPosition", "denied: true", "latitude: position.coords.latitude"} {
		if !strings.Contains(idle, want) {
			t.Errorf("idle page is missing %q", want)
		}
	}

	// once any fetch ran the page renders that state instead of asking again
	perform(e, http.MethodPost, "/weather-view/api/weather/location", echo.MIMEApplicationJSON, `{"denied":true,"reason":"User denied Geolocation"}`)
	settled := perform(e, http.MethodGet, "/weather-view/", "", "").Body.String()
	if strings.Contains(settled, "navigator.geolocation") {
		t.Error("settled page must not request the position again")
	}
	if !strings.Contains(settled, msg.GetMessage("weather.error.location-unavailable")) {
		t.Error("denied position must show the location error")
	}
}
