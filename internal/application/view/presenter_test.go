package view

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"weather-view/internal/domain/entity"
	"weather-view/pkg/msg"
)

func TestMain(m *testing.M) {
	if err := msg.Init(filepath.Join("..", "..", "..", "configs", "messages.yml")); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newUTCPresenter(t *testing.T) *Presenter {
	t.Helper()
	presenter, err := NewPresenter("", "UTC", 0)
	if err != nil {
		t.Fatalf("NewPresenter failed: %v", err)
	}
	return presenter
}

func forecastOf(n int) *entity.ForecastSnapshot {
	entries := make([]entity.ForecastEntry, n)
	for i := range entries {
		entries[i] = entity.ForecastEntry{
			Timestamp:   int64(1700000000 + i*10800),
			Condition:   []string{"Rain", "Clouds", "Clear", "Snow", "Thunderstorm", "Mist"}[i%6],
			Description: "period",
			Temperature: 12.5 + float64(i),
		}
	}
	return &entity.ForecastSnapshot{Entries: entries}
}

func TestRenderForecastList(t *testing.T) {
	presenter := newUTCPresenter(t)

	items := presenter.RenderForecastList(forecastOf(8))
	if len(items) != 5 {
		t.Fatalf("len = %d, want 5", len(items))
	}
	if items[0].Time != "11/14/2023, 10:13:20 PM" {
		t.Errorf("time = %q", items[0].Time)
	}
	// consecutive 3h periods, no grouping by day
	if items[1].Time != "11/15/2023, 1:13:20 AM" {
		t.Errorf("time = %q", items[1].Time)
	}
	if items[0].Icon != entity.IconRain || items[2].Icon != entity.IconClear {
		t.Errorf("icons = %+v, %+v", items[0].Icon, items[2].Icon)
	}
	if items[0].Temperature != "Temp: 12.5 °C" {
		t.Errorf("temperature = %q", items[0].Temperature)
	}
	for i := 1; i < len(items); i++ {
		if items[i].Key <= items[i-1].Key {
			t.Errorf("items out of order at %d", i)
		}
	}

	if got := presenter.RenderForecastList(nil); got != nil {
		t.Errorf("nil forecast rendered %v", got)
	}
	if got := presenter.RenderForecastList(forecastOf(2)); len(got) != 2 {
		t.Errorf("short forecast rendered %d items", len(got))
	}
}

func TestRenderCurrentParisScenario(t *testing.T) {
	panel := newUTCPresenter(t).RenderCurrent(&entity.WeatherSnapshot{
		Name:        "Paris",
		Condition:   "Rain",
		Description: "light rain",
		Temperature: 15.2,
		Humidity:    80,
		WindSpeed:   3.1,
	})

	want := CurrentPanel{
		Name:        "Paris",
		Icon:        entity.IconRain,
		Description: "light rain",
		Temperature: "Temperature: 15.2 °C",
		Humidity:    "Humidity: 80 %",
		WindSpeed:   "Wind Speed: 3.1 m/s",
	}
	if *panel != want {
		t.Errorf("panel = %+v, want %+v", *panel, want)
	}
}

func TestRenderPage(t *testing.T) {
	presenter := newUTCPresenter(t)
	query := entity.ByCityName("Paris")

	page := presenter.RenderPage(entity.ViewState{
		Query:    &query,
		Weather:  &entity.WeatherSnapshot{Name: "Paris", Condition: "Drizzle"},
		Forecast: forecastOf(8),
	}, "")
	if page.City != "Paris" || page.Current == nil || page.Current.Icon != entity.IconClouds || len(page.Forecast) != 5 {
		t.Errorf("unexpected page %+v", page)
	}
	if page.Title != "Weather App" {
		t.Errorf("title = %q", page.Title)
	}

	errored := presenter.RenderPage(entity.ViewState{Error: "Unable to fetch weather data. Please try again.", Sequence: 2}, "Atlantis")
	if errored.Current != nil || errored.Forecast != nil || errored.City != "Atlantis" || errored.Error == "" {
		t.Errorf("unexpected errored page %+v", errored)
	}
	if errored.Idle {
		t.Error("a page after a fetch is not idle")
	}
	if !presenter.RenderPage(entity.ViewState{}, "").Idle {
		t.Error("a page before any fetch is idle")
	}
}

func TestNewPresenterRejectsUnknownZone(t *testing.T) {
	if _, err := NewPresenter("", "Not/AZone", 5); err == nil {
		t.Fatal("expected error for unknown time zone")
	}
	presenter, err := NewPresenter("2006-01-02 15:04", "Local", 5)
	if err != nil {
		t.Fatalf("Local zone rejected: %v", err)
	}
	if got := presenter.FormatTimestamp(0); got != time.Unix(0, 0).Format("2006-01-02 15:04") {
		t.Errorf("local format = %q", got)
	}
}

func TestTemplateRendersPage(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	if err != nil {
		t.Fatalf("NewTemplateRenderer failed: %v", err)
	}

	presenter := newUTCPresenter(t)
	page := presenter.RenderPage(entity.ViewState{
		Weather:  &entity.WeatherSnapshot{Name: "Paris", Condition: "Rain", Description: "light rain", Temperature: 15.2, Humidity: 80, WindSpeed: 3.1},
		Forecast: forecastOf(8),
	}, "Paris")

	var out bytes.Buffer
	if err := renderer.Render(&out, PageTemplate, PageData{Page: page, SearchPath: "/weather-view/search"}, nil); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	html := out.String()
	for _, want := range []string{"<h2>Paris</h2>", "light rain", "Temperature: 15.2 °C", "Humidity: 80 %", "Wind Speed: 3.1 m/s", `action="/weather-view/search"`} {
		if !strings.Contains(html, want) {
			t.Errorf("page is missing %q", want)
		}
	}
	if got := strings.Count(html, `class="forecast-item"`); got != 5 {
		t.Errorf("forecast items = %d, want 5", got)
	}
	if strings.Contains(html, `class="loading"`) || strings.Contains(html, `class="error"`) {
		t.Error("populated page must not show loading or error")
	}
}
