package view

import (
	"fmt"
	"time"

	"weather-view/internal/domain/entity"
	"weather-view/pkg/msg"
)

// DefaultTimeLayout matches the en-US locale date/time rendering.
const DefaultTimeLayout = "1/2/2006, 3:04:05 PM"

// ForecastItem is one rendered cell of the forecast grid.
type ForecastItem struct {
	Key         int64                `json:"key"`
	Time        string               `json:"time"`
	Icon        entity.ConditionIcon `json:"icon"`
	Description string               `json:"description"`
	Temperature string               `json:"temperature"`
}

// CurrentPanel is the rendered current conditions panel.
type CurrentPanel struct {
	Name        string               `json:"name"`
	Icon        entity.ConditionIcon `json:"icon"`
	Description string               `json:"description"`
	Temperature string               `json:"temperature"`
	Humidity    string               `json:"humidity"`
	WindSpeed   string               `json:"windSpeed"`
}

// Page is everything the weather page template needs.
type Page struct {
	Title         string         `json:"title"`
	ForecastTitle string         `json:"forecastTitle"`
	Placeholder   string         `json:"placeholder"`
	LoadingText   string         `json:"loadingText"`
	City          string         `json:"city"`
	Idle          bool           `json:"idle"`
	Loading       bool           `json:"loading"`
	Error         string         `json:"error,omitempty"`
	Current       *CurrentPanel  `json:"current,omitempty"`
	Forecast      []ForecastItem `json:"forecast,omitempty"`
}

// Presenter projects view state into display strings.
type Presenter struct {
	layout   string
	location *time.Location
	size     int
}

// NewPresenter builds a presenter formatting timestamps with layout in the
// named time zone ("Local" or empty for the process zone).
func NewPresenter(layout string, timezone string, size int) (*Presenter, error) {
	if layout == "" {
		layout = DefaultTimeLayout
	}
	if size <= 0 {
		size = entity.ForecastSize
	}

	location := time.Local
	if timezone != "" && timezone != "Local" {
		loaded, err := time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid forecast timezone %q: %w", timezone, err)
		}
		location = loaded
	}

	return &Presenter{layout: layout, location: location, size: size}, nil
}

// RenderForecastList renders the first entries of the forecast in order. No
// grouping by day is applied.
func (p *Presenter) RenderForecastList(forecast *entity.ForecastSnapshot) []ForecastItem {
	if forecast == nil {
		return nil
	}

	entries := entity.TruncateForecast(forecast.Entries, p.size)
	items := make([]ForecastItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, ForecastItem{
			Key:         entry.Timestamp,
			Time:        p.FormatTimestamp(entry.Timestamp),
			Icon:        entity.SelectConditionIcon(entry.Condition),
			Description: entry.Description,
			Temperature: msg.GetMessage("weather.forecast-temperature", entry.Temperature),
		})
	}
	return items
}

// RenderCurrent renders the current conditions panel, nil without a snapshot.
func (p *Presenter) RenderCurrent(weather *entity.WeatherSnapshot) *CurrentPanel {
	if weather == nil {
		return nil
	}
	return &CurrentPanel{
		Name:        weather.Name,
		Icon:        entity.SelectConditionIcon(weather.Condition),
		Description: weather.Description,
		Temperature: msg.GetMessage("weather.temperature", weather.Temperature),
		Humidity:    msg.GetMessage("weather.humidity", weather.Humidity),
		WindSpeed:   msg.GetMessage("weather.wind-speed", weather.WindSpeed),
	}
}

// RenderPage renders the whole page for a view state.
func (p *Presenter) RenderPage(state entity.ViewState, city string) Page {
	if city == "" && state.Query != nil && !state.Query.IsCoordinates() {
		city = state.Query.CityName
	}
	return Page{
		Title:         msg.GetMessage("weather.title"),
		ForecastTitle: msg.GetMessage("weather.forecast-title"),
		Placeholder:   msg.GetMessage("weather.placeholder"),
		LoadingText:   msg.GetMessage("weather.loading"),
		City:          city,
		Idle:          state.Sequence == 0,
		Loading:       state.Loading,
		Error:         state.Error,
		Current:       p.RenderCurrent(state.Weather),
		Forecast:      p.RenderForecastList(state.Forecast),
	}
}

// FormatTimestamp formats epoch seconds in the presenter time zone.
func (p *Presenter) FormatTimestamp(epochSeconds int64) string {
	return time.Unix(epochSeconds, 0).In(p.location).Format(p.layout)
}

// StateResponse is the JSON projection of the view state.
type StateResponse struct {
	entity.ViewState
	Current       *CurrentPanel  `json:"current,omitempty"`
	ForecastItems []ForecastItem `json:"forecastItems,omitempty"`
}

// RenderState renders the JSON projection of a view state.
func (p *Presenter) RenderState(state entity.ViewState) StateResponse {
	return StateResponse{
		ViewState:     state,
		Current:       p.RenderCurrent(state.Weather),
		ForecastItems: p.RenderForecastList(state.Forecast),
	}
}
