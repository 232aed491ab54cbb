package entity

import "time"

// ViewState is the UI-bound state owned by the weather view controller.
// Weather and Forecast are either both set or both nil; Error is only set
// when they are nil.
type ViewState struct {
	Query     *LocationQuery    `json:"query,omitempty"`
	Weather   *WeatherSnapshot  `json:"weather,omitempty"`
	Forecast  *ForecastSnapshot `json:"forecast,omitempty"`
	Error     string            `json:"error,omitempty"`
	ErrorKind string            `json:"errorKind,omitempty"`
	Loading   bool              `json:"loading"`
	Sequence  uint64            `json:"sequence"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// Populated reports whether both snapshots are available.
func (s ViewState) Populated() bool {
	return s.Weather != nil && s.Forecast != nil
}

// Clone returns a deep copy safe to hand out of the controller.
func (s ViewState) Clone() ViewState {
	clone := s
	if s.Query != nil {
		query := *s.Query
		if s.Query.Coordinates != nil {
			coordinates := *s.Query.Coordinates
			query.Coordinates = &coordinates
		}
		clone.Query = &query
	}
	if s.Weather != nil {
		weather := *s.Weather
		clone.Weather = &weather
	}
	if s.Forecast != nil {
		clone.Forecast = &ForecastSnapshot{Entries: TruncateForecast(s.Forecast.Entries, len(s.Forecast.Entries))}
	}
	return clone
}
