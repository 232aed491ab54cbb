package external

// ConditionDTO is one entry of the provider "weather" array
type ConditionDTO struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainDTO holds the provider "main" block
type MainDTO struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
}

// WindDTO holds the provider "wind" block
type WindDTO struct {
	Speed float64 `json:"speed"`
}

// CurrentWeatherResponse represents the response from the current weather API
type CurrentWeatherResponse struct {
	Name    string         `json:"name"`
	Weather []ConditionDTO `json:"weather"`
	Main    MainDTO        `json:"main"`
	Wind    WindDTO        `json:"wind"`
}

// ForecastPeriodDTO represents a single forecast period
type ForecastPeriodDTO struct {
	Dt      int64          `json:"dt"`
	Main    MainDTO        `json:"main"`
	Weather []ConditionDTO `json:"weather"`
	DtTxt   string         `json:"dt_txt"`
}

// ForecastResponse represents the response from the forecast API
type ForecastResponse struct {
	Cnt  int                 `json:"cnt"`
	List []ForecastPeriodDTO `json:"list"`
}

// APIErrorResponse represents error responses from the provider. Cod is a
// number on some endpoints and a string on others.
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
