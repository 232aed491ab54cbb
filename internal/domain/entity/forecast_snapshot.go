package entity

// ForecastSize is the number of forecast periods kept from a provider response.
const ForecastSize = 5

// ForecastEntry is one future period as returned by the provider.
type ForecastEntry struct {
	Timestamp   int64   `json:"timestamp"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Temperature float64 `json:"temperature"`
}

// ForecastSnapshot is the ordered, truncated forecast list.
type ForecastSnapshot struct {
	Entries []ForecastEntry `json:"entries"`
}

// TruncateForecast keeps the first size entries in their original order.
// Periods are not grouped by day, so several entries may share a date.
func TruncateForecast(entries []ForecastEntry, size int) []ForecastEntry {
	if size < 0 {
		size = 0
	}
	if len(entries) > size {
		entries = entries[:size]
	}
	truncated := make([]ForecastEntry, len(entries))
	copy(truncated, entries)
	return truncated
}
