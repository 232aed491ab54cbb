package entity

// ConditionIcon is the visual for a provider condition category.
type ConditionIcon struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Glyph string `json:"glyph"`
}

var (
	IconClear        = ConditionIcon{Name: "day-sunny", Color: "#FFD700", Glyph: "☀"}
	IconClouds       = ConditionIcon{Name: "cloud", Color: "#B0C4DE", Glyph: "☁"}
	IconRain         = ConditionIcon{Name: "rain", Color: "#4682B4", Glyph: "🌧"}
	IconSnow         = ConditionIcon{Name: "snow", Color: "#ADD8E6", Glyph: "❄"}
	IconThunderstorm = ConditionIcon{Name: "thunderstorm", Color: "#8B0000", Glyph: "⛈"}
)

// SelectConditionIcon maps a condition category to its icon. Unknown or empty
// categories get the clouds icon.
func SelectConditionIcon(condition string) ConditionIcon {
	switch condition {
	case "Clear":
		return IconClear
	case "Clouds":
		return IconClouds
	case "Rain":
		return IconRain
	case "Snow":
		return IconSnow
	case "Thunderstorm":
		return IconThunderstorm
	default:
		return IconClouds
	}
}
