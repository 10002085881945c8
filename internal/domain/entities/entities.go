// Package entities contains core business entities.
// These are the enterprise business rules - pure domain objects with no external dependencies.
package entities

// Language is one of the five languages the bot answers in.
// The set is closed: every per-language response carries all five variants,
// validated at startup, so a missing language is a configuration defect
// rather than a runtime lookup failure.
type Language string

const (
	LangAZ Language = "az"
	LangTR Language = "tr"
	LangPL Language = "pl"
	LangRU Language = "ru"
	LangEN Language = "en" // universal default
)

// Languages lists every supported language code.
var Languages = []Language{LangAZ, LangTR, LangPL, LangRU, LangEN}

// ChatMessage represents a conversation turn.
type ChatMessage struct {
	Role    string `json:"role"` // "user", "assistant" or "system"
	Content string `json:"content"`
}

// Reply is the router's answer to a single query.
// Matched is true iff the reply came from the intent or semantic stage
// (a curated answer) rather than the generative fallback.
type Reply struct {
	Text    string
	Matched bool
	Lang    Language
}

// WeatherCurrent is the current-conditions block of a weather report.
type WeatherCurrent struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Description string  `json:"description"`
	Temp        float64 `json:"temp"`
	FeelsLike   float64 `json:"feels_like"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Clouds      int     `json:"clouds"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Timezone    int     `json:"timezone"`
	Sunrise     int64   `json:"sunrise"`
	Sunset      int64   `json:"sunset"`
}

// WeatherDay is one aggregated day of the forecast.
type WeatherDay struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// WeatherSun holds sunrise/sunset in the city's local time.
type WeatherSun struct {
	Sunrise   string `json:"sunrise"` // HH:MM
	Sunset    string `json:"sunset"`  // HH:MM
	DayLength string `json:"day_length"`
}

// WeatherReport is the aggregated payload the weather endpoint serves.
type WeatherReport struct {
	Current WeatherCurrent `json:"current"`
	Daily   []WeatherDay   `json:"daily"`
	Sun     WeatherSun     `json:"sun"`
}
