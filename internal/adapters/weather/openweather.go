// Package weather provides the OpenWeather aggregation adapter.
// Clean Architecture: Adapter implementing ports.WeatherService. Thin I/O
// glue over the geocoding, current-weather and forecast endpoints.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/elvin-babanli/personabot-go/internal/domain/entities"
)

// ErrCityNotFound means geocoding produced no result for the query.
var ErrCityNotFound = errors.New("city not found")

const (
	defaultBaseURL = "https://api.openweathermap.org"
	forecastDays   = 5
)

// OpenWeatherAdapter implements ports.WeatherService against the
// OpenWeather API.
type OpenWeatherAdapter struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewOpenWeatherAdapter creates the adapter. baseURL "" targets the public API.
func NewOpenWeatherAdapter(apiKey, baseURL string) *OpenWeatherAdapter {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &OpenWeatherAdapter{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 25 * time.Second},
	}
}

type geoResult struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type currentResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Timezone int `json:"timezone"`
}

type forecastResponse struct {
	List []forecastSlot `json:"list"`
}

type forecastSlot struct {
	DtTxt   string `json:"dt_txt"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Report geocodes the city, fetches current conditions and aggregates the
// 3-hourly forecast into daily summaries.
func (a *OpenWeatherAdapter) Report(ctx context.Context, city string) (*entities.WeatherReport, error) {
	if a.apiKey == "" {
		return nil, fmt.Errorf("openweather api key is not configured")
	}

	lat, lon, name, country, err := a.geocode(ctx, city)
	if err != nil {
		return nil, err
	}

	current, err := a.current(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	if current.Name == "" {
		current.Name = name
	}
	if current.Sys.Country == "" {
		current.Sys.Country = country
	}

	daily, err := a.forecast(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	report := &entities.WeatherReport{
		Current: entities.WeatherCurrent{
			City:        current.Name,
			Country:     current.Sys.Country,
			Description: description(current.Weather),
			Temp:        current.Main.Temp,
			FeelsLike:   current.Main.FeelsLike,
			TempMin:     current.Main.TempMin,
			TempMax:     current.Main.TempMax,
			Humidity:    current.Main.Humidity,
			WindSpeed:   current.Wind.Speed,
			Clouds:      current.Clouds.All,
			Lat:         current.Coord.Lat,
			Lon:         current.Coord.Lon,
			Timezone:    current.Timezone,
			Sunrise:     current.Sys.Sunrise,
			Sunset:      current.Sys.Sunset,
		},
		Daily: daily,
		Sun: entities.WeatherSun{
			Sunrise:   localHHMM(current.Sys.Sunrise, current.Timezone),
			Sunset:    localHHMM(current.Sys.Sunset, current.Timezone),
			DayLength: dayLength(current.Sys.Sunrise, current.Sys.Sunset),
		},
	}
	return report, nil
}

func (a *OpenWeatherAdapter) geocode(ctx context.Context, city string) (lat, lon float64, name, country string, err error) {
	var results []geoResult
	params := url.Values{"q": {city}, "limit": {"1"}, "appid": {a.apiKey}}
	if err = a.getJSON(ctx, "/geo/1.0/direct", params, &results); err != nil {
		return 0, 0, "", "", fmt.Errorf("geocoding %q: %w", city, err)
	}
	if len(results) == 0 {
		return 0, 0, "", "", ErrCityNotFound
	}
	g := results[0]
	return g.Lat, g.Lon, g.Name, g.Country, nil
}

func (a *OpenWeatherAdapter) current(ctx context.Context, lat, lon float64) (*currentResponse, error) {
	var resp currentResponse
	if err := a.getJSON(ctx, "/data/2.5/weather", a.coordParams(lat, lon), &resp); err != nil {
		return nil, fmt.Errorf("fetching current weather: %w", err)
	}
	return &resp, nil
}

// forecast aggregates 3-hour slots into per-day min/max with the 12:00
// slot (or the middle one) as the representative for description, humidity
// and wind.
func (a *OpenWeatherAdapter) forecast(ctx context.Context, lat, lon float64) ([]entities.WeatherDay, error) {
	var resp forecastResponse
	if err := a.getJSON(ctx, "/data/2.5/forecast", a.coordParams(lat, lon), &resp); err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}

	byDate := make(map[string][]forecastSlot)
	for _, slot := range resp.List {
		if len(slot.DtTxt) < 10 {
			continue
		}
		date := slot.DtTxt[:10]
		byDate[date] = append(byDate[date], slot)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	if len(dates) > forecastDays {
		dates = dates[:forecastDays]
	}

	var daily []entities.WeatherDay
	for _, d := range dates {
		slots := byDate[d]
		min, max := slots[0].Main.Temp, slots[0].Main.Temp
		for _, s := range slots[1:] {
			if s.Main.Temp < min {
				min = s.Main.Temp
			}
			if s.Main.Temp > max {
				max = s.Main.Temp
			}
		}

		rep := slots[len(slots)/2]
		for _, s := range slots {
			if len(s.DtTxt) >= 19 && s.DtTxt[11:] == "12:00:00" {
				rep = s
				break
			}
		}

		daily = append(daily, entities.WeatherDay{
			Date:        d,
			Min:         min,
			Max:         max,
			Description: description(rep.Weather),
			Humidity:    rep.Main.Humidity,
			WindSpeed:   rep.Wind.Speed,
		})
	}
	return daily, nil
}

func (a *OpenWeatherAdapter) coordParams(lat, lon float64) url.Values {
	return url.Values{
		"lat":   {fmt.Sprintf("%g", lat)},
		"lon":   {fmt.Sprintf("%g", lon)},
		"appid": {a.apiKey},
		"units": {"metric"},
	}
}

func (a *OpenWeatherAdapter) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling OpenWeather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Message != "" {
			return fmt.Errorf("OpenWeather returned status %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("OpenWeather returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func description(weather []struct {
	Description string `json:"description"`
}) string {
	if len(weather) == 0 {
		return "—"
	}
	return weather[0].Description
}

// localHHMM formats a UTC timestamp shifted by the city's offset seconds.
func localHHMM(unixTS int64, offsetSeconds int) string {
	if unixTS == 0 {
		return "—"
	}
	return time.Unix(unixTS+int64(offsetSeconds), 0).UTC().Format("15:04")
}

func dayLength(sunrise, sunset int64) string {
	if sunrise == 0 || sunset == 0 || sunset <= sunrise {
		return "—"
	}
	secs := sunset - sunrise
	return fmt.Sprintf("%dh %dm", secs/3600, (secs%3600)/60)
}
