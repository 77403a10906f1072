package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/i474232898/weather-estimation/internal/weather"
)

// DefaultOpenWeatherBaseURL is the OpenWeatherMap 2.5 API root.
const DefaultOpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(client *http.Client, baseURL, apiKey string) *OpenWeatherProvider {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherBaseURL
	}
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		circuit: newCircuitBreaker("openweather"),
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

type openWeatherPayload struct {
	Dt   int64 `json:"dt"`
	Main *struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  *float64 `json:"humidity"`
		Pressure  *float64 `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind *struct {
		Speed *float64 `json:"speed"`
		Deg   *float64 `json:"deg"`
	} `json:"wind"`
	Visibility *float64 `json:"visibility"`
	Clouds     *struct {
		All *int `json:"all"`
	} `json:"clouds"`
	Rain *struct {
		OneH *float64 `json:"1h"`
	} `json:"rain"`
	Sys *struct {
		Country string `json:"country"`
	} `json:"sys"`
}

func (p *OpenWeatherProvider) Fetch(ctx context.Context, coord weather.Coordinate) (weather.ProviderReading, error) {
	if p.apiKey == "" {
		return weather.ProviderReading{}, fmt.Errorf("%w: openweather api key", weather.ErrNotConfigured)
	}

	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", coord.Latitude))
	values.Set("lon", fmt.Sprintf("%f", coord.Longitude))
	values.Set("appid", p.apiKey)
	values.Set("units", "metric")
	u := fmt.Sprintf("%s/weather?%s", p.baseURL, values.Encode())

	var payload openWeatherPayload
	if err := fetchJSON(ctx, p.client, p.circuit, u, &payload); err != nil {
		return weather.ProviderReading{}, fmt.Errorf("openweather: %w", err)
	}

	return p.toReading(payload)
}

func (p *OpenWeatherProvider) toReading(payload openWeatherPayload) (weather.ProviderReading, error) {
	m := payload.Main
	if m == nil || m.Temp == nil || m.Humidity == nil || m.Pressure == nil {
		return weather.ProviderReading{}, fmt.Errorf("openweather: %w: main block incomplete", weather.ErrMalformedResponse)
	}
	if len(payload.Weather) == 0 {
		return weather.ProviderReading{}, fmt.Errorf("openweather: %w: weather array empty", weather.ErrMalformedResponse)
	}

	ts := time.Now().UTC()
	if payload.Dt > 0 {
		ts = time.Unix(payload.Dt, 0).UTC()
	}

	r := weather.ProviderReading{
		ProviderName:  p.name,
		Timestamp:     ts,
		TemperatureC:  *m.Temp,
		FeelsLikeC:    m.FeelsLike,
		HumidityPct:   *m.Humidity,
		PressureHpa:   *m.Pressure,
		Condition:     describeOpenWeather(payload.Weather[0].Description, payload.Weather[0].Main),
		ConditionIcon: mapOpenWeatherIcon(payload.Weather[0].Main),
	}

	if payload.Wind != nil {
		if payload.Wind.Speed != nil {
			// m/s → km/h
			r.WindSpeedKmh = *payload.Wind.Speed * 3.6
		}
		r.WindBearing = payload.Wind.Deg
	}
	if payload.Visibility != nil {
		r.VisibilityKm = floatPtr(*payload.Visibility / 1000)
	}
	if payload.Clouds != nil {
		r.CloudCoverPct = payload.Clouds.All
	}
	if payload.Rain != nil {
		r.PrecipitationMm = payload.Rain.OneH
	}

	return r, nil
}

func describeOpenWeather(description, main string) string {
	text := strings.TrimSpace(description)
	if text == "" {
		text = strings.TrimSpace(main)
	}
	return cases.Title(language.English).String(text)
}

func mapOpenWeatherIcon(main string) string {
	switch main {
	case "Clear":
		return "clear"
	case "Clouds":
		return "cloudy"
	case "Rain", "Drizzle":
		return "rain"
	case "Snow":
		return "snow"
	case "Thunderstorm":
		return "thunderstorm"
	case "Mist", "Fog", "Haze", "Smoke", "Dust":
		return "fog"
	default:
		return ""
	}
}
