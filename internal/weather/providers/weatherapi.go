package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-estimation/internal/weather"
)

// DefaultWeatherAPIBaseURL is the WeatherAPI.com current conditions endpoint.
const DefaultWeatherAPIBaseURL = "https://api.weatherapi.com/v1/current.json"

// WeatherAPIProvider implements the weather.Provider interface for WeatherAPI.com.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewWeatherAPIProvider(client *http.Client, baseURL, apiKey string) *WeatherAPIProvider {
	if baseURL == "" {
		baseURL = DefaultWeatherAPIBaseURL
	}
	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
		circuit: newCircuitBreaker("weatherapi"),
	}
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

type weatherAPIPayload struct {
	Current *struct {
		LastUpdatedEpoch int64    `json:"last_updated_epoch"`
		TempC            *float64 `json:"temp_c"`
		FeelsLikeC       *float64 `json:"feelslike_c"`
		Humidity         *float64 `json:"humidity"`
		WindKph          *float64 `json:"wind_kph"`
		WindDegree       *float64 `json:"wind_degree"`
		PressureMb       *float64 `json:"pressure_mb"`
		PrecipMm         *float64 `json:"precip_mm"`
		VisKm            *float64 `json:"vis_km"`
		UV               *float64 `json:"uv"`
		Cloud            *int     `json:"cloud"`
		Condition        struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
}

func (p *WeatherAPIProvider) Fetch(ctx context.Context, coord weather.Coordinate) (weather.ProviderReading, error) {
	if p.apiKey == "" {
		return weather.ProviderReading{}, fmt.Errorf("%w: weatherapi api key", weather.ErrNotConfigured)
	}

	values := url.Values{}
	values.Set("key", p.apiKey)
	// WeatherAPI uses "q" for location; it accepts "lat,lon".
	values.Set("q", fmt.Sprintf("%f,%f", coord.Latitude, coord.Longitude))
	u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())

	var payload weatherAPIPayload
	if err := fetchJSON(ctx, p.client, p.circuit, u, &payload); err != nil {
		return weather.ProviderReading{}, fmt.Errorf("weatherapi: %w", err)
	}

	return p.toReading(payload)
}

func (p *WeatherAPIProvider) toReading(payload weatherAPIPayload) (weather.ProviderReading, error) {
	c := payload.Current
	if c == nil || c.TempC == nil || c.Humidity == nil || c.PressureMb == nil {
		return weather.ProviderReading{}, fmt.Errorf("weatherapi: %w: current block incomplete", weather.ErrMalformedResponse)
	}
	text := strings.TrimSpace(c.Condition.Text)
	if text == "" {
		return weather.ProviderReading{}, fmt.Errorf("weatherapi: %w: condition text missing", weather.ErrMalformedResponse)
	}

	ts := time.Now().UTC()
	if c.LastUpdatedEpoch > 0 {
		ts = time.Unix(c.LastUpdatedEpoch, 0).UTC()
	}

	r := weather.ProviderReading{
		ProviderName:    p.name,
		Timestamp:       ts,
		TemperatureC:    *c.TempC,
		FeelsLikeC:      c.FeelsLikeC,
		HumidityPct:     *c.Humidity,
		PressureHpa:     *c.PressureMb,
		WindBearing:     c.WindDegree,
		VisibilityKm:    c.VisKm,
		Condition:       text,
		PrecipitationMm: c.PrecipMm,
		CloudCoverPct:   c.Cloud,
	}
	if c.WindKph != nil {
		r.WindSpeedKmh = *c.WindKph
	}
	if c.UV != nil {
		r.UVIndex = intPtr(int(*c.UV + 0.5))
	}

	return r, nil
}
