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

// DefaultOpenMeteoBaseURL is the keyless Open-Meteo forecast endpoint.
const DefaultOpenMeteoBaseURL = "https://api.open-meteo.com/v1/forecast"

// hourly variables requested from Open-Meteo, agricultural ones included.
var openMeteoHourly = []string{
	"temperature_2m",
	"apparent_temperature",
	"relative_humidity_2m",
	"precipitation",
	"precipitation_probability",
	"weather_code",
	"visibility",
	"cloud_cover",
	"wind_speed_10m",
	"wind_direction_10m",
	"soil_temperature_18cm",
	"soil_moisture_1_to_3cm",
	"uv_index_clear_sky",
	"surface_pressure",
}

// OpenMeteoProvider implements the weather.Provider interface for Open-Meteo.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoProvider(client *http.Client, baseURL string) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = DefaultOpenMeteoBaseURL
	}
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: baseURL,
		client:  client,
		circuit: newCircuitBreaker("openmeteo"),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

type openMeteoPayload struct {
	// UTCOffsetSeconds is the offset of the local times in Hourly.Time.
	UTCOffsetSeconds int `json:"utc_offset_seconds"`
	Hourly           *struct {
		Time                []string   `json:"time"`
		Temperature         []*float64 `json:"temperature_2m"`
		ApparentTemperature []*float64 `json:"apparent_temperature"`
		Humidity            []*float64 `json:"relative_humidity_2m"`
		Precipitation       []*float64 `json:"precipitation"`
		PrecipitationProb   []*float64 `json:"precipitation_probability"`
		WeatherCode         []*float64 `json:"weather_code"`
		Visibility          []*float64 `json:"visibility"`
		CloudCover          []*float64 `json:"cloud_cover"`
		WindSpeed           []*float64 `json:"wind_speed_10m"`
		WindDirection       []*float64 `json:"wind_direction_10m"`
		SoilTemperature     []*float64 `json:"soil_temperature_18cm"`
		SoilMoisture        []*float64 `json:"soil_moisture_1_to_3cm"`
		UVIndex             []*float64 `json:"uv_index_clear_sky"`
		SurfacePressure     []*float64 `json:"surface_pressure"`
	} `json:"hourly"`
}

func (p *OpenMeteoProvider) Fetch(ctx context.Context, coord weather.Coordinate) (weather.ProviderReading, error) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", coord.Latitude))
	values.Set("longitude", fmt.Sprintf("%f", coord.Longitude))
	values.Set("hourly", strings.Join(openMeteoHourly, ","))
	values.Set("forecast_hours", "1")
	values.Set("timezone", "auto")
	u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())

	var payload openMeteoPayload
	if err := fetchJSON(ctx, p.client, p.circuit, u, &payload); err != nil {
		return weather.ProviderReading{}, fmt.Errorf("openmeteo: %w", err)
	}

	return p.toReading(payload)
}

// first returns the current-hour value of an hourly series.
func first(series []*float64) *float64 {
	if len(series) == 0 {
		return nil
	}
	return series[0]
}

func (p *OpenMeteoProvider) toReading(payload openMeteoPayload) (weather.ProviderReading, error) {
	h := payload.Hourly
	if h == nil {
		return weather.ProviderReading{}, fmt.Errorf("openmeteo: %w: hourly block missing", weather.ErrMalformedResponse)
	}

	temp, humidity, code := first(h.Temperature), first(h.Humidity), first(h.WeatherCode)
	if temp == nil || humidity == nil || code == nil {
		return weather.ProviderReading{}, fmt.Errorf("openmeteo: %w: temperature, humidity or weather code missing", weather.ErrMalformedResponse)
	}

	ts := time.Now().UTC()
	if len(h.Time) > 0 {
		local := time.FixedZone("", payload.UTCOffsetSeconds)
		if parsed, err := time.ParseInLocation("2006-01-02T15:04", h.Time[0], local); err == nil {
			ts = parsed.UTC()
		}
	}

	wmo := int(*code)
	r := weather.ProviderReading{
		ProviderName:     p.name,
		Timestamp:        ts,
		TemperatureC:     *temp,
		FeelsLikeC:       first(h.ApparentTemperature),
		HumidityPct:      *humidity,
		PressureHpa:      1013.25,
		WindBearing:      first(h.WindDirection),
		Condition:        openMeteoCondition(wmo),
		ConditionIcon:    openMeteoIcon(wmo),
		PrecipitationMm:  first(h.Precipitation),
		SoilMoisture:     first(h.SoilMoisture),
		SoilTemperatureC: first(h.SoilTemperature),
	}

	if v := first(h.SurfacePressure); v != nil {
		r.PressureHpa = *v
	}
	if v := first(h.WindSpeed); v != nil {
		r.WindSpeedKmh = *v
	}
	if v := first(h.Visibility); v != nil {
		r.VisibilityKm = floatPtr(*v / 1000)
	}
	if v := first(h.PrecipitationProb); v != nil {
		r.PrecipitationProbability = intPtr(int(*v))
	}
	if v := first(h.CloudCover); v != nil {
		r.CloudCoverPct = intPtr(int(*v))
	}
	if v := first(h.UVIndex); v != nil {
		r.UVIndex = intPtr(int(*v + 0.5))
	}

	return r, nil
}

// openMeteoCondition maps WMO weather codes to condition text.
func openMeteoCondition(code int) string {
	switch code {
	case 0:
		return "Clear Sky"
	case 1, 2, 3:
		return "Partly Cloudy"
	case 45, 48:
		return "Fog"
	case 51, 53, 55:
		return "Light Drizzle"
	case 56, 57:
		return "Freezing Drizzle"
	case 61, 63, 65:
		return "Rain"
	case 66, 67:
		return "Freezing Rain"
	case 71, 73, 75:
		return "Snow Fall"
	case 77:
		return "Snow Grains"
	case 80, 81, 82:
		return "Rain Showers"
	case 85, 86:
		return "Snow Showers"
	case 95:
		return "Thunderstorm"
	case 96, 99:
		return "Thunderstorm With Hail"
	default:
		return "Unknown"
	}
}

func openMeteoIcon(code int) string {
	switch {
	case code == 0:
		return "clear"
	case code >= 1 && code <= 3:
		return "partly-cloudy"
	case code == 45 || code == 48:
		return "fog"
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return "rain"
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return "snow"
	case code >= 95:
		return "thunderstorm"
	default:
		return "default"
	}
}
