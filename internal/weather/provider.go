package weather

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -source=provider.go -destination=mock/mock.go -package=mock

var (
	// ErrNetwork covers transport failures, timeouts and non-200 answers.
	ErrNetwork = errors.New("weather provider unreachable")
	// ErrMalformedResponse is returned when a provider payload does not have the expected shape.
	ErrMalformedResponse = errors.New("malformed provider response")
	// ErrNotConfigured is returned by providers missing a key or a client.
	ErrNotConfigured = errors.New("weather provider not configured")
	// ErrUnresolvableLocation is logged when no coordinate can be found for a request.
	ErrUnresolvableLocation = errors.New("location could not be resolved")
)

// ProviderReading represents a single provider's observation before normalization.
// Pointer fields are optional in provider payloads.
type ProviderReading struct {
	ProviderName string
	Timestamp    time.Time

	TemperatureC  float64
	FeelsLikeC    *float64
	HumidityPct   float64
	WindSpeedKmh  float64
	WindBearing   *float64
	PressureHpa   float64
	VisibilityKm  *float64
	UVIndex       *int
	Condition     string
	ConditionIcon string

	PrecipitationMm          *float64
	PrecipitationProbability *int
	CloudCoverPct            *int
	SoilMoisture             *float64
	SoilTemperatureC         *float64
}

// Provider abstracts a live weather source (OpenWeatherMap, Open-Meteo, WeatherAPI).
type Provider interface {
	Name() string
	Fetch(ctx context.Context, coord Coordinate) (ProviderReading, error)
}

// GeoReference is the read-only place lookup consumed by the Estimator.
type GeoReference interface {
	ByName(name, region string) (Place, bool)
	Nearest(coord Coordinate) (Place, bool)
}
