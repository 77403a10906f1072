package weather

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Coordinate is an immutable geographic position in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether both components are finite and inside their ranges.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Key returns a coordinate key rounded to ~1km, used to collapse duplicate lookups.
func (c Coordinate) Key() string {
	return fmt.Sprintf("%.2f,%.2f", c.Latitude, c.Longitude)
}

// LocationContext describes what the caller knows about the place being estimated.
// Either DisplayName or Coordinate must be set for anything beyond the constant fallback.
type LocationContext struct {
	DisplayName string      `json:"displayName,omitempty"`
	Region      string      `json:"region,omitempty"`
	Coordinate  *Coordinate `json:"coordinate,omitempty"`
}

// Key returns a canonical string key for indexing this location in stores.
func (l LocationContext) Key() string {
	if name := strings.TrimSpace(l.DisplayName); name != "" {
		return strings.ToLower(name) + ":" + strings.ToLower(strings.TrimSpace(l.Region))
	}
	if l.Coordinate != nil {
		return l.Coordinate.Key()
	}
	return "unknown"
}

// Place is a resolved entry of the geographic reference table.
type Place struct {
	Name       string     `json:"name"`
	Region     string     `json:"region"`
	District   string     `json:"district,omitempty"`
	Coordinate Coordinate `json:"coordinate"`
}

// Preferences mirrors the location a user saved in the settings store.
type Preferences struct {
	City      string
	Region    string
	Latitude  float64
	Longitude float64
}

const unselectedCity = "Select City"

// LocationContext converts stored preferences into a request context.
// Zero coordinates and the picker placeholder count as "not set".
func (p Preferences) LocationContext() LocationContext {
	lc := LocationContext{Region: strings.TrimSpace(p.Region)}
	if city := strings.TrimSpace(p.City); city != "" && city != unselectedCity {
		lc.DisplayName = city
	}
	coord := Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
	if (p.Latitude != 0 || p.Longitude != 0) && coord.Valid() {
		lc.Coordinate = &coord
	}
	return lc
}

// WindDirection is an 8-point compass bearing.
type WindDirection string

const (
	North     WindDirection = "N"
	NorthEast WindDirection = "NE"
	East      WindDirection = "E"
	SouthEast WindDirection = "SE"
	South     WindDirection = "S"
	SouthWest WindDirection = "SW"
	West      WindDirection = "W"
	NorthWest WindDirection = "NW"
)

// Compass lists the directions clockwise from north.
var Compass = [8]WindDirection{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// Valid reports whether d is one of the eight compass points.
func (d WindDirection) Valid() bool {
	for _, c := range Compass {
		if c == d {
			return true
		}
	}
	return false
}

// Source tells which tier of the estimation chain produced a Reading.
type Source string

const (
	SourceLive     Source = "live"
	SourceSeasonal Source = "seasonal"
	SourceConstant Source = "constant"
)

// Reading is the complete weather snapshot returned to callers.
type Reading struct {
	Location      string        `json:"location"`
	TemperatureC  float64       `json:"temperatureC"`
	Condition     string        `json:"condition"`
	HumidityPct   int           `json:"humidityPct"`
	WindSpeedKmh  float64       `json:"windSpeedKmh"`
	WindDirection WindDirection `json:"windDirection"`
	PressureHpa   float64       `json:"pressureHpa"`
	VisibilityKm  float64       `json:"visibilityKm"`
	UVIndex       int           `json:"uvIndex"`
	FeelsLikeC    float64       `json:"feelsLikeC"`
	IconToken     string        `json:"icon"`

	// Agricultural extras.
	PrecipitationProbability int     `json:"precipitationProbability"`
	PrecipitationMm          float64 `json:"precipitationMm"`
	CloudCoverPct            int     `json:"cloudCoverPct"`
	SoilMoisture             float64 `json:"soilMoisture"`
	SoilTemperatureC         float64 `json:"soilTemperatureC"`

	Source     Source    `json:"source"`
	Provider   string    `json:"provider,omitempty"`
	ObservedAt time.Time `json:"observedAt"` // always UTC
}

// SeasonalProfile is the intermediate output of the seasonal model for one
// (latitude, region, month, hour) tuple.
type SeasonalProfile struct {
	BaseTempC   float64
	DailyDeltaC float64
	HumidityPct int
	WindKmh     float64
	PressureHpa float64
	UVIndex     int
}

// TemperatureC is the base temperature shifted by the diurnal delta.
func (p SeasonalProfile) TemperatureC() float64 {
	return p.BaseTempC + p.DailyDeltaC
}

// ForecastDay is one simulated day of a Forecast.
type ForecastDay struct {
	Date                     time.Time `json:"date"`
	DayOfWeek                string    `json:"dayOfWeek"`
	HighC                    float64   `json:"highC"`
	LowC                     float64   `json:"lowC"`
	Condition                string    `json:"condition"`
	PrecipitationProbability int       `json:"precipitationProbability"`
	IconToken                string    `json:"icon"`
}

// Forecast is ordered by Date ascending.
type Forecast []ForecastDay
