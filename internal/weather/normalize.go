package weather

import (
	"math"
	"strings"

	"github.com/i474232898/weather-estimation/internal/common"
)

// Reading bounds enforced by Normalize.
const (
	minTemperatureC = -40.0
	maxTemperatureC = 55.0
	minPressureHpa  = 870.0
	maxPressureHpa  = 1085.0
	maxUVIndex      = 11

	defaultCondition = "Partly Cloudy"
	unknownLocation  = "Unknown Location"
)

// CompassFromDegrees converts a bearing to the 8-point compass. Each sector
// starts at its own bearing, so 44° is still N and 45° is NE.
func CompassFromDegrees(deg float64) WindDirection {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return North
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return Compass[int(math.Floor(deg/45))%8]
}

// FormatLocation renders "<name>, <region>" when the region is known.
func FormatLocation(name, region string) string {
	name = strings.TrimSpace(name)
	region = strings.TrimSpace(region)
	switch {
	case name == "":
		return region
	case region == "" || strings.EqualFold(name, region) || strings.HasSuffix(strings.ToLower(name), ", "+strings.ToLower(region)):
		return name
	default:
		return name + ", " + region
	}
}

// IconToken maps a free-text condition to a display glyph token.
func IconToken(condition string) string {
	switch {
	case common.HasAny(condition, "thunder", "storm"):
		return "thunderstorm"
	case common.HasAny(condition, "snow", "sleet", "hail"):
		return "snow"
	case common.HasAny(condition, "rain", "drizzle", "shower"):
		return "rain"
	case common.HasAny(condition, "partly", "few clouds", "scattered"):
		return "partly-cloudy"
	case common.HasAny(condition, "cloud", "overcast"):
		return "cloudy"
	case common.HasAny(condition, "mist", "fog", "haze", "smoke"):
		return "fog"
	case common.HasAny(condition, "wind", "breeze"):
		return "windy"
	case common.HasAny(condition, "hot"):
		return "hot"
	case common.HasAny(condition, "clear", "sunny"):
		return "clear"
	default:
		return "default"
	}
}

// Normalize enforces the Reading invariants. When feelsLikeKnown is false the
// feels-like temperature is derived from the air temperature with [-2,+3]°C jitter.
func Normalize(r Reading, feelsLikeKnown bool, rng RandomSource) Reading {
	if math.IsNaN(r.TemperatureC) {
		r.TemperatureC = 25
	}
	r.TemperatureC = clampFloat(r.TemperatureC, minTemperatureC, maxTemperatureC)

	if !feelsLikeKnown || math.IsNaN(r.FeelsLikeC) {
		r.FeelsLikeC = r.TemperatureC + float64(between(rng, -2, 3))
	}
	r.FeelsLikeC = clampFloat(r.FeelsLikeC, minTemperatureC-10, maxTemperatureC+10)

	r.HumidityPct = clampInt(r.HumidityPct, 0, 100)
	r.UVIndex = clampInt(r.UVIndex, 0, maxUVIndex)
	r.PrecipitationProbability = clampInt(r.PrecipitationProbability, 0, 100)
	r.CloudCoverPct = clampInt(r.CloudCoverPct, 0, 100)

	r.WindSpeedKmh = nonNegative(r.WindSpeedKmh)
	r.VisibilityKm = nonNegative(r.VisibilityKm)
	r.PrecipitationMm = nonNegative(r.PrecipitationMm)

	if math.IsNaN(r.PressureHpa) || r.PressureHpa == 0 {
		r.PressureHpa = 1013.25
	}
	r.PressureHpa = clampFloat(r.PressureHpa, minPressureHpa, maxPressureHpa)

	if math.IsNaN(r.SoilMoisture) {
		r.SoilMoisture = 0.2
	}
	r.SoilMoisture = clampFloat(r.SoilMoisture, 0.05, 0.45)
	if math.IsNaN(r.SoilTemperatureC) {
		r.SoilTemperatureC = r.TemperatureC - 3
	}

	if !r.WindDirection.Valid() {
		r.WindDirection = North
	}

	if strings.TrimSpace(r.Location) == "" {
		r.Location = unknownLocation
	}

	r.Condition = strings.TrimSpace(r.Condition)
	if r.Condition == "" {
		r.Condition = defaultCondition
	}
	if r.IconToken == "" {
		r.IconToken = IconToken(r.Condition)
	}

	return r
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
