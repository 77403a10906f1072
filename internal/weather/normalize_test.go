package weather

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompassFromDegrees(t *testing.T) {
	cases := []struct {
		deg  float64
		want WindDirection
	}{
		{0, North},
		{44, North},
		{45, NorthEast},
		{360, North},
		{90, East},
		{135, SouthEast},
		{180, South},
		{225, SouthWest},
		{270, West},
		{315, NorthWest},
		{359.9, NorthWest},
		{720, North},
		{-45, NorthWest},
		{math.NaN(), North},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CompassFromDegrees(tc.deg), "%v°", tc.deg)
	}
}

func TestFormatLocation(t *testing.T) {
	assert.Equal(t, "Jaipur, Rajasthan", FormatLocation("Jaipur", "Rajasthan"))
	assert.Equal(t, "Jaipur", FormatLocation(" Jaipur ", ""))
	assert.Equal(t, "Delhi", FormatLocation("Delhi", "delhi"))
	assert.Equal(t, "Pune, Maharashtra", FormatLocation("Pune, Maharashtra", "Maharashtra"))
	assert.Equal(t, "Kerala", FormatLocation("", "Kerala"))
}

func TestIconToken(t *testing.T) {
	cases := map[string]string{
		"Heavy Rain":             "rain",
		"Light Drizzle":          "rain",
		"Thunderstorm":           "thunderstorm",
		"Thunderstorm With Hail": "thunderstorm",
		"Snow Showers":           "snow",
		"Partly Cloudy":          "partly-cloudy",
		"Overcast":               "cloudy",
		"Cloudy":                 "cloudy",
		"Haze":                   "fog",
		"Misty":                  "fog",
		"Cool Breeze":            "windy",
		"Hot":                    "hot",
		"Clear Sky":              "clear",
		"Sunny":                  "clear",
		"Pleasant":               "default",
	}
	for condition, want := range cases {
		assert.Equal(t, want, IconToken(condition), condition)
	}
}

func TestNormalizeClampsEveryField(t *testing.T) {
	r := Normalize(Reading{
		Location:                 "Leh",
		TemperatureC:             80,
		HumidityPct:              150,
		UVIndex:                  20,
		WindSpeedKmh:             -5,
		WindDirection:            "XX",
		VisibilityKm:             -1,
		PressureHpa:              2000,
		PrecipitationProbability: -4,
		CloudCoverPct:            140,
		SoilMoisture:             0.9,
		PrecipitationMm:          -2,
	}, false, fixedRand{0})

	assert.Equal(t, maxTemperatureC, r.TemperatureC)
	assert.Equal(t, 100, r.HumidityPct)
	assert.Equal(t, 11, r.UVIndex)
	assert.Equal(t, 0.0, r.WindSpeedKmh)
	assert.Equal(t, North, r.WindDirection)
	assert.Equal(t, 0.0, r.VisibilityKm)
	assert.Equal(t, maxPressureHpa, r.PressureHpa)
	assert.Equal(t, 0, r.PrecipitationProbability)
	assert.Equal(t, 100, r.CloudCoverPct)
	assert.Equal(t, 0.45, r.SoilMoisture)
	assert.Equal(t, 0.0, r.PrecipitationMm)
	assert.Equal(t, "Partly Cloudy", r.Condition)
	assert.Equal(t, "partly-cloudy", r.IconToken)
	assert.Equal(t, "Leh", r.Location)
}

func TestNormalizeFillsDefaults(t *testing.T) {
	r := Normalize(Reading{TemperatureC: 20, UVIndex: -1, HumidityPct: -3}, true, fixedRand{0})

	assert.Equal(t, unknownLocation, r.Location)
	assert.Equal(t, 1013.25, r.PressureHpa)
	assert.Equal(t, 0, r.UVIndex)
	assert.Equal(t, 0, r.HumidityPct)
	assert.Equal(t, 0.05, r.SoilMoisture)
}

func TestNormalizeFeelsLike(t *testing.T) {
	known := Normalize(Reading{TemperatureC: 30, FeelsLikeC: 34.5}, true, fixedRand{0})
	assert.Equal(t, 34.5, known.FeelsLikeC)

	assert.Equal(t, 28.0, Normalize(Reading{TemperatureC: 30}, false, fixedRand{0}).FeelsLikeC)
	assert.Equal(t, 33.0, Normalize(Reading{TemperatureC: 30}, false, fixedRand{5}).FeelsLikeC)

	rng := NewRand(3)
	for i := 0; i < 100; i++ {
		r := Normalize(Reading{TemperatureC: 30}, false, rng)
		assert.GreaterOrEqual(t, r.FeelsLikeC, 28.0)
		assert.LessOrEqual(t, r.FeelsLikeC, 33.0)
	}
}
