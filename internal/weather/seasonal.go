package weather

import "github.com/i474232898/weather-estimation/internal/common"

// Months are zero-based: 0 is January, 11 is December.

func isMonsoon(month int) bool {
	return month >= 6 && month <= 8
}

func isWinter(month int) bool {
	return month == 11 || month == 0 || month == 1
}

func isSummer(month int) bool {
	return month == 4 || month == 5
}

// latitudeBandTemp is the base temperature of the five bands from the Himalaya
// down to the southern tip.
func latitudeBandTemp(lat float64) float64 {
	switch {
	case lat > 30:
		return 15
	case lat > 25:
		return 22
	case lat > 20:
		return 26
	case lat > 15:
		return 28
	default:
		return 30
	}
}

func seasonalDelta(month int) float64 {
	switch month {
	case 11, 0, 1:
		return -8
	case 2, 3:
		return -2
	case 4, 5:
		return 8
	case 6, 7, 8:
		return -3
	case 9, 10:
		return 2
	default:
		return 0
	}
}

// BaseTemperature returns the seasonal baseline for a latitude, clamped to [5,45]°C.
func BaseTemperature(lat float64, month int) float64 {
	return clampFloat(latitudeBandTemp(lat)+seasonalDelta(month), 5, 45)
}

// DailyVariation returns the diurnal offset for an hour of the day.
func DailyVariation(hour int) float64 {
	switch {
	case hour >= 0 && hour <= 5:
		return -4
	case hour >= 6 && hour <= 9:
		return -1
	case hour >= 10 && hour <= 12:
		return 3
	case hour >= 13 && hour <= 15:
		return 5
	case hour >= 16 && hour <= 18:
		return 2
	case hour >= 19 && hour <= 23:
		return -2
	default:
		return 0
	}
}

// Humidity estimates relative humidity from the latitude band, the monsoon and the sky.
func Humidity(lat float64, month int, condition string) int {
	var h int
	switch {
	case lat < 15:
		h = 75
	case lat < 20:
		h = 65
	case lat < 25:
		h = 60
	default:
		h = 55
	}

	if isMonsoon(month) {
		h += 20
	}

	switch {
	case common.HasAny(condition, "rain"):
		h += 15
	case common.HasAny(condition, "clear"):
		h -= 10
	case common.HasAny(condition, "cloud"):
		h += 5
	}

	return clampInt(h, 30, 95)
}

// regionWindBase groups states by their typical wind exposure.
func regionWindBase(region string) float64 {
	switch {
	case common.EqualsAny(region, "Rajasthan", "Gujarat"):
		return 12 // desert
	case common.EqualsAny(region, "Maharashtra", "Karnataka"):
		return 8 // western
	case common.EqualsAny(region, "West Bengal", "Odisha"):
		return 15 // coastal east
	case common.EqualsAny(region, "Tamil Nadu", "Kerala"):
		return 10 // south coastal
	default:
		return 7
	}
}

// WindSpeed estimates wind in km/h, boosted by half during the monsoon, clamped to [3,25].
func WindSpeed(region string, month int) float64 {
	w := regionWindBase(region)
	if isMonsoon(month) {
		w *= 1.5
	}
	return clampFloat(w, 3, 25)
}

// Pressure returns sea-level or high-altitude pressure with ±5 hPa jitter.
func Pressure(lat float64, rng RandomSource) float64 {
	base := 1013.0
	if lat > 30 {
		base = 1005.0
	}
	return base + float64(between(rng, -5, 5))
}

// UVIndex is zero at night and peaks in the tropics during summer.
func UVIndex(lat float64, month, hour int) int {
	if hour < 6 || hour > 18 {
		return 0
	}

	var uv int
	switch {
	case lat < 15:
		uv = 9
	case lat < 25:
		uv = 7
	default:
		uv = 5
	}

	switch {
	case isSummer(month):
		uv += 2
	case isWinter(month):
		uv -= 2
	}

	return clampInt(uv, 0, 11)
}

// SoilMoisture simulates volumetric topsoil moisture in m³/m³.
func SoilMoisture(lat float64, month int, condition string) float64 {
	var m float64
	switch month {
	case 5, 6, 7, 8:
		m = 0.3
	case 9, 10:
		m = 0.25
	case 11, 0, 1:
		m = 0.15
	default:
		m = 0.2
	}

	switch {
	case common.HasAny(condition, "rain"):
		m += 0.1
	case common.HasAny(condition, "clear"):
		m -= 0.05
	}

	switch {
	case lat > 30:
		m -= 0.02
	case lat < 15:
		m += 0.03
	}

	return clampFloat(m, 0.05, 0.45)
}

// Profile assembles a SeasonalProfile for one place and time.
func Profile(lat float64, region string, month, hour int, condition string, rng RandomSource) SeasonalProfile {
	return SeasonalProfile{
		BaseTempC:   BaseTemperature(lat, month),
		DailyDeltaC: DailyVariation(hour),
		HumidityPct: Humidity(lat, month, condition),
		WindKmh:     WindSpeed(region, month),
		PressureHpa: Pressure(lat, rng),
		UVIndex:     UVIndex(lat, month, hour),
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
