package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/i474232898/weather-estimation/internal/logger"
	"github.com/i474232898/weather-estimation/internal/weather"
)

// Live providers selectable through LIVE_PROVIDER.
const (
	ProviderOpenWeather = "openweather"
	ProviderOpenMeteo   = "openmeteo"
	ProviderWeatherAPI  = "weatherapi"
)

type AppConfig struct {
	Port     string
	LogLevel string

	// LiveWeatherEnabled turns the live tier on; LiveEnabled also checks keys.
	LiveWeatherEnabled bool
	LiveProvider       string

	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	OpenMeteoBaseURL   string
	WeatherAPIKey      string
	WeatherAPIBaseURL  string
	GeocoderAPIKey     string

	HTTPConnectTimeout time.Duration
	HTTPReadTimeout    time.Duration

	Timezone        *time.Location
	DefaultLocation string

	// FetchInterval controls how often tracked locations are refreshed.
	FetchInterval time.Duration

	// Locations to track.
	Locations []weather.LocationContext

	// Preferences is the location saved by the user, if any.
	Preferences weather.Preferences

	// In-memory store retention.
	StoreMaxHistory int           // max number of readings per location (0 = unlimited)
	StoreMaxAge     time.Duration // max age of readings (0 = unlimited)
}

// LiveEnabled reports whether the live tier can run: the flag is on and the
// selected provider has the key it needs.
func (c *AppConfig) LiveEnabled() bool {
	if !c.LiveWeatherEnabled {
		return false
	}
	switch c.LiveProvider {
	case ProviderOpenMeteo:
		return true
	case ProviderWeatherAPI:
		return c.WeatherAPIKey != ""
	default:
		return c.OpenWeatherAPIKey != ""
	}
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		logger.Infof("No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")

	live, err := getenvBool("LIVE_WEATHER_ENABLED", true)
	if err != nil {
		return nil, err
	}
	cfg.LiveWeatherEnabled = live

	cfg.LiveProvider = strings.ToLower(getenvDefault("LIVE_PROVIDER", ProviderOpenWeather))
	switch cfg.LiveProvider {
	case ProviderOpenWeather, ProviderOpenMeteo, ProviderWeatherAPI:
	default:
		return nil, fmt.Errorf("invalid LIVE_PROVIDER %q (allowed: %s, %s, %s)",
			cfg.LiveProvider, ProviderOpenWeather, ProviderOpenMeteo, ProviderWeatherAPI)
	}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.OpenWeatherBaseURL = os.Getenv("OPENWEATHER_BASE_URL")
	cfg.OpenMeteoBaseURL = os.Getenv("OPENMETEO_BASE_URL")
	cfg.WeatherAPIKey = os.Getenv("WEATHERAPI_API_KEY")
	cfg.WeatherAPIBaseURL = os.Getenv("WEATHERAPI_BASE_URL")
	cfg.GeocoderAPIKey = os.Getenv("GOOGLE_GEOCODER_API_KEY")

	if cfg.HTTPConnectTimeout, err = getenvDuration("HTTP_CONNECT_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.HTTPReadTimeout, err = getenvDuration("HTTP_READ_TIMEOUT", "15s"); err != nil {
		return nil, err
	}

	tzName := getenvDefault("TIMEZONE", "Asia/Kolkata")
	tz, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Timezone = tz
	cfg.DefaultLocation = getenvDefault("DEFAULT_LOCATION", weather.DefaultLocationName)

	// Refresh interval: default 15 minutes.
	if cfg.FetchInterval, err = getenvDuration("FETCH_INTERVAL", "15m"); err != nil {
		return nil, err
	}

	// Store retention.
	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", 96) // roughly 24h at 15-minute intervals
	if cfg.StoreMaxAge, err = getenvDuration("STORE_MAX_AGE", "24h"); err != nil {
		return nil, err
	}

	prefs, err := loadPreferences()
	if err != nil {
		return nil, err
	}
	cfg.Preferences = prefs

	locs, err := loadTrackedLocations()
	if err != nil {
		return nil, err
	}
	if home := prefs.LocationContext(); home.DisplayName != "" || home.Coordinate != nil {
		locs = append(locs, home)
	}
	cfg.Locations = locs

	return cfg, nil
}

func loadTrackedLocations() ([]weather.LocationContext, error) {
	city := os.Getenv("WEATHER_LOCATION_CITY")
	if strings.TrimSpace(city) == "" {
		return nil, nil
	}
	cities := strings.Split(city, ",")

	var regions []string
	if region := os.Getenv("WEATHER_LOCATION_REGION"); region != "" {
		regions = strings.Split(region, ",")
		if len(cities) != len(regions) {
			return nil, fmt.Errorf("number of cities and regions must be the same")
		}
	}

	var locs []weather.LocationContext
	for i := range cities {
		lc := weather.LocationContext{DisplayName: strings.TrimSpace(cities[i])}
		if regions != nil {
			lc.Region = strings.TrimSpace(regions[i])
		}
		if lc.DisplayName == "" {
			continue
		}
		locs = append(locs, lc)
	}

	return locs, nil
}

func loadPreferences() (weather.Preferences, error) {
	prefs := weather.Preferences{
		City:   os.Getenv("USER_CITY"),
		Region: os.Getenv("USER_STATE"),
	}

	var err error
	if prefs.Latitude, err = getenvFloat("USER_CITY_LAT", 0); err != nil {
		return prefs, err
	}
	if prefs.Longitude, err = getenvFloat("USER_CITY_LON", 0); err != nil {
		return prefs, err
	}
	return prefs, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
