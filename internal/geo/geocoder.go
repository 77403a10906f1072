package geo

import (
	"fmt"
	"strings"
	"sync"

	"github.com/kelvins/geocoder"

	"github.com/i474232898/weather-estimation/internal/logger"
	"github.com/i474232898/weather-estimation/internal/weather"
)

// GeocodeFunc resolves an address to a location. It matches geocoder.Geocoding.
type GeocodeFunc func(address geocoder.Address) (geocoder.Location, error)

// GeocodingReference answers from a static table first and asks the Google
// geocoding API for names the table does not know.
type GeocodingReference struct {
	table   *Table
	geocode GeocodeFunc

	mu    sync.RWMutex
	cache map[string]weather.Place
}

var setAPIKey sync.Once

// NewGeocodingReference wires the Google geocoder behind table. An empty
// apiKey disables remote lookups.
func NewGeocodingReference(table *Table, apiKey string) *GeocodingReference {
	r := &GeocodingReference{
		table: table,
		cache: make(map[string]weather.Place),
	}
	if apiKey != "" {
		// The geocoder package reads its key from a package variable.
		setAPIKey.Do(func() { geocoder.ApiKey = apiKey })
		r.geocode = geocoder.Geocoding
	}
	return r
}

// WithGeocodeFunc replaces the remote lookup, mostly for tests.
func (r *GeocodingReference) WithGeocodeFunc(fn GeocodeFunc) *GeocodingReference {
	r.geocode = fn
	return r
}

// ByName consults the table, then the cache, then the geocoder.
func (r *GeocodingReference) ByName(name, region string) (weather.Place, bool) {
	if p, ok := r.table.ByName(name, region); ok {
		return p, true
	}
	if r.geocode == nil || strings.TrimSpace(name) == "" {
		return weather.Place{}, false
	}

	key := strings.ToLower(strings.TrimSpace(name)) + ":" + strings.ToLower(strings.TrimSpace(region))

	r.mu.RLock()
	p, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return p, true
	}

	loc, err := r.geocode(geocoder.Address{
		City:    strings.TrimSpace(name),
		State:   strings.TrimSpace(region),
		Country: "India",
	})
	if err != nil {
		logger.Warnf("geocoding %q failed: %v", name, err)
		return weather.Place{}, false
	}

	coord := weather.Coordinate{Latitude: loc.Latitude, Longitude: loc.Longitude}
	if !coord.Valid() || (coord.Latitude == 0 && coord.Longitude == 0) {
		logger.Error(fmt.Errorf("geocoding %q returned an invalid coordinate %+v", name, loc))
		return weather.Place{}, false
	}

	p = weather.Place{Name: strings.TrimSpace(name), Region: strings.TrimSpace(region), Coordinate: coord}
	if p.Region == "" {
		if near, ok := r.table.Nearest(coord); ok {
			p.Region = near.Region
		}
	}

	r.mu.Lock()
	r.cache[key] = p
	r.mu.Unlock()

	return p, true
}

// Nearest delegates to the static table.
func (r *GeocodingReference) Nearest(coord weather.Coordinate) (weather.Place, bool) {
	return r.table.Nearest(coord)
}
