package geo

import (
	"sort"
	"strings"

	"github.com/umahmood/haversine"

	"github.com/i474232898/weather-estimation/internal/weather"
)

// DefaultNearestRadiusKm is how far Nearest looks for a named place.
const DefaultNearestRadiusKm = 50.0

// Table is a static, read-only place reference. It is safe for concurrent use.
type Table struct {
	places   []weather.Place
	radiusKm float64
}

// NewTable creates a Table from places. A radius <= 0 uses DefaultNearestRadiusKm.
func NewTable(places []weather.Place, radiusKm float64) *Table {
	if radiusKm <= 0 {
		radiusKm = DefaultNearestRadiusKm
	}
	cp := make([]weather.Place, len(places))
	copy(cp, places)
	return &Table{places: cp, radiusKm: radiusKm}
}

// Default returns the table of Indian cities shipped with the service.
func Default() *Table {
	return NewTable(indianCities, DefaultNearestRadiusKm)
}

// ByName finds a place by case-insensitive name. When region is given it is
// preferred, but a name-only match is still returned if the region does not match.
func (t *Table) ByName(name, region string) (weather.Place, bool) {
	name = strings.TrimSpace(name)
	region = strings.TrimSpace(region)
	if name == "" {
		return weather.Place{}, false
	}

	var fallback *weather.Place
	for i := range t.places {
		p := &t.places[i]
		if !strings.EqualFold(p.Name, name) {
			continue
		}
		if region == "" || strings.EqualFold(p.Region, region) {
			return *p, true
		}
		if fallback == nil {
			fallback = p
		}
	}

	if fallback != nil {
		return *fallback, true
	}
	return weather.Place{}, false
}

// Nearest returns the closest place within the table radius.
func (t *Table) Nearest(coord weather.Coordinate) (weather.Place, bool) {
	if !coord.Valid() || len(t.places) == 0 {
		return weather.Place{}, false
	}

	origin := haversine.Coord{Lat: coord.Latitude, Lon: coord.Longitude}

	best := -1
	var bestKm float64
	for i, p := range t.places {
		_, km := haversine.Distance(origin, haversine.Coord{Lat: p.Coordinate.Latitude, Lon: p.Coordinate.Longitude})
		if best == -1 || km < bestKm {
			best, bestKm = i, km
		}
	}

	if bestKm > t.radiusKm {
		return weather.Place{}, false
	}
	return t.places[best], true
}

// Search returns places whose name, district or region contains query.
func (t *Table) Search(query string) []weather.Place {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var out []weather.Place
	for _, p := range t.places {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.District), query) ||
			strings.Contains(strings.ToLower(p.Region), query) {
			out = append(out, p)
		}
	}
	return out
}

// ByRegion returns all places of one state or union territory.
func (t *Table) ByRegion(region string) []weather.Place {
	var out []weather.Place
	for _, p := range t.places {
		if strings.EqualFold(p.Region, strings.TrimSpace(region)) {
			out = append(out, p)
		}
	}
	return out
}

// Regions returns the sorted distinct region names.
func (t *Table) Regions() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range t.places {
		if _, ok := seen[p.Region]; ok {
			continue
		}
		seen[p.Region] = struct{}{}
		out = append(out, p.Region)
	}
	sort.Strings(out)
	return out
}
