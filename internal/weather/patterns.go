package weather

import "github.com/i474232898/weather-estimation/internal/common"

// Zone is an agro-climatic zone of the regional pattern catalog.
type Zone string

const (
	ZoneArid             Zone = "arid"
	ZoneTropicalMonsoon  Zone = "tropical-monsoon"
	ZoneHumidSubtropical Zone = "humid-subtropical"
	ZoneMontane          Zone = "montane"
	ZoneGeneral          Zone = "general"
)

// Pattern is the set of plausible sky conditions for a zone and season.
type Pattern struct {
	Zone        Zone
	Description string
	Conditions  []string
}

// Pick draws one condition from the pattern.
func (p Pattern) Pick(rng RandomSource) string {
	return pick(rng, p.Conditions)
}

// Contains reports whether condition belongs to the pattern.
func (p Pattern) Contains(condition string) bool {
	for _, c := range p.Conditions {
		if c == condition {
			return true
		}
	}
	return false
}

type zonePatterns struct {
	states []string
	// inSeason selects the seasonal pattern over the default one.
	inSeason func(month int) bool
	seasonal Pattern
	regular  Pattern
}

// isMountainWinter covers November through February, wrapping the year end.
func isMountainWinter(month int) bool {
	return month >= 11 || month <= 2
}

var catalog = []zonePatterns{
	{
		states:   []string{"Rajasthan", "Gujarat", "Haryana"},
		inSeason: isMonsoon,
		seasonal: Pattern{ZoneArid, "Monsoon season", []string{"Light Rain", "Cloudy", "Partly Cloudy"}},
		regular:  Pattern{ZoneArid, "Arid climate", []string{"Clear Sky", "Sunny", "Hot", "Haze"}},
	},
	{
		states:   []string{"Kerala", "Karnataka", "Tamil Nadu"},
		inSeason: isMonsoon,
		seasonal: Pattern{ZoneTropicalMonsoon, "Southwest monsoon", []string{"Heavy Rain", "Thunderstorm", "Cloudy"}},
		regular:  Pattern{ZoneTropicalMonsoon, "Tropical climate", []string{"Partly Cloudy", "Humid", "Clear Sky"}},
	},
	{
		states:   []string{"West Bengal", "Odisha", "Assam"},
		inSeason: isMonsoon,
		seasonal: Pattern{ZoneHumidSubtropical, "Monsoon", []string{"Heavy Rain", "Thunderstorm", "Overcast"}},
		regular:  Pattern{ZoneHumidSubtropical, "Humid subtropical", []string{"Humid", "Partly Cloudy", "Misty"}},
	},
	{
		states:   []string{"Himachal Pradesh", "Uttarakhand", "Jammu and Kashmir"},
		inSeason: isMountainWinter,
		seasonal: Pattern{ZoneMontane, "Mountain winter", []string{"Snow", "Cold", "Clear Sky", "Foggy"}},
		regular:  Pattern{ZoneMontane, "Mountain climate", []string{"Pleasant", "Cool Breeze", "Clear Sky"}},
	},
}

var (
	genericMonsoon = Pattern{ZoneGeneral, "Monsoon", []string{"Rainy", "Cloudy", "Humid"}}
	genericRegular = Pattern{ZoneGeneral, "General Indian climate", []string{"Clear Sky", "Partly Cloudy", "Sunny"}}
)

// RegionalPatterns returns the sky conditions plausible for region in month.
// Unknown regions get the generic monsoon or non-monsoon set.
func RegionalPatterns(region string, month int) Pattern {
	for _, z := range catalog {
		if !common.EqualsAny(region, z.states...) {
			continue
		}
		if z.inSeason(month) {
			return z.seasonal
		}
		return z.regular
	}

	if isMonsoon(month) {
		return genericMonsoon
	}
	return genericRegular
}
