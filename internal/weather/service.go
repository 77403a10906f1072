package weather

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/i474232898/weather-estimation/internal/common"
	"github.com/i474232898/weather-estimation/internal/logger"
)

const (
	// DefaultLocationName labels constant fallback readings for unknown places.
	DefaultLocationName = "Delhi, India"

	defaultLiveTimeout = 30 * time.Second
	maxForecastDays    = 7
)

// Options configures an Estimator. Zero values fall back to sane defaults.
type Options struct {
	// LiveEnabled gates the live tier; Provider must also be set.
	LiveEnabled bool
	Provider    Provider
	Geo         GeoReference

	DefaultLocation string
	// Timezone is used to derive the local month and hour of day.
	Timezone *time.Location
	// LiveTimeout bounds a single live fetch end to end.
	LiveTimeout time.Duration

	Clock func() time.Time
	Rand  RandomSource
}

// Estimator runs the live → seasonal → constant fallback chain.
// It is safe for concurrent use.
type Estimator struct {
	liveEnabled     bool
	provider        Provider
	geo             GeoReference
	defaultLocation string
	tz              *time.Location
	liveTimeout     time.Duration
	clock           func() time.Time
	rng             RandomSource

	inflight singleflight.Group
}

// NewEstimator creates a new Estimator.
func NewEstimator(opts Options) *Estimator {
	e := &Estimator{
		liveEnabled:     opts.LiveEnabled && opts.Provider != nil,
		provider:        opts.Provider,
		geo:             opts.Geo,
		defaultLocation: opts.DefaultLocation,
		tz:              opts.Timezone,
		liveTimeout:     opts.LiveTimeout,
		clock:           opts.Clock,
		rng:             opts.Rand,
	}
	if e.defaultLocation == "" {
		e.defaultLocation = DefaultLocationName
	}
	if e.tz == nil {
		e.tz = time.Local
	}
	if e.liveTimeout <= 0 {
		e.liveTimeout = defaultLiveTimeout
	}
	if e.clock == nil {
		e.clock = time.Now
	}
	if e.rng == nil {
		e.rng = NewRand(time.Now().UnixNano())
	}
	return e
}

// LiveEnabled reports whether the live tier will be attempted.
func (e *Estimator) LiveEnabled() bool {
	return e.liveEnabled
}

type state int

const (
	stateTryLive state = iota
	stateTrySeasonal
	stateConstantFallback
	stateDone
)

func (s state) String() string {
	switch s {
	case stateTryLive:
		return "TRY_LIVE"
	case stateTrySeasonal:
		return "TRY_SEASONAL"
	case stateConstantFallback:
		return "CONSTANT_FALLBACK"
	default:
		return "DONE"
	}
}

// resolved is what the Estimator knows about a place after consulting the GeoReference.
type resolved struct {
	name     string
	region   string
	coord    Coordinate
	hasCoord bool
}

// Estimate always returns a complete, bounds-valid Reading. Failures of any
// tier are logged and absorbed by falling through to the next one.
func (e *Estimator) Estimate(ctx context.Context, lc LocationContext) (reading Reading) {
	now := e.now()
	log := logger.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"location":   lc.Key(),
	})

	var res resolved
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("estimation panicked outside the live tier, using constant fallback: %v", r)
			reading = e.constant(res, now)
		}
	}()

	res, err := e.resolve(lc)
	if err != nil {
		log.Debugf("resolve: %v", err)
	}

	st := stateTryLive
	for st != stateDone {
		log.Debugf("estimation state %s", st)

		switch st {
		case stateTryLive:
			if !e.liveEnabled || !res.hasCoord {
				st = stateTrySeasonal
				continue
			}
			pr, err := e.fetchLive(ctx, res.coord)
			if err != nil {
				log.WithField("provider", e.provider.Name()).Warnf("live fetch failed: %v", err)
				st = stateTrySeasonal
				continue
			}
			reading = e.fromProvider(pr, res, now)
			st = stateDone

		case stateTrySeasonal:
			if !res.hasCoord {
				st = stateConstantFallback
				continue
			}
			reading = e.seasonal(res, now)
			st = stateDone

		default:
			reading = e.constant(res, now)
			st = stateDone
		}
	}

	log.WithField("source", reading.Source).Debugf("estimated %.1f°C %s", reading.TemperatureC, reading.Condition)
	return reading
}

// EstimateForPreferences estimates for the location saved in the user's settings.
func (e *Estimator) EstimateForPreferences(ctx context.Context, prefs Preferences) Reading {
	return e.Estimate(ctx, prefs.LocationContext())
}

// Forecast simulates a daily forecast from the seasonal model. It only fails
// on an out-of-range number of days.
func (e *Estimator) Forecast(ctx context.Context, lc LocationContext, days int) (Forecast, error) {
	if days <= 0 || days > maxForecastDays {
		return nil, fmt.Errorf("days must be between 1 and %d, got %d", maxForecastDays, days)
	}

	res, err := e.resolve(lc)
	if err != nil {
		logger.Debugf("forecast for %s: %v", lc.Key(), err)
	}

	now := e.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	forecast := make(Forecast, 0, days)
	for i := 0; i < days; i++ {
		if ctx.Err() != nil {
			break
		}
		day := start.AddDate(0, 0, i)

		samples := make([]Reading, 0, 8)
		for hour := 0; hour < 24; hour += 3 {
			at := day.Add(time.Duration(hour) * time.Hour)
			if res.hasCoord {
				samples = append(samples, e.seasonal(res, at))
			} else {
				samples = append(samples, e.constant(res, at))
			}
		}

		fd := AggregateDay(day, samples)
		if i == 0 {
			fd.DayOfWeek = "Today"
		}
		forecast = append(forecast, fd)
	}

	return forecast, nil
}

func (e *Estimator) now() time.Time {
	return e.clock().In(e.tz)
}

func (e *Estimator) resolve(lc LocationContext) (resolved, error) {
	res := resolved{
		name:   strings.TrimSpace(lc.DisplayName),
		region: strings.TrimSpace(lc.Region),
	}

	if lc.Coordinate != nil && lc.Coordinate.Valid() {
		res.coord, res.hasCoord = *lc.Coordinate, true
		if e.geo != nil && (res.name == "" || res.region == "") {
			if p, ok := e.geo.Nearest(res.coord); ok {
				if res.name == "" {
					res.name = p.Name
				}
				if res.region == "" {
					res.region = p.Region
				}
			}
		}
		return res, nil
	}

	if res.name == "" {
		return res, fmt.Errorf("%w: neither name nor coordinate given", ErrUnresolvableLocation)
	}
	if e.geo == nil {
		return res, fmt.Errorf("%w: no reference table for %q", ErrUnresolvableLocation, res.name)
	}

	p, ok := e.geo.ByName(res.name, res.region)
	if !ok {
		return res, fmt.Errorf("%w: %q not found", ErrUnresolvableLocation, res.name)
	}
	res.name = p.Name
	if p.Region != "" {
		res.region = p.Region
	}
	res.coord, res.hasCoord = p.Coordinate, true
	return res, nil
}

var errProviderPanic = errors.New("live provider panicked")

// fetchLive performs the single outbound call. Identical concurrent requests
// share one call. A panicking provider counts as a failed fetch.
func (e *Estimator) fetchLive(ctx context.Context, coord Coordinate) (ProviderReading, error) {
	v, err, _ := e.inflight.Do(e.provider.Name()+"|"+coord.Key(), func() (_ interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", errProviderPanic, r)
			}
		}()

		ctx, cancel := context.WithTimeout(ctx, e.liveTimeout)
		defer cancel()
		return e.provider.Fetch(ctx, coord)
	})
	if err != nil {
		return ProviderReading{}, err
	}
	pr, ok := v.(ProviderReading)
	if !ok {
		return ProviderReading{}, errors.New("unexpected live fetch result type")
	}
	return pr, nil
}

func (e *Estimator) fromProvider(pr ProviderReading, res resolved, now time.Time) Reading {
	month, hour := MonthIndex(now), now.Hour()

	r := Reading{
		Location:      FormatLocation(res.name, res.region),
		TemperatureC:  pr.TemperatureC,
		Condition:     pr.Condition,
		HumidityPct:   int(math.Round(pr.HumidityPct)),
		WindSpeedKmh:  pr.WindSpeedKmh,
		WindDirection: North,
		PressureHpa:   pr.PressureHpa,
		VisibilityKm:  10,
		UVIndex:       UVIndex(res.coord.Latitude, month, hour),
		IconToken:     pr.ConditionIcon,
		Source:        SourceLive,
		Provider:      pr.ProviderName,
		ObservedAt:    now.UTC(),
	}
	if !pr.Timestamp.IsZero() {
		r.ObservedAt = pr.Timestamp.UTC()
	}
	if pr.WindBearing != nil {
		r.WindDirection = CompassFromDegrees(*pr.WindBearing)
	}
	if pr.VisibilityKm != nil {
		r.VisibilityKm = *pr.VisibilityKm
	}
	if pr.UVIndex != nil {
		r.UVIndex = *pr.UVIndex
	}
	if pr.FeelsLikeC != nil {
		r.FeelsLikeC = *pr.FeelsLikeC
	}

	r.PrecipitationProbability = precipitationProbability(r.Condition, e.rng)
	if pr.PrecipitationProbability != nil {
		r.PrecipitationProbability = *pr.PrecipitationProbability
	}
	r.PrecipitationMm = precipitationMm(r.Condition, e.rng)
	if pr.PrecipitationMm != nil {
		r.PrecipitationMm = *pr.PrecipitationMm
	}
	r.CloudCoverPct = cloudCover(r.Condition, e.rng)
	if pr.CloudCoverPct != nil {
		r.CloudCoverPct = *pr.CloudCoverPct
	}
	r.SoilMoisture = SoilMoisture(res.coord.Latitude, month, r.Condition)
	if pr.SoilMoisture != nil {
		r.SoilMoisture = *pr.SoilMoisture
	}
	r.SoilTemperatureC = r.TemperatureC - 3
	if pr.SoilTemperatureC != nil {
		r.SoilTemperatureC = *pr.SoilTemperatureC
	}

	return Normalize(r, pr.FeelsLikeC != nil, e.rng)
}

func (e *Estimator) seasonal(res resolved, now time.Time) Reading {
	month, hour := MonthIndex(now), now.Hour()
	lat := res.coord.Latitude

	condition := RegionalPatterns(res.region, month).Pick(e.rng)
	profile := Profile(lat, res.region, month, hour, condition, e.rng)
	temp := profile.TemperatureC()

	r := Reading{
		Location:                 FormatLocation(res.name, res.region),
		TemperatureC:             temp,
		Condition:                condition,
		HumidityPct:              profile.HumidityPct,
		WindSpeedKmh:             profile.WindKmh,
		WindDirection:            Compass[e.rng.Intn(len(Compass))],
		PressureHpa:              profile.PressureHpa,
		VisibilityKm:             float64(between(e.rng, 8, 15)),
		UVIndex:                  profile.UVIndex,
		IconToken:                IconToken(condition),
		PrecipitationProbability: precipitationProbability(condition, e.rng),
		PrecipitationMm:          precipitationMm(condition, e.rng),
		CloudCoverPct:            cloudCover(condition, e.rng),
		SoilMoisture:             SoilMoisture(lat, month, condition),
		SoilTemperatureC:         temp - float64(between(e.rng, 2, 5)),
		Source:                   SourceSeasonal,
		ObservedAt:               now.UTC(),
	}

	return Normalize(r, false, e.rng)
}

// constantConditions pairs each generic condition with its icon token.
var constantConditions = []struct {
	condition string
	icon      string
}{
	{"Sunny", "clear"},
	{"Partly Cloudy", "partly-cloudy"},
	{"Cloudy", "cloudy"},
}

// ConstantConditions lists the generic conditions of the constant fallback.
func ConstantConditions() []string {
	out := make([]string, 0, len(constantConditions))
	for _, c := range constantConditions {
		out = append(out, c.condition)
	}
	return out
}

// ConstantTemperature is the time-of-day temperature of the constant fallback.
func ConstantTemperature(hour int) float64 {
	switch {
	case hour >= 6 && hour <= 9:
		return 22 // morning
	case hour >= 10 && hour <= 15:
		return 28 // midday
	case hour >= 16 && hour <= 18:
		return 25 // evening
	default:
		return 20 // night
	}
}

func (e *Estimator) constant(res resolved, now time.Time) Reading {
	temp := ConstantTemperature(now.Hour())
	c := constantConditions[e.rng.Intn(len(constantConditions))]

	location := e.defaultLocation
	if res.name != "" {
		location = FormatLocation(res.name, res.region)
	}

	r := Reading{
		Location:                 location,
		TemperatureC:             temp,
		Condition:                c.condition,
		HumidityPct:              65,
		WindSpeedKmh:             12,
		WindDirection:            NorthWest,
		PressureHpa:              1013.25,
		VisibilityKm:             10,
		UVIndex:                  5,
		FeelsLikeC:               temp + 2,
		IconToken:                c.icon,
		PrecipitationProbability: 30,
		CloudCoverPct:            40,
		SoilMoisture:             0.2,
		SoilTemperatureC:         temp - 3,
		Source:                   SourceConstant,
		ObservedAt:               now.UTC(),
	}

	return Normalize(r, true, e.rng)
}

// MonthIndex returns the zero-based month of t.
func MonthIndex(t time.Time) int {
	return int(t.Month()) - 1
}

func precipitationProbability(condition string, rng RandomSource) int {
	if common.HasAny(condition, "rain", "thunder", "storm", "drizzle", "shower") {
		return between(rng, 60, 90)
	}
	return between(rng, 10, 40)
}

func precipitationMm(condition string, rng RandomSource) float64 {
	if common.HasAny(condition, "rain", "drizzle", "shower") {
		return float64(between(rng, 1, 15))
	}
	return 0
}

func cloudCover(condition string, rng RandomSource) int {
	switch {
	case common.HasAny(condition, "clear", "sunny"):
		return between(rng, 0, 20)
	case common.HasAny(condition, "partly"):
		return between(rng, 30, 60)
	default:
		return between(rng, 70, 95)
	}
}
