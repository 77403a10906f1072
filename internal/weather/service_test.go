package weather_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-estimation/internal/geo"
	"github.com/i474232898/weather-estimation/internal/weather"
	"github.com/i474232898/weather-estimation/internal/weather/mock"
)

var ist = time.FixedZone("IST", 19800)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func floatPtr(v float64) *float64 { return &v }

func newMockProvider(ctrl *gomock.Controller) *mock.MockProvider {
	p := mock.NewMockProvider(ctrl)
	p.EXPECT().Name().Return("mock").AnyTimes()
	return p
}

type panickingProvider struct{}

func (panickingProvider) Name() string { return "panicking" }

func (panickingProvider) Fetch(context.Context, weather.Coordinate) (weather.ProviderReading, error) {
	panic("provider exploded")
}

func TestEstimateLiveSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, time.June, 15, 14, 0, 0, 0, ist)
	delhi := weather.Coordinate{Latitude: 28.7, Longitude: 77.1}

	provider := newMockProvider(ctrl)
	provider.EXPECT().Fetch(gomock.Any(), delhi).Return(weather.ProviderReading{
		ProviderName:  "openweathermap",
		TemperatureC:  31.4,
		FeelsLikeC:    floatPtr(33),
		HumidityPct:   40.4,
		WindSpeedKmh:  9,
		WindBearing:   floatPtr(44),
		PressureHpa:   1008,
		Condition:     "Haze",
		ConditionIcon: "fog",
	}, nil).Times(1)

	est := weather.NewEstimator(weather.Options{
		LiveEnabled: true,
		Provider:    provider,
		Geo:         geo.Default(),
		Timezone:    ist,
		Clock:       fixedClock(now),
		Rand:        weather.NewRand(1),
	})

	r := est.Estimate(context.Background(), weather.LocationContext{Coordinate: &delhi})

	assert.Equal(t, weather.SourceLive, r.Source)
	assert.Equal(t, "openweathermap", r.Provider)
	assert.Equal(t, "Delhi", r.Location)
	assert.Equal(t, 31.4, r.TemperatureC)
	assert.Equal(t, 33.0, r.FeelsLikeC)
	assert.Equal(t, 40, r.HumidityPct)
	assert.Equal(t, weather.North, r.WindDirection)
	assert.Equal(t, 1008.0, r.PressureHpa)
	assert.Equal(t, 10.0, r.VisibilityKm)
	assert.Equal(t, "Haze", r.Condition)
	assert.Equal(t, "fog", r.IconToken)
	assert.Equal(t, now.UTC(), r.ObservedAt)
}

func TestEstimateLiveFailureFallsBackToSeasonal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, time.January, 10, 9, 0, 0, 0, ist)

	provider := newMockProvider(ctrl)
	provider.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Return(weather.ProviderReading{}, fmt.Errorf("%w: connection refused", weather.ErrNetwork))

	est := weather.NewEstimator(weather.Options{
		LiveEnabled: true,
		Provider:    provider,
		Geo:         geo.Default(),
		Timezone:    ist,
		Clock:       fixedClock(now),
		Rand:        weather.NewRand(2),
	})

	r := est.Estimate(context.Background(), weather.LocationContext{DisplayName: "Jaipur"})

	assert.Equal(t, weather.SourceSeasonal, r.Source)
	assert.Equal(t, "Jaipur, Rajasthan", r.Location)
	assert.True(t, weather.RegionalPatterns("Rajasthan", 0).Contains(r.Condition), r.Condition)
	// 22 (band) - 8 (winter) - 1 (morning)
	assert.Equal(t, 13.0, r.TemperatureC)
}

func TestEstimateLiveTimeoutFallsBackToSeasonal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := newMockProvider(ctrl)
	provider.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ weather.Coordinate) (weather.ProviderReading, error) {
			<-ctx.Done()
			return weather.ProviderReading{}, ctx.Err()
		})

	est := weather.NewEstimator(weather.Options{
		LiveEnabled: true,
		Provider:    provider,
		Geo:         geo.Default(),
		Timezone:    ist,
		LiveTimeout: 20 * time.Millisecond,
		Clock:       fixedClock(time.Date(2025, time.July, 1, 12, 0, 0, 0, ist)),
		Rand:        weather.NewRand(3),
	})

	r := est.Estimate(context.Background(), weather.LocationContext{DisplayName: "Kochi", Region: "Kerala"})

	assert.Equal(t, weather.SourceSeasonal, r.Source)
	assert.True(t, weather.RegionalPatterns("Kerala", 6).Contains(r.Condition), r.Condition)
}

func TestEstimateLiveDisabledNeverCallsProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Fetch expectation: any call fails the test.
	provider := mock.NewMockProvider(ctrl)

	est := weather.NewEstimator(weather.Options{
		LiveEnabled: false,
		Provider:    provider,
		Geo:         geo.Default(),
		Timezone:    ist,
		Clock:       fixedClock(time.Date(2025, time.March, 1, 12, 0, 0, 0, ist)),
		Rand:        weather.NewRand(4),
	})

	assert.False(t, est.LiveEnabled())
	r := est.Estimate(context.Background(), weather.LocationContext{DisplayName: "Shimla"})
	assert.Equal(t, weather.SourceSeasonal, r.Source)
	assert.Equal(t, "Shimla, Himachal Pradesh", r.Location)
}

func TestEstimateTotalFallback(t *testing.T) {
	cases := map[int]float64{7: 22, 12: 28, 17: 25, 23: 20}

	for hour, want := range cases {
		t.Run(fmt.Sprintf("hour %d", hour), func(t *testing.T) {
			est := weather.NewEstimator(weather.Options{
				Geo:      geo.Default(),
				Timezone: ist,
				Clock:    fixedClock(time.Date(2025, time.May, 5, hour, 30, 0, 0, ist)),
				Rand:     weather.NewRand(int64(hour)),
			})

			r := est.Estimate(context.Background(), weather.LocationContext{DisplayName: "Atlantis"})

			assert.Equal(t, weather.SourceConstant, r.Source)
			assert.Equal(t, want, r.TemperatureC)
			assert.Equal(t, want+2, r.FeelsLikeC)
			assert.Equal(t, 65, r.HumidityPct)
			assert.Equal(t, 12.0, r.WindSpeedKmh)
			assert.Equal(t, weather.NorthWest, r.WindDirection)
			assert.Equal(t, 1013.25, r.PressureHpa)
			assert.Equal(t, 10.0, r.VisibilityKm)
			assert.Equal(t, 5, r.UVIndex)
			assert.Contains(t, weather.ConstantConditions(), r.Condition)
			assert.Equal(t, "Atlantis", r.Location)
		})
	}
}

func TestEstimateEmptyContextUsesDefaultLocation(t *testing.T) {
	est := weather.NewEstimator(weather.Options{
		Geo:   geo.Default(),
		Clock: fixedClock(time.Date(2025, time.May, 5, 12, 0, 0, 0, ist)),
		Rand:  weather.NewRand(5),
	})

	r := est.Estimate(context.Background(), weather.LocationContext{})

	assert.Equal(t, weather.SourceConstant, r.Source)
	assert.Equal(t, weather.DefaultLocationName, r.Location)
}

func TestEstimateWithoutGeoReference(t *testing.T) {
	est := weather.NewEstimator(weather.Options{
		DefaultLocation: "Mumbai, India",
		Rand:            weather.NewRand(6),
	})

	r := est.Estimate(context.Background(), weather.LocationContext{})
	assert.Equal(t, "Mumbai, India", r.Location)

	coord := weather.Coordinate{Latitude: 19.07, Longitude: 72.87}
	r = est.Estimate(context.Background(), weather.LocationContext{DisplayName: "Mumbai", Coordinate: &coord})
	assert.Equal(t, weather.SourceSeasonal, r.Source)
	assert.Equal(t, "Mumbai", r.Location)
}

func TestEstimateDelhiInJune(t *testing.T) {
	est := weather.NewEstimator(weather.Options{
		Geo:      geo.Default(),
		Timezone: ist,
		Clock:    fixedClock(time.Date(2025, time.June, 15, 14, 0, 0, 0, ist)),
		Rand:     weather.NewRand(7),
	})

	delhi := weather.Coordinate{Latitude: 28.7, Longitude: 77.1}
	r := est.Estimate(context.Background(), weather.LocationContext{Coordinate: &delhi})

	assert.Equal(t, weather.SourceSeasonal, r.Source)
	assert.Equal(t, "Delhi", r.Location)
	assert.Equal(t, 35.0, r.TemperatureC)
	assert.GreaterOrEqual(t, r.TemperatureC, 22.0)
	assert.LessOrEqual(t, r.TemperatureC, 45.0)
	assert.True(t, weather.RegionalPatterns("Delhi", 5).Contains(r.Condition), r.Condition)
	assert.Equal(t, 7, r.UVIndex)
}

func TestEstimatePanickingProviderFallsBackToSeasonal(t *testing.T) {
	est := weather.NewEstimator(weather.Options{
		LiveEnabled: true,
		Provider:    panickingProvider{},
		Geo:         geo.Default(),
		Timezone:    ist,
		Clock:       fixedClock(time.Date(2025, time.June, 15, 12, 0, 0, 0, ist)),
		Rand:        weather.NewRand(8),
	})

	var r weather.Reading
	require.NotPanics(t, func() {
		r = est.Estimate(context.Background(), weather.LocationContext{DisplayName: "Pune"})
	})

	assert.Equal(t, weather.SourceSeasonal, r.Source)
	assert.Equal(t, "Pune, Maharashtra", r.Location)
	assert.True(t, weather.RegionalPatterns("Maharashtra", 5).Contains(r.Condition), r.Condition)
	// 28 (band) + 8 (summer) + 3 (midday)
	assert.Equal(t, 39.0, r.TemperatureC)
}

func TestEstimateRecoversFromPanicOutsideLiveTier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ref := mock.NewMockGeoReference(ctrl)
	ref.EXPECT().ByName("Pune", "").DoAndReturn(func(string, string) (weather.Place, bool) {
		panic("reference table corrupted")
	})

	est := weather.NewEstimator(weather.Options{
		Geo:      ref,
		Timezone: ist,
		Clock:    fixedClock(time.Date(2025, time.June, 15, 12, 0, 0, 0, ist)),
		Rand:     weather.NewRand(8),
	})

	var r weather.Reading
	require.NotPanics(t, func() {
		r = est.Estimate(context.Background(), weather.LocationContext{DisplayName: "Pune"})
	})

	assert.Equal(t, weather.SourceConstant, r.Source)
	assert.Equal(t, 28.0, r.TemperatureC)
}

func TestEstimateForPreferences(t *testing.T) {
	est := weather.NewEstimator(weather.Options{
		Geo:      geo.Default(),
		Timezone: ist,
		Clock:    fixedClock(time.Date(2025, time.October, 2, 10, 0, 0, 0, ist)),
		Rand:     weather.NewRand(9),
	})

	unset := est.EstimateForPreferences(context.Background(), weather.Preferences{City: "Select City"})
	assert.Equal(t, weather.SourceConstant, unset.Source)
	assert.Equal(t, weather.DefaultLocationName, unset.Location)

	pune := est.EstimateForPreferences(context.Background(), weather.Preferences{City: "Pune", Region: "Maharashtra"})
	assert.Equal(t, weather.SourceSeasonal, pune.Source)
	assert.Equal(t, "Pune, Maharashtra", pune.Location)

	byCoord := est.EstimateForPreferences(context.Background(), weather.Preferences{
		City:      "Select City",
		Latitude:  26.9124,
		Longitude: 75.7873,
	})
	assert.Equal(t, weather.SourceSeasonal, byCoord.Source)
	assert.Equal(t, "Jaipur, Rajasthan", byCoord.Location)
}

func TestEstimateAlwaysWithinBounds(t *testing.T) {
	table := geo.Default()
	rng := weather.NewRand(10)

	for _, region := range table.Regions() {
		for _, place := range table.ByRegion(region) {
			for _, hour := range []int{0, 6, 13, 19} {
				for month := time.January; month <= time.December; month += 3 {
					est := weather.NewEstimator(weather.Options{
						Geo:      table,
						Timezone: ist,
						Clock:    fixedClock(time.Date(2025, month, 10, hour, 0, 0, 0, ist)),
						Rand:     rng,
					})
					coord := place.Coordinate
					r := est.Estimate(context.Background(), weather.LocationContext{Coordinate: &coord})

					assert.GreaterOrEqual(t, r.TemperatureC, -40.0)
					assert.LessOrEqual(t, r.TemperatureC, 55.0)
					assert.GreaterOrEqual(t, r.HumidityPct, 0)
					assert.LessOrEqual(t, r.HumidityPct, 100)
					assert.GreaterOrEqual(t, r.UVIndex, 0)
					assert.LessOrEqual(t, r.UVIndex, 11)
					assert.GreaterOrEqual(t, r.WindSpeedKmh, 0.0)
					assert.GreaterOrEqual(t, r.VisibilityKm, 0.0)
					assert.True(t, r.WindDirection.Valid())
					assert.NotEmpty(t, r.Condition)
					assert.NotEmpty(t, r.Location)
					assert.NotEmpty(t, r.IconToken)
				}
			}
		}
	}
}

func TestEstimateIsDeterministicForASeed(t *testing.T) {
	newEstimator := func() *weather.Estimator {
		return weather.NewEstimator(weather.Options{
			Geo:      geo.Default(),
			Timezone: ist,
			Clock:    fixedClock(time.Date(2025, time.August, 20, 16, 0, 0, 0, ist)),
			Rand:     weather.NewRand(42),
		})
	}

	lc := weather.LocationContext{DisplayName: "Kolhapur"}
	assert.Equal(t,
		newEstimator().Estimate(context.Background(), lc),
		newEstimator().Estimate(context.Background(), lc))
}

func TestForecast(t *testing.T) {
	est := weather.NewEstimator(weather.Options{
		Geo:      geo.Default(),
		Timezone: ist,
		Clock:    fixedClock(time.Date(2025, time.March, 3, 18, 45, 0, 0, ist)),
		Rand:     weather.NewRand(11),
	})
	ctx := context.Background()

	_, err := est.Forecast(ctx, weather.LocationContext{DisplayName: "Delhi"}, 0)
	assert.Error(t, err)
	_, err = est.Forecast(ctx, weather.LocationContext{DisplayName: "Delhi"}, 8)
	assert.Error(t, err)

	forecast, err := est.Forecast(ctx, weather.LocationContext{DisplayName: "Delhi"}, 5)
	require.NoError(t, err)
	require.Len(t, forecast, 5)

	assert.Equal(t, "Today", forecast[0].DayOfWeek)
	assert.Equal(t, "Tue", forecast[1].DayOfWeek)
	for i, day := range forecast {
		assert.GreaterOrEqual(t, day.HighC, day.LowC)
		assert.NotEmpty(t, day.Condition)
		if i > 0 {
			assert.True(t, day.Date.After(forecast[i-1].Date))
		}
	}
}

func TestForecastForUnknownPlaceUsesConstantDay(t *testing.T) {
	est := weather.NewEstimator(weather.Options{
		Geo:      geo.Default(),
		Timezone: ist,
		Clock:    fixedClock(time.Date(2025, time.March, 3, 8, 0, 0, 0, ist)),
		Rand:     weather.NewRand(12),
	})

	forecast, err := est.Forecast(context.Background(), weather.LocationContext{DisplayName: "Atlantis"}, 2)
	require.NoError(t, err)
	require.Len(t, forecast, 2)

	for _, day := range forecast {
		assert.Equal(t, 28.0, day.HighC)
		assert.Equal(t, 20.0, day.LowC)
		assert.Equal(t, 30, day.PrecipitationProbability)
		assert.Contains(t, weather.ConstantConditions(), day.Condition)
	}
}
