package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAggregateDay(t *testing.T) {
	date := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	samples := []Reading{
		{TemperatureC: 18, Condition: "Sunny", PrecipitationProbability: 10},
		{TemperatureC: 31, Condition: "Haze", PrecipitationProbability: 20},
		{TemperatureC: 27, Condition: "Haze", PrecipitationProbability: 30},
		{TemperatureC: 22, Condition: "Sunny", PrecipitationProbability: 21},
	}

	day := AggregateDay(date, samples)

	assert.Equal(t, date, day.Date)
	assert.Equal(t, "Mon", day.DayOfWeek)
	assert.Equal(t, 31.0, day.HighC)
	assert.Equal(t, 18.0, day.LowC)
	// tie between Sunny and Haze goes to the first seen
	assert.Equal(t, "Sunny", day.Condition)
	assert.Equal(t, "clear", day.IconToken)
	assert.Equal(t, 20, day.PrecipitationProbability)
}

func TestAggregateDayWithoutSamples(t *testing.T) {
	day := AggregateDay(time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC), nil)

	assert.Equal(t, "Tue", day.DayOfWeek)
	assert.Equal(t, defaultCondition, day.Condition)
}
