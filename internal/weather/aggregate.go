package weather

import (
	"math"
	"time"
)

// AggregateDay combines the intra-day samples of one date into a ForecastDay.
// Temperatures give the high and low, precipitation probability is averaged and
// the condition is selected by majority (first seen wins a tie).
func AggregateDay(date time.Time, samples []Reading) ForecastDay {
	day := ForecastDay{
		Date:      date,
		DayOfWeek: date.Weekday().String()[:3],
	}
	if len(samples) == 0 {
		day.Condition = defaultCondition
		day.IconToken = IconToken(defaultCondition)
		return day
	}

	var (
		sumPrecip int
		high      = math.Inf(-1)
		low       = math.Inf(1)
	)

	conditionCounts := make(map[string]int)
	order := make([]string, 0, len(samples))

	for _, s := range samples {
		high = math.Max(high, s.TemperatureC)
		low = math.Min(low, s.TemperatureC)
		sumPrecip += s.PrecipitationProbability

		if _, seen := conditionCounts[s.Condition]; !seen {
			order = append(order, s.Condition)
		}
		conditionCounts[s.Condition]++
	}

	// Pick majority condition.
	best := order[0]
	for _, cond := range order[1:] {
		if conditionCounts[cond] > conditionCounts[best] {
			best = cond
		}
	}

	day.HighC = high
	day.LowC = low
	day.Condition = best
	day.IconToken = IconToken(best)
	day.PrecipitationProbability = int(math.Round(float64(sumPrecip) / float64(len(samples))))
	return day
}
