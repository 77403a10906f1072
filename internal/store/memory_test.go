package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-estimation/internal/weather"
)

func reading(at time.Time, temp float64) weather.Reading {
	return weather.Reading{Location: "Jaipur, Rajasthan", TemperatureC: temp, ObservedAt: at}
}

func TestMemoryStoreLatest(t *testing.T) {
	s := NewMemoryStore(0, 0)

	_, err := s.GetLatest("jaipur:")
	assert.ErrorIs(t, err, ErrNotFound)

	base := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	s.SaveReading("jaipur:", reading(base, 30))
	s.SaveReading("jaipur:", reading(base.Add(time.Hour), 32))

	got, err := s.GetLatest("jaipur:")
	require.NoError(t, err)
	assert.Equal(t, 32.0, got.TemperatureC)
}

func TestMemoryStoreRetentionByCount(t *testing.T) {
	s := NewMemoryStore(3, 0)
	base := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		s.SaveReading("k", reading(base.Add(time.Duration(i)*time.Minute), float64(i)))
	}

	all, err := s.GetRange("k", base, base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 2.0, all[0].TemperatureC)
	assert.Equal(t, 4.0, all[2].TemperatureC)
}

func TestMemoryStoreRetentionByAge(t *testing.T) {
	now := time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore(0, 6*time.Hour)
	s.now = func() time.Time { return now }

	s.SaveReading("k", reading(now.Add(-10*time.Hour), 1))
	s.SaveReading("k", reading(now.Add(-2*time.Hour), 2))

	all, err := s.GetRange("k", now.Add(-24*time.Hour), now)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 2.0, all[0].TemperatureC)

	// the newest reading is kept even when it is stale
	s.SaveReading("old", reading(now.Add(-48*time.Hour), 3))
	latest, err := s.GetLatest("old")
	require.NoError(t, err)
	assert.Equal(t, 3.0, latest.TemperatureC)
}

func TestMemoryStoreRange(t *testing.T) {
	s := NewMemoryStore(0, 0)
	base := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		s.SaveReading("k", reading(base.Add(time.Duration(i)*time.Hour), float64(i)))
	}

	got, err := s.GetRange("k", base.Add(time.Hour), base.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = s.GetRange("k", base.Add(10*time.Hour), base.Add(11*time.Hour))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetRange("missing", base, base.Add(time.Hour))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreSatisfiesStore(t *testing.T) {
	var _ weather.Store = NewMemoryStore(1, time.Hour)
}
