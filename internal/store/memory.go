package store

import (
	"errors"
	"sync"
	"time"

	"github.com/i474232898/weather-estimation/internal/weather"
)

var (
	// ErrNotFound is returned when no reading is available for a given location.
	ErrNotFound = errors.New("no weather reading for location")
)

// ReadingHistory holds a time-ordered list of readings for a location.
type ReadingHistory struct {
	Readings []weather.Reading
}

// MemoryStore is a concurrency-safe in-memory store of recent readings.
type MemoryStore struct {
	mu sync.RWMutex

	// key: location key, value: history
	data map[string]*ReadingHistory

	// retention configuration
	maxHistory int           // max number of readings per location
	maxAge     time.Duration // optional max age for readings

	now func() time.Time
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxHistory is <= 0, it is treated as unlimited.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]*ReadingHistory),
		maxHistory: maxHistory,
		maxAge:     maxAge,
		now:        time.Now,
	}
}

// SaveReading appends a new reading for a location and enforces retention.
func (s *MemoryStore) SaveReading(key string, reading weather.Reading) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.data[key]
	if !ok {
		history = &ReadingHistory{}
		s.data[key] = history
	}

	history.Readings = append(history.Readings, reading)

	// Enforce retention by count.
	if s.maxHistory > 0 && len(history.Readings) > s.maxHistory {
		over := len(history.Readings) - s.maxHistory
		history.Readings = history.Readings[over:]
	}

	// Enforce retention by age, always keeping the newest reading.
	if s.maxAge > 0 {
		cutoff := s.now().Add(-s.maxAge)
		i := 0
		for ; i < len(history.Readings)-1; i++ {
			if !history.Readings[i].ObservedAt.Before(cutoff) {
				break
			}
		}
		history.Readings = history.Readings[i:]
	}
}

// GetLatest returns the most recent reading for a location.
func (s *MemoryStore) GetLatest(key string) (weather.Reading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[key]
	if !ok || len(history.Readings) == 0 {
		return weather.Reading{}, ErrNotFound
	}
	return history.Readings[len(history.Readings)-1], nil
}

// GetRange returns all readings for a location between from and to (inclusive).
func (s *MemoryStore) GetRange(key string, from, to time.Time) ([]weather.Reading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[key]
	if !ok || len(history.Readings) == 0 {
		return nil, ErrNotFound
	}

	var result []weather.Reading
	for _, r := range history.Readings {
		if !r.ObservedAt.Before(from) && !r.ObservedAt.After(to) {
			result = append(result, r)
		}
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}

	return result, nil
}
