package weather

import (
	"context"
	"time"
)

// Store is the contract the recent-readings store must satisfy.
type Store interface {
	SaveReading(key string, reading Reading)
	GetLatest(key string) (Reading, error)
	GetRange(key string, from, to time.Time) ([]Reading, error)
}

// Service pairs the Estimator with a store of recent readings for the
// locations the scheduler keeps warm.
type Service struct {
	estimator *Estimator
	store     Store
}

// NewService creates a new Service.
func NewService(estimator *Estimator, store Store) *Service {
	return &Service{
		estimator: estimator,
		store:     store,
	}
}

// Estimator returns the underlying fallback chain.
func (s *Service) Estimator() *Estimator {
	return s.estimator
}

// EstimateAndStore estimates the reading for loc and records it.
func (s *Service) EstimateAndStore(ctx context.Context, loc LocationContext) Reading {
	r := s.estimator.Estimate(ctx, loc)
	if s.store != nil {
		s.store.SaveReading(loc.Key(), r)
	}
	return r
}

// GetLatest delegates to the underlying store.
func (s *Service) GetLatest(loc LocationContext) (Reading, error) {
	return s.store.GetLatest(loc.Key())
}

// GetRange delegates to the underlying store.
func (s *Service) GetRange(loc LocationContext, from, to time.Time) ([]Reading, error) {
	return s.store.GetRange(loc.Key(), from, to)
}
