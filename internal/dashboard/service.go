package dashboard

import (
	"context"
	"errors"

	"osiris-dashboard/pkg/logger"
)

// Service serves dashboard snapshots, preferring the backing store and degrading to
// the mock dataset. Each call computes an independent snapshot; the only state shared
// across calls is whatever pool the Store holds.
type Service struct {
	store Store
}

// NewService returns a Service. A nil store selects mock mode.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// LiveMode reports whether a store is configured. It says nothing about whether the
// store is currently reachable.
func (s *Service) LiveMode() bool {
	return s.store != nil
}

// Live loads a snapshot from the store. It returns ErrStoreNotConfigured in mock mode
// and a wrapped store error when any read fails.
func (s *Service) Live(ctx context.Context) (Data, error) {
	return loadLive(ctx, s.store)
}

// Dashboard always returns a complete snapshot: live when the store answers,
// otherwise the mock dataset. Store failures are logged, never retried.
func (s *Service) Dashboard(ctx context.Context) Data {
	data, err := s.Live(ctx)
	if err == nil {
		return data
	}

	log := logger.From(ctx)
	if errors.Is(err, ErrStoreNotConfigured) {
		log.Debug("dashboard serving mock data", "reason", "store not configured")
	} else {
		log.Error("live data fetch failed, serving mock data", "err", err)
	}
	return MockData()
}
