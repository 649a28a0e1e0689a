package mock

import (
	"context"

	"github.com/fwojciec/yweather"
)

var _ yweather.ObservationService = (*ObservationService)(nil)

// ObservationService is a mock implementation of yweather.ObservationService.
type ObservationService struct {
	CreateObservationFn   func(ctx context.Context, obs *yweather.Observation) error
	FindObservationByIDFn func(ctx context.Context, id string) (*yweather.Observation, error)
	FindObservationsFn    func(ctx context.Context, filter yweather.ObservationFilter) ([]*yweather.Observation, error)
	DeleteObservationsFn  func(ctx context.Context, woeid string) (int, error)
}

func (s *ObservationService) CreateObservation(ctx context.Context, obs *yweather.Observation) error {
	return s.CreateObservationFn(ctx, obs)
}

func (s *ObservationService) FindObservationByID(ctx context.Context, id string) (*yweather.Observation, error) {
	return s.FindObservationByIDFn(ctx, id)
}

func (s *ObservationService) FindObservations(ctx context.Context, filter yweather.ObservationFilter) ([]*yweather.Observation, error) {
	return s.FindObservationsFn(ctx, filter)
}

func (s *ObservationService) DeleteObservations(ctx context.Context, woeid string) (int, error) {
	return s.DeleteObservationsFn(ctx, woeid)
}
