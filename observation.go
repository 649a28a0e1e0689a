package yweather

import (
	"context"
	"time"
)

// Observation is a weather report recorded for a location.
type Observation struct {
	ID          string        `json:"id"`
	Woeid       string        `json:"woeid"`
	Town        string        `json:"town"`
	Report      WeatherReport `json:"report"`
	ContentHash string        `json:"contentHash"`
	FetchedAt   time.Time     `json:"fetchedAt"`
}

// Validate returns an error if the observation contains invalid fields.
func (o *Observation) Validate() error {
	if o.Woeid == "" {
		return Errorf(EINVALID, "observation WOEID required")
	}
	if err := o.Report.Unit.Validate(); err != nil {
		return err
	}
	return nil
}

// NewObservation builds an Observation from a delivered result.
func NewObservation(location *LocationInfo, report *WeatherReport) *Observation {
	return &Observation{
		Woeid:  location.PrimaryWoeid,
		Town:   location.Town,
		Report: *report,
	}
}

// ObservationService represents a service for managing recorded observations.
type ObservationService interface {
	// CreateObservation stores a new observation. ID, ContentHash and
	// FetchedAt are assigned by the service.
	CreateObservation(ctx context.Context, obs *Observation) error

	// FindObservationByID retrieves an observation by ID.
	// Returns ENOTFOUND if the observation does not exist.
	FindObservationByID(ctx context.Context, id string) (*Observation, error)

	// FindObservations retrieves observations matching the filter,
	// most recent first.
	FindObservations(ctx context.Context, filter ObservationFilter) ([]*Observation, error)

	// DeleteObservations removes all observations for a WOEID and
	// returns how many were deleted.
	DeleteObservations(ctx context.Context, woeid string) (int, error)
}

// ObservationFilter represents a filter for FindObservations.
type ObservationFilter struct {
	Woeid *string    `json:"woeid"`
	Since *time.Time `json:"since"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
