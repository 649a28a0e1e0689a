package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fwojciec/yweather"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Compile-time interface verification.
var _ yweather.ObservationService = (*ObservationService)(nil)

const observationColumns = `id, woeid, town, temperature, condition_code, condition_text,
	forecast_code, low, high, forecast_text, location, unit, content_hash, fetched_at`

// ObservationService implements yweather.ObservationService using SQLite.
type ObservationService struct {
	db    *DB
	clock clockwork.Clock
}

// NewObservationService creates a new ObservationService. A nil clock
// uses the real clock.
func NewObservationService(db *DB, clock clockwork.Clock) *ObservationService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ObservationService{db: db, clock: clock}
}

// CreateObservation stores a new observation.
func (s *ObservationService) CreateObservation(ctx context.Context, obs *yweather.Observation) error {
	if err := obs.Validate(); err != nil {
		return err
	}

	obs.ID = uuid.New().String()
	obs.FetchedAt = s.clock.Now().UTC()
	obs.ContentHash = hashReport(obs.Report)

	r := obs.Report
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO observations (`+observationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, obs.ID, obs.Woeid, obs.Town, r.Temperature, r.ConditionCode, r.ConditionText,
		r.ForecastCode, r.Low, r.High, r.ForecastText, r.Location, r.Unit.String(),
		obs.ContentHash, formatTime(obs.FetchedAt))

	return err
}

// FindObservationByID retrieves an observation by ID.
func (s *ObservationService) FindObservationByID(ctx context.Context, id string) (*yweather.Observation, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+observationColumns+` FROM observations WHERE id = ?`, id)

	obs, err := scanObservation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, yweather.Errorf(yweather.ENOTFOUND, "observation not found")
	}
	if err != nil {
		return nil, err
	}
	return obs, nil
}

// FindObservations retrieves observations matching the filter, most recent first.
func (s *ObservationService) FindObservations(ctx context.Context, filter yweather.ObservationFilter) ([]*yweather.Observation, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + observationColumns + " FROM observations WHERE 1=1")

	if filter.Woeid != nil {
		query.WriteString(" AND woeid = ?")
		args = append(args, *filter.Woeid)
	}
	if filter.Since != nil {
		query.WriteString(" AND fetched_at >= ?")
		args = append(args, formatTime(*filter.Since))
	}

	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var observations []*yweather.Observation
	for rows.Next() {
		obs, err := scanObservation(rows)
		if err != nil {
			return nil, err
		}
		observations = append(observations, obs)
	}

	return observations, rows.Err()
}

// DeleteObservations removes every observation for woeid.
func (s *ObservationService) DeleteObservations(ctx context.Context, woeid string) (int, error) {
	if woeid == "" {
		return 0, yweather.Errorf(yweather.EINVALID, "WOEID required")
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM observations WHERE woeid = ?", woeid)
	if err != nil {
		return 0, err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanObservation(row scanner) (*yweather.Observation, error) {
	var obs yweather.Observation
	var unit, fetchedAt string

	r := &obs.Report
	if err := row.Scan(&obs.ID, &obs.Woeid, &obs.Town, &r.Temperature, &r.ConditionCode, &r.ConditionText,
		&r.ForecastCode, &r.Low, &r.High, &r.ForecastText, &r.Location, &unit,
		&obs.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	var err error
	if r.Unit, err = yweather.ParseUnit(unit); err != nil {
		return nil, err
	}
	if obs.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}
	return &obs, nil
}
