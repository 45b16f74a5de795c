package climate

import (
	"context"

	"climate-api/internal/domain/model"
	"climate-api/pkg/msg"
)

var (
	// ErrNoObservations is returned when a temperature range matches no rows
	ErrNoObservations error = &catalogError{key: "climate.error.no-observations"}
	// ErrNoMeasurements is returned when the measurement table is empty
	ErrNoMeasurements error = &catalogError{key: "climate.error.no-measurements"}
	// ErrInvalidRange is returned when the start date is after the end date
	ErrInvalidRange error = &catalogError{key: "climate.error.invalid-range"}
)

// catalogError reads its text from the message catalog on every call, so a
// MESSAGES_FILE_PATH overlay loaded after package init still applies.
type catalogError struct {
	key string
}

func (e *catalogError) Error() string {
	return msg.GetMessage(e.key)
}

type UseCase interface {
	// Precipitation maps every measurement date to its prcp; later rows win on duplicate dates
	Precipitation(ctx context.Context) (map[string]*float64, error)
	// Stations lists the station identifiers
	Stations(ctx context.Context) ([]string, error)
	// LastYearObservations returns the prcp readings of the most active station over the trailing window
	LastYearObservations(ctx context.Context) ([]*float64, error)
	// TemperatureStats reduces the tobs of the date range to [min, max, avg]
	TemperatureStats(ctx context.Context, dateRange model.DateRangeDTO) (model.TemperatureStats, error)
	// WarmUp evicts cached temperature ranges and reloads the unparameterized results into the cache
	WarmUp(ctx context.Context) error
}
