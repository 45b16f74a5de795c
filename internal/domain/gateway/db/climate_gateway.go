package db

import (
	"context"

	"climate-api/internal/domain/entity"
)

// ClimateGateway reads the measurement and station tables. Every call runs in its own
// session, acquired on entry and released before returning.
type ClimateGateway interface {
	// FindAllPrecipitation returns the date and prcp of every measurement ordered by row id
	FindAllPrecipitation(ctx context.Context) ([]entity.Measurement, error)

	// FindAllStationIDs returns the station identifiers in storage order
	FindAllStationIDs(ctx context.Context) ([]string, error)

	// FindLatestMeasurementDate returns the greatest measurement date, empty when there are no rows
	FindLatestMeasurementDate(ctx context.Context) (string, error)

	// FindMostActiveStation returns the station with most measurements, ties broken by station id
	FindMostActiveStation(ctx context.Context) (string, error)

	// FindPrecipitationByStationSince returns the prcp of a station dated on or after fromDate, in date order
	FindPrecipitationByStationSince(ctx context.Context, station string, fromDate string) ([]*float64, error)

	// FindTemperatures returns tobs dated within [start, end]; an empty end leaves the range open
	FindTemperatures(ctx context.Context, start string, end string) ([]float64, error)
}
