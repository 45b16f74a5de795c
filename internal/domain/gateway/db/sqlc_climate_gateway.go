package db

import (
	"context"
	"database/sql"
	"errors"

	"climate-api/internal/domain/entity"
	"climate-api/pkg/log"

	"go.uber.org/zap"
)

type SQLCClimateGateway struct {
	DB *sql.DB
}

var _ ClimateGateway = (*SQLCClimateGateway)(nil)

func NewSQLCClimateGateway(db *sql.DB) *SQLCClimateGateway {
	return &SQLCClimateGateway{DB: db}
}

// withConn runs fn on a dedicated connection that is returned to the pool afterwards
func (gateway *SQLCClimateGateway) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := gateway.DB.Conn(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			log.Warn("close climate session", zap.Error(closeErr))
		}
	}()
	return fn(conn)
}

// FindAllPrecipitation returns the date and prcp of every measurement ordered by row id
func (gateway *SQLCClimateGateway) FindAllPrecipitation(ctx context.Context) ([]entity.Measurement, error) {
	measurements := make([]entity.Measurement, 0)
	err := gateway.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT date, prcp
			FROM measurement
			ORDER BY id ASC`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var m entity.Measurement
			var prcp sql.NullFloat64
			if err := rows.Scan(&m.Date, &prcp); err != nil {
				return err
			}
			if prcp.Valid {
				m.Prcp = &prcp.Float64
			}
			measurements = append(measurements, m)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return measurements, nil
}

// FindAllStationIDs returns the station identifiers in storage order
func (gateway *SQLCClimateGateway) FindAllStationIDs(ctx context.Context) ([]string, error) {
	stations := make([]string, 0)
	err := gateway.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `SELECT station FROM station`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var station string
			if err := rows.Scan(&station); err != nil {
				return err
			}
			stations = append(stations, station)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return stations, nil
}

// FindLatestMeasurementDate returns the greatest measurement date
func (gateway *SQLCClimateGateway) FindLatestMeasurementDate(ctx context.Context) (string, error) {
	var latest sql.NullString
	err := gateway.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, `SELECT MAX(date) FROM measurement`).Scan(&latest)
	})
	if err != nil {
		return "", err
	}
	return latest.String, nil
}

// FindMostActiveStation returns the station with most measurements
func (gateway *SQLCClimateGateway) FindMostActiveStation(ctx context.Context) (string, error) {
	var station string
	err := gateway.withConn(ctx, func(conn *sql.Conn) error {
		var total int64
		err := conn.QueryRowContext(ctx, `
			SELECT station, COUNT(*) AS total
			FROM measurement
			GROUP BY station
			ORDER BY total DESC, station ASC
			LIMIT 1`).Scan(&station, &total)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	})
	if err != nil {
		return "", err
	}
	return station, nil
}

// FindPrecipitationByStationSince returns the prcp of a station dated on or after fromDate
func (gateway *SQLCClimateGateway) FindPrecipitationByStationSince(ctx context.Context, station string, fromDate string) ([]*float64, error) {
	values := make([]sql.NullFloat64, 0)
	err := gateway.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT prcp
			FROM measurement
			WHERE station = $1 AND date >= $2
			ORDER BY date ASC, id ASC`, station, fromDate)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var prcp sql.NullFloat64
			if err := rows.Scan(&prcp); err != nil {
				return err
			}
			values = append(values, prcp)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return nullableFloats(values), nil
}

// FindTemperatures returns tobs dated within [start, end]
func (gateway *SQLCClimateGateway) FindTemperatures(ctx context.Context, start string, end string) ([]float64, error) {
	query := `SELECT tobs FROM measurement WHERE date >= $1`
	args := []interface{}{start}
	if end != "" {
		query += " AND date <= $2"
		args = append(args, end)
	}
	query += " ORDER BY date ASC, id ASC"

	temperatures := make([]float64, 0)
	err := gateway.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var tobs float64
			if err := rows.Scan(&tobs); err != nil {
				return err
			}
			temperatures = append(temperatures, tobs)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return temperatures, nil
}
