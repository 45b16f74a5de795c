package db

import (
	"context"
	"database/sql"

	"climate-api/internal/domain/entity"

	"gorm.io/gorm"
)

type GormClimateGateway struct {
	DB *gorm.DB
}

var _ ClimateGateway = (*GormClimateGateway)(nil)

func NewGormClimateGateway(db *gorm.DB) *GormClimateGateway {
	return &GormClimateGateway{DB: db}
}

// session opens a fresh request scoped session bound to ctx
func (gateway *GormClimateGateway) session(ctx context.Context) *gorm.DB {
	return gateway.DB.WithContext(ctx).Session(&gorm.Session{})
}

// FindAllPrecipitation returns the date and prcp of every measurement ordered by row id
func (gateway *GormClimateGateway) FindAllPrecipitation(ctx context.Context) ([]entity.Measurement, error) {
	measurements := make([]entity.Measurement, 0)
	err := gateway.session(ctx).
		Model(&entity.Measurement{}).
		Select("date", "prcp").
		Order("id ASC").
		Find(&measurements).Error
	if err != nil {
		return nil, err
	}
	return measurements, nil
}

// FindAllStationIDs returns the station identifiers in storage order
func (gateway *GormClimateGateway) FindAllStationIDs(ctx context.Context) ([]string, error) {
	stations := make([]string, 0)
	if err := gateway.session(ctx).Model(&entity.Station{}).Pluck("station", &stations).Error; err != nil {
		return nil, err
	}
	return stations, nil
}

// FindLatestMeasurementDate returns the greatest measurement date
func (gateway *GormClimateGateway) FindLatestMeasurementDate(ctx context.Context) (string, error) {
	var latest sql.NullString
	row := gateway.session(ctx).Model(&entity.Measurement{}).Select("MAX(date)").Row()
	if err := row.Scan(&latest); err != nil {
		return "", err
	}
	return latest.String, nil
}

type stationActivity struct {
	Station string
	Total   int64
}

// FindMostActiveStation returns the station with most measurements
func (gateway *GormClimateGateway) FindMostActiveStation(ctx context.Context) (string, error) {
	var activity []stationActivity
	err := gateway.session(ctx).
		Model(&entity.Measurement{}).
		Select("station, COUNT(*) AS total").
		Group("station").
		Order("total DESC").
		Order("station ASC").
		Limit(1).
		Scan(&activity).Error
	if err != nil {
		return "", err
	}
	if len(activity) == 0 {
		return "", nil
	}
	return activity[0].Station, nil
}

// FindPrecipitationByStationSince returns the prcp of a station dated on or after fromDate
func (gateway *GormClimateGateway) FindPrecipitationByStationSince(ctx context.Context, station string, fromDate string) ([]*float64, error) {
	var values []sql.NullFloat64
	err := gateway.session(ctx).
		Model(&entity.Measurement{}).
		Where("station = ? AND date >= ?", station, fromDate).
		Order("date ASC").
		Order("id ASC").
		Pluck("prcp", &values).Error
	if err != nil {
		return nil, err
	}
	return nullableFloats(values), nil
}

// FindTemperatures returns tobs dated within [start, end]
func (gateway *GormClimateGateway) FindTemperatures(ctx context.Context, start string, end string) ([]float64, error) {
	query := gateway.session(ctx).Model(&entity.Measurement{}).Where("date >= ?", start)
	if end != "" {
		query = query.Where("date <= ?", end)
	}

	temperatures := make([]float64, 0)
	if err := query.Order("date ASC").Order("id ASC").Pluck("tobs", &temperatures).Error; err != nil {
		return nil, err
	}
	return temperatures, nil
}

// nullableFloats maps SQL nulls to nil pointers so they serialize as JSON null
func nullableFloats(values []sql.NullFloat64) []*float64 {
	out := make([]*float64, len(values))
	for i, value := range values {
		if value.Valid {
			v := value.Float64
			out[i] = &v
		}
	}
	return out
}
