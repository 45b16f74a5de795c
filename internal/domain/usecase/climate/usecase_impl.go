package climate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"climate-api/internal/domain/gateway/cache"
	"climate-api/internal/domain/gateway/db"
	"climate-api/internal/domain/model"
	"climate-api/pkg/log"
	"climate-api/pkg/msg"
)

const (
	DefaultTrailingWindowDays = 364

	precipitationKey = "precipitation"
	stationsKey      = "stations"
	observationsKey  = "tobs"
	temperatureKey   = "temperature"
)

type climateUseCase struct {
	gateway            db.ClimateGateway
	cache              cache.ClimateCacheGateway
	trailingWindowDays int
}

// NewClimateUseCase builds the use case. A nil cache disables caching and a
// non-positive window falls back to DefaultTrailingWindowDays.
func NewClimateUseCase(gateway db.ClimateGateway, cacheGateway cache.ClimateCacheGateway, trailingWindowDays int) UseCase {
	if cacheGateway == nil {
		cacheGateway = cache.NoopClimateCacheGateway{}
	}
	if trailingWindowDays <= 0 {
		trailingWindowDays = DefaultTrailingWindowDays
	}
	return &climateUseCase{
		gateway:            gateway,
		cache:              cacheGateway,
		trailingWindowDays: trailingWindowDays,
	}
}

func (uc *climateUseCase) Precipitation(ctx context.Context) (map[string]*float64, error) {
	return readThrough(ctx, uc.cache, precipitationKey, uc.loadPrecipitation)
}

func (uc *climateUseCase) Stations(ctx context.Context) ([]string, error) {
	return readThrough(ctx, uc.cache, stationsKey, uc.loadStations)
}

func (uc *climateUseCase) LastYearObservations(ctx context.Context) ([]*float64, error) {
	return readThrough(ctx, uc.cache, observationsKey, uc.loadLastYearObservations)
}

func (uc *climateUseCase) TemperatureStats(ctx context.Context, dateRange model.DateRangeDTO) (model.TemperatureStats, error) {
	if !dateRange.IsOrdered() {
		return model.TemperatureStats{}, fmt.Errorf("%w: %s", ErrInvalidRange,
			msg.GetMessage("climate.error.range-order", dateRange.Start, dateRange.End))
	}

	key := temperatureKey + ":" + dateRange.Start
	if dateRange.HasEnd() {
		key += ":" + dateRange.End
	}

	return readThrough(ctx, uc.cache, key, func(ctx context.Context) (model.TemperatureStats, error) {
		temperatures, err := uc.gateway.FindTemperatures(ctx, dateRange.Start, dateRange.End)
		if err != nil {
			return model.TemperatureStats{}, fmt.Errorf("find temperatures: %w", err)
		}

		stats, ok := model.NewTemperatureStats(temperatures)
		if !ok {
			return model.TemperatureStats{}, ErrNoObservations
		}
		return stats, nil
	})
}

// WarmUp evicts the cached temperature ranges and reloads the unparameterized results
func (uc *climateUseCase) WarmUp(ctx context.Context) error {
	if err := uc.cache.Clear(ctx, temperatureKey+":*"); err != nil {
		log.Warn(msg.GetMessage("cache.warn.clear-failed", temperatureKey+":*", err.Error()))
	}

	_, precipitationErr := refresh(ctx, uc.cache, precipitationKey, uc.loadPrecipitation)
	_, stationsErr := refresh(ctx, uc.cache, stationsKey, uc.loadStations)
	_, observationsErr := refresh(ctx, uc.cache, observationsKey, uc.loadLastYearObservations)
	return errors.Join(precipitationErr, stationsErr, observationsErr)
}

func (uc *climateUseCase) loadPrecipitation(ctx context.Context) (map[string]*float64, error) {
	measurements, err := uc.gateway.FindAllPrecipitation(ctx)
	if err != nil {
		return nil, fmt.Errorf("find precipitation: %w", err)
	}

	precipitation := make(map[string]*float64, len(measurements))
	for _, measurement := range measurements {
		precipitation[measurement.Date] = measurement.Prcp
	}
	return precipitation, nil
}

func (uc *climateUseCase) loadStations(ctx context.Context) ([]string, error) {
	stations, err := uc.gateway.FindAllStationIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("find stations: %w", err)
	}
	return stations, nil
}

// loadLastYearObservations returns prcp, not tobs, for the most active station.
// Clients depend on this payload so it is kept as is.
func (uc *climateUseCase) loadLastYearObservations(ctx context.Context) ([]*float64, error) {
	latest, err := uc.gateway.FindLatestMeasurementDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("find latest date: %w", err)
	}
	if latest == "" {
		return nil, ErrNoMeasurements
	}

	fromDate, err := windowStart(latest, uc.trailingWindowDays)
	if err != nil {
		return nil, err
	}

	station, err := uc.gateway.FindMostActiveStation(ctx)
	if err != nil {
		return nil, fmt.Errorf("find most active station: %w", err)
	}
	if station == "" {
		return nil, ErrNoMeasurements
	}

	values, err := uc.gateway.FindPrecipitationByStationSince(ctx, station, fromDate)
	if err != nil {
		return nil, fmt.Errorf("find precipitation of %s: %w", station, err)
	}
	return values, nil
}

// windowStart subtracts days from latest. Drivers returning a timestamp are cut to the date part.
func windowStart(latest string, days int) (string, error) {
	if len(latest) > len(model.DateLayout) {
		latest = latest[:len(model.DateLayout)]
	}

	maxDate, err := time.Parse(model.DateLayout, latest)
	if err != nil {
		return "", fmt.Errorf("parse latest date %q: %w", latest, err)
	}
	return maxDate.AddDate(0, 0, -days).Format(model.DateLayout), nil
}

// readThrough serves key from the cache, falling back to load and storing its result.
// Cache failures are logged and never returned.
func readThrough[T any](ctx context.Context, cacheGateway cache.ClimateCacheGateway, key string, load func(context.Context) (T, error)) (T, error) {
	var cached T
	found, err := cacheGateway.Get(ctx, key, &cached)
	if err != nil {
		log.Warn(msg.GetMessage("cache.warn.get-failed", key, err.Error()))
	} else if found {
		return cached, nil
	}

	return refresh(ctx, cacheGateway, key, load)
}

func refresh[T any](ctx context.Context, cacheGateway cache.ClimateCacheGateway, key string, load func(context.Context) (T, error)) (T, error) {
	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if err := cacheGateway.Set(ctx, key, value); err != nil {
		log.Warn(msg.GetMessage("cache.warn.set-failed", key, err.Error()))
	}
	return value, nil
}
