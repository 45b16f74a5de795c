package health

import (
	"context"

	"climate-api/internal/domain/gateway/cache"
	"climate-api/internal/domain/gateway/db"
	"climate-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	cacheGateway cache.ClimateCacheGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, cacheGateway cache.ClimateCacheGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		cacheGateway: cacheGateway,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	return model.NewHealthResponse(useCase.dbGateway.Health(ctx), useCase.cacheGateway.Health(ctx))
}
