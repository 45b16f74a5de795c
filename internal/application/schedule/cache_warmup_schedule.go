package schedule

import (
	"context"
	"fmt"
	"time"

	"climate-api/internal/domain/usecase/climate"
	"climate-api/pkg/log"
	"climate-api/pkg/msg"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const warmUpTimeout = time.Minute

type CacheWarmUpScheduler struct {
	cron    *cron.Cron
	useCase climate.UseCase
}

func NewCacheWarmUpScheduler(useCase climate.UseCase) *CacheWarmUpScheduler {
	return &CacheWarmUpScheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		useCase: useCase,
	}
}

// InitCacheWarmUpScheduleTasks registers the warm-up job on spec and starts the scheduler
func (scheduler *CacheWarmUpScheduler) InitCacheWarmUpScheduleTasks(spec string) error {
	if _, err := scheduler.cron.AddFunc(spec, scheduler.WarmUpCache); err != nil {
		return fmt.Errorf("register cache warm-up %q: %w", spec, err)
	}

	scheduler.cron.Start()
	log.Info(msg.GetMessage("schedule.cache-warmup.registered", spec))
	return nil
}

// WarmUpCache reloads the cached climate responses. Each run is tagged with its own id.
func (scheduler *CacheWarmUpScheduler) WarmUpCache() {
	runID := zap.String("run_id", uuid.NewString())
	log.Info(msg.GetMessage("schedule.cache-warmup.start"), runID)

	ctx, cancel := context.WithTimeout(context.Background(), warmUpTimeout)
	defer cancel()

	if err := scheduler.useCase.WarmUp(ctx); err != nil {
		log.Error(msg.GetMessage("schedule.cache-warmup.error", err.Error()), runID, zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("schedule.cache-warmup.end"), runID)
}

// Stop prevents new runs and returns a context done when the running job completes
func (scheduler *CacheWarmUpScheduler) Stop() context.Context {
	return scheduler.cron.Stop()
}
