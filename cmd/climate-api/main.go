package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"climate-api/configs"
	"climate-api/docs"
	"climate-api/internal/application/controller"
	"climate-api/internal/application/middleware"
	"climate-api/internal/application/schedule"
	"climate-api/internal/application/validation"
	cachegateway "climate-api/internal/domain/gateway/cache"
	"climate-api/internal/domain/gateway/db"
	"climate-api/internal/domain/usecase/climate"
	"climate-api/internal/domain/usecase/health"
	"climate-api/internal/infra/cache"
	"climate-api/internal/infra/database"
	"climate-api/internal/infra/database/gorm"
	"climate-api/internal/infra/database/sqlc"
	"climate-api/pkg/log"
	"climate-api/pkg/msg"
	"climate-api/pkg/resource"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// @title Climate API
// @version 1.0
// @description Read-only climate observations of the Hawaii weather stations
// @BasePath /
func main() {
	defer log.Sync()

	resource.SetDefault("app.server.port", "8080")
	resource.SetDefault("app.server.shutdown-timeout", "10s")
	resource.SetDefault("app.climate.trailing-window-days", climate.DefaultTrailingWindowDays)
	if err := resource.Load(); err != nil {
		log.Fatal("Fail to load properties", zap.Error(err))
	}
	if err := msg.Load(); err != nil {
		log.Fatal("Fail to load messages", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.start"),
		zap.String("application", configs.Env.ApplicationName),
		zap.String("environment", configs.Env.Environment))

	// Init infra
	dbConfig := database.LoadConfig()
	if err := dbConfig.Validate(); err != nil {
		log.Fatal(msg.GetMessage("db.error.open", err.Error()))
	}
	climateGateway, dbHealthGateway, closeDB := openDatabase(dbConfig)
	log.Info(msg.GetMessage("db.opened", dbConfig.Driver, dbConfig.Access))

	cacheGateway, closeCache := openCache()

	// Init UseCase
	climateUseCase := climate.NewClimateUseCase(climateGateway, cacheGateway, resource.GetInt("app.climate.trailing-window-days"))
	healthUseCase := health.NewHealthUseCase(dbHealthGateway, cacheGateway)

	// Init Echo
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.NewEchoValidator()
	e.Use(echomw.RequestID())
	middleware.SetupRequestLogger(e)
	e.Use(echomw.Recover())

	contextPath := resource.GetString("app.server.context-path")
	api := e.Group(contextPath)
	if contextPath != "" {
		docs.SwaggerInfo.BasePath = contextPath
	}

	// Init Controller
	homeController := controller.NewHomeController(api)
	climateController := controller.NewClimateController(api, climateUseCase)
	healthController := controller.NewHealthController(api, healthUseCase)

	// Init Routes
	homeController.InitHomeRoutes()
	climateController.InitClimateRoutes()
	healthController.InitHealthRoutes()
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	var scheduler *schedule.CacheWarmUpScheduler
	if spec := resource.GetString("app.schedule.cache-warmup.cron"); cache.Enabled() && spec != "" {
		scheduler = schedule.NewCacheWarmUpScheduler(climateUseCase)
		if err := scheduler.InitCacheWarmUpScheduleTasks(spec); err != nil {
			log.Fatal(err.Error())
		}
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err.Error())
		}
	}()
	log.Info(msg.GetMessage("app.started", port))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info(msg.GetMessage("app.stop"))
	if scheduler != nil {
		<-scheduler.Stop().Done()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), resource.GetDuration("app.server.shutdown-timeout"))
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Fail to shutdown server", zap.Error(err))
	}

	if err := closeCache(); err != nil {
		log.Error("Fail to close cache", zap.Error(err))
	}
	if err := closeDB(); err != nil {
		log.Error("Fail to close database", zap.Error(err))
	}
	log.Info(msg.GetMessage("db.closed"))
	log.Info(msg.GetMessage("app.stopped"))
}

// openDatabase selects the gateways for app.db.access. The returned func closes the pool.
func openDatabase(config database.Config) (db.ClimateGateway, db.HealthDBGateway, func() error) {
	switch config.Access {
	case database.AccessSQLC:
		sqlDB, err := sqlc.Open(config)
		if err != nil {
			log.Fatal(msg.GetMessage("db.error.open", err.Error()))
		}
		return db.NewSQLCClimateGateway(sqlDB),
			db.NewSQLCHealthDBGateway(sqlDB, config.Driver),
			func() error { return sqlc.Close(sqlDB) }
	default:
		gormDB, err := gorm.Open(config)
		if err != nil {
			log.Fatal(msg.GetMessage("db.error.open", err.Error()))
		}
		return db.NewGormClimateGateway(gormDB),
			db.NewGormHealthDBGateway(gormDB),
			func() error { return gorm.Close(gormDB) }
	}
}

// openCache returns the Redis cache when enabled, otherwise a no-op cache
func openCache() (cachegateway.ClimateCacheGateway, func() error) {
	if !cache.Enabled() {
		log.Info(msg.GetMessage("cache.disabled"))
		return cachegateway.NoopClimateCacheGateway{}, func() error { return nil }
	}

	config := cache.LoadConfig()
	client, err := cache.Open(config)
	if err != nil {
		log.Fatal(err.Error())
	}
	// go-redis reconnects on later commands, so an unreachable server only degrades health
	if err := cache.Ping(client); err != nil {
		log.Warn(err.Error())
	}
	log.Info(msg.GetMessage("cache.enabled", config.Addr()))
	return cachegateway.NewRedisClimateCacheGateway(client), client.Close
}
