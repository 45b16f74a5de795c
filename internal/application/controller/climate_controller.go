package controller

import (
	"errors"
	"net/http"

	"climate-api/internal/domain/model"
	"climate-api/internal/domain/usecase/climate"
	"climate-api/pkg/log"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ClimateController struct {
	api     *echo.Group
	useCase climate.UseCase
}

func NewClimateController(api *echo.Group, useCase climate.UseCase) *ClimateController {
	return &ClimateController{api: api, useCase: useCase}
}

// InitClimateRoutes initializes climate routes. Static paths take priority over :start.
func (controller *ClimateController) InitClimateRoutes() {
	controller.api.GET("/api/v1.0/precipitation", controller.Precipitation)
	controller.api.GET("/api/v1.0/stations", controller.Stations)
	controller.api.GET("/api/v1.0/tobs", controller.LastYearObservations)
	controller.api.GET("/api/v1.0/:start", controller.TemperatureStats)
	controller.api.GET("/api/v1.0/:start/:end", controller.TemperatureStats)
}

// Precipitation godoc
// @Summary Get precipitation by date
// @Description Maps every measurement date to its precipitation. Null when not recorded.
// @Tags climate
// @Produce json
// @Success 200 {object} map[string]float64 "Precipitation by date"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1.0/precipitation [get]
func (controller *ClimateController) Precipitation(c echo.Context) error {
	precipitation, err := controller.useCase.Precipitation(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, precipitation)
}

// Stations godoc
// @Summary Get stations
// @Description Lists the station identifiers
// @Tags climate
// @Produce json
// @Success 200 {array} string "Station identifiers"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1.0/stations [get]
func (controller *ClimateController) Stations(c echo.Context) error {
	stations, err := controller.useCase.Stations(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, stations)
}

// LastYearObservations godoc
// @Summary Get last year observations of the most active station
// @Description Returns the precipitation readings of the station with most measurements, dated within the trailing window ending on the latest measurement
// @Tags climate
// @Produce json
// @Success 200 {array} number "Precipitation readings, null when not recorded"
// @Failure 404 {object} map[string]string "No measurements available"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1.0/tobs [get]
func (controller *ClimateController) LastYearObservations(c echo.Context) error {
	observations, err := controller.useCase.LastYearObservations(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, observations)
}

// TemperatureStats godoc
// @Summary Get temperature stats
// @Description Returns [min, max, avg] of the observed temperatures dated on or after start, and on or before end when given
// @Tags climate
// @Produce json
// @Param start path string true "Start date (YYYY-MM-DD)"
// @Param end path string false "End date (YYYY-MM-DD)"
// @Success 200 {array} number "[min, max, avg]"
// @Failure 400 {object} map[string]string "Malformed date or start after end"
// @Failure 404 {object} map[string]string "No observations in range"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1.0/{start} [get]
// @Router /api/v1.0/{start}/{end} [get]
func (controller *ClimateController) TemperatureStats(c echo.Context) error {
	var dto model.DateRangeDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	stats, err := controller.useCase.TemperatureStats(c.Request().Context(), dto)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// errorResponse maps use case errors to status codes
func errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, climate.ErrInvalidRange):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, climate.ErrNoObservations), errors.Is(err, climate.ErrNoMeasurements):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		log.Error("climate query failed", zap.String("uri", c.Request().RequestURI), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
