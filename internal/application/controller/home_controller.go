package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const availableRoutes = "Available Routes:<br/>" +
	"/api/v1.0/precipitation<br/>" +
	"/api/v1.0/stations<br/>" +
	"/api/v1.0/tobs<br/>" +
	"/api/v1.0/<start><br/>" +
	"/api/v1.0/<start>/<end>"

type HomeController struct {
	api *echo.Group
}

func NewHomeController(api *echo.Group) *HomeController {
	return &HomeController{api: api}
}

// InitHomeRoutes initializes the route listing
func (controller *HomeController) InitHomeRoutes() {
	controller.api.GET("/", controller.Home)
}

// Home godoc
// @Summary List available routes
// @Description Lists the climate API routes
// @Tags home
// @Produce html
// @Success 200 {string} string "Route listing"
// @Router / [get]
func (controller *HomeController) Home(c echo.Context) error {
	return c.HTML(http.StatusOK, availableRoutes)
}
