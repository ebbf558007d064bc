package routes

import (
	"github.com/labstack/echo/v4"

	"bank-dashboard/internal/controllers"
)

func runVisualizationRouter(secureGroup *echo.Group, ctrl *controllers.DashboardController) {
	vis := secureGroup.Group("/visualizations")
	vis.GET("", ctrl.Catalog)
	vis.GET("/:key", ctrl.GetChart)
	vis.GET("/:key/export", ctrl.ExportChart)
}
