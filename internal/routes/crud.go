package routes

import (
	"github.com/labstack/echo/v4"

	"bank-dashboard/internal/controllers"
)

func runCrudRouter(secureGroup *echo.Group, ctrl *controllers.TableController) {
	crud := secureGroup.Group("/crud/tables")
	crud.GET("", ctrl.ListTables)
	crud.GET("/:table/rows", ctrl.ListRows)
	crud.GET("/:table/row", ctrl.GetRow)
	crud.POST("/:table/rows", ctrl.CreateRow)
	crud.PUT("/:table/rows", ctrl.UpdateRow)
	crud.DELETE("/:table/rows", ctrl.DeleteRow)
	crud.GET("/:table/export", ctrl.ExportRows)
}
