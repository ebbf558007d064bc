package routes

import (
	"github.com/labstack/echo/v4"

	"bank-dashboard/internal/controllers"
)

func runAuthRouter(api *echo.Group, ctrl *controllers.AuthController) {
	api.POST("/auth/login", ctrl.Login)
}
