package storeapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openboutique/boutique/internal/webserver"
)

func registerHealthRoutes() {
	webserver.ApiGET("/health", healthCheck)
}

func healthCheck(c echo.Context) error {
	if err := GetDB(c).Exec("SELECT 1").Error; err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "degraded"})
	}
	return ok(c, echo.Map{"status": "ok"})
}
