package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, metricsHandler http.Handler) {
	SetupProductRouter(e)
	SetupHealthRouter(e, metricsHandler)
}
