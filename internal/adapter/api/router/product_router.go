package router

import (
	"github.com/labstack/echo/v4"

	"catalogapi/internal/adapter/api/handler"
	"catalogapi/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo) {
	productHandler := handler.GetProductHandler()

	products := e.Group("/api/products")
	products.GET("", productHandler.ListProducts)
	products.POST("", productHandler.CreateProduct)

	products.GET("/:id", productHandler.GetProduct, middleware.ValidateIDParam)
	products.PUT("/:id", productHandler.UpdateProduct, middleware.ValidateIDParam)
	products.DELETE("/:id", productHandler.DeleteProduct, middleware.ValidateIDParam)
}
