package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"catalogapi/pkg/errors"
	"catalogapi/pkg/response"
)

const ProductIDKey = "productID"

// ValidateIDParam rejects any :id that is not a positive integer and stores
// the parsed value under ProductIDKey.
func ValidateIDParam(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || id <= 0 {
			return response.Error(c, errors.BadRequest("Invalid ID parameter", err))
		}

		c.Set(ProductIDKey, id)
		return next(c)
	}
}
