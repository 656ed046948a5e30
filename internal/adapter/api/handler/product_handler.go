package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"catalogapi/internal/adapter/api/middleware"
	"catalogapi/internal/usecase"
	apperrors "catalogapi/pkg/errors"
	"catalogapi/pkg/logger"
	"catalogapi/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type createProductRequest struct {
	Name        string   `json:"name" validate:"required,notblank"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Quantity    *int     `json:"quantity" validate:"required,gte=0"`
	Category    *string  `json:"category"`
}

type updateProductRequest struct {
	Name        *string  `json:"name" validate:"omitnil,notblank"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitnil,gte=0"`
	Quantity    *int     `json:"quantity" validate:"omitnil,gte=0"`
	Category    *string  `json:"category"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Quantity:    *req.Quantity,
		Category:    req.Category,
	})
	if err != nil {
		logger.Error("Error creating product: %v", err)
		return response.Error(c, err)
	}

	return response.Created(c, product, "Product created successfully")
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Get(middleware.ProductIDKey).(int64)

	product, err := h.productUseCase.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product, "")
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id := c.Get(middleware.ProductIDKey).(int64)

	var req updateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), id, usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    req.Category,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product, "Product updated successfully")
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id := c.Get(middleware.ProductIDKey).(int64)

	if err := h.productUseCase.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, nil, "Product deleted successfully")
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	result, err := h.productUseCase.ListProducts(c.Request().Context(), usecase.ListProductsQuery{
		Category: c.QueryParam("category"),
		MinPrice: c.QueryParam("minPrice"),
		MaxPrice: c.QueryParam("maxPrice"),
		InStock:  c.QueryParam("inStock"),
		Search:   c.QueryParam("search"),
		Page:     c.QueryParam("page"),
		Limit:    c.QueryParam("limit"),
	})
	if err != nil {
		return response.Error(c, err)
	}

	message := fmt.Sprintf("Found %d product(s) on page %d of %d", len(result.Items), result.Meta.Page, result.Meta.TotalPages)
	return response.Paginated(c, result.Items, result.Meta, message)
}

// bindAndValidate decodes the JSON body into req and runs the struct rules.
// Only the body is bound so query parameters cannot smuggle in fields.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return apperrors.Validation(bindErrorDetail(err))
	}

	if err := c.Validate(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return apperrors.Validation(validationMessages(validationErrs)...)
		}
		return err
	}

	return nil
}

func bindErrorDetail(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			lower := strings.ToLower(msg)
			switch {
			case strings.Contains(lower, "quantity"):
				return "quantity must be a non-negative integer"
			case strings.Contains(lower, "price"):
				return "price must be a non-negative number"
			case strings.Contains(lower, "name"):
				return "name must be a non-empty string"
			}
		}
	}
	return "request body must be valid JSON"
}

func validationMessages(validationErrs validator.ValidationErrors) []string {
	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		field := fe.Field()

		var message string
		switch fe.Tag() {
		case "required":
			message = field + " is required"
		case "notblank":
			message = field + " must be a non-empty string"
		case "gte":
			if field == "quantity" {
				message = "quantity must be a non-negative integer"
			} else {
				message = field + " must be a non-negative number"
			}
		default:
			message = field + " is invalid"
		}
		messages = append(messages, message)
	}
	return messages
}
