package router_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogapi/internal/adapter/api"
	"catalogapi/internal/adapter/api/handler"
	"catalogapi/internal/adapter/api/router"
	"catalogapi/internal/adapter/repository"
	"catalogapi/internal/domain/entity"
	domainrepo "catalogapi/internal/domain/repository"
	"catalogapi/internal/testutil"
	"catalogapi/internal/usecase"
	"catalogapi/pkg/response"
)

func newTestServer(t *testing.T, repo domainrepo.ProductRepository) *echo.Echo {
	t.Helper()

	handler.Setup(usecase.NewProductUseCase(repo))

	e := echo.New()
	e.HTTPErrorHandler = response.HTTPErrorHandler(false)
	e.Validator = api.NewValidator()
	router.Setup(e, promhttp.Handler())
	return e
}

func newSQLServer(t *testing.T) (*echo.Echo, domainrepo.ProductRepository) {
	t.Helper()

	repo := repository.NewSQLProductRepository(testutil.NewSQLiteDB(t), repository.DialectSQLite)
	return newTestServer(t, repo), repo
}

func doRequest(e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var payload map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &payload)
	return rec, payload
}

func errorCode(payload map[string]interface{}) string {
	errInfo, _ := payload["error"].(map[string]interface{})
	code, _ := errInfo["code"].(string)
	return code
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(t, testutil.NewMockProductRepository())

	rec, payload := doRequest(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "Server is running", payload["message"])
	assert.NotEmpty(t, payload["timestamp"])
}

func TestMetricsEndpoint(t *testing.T) {
	e := newTestServer(t, testutil.NewMockProductRepository())

	rec, _ := doRequest(e, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestUnknownRoute(t *testing.T) {
	e := newTestServer(t, testutil.NewMockProductRepository())

	rec, payload := doRequest(e, http.MethodGet, "/api/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "NOT_FOUND", errorCode(payload))
}

func TestCreateProduct(t *testing.T) {
	e, _ := newSQLServer(t)

	rec, payload := doRequest(e, http.MethodPost, "/api/products",
		`{"name":"Wireless Mouse","description":"2.4GHz","price":29.99,"quantity":15,"category":"Accessories"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Product created successfully", payload["message"])

	data := payload["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "Wireless Mouse", data["name"])
	assert.Equal(t, 29.99, data["price"])
	assert.Equal(t, float64(15), data["quantity"])
	assert.Equal(t, "Accessories", data["category"])
	assert.NotEmpty(t, data["created_at"])
}

func TestCreateProduct_Validation(t *testing.T) {
	e, _ := newSQLServer(t)

	tests := []struct {
		name   string
		body   string
		detail string
	}{
		{"missing name", `{"price":10,"quantity":1}`, "name is required"},
		{"blank name", `{"name":"   ","price":10,"quantity":1}`, "name must be a non-empty string"},
		{"missing price", `{"name":"Lamp","quantity":1}`, "price is required"},
		{"negative price", `{"name":"Lamp","price":-1,"quantity":1}`, "price must be a non-negative number"},
		{"negative quantity", `{"name":"Lamp","price":1,"quantity":-3}`, "quantity must be a non-negative integer"},
		{"fractional quantity", `{"name":"Lamp","price":1,"quantity":1.5}`, "quantity must be a non-negative integer"},
		{"malformed json", `{"name":`, "request body must be valid JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, payload := doRequest(e, http.MethodPost, "/api/products", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_ERROR", errorCode(payload))

			errInfo := payload["error"].(map[string]interface{})
			assert.Equal(t, "Validation failed", errInfo["message"])
			assert.Contains(t, errInfo["details"], tt.detail)
		})
	}
}

func TestGetProduct(t *testing.T) {
	e, repo := newSQLServer(t)
	testutil.SeedProducts(t, repo, 1)

	t.Run("found", func(t *testing.T) {
		rec, payload := doRequest(e, http.MethodGet, "/api/products/1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		data := payload["data"].(map[string]interface{})
		assert.Equal(t, "Test Product 1", data["name"])
	})

	t.Run("missing", func(t *testing.T) {
		rec, payload := doRequest(e, http.MethodGet, "/api/products/999", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", errorCode(payload))
	})

	for _, id := range []string{"abc", "0", "-4", "1.5"} {
		t.Run("invalid id "+id, func(t *testing.T) {
			rec, payload := doRequest(e, http.MethodGet, "/api/products/"+id, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			errInfo := payload["error"].(map[string]interface{})
			assert.Equal(t, "Invalid ID parameter", errInfo["message"])
		})
	}
}

func TestUpdateProduct(t *testing.T) {
	e, repo := newSQLServer(t)
	testutil.SeedProducts(t, repo, 1)

	t.Run("partial update", func(t *testing.T) {
		rec, payload := doRequest(e, http.MethodPut, "/api/products/1", `{"price":99.5}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Product updated successfully", payload["message"])

		data := payload["data"].(map[string]interface{})
		assert.Equal(t, 99.5, data["price"])
		assert.Equal(t, "Test Product 1", data["name"])
	})

	t.Run("empty body", func(t *testing.T) {
		rec, payload := doRequest(e, http.MethodPut, "/api/products/1", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		errInfo := payload["error"].(map[string]interface{})
		assert.Contains(t, errInfo["details"], "At least one field must be provided for update")
	})

	t.Run("invalid field", func(t *testing.T) {
		rec, payload := doRequest(e, http.MethodPut, "/api/products/1", `{"name":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(payload))
	})

	t.Run("missing", func(t *testing.T) {
		rec, _ := doRequest(e, http.MethodPut, "/api/products/42", `{"quantity":3}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteProduct(t *testing.T) {
	e, repo := newSQLServer(t)
	testutil.SeedProducts(t, repo, 1)

	rec, payload := doRequest(e, http.MethodDelete, "/api/products/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Product deleted successfully", payload["message"])

	rec, _ = doRequest(e, http.MethodGet, "/api/products/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doRequest(e, http.MethodDelete, "/api/products/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListProducts(t *testing.T) {
	e, repo := newSQLServer(t)
	testutil.SeedProducts(t, repo, 15)

	t.Run("second page", func(t *testing.T) {
		rec, payload := doRequest(e, http.MethodGet, "/api/products?page=2&limit=10", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Found 5 product(s) on page 2 of 2", payload["message"])
		assert.Len(t, payload["data"], 5)

		pagination := payload["pagination"].(map[string]interface{})
		assert.Equal(t, float64(15), pagination["total"])
		assert.Equal(t, float64(2), pagination["page"])
		assert.Equal(t, float64(10), pagination["limit"])
		assert.Equal(t, float64(2), pagination["totalPages"])
		assert.Equal(t, false, pagination["hasNextPage"])
		assert.Equal(t, true, pagination["hasPrevPage"])
	})

	t.Run("filters combine", func(t *testing.T) {
		rec, payload := doRequest(e, http.MethodGet, "/api/products?category=Electronics&minPrice=50", "")

		require.Equal(t, http.StatusOK, rec.Code)
		items := payload["data"].([]interface{})
		require.Len(t, items, 5)
		assert.Equal(t, float64(140), items[0].(map[string]interface{})["price"])
		assert.Equal(t, float64(60), items[4].(map[string]interface{})["price"])
	})

	t.Run("no matches serializes empty array", func(t *testing.T) {
		rec, payload := doRequest(e, http.MethodGet, "/api/products?search=nothing-like-this", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"data":[]`)
		pagination := payload["pagination"].(map[string]interface{})
		assert.Equal(t, float64(0), pagination["total"])
	})

	t.Run("malformed params fall back to defaults", func(t *testing.T) {
		rec, payload := doRequest(e, http.MethodGet, "/api/products?page=abc&limit=500&minPrice=cheap", "")

		require.Equal(t, http.StatusOK, rec.Code)
		pagination := payload["pagination"].(map[string]interface{})
		assert.Equal(t, float64(1), pagination["page"])
		assert.Equal(t, float64(100), pagination["limit"])
		assert.Len(t, payload["data"], 15)
	})
}

func TestListProducts_StoreFailure(t *testing.T) {
	repo := testutil.NewMockProductRepository()
	repo.OnCount = func(filter entity.ProductFilter) error {
		return errors.New("connection reset")
	}
	e := newTestServer(t, repo)

	rec, payload := doRequest(e, http.MethodGet, "/api/products", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", errorCode(payload))
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
