package response

import (
	"errors"
	"net/http"
	"time"

	apperrors "catalogapi/pkg/errors"

	"github.com/labstack/echo/v4"
)

type Response struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination interface{} `json:"pagination,omitempty"`
	Error      *ErrorInfo  `json:"error,omitempty"`
	Timestamp  string      `json:"timestamp"`
}

type ErrorInfo struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func Success(c echo.Context, data interface{}, message string) error {
	return c.JSON(http.StatusOK, Response{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: now(),
	})
}

func Created(c echo.Context, data interface{}, message string) error {
	return c.JSON(http.StatusCreated, Response{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: now(),
	})
}

// Paginated writes a list page. items must be a non-nil slice so an empty
// page serializes as [] rather than null.
func Paginated(c echo.Context, items interface{}, pagination interface{}, message string) error {
	return c.JSON(http.StatusOK, Response{
		Success:    true,
		Data:       items,
		Message:    message,
		Pagination: pagination,
		Timestamp:  now(),
	})
}

func Error(c echo.Context, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		info := &ErrorInfo{
			Code:    appErr.Code,
			Message: appErr.Message,
		}
		if len(appErr.Details) > 0 {
			info.Details = appErr.Details
		}
		return c.JSON(appErr.Status, Response{
			Success:   false,
			Timestamp: now(),
			Error:     info,
		})
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		return c.JSON(httpErr.Code, Response{
			Success:   false,
			Timestamp: now(),
			Error: &ErrorInfo{
				Code:    codeForStatus(httpErr.Code),
				Message: http.StatusText(httpErr.Code),
			},
		})
	}

	return c.JSON(http.StatusInternalServerError, Response{
		Success:   false,
		Timestamp: now(),
		Error: &ErrorInfo{
			Code:    "INTERNAL_ERROR",
			Message: "Internal server error",
		},
	})
}

// HTTPErrorHandler handles everything a handler did not answer itself:
// unknown routes, panics turned into errors by Recover, and bind failures.
// Raw error text is only exposed in development.
func HTTPErrorHandler(exposeDetails bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) || (errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError) {
			_ = Error(c, err)
			return
		}

		info := &ErrorInfo{
			Code:    "INTERNAL_ERROR",
			Message: "Internal server error",
		}
		if exposeDetails {
			info.Details = err.Error()
		}
		_ = c.JSON(http.StatusInternalServerError, Response{
			Success:   false,
			Timestamp: now(),
			Error:     info,
		})
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case http.StatusUnsupportedMediaType:
		return "UNSUPPORTED_MEDIA_TYPE"
	case http.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	default:
		return "REQUEST_ERROR"
	}
}
