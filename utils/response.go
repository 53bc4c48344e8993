package utils

import (
	"net/http"

	"tonotes/metrics"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform wrapper of every user-facing response.
// Success implies a nil ErrorCode; failure implies nil Data.
type Envelope[T any] struct {
	Success   bool           `json:"success"`
	ErrorCode *string        `json:"error_code"`
	Message   string         `json:"message"`
	Data      *T             `json:"data"`
	Details   map[string]any `json:"details,omitempty"`
}

func Ok[T any](message string, data T) Envelope[T] {
	return Envelope[T]{Success: true, Message: message, Data: &data}
}

func Fail[T any](code, message string) Envelope[T] {
	return Envelope[T]{Success: false, ErrorCode: &code, Message: message}
}

// Success responses
func Success[T any](c *gin.Context, message string, data T) {
	c.JSON(http.StatusOK, Ok(message, data))
}

func Created[T any](c *gin.Context, message string, data T) {
	c.JSON(http.StatusCreated, Ok(message, data))
}

// Error responses

// Error writes err as a failure envelope with the status of its kind.
func Error(c *gin.Context, err error) {
	appErr := AsAppError(err)
	metrics.TrackError(appErr.Code)
	env := Fail[any](appErr.Code, appErr.Message)
	if appErr.Kind == KindValidation && len(appErr.Context) > 0 {
		env.Details = appErr.Context
	}
	if appErr.Kind == KindInternal && appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.JSON(appErr.Kind.HTTPStatus(), env)
}

func Unauthorized(c *gin.Context, message string) {
	metrics.TrackError(CodeUnauthorized)
	c.JSON(http.StatusUnauthorized, Fail[any](CodeUnauthorized, message))
}

func TooManyRequests(c *gin.Context, message string) {
	metrics.TrackError(CodeRateLimited)
	c.JSON(http.StatusTooManyRequests, Fail[any](CodeRateLimited, message))
}

func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, Fail[any](CodeInternal, message))
}
