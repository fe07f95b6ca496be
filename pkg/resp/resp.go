package resp

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MavMaver/food-delivery/pkg/apperr"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// apiError is the error envelope every failure response uses.
type apiError struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, apiError{
		Timestamp: time.Now(),
		Status:    status,
		Error:     http.StatusText(status),
		Code:      code,
		Message:   message,
		Path:      c.Request.URL.Path,
	})
}

// Error maps a business error to its envelope; anything unrecognized becomes
// a generic 500 with no internal detail leaked.
func Error(c *gin.Context, err error) {
	if e, ok := apperr.As(err); ok {
		writeError(c, e.Status, e.Code, e.Message)
		return
	}
	writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
}

// BadRequest reports malformed or missing request fields.
func BadRequest(c *gin.Context, message string) {
	writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", message)
}

func Unauthorized(c *gin.Context, message string) {
	writeError(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func Forbidden(c *gin.Context, message string) {
	writeError(c, http.StatusForbidden, "FORBIDDEN", message)
}
